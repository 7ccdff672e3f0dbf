package protocol

import (
	"github.com/feiyu233/uno-fusion/internal/game/card"
	"github.com/feiyu233/uno-fusion/internal/game/engine"
	"github.com/feiyu233/uno-fusion/internal/game/rule"
)

// 线上传输用的稳定名称，与内部枚举解耦
var (
	colorNames = map[card.Color]string{
		card.Red:    "red",
		card.Yellow: "yellow",
		card.Green:  "green",
		card.Blue:   "blue",
	}
	colorValues = map[string]card.Color{
		"red":    card.Red,
		"yellow": card.Yellow,
		"green":  card.Green,
		"blue":   card.Blue,
	}
	typeNames = map[card.Type]string{
		card.TypeNumber:       "number",
		card.TypeSkip:         "skip",
		card.TypeReverse:      "reverse",
		card.TypeDrawTwo:      "draw2",
		card.TypeWild:         "wild",
		card.TypeWildDrawFour: "wild4",
	}
	handTypeNames = map[rule.HandType]string{
		rule.Single:           "single",
		rule.Pair:             "pair",
		rule.Triple:           "triple",
		rule.Bomb:             "bomb",
		rule.FullHouse:        "full_house",
		rule.Straight:         "straight",
		rule.ConsecutivePairs: "consecutive_pairs",
		rule.Airplane:         "airplane",
	}
	claimKindNames = map[engine.ClaimKind]string{
		engine.ClaimChi:  "chi",
		engine.ClaimPeng: "peng",
		engine.ClaimGang: "gang",
	}
)

// ColorName 颜色的线上名称，万能牌为空串
func ColorName(c card.Color) string {
	return colorNames[c]
}

// ParseColor 解析线上颜色名称，空串或未知返回 NoColor
func ParseColor(name string) card.Color {
	return colorValues[name]
}

// FromCard 转换单张牌
func FromCard(c card.Card) CardInfo {
	return CardInfo{
		ID:    c.ID,
		Color: colorNames[c.Color],
		Type:  typeNames[c.Type],
		Value: c.Value,
	}
}

// FromCards 转换一组牌
func FromCards(cards []card.Card) []CardInfo {
	infos := make([]CardInfo, len(cards))
	for i, c := range cards {
		infos[i] = FromCard(c)
	}
	return infos
}

// FromPlayerView 转换玩家公开视图
func FromPlayerView(v engine.PlayerView) PlayerInfo {
	melds := make([][]CardInfo, len(v.Melds))
	for i, m := range v.Melds {
		melds[i] = FromCards(m)
	}
	return PlayerInfo{
		ID:        v.ID,
		Name:      v.Name,
		Seat:      v.Seat,
		CardCount: v.CardCount,
		Melds:     melds,
		CalledUno: v.CalledUno,
		Online:    v.Online,
	}
}

// FromEvent 把引擎事件转成对外消息，claimTimeout 用于填充窗口时长
func FromEvent(ev engine.Event, claimTimeout int) *Message {
	switch data := ev.Data.(type) {
	case engine.GameStartedData:
		players := make([]PlayerInfo, len(data.Players))
		for i, seat := range data.Players {
			players[i] = PlayerInfo{ID: seat.PlayerID, Name: seat.Name, Seat: seat.Seat, Online: true}
		}
		return MustNewMessage(MsgGameStart, GameStartPayload{
			Players:       players,
			FirstPlayerID: data.FirstPlayerID,
		})
	case engine.HandDealtData:
		return MustNewMessage(MsgDealCards, DealCardsPayload{Cards: FromCards(data.Cards)})
	case engine.TurnData:
		payload := PlayTurnPayload{PlayerID: data.PlayerID, PendingDraw: data.PendingDraw}
		if data.PendingDraw > 0 {
			payload.PendingType = typeNames[data.PendingType]
		}
		return MustNewMessage(MsgPlayTurn, payload)
	case engine.CardsPlayedData:
		return MustNewMessage(MsgCardPlayed, CardPlayedPayload{
			PlayerID:    data.PlayerID,
			Cards:       FromCards(data.Cards),
			HandType:    handTypeNames[data.HandType],
			CardsLeft:   data.CardsLeft,
			ActiveColor: colorNames[data.ActiveColor],
			Direction:   data.Direction,
		})
	case engine.PlayerPassedData:
		return MustNewMessage(MsgPlayerPass, PlayerPassPayload{PlayerID: data.PlayerID, Drew: data.Drew})
	case engine.CardsDrawnData:
		return MustNewMessage(MsgCardsDrawn, CardsDrawnPayload{PlayerID: data.PlayerID, Count: data.Count})
	case engine.DrawnCardsData:
		return MustNewMessage(MsgDrawnCards, DrawnCardsPayload{Cards: FromCards(data.Cards)})
	case engine.DrawPenaltyData:
		return MustNewMessage(MsgDrawPenalty, DrawPenaltyPayload{PlayerID: data.PlayerID, Count: data.Count})
	case engine.ClaimWindowData:
		return MustNewMessage(MsgClaimWindow, ClaimWindowPayload{
			PlayerID: data.PlayerID,
			Kind:     claimKindNames[data.Kind],
			Card:     FromCard(data.Card),
			Timeout:  claimTimeout,
		})
	case engine.ClaimMadeData:
		return MustNewMessage(MsgClaimMade, ClaimMadePayload{
			PlayerID: data.PlayerID,
			Kind:     claimKindNames[data.Kind],
			Meld:     FromCards(data.Meld),
		})
	case engine.RoundResetData:
		return MustNewMessage(MsgRoundReset, RoundResetPayload{LeaderID: data.LeaderID})
	case engine.UnoCalledData:
		return MustNewMessage(MsgUnoCalled, UnoCalledPayload{PlayerID: data.PlayerID})
	case engine.UnoPenaltyData:
		return MustNewMessage(MsgUnoPenalty, UnoPenaltyPayload{PlayerID: data.PlayerID, Count: data.Count})
	case engine.PlayerRemovedData:
		return MustNewMessage(MsgPlayerLeft, PlayerLeftPayload{PlayerID: data.PlayerID})
	case engine.GameOverData:
		results := make([]PlayerResult, len(data.Results))
		for i, r := range data.Results {
			results[i] = PlayerResult{PlayerID: r.PlayerID, CardsLeft: r.CardsLeft, Delta: r.Delta}
		}
		return MustNewMessage(MsgGameOver, GameOverPayload{WinnerID: data.WinnerID, Results: results})
	}
	return nil
}
