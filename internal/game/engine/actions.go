package engine

import (
	"github.com/feiyu233/uno-fusion/internal/apperrors"
	"github.com/feiyu233/uno-fusion/internal/game/card"
	"github.com/feiyu233/uno-fusion/internal/game/player"
	"github.com/feiyu233/uno-fusion/internal/game/rule"
)

// ActionType 玩家动作类型
type ActionType string

const (
	ActionPlayCards ActionType = "play_cards"
	ActionDrawCard  ActionType = "draw_card"
	ActionPass      ActionType = "pass"
	ActionCallUno   ActionType = "call_uno"
	ActionChi       ActionType = "chi"
	ActionPeng      ActionType = "peng"
	ActionGang      ActionType = "gang"
	ActionPassClaim ActionType = "pass_claim"
)

// Action 一次入站玩家动作
// Color 为 NoColor 表示未选色
type Action struct {
	Type     ActionType
	PlayerID string
	CardIDs  []string
	Color    card.Color
}

// HandleAction 动作统一入口，按类型分发
// 所有拒绝都同步返回 *apperrors.GameError 且不产生任何状态变化
func (g *Game) HandleAction(a Action) error {
	switch a.Type {
	case ActionPlayCards:
		return g.HandlePlay(a.PlayerID, a.CardIDs, a.Color)
	case ActionDrawCard, ActionPass:
		return g.HandlePass(a.PlayerID)
	case ActionCallUno:
		return g.HandleCallUno(a.PlayerID)
	case ActionChi:
		return g.HandleClaim(a.PlayerID, ClaimChi, a.CardIDs)
	case ActionPeng:
		return g.HandleClaim(a.PlayerID, ClaimPeng, a.CardIDs)
	case ActionGang:
		return g.HandleClaim(a.PlayerID, ClaimGang, a.CardIDs)
	case ActionPassClaim:
		return g.HandlePassClaim(a.PlayerID)
	}
	return apperrors.New(apperrors.CodeInvalidMsg, "未知的动作类型")
}

// HandlePlay 处理出牌
func (g *Game) HandlePlay(playerID string, cardIDs []string, chosenColor card.Color) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != PhasePlaying {
		return apperrors.ErrGameNotStart
	}
	if _, ok := g.round.(awaitingClaim); ok {
		return apperrors.ErrClaimPending
	}

	p := g.players[g.current]
	if p.ID != playerID {
		return apperrors.ErrNotYourTurn
	}

	cards, ok := p.CardsByID(cardIDs)
	if !ok {
		return apperrors.ErrCardsNotInHand
	}
	hand, err := rule.Parse(cards)
	if err != nil {
		return apperrors.ErrInvalidCards
	}

	if err := g.checkLegal(hand); err != nil {
		return err
	}

	// 校验通过后才落子，拒绝路径上手牌从未被动过
	if _, ok := p.RemoveByID(cardIDs); !ok {
		return apperrors.New(apperrors.CodeUnknown, "手牌移除失败")
	}
	g.discards = append(g.discards, cards)
	g.pinColor(hand, chosenColor)

	// 叠加中的罚牌数随回应继续累积
	basePending, baseKind := 0, card.Type(0)
	if ad, ok := g.round.(awaitingDraw); ok {
		basePending, baseKind = ad.count, ad.kind
	}

	g.sink.Broadcast(Event{Type: EventCardsPlayed, Data: CardsPlayedData{
		PlayerID:    p.ID,
		Cards:       cards,
		HandType:    hand.Type,
		CardsLeft:   p.HandSize(),
		ActiveColor: g.activeColor,
		Direction:   g.direction,
	}})

	if p.HandSize() == 0 {
		g.syncUno(p)
		g.endGame(p)
		return nil
	}
	g.syncUno(p)

	// 罚牌回应链中不开吃碰杠窗口
	if hand.Type == rule.Single && basePending == 0 {
		if g.openClaimWindow(hand) {
			return nil
		}
	}

	g.resolvePlay(hand, basePending, baseKind)
	return nil
}

// checkLegal 按当前回合状态校验这手牌是否可以打出
func (g *Game) checkLegal(hand rule.ParsedHand) error {
	switch r := g.round.(type) {
	case noRound:
		return nil // 自由领出，任何可识别牌型都合法

	case sheddingRound:
		if r.owner == g.current {
			return nil // 一圈回到自己，重新领出
		}
		if hand.Type == rule.Bomb {
			if !rule.BombBeats(hand, r.hand) {
				return apperrors.ErrCannotBeat
			}
			return nil
		}
		switch hand.Type {
		case rule.Single:
			if !rule.SingleFollows(hand.Cards[0], r.hand.Cards[0], g.activeColor) {
				return apperrors.ErrCannotBeat
			}
		case rule.Pair, rule.Triple:
			if !rule.AllColor(hand.Cards, g.activeColor) {
				return apperrors.ErrCannotBeat
			}
		default: // 跟牌阶段允许切到组合牌型，但必须整手同为当前颜色
			if !rule.AllColor(hand.Cards, g.activeColor) {
				return apperrors.ErrCannotBeat
			}
		}
		return nil

	case comboRound:
		if r.owner == g.current {
			return nil
		}
		if hand.Type == rule.Bomb {
			if !rule.BombBeats(hand, r.hand) {
				return apperrors.ErrCannotBeat
			}
			return nil
		}
		// 组合回合只认同类型同长度
		if !rule.ComboFollows(hand, r.hand) {
			return apperrors.ErrCannotBeat
		}
		return nil

	case awaitingDraw:
		if g.qualifiesForPending(hand, r.kind) {
			return nil
		}
		return apperrors.ErrMustAnswerDraw
	}
	return apperrors.ErrClaimPending
}

// qualifiesForPending 判断这手牌能否回应当前罚牌
// 加二挂起时可用加二/加四/炸弹，加四挂起时只有加四或炸弹
func (g *Game) qualifiesForPending(hand rule.ParsedHand, kind card.Type) bool {
	if hand.Type == rule.Bomb {
		return true
	}
	if hand.Type != rule.Single {
		return false
	}
	switch hand.Cards[0].Type {
	case card.TypeWildDrawFour:
		return true
	case card.TypeDrawTwo:
		return kind == card.TypeDrawTwo
	}
	return false
}

// canAnswerPending 玩家手里是否有任何合格的回应
func canAnswerPending(p *player.Player, kind card.Type) bool {
	if p.HasBomb() || p.HasType(card.TypeWildDrawFour) {
		return true
	}
	return kind == card.TypeDrawTwo && p.HasType(card.TypeDrawTwo)
}
