package engine

import (
	"github.com/feiyu233/uno-fusion/internal/game/card"
	"github.com/feiyu233/uno-fusion/internal/game/rule"
)

// pinColor 钉住当前颜色
// 只有单张/对子/三张和万能牌选色会钉色，组合牌和炸弹不钉
func (g *Game) pinColor(hand rule.ParsedHand, chosen card.Color) {
	if !hand.Type.IsShedding() {
		return
	}
	c := hand.Cards[0]
	if c.IsWild() {
		if chosen.IsSuit() {
			g.activeColor = chosen
		}
		return
	}
	g.activeColor = c.Color
}

// applyEffects 逐张结算功能牌的副作用，返回累积的罚牌数及类型
// 罚牌不立即执行，留给回合推进时叠加或强制摸牌
func (g *Game) applyEffects(cards []card.Card) (int, card.Type) {
	drawCount := 0
	var drawKind card.Type
	for _, c := range cards {
		switch c.Type {
		case card.TypeSkip:
			g.markSkip()
		case card.TypeReverse:
			g.direction = -g.direction
			// 两人局里转向等同于跳过，否则毫无效果
			if len(g.players) == 2 {
				g.markSkip()
			}
		case card.TypeDrawTwo:
			drawCount += 2
			if drawKind != card.TypeWildDrawFour {
				drawKind = card.TypeDrawTwo
			}
		case card.TypeWildDrawFour:
			drawCount += 4
			drawKind = card.TypeWildDrawFour
		}
	}
	return drawCount, drawKind
}

// markSkip 给下一位玩家打上一次性跳过标记
func (g *Game) markSkip() {
	g.players[g.nextSeat(g.current)].Skipped = true
}

// resolvePlay 出牌生效：结算副作用、确定新的回合状态、推进回合
// basePending 是回应叠加前已经累积的罚牌数
func (g *Game) resolvePlay(hand rule.ParsedHand, basePending int, baseKind card.Type) {
	delta, kind := g.applyEffects(hand.Cards)

	total := basePending + delta
	if kind == card.Type(0) {
		kind = baseKind
	}
	if baseKind == card.TypeWildDrawFour {
		// 加四引发的罚牌只能被加四或炸弹接，严格级别不回落
		kind = card.TypeWildDrawFour
	}

	var next roundState
	if hand.Type.IsShedding() {
		next = sheddingRound{hand: hand, owner: g.current}
	} else {
		next = comboRound{hand: hand, owner: g.current}
	}
	g.advanceWithPending(next, total, kind)
}

// advanceWithPending 推进回合
// 有罚牌挂起时：下家有合格回应则进入等待回应状态，
// 否则自动罚牌并跳过下家，再正常推进
func (g *Game) advanceWithPending(base roundState, pending int, kind card.Type) {
	next := g.nextActive(g.current)

	if pending > 0 {
		p := g.players[next]
		if canAnswerPending(p, kind) {
			g.round = awaitingDraw{count: pending, kind: kind, prev: base}
			g.current = next
			g.notifyTurn()
			return
		}
		// 无牌可应，强制罚牌且本轮作废
		g.giveCards(p, pending)
		g.sink.Broadcast(Event{Type: EventDrawPenalty, Data: DrawPenaltyData{PlayerID: p.ID, Count: pending}})
		g.syncUno(p)
		g.current = next
		next = g.nextActive(next)
	}

	g.round = base
	g.current = next
	g.notifyTurn()
}
