package engine

import (
	"github.com/feiyu233/uno-fusion/internal/apperrors"
)

// HandlePass 处理过牌/摸牌
// PASS 固定罚摸一张；有罚牌挂起时则把累积的罚牌全部摸下并放弃本轮
func (g *Game) HandlePass(playerID string) error {
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

	if ad, ok := g.round.(awaitingDraw); ok {
		// 主动接受罚牌
		g.giveCards(p, ad.count)
		g.sink.Broadcast(Event{Type: EventDrawPenalty, Data: DrawPenaltyData{PlayerID: p.ID, Count: ad.count}})
		g.syncUno(p)
		g.round = ad.prev
		g.current = g.nextActive(g.current)
		g.notifyTurn()
		return nil
	}

	drew := g.giveCards(p, 1)
	g.sink.Broadcast(Event{Type: EventPlayerPassed, Data: PlayerPassedData{PlayerID: p.ID, Drew: drew}})
	g.syncUno(p)

	if cr, ok := g.round.(comboRound); ok {
		cr.passes++
		// 其他人全部过牌，上一手的主人重新领出，回合重置
		if cr.passes >= len(g.players)-1 {
			g.round = noRound{}
			g.current = cr.owner
			g.sink.Broadcast(Event{Type: EventRoundReset, Data: RoundResetData{LeaderID: g.players[cr.owner].ID}})
			g.notifyTurn()
			return nil
		}
		g.round = cr
	}

	g.current = g.nextActive(g.current)
	g.notifyTurn()
	return nil
}

// HandleCallUno 处理报牌，只在恰好剩一张时合法，可以不在自己回合
func (g *Game) HandleCallUno(playerID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != PhasePlaying {
		return apperrors.ErrGameNotStart
	}
	idx := g.seatOf(playerID)
	if idx < 0 {
		return apperrors.ErrNotInRoom
	}
	p := g.players[idx]
	if p.HandSize() != 1 {
		return apperrors.ErrUnoNotAllowed
	}
	if !p.CalledUno {
		p.CalledUno = true
		g.cancelUno(p.ID)
		g.sink.Broadcast(Event{Type: EventUnoCalled, Data: UnoCalledData{PlayerID: p.ID}})
	}
	return nil
}
