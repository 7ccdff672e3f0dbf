package engine

import "github.com/feiyu233/uno-fusion/internal/game/player"

// syncUno 手牌数变化后同步报牌状态
// 不变量：当且仅当手牌恰好一张且未报牌时存在存活的期限定时器
func (g *Game) syncUno(p *player.Player) {
	if p.HandSize() != 1 {
		p.CalledUno = false
		g.cancelUno(p.ID)
		return
	}
	if p.CalledUno || g.unoTimers[p.ID] != nil {
		return
	}
	id := p.ID
	g.unoTimers[id] = g.sched.AfterFunc(g.opts.UnoDeadline, func() {
		g.onUnoExpire(id)
	})
}

// cancelUno 取消某玩家的报牌期限
func (g *Game) cancelUno(playerID string) {
	if t, ok := g.unoTimers[playerID]; ok {
		t.Stop()
		delete(g.unoTimers, playerID)
	}
}

// onUnoExpire 期限到点，以玩家此刻的状态为准重新校验
// 仍然是一张且未报牌才罚摸两张，其余情况静默作废
func (g *Game) onUnoExpire(playerID string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.unoTimers, playerID)

	if g.phase != PhasePlaying {
		return
	}
	idx := g.seatOf(playerID)
	if idx < 0 {
		return
	}
	p := g.players[idx]
	if p.HandSize() != 1 || p.CalledUno {
		return
	}

	g.giveCards(p, 2)
	g.sink.Broadcast(Event{Type: EventUnoPenalty, Data: UnoPenaltyData{PlayerID: p.ID, Count: 2}})
	g.syncUno(p) // 手牌已不是一张，清掉报牌标记
}
