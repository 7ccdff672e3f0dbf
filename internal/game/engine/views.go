package engine

import (
	"github.com/feiyu233/uno-fusion/internal/game/card"
	"github.com/feiyu233/uno-fusion/internal/game/rule"
)

// PlayerView 对所有人可见的玩家状态
type PlayerView struct {
	ID        string
	Name      string
	Seat      int
	CardCount int
	Melds     [][]card.Card
	CalledUno bool
	Online    bool
}

// LastPlayView 桌面上的最后一手
type LastPlayView struct {
	OwnerID  string
	HandType rule.HandType
	Cards    []card.Card
}

// GameView 对局的公共视图
type GameView struct {
	Phase           Phase
	Players         []PlayerView
	CurrentPlayerID string
	Direction       int
	ActiveColor     card.Color
	LastPlay        *LastPlayView
	PendingDraw     int
	PendingType     card.Type
	ClaimOpen       bool
	DrawPileSize    int
}

// View 返回公共视图快照
func (g *Game) View() GameView {
	g.mu.Lock()
	defer g.mu.Unlock()

	view := GameView{
		Phase:        g.phase,
		Direction:    g.direction,
		ActiveColor:  g.activeColor,
		DrawPileSize: len(g.deck),
	}
	view.Players = make([]PlayerView, len(g.players))
	for i, p := range g.players {
		view.Players[i] = PlayerView{
			ID:        p.ID,
			Name:      p.Name,
			Seat:      p.Seat,
			CardCount: p.HandSize(),
			Melds:     p.Melds,
			CalledUno: p.CalledUno,
			Online:    p.Online,
		}
	}
	if g.phase == PhasePlaying && len(g.players) > 0 {
		view.CurrentPlayerID = g.players[g.current].ID
	}

	switch r := g.round.(type) {
	case sheddingRound:
		view.LastPlay = g.lastPlayView(r.hand, r.owner)
	case comboRound:
		view.LastPlay = g.lastPlayView(r.hand, r.owner)
	case awaitingClaim:
		view.LastPlay = g.lastPlayView(r.hand, r.origin)
		view.ClaimOpen = true
	case awaitingDraw:
		view.PendingDraw = r.count
		view.PendingType = r.kind
		switch prev := r.prev.(type) {
		case sheddingRound:
			view.LastPlay = g.lastPlayView(prev.hand, prev.owner)
		case comboRound:
			view.LastPlay = g.lastPlayView(prev.hand, prev.owner)
		}
	}
	return view
}

func (g *Game) lastPlayView(hand rule.ParsedHand, owner int) *LastPlayView {
	ownerID := ""
	if owner >= 0 && owner < len(g.players) {
		ownerID = g.players[owner].ID
	}
	return &LastPlayView{OwnerID: ownerID, HandType: hand.Type, Cards: hand.Cards}
}

// HandOf 返回某玩家的私有手牌视图
func (g *Game) HandOf(playerID string) []card.Card {
	g.mu.Lock()
	defer g.mu.Unlock()

	idx := g.seatOf(playerID)
	if idx < 0 {
		return nil
	}
	hand := make([]card.Card, len(g.players[idx].Hand))
	copy(hand, g.players[idx].Hand)
	return hand
}

// Phase 返回当前阶段
func (g *Game) Phase() Phase {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.phase
}

// PlayerCount 返回在座玩家数
func (g *Game) PlayerCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.players)
}

// SetOnline 标记玩家连接状态
func (g *Game) SetOnline(playerID string, online bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if idx := g.seatOf(playerID); idx >= 0 {
		g.players[idx].Online = online
	}
}
