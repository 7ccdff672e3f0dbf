package player

import (
	"slices"

	"github.com/feiyu233/uno-fusion/internal/game/card"
)

// Player 游戏中的玩家
// 手牌和副露只由所属 Game 修改
type Player struct {
	ID   string
	Name string
	Seat int

	Hand  []card.Card   // 手牌，按加入顺序保存，便于界面展示
	Melds [][]card.Card // 吃碰杠形成的副露，只增不减

	CalledUno bool // 是否已报牌
	Skipped   bool // 一次性跳过标记，轮到时消耗
	Online    bool
}

// New 创建玩家
func New(id, name string, seat int) *Player {
	return &Player{
		ID:     id,
		Name:   name,
		Seat:   seat,
		Online: true,
	}
}

// AddCards 把牌加入手牌
func (p *Player) AddCards(cards ...card.Card) {
	p.Hand = append(p.Hand, cards...)
}

// HandSize 手牌张数
func (p *Player) HandSize() int {
	return len(p.Hand)
}

// CardsByID 按 ID 查找手牌，任何一张不在手中则整体失败
func (p *Player) CardsByID(ids []string) ([]card.Card, bool) {
	cards := make([]card.Card, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			return nil, false
		}
		seen[id] = true
		idx := slices.IndexFunc(p.Hand, func(c card.Card) bool { return c.ID == id })
		if idx < 0 {
			return nil, false
		}
		cards = append(cards, p.Hand[idx])
	}
	return cards, true
}

// RemoveByID 按 ID 从手牌移除，全部存在才移除，否则不产生任何变化
func (p *Player) RemoveByID(ids []string) ([]card.Card, bool) {
	cards, ok := p.CardsByID(ids)
	if !ok {
		return nil, false
	}
	for _, c := range cards {
		idx := slices.IndexFunc(p.Hand, func(h card.Card) bool { return h.ID == c.ID })
		p.Hand = slices.Delete(p.Hand, idx, idx+1)
	}
	return cards, true
}

// CountSame 统计手牌中与 target 同色同种同值的张数
func (p *Player) CountSame(target card.Card) int {
	count := 0
	for _, c := range p.Hand {
		if c.Same(target) {
			count++
		}
	}
	return count
}

// TakeSame 取出 n 张与 target 相同的牌，不足 n 张则不变
func (p *Player) TakeSame(target card.Card, n int) ([]card.Card, bool) {
	if p.CountSame(target) < n {
		return nil, false
	}
	taken := make([]card.Card, 0, n)
	for i := len(p.Hand) - 1; i >= 0 && len(taken) < n; i-- {
		if p.Hand[i].Same(target) {
			taken = append(taken, p.Hand[i])
			p.Hand = slices.Delete(p.Hand, i, i+1)
		}
	}
	return taken, true
}

// HasType 手牌中是否有某种类的牌
func (p *Player) HasType(typ card.Type) bool {
	for _, c := range p.Hand {
		if c.Type == typ {
			return true
		}
	}
	return false
}

// HasBomb 手牌中是否有四张及以上完全相同的牌
func (p *Player) HasBomb() bool {
	counts := make(map[card.Card]int)
	for _, c := range p.Hand {
		key := card.Card{Color: c.Color, Type: c.Type, Value: c.Value}
		counts[key]++
		if counts[key] >= 4 {
			return true
		}
	}
	return false
}

// AddMeld 追加一组副露
func (p *Player) AddMeld(cards []card.Card) {
	p.Melds = append(p.Melds, cards)
}
