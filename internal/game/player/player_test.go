package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feiyu233/uno-fusion/internal/game/card"
)

func TestRemoveByID(t *testing.T) {
	t.Parallel()

	p := New("p1", "测试玩家", 0)
	a := card.NewNumber(card.Red, 5)
	b := card.NewNumber(card.Red, 5)
	c := card.NewNumber(card.Blue, 7)
	p.AddCards(a, b, c)

	removed, ok := p.RemoveByID([]string{a.ID, c.ID})
	require.True(t, ok)
	assert.Len(t, removed, 2)
	assert.Equal(t, 1, p.HandSize())
	assert.Equal(t, b.ID, p.Hand[0].ID)
}

func TestRemoveByIDAllOrNothing(t *testing.T) {
	t.Parallel()

	p := New("p1", "测试玩家", 0)
	a := card.NewNumber(card.Red, 5)
	p.AddCards(a)

	// 有一张不在手中时整体失败，手牌不变
	_, ok := p.RemoveByID([]string{a.ID, "missing"})
	assert.False(t, ok)
	assert.Equal(t, 1, p.HandSize())

	// 同一 ID 不能重复使用
	_, ok = p.RemoveByID([]string{a.ID, a.ID})
	assert.False(t, ok)
	assert.Equal(t, 1, p.HandSize())
}

func TestCountAndTakeSame(t *testing.T) {
	t.Parallel()

	p := New("p1", "测试玩家", 0)
	target := card.NewNumber(card.Green, 3)
	p.AddCards(
		card.NewNumber(card.Green, 3),
		card.NewNumber(card.Green, 3),
		card.NewNumber(card.Green, 3),
		card.NewNumber(card.Blue, 3),
	)

	assert.Equal(t, 3, p.CountSame(target))

	taken, ok := p.TakeSame(target, 2)
	require.True(t, ok)
	assert.Len(t, taken, 2)
	assert.Equal(t, 2, p.HandSize())
	assert.Equal(t, 1, p.CountSame(target))

	_, ok = p.TakeSame(target, 2)
	assert.False(t, ok)
	assert.Equal(t, 2, p.HandSize())
}

func TestHasBomb(t *testing.T) {
	t.Parallel()

	p := New("p1", "测试玩家", 0)
	for range 3 {
		p.AddCards(card.NewNumber(card.Red, 8))
	}
	assert.False(t, p.HasBomb())

	p.AddCards(card.NewNumber(card.Red, 8))
	assert.True(t, p.HasBomb())
}

func TestAddMeld(t *testing.T) {
	t.Parallel()

	p := New("p1", "测试玩家", 0)
	meld := []card.Card{card.NewNumber(card.Red, 2), card.NewNumber(card.Red, 2)}
	p.AddMeld(meld)
	require.Len(t, p.Melds, 1)
	assert.Len(t, p.Melds[0], 2)
}
