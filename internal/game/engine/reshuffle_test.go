package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feiyu233/uno-fusion/internal/game/card"
)

func TestReshuffleKeepsActiveGroup(t *testing.T) {
	t.Parallel()

	g, _, _, _ := newTestGame(t, 2)

	single := give(g, 0, card.NewNumber(card.Red, 5))
	give(g, 0, card.NewNumber(card.Red, 9))
	give(g, 1, card.NewNumber(card.Blue, 1))
	require.NoError(t, play(g, 0, card.NoColor, single...))
	require.NotNil(t, g.View().LastPlay)

	// 摸牌堆抽空，弃牌历史里垫一组已结清的旧牌
	old := []card.Card{
		card.NewNumber(card.Green, 3),
		card.NewNumber(card.Green, 4),
	}
	g.deck = nil
	g.discards = append([][]card.Card{old}, g.discards...)

	// 乙过牌摸一张，重洗只能动旧牌组，桌面上的红 5 不动
	require.NoError(t, g.HandlePass("b"))

	drawn := g.players[1].Hand[len(g.players[1].Hand)-1]
	assert.Contains(t, []string{old[0].ID, old[1].ID}, drawn.ID)

	require.Len(t, g.discards, 1)
	require.Len(t, g.discards[0], 1)
	assert.Equal(t, single[0].ID, g.discards[0][0].ID)
	require.NotNil(t, g.View().LastPlay)
	assert.Equal(t, "a", g.View().LastPlay.OwnerID)
	assert.Len(t, g.deck, 1)
}

func TestDrawExhaustedWhenEverythingIsHeld(t *testing.T) {
	t.Parallel()

	g, _, sink, _ := newTestGame(t, 2)

	single := give(g, 0, card.NewNumber(card.Red, 5))
	give(g, 0, card.NewNumber(card.Red, 9))
	give(g, 1, card.NewNumber(card.Blue, 1))
	require.NoError(t, play(g, 0, card.NoColor, single...))

	// 摸牌堆和可重洗的弃牌都没了，过牌摸不到牌但行牌继续
	g.deck = nil
	require.NoError(t, g.HandlePass("b"))

	ev, ok := sink.last(EventPlayerPassed)
	require.True(t, ok)
	assert.Zero(t, ev.Data.(PlayerPassedData).Drew)
	assert.Equal(t, "a", g.View().CurrentPlayerID)
}
