package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feiyu233/uno-fusion/internal/apperrors"
	"github.com/feiyu233/uno-fusion/internal/game/card"
)

// 剩一张没报牌，期限一到罚两张，且只罚一次
func TestUnoDeadlinePenalty(t *testing.T) {
	t.Parallel()

	g, sched, sink, _ := newTestGame(t, 2)
	red5 := give(g, 0, card.NewNumber(card.Red, 5), card.NewNumber(card.Blue, 9))[0]
	give(g, 1, card.NewNumber(card.Green, 1), card.NewNumber(card.Yellow, 9))

	require.NoError(t, play(g, 0, card.NoColor, red5))
	require.Equal(t, 1, g.players[0].HandSize())
	assert.Equal(t, 1, sched.livePending())

	sched.firePending()

	assert.Equal(t, 3, g.players[0].HandSize())
	ev, ok := sink.last(EventUnoPenalty)
	require.True(t, ok)
	assert.Equal(t, UnoPenaltyData{PlayerID: playerID(0), Count: 2}, ev.Data)
	assert.Equal(t, 1, sink.count(EventUnoPenalty))

	// 定时器已消耗，不会二次处罚
	sched.firePending()
	assert.Equal(t, 3, g.players[0].HandSize())
	assert.Equal(t, 1, sink.count(EventUnoPenalty))
}

// 期限内报牌免罚，重复报牌幂等
func TestCallUnoStopsPenalty(t *testing.T) {
	t.Parallel()

	g, sched, sink, _ := newTestGame(t, 2)
	red5 := give(g, 0, card.NewNumber(card.Red, 5), card.NewNumber(card.Blue, 9))[0]
	give(g, 1, card.NewNumber(card.Green, 1), card.NewNumber(card.Yellow, 9))

	require.NoError(t, play(g, 0, card.NoColor, red5))
	require.Equal(t, 1, sched.livePending())

	require.NoError(t, g.HandleCallUno(playerID(0)))
	assert.Zero(t, sched.livePending())
	assert.True(t, g.players[0].CalledUno)

	require.NoError(t, g.HandleCallUno(playerID(0)))
	assert.Equal(t, 1, sink.count(EventUnoCalled))

	sched.firePending()
	assert.Equal(t, 1, g.players[0].HandSize())
	assert.Zero(t, sink.count(EventUnoPenalty))
}

// 手牌不是一张时报牌被拒
func TestCallUnoRequiresSingleCard(t *testing.T) {
	t.Parallel()

	g, _, _, _ := newTestGame(t, 2)
	give(g, 0, card.NewNumber(card.Red, 5), card.NewNumber(card.Blue, 9))
	give(g, 1, card.NewNumber(card.Green, 1))

	err := g.HandleCallUno(playerID(0))
	assert.ErrorIs(t, err, apperrors.ErrUnoNotAllowed)
	assert.False(t, g.players[0].CalledUno)

	err = g.HandleCallUno("stranger")
	assert.ErrorIs(t, err, apperrors.ErrNotInRoom)
}

// 手牌数回升后期限自动作废，报牌标记一并清除
func TestUnoDeadlineCancelledWhenHandGrows(t *testing.T) {
	t.Parallel()

	g, sched, sink, _ := newTestGame(t, 2)
	red5 := give(g, 0, card.NewNumber(card.Red, 5), card.NewNumber(card.Blue, 9))[0]
	give(g, 1, card.NewNumber(card.Red, 7), card.NewNumber(card.Yellow, 9), card.NewNumber(card.Green, 2))

	require.NoError(t, play(g, 0, card.NoColor, red5))
	require.Equal(t, 1, sched.livePending())

	// 乙跟牌后轮回甲，甲过牌摸一张，手牌回到两张
	require.NoError(t, play(g, 1, card.NoColor, g.players[1].Hand[0]))
	require.NoError(t, g.HandlePass(playerID(0)))
	assert.Equal(t, 2, g.players[0].HandSize())
	assert.Zero(t, sched.livePending())

	sched.firePending()
	assert.Zero(t, sink.count(EventUnoPenalty))
}
