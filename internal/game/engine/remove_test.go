package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feiyu233/uno-fusion/internal/apperrors"
	"github.com/feiyu233/uno-fusion/internal/game/card"
)

func TestRemoveComboOwnerResetsRound(t *testing.T) {
	t.Parallel()

	g, _, sink, _ := newTestGame(t, 3)

	straight := give(g, 0,
		card.NewNumber(card.Red, 2),
		card.NewNumber(card.Red, 3),
		card.NewNumber(card.Red, 4),
		card.NewNumber(card.Red, 5),
		card.NewNumber(card.Red, 6),
	)
	give(g, 0, card.NewNumber(card.Blue, 9))
	require.NoError(t, play(g, 0, card.NoColor, straight...))
	require.NotNil(t, g.View().LastPlay)

	// 领出顺子的人离场，这手牌失去归属，桌面立即清空
	g.RemovePlayer("a")

	assert.Equal(t, 1, sink.count(EventRoundReset))
	assert.Nil(t, g.View().LastPlay)
	assert.Equal(t, "b", g.View().CurrentPlayerID)

	// 剩下的人自由领出，不再被迫跟一手没有主人的组合牌
	lead := give(g, 0, card.NewNumber(card.Green, 7))
	assert.NoError(t, play(g, 1, card.NoColor, lead...))
}

func TestRemoveSheddingOwnerResetsRound(t *testing.T) {
	t.Parallel()

	g, _, sink, _ := newTestGame(t, 3)

	single := give(g, 0, card.NewNumber(card.Red, 5))
	give(g, 0, card.NewNumber(card.Blue, 9))
	give(g, 1, card.NewNumber(card.Blue, 1), card.NewNumber(card.Blue, 2))
	give(g, 2, card.NewNumber(card.Blue, 3))
	require.NoError(t, play(g, 0, card.NoColor, single...))
	require.Falsef(t, g.View().ClaimOpen, "布局不应产生吃碰杠候选")

	g.RemovePlayer("a")

	assert.Equal(t, 1, sink.count(EventRoundReset))
	assert.Nil(t, g.View().LastPlay)

	// 跟不上红 5 的蓝 1 现在可以直接领出
	assert.NoError(t, play(g, 1, card.NoColor, g.players[0].Hand[0]))
}

func TestRemovePromptedClaimantRepromptsNext(t *testing.T) {
	t.Parallel()

	g, _, sink, _ := newTestGame(t, 4)

	target := card.NewNumber(card.Red, 5)
	single := give(g, 0, target)
	give(g, 0, card.NewNumber(card.Blue, 9))
	give(g, 2,
		card.New(card.Red, card.TypeNumber, "5"),
		card.New(card.Red, card.TypeNumber, "5"),
		card.New(card.Red, card.TypeNumber, "5"),
	)
	give(g, 3,
		card.New(card.Red, card.TypeNumber, "5"),
		card.New(card.Red, card.TypeNumber, "5"),
		card.NewNumber(card.Blue, 1),
	)
	require.NoError(t, play(g, 0, card.NoColor, single...))

	// 杠优先，窗口先授予丙
	ev, ok := sink.last(EventClaimWindow)
	require.True(t, ok)
	require.Equal(t, "c", ev.Data.(ClaimWindowData).PlayerID)
	require.Equal(t, ClaimGang, ev.Data.(ClaimWindowData).Kind)

	// 队首离场，窗口立刻改授下一个候选
	g.RemovePlayer("c")

	ev, ok = sink.last(EventClaimWindow)
	require.True(t, ok)
	assert.Equal(t, "d", ev.Data.(ClaimWindowData).PlayerID)
	assert.Equal(t, ClaimPeng, ev.Data.(ClaimWindowData).Kind)

	require.NoError(t, g.HandleClaim("d", ClaimPeng, nil))
	made, ok := sink.last(EventClaimMade)
	require.True(t, ok)
	assert.Equal(t, "d", made.Data.(ClaimMadeData).PlayerID)
	assert.Equal(t, "d", g.View().CurrentPlayerID)
}

func TestRemoveQueuedClaimantKeepsWindow(t *testing.T) {
	t.Parallel()

	g, sched, sink, _ := newTestGame(t, 4)

	target := card.NewNumber(card.Red, 5)
	single := give(g, 0, target)
	give(g, 0, card.NewNumber(card.Blue, 9))
	give(g, 2,
		card.New(card.Red, card.TypeNumber, "5"),
		card.New(card.Red, card.TypeNumber, "5"),
		card.New(card.Red, card.TypeNumber, "5"),
	)
	give(g, 3,
		card.New(card.Red, card.TypeNumber, "5"),
		card.New(card.Red, card.TypeNumber, "5"),
	)
	require.NoError(t, play(g, 0, card.NoColor, single...))

	// 排在队尾的丁离场，不影响丙的独占窗口
	g.RemovePlayer("d")

	assert.True(t, g.View().ClaimOpen)
	ev, ok := sink.last(EventClaimWindow)
	require.True(t, ok)
	assert.Equal(t, "c", ev.Data.(ClaimWindowData).PlayerID)

	// 丙超时后队列已空，单张照常结算，回合回到跟牌局面
	sched.firePending()
	assert.False(t, g.View().ClaimOpen)
	require.NotNil(t, g.View().LastPlay)
	assert.Equal(t, "a", g.View().LastPlay.OwnerID)
	assert.Equal(t, "b", g.View().CurrentPlayerID)
}

func TestRemoveClaimOriginCancelsWindow(t *testing.T) {
	t.Parallel()

	g, sched, sink, _ := newTestGame(t, 3)

	target := card.NewNumber(card.Red, 5)
	single := give(g, 0, target)
	give(g, 0, card.NewNumber(card.Blue, 9))
	give(g, 2,
		card.New(card.Red, card.TypeNumber, "5"),
		card.New(card.Red, card.TypeNumber, "5"),
		card.NewNumber(card.Blue, 1),
	)
	require.NoError(t, play(g, 0, card.NoColor, single...))
	require.True(t, g.View().ClaimOpen)

	// 出单的人离场，窗口连同牌效一起作废
	g.RemovePlayer("a")

	assert.False(t, g.View().ClaimOpen)
	assert.Nil(t, g.View().LastPlay)
	assert.Equal(t, 1, sink.count(EventRoundReset))
	assert.ErrorIs(t, g.HandleClaim("c", ClaimPeng, nil), apperrors.ErrClaimNotOpen)

	// 作废的窗口定时器触发后不得有任何动作
	before := sink.count(EventClaimWindow)
	sched.firePending()
	assert.Equal(t, before, sink.count(EventClaimWindow))
	assert.False(t, g.View().ClaimOpen)
}
