package engine

import (
	"slices"

	"github.com/feiyu233/uno-fusion/internal/apperrors"
	"github.com/feiyu233/uno-fusion/internal/game/card"
	"github.com/feiyu233/uno-fusion/internal/game/player"
	"github.com/feiyu233/uno-fusion/internal/game/rule"
)

// ClaimKind 吃碰杠的种类
type ClaimKind int

const (
	ClaimChi ClaimKind = iota
	ClaimPeng
	ClaimGang
)

// claimKindNames 种类名称映射表
var claimKindNames = map[ClaimKind]string{
	ClaimChi:  "吃",
	ClaimPeng: "碰",
	ClaimGang: "杠",
}

func (k ClaimKind) String() string {
	if name, ok := claimKindNames[k]; ok {
		return name
	}
	return "?"
}

// claimOffer 队列中的一个候选：某个座位被授予某种认领资格
type claimOffer struct {
	seat int
	kind ClaimKind
}

// openClaimWindow 单张打出后构建吃碰杠队列并开窗
// 没有任何候选时返回 false，由调用方直接结算牌效
func (g *Game) openClaimWindow(hand rule.ParsedHand) bool {
	target := hand.Cards[0]
	queue := g.buildClaimQueue(target)
	if len(queue) == 0 {
		return false
	}
	g.round = awaitingClaim{
		target: target,
		hand:   hand,
		origin: g.current,
		queue:  queue,
		cursor: 0,
	}
	g.promptClaim()
	return true
}

// buildClaimQueue 构建候选队列
// 优先级：所有杠按行牌顺序，再所有碰，最后是吃；
// 已有杠资格的不再列碰，已有杠碰资格的不再列吃
func (g *Game) buildClaimQueue(target card.Card) []claimOffer {
	var gangs, pengs, chis []claimOffer
	granted := make(map[int]bool)

	seat := g.current
	for range len(g.players) - 1 {
		seat = g.nextSeat(seat)
		p := g.players[seat]
		switch n := p.CountSame(target); {
		case n >= 3:
			gangs = append(gangs, claimOffer{seat: seat, kind: ClaimGang})
			granted[seat] = true
		case n >= 2:
			pengs = append(pengs, claimOffer{seat: seat, kind: ClaimPeng})
			granted[seat] = true
		}
	}

	// 吃只留给下一位行牌的玩家，且只有数字牌能吃
	next := g.nextSeat(g.current)
	if !granted[next] && canChi(g.players[next], target) {
		chis = append(chis, claimOffer{seat: next, kind: ClaimChi})
	}

	queue := append(gangs, pengs...)
	return append(queue, chis...)
}

// canChi 下家手中是否有任一组同色连续搭子能吃下这张数字牌
func canChi(p *player.Player, target card.Card) bool {
	return len(chiOptions(p.Hand, target)) > 0
}

// chiOptions 枚举三种顺子补法：(v-2,v-1) (v-1,v+1) (v+1,v+2)
func chiOptions(hand []card.Card, target card.Card) [][2]int {
	v, ok := target.Rank()
	if !ok {
		return nil
	}
	var options [][2]int
	for _, pair := range [][2]int{{v - 2, v - 1}, {v - 1, v + 1}, {v + 1, v + 2}} {
		if pair[0] < 0 || pair[1] > 9 {
			continue
		}
		if hasColorRank(hand, target.Color, pair[0]) && hasColorRank(hand, target.Color, pair[1]) {
			options = append(options, pair)
		}
	}
	return options
}

func hasColorRank(hand []card.Card, color card.Color, rank int) bool {
	for _, c := range hand {
		if c.Color != color {
			continue
		}
		if n, ok := c.Rank(); ok && n == rank {
			return true
		}
	}
	return false
}

// promptClaim 授予队首玩家独占窗口并启动超时
// 回调凭窗口代号识别自己是否已被后续操作作废
func (g *Game) promptClaim() {
	ac := g.round.(awaitingClaim)
	offer := ac.head()
	g.claimSeq++
	seq := g.claimSeq

	g.sink.Broadcast(Event{Type: EventClaimWindow, Data: ClaimWindowData{
		PlayerID: g.players[offer.seat].ID,
		Kind:     offer.kind,
		Card:     ac.target,
	}})

	g.claimTimer = g.sched.AfterFunc(g.opts.ClaimWindow, func() {
		g.onClaimTimeout(seq)
	})
}

// onClaimTimeout 窗口超时，游标后移
func (g *Game) onClaimTimeout(seq int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	// 状态可能早已前进，一切以当前状态为准
	if g.phase != PhasePlaying || seq != g.claimSeq {
		return
	}
	if _, ok := g.round.(awaitingClaim); !ok {
		return
	}
	g.advanceClaimCursor()
}

// advanceClaimCursor 游标后移：还有候选就继续开窗，否则无人认领收尾
func (g *Game) advanceClaimCursor() {
	ac := g.round.(awaitingClaim)
	ac.cursor++
	if ac.cursor < len(ac.queue) {
		g.round = ac
		g.promptClaim()
		return
	}
	g.resolveNoClaim(ac)
}

// resolveNoClaim 队列走完无人认领：单张的牌效照常生效，行牌继续
func (g *Game) resolveNoClaim(ac awaitingClaim) {
	g.stopClaimTimer()
	g.current = ac.origin
	g.round = noRound{}
	delta, kind := g.applyEffects(ac.hand.Cards)
	g.advanceWithPending(sheddingRound{hand: ac.hand, owner: ac.origin}, delta, kind)
}

// HandleClaim 处理吃/碰/杠
func (g *Game) HandleClaim(playerID string, kind ClaimKind, cardIDs []string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != PhasePlaying {
		return apperrors.ErrGameNotStart
	}
	ac, ok := g.round.(awaitingClaim)
	if !ok {
		return apperrors.ErrClaimNotOpen
	}
	offer := ac.head()
	claimant := g.players[offer.seat]
	// 窗口是独占的：只有队首玩家、只有被授予的那种认领会被接受
	if claimant.ID != playerID || offer.kind != kind {
		return apperrors.ErrClaimNotOpen
	}

	var meldCards []card.Card
	switch kind {
	case ClaimGang:
		taken, ok := claimant.TakeSame(ac.target, 3)
		if !ok {
			return apperrors.ErrCardsNotInHand
		}
		meldCards = taken
	case ClaimPeng:
		taken, ok := claimant.TakeSame(ac.target, 2)
		if !ok {
			return apperrors.ErrCardsNotInHand
		}
		meldCards = taken
	case ClaimChi:
		taken, err := g.takeChiCards(claimant, ac.target, cardIDs)
		if err != nil {
			return err
		}
		meldCards = taken
	}

	g.stopClaimTimer()

	// 目标牌从弃牌历史中取走
	g.detachDiscard(ac.target)
	meld := append(meldCards, ac.target)
	claimant.AddMeld(meld)

	g.sink.Broadcast(Event{Type: EventClaimMade, Data: ClaimMadeData{
		PlayerID: claimant.ID,
		Kind:     kind,
		Meld:     meld,
	}})

	g.syncUno(claimant)
	if claimant.HandSize() == 0 {
		g.endGame(claimant)
		return nil
	}

	// 被认领的单张牌效随之作废，认领者立刻领出新回合
	g.round = noRound{}
	g.current = offer.seat
	g.sink.Broadcast(Event{Type: EventRoundReset, Data: RoundResetData{LeaderID: claimant.ID}})
	g.notifyTurn()
	return nil
}

// takeChiCards 校验并取走吃牌用的两张搭子
func (g *Game) takeChiCards(claimant *player.Player, target card.Card, cardIDs []string) ([]card.Card, error) {
	if len(cardIDs) != 2 {
		return nil, apperrors.ErrInvalidCards
	}
	cards, ok := claimant.CardsByID(cardIDs)
	if !ok {
		return nil, apperrors.ErrCardsNotInHand
	}

	v, ok := target.Rank()
	if !ok {
		return nil, apperrors.ErrInvalidCards
	}
	ranks := make([]int, 0, 2)
	for _, c := range cards {
		if c.Color != target.Color {
			return nil, apperrors.ErrInvalidCards
		}
		n, ok := c.Rank()
		if !ok {
			return nil, apperrors.ErrInvalidCards
		}
		ranks = append(ranks, n)
	}
	slices.Sort(ranks)
	run := []int{ranks[0], ranks[1], v}
	slices.Sort(run)
	if run[1] != run[0]+1 || run[2] != run[1]+1 {
		return nil, apperrors.ErrInvalidCards
	}

	taken, ok := claimant.RemoveByID(cardIDs)
	if !ok {
		return nil, apperrors.ErrCardsNotInHand
	}
	return taken, nil
}

// HandlePassClaim 队首玩家明确放弃，效果等同窗口超时
func (g *Game) HandlePassClaim(playerID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != PhasePlaying {
		return apperrors.ErrGameNotStart
	}
	ac, ok := g.round.(awaitingClaim)
	if !ok {
		return apperrors.ErrClaimNotOpen
	}
	if g.players[ac.head().seat].ID != playerID {
		return apperrors.ErrClaimNotOpen
	}
	g.stopClaimTimer()
	g.advanceClaimCursor()
	return nil
}

// detachDiscard 把被认领的目标牌从弃牌历史中移除
func (g *Game) detachDiscard(target card.Card) {
	for i := len(g.discards) - 1; i >= 0; i-- {
		group := g.discards[i]
		idx := slices.IndexFunc(group, func(c card.Card) bool { return c.ID == target.ID })
		if idx < 0 {
			continue
		}
		group = slices.Delete(group, idx, idx+1)
		if len(group) == 0 {
			g.discards = slices.Delete(g.discards, i, i+1)
		} else {
			g.discards[i] = group
		}
		return
	}
}

// stopClaimTimer 停掉认领窗口定时器并作废未触发的回调
func (g *Game) stopClaimTimer() {
	if g.claimTimer != nil {
		g.claimTimer.Stop()
		g.claimTimer = nil
	}
	g.claimSeq++
}

// scrubClaimQueue 玩家离开时从认领队列中剔除其候选
func (g *Game) scrubClaimQueue(ac *awaitingClaim, seat int) {
	headRemoved := false
	queue := make([]claimOffer, 0, len(ac.queue))
	cursor := ac.cursor
	for i, offer := range ac.queue {
		if offer.seat != seat {
			queue = append(queue, offer)
			continue
		}
		switch {
		case i == ac.cursor:
			headRemoved = true
		case i < ac.cursor:
			cursor--
		}
	}
	ac.queue = queue
	ac.cursor = cursor
	g.round = *ac

	if !headRemoved {
		return
	}
	g.stopClaimTimer()
	if ac.cursor < len(ac.queue) {
		g.promptClaim()
		return
	}
	g.resolveNoClaim(*ac)
}
