package engine

import (
	"sync"
	"time"

	"github.com/feiyu233/uno-fusion/internal/apperrors"
	"github.com/feiyu233/uno-fusion/internal/game/card"
	"github.com/feiyu233/uno-fusion/internal/game/player"
)

// Phase 对局阶段
type Phase int

const (
	PhaseWaiting Phase = iota
	PhasePlaying
	PhaseEnded
)

// phaseNames 阶段名称映射表
var phaseNames = map[Phase]string{
	PhaseWaiting: "waiting",
	PhasePlaying: "playing",
	PhaseEnded:   "ended",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}

// Options 引擎参数
type Options struct {
	ClaimWindow time.Duration // 吃碰杠窗口时长
	UnoDeadline time.Duration // 报牌期限
	InitialHand int           // 起手牌数
	MaxPlayers  int
	CoinPerCard int // 结算时每张剩牌的金币数
}

// DefaultOptions 默认参数
func DefaultOptions() Options {
	return Options{
		ClaimWindow: 10 * time.Second,
		UnoDeadline: 5 * time.Second,
		InitialHand: 7,
		MaxPlayers:  8,
		CoinPerCard: 10,
	}
}

// Game 单个房间的对局，聚合根
// 同一房间的所有状态变更都串行执行：外部动作和定时器回调
// 都先拿 mu，再重新校验状态。房间之间互不共享任何状态
type Game struct {
	roomID string
	opts   Options
	sink   Sink
	sched  Scheduler
	settle SettleFunc

	mu       sync.Mutex
	phase    Phase
	players  []*player.Player // 加入顺序即座位顺序
	deck     []card.Card
	discards [][]card.Card // 每组是一次出牌，供摸牌堆耗尽时重洗

	current     int
	direction   int // +1 / -1
	activeColor card.Color
	round       roundState

	claimTimer Timer
	claimSeq   int // 窗口代号，过期回调凭它识别自己是否已作废
	unoTimers  map[string]Timer
}

// NewGame 创建对局
func NewGame(roomID string, opts Options, sink Sink, sched Scheduler, settle SettleFunc) *Game {
	if opts.ClaimWindow <= 0 {
		opts = DefaultOptions()
	}
	return &Game{
		roomID:    roomID,
		opts:      opts,
		sink:      sink,
		sched:     sched,
		settle:    settle,
		phase:     PhaseWaiting,
		direction: 1,
		round:     noRound{},
		unoTimers: make(map[string]Timer),
	}
}

// AddPlayer 加入玩家，只在等待阶段允许
func (g *Game) AddPlayer(id, name string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != PhaseWaiting {
		return apperrors.ErrGameStarted
	}
	if len(g.players) >= g.opts.MaxPlayers {
		return apperrors.ErrRoomFull
	}
	g.players = append(g.players, player.New(id, name, len(g.players)))
	return nil
}

// StartGame 开始对局：洗牌、发牌、首家领出
func (g *Game) StartGame() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != PhaseWaiting {
		return apperrors.ErrGameStarted
	}
	if len(g.players) < 2 {
		return apperrors.ErrNotEnoughSeats
	}

	deck := card.NewDeck()
	deck.Shuffle()
	g.deck = deck
	g.discards = nil
	g.phase = PhasePlaying
	g.current = 0
	g.direction = 1
	g.activeColor = card.NoColor
	g.round = noRound{}

	// 发牌
	for _, p := range g.players {
		p.AddCards(g.deck[:g.opts.InitialHand]...)
		g.deck = g.deck[g.opts.InitialHand:]
	}

	seats := make([]SeatInfo, len(g.players))
	for i, p := range g.players {
		seats[i] = SeatInfo{PlayerID: p.ID, Name: p.Name, Seat: p.Seat}
	}
	g.sink.Broadcast(Event{Type: EventGameStarted, Data: GameStartedData{
		Players:       seats,
		FirstPlayerID: g.players[g.current].ID,
	}})
	for _, p := range g.players {
		g.sink.SendTo(p.ID, Event{Type: EventHandDealt, Data: HandDealtData{Cards: p.Hand}})
	}
	g.notifyTurn()
	return nil
}

// RemovePlayer 移除玩家，任何阶段都允许
// 进行中的对局会修复回合指针和吃碰杠队列
func (g *Game) RemovePlayer(playerID string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	idx := g.seatOf(playerID)
	if idx < 0 {
		return
	}

	g.cancelUno(playerID)

	if g.phase != PhasePlaying {
		g.dropSeat(idx)
		g.sink.Broadcast(Event{Type: EventPlayerRemoved, Data: PlayerRemovedData{PlayerID: playerID}})
		return
	}

	// 吃碰杠窗口先处理：出单者离场则窗口连同牌效一起作废，
	// 否则只从候选队列中剔除该玩家
	claimCollapsed := false
	if ac, ok := g.round.(awaitingClaim); ok {
		if ac.origin == idx {
			g.stopClaimTimer()
			g.round = noRound{}
			claimCollapsed = true
		} else {
			g.scrubClaimQueue(&ac, idx)
		}
	}

	// 手牌并入弃牌历史，之后可以被重洗回摸牌堆
	leaving := g.players[idx]
	if len(leaving.Hand) > 0 {
		g.discards = append([][]card.Card{leaving.Hand}, g.discards...)
	}

	// 轮到他时先把回合让出去
	if g.current == idx {
		g.current = g.nextActive(g.current)
	}

	g.dropSeat(idx)
	collapsed := g.repairRound(idx) || claimCollapsed
	if g.current > idx {
		g.current--
	}
	if g.current >= len(g.players) {
		g.current = 0
	}

	g.sink.Broadcast(Event{Type: EventPlayerRemoved, Data: PlayerRemovedData{PlayerID: playerID}})

	// 不足两人无法继续，直接终局
	if len(g.players) < 2 {
		var winner *player.Player
		if len(g.players) == 1 {
			winner = g.players[0]
		}
		g.endGame(winner)
		return
	}
	if collapsed {
		g.sink.Broadcast(Event{Type: EventRoundReset, Data: RoundResetData{LeaderID: g.players[g.current].ID}})
	}
	g.notifyTurn()
}

// seatOf 返回玩家座位索引，不存在返回 -1
func (g *Game) seatOf(playerID string) int {
	for i, p := range g.players {
		if p.ID == playerID {
			return i
		}
	}
	return -1
}

// dropSeat 移除座位并重排座位号
func (g *Game) dropSeat(idx int) {
	g.players = append(g.players[:idx], g.players[idx+1:]...)
	for i, p := range g.players {
		p.Seat = i
	}
}

// repairRound 修复回合状态中记录的座位索引
// 回合主人离场时这手牌失去归属，桌面清空改为自由领出，
// 返回 true 表示调用方需要广播一次回合重置
func (g *Game) repairRound(removed int) bool {
	adjust := func(seat int) int {
		if seat > removed {
			return seat - 1
		}
		return seat
	}
	switch r := g.round.(type) {
	case sheddingRound:
		if r.owner == removed {
			g.round = noRound{}
			return true
		}
		r.owner = adjust(r.owner)
		g.round = r
	case comboRound:
		if r.owner == removed {
			g.round = noRound{}
			return true
		}
		r.owner = adjust(r.owner)
		g.round = r
	case awaitingDraw:
		// 罚牌链照常结清，只有结清后要恢复的局面失去主人时退化
		switch prev := r.prev.(type) {
		case sheddingRound:
			if prev.owner == removed {
				r.prev = noRound{}
			} else {
				prev.owner = adjust(prev.owner)
				r.prev = prev
			}
		case comboRound:
			if prev.owner == removed {
				r.prev = noRound{}
			} else {
				prev.owner = adjust(prev.owner)
				r.prev = prev
			}
		}
		g.round = r
	case awaitingClaim:
		// 出牌者和候选都在进入这里之前处理过，剩下的只需平移座位号
		r.origin = adjust(r.origin)
		for i := range r.queue {
			r.queue[i].seat = adjust(r.queue[i].seat)
		}
		g.round = r
	}
	return false
}

// nextSeat 按方向计算下一个座位
func (g *Game) nextSeat(i int) int {
	n := len(g.players)
	return ((i+g.direction)%n + n) % n
}

// nextActive 找到下一个未被跳过的座位，途经的跳过标记一次性消耗
// 所有座位都被跳过时走满一圈后停在下一位，避免死循环
func (g *Game) nextActive(from int) int {
	seat := from
	for range len(g.players) {
		seat = g.nextSeat(seat)
		p := g.players[seat]
		if p.Skipped {
			p.Skipped = false
			continue
		}
		return seat
	}
	return g.nextSeat(from)
}

// draw 从摸牌堆取 n 张，耗尽时消费弃牌历史重洗
func (g *Game) draw(n int) []card.Card {
	cards := make([]card.Card, 0, n)
	for len(cards) < n {
		if len(g.deck) == 0 {
			g.reshuffle()
			if len(g.deck) == 0 {
				break // 全部牌都在手牌和进行中的牌组里
			}
		}
		cards = append(cards, g.deck[0])
		g.deck = g.deck[1:]
	}
	return cards
}

// reshuffle 把已结清的弃牌组洗回摸牌堆
// 仍在生效的那组（桌面上的最后一手，或被吃碰杠盯上的单张）不动
func (g *Game) reshuffle() {
	keep := 0
	switch g.round.(type) {
	case sheddingRound, comboRound, awaitingClaim, awaitingDraw:
		keep = 1
	}
	if len(g.discards) <= keep {
		return
	}
	cut := len(g.discards) - keep
	deck := card.Deck{}
	for _, group := range g.discards[:cut] {
		deck = append(deck, group...)
	}
	g.discards = g.discards[cut:]
	deck.Shuffle()
	g.deck = append(g.deck, deck...)
}

// giveCards 把摸到的牌交给玩家并发事件
func (g *Game) giveCards(p *player.Player, n int) int {
	cards := g.draw(n)
	if len(cards) == 0 {
		return 0
	}
	p.AddCards(cards...)
	g.sink.SendTo(p.ID, Event{Type: EventDrawnCards, Data: DrawnCardsData{Cards: cards}})
	g.sink.Broadcast(Event{Type: EventCardsDrawn, Data: CardsDrawnData{PlayerID: p.ID, Count: len(cards)}})
	return len(cards)
}

// notifyTurn 广播当前回合归属
func (g *Game) notifyTurn() {
	data := TurnData{PlayerID: g.players[g.current].ID}
	if ad, ok := g.round.(awaitingDraw); ok {
		data.PendingDraw = ad.count
		data.PendingType = ad.kind
	}
	g.sink.Broadcast(Event{Type: EventTurn, Data: data})
}

// endGame 终局：停掉所有定时器，结算金币，回调结算函数
func (g *Game) endGame(winner *player.Player) {
	g.phase = PhaseEnded
	g.stopClaimTimer()
	for id, t := range g.unoTimers {
		t.Stop()
		delete(g.unoTimers, id)
	}

	deltas := make(map[string]int, len(g.players))
	results := make([]PlayerResult, 0, len(g.players))
	total := 0
	winnerID := ""
	if winner != nil {
		winnerID = winner.ID
	}
	for _, p := range g.players {
		if p.ID == winnerID {
			continue
		}
		loss := p.HandSize() * g.opts.CoinPerCard
		deltas[p.ID] = -loss
		total += loss
		results = append(results, PlayerResult{PlayerID: p.ID, CardsLeft: p.HandSize(), Delta: -loss})
	}
	if winner != nil {
		deltas[winner.ID] = total
		results = append(results, PlayerResult{PlayerID: winner.ID, Delta: total})
	}

	g.sink.Broadcast(Event{Type: EventGameOver, Data: GameOverData{WinnerID: winnerID, Results: results}})

	if g.settle != nil {
		g.settle(Settlement{RoomID: g.roomID, WinnerID: winnerID, Deltas: deltas})
	}
}
