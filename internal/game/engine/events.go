package engine

import (
	"github.com/feiyu233/uno-fusion/internal/game/card"
	"github.com/feiyu233/uno-fusion/internal/game/rule"
)

// EventType 引擎对外发出的事件类型
type EventType string

const (
	EventGameStarted   EventType = "game_started"
	EventHandDealt     EventType = "hand_dealt" // 单发给本人
	EventTurn          EventType = "turn"
	EventCardsPlayed   EventType = "cards_played"
	EventPlayerPassed  EventType = "player_passed"
	EventCardsDrawn    EventType = "cards_drawn"
	EventDrawnCards    EventType = "drawn_cards" // 单发给本人，含具体牌面
	EventDrawPenalty   EventType = "draw_penalty"
	EventClaimWindow   EventType = "claim_window"
	EventClaimMade     EventType = "claim_made"
	EventRoundReset    EventType = "round_reset"
	EventUnoCalled     EventType = "uno_called"
	EventUnoPenalty    EventType = "uno_penalty"
	EventPlayerRemoved EventType = "player_removed"
	EventGameOver      EventType = "game_over"
)

// Event 引擎产生的事件记录，由外层（房间/传输层）转成广播消息
// 引擎本身不做任何网络操作
type Event struct {
	Type EventType
	Data any
}

// Sink 事件出口：广播给全房间，或单发给某个玩家
type Sink interface {
	Broadcast(ev Event)
	SendTo(playerID string, ev Event)
}

// Settlement 对局结束后的结算记录，每局恰好回调一次
type Settlement struct {
	RoomID   string
	WinnerID string
	Deltas   map[string]int // playerID -> 金币增减
}

// SettleFunc 结算回调，金币的持久化由外部负责
type SettleFunc func(s Settlement)

// --- 事件数据 ---

type SeatInfo struct {
	PlayerID string
	Name     string
	Seat     int
}

type GameStartedData struct {
	Players       []SeatInfo
	FirstPlayerID string
}

type HandDealtData struct {
	Cards []card.Card
}

type TurnData struct {
	PlayerID    string
	PendingDraw int       // 待承受的罚牌数，0 表示无
	PendingType card.Type // 罚牌由加二还是加四引发
}

type CardsPlayedData struct {
	PlayerID    string
	Cards       []card.Card
	HandType    rule.HandType
	CardsLeft   int
	ActiveColor card.Color
	Direction   int
}

type PlayerPassedData struct {
	PlayerID string
	Drew     int // PASS 附带的摸牌数
}

type CardsDrawnData struct {
	PlayerID string
	Count    int
}

type DrawnCardsData struct {
	Cards []card.Card
}

type DrawPenaltyData struct {
	PlayerID string
	Count    int
}

type ClaimWindowData struct {
	PlayerID string // 当前独占窗口的玩家
	Kind     ClaimKind
	Card     card.Card // 被吃碰杠的目标牌
}

type ClaimMadeData struct {
	PlayerID string
	Kind     ClaimKind
	Meld     []card.Card
}

type RoundResetData struct {
	LeaderID string
}

type UnoCalledData struct {
	PlayerID string
}

type UnoPenaltyData struct {
	PlayerID string
	Count    int
}

type PlayerRemovedData struct {
	PlayerID string
}

type PlayerResult struct {
	PlayerID  string
	CardsLeft int
	Delta     int
}

type GameOverData struct {
	WinnerID string
	Results  []PlayerResult
}
