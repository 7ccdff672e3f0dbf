package protocol

import "encoding/json"

// Message 基础消息结构
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MessageType 消息类型
type MessageType string

// 客户端 → 服务端 消息类型
const (
	// 连接操作
	MsgPing MessageType = "ping" // 心跳 ping

	// 房间操作
	MsgCreateRoom MessageType = "create_room" // 创建房间
	MsgJoinRoom   MessageType = "join_room"   // 加入房间
	MsgLeaveRoom  MessageType = "leave_room"  // 离开房间
	MsgStartGame  MessageType = "start_game"  // 房主开局

	// 游戏操作
	MsgPlayCards MessageType = "play_cards" // 出牌
	MsgDrawCard  MessageType = "draw_card"  // 摸牌/过
	MsgPass      MessageType = "pass"       // 过（等同摸牌）
	MsgCallUno   MessageType = "call_uno"   // 报牌
	MsgChi       MessageType = "chi"        // 吃
	MsgPeng      MessageType = "peng"       // 碰
	MsgGang      MessageType = "gang"       // 杠
	MsgPassClaim MessageType = "pass_claim" // 放弃吃碰杠

	// 排行榜
	MsgGetStats       MessageType = "get_stats"       // 获取个人统计
	MsgGetLeaderboard MessageType = "get_leaderboard" // 获取排行榜
)

// 服务端 → 客户端 消息类型
const (
	// 连接相关
	MsgConnected     MessageType = "connected"      // 连接成功
	MsgPong          MessageType = "pong"           // 心跳 pong
	MsgPlayerOffline MessageType = "player_offline" // 玩家掉线通知
	MsgPlayerOnline  MessageType = "player_online"  // 玩家上线通知

	// 房间相关
	MsgRoomCreated  MessageType = "room_created"  // 房间创建成功
	MsgRoomJoined   MessageType = "room_joined"   // 加入房间成功
	MsgPlayerJoined MessageType = "player_joined" // 其他玩家加入
	MsgPlayerLeft   MessageType = "player_left"   // 玩家离开

	// 游戏流程
	MsgGameStart   MessageType = "game_start"   // 游戏开始
	MsgDealCards   MessageType = "deal_cards"   // 发牌
	MsgPlayTurn    MessageType = "play_turn"    // 轮到出牌
	MsgCardPlayed  MessageType = "card_played"  // 有人出牌
	MsgPlayerPass  MessageType = "player_pass"  // 有人过牌
	MsgCardsDrawn  MessageType = "cards_drawn"  // 有人摸牌
	MsgDrawnCards  MessageType = "drawn_cards"  // 自己摸到的牌
	MsgDrawPenalty MessageType = "draw_penalty" // 罚牌落地
	MsgClaimWindow MessageType = "claim_window" // 吃碰杠窗口
	MsgClaimMade   MessageType = "claim_made"   // 吃碰杠成立
	MsgRoundReset  MessageType = "round_reset"  // 回合重置
	MsgUnoCalled   MessageType = "uno_called"   // 有人报牌
	MsgUnoPenalty  MessageType = "uno_penalty"  // 漏报罚牌
	MsgGameOver    MessageType = "game_over"    // 游戏结束

	// 排行榜
	MsgStatsResult       MessageType = "stats_result"       // 个人统计结果
	MsgLeaderboardResult MessageType = "leaderboard_result" // 排行榜结果

	// 错误
	MsgError MessageType = "error" // 错误消息
)
