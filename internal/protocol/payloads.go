package protocol

// CardInfo 牌面信息
type CardInfo struct {
	ID    string `json:"id"`
	Color string `json:"color"` // red/yellow/green/blue，万能牌为空
	Type  string `json:"type"`  // number/skip/reverse/draw2/wild/wild4
	Value string `json:"value"` // 数字牌为 "0"-"9"，功能牌为符号名
}

// PlayerInfo 玩家公开信息
type PlayerInfo struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Seat      int          `json:"seat"`
	CardCount int          `json:"card_count"`
	Melds     [][]CardInfo `json:"melds,omitempty"` // 已亮出的吃碰杠副露
	CalledUno bool         `json:"called_uno"`
	Online    bool         `json:"online"`
}

// --- 客户端请求 Payloads ---

// PingPayload 心跳请求
type PingPayload struct {
	Timestamp int64 `json:"timestamp"` // 客户端时间戳（毫秒）
}

// JoinRoomPayload 加入房间请求
type JoinRoomPayload struct {
	RoomCode string `json:"room_code"`
}

// PlayCardsPayload 出牌请求
type PlayCardsPayload struct {
	CardIDs []string `json:"card_ids"`
	Color   string   `json:"color,omitempty"` // 万能牌的选色
}

// ClaimPayload 吃碰杠请求，碰和杠不需要指明具体的牌
type ClaimPayload struct {
	CardIDs []string `json:"card_ids,omitempty"` // 吃需要给出两张搭子
}

// GetLeaderboardPayload 获取排行榜请求
type GetLeaderboardPayload struct {
	Offset int `json:"offset"` // 偏移量
	Limit  int `json:"limit"`  // 数量
}

// --- 服务端响应 Payloads ---

// ConnectedPayload 连接成功响应
type ConnectedPayload struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
}

// PongPayload 心跳响应
type PongPayload struct {
	ClientTimestamp int64 `json:"client_timestamp"` // 客户端发送的时间戳
	ServerTimestamp int64 `json:"server_timestamp"` // 服务器时间戳（毫秒）
}

// PlayerOfflinePayload 玩家掉线通知
type PlayerOfflinePayload struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
}

// PlayerOnlinePayload 玩家上线通知
type PlayerOnlinePayload struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
}

// RoomCreatedPayload 房间创建成功响应
type RoomCreatedPayload struct {
	RoomCode string     `json:"room_code"`
	Player   PlayerInfo `json:"player"`
}

// RoomJoinedPayload 加入房间成功响应
type RoomJoinedPayload struct {
	RoomCode string       `json:"room_code"`
	Player   PlayerInfo   `json:"player"`
	Players  []PlayerInfo `json:"players"` // 房间内所有玩家
}

// PlayerJoinedPayload 其他玩家加入通知
type PlayerJoinedPayload struct {
	Player PlayerInfo `json:"player"`
}

// PlayerLeftPayload 玩家离开通知
type PlayerLeftPayload struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
}

// GameStartPayload 游戏开始通知
type GameStartPayload struct {
	Players       []PlayerInfo `json:"players"` // 按座位顺序排列
	FirstPlayerID string       `json:"first_player_id"`
}

// DealCardsPayload 发牌通知
type DealCardsPayload struct {
	Cards []CardInfo `json:"cards"` // 玩家自己的手牌
}

// PlayTurnPayload 轮到出牌通知
type PlayTurnPayload struct {
	PlayerID    string `json:"player_id"`
	PendingDraw int    `json:"pending_draw,omitempty"` // 待承受的罚牌数
	PendingType string `json:"pending_type,omitempty"` // 罚牌由加二还是加四引发
}

// CardPlayedPayload 出牌通知
type CardPlayedPayload struct {
	PlayerID    string     `json:"player_id"`
	Cards       []CardInfo `json:"cards"`
	HandType    string     `json:"hand_type"` // 牌型名称
	CardsLeft   int        `json:"cards_left"`
	ActiveColor string     `json:"active_color"`
	Direction   int        `json:"direction"`
}

// PlayerPassPayload 过牌通知
type PlayerPassPayload struct {
	PlayerID string `json:"player_id"`
	Drew     int    `json:"drew"` // 过牌附带的摸牌数
}

// CardsDrawnPayload 有人摸牌通知（不含牌面）
type CardsDrawnPayload struct {
	PlayerID string `json:"player_id"`
	Count    int    `json:"count"`
}

// DrawnCardsPayload 自己摸到的牌
type DrawnCardsPayload struct {
	Cards []CardInfo `json:"cards"`
}

// DrawPenaltyPayload 罚牌落地通知
type DrawPenaltyPayload struct {
	PlayerID string `json:"player_id"`
	Count    int    `json:"count"`
}

// ClaimWindowPayload 吃碰杠窗口通知
type ClaimWindowPayload struct {
	PlayerID string   `json:"player_id"` // 当前独占窗口的玩家
	Kind     string   `json:"kind"`      // chi/peng/gang
	Card     CardInfo `json:"card"`      // 被吃碰杠的目标牌
	Timeout  int      `json:"timeout"`   // 窗口时长（秒）
}

// ClaimMadePayload 吃碰杠成立通知
type ClaimMadePayload struct {
	PlayerID string     `json:"player_id"`
	Kind     string     `json:"kind"`
	Meld     []CardInfo `json:"meld"`
}

// RoundResetPayload 回合重置通知
type RoundResetPayload struct {
	LeaderID string `json:"leader_id"` // 重新领出的玩家
}

// UnoCalledPayload 报牌通知
type UnoCalledPayload struct {
	PlayerID string `json:"player_id"`
}

// UnoPenaltyPayload 漏报罚牌通知
type UnoPenaltyPayload struct {
	PlayerID string `json:"player_id"`
	Count    int    `json:"count"`
}

// GameOverPayload 游戏结束通知
type GameOverPayload struct {
	WinnerID string         `json:"winner_id"`
	Results  []PlayerResult `json:"results"`
}

// PlayerResult 单个玩家的结算结果
type PlayerResult struct {
	PlayerID  string `json:"player_id"`
	CardsLeft int    `json:"cards_left"`
	Delta     int    `json:"delta"` // 金币增减
}

// ErrorPayload 错误响应
type ErrorPayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// StatsResultPayload 个人统计结果
type StatsResultPayload struct {
	PlayerID   string  `json:"player_id"`
	PlayerName string  `json:"player_name"`
	TotalGames int     `json:"total_games"`
	Wins       int     `json:"wins"`
	Losses     int     `json:"losses"`
	WinRate    float64 `json:"win_rate"`
	Coins      int     `json:"coins"`
	Rank       int     `json:"rank"`
}

// LeaderboardResultPayload 排行榜结果
type LeaderboardResultPayload struct {
	Entries []LeaderboardEntry `json:"entries"`
}

// LeaderboardEntry 排行榜条目
type LeaderboardEntry struct {
	Rank       int     `json:"rank"`
	PlayerID   string  `json:"player_id"`
	PlayerName string  `json:"player_name"`
	Coins      int     `json:"coins"`
	Wins       int     `json:"wins"`
	WinRate    float64 `json:"win_rate"`
}
