package server

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/feiyu233/uno-fusion/internal/apperrors"
	"github.com/feiyu233/uno-fusion/internal/game/engine"
	"github.com/feiyu233/uno-fusion/internal/protocol"
)

// Handler 入站消息处理器
type Handler struct {
	server *Server
}

// NewHandler 创建处理器
func NewHandler(s *Server) *Handler {
	return &Handler{server: s}
}

// Handle 按消息类型分发
func (h *Handler) Handle(c *Client, msg *protocol.Message) {
	switch msg.Type {
	case protocol.MsgPing:
		h.handlePing(c, msg)
	case protocol.MsgCreateRoom:
		h.handleCreateRoom(c)
	case protocol.MsgJoinRoom:
		h.handleJoinRoom(c, msg)
	case protocol.MsgLeaveRoom:
		h.server.roomManager.LeaveRoom(c)
	case protocol.MsgStartGame:
		h.handleStartGame(c)
	case protocol.MsgPlayCards:
		h.handlePlayCards(c, msg)
	case protocol.MsgDrawCard:
		h.handleGameAction(c, engine.Action{Type: engine.ActionDrawCard, PlayerID: c.ID})
	case protocol.MsgPass:
		h.handleGameAction(c, engine.Action{Type: engine.ActionPass, PlayerID: c.ID})
	case protocol.MsgCallUno:
		h.handleGameAction(c, engine.Action{Type: engine.ActionCallUno, PlayerID: c.ID})
	case protocol.MsgChi:
		h.handleClaim(c, msg, engine.ActionChi)
	case protocol.MsgPeng:
		h.handleClaim(c, msg, engine.ActionPeng)
	case protocol.MsgGang:
		h.handleClaim(c, msg, engine.ActionGang)
	case protocol.MsgPassClaim:
		h.handleGameAction(c, engine.Action{Type: engine.ActionPassClaim, PlayerID: c.ID})
	case protocol.MsgGetStats:
		h.handleGetStats(c)
	case protocol.MsgGetLeaderboard:
		h.handleGetLeaderboard(c, msg)
	default:
		log.Printf("未知消息类型: %s (来自 %s)", msg.Type, c.Name)
		c.SendMessage(protocol.NewErrorMessage(apperrors.CodeInvalidMsg))
	}
}

// sendError 把引擎的拒绝翻译成错误消息
func (h *Handler) sendError(c *Client, err error) {
	var gameErr *apperrors.GameError
	if errors.As(err, &gameErr) {
		c.SendMessage(protocol.NewErrorMessageWithText(gameErr.Code, gameErr.Message))
		return
	}
	c.SendMessage(protocol.NewErrorMessage(apperrors.CodeUnknown))
}

func (h *Handler) handlePing(c *Client, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.PingPayload](msg)
	if err != nil {
		c.SendMessage(protocol.NewErrorMessage(apperrors.CodeInvalidMsg))
		return
	}
	c.SendMessage(protocol.MustNewMessage(protocol.MsgPong, protocol.PongPayload{
		ClientTimestamp: payload.Timestamp,
		ServerTimestamp: time.Now().UnixMilli(),
	}))
}

func (h *Handler) handleCreateRoom(c *Client) {
	if c.GetRoom() != "" {
		h.server.roomManager.LeaveRoom(c)
	}

	room, err := h.server.roomManager.CreateRoom(c)
	if err != nil {
		h.sendError(c, err)
		return
	}

	c.SendMessage(protocol.MustNewMessage(protocol.MsgRoomCreated, protocol.RoomCreatedPayload{
		RoomCode: room.Code,
		Player:   h.playerInfo(room, c.ID),
	}))
}

func (h *Handler) handleJoinRoom(c *Client, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.JoinRoomPayload](msg)
	if err != nil {
		c.SendMessage(protocol.NewErrorMessage(apperrors.CodeInvalidMsg))
		return
	}

	room, err := h.server.roomManager.JoinRoom(c, payload.RoomCode)
	if err != nil {
		h.sendError(c, err)
		return
	}

	view := room.Game().View()
	players := make([]protocol.PlayerInfo, len(view.Players))
	for i, p := range view.Players {
		players[i] = protocol.FromPlayerView(p)
	}

	c.SendMessage(protocol.MustNewMessage(protocol.MsgRoomJoined, protocol.RoomJoinedPayload{
		RoomCode: room.Code,
		Player:   h.playerInfo(room, c.ID),
		Players:  players,
	}))

	// 通知其他成员
	joined := protocol.MustNewMessage(protocol.MsgPlayerJoined, protocol.PlayerJoinedPayload{
		Player: h.playerInfo(room, c.ID),
	})
	for _, p := range view.Players {
		if p.ID != c.ID {
			room.sendTo(p.ID, joined)
		}
	}
}

func (h *Handler) handleStartGame(c *Client) {
	room := h.server.roomManager.GetRoom(c.GetRoom())
	if room == nil {
		c.SendMessage(protocol.NewErrorMessage(apperrors.CodeNotInRoom))
		return
	}
	// 只有房主能开局
	if !room.IsHost(c.ID) {
		c.SendMessage(protocol.NewErrorMessageWithText(apperrors.CodeInvalidMsg, "只有房主可以开始游戏"))
		return
	}
	if err := room.Game().StartGame(); err != nil {
		h.sendError(c, err)
	}
}

func (h *Handler) handlePlayCards(c *Client, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.PlayCardsPayload](msg)
	if err != nil {
		c.SendMessage(protocol.NewErrorMessage(apperrors.CodeInvalidMsg))
		return
	}
	h.handleGameAction(c, engine.Action{
		Type:     engine.ActionPlayCards,
		PlayerID: c.ID,
		CardIDs:  payload.CardIDs,
		Color:    protocol.ParseColor(payload.Color),
	})
}

func (h *Handler) handleClaim(c *Client, msg *protocol.Message, action engine.ActionType) {
	var cardIDs []string
	if len(msg.Payload) > 0 {
		payload, err := protocol.ParsePayload[protocol.ClaimPayload](msg)
		if err != nil {
			c.SendMessage(protocol.NewErrorMessage(apperrors.CodeInvalidMsg))
			return
		}
		cardIDs = payload.CardIDs
	}
	h.handleGameAction(c, engine.Action{Type: action, PlayerID: c.ID, CardIDs: cardIDs})
}

func (h *Handler) handleGameAction(c *Client, action engine.Action) {
	room := h.server.roomManager.GetRoom(c.GetRoom())
	if room == nil {
		c.SendMessage(protocol.NewErrorMessage(apperrors.CodeNotInRoom))
		return
	}
	if err := room.Game().HandleAction(action); err != nil {
		h.sendError(c, err)
	}
}

func (h *Handler) handleGetStats(c *Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	stats, err := h.server.store.GetPlayerStats(ctx, c.ID)
	if err != nil {
		log.Printf("❌ 读取玩家 %s 统计失败: %v", c.ID, err)
		c.SendMessage(protocol.NewErrorMessage(apperrors.CodeUnknown))
		return
	}

	result := protocol.StatsResultPayload{PlayerID: c.ID, PlayerName: c.Name}
	if stats != nil {
		rank, err := h.server.store.GetRank(ctx, c.ID)
		if err != nil {
			log.Printf("❌ 读取玩家 %s 排名失败: %v", c.ID, err)
		}
		result.TotalGames = stats.TotalGames
		result.Wins = stats.Wins
		result.Losses = stats.Losses
		result.WinRate = stats.WinRate()
		result.Coins = stats.Coins
		result.Rank = rank
	}
	c.SendMessage(protocol.MustNewMessage(protocol.MsgStatsResult, result))
}

func (h *Handler) handleGetLeaderboard(c *Client, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.GetLeaderboardPayload](msg)
	if err != nil {
		c.SendMessage(protocol.NewErrorMessage(apperrors.CodeInvalidMsg))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	entries, err := h.server.store.GetLeaderboard(ctx, payload.Offset, payload.Limit)
	if err != nil {
		log.Printf("❌ 读取排行榜失败: %v", err)
		c.SendMessage(protocol.NewErrorMessage(apperrors.CodeUnknown))
		return
	}

	result := protocol.LeaderboardResultPayload{Entries: make([]protocol.LeaderboardEntry, len(entries))}
	for i, e := range entries {
		result.Entries[i] = protocol.LeaderboardEntry{
			Rank:       e.Rank,
			PlayerID:   e.PlayerID,
			PlayerName: e.PlayerName,
			Coins:      e.Coins,
			Wins:       e.Wins,
			WinRate:    e.WinRate,
		}
	}
	c.SendMessage(protocol.MustNewMessage(protocol.MsgLeaderboardResult, result))
}

// playerInfo 从对局视图里取某个玩家的公开信息
func (h *Handler) playerInfo(room *Room, playerID string) protocol.PlayerInfo {
	for _, p := range room.Game().View().Players {
		if p.ID == playerID {
			return protocol.FromPlayerView(p)
		}
	}
	return protocol.PlayerInfo{ID: playerID}
}
