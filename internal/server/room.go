package server

import (
	"context"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/feiyu233/uno-fusion/internal/apperrors"
	"github.com/feiyu233/uno-fusion/internal/game/engine"
	"github.com/feiyu233/uno-fusion/internal/protocol"
)

const (
	// 房间号长度
	roomCodeLength = 6
	// 房间号字符集
	roomCodeChars = "0123456789"
)

// Room 游戏房间，一个房间对应一局引擎
type Room struct {
	Code      string
	CreatedAt time.Time

	game   *engine.Game
	server *Server
	hostID string

	mu      sync.RWMutex
	members map[string]*Client
}

// roomSink 把引擎事件转成消息投递给房间成员
// 引擎在持锁状态下回调，这里只做编码和入队，绝不回调引擎
type roomSink struct {
	room *Room
}

func (rs roomSink) Broadcast(ev engine.Event) {
	msg := protocol.FromEvent(ev, rs.room.server.config.Game.ClaimWindow)
	if msg == nil {
		return
	}
	rs.room.broadcast(msg)
}

func (rs roomSink) SendTo(playerID string, ev engine.Event) {
	msg := protocol.FromEvent(ev, rs.room.server.config.Game.ClaimWindow)
	if msg == nil {
		return
	}
	rs.room.sendTo(playerID, msg)
}

// broadcast 给房间所有在线成员发消息
func (r *Room) broadcast(msg *protocol.Message) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.members {
		c.SendMessage(msg)
	}
}

// sendTo 给房间内某个成员单发消息
func (r *Room) sendTo(playerID string, msg *protocol.Message) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if c, ok := r.members[playerID]; ok {
		c.SendMessage(msg)
	}
}

// addMember 把客户端挂进房间
func (r *Room) addMember(client *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.members[client.ID] = client
}

// removeMember 把客户端摘出房间，返回剩余人数
func (r *Room) removeMember(playerID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.members, playerID)
	return len(r.members)
}

// memberNames 当前成员的昵称映射，结算落库时用
func (r *Room) memberNames() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make(map[string]string, len(r.members))
	for id, c := range r.members {
		names[id] = c.Name
	}
	return names
}

// Game 房间内的对局
func (r *Room) Game() *engine.Game {
	return r.game
}

// IsHost 是否房主
func (r *Room) IsHost(playerID string) bool {
	return r.hostID == playerID
}

// RoomManager 房间管理器
type RoomManager struct {
	server *Server
	mu     sync.RWMutex
	rooms  map[string]*Room
}

// NewRoomManager 创建房间管理器
func NewRoomManager(s *Server) *RoomManager {
	rm := &RoomManager{
		server: s,
		rooms:  make(map[string]*Room),
	}

	// 启动房间清理协程
	go rm.cleanupLoop()

	return rm
}

// CreateRoom 创建房间，创建者即房主
func (rm *RoomManager) CreateRoom(client *Client) (*Room, error) {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	code := rm.generateRoomCode()
	cfg := rm.server.config.Game

	room := &Room{
		Code:      code,
		CreatedAt: time.Now(),
		server:    rm.server,
		hostID:    client.ID,
		members:   make(map[string]*Client),
	}
	opts := engine.Options{
		ClaimWindow: cfg.ClaimWindowDuration(),
		UnoDeadline: cfg.UnoDeadlineDuration(),
		InitialHand: cfg.InitialHand,
		MaxPlayers:  cfg.MaxPlayers,
		CoinPerCard: cfg.CoinPerCard,
	}
	room.game = engine.NewGame(code, opts, roomSink{room: room}, engine.NewScheduler(), rm.server.settleRoom(room))

	if err := room.game.AddPlayer(client.ID, client.Name); err != nil {
		return nil, err
	}
	room.addMember(client)
	client.SetRoom(code)
	rm.rooms[code] = room

	log.Printf("🏠 房间 %s 已创建，房主 %s", code, client.Name)
	return room, nil
}

// JoinRoom 加入房间
func (rm *RoomManager) JoinRoom(client *Client, code string) (*Room, error) {
	rm.mu.RLock()
	room, exists := rm.rooms[code]
	rm.mu.RUnlock()
	if !exists {
		return nil, apperrors.ErrRoomNotFound
	}

	if err := room.game.AddPlayer(client.ID, client.Name); err != nil {
		return nil, err
	}
	room.addMember(client)
	client.SetRoom(code)

	log.Printf("🚪 玩家 %s 加入房间 %s", client.Name, code)
	return room, nil
}

// LeaveRoom 离开房间，空房间立即销毁
func (rm *RoomManager) LeaveRoom(client *Client) {
	code := client.GetRoom()
	if code == "" {
		return
	}

	rm.mu.RLock()
	room, exists := rm.rooms[code]
	rm.mu.RUnlock()
	if !exists {
		return
	}

	left := room.removeMember(client.ID)
	client.SetRoom("")
	room.game.RemovePlayer(client.ID)

	log.Printf("👋 玩家 %s 离开房间 %s", client.Name, code)

	if left == 0 {
		rm.destroyRoom(code)
	}
}

// GetRoom 按房间号取房间
func (rm *RoomManager) GetRoom(code string) *Room {
	rm.mu.RLock()
	defer rm.mu.RUnlock()
	return rm.rooms[code]
}

// GetActiveGamesCount 进行中的对局数
func (rm *RoomManager) GetActiveGamesCount() int {
	rm.mu.RLock()
	defer rm.mu.RUnlock()
	count := 0
	for _, room := range rm.rooms {
		if room.game.Phase() == engine.PhasePlaying {
			count++
		}
	}
	return count
}

// NotifyPlayerOffline 玩家掉线，标记离线但不踢出
func (rm *RoomManager) NotifyPlayerOffline(client *Client) {
	rm.mu.RLock()
	room, exists := rm.rooms[client.GetRoom()]
	rm.mu.RUnlock()
	if !exists {
		return
	}

	room.game.SetOnline(client.ID, false)
	room.broadcast(protocol.MustNewMessage(protocol.MsgPlayerOffline, protocol.PlayerOfflinePayload{
		PlayerID:   client.ID,
		PlayerName: client.Name,
	}))

	// 等待中的房间不保留掉线玩家的座位
	if room.game.Phase() == engine.PhaseWaiting {
		rm.LeaveRoom(client)
	}
}

// destroyRoom 销毁房间
func (rm *RoomManager) destroyRoom(code string) {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	if _, ok := rm.rooms[code]; ok {
		delete(rm.rooms, code)
		log.Printf("🗑️ 房间 %s 已销毁", code)
	}
}

// generateRoomCode 生成不重复的房间号，调用方持有 rm.mu
func (rm *RoomManager) generateRoomCode() string {
	for {
		code := make([]byte, roomCodeLength)
		for i := range code {
			code[i] = roomCodeChars[rand.Intn(len(roomCodeChars))]
		}
		if _, exists := rm.rooms[string(code)]; !exists {
			return string(code)
		}
	}
}

// cleanupLoop 定期清理终局的和等待超时的房间
func (rm *RoomManager) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		timeout := rm.server.config.Game.RoomTimeoutDuration()

		rm.mu.Lock()
		for code, room := range rm.rooms {
			switch room.game.Phase() {
			case engine.PhaseEnded:
				delete(rm.rooms, code)
				log.Printf("🗑️ 房间 %s 对局结束，已清理", code)
			case engine.PhaseWaiting:
				if time.Since(room.CreatedAt) > timeout {
					delete(rm.rooms, code)
					log.Printf("🗑️ 房间 %s 等待超时，已清理", code)
				}
			}
		}
		rm.mu.Unlock()
	}
}

// settleRoom 返回某房间的结算回调，终局后把金币变动落进 Redis
func (s *Server) settleRoom(room *Room) engine.SettleFunc {
	return func(settlement engine.Settlement) {
		names := room.memberNames()
		// 结算回调在引擎持锁状态下触发，落库放到后台
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := s.store.ApplySettlement(ctx, settlement, names); err != nil {
				log.Printf("❌ 房间 %s 结算落库失败: %v", settlement.RoomID, err)
				return
			}
			log.Printf("💰 房间 %s 结算完成，赢家 %s", settlement.RoomID, settlement.WinnerID)
		}()
	}
}
