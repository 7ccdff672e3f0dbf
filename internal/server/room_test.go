package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feiyu233/uno-fusion/internal/config"
	"github.com/feiyu233/uno-fusion/internal/game/engine"
)

// newTestClient 不带真实连接的客户端，消息落进 send 缓冲即可
func newTestClient(srv *Server, id, name string) *Client {
	return &Client{
		ID:     id,
		Name:   name,
		server: srv,
		send:   make(chan []byte, 256),
	}
}

func newTestServer() *Server {
	return &Server{
		config:  config.Default(),
		clients: make(map[string]*Client),
	}
}

func TestRoomManager_CreateAndJoin(t *testing.T) {
	srv := newTestServer()
	rm := NewRoomManager(srv)

	host := newTestClient(srv, "p1", "房主")
	room, err := rm.CreateRoom(host)
	require.NoError(t, err)
	require.NotNil(t, room)

	assert.Len(t, room.Code, 6)
	assert.Equal(t, room.Code, host.GetRoom())
	assert.True(t, room.IsHost("p1"))
	assert.Same(t, room, rm.GetRoom(room.Code))

	guest := newTestClient(srv, "p2", "路人")
	joined, err := rm.JoinRoom(guest, room.Code)
	require.NoError(t, err)
	assert.Same(t, room, joined)
	assert.Equal(t, 2, room.Game().PlayerCount())
}

func TestRoomManager_JoinUnknownRoom(t *testing.T) {
	srv := newTestServer()
	rm := NewRoomManager(srv)

	guest := newTestClient(srv, "p1", "路人")
	_, err := rm.JoinRoom(guest, "000000")
	assert.Error(t, err)
	assert.Empty(t, guest.GetRoom())
}

func TestRoomManager_LeaveDestroysEmptyRoom(t *testing.T) {
	srv := newTestServer()
	rm := NewRoomManager(srv)

	host := newTestClient(srv, "p1", "房主")
	room, err := rm.CreateRoom(host)
	require.NoError(t, err)

	rm.LeaveRoom(host)

	assert.Empty(t, host.GetRoom())
	assert.Nil(t, rm.GetRoom(room.Code))
}

func TestRoomManager_ActiveGamesCount(t *testing.T) {
	srv := newTestServer()
	rm := NewRoomManager(srv)

	host := newTestClient(srv, "p1", "房主")
	room, err := rm.CreateRoom(host)
	require.NoError(t, err)

	// 等待中的房间不计入
	assert.Zero(t, rm.GetActiveGamesCount())

	guest := newTestClient(srv, "p2", "路人")
	_, err = rm.JoinRoom(guest, room.Code)
	require.NoError(t, err)

	require.NoError(t, room.Game().StartGame())
	assert.Equal(t, engine.PhasePlaying, room.Game().Phase())
	assert.Equal(t, 1, rm.GetActiveGamesCount())
}

func TestRoomCodesAreUniqueDigits(t *testing.T) {
	srv := newTestServer()
	rm := NewRoomManager(srv)

	seen := make(map[string]bool)
	for i := range 20 {
		client := newTestClient(srv, string(rune('A'+i)), "玩家")
		room, err := rm.CreateRoom(client)
		require.NoError(t, err)

		assert.False(t, seen[room.Code])
		seen[room.Code] = true
		for _, ch := range room.Code {
			assert.True(t, ch >= '0' && ch <= '9')
		}
	}
}
