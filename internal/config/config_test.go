package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 1780, cfg.Server.Port)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 10*time.Second, cfg.Game.ClaimWindowDuration())
	assert.Equal(t, 5*time.Second, cfg.Game.UnoDeadlineDuration())
	assert.Equal(t, 10*time.Minute, cfg.Game.RoomTimeoutDuration())
}

func TestLoadFillsDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 9000
game:
  claim_window: 3
  max_players: 4
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 3, cfg.Game.ClaimWindow)
	assert.Equal(t, 4, cfg.Game.MaxPlayers)
	// 未填写的字段回落到默认值
	assert.Equal(t, 5, cfg.Game.UnoDeadline)
	assert.Equal(t, 7, cfg.Game.InitialHand)
	assert.Equal(t, 10, cfg.Game.CoinPerCard)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load("no/such/file.yaml")
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not a map"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
