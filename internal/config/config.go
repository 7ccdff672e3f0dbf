package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config 服务端配置
type Config struct {
	Server ServerConfig `yaml:"server"`
	Redis  RedisConfig  `yaml:"redis"`
	Game   GameConfig   `yaml:"game"`
}

// ServerConfig WebSocket 服务器配置
type ServerConfig struct {
	Host           string `yaml:"host"`
	Port           int    `yaml:"port"`
	MaxConnections int    `yaml:"max_connections"`
}

// RedisConfig Redis 配置
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// GameConfig 游戏配置
type GameConfig struct {
	ClaimWindow int `yaml:"claim_window"` // 吃碰杠窗口（秒）
	UnoDeadline int `yaml:"uno_deadline"` // 报牌期限（秒）
	InitialHand int `yaml:"initial_hand"` // 起手牌数
	MaxPlayers  int `yaml:"max_players"`  // 每房间最大人数
	CoinPerCard int `yaml:"coin_per_card"`
	RoomTimeout int `yaml:"room_timeout"` // 房间等待超时（分钟）
}

// ClaimWindowDuration 返回吃碰杠窗口时长
func (c *GameConfig) ClaimWindowDuration() time.Duration {
	return time.Duration(c.ClaimWindow) * time.Second
}

// UnoDeadlineDuration 返回报牌期限时长
func (c *GameConfig) UnoDeadlineDuration() time.Duration {
	return time.Duration(c.UnoDeadline) * time.Second
}

// RoomTimeoutDuration 返回房间等待超时时长
func (c *GameConfig) RoomTimeoutDuration() time.Duration {
	return time.Duration(c.RoomTimeout) * time.Minute
}

// Load 加载配置文件
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// 设置默认值
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 1780
	}
	if cfg.Server.MaxConnections == 0 {
		cfg.Server.MaxConnections = 1024
	}
	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = "localhost:6379"
	}
	if cfg.Game.ClaimWindow == 0 {
		cfg.Game.ClaimWindow = 10
	}
	if cfg.Game.UnoDeadline == 0 {
		cfg.Game.UnoDeadline = 5
	}
	if cfg.Game.InitialHand == 0 {
		cfg.Game.InitialHand = 7
	}
	if cfg.Game.MaxPlayers == 0 {
		cfg.Game.MaxPlayers = 8
	}
	if cfg.Game.CoinPerCard == 0 {
		cfg.Game.CoinPerCard = 10
	}
	if cfg.Game.RoomTimeout == 0 {
		cfg.Game.RoomTimeout = 10
	}

	return &cfg, nil
}

// Default 返回默认配置
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:           "0.0.0.0",
			Port:           1780,
			MaxConnections: 1024,
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		Game: GameConfig{
			ClaimWindow: 10,
			UnoDeadline: 5,
			InitialHand: 7,
			MaxPlayers:  8,
			CoinPerCard: 10,
			RoomTimeout: 10,
		},
	}
}
