package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/feiyu233/uno-fusion/internal/game/engine"
)

const (
	// Redis key
	playerStatsKey = "player:stats:"
	leaderboardKey = "leaderboard:coins"
)

// PlayerStats 玩家统计数据
type PlayerStats struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`

	TotalGames int `json:"total_games"` // 总场次
	Wins       int `json:"wins"`        // 胜场
	Losses     int `json:"losses"`      // 败场

	Coins int `json:"coins"` // 当前金币

	LastPlayedAt int64 `json:"last_played_at"` // 最后游戏时间
	CreatedAt    int64 `json:"created_at"`     // 首次游戏时间
}

// WinRate 胜率
func (s *PlayerStats) WinRate() float64 {
	if s.TotalGames == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.TotalGames)
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

// Store 战绩与排行榜的 Redis 存储
type Store struct {
	redis *redis.Client
}

// NewStore 创建存储
func NewStore(client *redis.Client) *Store {
	return &Store{redis: client}
}

// GetPlayerStats 获取玩家统计，不存在返回 nil
func (st *Store) GetPlayerStats(ctx context.Context, playerID string) (*PlayerStats, error) {
	key := playerStatsKey + playerID
	data, err := st.redis.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var stats PlayerStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// SavePlayerStats 保存玩家统计
func (st *Store) SavePlayerStats(ctx context.Context, stats *PlayerStats) error {
	key := playerStatsKey + stats.PlayerID
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return st.redis.Set(ctx, key, data, 0).Err()
}

// getOrCreateStats 获取或创建玩家统计
func (st *Store) getOrCreateStats(ctx context.Context, playerID, playerName string) (*PlayerStats, error) {
	stats, err := st.GetPlayerStats(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		stats = &PlayerStats{
			PlayerID:  playerID,
			CreatedAt: time.Now().Unix(),
		}
	}
	if playerName != "" {
		stats.PlayerName = playerName
	}
	return stats, nil
}

// ApplySettlement 落一局的结算：每人的金币增减、胜负场次、排行榜积分
// names 提供 playerID 到昵称的映射
func (st *Store) ApplySettlement(ctx context.Context, s engine.Settlement, names map[string]string) error {
	now := time.Now().Unix()
	for playerID, delta := range s.Deltas {
		stats, err := st.getOrCreateStats(ctx, playerID, names[playerID])
		if err != nil {
			return err
		}

		stats.TotalGames++
		if playerID == s.WinnerID {
			stats.Wins++
		} else {
			stats.Losses++
		}
		stats.Coins += delta
		stats.LastPlayedAt = now

		if err := st.SavePlayerStats(ctx, stats); err != nil {
			return err
		}
		if err := st.redis.ZAdd(ctx, leaderboardKey, redis.Z{
			Score:  float64(stats.Coins),
			Member: playerID,
		}).Err(); err != nil {
			return err
		}
	}
	return nil
}

// GetRank 获取玩家在金币榜上的名次，从 1 开始，未上榜返回 0
func (st *Store) GetRank(ctx context.Context, playerID string) (int, error) {
	rank, err := st.redis.ZRevRank(ctx, leaderboardKey, playerID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, err
	}
	return int(rank) + 1, nil
}

// GetLeaderboard 按金币从高到低取一段榜单
func (st *Store) GetLeaderboard(ctx context.Context, offset, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	members, err := st.redis.ZRevRangeWithScores(ctx, leaderboardKey, int64(offset), int64(offset+limit-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(members))
	for i, m := range members {
		playerID, _ := m.Member.(string)
		entry := LeaderboardEntry{
			Rank:     offset + i + 1,
			PlayerID: playerID,
			Coins:    int(m.Score),
		}
		// 榜单条目补上昵称和胜率，读不到统计时只留积分
		if stats, err := st.GetPlayerStats(ctx, playerID); err == nil && stats != nil {
			entry.PlayerName = stats.PlayerName
			entry.Wins = stats.Wins
			entry.WinRate = stats.WinRate()
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
