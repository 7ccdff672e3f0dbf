package server

import (
	"math/rand"
)

// 昵称词库，凑一个牌桌味的随机昵称
var (
	adjectives = []string{
		"手气爆棚的", "虚张声势的", "深藏不露的", "孤注一掷的", "运筹帷幄的",
		"按兵不动的", "咄咄逼人的", "见好就收的", "声东击西的", "稳操胜券的",
		"出牌如飞的", "忘记报牌的", "专收罚牌的", "逢抽必中的", "神出鬼没的",
	}

	nouns = []string{
		"变色龙", "荷官", "牌王", "预言家", "收藏家",
		"狙击手", "常胜军", "魔术师", "守门员", "扫地僧",
		"四色鹦鹉", "连锁匠", "黑马", "老狐狸", "夜猫子",
	}
)

// GenerateNickname 生成随机昵称
func GenerateNickname() string {
	adj := adjectives[rand.Intn(len(adjectives))]
	noun := nouns[rand.Intn(len(nouns))]
	return adj + noun
}
