package rule

import (
	"fmt"
	"sort"

	"github.com/feiyu233/uno-fusion/internal/game/card"
)

// HandType 定义牌型
type HandType int

const (
	Invalid HandType = iota
	Single           // 单张
	Pair             // 对子（两张完全相同的数字牌）
	Triple           // 三张（三张完全相同的数字牌）
	Bomb             // 炸弹（四张及以上完全相同）

	FullHouse        // 葫芦（3+2 两种点数）
	Straight         // 顺子（5 张及以上连续单张）
	ConsecutivePairs // 连对（3 对及以上连续对子）
	Airplane         // 飞机（2 组及以上连续三张）
)

// handTypeNames 牌型名称映射表
var handTypeNames = map[HandType]string{
	Single:           "单张",
	Pair:             "对子",
	Triple:           "三张",
	Bomb:             "炸弹",
	FullHouse:        "葫芦",
	Straight:         "顺子",
	ConsecutivePairs: "连对",
	Airplane:         "飞机",
}

func (h HandType) String() string {
	if name, ok := handTypeNames[h]; ok {
		return name
	}
	return "无效"
}

// IsShedding 单张/对子/三张属于跟牌阶段的牌型
func (h HandType) IsShedding() bool {
	return h == Single || h == Pair || h == Triple
}

// IsCombo 组合牌型只按类型和长度比较
func (h HandType) IsCombo() bool {
	switch h {
	case FullHouse, Straight, ConsecutivePairs, Airplane:
		return true
	}
	return false
}

// ParsedHand 解析后的一手牌，用于比较
type ParsedHand struct {
	Type   HandType
	Cards  []card.Card
	Length int
	Power  int // 单张和炸弹比较大小时的关键牌力
}

// IsEmpty 是否是空手牌
func (h ParsedHand) IsEmpty() bool {
	return h.Type == Invalid && len(h.Cards) == 0
}

// Classify 识别一组牌的牌型，无法识别返回 Invalid
// 对任意牌集是全函数，结果只由牌面决定
func Classify(cards []card.Card) HandType {
	switch {
	case len(cards) == 0:
		return Invalid
	case len(cards) == 1:
		return Single
	}

	if allSame(cards) {
		switch {
		case len(cards) >= 4:
			return Bomb
		case !cards[0].IsNumber():
			// 相同的功能牌只能凑满四张成炸弹，不能作对子或三张
			return Invalid
		case len(cards) == 2:
			return Pair
		case len(cards) == 3:
			return Triple
		}
		return Invalid
	}

	counts, ok := rankCounts(cards)
	if !ok {
		return Invalid
	}
	ranks := sortedRanks(counts)

	if len(cards) == 5 && len(ranks) == 2 {
		if counts[ranks[0]] == 2 || counts[ranks[0]] == 3 {
			return FullHouse
		}
	}
	if len(cards) >= 5 && uniformCount(counts, 1) && isRun(ranks) {
		return Straight
	}
	if len(cards) >= 6 && len(cards)%2 == 0 && uniformCount(counts, 2) && isRun(ranks) {
		return ConsecutivePairs
	}
	if len(cards) >= 6 && len(cards)%3 == 0 && uniformCount(counts, 3) && isRun(ranks) {
		return Airplane
	}
	return Invalid
}

// Parse 识别牌型并构造 ParsedHand
func Parse(cards []card.Card) (ParsedHand, error) {
	handType := Classify(cards)
	if handType == Invalid {
		return ParsedHand{}, fmt.Errorf("无法识别的牌型: %v", cards)
	}
	return ParsedHand{
		Type:   handType,
		Cards:  cards,
		Length: len(cards),
		Power:  cards[0].Power(),
	}, nil
}

// allSame 所有牌同色同种同值
func allSame(cards []card.Card) bool {
	for _, c := range cards[1:] {
		if !c.Same(cards[0]) {
			return false
		}
	}
	return true
}

// rankCounts 统计各点数的张数，遇到非数字牌返回 false
func rankCounts(cards []card.Card) (map[int]int, bool) {
	counts := make(map[int]int)
	for _, c := range cards {
		n, ok := c.Rank()
		if !ok {
			return nil, false
		}
		counts[n]++
	}
	return counts, true
}

func sortedRanks(counts map[int]int) []int {
	ranks := make([]int, 0, len(counts))
	for r := range counts {
		ranks = append(ranks, r)
	}
	sort.Ints(ranks)
	return ranks
}

// uniformCount 每个点数恰好出现 n 次
func uniformCount(counts map[int]int, n int) bool {
	for _, c := range counts {
		if c != n {
			return false
		}
	}
	return true
}

// isRun 已排序的点数是否严格连续
func isRun(ranks []int) bool {
	for i := 1; i < len(ranks); i++ {
		if ranks[i] != ranks[i-1]+1 {
			return false
		}
	}
	return true
}
