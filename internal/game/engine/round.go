package engine

import (
	"github.com/feiyu233/uno-fusion/internal/game/card"
	"github.com/feiyu233/uno-fusion/internal/game/rule"
)

// roundState 把一局之内互斥的几种局面编码成显式的状态集合，
// 不合法的标志位组合不可表达
type roundState interface {
	isRound()
}

// noRound 没有进行中的回合，当前玩家自由领出
type noRound struct{}

// sheddingRound 跟牌阶段：桌面是单张/对子/三张，按颜色规则跟牌
type sheddingRound struct {
	hand  rule.ParsedHand
	owner int // 出这手牌的座位，轮回到他时重新领出
}

// comboRound 组合牌阶段：顺子/连对/飞机/葫芦/炸弹，
// 只认同类型同长度，PASS 计数凑齐一圈后回合重置
type comboRound struct {
	hand   rule.ParsedHand
	owner  int
	passes int
}

// awaitingClaim 单张打出后开启的吃碰杠窗口，回合被挂起，
// 窗口队列非空时必定有一个存活的超时定时器
type awaitingClaim struct {
	target card.Card
	hand   rule.ParsedHand // 无人认领时恢复成的跟牌局面
	origin int             // 出牌者座位
	queue  []claimOffer
	cursor int
}

// head 当前被授予独占窗口的候选
func (a awaitingClaim) head() claimOffer {
	return a.queue[a.cursor]
}

// awaitingDraw 罚牌待回应：当前玩家手里有合格的回应牌，
// 可以继续叠加，也可以主动接受罚牌
type awaitingDraw struct {
	count int
	kind  card.Type  // TypeDrawTwo 或 TypeWildDrawFour
	prev  roundState // 罚牌结清后恢复的局面
}

func (noRound) isRound()       {}
func (sheddingRound) isRound() {}
func (comboRound) isRound()    {}
func (awaitingClaim) isRound() {}
func (awaitingDraw) isRound()  {}
