package card

import (
	"strconv"

	"github.com/google/uuid"
)

// Color 定义牌的颜色
type Color int

const (
	NoColor Color = iota // 万能牌无颜色，也表示未选色
	Red
	Yellow
	Green
	Blue
)

// colorNames 颜色名称映射表
var colorNames = map[Color]string{
	Red:     "红",
	Yellow:  "黄",
	Green:   "绿",
	Blue:    "蓝",
	NoColor: "",
}

func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return "?"
}

// IsSuit 是否是四种实色之一
func (c Color) IsSuit() bool {
	return c >= Red && c <= Blue
}

// Type 定义牌的种类
type Type int

const (
	TypeNumber Type = iota
	TypeSkip
	TypeReverse
	TypeDrawTwo
	TypeWild
	TypeWildDrawFour
)

// typeNames 种类名称映射表
var typeNames = map[Type]string{
	TypeNumber:       "数字",
	TypeSkip:         "跳过",
	TypeReverse:      "转向",
	TypeDrawTwo:      "加二",
	TypeWild:         "变色",
	TypeWildDrawFour: "加四",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "?"
}

// 功能牌的 Value 符号
const (
	ValueSkip         = "skip"
	ValueReverse      = "reverse"
	ValueDrawTwo      = "draw2"
	ValueWild         = "wild"
	ValueWildDrawFour = "wild4"
)

// Card 定义一张牌
// ID 是全局唯一标识，手牌的归属和移除都以 ID 为准，
// 两张同色同值的牌仍然是不同的对象
type Card struct {
	ID    string
	Color Color
	Type  Type
	Value string // 数字牌为 "0"-"9"，功能牌为符号名
}

// New 创建一张带唯一 ID 的牌
func New(color Color, typ Type, value string) Card {
	return Card{
		ID:    uuid.NewString(),
		Color: color,
		Type:  typ,
		Value: value,
	}
}

// NewNumber 创建一张数字牌
func NewNumber(color Color, n int) Card {
	return New(color, TypeNumber, strconv.Itoa(n))
}

func (c Card) String() string {
	if c.Type == TypeNumber {
		return c.Color.String() + c.Value
	}
	return c.Color.String() + c.Type.String()
}

// IsNumber 是否是数字牌
func (c Card) IsNumber() bool {
	return c.Type == TypeNumber
}

// IsWild 是否是万能牌
func (c Card) IsWild() bool {
	return c.Type == TypeWild || c.Type == TypeWildDrawFour
}

// Rank 返回数字牌的点数
func (c Card) Rank() (int, bool) {
	if c.Type != TypeNumber {
		return 0, false
	}
	n, err := strconv.Atoi(c.Value)
	if err != nil {
		return 0, false
	}
	return n, true
}

// 牌力顺序：数字 < 跳过 < 转向 < 加二 < 万能
// 牌力只由种类和点数决定，与 ID 无关
const (
	powerSkip    = 10
	powerReverse = 11
	powerDrawTwo = 12
	powerWild    = 13
)

// Power 返回牌力
func (c Card) Power() int {
	switch c.Type {
	case TypeNumber:
		n, _ := c.Rank()
		return n
	case TypeSkip:
		return powerSkip
	case TypeReverse:
		return powerReverse
	case TypeDrawTwo:
		return powerDrawTwo
	default:
		return powerWild
	}
}

// Same 判断两张牌是否同色同种同值（不比较 ID）
func (c Card) Same(o Card) bool {
	return c.Color == o.Color && c.Type == o.Type && c.Value == o.Value
}
