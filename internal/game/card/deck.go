package card

import "math/rand/v2"

// 整副牌合并了四副标准牌，每色每点数的张数固定：
// 0 ×4，1-9 各 ×8，跳过/转向/加二 各 ×8，变色 ×16，加四 ×16，共 432 张
const (
	copiesZero   = 4
	copiesNumber = 8
	copiesAction = 8
	copiesWild   = 16
)

// DeckSize 整副牌的张数
const DeckSize = 4*(copiesZero+9*copiesNumber+3*copiesAction) + 2*copiesWild

// Deck 定义一副牌
type Deck []Card

// NewDeck 构造整副牌，每张牌都带独立 ID
func NewDeck() Deck {
	deck := make(Deck, 0, DeckSize)
	for color := Red; color <= Blue; color++ {
		for range copiesZero {
			deck = append(deck, NewNumber(color, 0))
		}
		for n := 1; n <= 9; n++ {
			for range copiesNumber {
				deck = append(deck, NewNumber(color, n))
			}
		}
		for range copiesAction {
			deck = append(deck,
				New(color, TypeSkip, ValueSkip),
				New(color, TypeReverse, ValueReverse),
				New(color, TypeDrawTwo, ValueDrawTwo),
			)
		}
	}
	for range copiesWild {
		deck = append(deck,
			New(NoColor, TypeWild, ValueWild),
			New(NoColor, TypeWildDrawFour, ValueWildDrawFour),
		)
	}
	return deck
}

func (d Deck) Shuffle() {
	rand.Shuffle(len(d), func(i, j int) {
		d[i], d[j] = d[j], d[i]
	})
}
