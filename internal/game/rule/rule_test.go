package rule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feiyu233/uno-fusion/internal/game/card"
)

// numbers 构造同色数字牌
func numbers(color card.Color, ns ...int) []card.Card {
	cards := make([]card.Card, 0, len(ns))
	for _, n := range ns {
		cards = append(cards, card.NewNumber(color, n))
	}
	return cards
}

func specials(color card.Color, typ card.Type, value string, n int) []card.Card {
	cards := make([]card.Card, 0, n)
	for range n {
		cards = append(cards, card.New(color, typ, value))
	}
	return cards
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cards    []card.Card
		expected HandType
	}{
		{"Empty", nil, Invalid},
		{"Single number", numbers(card.Red, 5), Single},
		{"Single skip", specials(card.Red, card.TypeSkip, card.ValueSkip, 1), Single},
		{"Pair", numbers(card.Red, 5, 5), Pair},
		{"Pair mixed colors", []card.Card{card.NewNumber(card.Red, 5), card.NewNumber(card.Blue, 5)}, Invalid},
		{"Triple", numbers(card.Green, 7, 7, 7), Triple},
		{"Special pair rejected", specials(card.Red, card.TypeSkip, card.ValueSkip, 2), Invalid},
		{"Special triple rejected", specials(card.Blue, card.TypeDrawTwo, card.ValueDrawTwo, 3), Invalid},
		{"Number bomb", numbers(card.Yellow, 9, 9, 9, 9), Bomb},
		{"Five card bomb", numbers(card.Yellow, 9, 9, 9, 9, 9), Bomb},
		{"Special bomb", specials(card.Red, card.TypeReverse, card.ValueReverse, 4), Bomb},
		{"Wild bomb", specials(card.NoColor, card.TypeWild, card.ValueWild, 4), Bomb},
		{"Full house 3+2", numbers(card.Red, 4, 4, 4, 8, 8), FullHouse},
		{"Full house 2+3", numbers(card.Red, 2, 2, 6, 6, 6), FullHouse},
		{"Four plus one rejected", numbers(card.Red, 4, 4, 4, 4, 8), Invalid},
		{"Straight", numbers(card.Blue, 3, 4, 5, 6, 7), Straight},
		{"Straight of nine", numbers(card.Blue, 1, 2, 3, 4, 5, 6, 7, 8, 9), Straight},
		{"Straight too short", numbers(card.Blue, 3, 4, 5, 6), Invalid},
		{"Straight with gap", numbers(card.Blue, 3, 4, 6, 7, 8), Invalid},
		{"Straight with duplicate", numbers(card.Blue, 3, 4, 4, 5, 6), Invalid},
		{"Consecutive pairs", numbers(card.Green, 2, 2, 3, 3, 4, 4), ConsecutivePairs},
		{"Consecutive pairs of four", numbers(card.Green, 5, 5, 6, 6, 7, 7, 8, 8), ConsecutivePairs},
		{"Pairs not consecutive", numbers(card.Green, 2, 2, 3, 3, 5, 5), Invalid},
		{"Two pairs too short", numbers(card.Green, 2, 2, 3, 3), Invalid},
		{"Airplane", numbers(card.Yellow, 6, 6, 6, 7, 7, 7), Airplane},
		{"Airplane of three", numbers(card.Yellow, 1, 1, 1, 2, 2, 2, 3, 3, 3), Airplane},
		{"Airplane not consecutive", numbers(card.Yellow, 6, 6, 6, 8, 8, 8), Invalid},
		{"Mixed specials rejected", []card.Card{
			card.New(card.Red, card.TypeSkip, card.ValueSkip),
			card.New(card.Red, card.TypeReverse, card.ValueReverse),
		}, Invalid},
		{"Number with special rejected", []card.Card{
			card.NewNumber(card.Red, 5),
			card.New(card.Red, card.TypeSkip, card.ValueSkip),
		}, Invalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, Classify(tt.cards))
		})
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	t.Parallel()

	cards := numbers(card.Yellow, 9, 9, 9, 9)
	for range 10 {
		assert.Equal(t, Bomb, Classify(cards))
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	hand, err := Parse(numbers(card.Red, 7, 7))
	require.NoError(t, err)
	assert.Equal(t, Pair, hand.Type)
	assert.Equal(t, 2, hand.Length)
	assert.Equal(t, 7, hand.Power)

	_, err = Parse(specials(card.Red, card.TypeSkip, card.ValueSkip, 2))
	assert.Error(t, err)
}
