package rule

import "github.com/feiyu233/uno-fusion/internal/game/card"

// BombBeats reports whether mine (a bomb) beats the hand on the table.
// A bomb beats any non-bomb; bomb vs bomb compares length first, then power.
func BombBeats(mine, table ParsedHand) bool {
	if mine.Type != Bomb {
		return false
	}
	if table.Type != Bomb {
		return true
	}
	if mine.Length != table.Length {
		return mine.Length > table.Length
	}
	return mine.Power > table.Power
}

// SingleFollows reports whether single c may be played over last.
// Wilds are always legal. A card of the active color must strictly
// out-power the last card; off-color cards may only follow by playing
// the exact same symbol.
func SingleFollows(c, last card.Card, active card.Color) bool {
	if c.IsWild() {
		return true
	}
	if c.Color == active {
		return c.Power() > last.Power()
	}
	return c.Type == last.Type && c.Value == last.Value
}

// AllColor reports whether every card shares the given color.
func AllColor(cards []card.Card, color card.Color) bool {
	for _, c := range cards {
		if c.Color != color {
			return false
		}
	}
	return true
}

// ComboFollows reports whether a combination hand may follow the combo on
// the table: same type and same length, nothing else is compared.
func ComboFollows(mine, table ParsedHand) bool {
	return mine.Type == table.Type && mine.Length == table.Length
}
