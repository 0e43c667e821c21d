package domain

import (
	"fmt"
	"strings"
)

// Signature returns a deterministic fingerprint of a drawn spread:
// ordered (index, card ID, orientation) triples joined as
// "0:0-fool:U|1:ace-cups:R|...". Identical spreads always produce
// identical signatures, which makes it usable as a cache key.
func Signature(cards []DrawnCard) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		o := "U"
		if c.Orientation == Reversed {
			o = "R"
		}
		parts[i] = fmt.Sprintf("%d:%s:%s", i, c.ID, o)
	}
	return strings.Join(parts, "|")
}
