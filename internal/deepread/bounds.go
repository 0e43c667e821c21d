// Package deepread reshapes generated narrative text to locale-specific
// length bounds while guaranteeing a trailing conclusion paragraph.
package deepread

import (
	"strings"
	"unicode/utf8"
)

// Unit is the measurement unit a locale's bounds are expressed in.
type Unit string

const (
	UnitWords Unit = "words"
	UnitChars Unit = "chars"
)

// Bounds is the per-locale length policy. Min is a target, not a floor:
// the pipeline never pads text upward, it only shrinks.
type Bounds struct {
	Unit             Unit
	Min              int
	Max              int
	ConclusionPrefix string
}

// Measure holds both length metrics for a text. Both are always computed
// so callers can reason about either regardless of locale.
type Measure struct {
	Chars int
	Words int
}

// MeasureText counts runes and whitespace-delimited tokens.
func MeasureText(text string) Measure {
	return Measure{
		Chars: utf8.RuneCountInString(text),
		Words: len(strings.Fields(text)),
	}
}

// Count picks the metric matching the bounds' unit.
func (b Bounds) Count(m Measure) int {
	if b.Unit == UnitChars {
		return m.Chars
	}
	return m.Words
}

// Fits reports whether text is at or under the upper bound.
func (b Bounds) Fits(text string) bool {
	return b.Count(MeasureText(text)) <= b.Max
}

// IsCJK reports whether the locale is measured in characters rather than
// words: Chinese variants, Japanese and Korean.
func IsCJK(locale string) bool {
	switch baseLang(locale) {
	case "zh", "ja", "ko":
		return true
	}
	return false
}

// BoundsFor returns the length policy for a locale. Unknown locales fall
// back to the word-based window with no conclusion prefix.
func BoundsFor(locale string) Bounds {
	if IsCJK(locale) {
		return Bounds{Unit: UnitChars, Min: 300, Max: 400, ConclusionPrefix: ConclusionPrefix(locale)}
	}
	return Bounds{Unit: UnitWords, Min: 120, Max: 170, ConclusionPrefix: ConclusionPrefix(locale)}
}

// ConclusionPrefix returns the canonical conclusion lead-in for the
// locale, or "" when none is defined (conclusion enforcement is then
// skipped entirely).
func ConclusionPrefix(locale string) string {
	switch normalizeLocale(locale) {
	case "zh-tw", "zh-hk":
		return "總體結論："
	}
	switch baseLang(locale) {
	case "en":
		return "Overall conclusion:"
	case "zh":
		return "总体结论："
	case "ja":
		return "総合的な結論："
	case "ko":
		return "종합 결론:"
	case "es":
		return "Conclusión general:"
	case "fr":
		return "Conclusion générale :"
	case "de":
		return "Gesamtfazit:"
	case "pt":
		return "Conclusão geral:"
	case "ru":
		return "Общий вывод:"
	default:
		return ""
	}
}

func normalizeLocale(locale string) string {
	return strings.ToLower(strings.ReplaceAll(locale, "_", "-"))
}

func baseLang(locale string) string {
	l := normalizeLocale(locale)
	if i := strings.IndexByte(l, '-'); i >= 0 {
		l = l[:i]
	}
	return l
}
