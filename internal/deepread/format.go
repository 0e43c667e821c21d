package deepread

import "strings"

const maxCompressPasses = 3

// Format clamps narrative text to the locale's length window. The text
// first gets a guaranteed trailing conclusion paragraph, then — only if
// it exceeds the upper bound — up to three compression passes, then
// whole leading content paragraphs are dropped until the remainder
// fits. The conclusion paragraph is always retained, even when it alone
// exceeds the bound: the pipeline shrinks but never pads and never cuts
// mid-sentence, and it never fails.
func Format(locale, text string) string {
	text = strings.TrimSpace(text)
	text = EnsureConclusion(locale, text)

	bounds := BoundsFor(locale)
	if bounds.Fits(text) {
		return text
	}

	for pass := 0; pass < maxCompressPasses; pass++ {
		text = Compress(locale, text)
		if bounds.Fits(text) {
			return text
		}
	}

	paras := splitParagraphs(text)
	for len(paras) > 1 {
		paras = paras[1:]
		text = strings.Join(paras, "\n\n")
		if bounds.Fits(text) {
			return text
		}
	}
	return strings.Join(paras, "\n\n")
}

// FormatParagraphs joins pre-split paragraphs with blank lines before
// formatting.
func FormatParagraphs(locale string, paragraphs []string) string {
	return Format(locale, strings.Join(paragraphs, "\n\n"))
}
