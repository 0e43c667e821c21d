package deepread

import (
	"regexp"
	"strings"
)

var paragraphSep = regexp.MustCompile(`\n\s*\n`)

// splitParagraphs splits text on blank lines, dropping empty fragments.
func splitParagraphs(text string) []string {
	raw := paragraphSep.Split(text, -1)
	paras := make([]string, 0, len(raw))
	for _, p := range raw {
		p = strings.TrimSpace(p)
		if p != "" {
			paras = append(paras, p)
		}
	}
	return paras
}

// competingLeadIns are conclusion-style openers (in the locales we
// serve) that get replaced by the canonical prefix when a conclusion is
// synthesized. Matched case-insensitively.
var competingLeadIns = []string{
	"in conclusion,",
	"in conclusion:",
	"to conclude,",
	"in summary,",
	"in summary:",
	"to sum up,",
	"all in all,",
	"overall,",
	"总而言之，",
	"总结：",
	"结论：",
	"總而言之，",
	"總結：",
	"結論：",
	"まとめ：",
	"結論として、",
	"요약하면,",
	"결론적으로,",
	"en conclusión,",
	"en resumen,",
	"en conclusion,",
	"pour conclure,",
	"zusammenfassend,",
	"fazit:",
	"em conclusão,",
	"em resumo,",
	"в заключение,",
	"итог:",
	"вывод:",
}

// EnsureConclusion rewrites text so that its last paragraph begins with
// the locale's conclusion prefix. Idempotent: text already ending in a
// conclusion paragraph passes through unchanged. A conclusion paragraph
// found earlier in the text is moved to the end; otherwise the last
// paragraph is re-prefixed (after stripping any competing lead-in). No
// paragraph content is lost. Locales without a defined prefix are left
// untouched.
func EnsureConclusion(locale, text string) string {
	prefix := ConclusionPrefix(locale)
	if prefix == "" {
		return text
	}

	paras := splitParagraphs(text)
	if len(paras) == 0 {
		return text
	}

	last := len(paras) - 1
	if strings.HasPrefix(paras[last], prefix) {
		return text
	}

	for i := 0; i < last; i++ {
		if strings.HasPrefix(paras[i], prefix) {
			moved := paras[i]
			paras = append(paras[:i], paras[i+1:]...)
			paras = append(paras, moved)
			return strings.Join(paras, "\n\n")
		}
	}

	paras[last] = prefix + " " + stripLeadIn(paras[last])
	return strings.Join(paras, "\n\n")
}

func stripLeadIn(paragraph string) string {
	lower := strings.ToLower(paragraph)
	for _, lead := range competingLeadIns {
		if strings.HasPrefix(lower, lead) {
			return strings.TrimSpace(paragraph[len(lead):])
		}
	}
	return paragraph
}
