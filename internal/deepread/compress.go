package deepread

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun = regexp.MustCompile(`[ \t]+`)
	exclaimRun    = regexp.MustCompile(`!{2,}`)
	questionRun   = regexp.MustCompile(`\?{2,}`)
	commaRun      = regexp.MustCompile(`,{2,}`)
	periodRun     = regexp.MustCompile(`\.{3,}`)
	parenthetical = regexp.MustCompile(`\s*[(（][^)）]*[)）]`)

	// Low-information hedges stripped during compression. Word-bounded,
	// case-insensitive, longest phrases first.
	fillerPhrases = regexp.MustCompile(`(?i)\b(?:i think that|i think|i believe|i feel like|it seems that|it seems|you know|sort of|kind of|needless to say|as a matter of fact|to be honest|in fact|really|very|quite|perhaps|maybe|actually|basically|honestly|simply|rather|somewhat|truly)\b[ ]?`)
)

const longSentenceLimit = 80

// sentenceEnd matches terminators for both Latin and CJK punctuation.
var sentenceEnd = regexp.MustCompile(`[^.!?。！？]*[.!?。！？]+\s*`)

func splitSentences(paragraph string) []string {
	matches := sentenceEnd.FindAllString(paragraph, -1)
	consumed := 0
	for _, m := range matches {
		consumed += len(m)
	}
	if rest := strings.TrimSpace(paragraph[consumed:]); rest != "" {
		matches = append(matches, rest)
	}
	for i, m := range matches {
		matches[i] = strings.TrimSpace(m)
	}
	return matches
}

// Compress applies lossy, one-directional shrinking heuristics to the
// content paragraphs of text. The last paragraph is the conclusion and
// is never altered. The heuristics are locale-agnostic string
// operations; CJK text goes through the same passes, a known
// approximation.
func Compress(locale, text string) string {
	paras := splitParagraphs(text)
	if len(paras) < 2 {
		return text
	}

	for i := 0; i < len(paras)-1; i++ {
		paras[i] = compressParagraph(paras[i])
	}

	kept := paras[:0]
	for _, p := range paras {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n\n")
}

func compressParagraph(p string) string {
	p = parenthetical.ReplaceAllString(p, "")
	p = fillerPhrases.ReplaceAllString(p, "")
	p = exclaimRun.ReplaceAllString(p, "!")
	p = questionRun.ReplaceAllString(p, "?")
	p = commaRun.ReplaceAllString(p, ",")
	p = periodRun.ReplaceAllString(p, "...")
	p = whitespaceRun.ReplaceAllString(p, " ")
	p = strings.TrimSpace(p)
	p = flattenTrailingClauses(p)
	p = truncateLongOpener(p)
	return strings.TrimSpace(p)
}

// flattenTrailingClauses drops the comma-chained tail of sentences that
// stack more than two clauses, keeping the terminator.
func flattenTrailingClauses(p string) string {
	sentences := splitSentences(p)
	changed := false
	for i, s := range sentences {
		term := trailingTerminator(s)
		body := strings.TrimSuffix(s, term)
		parts := strings.Split(body, ",")
		if len(parts) > 3 {
			sentences[i] = strings.TrimSpace(strings.Join(parts[:3], ",")) + term
			changed = true
		}
	}
	if !changed {
		return p
	}
	return strings.Join(sentences, " ")
}

// truncateLongOpener reduces a paragraph of more than two sentences whose
// first sentence runs past the limit to that sentence's first clause
// plus an ellipsis, discarding the paragraph's remaining sentences.
func truncateLongOpener(p string) string {
	sentences := splitSentences(p)
	if len(sentences) <= 2 {
		return p
	}
	first := sentences[0]
	if len([]rune(first)) <= longSentenceLimit {
		return p
	}
	if i := strings.IndexAny(first, ",;，；"); i >= 0 {
		first = first[:i]
	}
	return strings.TrimRight(strings.TrimSpace(first), ".!?。！？") + "..."
}

func trailingTerminator(s string) string {
	trimmed := strings.TrimRight(s, ".!?。！？")
	return s[len(trimmed):]
}
