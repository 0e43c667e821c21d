package deepread_test

import (
	"strings"
	"testing"

	"github.com/Wei-YuChen/Tarot-predition-sub000/internal/deepread"
)

func longEnglishText() string {
	sentence := "The spread shows a really significant and very meaningful shift in energy that perhaps deserves careful attention over the coming weeks. "
	para := strings.TrimSpace(strings.Repeat(sentence, 3))
	paras := make([]string, 10)
	for i := range paras {
		paras[i] = para
	}
	return strings.Join(paras, "\n\n")
}

func TestFormat_ClampsLongEnglish(t *testing.T) {
	input := longEnglishText() + "\n\nOverall conclusion: a short closing thought."

	got := deepread.Format("en", input)

	m := deepread.MeasureText(got)
	if m.Words > 170 {
		t.Errorf("expected at most 170 words, got %d", m.Words)
	}

	paras := strings.Split(got, "\n\n")
	if !strings.HasPrefix(paras[len(paras)-1], "Overall conclusion:") {
		t.Errorf("final paragraph lost its conclusion prefix: %q", paras[len(paras)-1])
	}
}

func TestFormat_ShortCJKNotPadded(t *testing.T) {
	got := deepread.Format("zh", "短文本。")

	if !strings.Contains(got, "总体结论：") {
		t.Errorf("expected zh conclusion prefix, got %q", got)
	}
	if m := deepread.MeasureText(got); m.Chars >= 300 {
		t.Errorf("short text must not be padded toward the minimum, got %d chars", m.Chars)
	}
}

func TestFormat_WithinBoundsUnchanged(t *testing.T) {
	text := "A modest paragraph about the cards drawn today.\n\nOverall conclusion: stay the course."
	if got := deepread.Format("en", text); got != text {
		t.Errorf("in-bounds text altered:\nwant %q\ngot  %q", text, got)
	}
}

func TestFormat_OverlongConclusionReturnedAnyway(t *testing.T) {
	words := strings.TrimSpace(strings.Repeat("word ", 200))
	input := "Overall conclusion: " + words

	got := deepread.Format("en", input)

	if !strings.HasPrefix(got, "Overall conclusion:") {
		t.Errorf("conclusion prefix lost: %q", got[:40])
	}
	if m := deepread.MeasureText(got); m.Words <= 170 {
		t.Errorf("expected the over-long conclusion to survive, got %d words", m.Words)
	}
}

func TestFormat_DropsLeadingParagraphs(t *testing.T) {
	// Paragraphs of plain words resist compression, forcing the
	// paragraph-dropping stage.
	para := strings.TrimSpace(strings.Repeat("steady balanced grounded ", 30))
	input := para + "\n\n" + para + "\n\nOverall conclusion: brief."

	got := deepread.Format("en", input)

	if m := deepread.MeasureText(got); m.Words > 170 {
		t.Errorf("expected at most 170 words after dropping paragraphs, got %d", m.Words)
	}
	if !strings.HasSuffix(got, "Overall conclusion: brief.") {
		t.Errorf("conclusion not retained: %q", got)
	}
}

func TestFormat_ParagraphListInput(t *testing.T) {
	got := deepread.FormatParagraphs("en", []string{
		"First paragraph.",
		"Second paragraph.",
	})
	paras := strings.Split(got, "\n\n")
	if !strings.HasPrefix(paras[len(paras)-1], "Overall conclusion:") {
		t.Errorf("expected conclusion paragraph, got %q", got)
	}
	if !strings.Contains(got, "First paragraph.") {
		t.Errorf("content lost: %q", got)
	}
}
