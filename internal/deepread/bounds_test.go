package deepread_test

import (
	"testing"

	"github.com/Wei-YuChen/Tarot-predition-sub000/internal/deepread"
)

func TestIsCJK(t *testing.T) {
	cjk := []string{"zh", "zh-CN", "zh-TW", "zh_HK", "ja", "ja-JP", "ko"}
	for _, l := range cjk {
		if !deepread.IsCJK(l) {
			t.Errorf("expected %q to be CJK", l)
		}
	}
	other := []string{"en", "en-US", "es", "fr", "ru", "xx", ""}
	for _, l := range other {
		if deepread.IsCJK(l) {
			t.Errorf("expected %q not to be CJK", l)
		}
	}
}

func TestBoundsFor(t *testing.T) {
	zh := deepread.BoundsFor("zh")
	if zh.Unit != deepread.UnitChars || zh.Min != 300 || zh.Max != 400 {
		t.Errorf("unexpected zh bounds: %+v", zh)
	}
	en := deepread.BoundsFor("en")
	if en.Unit != deepread.UnitWords || en.Min != 120 || en.Max != 170 {
		t.Errorf("unexpected en bounds: %+v", en)
	}
	if en.ConclusionPrefix != "Overall conclusion:" {
		t.Errorf("unexpected en prefix: %q", en.ConclusionPrefix)
	}
}

func TestBoundsFor_UnknownLocale(t *testing.T) {
	// Unknown locales fail closed to word bounds with no prefix.
	b := deepread.BoundsFor("tlh")
	if b.Unit != deepread.UnitWords || b.Max != 170 {
		t.Errorf("unexpected fallback bounds: %+v", b)
	}
	if b.ConclusionPrefix != "" {
		t.Errorf("expected empty prefix for unknown locale, got %q", b.ConclusionPrefix)
	}
}

func TestConclusionPrefix_Variants(t *testing.T) {
	if got := deepread.ConclusionPrefix("zh-TW"); got != "總體結論：" {
		t.Errorf("zh-TW: got %q", got)
	}
	if got := deepread.ConclusionPrefix("zh-CN"); got != "总体结论：" {
		t.Errorf("zh-CN: got %q", got)
	}
	if got := deepread.ConclusionPrefix("en-GB"); got != "Overall conclusion:" {
		t.Errorf("en-GB: got %q", got)
	}
}

func TestMeasureText(t *testing.T) {
	m := deepread.MeasureText("two words")
	if m.Words != 2 {
		t.Errorf("expected 2 words, got %d", m.Words)
	}
	if m.Chars != 9 {
		t.Errorf("expected 9 chars, got %d", m.Chars)
	}

	m = deepread.MeasureText("短文本。")
	if m.Chars != 4 {
		t.Errorf("expected 4 chars for CJK string, got %d", m.Chars)
	}
	if m.Words != 1 {
		t.Errorf("expected 1 token, got %d", m.Words)
	}

	m = deepread.MeasureText("  spaced   out  tokens  ")
	if m.Words != 3 {
		t.Errorf("expected 3 words, got %d", m.Words)
	}
}
