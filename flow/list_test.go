package flow

import (
	"testing"

	"github.com/ByLCY/scribe/meta"
	"github.com/ByLCY/scribe/style"
)

func numbered(level int) style.ParagraphFormat {
	return style.ParagraphFormat{
		List: &style.ListFormat{Type: style.ListNumber, Number: style.NumberDecimal, Level: level},
	}
}

func markers(t *testing.T, pages []Page) []string {
	t.Helper()
	var out []string
	for _, ln := range flatten(pages) {
		if ln.Marker != nil {
			out = append(out, ln.Marker.Text)
		}
	}
	return out
}

func TestConsecutiveNumberedItemsCount(t *testing.T) {
	maps := meta.NewMaps()
	maps.Paras.Set(0, numbered(0))
	maps.Paras.Set(2, numbered(0))
	maps.Paras.Set(4, numbered(0))
	pages := mustFlow(t, "a\nb\nc", 1000, 1000, maps)
	got := markers(t, pages)
	want := []string{"1.", "2.", "3."}
	if len(got) != 3 || got[0] != want[0] || got[1] != want[1] || got[2] != want[2] {
		t.Errorf("编号 = %v, 期望 %v", got, want)
	}
}

func TestDeeperItemsDoNotInterruptNumbering(t *testing.T) {
	maps := meta.NewMaps()
	maps.Paras.Set(0, numbered(0))
	maps.Paras.Set(2, numbered(1))
	maps.Paras.Set(4, numbered(0))
	pages := mustFlow(t, "a\nb\nc", 1000, 1000, maps)
	got := markers(t, pages)
	// 层级 1 的项自成序列，且不打断层级 0 的计数。
	want := []string{"1.", "1.", "2."}
	if len(got) != 3 || got[0] != want[0] || got[1] != want[1] || got[2] != want[2] {
		t.Errorf("编号 = %v, 期望 %v", got, want)
	}
}

func TestStartNumberOverridesSequence(t *testing.T) {
	maps := meta.NewMaps()
	maps.Paras.Set(0, style.ParagraphFormat{
		List: &style.ListFormat{Type: style.ListNumber, Level: 0, Start: 5},
	})
	maps.Paras.Set(2, numbered(0))
	pages := mustFlow(t, "a\nb", 1000, 1000, maps)
	got := markers(t, pages)
	want := []string{"5.", "6."}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("编号 = %v, 期望 %v", got, want)
	}
}

func TestBulletGlyphCyclesByLevel(t *testing.T) {
	cases := []struct {
		level int
		want  string
	}{{0, "•"}, {1, "◦"}, {2, "▪"}, {3, "•"}}
	for _, c := range cases {
		if got := bulletGlyph("", c.level); got != c.want {
			t.Errorf("层级 %d 符号 = %q, 期望 %q", c.level, got, c.want)
		}
	}
	if got := bulletGlyph(style.BulletSquare, 0); got != "▪" {
		t.Errorf("显式样式应覆盖层级轮换, 实际 %q", got)
	}
}

func TestListIndentAndMarkerPlacement(t *testing.T) {
	maps := meta.NewMaps()
	maps.Paras.Set(0, style.ParagraphFormat{
		List: &style.ListFormat{Type: style.ListBullet, Level: 1},
	})
	// 宽度 100、缩进 2×18=36 → 内容宽 64，"aa bb cc dd" 折行。
	lines := flatten(mustFlow(t, "aa bb cc dd", 100, 1000, maps))
	if len(lines) < 2 {
		t.Fatalf("期望折行, 实际 %d 行", len(lines))
	}
	if lines[0].Marker == nil {
		t.Fatalf("首个可视行缺少列表符号")
	}
	if lines[0].Marker.Indent != 36 {
		t.Errorf("缩进 = %v, 期望 36", lines[0].Marker.Indent)
	}
	for i, ln := range lines[1:] {
		if ln.Marker != nil {
			t.Errorf("后续行 %d 不应再带符号", i+1)
		}
	}
}

func TestNumberStyles(t *testing.T) {
	cases := []struct {
		n    int
		ns   style.NumberStyle
		want string
	}{
		{3, style.NumberDecimal, "3"},
		{1, style.NumberLowerAlpha, "a"},
		{27, style.NumberLowerAlpha, "aa"},
		{2, style.NumberUpperAlpha, "B"},
		{4, style.NumberLowerRoman, "iv"},
		{1987, style.NumberUpperRoman, "MCMLXXXVII"},
		{0, style.NumberLowerRoman, "0"},
	}
	for _, c := range cases {
		if got := formatListNumber(c.n, c.ns); got != c.want {
			t.Errorf("formatListNumber(%d, %q) = %q, 期望 %q", c.n, c.ns, got, c.want)
		}
	}
}
