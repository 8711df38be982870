package flow

import (
	"strconv"
	"strings"

	"github.com/ByLCY/scribe/meta"
	"github.com/ByLCY/scribe/style"
)

// 列表符号与编号计算。编号通过向后扫描同层级的编号段落得到：更深层级的
// 段落被跳过而不打断序列，遇到 startNumber 覆盖或不匹配的段落即停止。

// bulletGlyphs 按嵌套层级轮换的默认项目符号。
var bulletGlyphs = []string{"•", "◦", "▪"} // disc, circle, square

// bulletGlyph 返回项目符号字形；未显式指定样式时按层级轮换。
func bulletGlyph(bs style.BulletStyle, level int) string {
	switch bs {
	case style.BulletDisc:
		return bulletGlyphs[0]
	case style.BulletCircle:
		return bulletGlyphs[1]
	case style.BulletSquare:
		return bulletGlyphs[2]
	default:
		return bulletGlyphs[level%len(bulletGlyphs)]
	}
}

// listNumber 计算 bounds[idx] 处编号列表项的序号。
func listNumber(bounds []int, idx int, paras *meta.ParaFormats, cur style.ListFormat) int {
	if cur.Start > 0 {
		return cur.Start
	}
	level := cur.ClampLevel()
	count := 1
	for i := idx - 1; i >= 0; i-- {
		pf, ok := paras.At(bounds[i])
		if !ok || pf.List == nil || pf.List.Type != style.ListNumber {
			break
		}
		l := pf.List.ClampLevel()
		if l > level {
			// 更深层级：跳过，不打断同层序列。
			continue
		}
		if l < level {
			break
		}
		count++
		if pf.List.Start > 0 {
			return pf.List.Start + count - 1
		}
	}
	return count
}

// formatListNumber 将序号渲染为目标数字样式；非正数回落到十进制。
func formatListNumber(n int, ns style.NumberStyle) string {
	if n <= 0 {
		return strconv.Itoa(n)
	}
	switch ns {
	case style.NumberLowerAlpha:
		return alpha(n, false)
	case style.NumberUpperAlpha:
		return alpha(n, true)
	case style.NumberLowerRoman:
		return strings.ToLower(roman(n))
	case style.NumberUpperRoman:
		return roman(n)
	default:
		return strconv.Itoa(n)
	}
}

// alpha 渲染双射 26 进制字母序号：1→a … 26→z, 27→aa。
func alpha(n int, upper bool) string {
	base := byte('a')
	if upper {
		base = 'A'
	}
	var buf []byte
	for n > 0 {
		n--
		buf = append([]byte{base + byte(n%26)}, buf...)
		n /= 26
	}
	return string(buf)
}

var romanValues = []struct {
	val int
	sym string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

func roman(n int) string {
	var out strings.Builder
	for _, rv := range romanValues {
		for n >= rv.val {
			out.WriteString(rv.sym)
			n -= rv.val
		}
	}
	return out.String()
}

// listMarker 为列表项段落生成首行符号：文本、量度宽度与整体缩进。
func listMarker(lf style.ListFormat, bounds []int, idx int, paras *meta.ParaFormats, markerFmt style.CharacterFormat, opts Options) (*Marker, error) {
	level := lf.ClampLevel()
	indent := opts.IndentPerLevel * float64(level+1)

	var text string
	if lf.Type == style.ListNumber {
		n := listNumber(bounds, idx, paras, lf)
		text = formatListNumber(n, lf.Number) + "."
	} else {
		text = bulletGlyph(lf.Bullet, level)
	}

	size := opts.Measurer.Measure(text, markerFmt)
	if err := checkSize(size); err != nil {
		return nil, err
	}
	return &Marker{Text: text, Width: size.Width, Indent: indent}, nil
}
