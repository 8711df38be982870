package flow

import (
	"unicode"

	"github.com/ByLCY/scribe/style"
)

// 反向查询：从缓冲区位置找到承载它的页与行，或从行内横坐标找回缓冲区位置。
// 宽度计算必须与折行阶段使用同一个量度器，否则命中结果会漂移。

// Locate 返回包含 textIndex 的第一个 (页号, 行号)。区间判定按闭区间
// [StartIndex, EndIndex]，行尾位置（光标停在行末）归属该行。越过末尾的
// 位置归到最后一页的最后一行。
func Locate(pages []Page, textIndex int) (pageIdx, lineIdx int) {
	for pi, pg := range pages {
		if textIndex < pg.StartIndex || textIndex > pg.EndIndex {
			continue
		}
		for li, ln := range pg.Lines {
			if textIndex >= ln.StartIndex && textIndex <= ln.EndIndex {
				return pi, li
			}
		}
	}
	if len(pages) == 0 {
		return 0, 0
	}
	last := len(pages) - 1
	return last, len(pages[last].Lines) - 1
}

// IndexAt 把行内横坐标换算成缓冲区位置。坐标落在某字符前半部分（含中点）
// 时返回该字符的位置，后半部分返回下一个位置；越过行尾返回 EndIndex。
// 列表行的缩进区域归属行首。
func IndexAt(ln Line, visualX float64, m Measurer) int {
	x := visualX
	if ln.Marker != nil {
		x -= ln.Marker.Indent
	}
	if x <= 0 {
		return ln.StartIndex
	}

	if ln.IsBlockObjectLine {
		if x < ln.Width/2 {
			return ln.StartIndex
		}
		return ln.EndIndex
	}

	runes := []rune(ln.Text)
	cum := 0.0
	seenWord := false
	for i, r := range runes {
		pos := ln.StartIndex + i
		w := runeWidth(ln, pos, r, m)
		// 两端对齐产生的附加间距落在每个内部词间隙的末尾。
		if ln.ExtraWordSpacing > 0 && seenWord && isSpace(r) && i+1 < len(runes) && !isSpace(runes[i+1]) {
			w += ln.ExtraWordSpacing
		}
		if !isSpace(r) {
			seenWord = true
		}
		if x <= cum+w/2 {
			return pos
		}
		cum += w
	}
	return ln.EndIndex
}

// runeWidth 还原单个字符在行内占据的宽度。
func runeWidth(ln Line, pos int, r rune, m Measurer) float64 {
	if r == Placeholder {
		for _, pf := range ln.Fields {
			if pf.TextIndex == pos {
				return pf.Width
			}
		}
		for _, po := range ln.Objects {
			if po.TextIndex == pos {
				return po.Width
			}
		}
		return 0
	}
	f := runFormatAt(ln, pos)
	if r == '\t' {
		return 4 * m.Measure(" ", f).Width
	}
	return m.Measure(string(r), f).Width
}

// runFormatAt 找到覆盖 pos 的连续段的字符格式。行内每个非占位符字符都被
// 某个 Run 覆盖；若 pos 落在所有 Run 之外，沿用行首 Run 的格式，保证宽度
// 还原与折行阶段使用同一套格式。
func runFormatAt(ln Line, pos int) style.CharacterFormat {
	for _, run := range ln.Runs {
		if pos >= run.StartIndex && pos < run.StartIndex+len([]rune(run.Text)) {
			return run.Format
		}
	}
	if len(ln.Runs) > 0 {
		return ln.Runs[0].Format
	}
	return style.Default()
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r)
}
