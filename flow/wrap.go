package flow

import (
	"strings"

	"github.com/ByLCY/scribe/object"
	"github.com/ByLCY/scribe/style"
)

// 折行器：贪心累积片段直至超出可用宽度。超宽的非空白片段结束当前行并作为
// 新行的开头；超宽的空白片段仍追加到当前行（容忍行尾溢出），下一片段另起
// 新行；块级对象无条件独占一行。单个超宽的词不会被从中折断。

// baselineFactor 以行高近似文本基线位置；块级对象的基线在其底边。
const baselineFactor = 0.8

// wrapSegments 将一个逻辑行的片段折成一到多个可视行。
// indent 是列表项缩进（非列表为 0），emptyHeight 是空行的回落行高。
func wrapSegments(segs []segment, lineStart int, pf style.ParagraphFormat, marker *Marker, indent, emptyHeight float64, opts Options) []Line {
	contentWidth := opts.Width - indent
	if contentWidth < 0 {
		contentWidth = 0
	}

	var lines []Line
	var lineSegs [][]segment
	var cur []segment
	curWidth := 0.0
	cursor := lineStart

	flush := func() {
		ln := buildLine(cur, cursor, pf.Align, emptyHeight)
		lines = append(lines, ln)
		lineSegs = append(lineSegs, cur)
		cursor = ln.EndIndex
		cur, curWidth = nil, 0
	}

	for _, seg := range segs {
		if seg.object != nil && seg.object.Mode == object.Block {
			// 块级对象：即使放得下也结束当前行，独占一行后另起新行。
			if len(cur) > 0 {
				flush()
			}
			bl := blockObjectLine(seg, pf.Align)
			lines = append(lines, bl)
			lineSegs = append(lineSegs, []segment{seg})
			cursor = seg.end
			continue
		}

		if curWidth+seg.width <= contentWidth || len(cur) == 0 {
			cur = append(cur, seg)
			curWidth += seg.width
			continue
		}

		if seg.kind == segSpace {
			cur = append(cur, seg)
			curWidth += seg.width
			flush()
		} else {
			flush()
			cur = append(cur, seg)
			curWidth += seg.width
		}
	}
	if len(cur) > 0 || len(lines) == 0 {
		// 空逻辑行也产出恰好一个空可视行。
		flush()
	}

	if marker != nil {
		lines[0].Marker = marker
	}

	if pf.Align == style.AlignJustify {
		justify(lines, lineSegs, contentWidth)
	}
	return lines
}

// buildLine 把累积的片段合成一个可视行。
func buildLine(segs []segment, fallbackStart int, align style.Alignment, emptyHeight float64) Line {
	if len(segs) == 0 {
		return Line{
			StartIndex: fallbackStart,
			EndIndex:   fallbackStart,
			Height:     emptyHeight,
			Baseline:   baselineFactor * emptyHeight,
			Align:      align,
		}
	}

	var text strings.Builder
	ln := Line{
		StartIndex: segs[0].start,
		EndIndex:   segs[len(segs)-1].end,
		Align:      align,
	}
	for _, seg := range segs {
		text.WriteString(seg.text)
		ln.Width += seg.width
		if seg.height > ln.Height {
			ln.Height = seg.height
		}
		ln.Runs = append(ln.Runs, seg.runs...)
		if seg.field != nil {
			ln.Fields = append(ln.Fields, *seg.field)
		}
		if seg.object != nil {
			ln.Objects = append(ln.Objects, *seg.object)
		}
	}
	ln.Text = text.String()
	if ln.Height <= 0 {
		ln.Height = emptyHeight
	}
	ln.Baseline = baselineFactor * ln.Height
	return ln
}

// blockObjectLine 为块级对象生成独占行：不参与两端对齐，基线在对象底边。
func blockObjectLine(seg segment, align style.Alignment) Line {
	return Line{
		Text:              seg.text,
		Width:             seg.width,
		Height:            seg.height,
		Baseline:          seg.height,
		Objects:           []PlacedObject{*seg.object},
		StartIndex:        seg.start,
		EndIndex:          seg.end,
		Align:             align,
		IsBlockObjectLine: true,
	}
}

// justify 为段落中除最后一行外的可视行分摊剩余宽度。
// 每个内部词间隙（夹在两个非空白片段之间的空白片段）分得等量的附加间距；
// 行宽按去除行尾空白后的宽度计算。
func justify(lines []Line, lineSegs [][]segment, contentWidth float64) {
	for i := 0; i < len(lines)-1; i++ {
		if lines[i].IsBlockObjectLine {
			continue
		}
		segs := lineSegs[i]

		last := len(segs) - 1
		for last >= 0 && segs[last].kind == segSpace {
			last--
		}
		if last < 0 {
			continue
		}
		trimmed := 0.0
		gaps := 0
		seenWord := false
		for j := 0; j <= last; j++ {
			trimmed += segs[j].width
			if segs[j].kind == segSpace {
				if seenWord && j < last {
					gaps++
				}
			} else {
				seenWord = true
			}
		}
		if gaps < 1 {
			continue
		}
		extra := (contentWidth - trimmed) / float64(gaps)
		if extra > 0 {
			lines[i].ExtraWordSpacing = extra
		}
	}
}
