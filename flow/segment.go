package flow

import (
	"fmt"
	"math"
	"unicode"

	"github.com/ByLCY/scribe/meta"
	"github.com/ByLCY/scribe/style"
)

// 分词器把一个不含定界符的逻辑行切成原子片段：最长非空白词、最长空白串、
// 或单个占位符。占位符永远不并入更大的片段，因而折行器可以用同一条放置
// 规则处理文本与嵌入内容。

type segmentKind int

const (
	segWord segmentKind = iota
	segSpace
	segField
	segObject
)

type segment struct {
	kind   segmentKind
	text   string
	start  int // 绝对缓冲区位置，区间 [start, end)
	end    int
	width  float64
	height float64
	runs   []Run
	field  *PlacedField
	object *PlacedObject
}

// segmentLine 切分 runes[start:end]（一个逻辑行）并完成量度。
func segmentLine(runes []rune, start, end int, maps *meta.Maps, opts Options) ([]segment, error) {
	var segs []segment

	i := start
	for i < end {
		r := runes[i]
		switch {
		case r == Placeholder:
			seg, err := placeholderSegment(i, maps, opts)
			if err != nil {
				return nil, err
			}
			segs = append(segs, seg)
			i++

		case unicode.IsSpace(r):
			j := i
			for j < end && runes[j] != Placeholder && unicode.IsSpace(runes[j]) {
				j++
			}
			seg, err := runSegment(runes, i, j, segSpace, maps, opts)
			if err != nil {
				return nil, err
			}
			segs = append(segs, seg)
			i = j

		default:
			j := i
			for j < end && runes[j] != Placeholder && !unicode.IsSpace(runes[j]) {
				j++
			}
			seg, err := runSegment(runes, i, j, segWord, maps, opts)
			if err != nil {
				return nil, err
			}
			segs = append(segs, seg)
			i = j
		}
	}

	return segs, nil
}

// placeholderSegment 量度单个占位符。没有任何表项匹配的孤儿占位符按零宽
// 处理并保留原字符，排版照常进行。
func placeholderSegment(pos int, maps *meta.Maps, opts Options) (segment, error) {
	text := string(Placeholder)
	eff := formatAt(maps, pos, opts.Default)

	if fd, ok := maps.Fields.At(pos); ok {
		if fd.Formatting != nil {
			eff = eff.Merge(*fd.Formatting)
		}
		size := opts.Measurer.MeasureField(fd, eff)
		if err := checkSize(size); err != nil {
			return segment{}, err
		}
		placed := &PlacedField{TextIndex: pos, Width: size.Width, Field: fd}
		return segment{
			kind:   segField,
			text:   text,
			start:  pos,
			end:    pos + 1,
			width:  size.Width,
			height: size.Height,
			runs:   []Run{{Text: text, StartIndex: pos, Width: size.Width, Height: size.Height, Format: eff}},
			field:  placed,
		}, nil
	}

	if obj, ok := maps.Objects.At(pos); ok {
		placed := &PlacedObject{
			TextIndex: pos,
			Width:     obj.Width(),
			Height:    obj.Height(),
			Mode:      obj.Mode(),
			Kind:      obj.ObjectKind(),
			Object:    obj,
		}
		return segment{
			kind:   segObject,
			text:   text,
			start:  pos,
			end:    pos + 1,
			width:  placed.Width,
			height: placed.Height,
			object: placed,
		}, nil
	}

	// 孤儿占位符：零宽、零高，不参与量度。
	return segment{
		kind:  segWord,
		text:  text,
		start: pos,
		end:   pos + 1,
		runs:  []Run{{Text: text, StartIndex: pos, Format: eff}},
	}, nil
}

// runSegment 量度 runes[start:end] 的同类字符串，并在样式变化处拆分子 run。
func runSegment(runes []rune, start, end int, kind segmentKind, maps *meta.Maps, opts Options) (segment, error) {
	seg := segment{kind: kind, text: string(runes[start:end]), start: start, end: end}

	runStart := start
	runFmt := formatAt(maps, start, opts.Default)
	flush := func(upto int) error {
		if upto <= runStart {
			return nil
		}
		run, err := measureRun(runes[runStart:upto], runStart, runFmt, kind, opts)
		if err != nil {
			return err
		}
		seg.runs = append(seg.runs, run)
		seg.width += run.Width
		if run.Height > seg.height {
			seg.height = run.Height
		}
		return nil
	}

	for i := start + 1; i < end; i++ {
		f := formatAt(maps, i, opts.Default)
		if f != runFmt {
			if err := flush(i); err != nil {
				return segment{}, err
			}
			runStart, runFmt = i, f
		}
	}
	if err := flush(end); err != nil {
		return segment{}, err
	}
	return seg, nil
}

// measureRun 量度一个样式一致的片段。空白按单字符累计，tab 记作四个空格宽。
func measureRun(runes []rune, start int, f style.CharacterFormat, kind segmentKind, opts Options) (Run, error) {
	m := opts.Measurer
	run := Run{Text: string(runes), StartIndex: start, Format: f}

	if kind == segSpace {
		space := m.Measure(" ", f)
		if err := checkSize(space); err != nil {
			return Run{}, err
		}
		run.Height = space.Height
		for _, r := range runes {
			if r == '\t' {
				run.Width += 4 * space.Width
				continue
			}
			sz := m.Measure(string(r), f)
			if err := checkSize(sz); err != nil {
				return Run{}, err
			}
			run.Width += sz.Width
		}
		return run, nil
	}

	sz := m.Measure(run.Text, f)
	if err := checkSize(sz); err != nil {
		return Run{}, err
	}
	run.Width = sz.Width
	run.Height = sz.Height
	return run, nil
}

// formatAt 解析某个位置的有效字符样式：默认样式叠加该位置的显式覆盖。
func formatAt(maps *meta.Maps, pos int, def style.CharacterFormat) style.CharacterFormat {
	if override, ok := maps.Chars.At(pos); ok {
		return def.Merge(override)
	}
	return def
}

// checkSize 校验量度结果是有限数值；非有限值属于宿主误用。
func checkSize(s Size) error {
	if math.IsNaN(s.Width) || math.IsInf(s.Width, 0) ||
		math.IsNaN(s.Height) || math.IsInf(s.Height, 0) {
		return fmt.Errorf("flow: 量度结果非法 width=%g height=%g", s.Width, s.Height)
	}
	return nil
}
