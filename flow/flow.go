package flow

import (
	"fmt"

	"github.com/ByLCY/scribe/meta"
	"github.com/ByLCY/scribe/style"
)

// Flow 对缓冲区执行完整的排版流程：按分隔符切出逻辑行，逐行分片并折行，
// 最后对全部可视行分页。width 与 height 以磅为单位；maps 为 nil 时按无任何
// 显式格式处理。同样的输入总是产出同样的页面序列。
func Flow(buffer string, width, height float64, maps *meta.Maps, m Measurer) ([]Page, error) {
	return FlowWithOptions(buffer, maps, Options{Width: width, Height: height, Measurer: m})
}

// FlowWithOptions 与 Flow 相同，但允许指定列表缩进与默认字符格式。
func FlowWithOptions(buffer string, maps *meta.Maps, opts Options) ([]Page, error) {
	if opts.Measurer == nil {
		return nil, fmt.Errorf("flow: 未提供量度器 (measurer is nil)")
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("flow: 页面尺寸非法 (width=%v, height=%v)", opts.Width, opts.Height)
	}
	if opts.IndentPerLevel <= 0 {
		opts.IndentPerLevel = DefaultIndentPerLevel
	}
	var zero style.CharacterFormat
	if opts.Default == zero {
		opts.Default = style.Default()
	}
	if maps == nil {
		maps = meta.NewMaps()
	}

	runes := []rune(buffer)
	bounds := ParagraphBoundaries(buffer)
	tracer().Debugf("排版开始：%d 个字符，%d 个段落，页面 %v x %v",
		len(runes), len(bounds), opts.Width, opts.Height)

	var lines []Line
	lineStart := 0
	paraIdx := 0
	for i := 0; i <= len(runes); i++ {
		var nl, pb bool
		if i < len(runes) {
			nl = runes[i] == '\n'
			pb = runes[i] == PageBreak
			if !nl && !pb {
				continue
			}
		}

		// 当前逻辑行所属段落：起点不大于 lineStart 的最后一个边界。
		for paraIdx+1 < len(bounds) && bounds[paraIdx+1] <= lineStart {
			paraIdx++
		}
		vls, err := flowLogicalLine(runes, lineStart, i, bounds, paraIdx, maps, opts)
		if err != nil {
			return nil, err
		}
		// 分隔符记在逻辑行最后一个可视行上，本身不计入任何行的区间。
		vls[len(vls)-1].EndsWithNewline = nl
		vls[len(vls)-1].EndsWithPageBreak = pb
		lines = append(lines, vls...)
		lineStart = i + 1
	}

	tracer().Debugf("折行完成：%d 个可视行", len(lines))
	pages := paginate(lines, opts.Height)
	tracer().Debugf("分页完成：%d 页", len(pages))
	return pages, nil
}

// flowLogicalLine 对单个逻辑行 [start, end) 执行分片与折行。
func flowLogicalLine(runes []rune, start, end int, bounds []int, paraIdx int, maps *meta.Maps, opts Options) ([]Line, error) {
	paraStart := bounds[paraIdx]
	pf, ok := maps.Paras.At(paraStart)
	if !ok {
		pf = style.DefaultParagraph()
	}

	emptyHeight := opts.Measurer.LineHeight(formatAt(maps, start, opts.Default))

	var marker *Marker
	indent := 0.0
	if pf.List != nil {
		mk, err := listMarker(*pf.List, bounds, paraIdx, maps.Paras, formatAt(maps, paraStart, opts.Default), opts)
		if err != nil {
			return nil, err
		}
		indent = mk.Indent
		// 项目符号只出现在段落的第一个可视行上。
		if start == paraStart {
			marker = mk
		}
	}

	segs, err := segmentLine(runes, start, end, maps, opts)
	if err != nil {
		return nil, err
	}
	return wrapSegments(segs, start, pf, marker, indent, emptyHeight, opts), nil
}

// ParagraphBoundaries 返回缓冲区中全部段落起点：位置 0 以及每个换行符的
// 下一个位置。显式分页符不结束段落。
func ParagraphBoundaries(buffer string) []int {
	bounds := []int{0}
	for i, r := range []rune(buffer) {
		if r == '\n' {
			bounds = append(bounds, i+1)
		}
	}
	return bounds
}
