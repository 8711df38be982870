package flow

import "github.com/ByLCY/scribe/object"

// 分页器：按高度预算顺序收集可视行。装不下的行开启新页；以 '\f' 结尾的行
// 收入当前页后立即换页。可拆分的表格（见 object.Splittable）允许在表头加
// 首个数据行能放进剩余空间时越出页底，拆分动作本身留给上层渲染阶段。

// paginate 把可视行序列切成页。输入为空时仍产出一页，内含一个空行。
func paginate(lines []Line, pageHeight float64) []Page {
	if len(lines) == 0 {
		lines = []Line{{}}
	}

	var pages []Page
	var cur []Line
	used := 0.0

	flush := func() {
		pg := Page{
			Lines:      cur,
			StartIndex: cur[0].StartIndex,
			EndIndex:   cur[len(cur)-1].EndIndex,
		}
		for _, ln := range cur {
			pg.Height += ln.Height
		}
		pages = append(pages, pg)
		cur, used = nil, 0
	}

	for _, ln := range lines {
		if len(cur) > 0 && used+ln.Height > pageHeight && !splitFits(ln, pageHeight-used) {
			flush()
		}
		cur = append(cur, ln)
		used += ln.Height
		if ln.EndsWithPageBreak {
			flush()
		}
	}
	if len(cur) > 0 {
		flush()
	}
	return pages
}

// splitFits 判断超高的行是否因承载可拆分表格而留在当前页：
// 表头加第一个数据行必须放得进剩余空间。
func splitFits(ln Line, remaining float64) bool {
	if !ln.IsBlockObjectLine || len(ln.Objects) != 1 {
		return false
	}
	sp, ok := ln.Objects[0].Object.(object.Splittable)
	if !ok {
		// 未实现拆分协议的对象整体移入下一页。
		return false
	}
	return sp.HeaderHeight()+sp.FirstDataRowHeight() <= remaining
}
