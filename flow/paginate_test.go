package flow

import (
	"testing"

	"github.com/ByLCY/scribe/meta"
	"github.com/ByLCY/scribe/object"
)

func sampleTable(headerH, rowH float64, rows int) object.Table {
	t := object.Table{ColumnWidths: []float64{40, 40}}
	t.Rows = append(t.Rows, object.TableRow{Height: headerH, IsHeader: true, Cells: []object.TableCell{{Text: "甲"}, {Text: "乙"}}})
	for i := 0; i < rows; i++ {
		t.Rows = append(t.Rows, object.TableRow{Height: rowH, Cells: []object.TableCell{{Text: "x"}, {Text: "y"}}})
	}
	return t
}

// 表头 10 + 首个数据行 10 ≤ 剩余 20 时，超高的表格留在当前页起排。
func TestSplittableTableStaysWhenHeadAndFirstRowFit(t *testing.T) {
	maps := meta.NewMaps()
	maps.Objects.Set(5, sampleTable(10, 10, 8)) // 总高 90
	// 第一行文字高 10，页高 30，剩余 20。
	pages := mustFlow(t, "line\n￼", 1000, 30, maps)
	if len(pages) != 1 {
		t.Fatalf("页数 = %d, 期望 1（表格可拆分，留在当前页）", len(pages))
	}
	if !pages[0].Lines[1].IsBlockObjectLine {
		t.Errorf("第二行应为表格独占行: %+v", pages[0].Lines[1])
	}
}

func TestSplittableTableMovesWhenHeadDoesNotFit(t *testing.T) {
	maps := meta.NewMaps()
	maps.Objects.Set(5, sampleTable(15, 10, 8))
	// 剩余 20 < 表头 15 + 首行 10。
	pages := mustFlow(t, "line\n￼", 1000, 30, maps)
	if len(pages) != 2 {
		t.Fatalf("页数 = %d, 期望 2（起排空间不足）", len(pages))
	}
	if !pages[1].Lines[0].IsBlockObjectLine {
		t.Errorf("表格应落在下一页首行: %+v", pages[1].Lines[0])
	}
}

// 未实现拆分协议的块级对象整体移入下一页。
func TestNonSplittableObjectMovesWhole(t *testing.T) {
	maps := meta.NewMaps()
	maps.Objects.Set(5, object.Image{W: 50, H: 90, Position: object.Block})
	pages := mustFlow(t, "line\n￼", 1000, 30, maps)
	if len(pages) != 2 {
		t.Fatalf("页数 = %d, 期望 2", len(pages))
	}
}

func TestPageHeightIsSumOfLineHeights(t *testing.T) {
	pages := mustFlow(t, "a\nb\nc", 1000, 1000, nil)
	if len(pages) != 1 {
		t.Fatalf("页数 = %d, 期望 1", len(pages))
	}
	if pages[0].Height != 30 {
		t.Errorf("页高 = %v, 期望 30", pages[0].Height)
	}
}

func TestPaginateNormalizesEmptyInput(t *testing.T) {
	pages := paginate(nil, 100)
	if len(pages) != 1 || len(pages[0].Lines) != 1 {
		t.Fatalf("空输入应归一为 1 页 1 行: %+v", pages)
	}
}
