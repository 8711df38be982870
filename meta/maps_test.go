package meta

import (
	"reflect"
	"testing"

	"github.com/ByLCY/scribe/field"
	"github.com/ByLCY/scribe/object"
	"github.com/ByLCY/scribe/style"
)

func boldFormat() style.CharacterFormat {
	return style.CharacterFormat{Weight: "bold"}
}

func TestInsertShiftMovesEntriesAtAndAfterBoundary(t *testing.T) {
	c := NewCharFormats()
	c.Set(4, boldFormat())
	c.Set(5, boldFormat())
	c.Set(9, boldFormat())

	c.InsertShift(5, 3)

	want := []int{4, 8, 12}
	if got := c.Positions(); !reflect.DeepEqual(got, want) {
		t.Errorf("位置 = %v, 期望 %v（恰在边界上的条目也要移动）", got, want)
	}
}

func TestInsertShiftIgnoresNonPositiveDelta(t *testing.T) {
	f := NewFields()
	f.Set(7, field.Field{ID: "a"})
	f.InsertShift(0, 0)
	f.InsertShift(0, -2)
	if got := f.Positions(); !reflect.DeepEqual(got, []int{7}) {
		t.Errorf("位置 = %v, 期望 [7]", got)
	}
}

func TestDeleteShiftRemovesRangeAndReturnsRemoved(t *testing.T) {
	f := NewFields()
	f.Set(3, field.Field{ID: "keep"})
	f.Set(5, field.Field{ID: "gone"})
	f.Set(6, field.Field{ID: "also-gone"})
	f.Set(10, field.Field{ID: "shifted"})

	removed := f.DeleteShift(5, 3) // 删除 [5,8)

	if len(removed) != 2 {
		t.Fatalf("被删条目数 = %d, 期望 2", len(removed))
	}
	if removed[5].ID != "gone" || removed[6].ID != "also-gone" {
		t.Errorf("被删条目 = %v", removed)
	}
	if got := f.Positions(); !reflect.DeepEqual(got, []int{3, 7}) {
		t.Errorf("剩余位置 = %v, 期望 [3 7]", got)
	}
}

// 插入随后等量删除必须恢复所有位置（位移可逆性）。
func TestShiftInversionRestoresPositions(t *testing.T) {
	c := NewCharFormats()
	c.Set(10, boldFormat())

	c.InsertShift(5, 3)
	if got := c.Positions(); !reflect.DeepEqual(got, []int{13}) {
		t.Fatalf("插入后位置 = %v, 期望 [13]", got)
	}
	c.DeleteShift(5, 3)
	if got := c.Positions(); !reflect.DeepEqual(got, []int{10}) {
		t.Errorf("删除后位置 = %v, 期望恢复为 [10]", got)
	}
}

// 段落表的删除平移保留恰好位于删除起点的条目：删除后该位置仍是段落起点。
func TestParaDeleteShiftKeepsEntryAtStart(t *testing.T) {
	p := NewParaFormats()
	p.Set(6, style.ParagraphFormat{Align: style.AlignCenter})
	p.Set(8, style.ParagraphFormat{Align: style.AlignRight})

	p.DeleteShift(6, 4)

	got, ok := p.At(6)
	if !ok || got.Align != style.AlignCenter {
		t.Errorf("起点条目丢失: %v, %v", got, ok)
	}
	if p.Len() != 1 {
		t.Errorf("条目数 = %d, 期望 1（区间内其余条目删除）", p.Len())
	}
}

// 插入含换行的文本时，新产生的段落起点继承被拆分段落的显式样式。
func TestInsertTextInheritsParagraphFormat(t *testing.T) {
	p := NewParaFormats()
	center := style.ParagraphFormat{Align: style.AlignCenter}
	p.Set(0, center)

	// 在位置 5 插入 "x\ny"：位置 7 成为新的段落起点。
	p.InsertText(5, "x\ny", 0)

	got, ok := p.At(7)
	if !ok || got.Align != style.AlignCenter {
		t.Errorf("新段落起点未继承样式: %v, %v", got, ok)
	}
	if first, _ := p.At(0); first.Align != style.AlignCenter {
		t.Errorf("原段落样式被破坏: %v", first)
	}
}

func TestInsertTextWithoutExplicitFormatInheritsNothing(t *testing.T) {
	p := NewParaFormats()
	p.InsertText(5, "x\ny", 0)
	if p.Len() != 0 {
		t.Errorf("默认样式段落不应产生继承条目: %v", p.Positions())
	}
}

// 在段落起点之前插入时，继承查找必须使用平移后的坐标。
func TestInsertTextBeforeParagraphStart(t *testing.T) {
	p := NewParaFormats()
	p.Set(10, style.ParagraphFormat{Align: style.AlignJustify})

	// 段落起点 10 在插入点 10 处被平移到 13。
	p.InsertText(10, "a\nb", 10)

	if _, ok := p.At(13); !ok {
		t.Fatalf("原段落条目未平移到 13: %v", p.Positions())
	}
	got, ok := p.At(12)
	if !ok || got.Align != style.AlignJustify {
		t.Errorf("新段落起点 12 未继承样式: %v, %v", got, ok)
	}
}

// 四张表在一次编辑内做相同的平移。
func TestMapsShiftTogether(t *testing.T) {
	m := NewMaps()
	m.Chars.Set(10, boldFormat())
	m.Paras.Set(10, style.ParagraphFormat{Align: style.AlignCenter})
	m.Fields.Set(10, field.Field{ID: "f"})
	m.Objects.Set(10, object.Image{W: 1, H: 1})

	m.InsertShift(5, 2)
	for name, got := range map[string][]int{
		"chars":   m.Chars.Positions(),
		"paras":   m.Paras.Positions(),
		"fields":  m.Fields.Positions(),
		"objects": m.Objects.Positions(),
	} {
		if !reflect.DeepEqual(got, []int{12}) {
			t.Errorf("%s 位置 = %v, 期望 [12]", name, got)
		}
	}

	m.DeleteShift(5, 2)
	if got := m.Fields.Positions(); !reflect.DeepEqual(got, []int{10}) {
		t.Errorf("恢复后字段位置 = %v, 期望 [10]", got)
	}
}

func TestLookupAtUnmatchedPositionReturnsAbsence(t *testing.T) {
	m := NewMaps()
	if _, ok := m.Fields.At(42); ok {
		t.Errorf("空表查询不应命中")
	}
	if _, ok := m.Paras.At(-1); ok {
		t.Errorf("越界查询不应命中")
	}
}
