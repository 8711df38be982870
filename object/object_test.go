package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageDefaultsToInline(t *testing.T) {
	assert.Equal(t, Inline, Image{W: 10, H: 10}.Mode())
	assert.Equal(t, Block, Image{W: 10, H: 10, Position: Block}.Mode())
	assert.Equal(t, KindImage, Image{}.ObjectKind())
}

func TestTableGeometry(t *testing.T) {
	tbl := Table{
		ColumnWidths: []float64{30, 50},
		RowGap:       2,
		Rows: []TableRow{
			{Height: 10, IsHeader: true},
			{Height: 8},
			{Height: 8},
		},
	}
	assert.Equal(t, 80.0, tbl.Width())
	assert.Equal(t, 30.0, tbl.Height(), "10 + 2 + 8 + 2 + 8")
	assert.Equal(t, Block, tbl.Mode(), "表格总是块级对象")
}

func TestTableSplitHeights(t *testing.T) {
	tbl := Table{
		RowGap: 2,
		Rows: []TableRow{
			{Height: 10, IsHeader: true},
			{Height: 6, IsHeader: true},
			{Height: 8},
			{Height: 9},
		},
	}
	assert.Equal(t, 18.0, tbl.HeaderHeight(), "两个表头行加一个行距")
	assert.Equal(t, 8.0, tbl.FirstDataRowHeight())
}

func TestTableWithoutDataRows(t *testing.T) {
	tbl := Table{Rows: []TableRow{{Height: 10, IsHeader: true}}}
	assert.Equal(t, 10.0, tbl.HeaderHeight())
	assert.Equal(t, 0.0, tbl.FirstDataRowHeight())
}

func TestHeaderRowsMustLead(t *testing.T) {
	// 夹在数据行之后的 isHeader 行不计入表头。
	tbl := Table{Rows: []TableRow{
		{Height: 5},
		{Height: 10, IsHeader: true},
	}}
	assert.Equal(t, 0.0, tbl.HeaderHeight())
	assert.Equal(t, 5.0, tbl.FirstDataRowHeight())
}
