package object

// 该文件定义嵌入对象能力：排版引擎只依赖对象的几何属性与放置方式，
// 不关心其绘制内容。

// PositionMode 描述嵌入对象在文本流中的放置方式。
type PositionMode string

const (
	// Inline 对象像一个词一样参与折行。
	Inline PositionMode = "inline"
	// Block 对象独占一个可视行。
	Block PositionMode = "block"
	// Relative 对象相对页面定位，折行时按 inline 处理（坐标由宿主解释）。
	Relative PositionMode = "relative"
)

// Kind 标识嵌入对象的类型。
type Kind string

const (
	KindImage   Kind = "image"
	KindTable   Kind = "table"
	KindTextBox Kind = "textbox"
)

// Object 是排版引擎对嵌入对象的全部要求：宽高、放置方式与类型。
// 宽高单位与量度后端一致（pt）。
type Object interface {
	Width() float64
	Height() float64
	Mode() PositionMode
	ObjectKind() Kind
}

// Splittable 由允许跨页续排的对象（表格）实现。
// 分页器用表头高度加首个数据行高度判断当前页剩余空间是否足以起排。
// 未实现该接口的对象整体移动到下一页。
type Splittable interface {
	HeaderHeight() float64
	FirstDataRowHeight() float64
}

// Image 是最简单的嵌入对象：固定宽高的矩形。
type Image struct {
	W        float64      `json:"width"`
	H        float64      `json:"height"`
	Position PositionMode `json:"positionMode"`
}

func (i Image) Width() float64     { return i.W }
func (i Image) Height() float64    { return i.H }
func (i Image) ObjectKind() Kind   { return KindImage }
func (i Image) Mode() PositionMode {
	if i.Position == "" {
		return Inline
	}
	return i.Position
}

// TextBox 是宿主自行排版内容的矩形容器，对本引擎而言等同于不可分割的矩形。
type TextBox struct {
	W        float64      `json:"width"`
	H        float64      `json:"height"`
	Position PositionMode `json:"positionMode"`
}

func (b TextBox) Width() float64     { return b.W }
func (b TextBox) Height() float64    { return b.H }
func (b TextBox) ObjectKind() Kind   { return KindTextBox }
func (b TextBox) Mode() PositionMode {
	if b.Position == "" {
		return Inline
	}
	return b.Position
}

// TableCell 记录单元格文本，排版引擎不展开其内容。
type TableCell struct {
	Text string `json:"text"`
}

// TableRow 记录每一行的高度与单元格。
type TableRow struct {
	Height   float64     `json:"height"`
	IsHeader bool        `json:"isHeader"`
	Cells    []TableCell `json:"cells"`
}

// Table 是可跨页续排的块级对象。行高由宿主预先算好。
type Table struct {
	ColumnWidths []float64  `json:"columnWidths"`
	Rows         []TableRow `json:"rows"`
	RowGap       float64    `json:"rowGap"`
}

var (
	_ Object     = Table{}
	_ Splittable = Table{}
)

func (t Table) Width() float64 {
	w := 0.0
	for _, c := range t.ColumnWidths {
		w += c
	}
	return w
}

func (t Table) Height() float64 {
	h := 0.0
	for i, row := range t.Rows {
		if i > 0 {
			h += t.RowGap
		}
		h += row.Height
	}
	return h
}

func (t Table) Mode() PositionMode { return Block }
func (t Table) ObjectKind() Kind   { return KindTable }

// HeaderHeight 返回所有表头行的总高度（含行间距）。
func (t Table) HeaderHeight() float64 {
	h := 0.0
	for _, row := range t.Rows {
		if !row.IsHeader {
			break
		}
		if h > 0 {
			h += t.RowGap
		}
		h += row.Height
	}
	return h
}

// FirstDataRowHeight 返回首个非表头行的高度；没有数据行时为 0。
func (t Table) FirstDataRowHeight() float64 {
	for _, row := range t.Rows {
		if !row.IsHeader {
			return row.Height
		}
	}
	return 0
}
