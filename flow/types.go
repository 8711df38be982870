package flow

import (
	"github.com/ByLCY/scribe/field"
	"github.com/ByLCY/scribe/object"
	"github.com/ByLCY/scribe/style"
)

// 缓冲区中的保留字符：占位符对应一个替换字段或嵌入对象，分页符强制换页。
const (
	// Placeholder 占据恰好一个缓冲区位置，具体含义由字段表或对象表决定。
	Placeholder = '￼'
	// PageBreak 是显式分页定界符。
	PageBreak = '\f'
)

// Size 是一次量度的结果，单位与量度后端一致（pt）。
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Measurer 是外部量度能力：给定文本与样式返回宽高。实现必须是无副作用的
// 同步纯函数；返回非有限数值按宿主误用处理（Flow 直接报错）。
type Measurer interface {
	Measure(text string, format style.CharacterFormat) Size
	LineHeight(format style.CharacterFormat) float64
	MeasureField(f field.Field, format style.CharacterFormat) Size
}

// Run 是一行内样式一致的连续文本片段。
type Run struct {
	Text       string                `json:"text"`
	StartIndex int                   `json:"startIndex"`
	Width      float64               `json:"width"`
	Height     float64               `json:"height"`
	Format     style.CharacterFormat `json:"format"`
}

// PlacedField 记录落在某行上的替换字段及其量度宽度。
type PlacedField struct {
	TextIndex int         `json:"textIndex"`
	Width     float64     `json:"width"`
	Field     field.Field `json:"field"`
}

// PlacedObject 记录落在某行上的嵌入对象的几何快照。
type PlacedObject struct {
	TextIndex int                 `json:"textIndex"`
	Width     float64             `json:"width"`
	Height    float64             `json:"height"`
	Mode      object.PositionMode `json:"positionMode"`
	Kind      object.Kind         `json:"kind"`
	Object    object.Object       `json:"-"`
}

// Marker 是列表项首个可视行上的项目符号或编号。
// Indent 是整个列表项相对可用宽度左缘的缩进，符号绘制在缩进区内。
type Marker struct {
	Text   string  `json:"text"`
	Width  float64 `json:"width"`
	Indent float64 `json:"indent"`
}

// Line 是一个折行、量度后的可视行。StartIndex/EndIndex 是半开区间
// [StartIndex, EndIndex) 的绝对缓冲区位置；行尾定界符不计入区间，
// 由 EndsWithNewline / EndsWithPageBreak 标记。
type Line struct {
	Text              string          `json:"text"`
	Width             float64         `json:"width"`
	Height            float64         `json:"height"`
	Baseline          float64         `json:"baseline"`
	Runs              []Run           `json:"runs,omitempty"`
	Fields            []PlacedField   `json:"fields,omitempty"`
	Objects           []PlacedObject  `json:"objects,omitempty"`
	StartIndex        int             `json:"startIndex"`
	EndIndex          int             `json:"endIndex"`
	Align             style.Alignment `json:"alignment"`
	Marker            *Marker         `json:"listMarker,omitempty"`
	ExtraWordSpacing  float64         `json:"extraWordSpacing,omitempty"`
	EndsWithNewline   bool            `json:"endsWithNewline,omitempty"`
	EndsWithPageBreak bool            `json:"endsWithPageBreak,omitempty"`
	IsBlockObjectLine bool            `json:"isBlockObjectLine,omitempty"`
}

// Page 是分页结果中的一页；Height 为其可视行高度之和。
type Page struct {
	Lines      []Line  `json:"lines"`
	Height     float64 `json:"height"`
	StartIndex int     `json:"startIndex"`
	EndIndex   int     `json:"endIndex"`
}

// DefaultIndentPerLevel 是列表每层嵌套的默认缩进（pt）。
const DefaultIndentPerLevel = 18.0

// Options 配置一次排版所需的依赖与版面参数。
type Options struct {
	// Width/Height 是内容区域的可用宽高（pt），负值视为宿主误用。
	Width  float64
	Height float64
	// Measurer 是必需的量度后端。
	Measurer Measurer
	// IndentPerLevel 是列表每层嵌套的缩进；≤0 时取 DefaultIndentPerLevel。
	IndentPerLevel float64
	// Default 是文档级默认字符样式；零值时取 style.Default()。
	Default style.CharacterFormat
}
