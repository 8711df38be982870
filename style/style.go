package style

import "strings"

// 该文件定义字符样式与段落样式，供元数据表、排版计算与量度后端共用。

// Color 采用 0-255 的 RGB 数值。
type Color struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// CharacterFormat 描述一段文字的字符级样式覆盖。
// 零值字段表示沿用文档默认样式；FontSize 单位为 pt。
type CharacterFormat struct {
	FontFamily string  `json:"fontFamily,omitempty"`
	FontSize   float64 `json:"fontSize,omitempty"`
	Weight     string  `json:"weight,omitempty"` // regular/medium/semibold/bold/extrabold/black
	Style      string  `json:"style,omitempty"`  // normal/italic/oblique
	Color      *Color  `json:"color,omitempty"`
	Background *Color  `json:"backgroundColor,omitempty"`
}

// Merge 用 override 的非零字段覆盖本样式，返回合并结果。
func (f CharacterFormat) Merge(override CharacterFormat) CharacterFormat {
	out := f
	if override.FontFamily != "" {
		out.FontFamily = override.FontFamily
	}
	if override.FontSize > 0 {
		out.FontSize = override.FontSize
	}
	if override.Weight != "" {
		out.Weight = override.Weight
	}
	if override.Style != "" {
		out.Style = override.Style
	}
	if override.Color != nil {
		out.Color = override.Color
	}
	if override.Background != nil {
		out.Background = override.Background
	}
	return out
}

// Default 返回文档级默认字符样式（12pt Body）。
func Default() CharacterFormat {
	return CharacterFormat{
		FontFamily: "Body",
		FontSize:   12,
		Weight:     "regular",
		Style:      "normal",
	}
}

// Alignment 表示段落水平对齐方式。
type Alignment string

const (
	AlignLeft    Alignment = "left"
	AlignCenter  Alignment = "center"
	AlignRight   Alignment = "right"
	AlignJustify Alignment = "justify"
)

// NormalizeAlignment 规范化对齐取值，支持 start/end 别名；未知值回落到 left。
func NormalizeAlignment(v string) Alignment {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "left", "start":
		return AlignLeft
	case "center", "middle":
		return AlignCenter
	case "right", "end":
		return AlignRight
	case "justify":
		return AlignJustify
	default:
		return AlignLeft
	}
}

// ListType 区分项目符号列表与编号列表。
type ListType string

const (
	ListBullet ListType = "bullet"
	ListNumber ListType = "number"
)

// BulletStyle 是项目符号字形；为空时按嵌套层级在 disc/circle/square 间轮换。
type BulletStyle string

const (
	BulletDisc   BulletStyle = "disc"
	BulletCircle BulletStyle = "circle"
	BulletSquare BulletStyle = "square"
)

// NumberStyle 是编号列表的数字表示方式。
type NumberStyle string

const (
	NumberDecimal    NumberStyle = "decimal"
	NumberLowerAlpha NumberStyle = "lower-alpha"
	NumberUpperAlpha NumberStyle = "upper-alpha"
	NumberLowerRoman NumberStyle = "lower-roman"
	NumberUpperRoman NumberStyle = "upper-roman"
)

// MaxNestingLevel 是列表嵌套层级的上限（含）。
const MaxNestingLevel = 8

// ListFormat 描述一个列表项段落的列表属性。
type ListFormat struct {
	Type   ListType    `json:"listType"`
	Bullet BulletStyle `json:"bulletStyle,omitempty"`
	Number NumberStyle `json:"numberStyle,omitempty"`
	Level  int         `json:"nestingLevel"`
	Start  int         `json:"startNumber,omitempty"` // >0 时作为该项的起始编号
}

// ClampLevel 将嵌套层级收敛到 [0, MaxNestingLevel]。
func (l ListFormat) ClampLevel() int {
	if l.Level < 0 {
		return 0
	}
	if l.Level > MaxNestingLevel {
		return MaxNestingLevel
	}
	return l.Level
}

// ParagraphFormat 描述段落级样式：对齐方式与可选的列表属性。
type ParagraphFormat struct {
	Align Alignment   `json:"alignment"`
	List  *ListFormat `json:"list,omitempty"`
}

// DefaultParagraph 返回默认段落样式（左对齐、非列表）。
func DefaultParagraph() ParagraphFormat {
	return ParagraphFormat{Align: AlignLeft}
}
