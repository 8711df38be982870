package meta

import (
	"github.com/ByLCY/scribe/field"
	"github.com/ByLCY/scribe/object"
	"github.com/ByLCY/scribe/style"
)

// 该文件提供四张表与可持久化数组之间的无损互转。数组按 textIndex 升序，
// 每个条目完整携带其全部属性，宿主据此实现序列化格式。

// FieldEntry 是替换字段的持久化形态。
type FieldEntry struct {
	TextIndex int         `json:"textIndex"`
	Field     field.Field `json:"field"`
}

// Entries 按 textIndex 升序导出全部字段。
func (f *Fields) Entries() []FieldEntry {
	out := make([]FieldEntry, 0, f.Len())
	for _, pos := range f.Positions() {
		fd, _ := f.At(pos)
		out = append(out, FieldEntry{TextIndex: pos, Field: fd})
	}
	return out
}

// FieldsFromEntries 从持久化数组重建字段表。
func FieldsFromEntries(entries []FieldEntry) *Fields {
	f := NewFields()
	for _, e := range entries {
		f.Set(e.TextIndex, e.Field)
	}
	return f
}

// ObjectEntry 是嵌入对象的持久化形态；Kind 决定哪个载荷字段有效。
type ObjectEntry struct {
	TextIndex int             `json:"textIndex"`
	Kind      object.Kind     `json:"kind"`
	Image     *object.Image   `json:"image,omitempty"`
	TextBox   *object.TextBox `json:"textBox,omitempty"`
	Table     *object.Table   `json:"table,omitempty"`
}

// Entries 按 textIndex 升序导出全部对象。
func (o *Objects) Entries() []ObjectEntry {
	out := make([]ObjectEntry, 0, o.Len())
	for _, pos := range o.Positions() {
		obj, _ := o.At(pos)
		e := ObjectEntry{TextIndex: pos, Kind: obj.ObjectKind()}
		switch v := obj.(type) {
		case object.Image:
			img := v
			e.Image = &img
		case object.TextBox:
			box := v
			e.TextBox = &box
		case object.Table:
			tbl := v
			e.Table = &tbl
		}
		out = append(out, e)
	}
	return out
}

// ObjectsFromEntries 从持久化数组重建对象表；没有载荷的条目被忽略。
func ObjectsFromEntries(entries []ObjectEntry) *Objects {
	o := NewObjects()
	for _, e := range entries {
		switch {
		case e.Table != nil:
			o.Set(e.TextIndex, *e.Table)
		case e.Image != nil:
			o.Set(e.TextIndex, *e.Image)
		case e.TextBox != nil:
			o.Set(e.TextIndex, *e.TextBox)
		}
	}
	return o
}

// CharEntry 是字符样式覆盖的持久化形态。
type CharEntry struct {
	TextIndex int                   `json:"textIndex"`
	Format    style.CharacterFormat `json:"format"`
}

// Entries 按 textIndex 升序导出全部字符样式覆盖。
func (c *CharFormats) Entries() []CharEntry {
	out := make([]CharEntry, 0, c.Len())
	for _, pos := range c.Positions() {
		f, _ := c.At(pos)
		out = append(out, CharEntry{TextIndex: pos, Format: f})
	}
	return out
}

// CharFormatsFromEntries 从持久化数组重建字符样式表。
func CharFormatsFromEntries(entries []CharEntry) *CharFormats {
	c := NewCharFormats()
	for _, e := range entries {
		c.Set(e.TextIndex, e.Format)
	}
	return c
}

// ParaEntry 是段落样式的持久化形态。
type ParaEntry struct {
	TextIndex int                   `json:"textIndex"`
	Format    style.ParagraphFormat `json:"format"`
}

// Entries 按 textIndex 升序导出全部段落样式。
func (p *ParaFormats) Entries() []ParaEntry {
	out := make([]ParaEntry, 0, p.Len())
	for _, pos := range p.Positions() {
		f, _ := p.At(pos)
		out = append(out, ParaEntry{TextIndex: pos, Format: f})
	}
	return out
}

// ParaFormatsFromEntries 从持久化数组重建段落样式表。
func ParaFormatsFromEntries(entries []ParaEntry) *ParaFormats {
	p := NewParaFormats()
	for _, e := range entries {
		p.Set(e.TextIndex, e.Format)
	}
	return p
}

// Document 是四张表的持久化聚合，供宿主一次性存取。
type Document struct {
	Chars   []CharEntry   `json:"characterFormats,omitempty"`
	Paras   []ParaEntry   `json:"paragraphFormats,omitempty"`
	Fields  []FieldEntry  `json:"fields,omitempty"`
	Objects []ObjectEntry `json:"objects,omitempty"`
}

// Export 导出四张表。
func (m *Maps) Export() Document {
	return Document{
		Chars:   m.Chars.Entries(),
		Paras:   m.Paras.Entries(),
		Fields:  m.Fields.Entries(),
		Objects: m.Objects.Entries(),
	}
}

// Import 从持久化聚合重建四张表。
func Import(doc Document) *Maps {
	return &Maps{
		Chars:   CharFormatsFromEntries(doc.Chars),
		Paras:   ParaFormatsFromEntries(doc.Paras),
		Fields:  FieldsFromEntries(doc.Fields),
		Objects: ObjectsFromEntries(doc.Objects),
	}
}
