package meta

import (
	"sort"

	"github.com/ByLCY/scribe/field"
	"github.com/ByLCY/scribe/object"
	"github.com/ByLCY/scribe/style"
)

// 该文件实现四张按缓冲区位置索引的稀疏元数据表。宿主的每次编辑都必须在
// 同一事务内对四张表做相同的平移，之后位置才保持有效。

// posMap 是四张表共用的位置索引核心：插入平移、删除平移与查询。
type posMap[T any] struct {
	entries map[int]T
}

func newPosMap[T any]() posMap[T] {
	return posMap[T]{entries: map[int]T{}}
}

func (p *posMap[T]) set(pos int, v T) {
	if pos < 0 {
		return
	}
	p.entries[pos] = v
}

func (p *posMap[T]) at(pos int) (T, bool) {
	v, ok := p.entries[pos]
	return v, ok
}

func (p *posMap[T]) remove(pos int) {
	delete(p.entries, pos)
}

func (p *posMap[T]) length() int { return len(p.entries) }

func (p *posMap[T]) positions() []int {
	out := make([]int, 0, len(p.entries))
	for k := range p.entries {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}

// insertShift 将位置 ≥ fromIndex 的条目整体后移 delta。
// delta ≤ 0 为空操作；恰好等于 fromIndex 的条目也会移动（边界取 ≥）。
func (p *posMap[T]) insertShift(fromIndex, delta int) {
	if delta <= 0 || len(p.entries) == 0 {
		return
	}
	next := make(map[int]T, len(p.entries))
	for pos, v := range p.entries {
		if pos >= fromIndex {
			next[pos+delta] = v
		} else {
			next[pos] = v
		}
	}
	p.entries = next
}

// deleteShift 删除位置落在 [start, start+length) 的条目并返回它们，
// 位置 ≥ start+length 的条目前移 length。keepStart 为真时恰好位于 start
// 的条目保留不删（段落表语义：删除后该位置仍是合法段落起点）。
func (p *posMap[T]) deleteShift(start, length int, keepStart bool) map[int]T {
	removed := map[int]T{}
	if length <= 0 || len(p.entries) == 0 {
		return removed
	}
	next := make(map[int]T, len(p.entries))
	for pos, v := range p.entries {
		switch {
		case pos < start:
			next[pos] = v
		case pos < start+length:
			if keepStart && pos == start {
				next[pos] = v
			} else {
				removed[pos] = v
			}
		default:
			next[pos-length] = v
		}
	}
	p.entries = next
	return removed
}

// CharFormats 是字符样式覆盖表：位置 → 字符样式。
type CharFormats struct {
	m posMap[style.CharacterFormat]
}

func NewCharFormats() *CharFormats { return &CharFormats{m: newPosMap[style.CharacterFormat]()} }

func (c *CharFormats) Set(pos int, f style.CharacterFormat)     { c.m.set(pos, f) }
func (c *CharFormats) At(pos int) (style.CharacterFormat, bool) { return c.m.at(pos) }
func (c *CharFormats) Remove(pos int)                           { c.m.remove(pos) }
func (c *CharFormats) Len() int                                 { return c.m.length() }
func (c *CharFormats) Positions() []int                         { return c.m.positions() }
func (c *CharFormats) InsertShift(fromIndex, delta int)         { c.m.insertShift(fromIndex, delta) }
func (c *CharFormats) DeleteShift(start, length int) map[int]style.CharacterFormat {
	return c.m.deleteShift(start, length, false)
}

// ParaFormats 是段落样式表：段落起点位置 → 段落样式。
// 段落起点指位置 0 或紧随换行符之后的位置。
type ParaFormats struct {
	m posMap[style.ParagraphFormat]
}

func NewParaFormats() *ParaFormats { return &ParaFormats{m: newPosMap[style.ParagraphFormat]()} }

func (p *ParaFormats) Set(pos int, f style.ParagraphFormat)     { p.m.set(pos, f) }
func (p *ParaFormats) At(pos int) (style.ParagraphFormat, bool) { return p.m.at(pos) }
func (p *ParaFormats) Remove(pos int)                           { p.m.remove(pos) }
func (p *ParaFormats) Len() int                                 { return p.m.length() }
func (p *ParaFormats) Positions() []int                         { return p.m.positions() }
func (p *ParaFormats) InsertShift(fromIndex, delta int)         { p.m.insertShift(fromIndex, delta) }

// DeleteShift 与其他表的区别：恰好位于 start 的段落条目保留。
func (p *ParaFormats) DeleteShift(start, length int) map[int]style.ParagraphFormat {
	return p.m.deleteShift(start, length, true)
}

// InsertText 在 fromIndex 处插入 text 后的段落表维护：先整体平移，再让插入
// 产生的每个新段落起点继承被拆分段落的显式样式。paragraphStart 是插入点所在
// 段落（插入前坐标）的起点；该段落只用默认样式时不做继承。
func (p *ParaFormats) InsertText(fromIndex int, text string, paragraphStart int) {
	runes := []rune(text)
	p.m.insertShift(fromIndex, len(runes))

	lookup := paragraphStart
	if paragraphStart >= fromIndex {
		// 插入点位于段落起点之前（含起点本身）时，条目已被平移。
		lookup = paragraphStart + len(runes)
	}
	inherited, ok := p.m.at(lookup)
	if !ok {
		return
	}
	for i, r := range runes {
		if r == '\n' {
			p.m.set(fromIndex+i+1, inherited)
		}
	}
}

// Fields 是替换字段表：占位符位置 → 字段。
type Fields struct {
	m posMap[field.Field]
}

func NewFields() *Fields { return &Fields{m: newPosMap[field.Field]()} }

func (f *Fields) Set(pos int, fd field.Field)      { f.m.set(pos, fd) }
func (f *Fields) At(pos int) (field.Field, bool)   { return f.m.at(pos) }
func (f *Fields) Remove(pos int)                   { f.m.remove(pos) }
func (f *Fields) Len() int                         { return f.m.length() }
func (f *Fields) Positions() []int                 { return f.m.positions() }
func (f *Fields) InsertShift(fromIndex, delta int) { f.m.insertShift(fromIndex, delta) }
func (f *Fields) DeleteShift(start, length int) map[int]field.Field {
	return f.m.deleteShift(start, length, false)
}

// Objects 是嵌入对象表：占位符位置 → 对象。
type Objects struct {
	m posMap[object.Object]
}

func NewObjects() *Objects { return &Objects{m: newPosMap[object.Object]()} }

func (o *Objects) Set(pos int, obj object.Object)   { o.m.set(pos, obj) }
func (o *Objects) At(pos int) (object.Object, bool) { return o.m.at(pos) }
func (o *Objects) Remove(pos int)                   { o.m.remove(pos) }
func (o *Objects) Len() int                         { return o.m.length() }
func (o *Objects) Positions() []int                 { return o.m.positions() }
func (o *Objects) InsertShift(fromIndex, delta int) { o.m.insertShift(fromIndex, delta) }
func (o *Objects) DeleteShift(start, length int) map[int]object.Object {
	return o.m.deleteShift(start, length, false)
}

// Maps 聚合一次排版所需的四张表。
type Maps struct {
	Chars   *CharFormats
	Paras   *ParaFormats
	Fields  *Fields
	Objects *Objects
}

// NewMaps 创建四张空表。
func NewMaps() *Maps {
	return &Maps{
		Chars:   NewCharFormats(),
		Paras:   NewParaFormats(),
		Fields:  NewFields(),
		Objects: NewObjects(),
	}
}

// InsertShift 在一次插入后统一平移四张表；delta 为插入的字符数。
func (m *Maps) InsertShift(fromIndex, delta int) {
	m.Chars.InsertShift(fromIndex, delta)
	m.Paras.InsertShift(fromIndex, delta)
	m.Fields.InsertShift(fromIndex, delta)
	m.Objects.InsertShift(fromIndex, delta)
}

// InsertText 等同于 InsertShift(fromIndex, len(text))，但会执行段落表的
// 拆分继承。paragraphStart 是插入点所在段落的起点（插入前坐标）。
func (m *Maps) InsertText(fromIndex int, text string, paragraphStart int) {
	delta := len([]rune(text))
	m.Chars.InsertShift(fromIndex, delta)
	m.Paras.InsertText(fromIndex, text, paragraphStart)
	m.Fields.InsertShift(fromIndex, delta)
	m.Objects.InsertShift(fromIndex, delta)
}

// DeleteShift 在一次删除后统一平移四张表。
func (m *Maps) DeleteShift(start, length int) {
	m.Chars.DeleteShift(start, length)
	m.Paras.DeleteShift(start, length)
	m.Fields.DeleteShift(start, length)
	m.Objects.DeleteShift(start, length)
}
