package typeset

import (
	"unicode/utf8"

	"github.com/ByLCY/scribe/field"
	"github.com/ByLCY/scribe/flow"
	"github.com/ByLCY/scribe/style"
)

// Fixed is a measurer with uniform glyph advances. It needs no font data,
// which makes it suitable for previews and deterministic tests.
type Fixed struct {
	Advance float64 // width per rune as a fraction of font size; 0 means 0.55
	Leading float64 // line height as a fraction of font size; 0 means 1.2
}

var _ flow.Measurer = Fixed{}

func (fx Fixed) advance() float64 {
	if fx.Advance > 0 {
		return fx.Advance
	}
	return approxAdvance
}

func (fx Fixed) leading() float64 {
	if fx.Leading > 0 {
		return fx.Leading
	}
	return approxLeading
}

func (fx Fixed) Measure(text string, f style.CharacterFormat) flow.Size {
	size := fontSize(f)
	return flow.Size{
		Width:  size * fx.advance() * float64(utf8.RuneCountInString(text)),
		Height: size * fx.leading(),
	}
}

func (fx Fixed) LineHeight(f style.CharacterFormat) float64 {
	return fontSize(f) * fx.leading()
}

func (fx Fixed) MeasureField(fd field.Field, f style.CharacterFormat) flow.Size {
	return fx.Measure(fd.DisplayText(0, 0), f)
}
