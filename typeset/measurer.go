// Package typeset provides measurers backed by real font metrics via
// github.com/tdewolff/canvas. The layout engine only sees the flow.Measurer
// interface, so hosts may swap in their own text measurement instead.
package typeset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/tdewolff/canvas"

	"github.com/ByLCY/scribe/field"
	"github.com/ByLCY/scribe/flow"
	"github.com/ByLCY/scribe/style"
)

const (
	defaultFontSize = 12.0
	// 无字体时的估算系数
	approxAdvance = 0.55
	approxLeading = 1.2
)

// CanvasMeasurer measures text with canvas font faces. Font data is injected
// by family name, either as raw bytes or as a file path; relative paths are
// resolved against BaseDir. Formats naming an unknown family fall back to a
// rune-count estimate so layout still proceeds.
type CanvasMeasurer struct {
	baseDir   string
	fontBlobs map[string][]byte

	mu       sync.Mutex
	families map[string]*familyEntry
}

type familyEntry struct {
	family *canvas.FontFamily
	style  canvas.FontStyle
}

// Options configures a CanvasMeasurer.
type Options struct {
	BaseDir string
	Fonts   map[string]Resource // keyed by font family name
}

// Resource can be provided either by Bytes or by Path.
type Resource struct {
	Bytes []byte
	Path  string
}

var _ flow.Measurer = (*CanvasMeasurer)(nil)

// NewCanvasMeasurer creates a measurer with the given font resources.
func NewCanvasMeasurer(opts Options) *CanvasMeasurer {
	m := &CanvasMeasurer{
		baseDir:   opts.BaseDir,
		fontBlobs: map[string][]byte{},
		families:  map[string]*familyEntry{},
	}
	for name, res := range opts.Fonts {
		if name == "" {
			continue
		}
		if len(res.Bytes) > 0 {
			m.fontBlobs[name] = res.Bytes
			continue
		}
		if res.Path != "" {
			data, _ := os.ReadFile(res.Path) // ignore error here; will be caught when actually used
			if len(data) > 0 {
				m.fontBlobs[name] = data
			}
		}
	}
	return m
}

// Measure returns the advance width and line height of text in points.
func (m *CanvasMeasurer) Measure(text string, f style.CharacterFormat) flow.Size {
	size := fontSize(f)
	face, err := m.fontFace(f, size)
	if err != nil {
		return approximate(text, size)
	}
	metrics := face.Metrics()
	return flow.Size{Width: face.TextWidth(text), Height: metrics.LineHeight}
}

// LineHeight returns the line height of the format in points.
func (m *CanvasMeasurer) LineHeight(f style.CharacterFormat) float64 {
	size := fontSize(f)
	face, err := m.fontFace(f, size)
	if err != nil {
		return size * approxLeading
	}
	return face.Metrics().LineHeight
}

// MeasureField measures a field by its display text. Page numbers are not
// known at measuring time, so page-dependent fields are measured at zero.
func (m *CanvasMeasurer) MeasureField(fd field.Field, f style.CharacterFormat) flow.Size {
	return m.Measure(fd.DisplayText(0, 0), f)
}

func (m *CanvasMeasurer) fontFace(f style.CharacterFormat, size float64) (*canvas.FontFace, error) {
	entry, err := m.ensureFamily(f)
	if err != nil {
		return nil, err
	}
	return entry.family.Face(size, canvas.Black, entry.style, canvas.FontNormal), nil
}

func (m *CanvasMeasurer) ensureFamily(f style.CharacterFormat) (*familyEntry, error) {
	key := fmt.Sprintf("%s|%s|%s", f.FontFamily, f.Weight, f.Style)
	m.mu.Lock()
	defer m.mu.Unlock()

	if entry, ok := m.families[key]; ok {
		if entry == nil {
			return nil, fmt.Errorf("字体 %s 不可用", f.FontFamily)
		}
		return entry, nil
	}

	fs := parseFontStyle(f.Weight, f.Style)
	data, err := m.fontBytes(f.FontFamily)
	if err != nil {
		m.families[key] = nil // 负缓存，避免反复读盘
		return nil, err
	}
	family := canvas.NewFontFamily(f.FontFamily)
	if err := family.LoadFont(data, 0, fs); err != nil {
		m.families[key] = nil
		return nil, fmt.Errorf("加载字体 %s 失败: %w", f.FontFamily, err)
	}
	entry := &familyEntry{family: family, style: fs}
	m.families[key] = entry
	return entry, nil
}

func (m *CanvasMeasurer) fontBytes(family string) ([]byte, error) {
	if blob, ok := m.fontBlobs[family]; ok {
		return blob, nil
	}
	if m.baseDir == "" {
		return nil, fmt.Errorf("找不到字体资源 %s", family)
	}
	for _, ext := range []string{".ttf", ".otf"} {
		data, err := os.ReadFile(filepath.Join(m.baseDir, family+ext))
		if err == nil {
			return data, nil
		}
	}
	return nil, fmt.Errorf("在 %s 下找不到字体 %s", m.baseDir, family)
}

func parseFontStyle(weight, slant string) canvas.FontStyle {
	w := strings.ToLower(weight)
	result := canvas.FontRegular
	switch {
	case strings.Contains(w, "black"):
		result = canvas.FontBlack
	case strings.Contains(w, "extrabold"):
		result = canvas.FontExtraBold
	case strings.Contains(w, "bold"):
		result = canvas.FontBold
	case strings.Contains(w, "semibold"), strings.Contains(w, "demibold"):
		result = canvas.FontSemiBold
	case strings.Contains(w, "medium"):
		result = canvas.FontMedium
	case strings.Contains(w, "light"):
		result = canvas.FontLight
	}
	s := strings.ToLower(slant)
	if strings.Contains(s, "italic") || strings.Contains(s, "oblique") {
		result |= canvas.FontItalic
	}
	return result
}

func fontSize(f style.CharacterFormat) float64 {
	if f.FontSize > 0 {
		return f.FontSize
	}
	return defaultFontSize
}

// approximate estimates text size from rune count when no font is available.
func approximate(text string, size float64) flow.Size {
	n := utf8.RuneCountInString(text)
	return flow.Size{
		Width:  size * approxAdvance * float64(n),
		Height: size * approxLeading,
	}
}
