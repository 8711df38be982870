package field

import (
	"strconv"

	"github.com/ByLCY/scribe/style"
)

// Kind identifies what a substitution field resolves to.
type Kind string

const (
	// Data fields are filled from host-resolved merge data (Default carries
	// the resolved or fallback text).
	Data Kind = "data"
	// PageNumber fields render the number of the page they end up on.
	PageNumber Kind = "pageNumber"
	// PageCount fields render the total page count of the document.
	PageCount Kind = "pageCount"
)

// Field is a substitution field occupying exactly one placeholder position
// in the buffer. Formatting, when set, overrides the character format at the
// placeholder position.
type Field struct {
	ID         string                 `json:"id"`
	Name       string                 `json:"fieldName"`
	Kind       Kind                   `json:"fieldType"`
	Format     string                 `json:"displayFormat,omitempty"`
	Default    string                 `json:"defaultValue,omitempty"`
	Formatting *style.CharacterFormat `json:"formatting,omitempty"`
}

// DisplayText returns the text the field renders as, given the page number
// and page count of its final position. Page-dependent fields rendered before
// pagination receive zeroes and are re-rendered by the host afterwards.
//
// An unparsable Format falls back to the raw value; fields never fail.
func (f Field) DisplayText(page, pages int) string {
	value := f.Default
	switch f.Kind {
	case PageNumber:
		value = strconv.Itoa(page)
	case PageCount:
		value = strconv.Itoa(pages)
	}
	if f.Format == "" {
		return value
	}
	p, err := ParsePattern(f.Format)
	if err != nil {
		return value
	}
	return p.Render(value, page, pages)
}
