package field

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Display-format patterns are a tiny language mixing literal text with
// substitution tokens and digit masks:
//
//	"Page {page} of {pages}"  →  "Page 3 of 12"
//	"INV-0000"                →  "INV-0042"   (zero-padded mask)
//	"{value} kg"              →  "17 kg"
//
// A run of '0' pads the numeric value with leading zeroes to the mask width;
// a run of '#' emits the value without padding. Non-numeric values pass
// through masks unchanged.

var (
	patternLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Page", Pattern: `\{page\}`},
		{Name: "Pages", Pattern: `\{pages\}`},
		{Name: "Value", Pattern: `\{value\}`},
		{Name: "Zeros", Pattern: `0+`},
		{Name: "Hashes", Pattern: `#+`},
		{Name: "Text", Pattern: `[^0#{]+|\{`},
	})

	patternParser = participle.MustBuild[Pattern](
		participle.Lexer(patternLexer),
	)
)

// Pattern is a parsed display format.
type Pattern struct {
	Parts []*patternPart `parser:"@@*"`
}

type patternPart struct {
	Page   bool   `parser:"  @Page"`
	Pages  bool   `parser:"| @Pages"`
	Value  bool   `parser:"| @Value"`
	Zeros  string `parser:"| @Zeros"`
	Hashes string `parser:"| @Hashes"`
	Text   string `parser:"| @Text"`
}

// ParsePattern parses a display-format string.
func ParsePattern(input string) (*Pattern, error) {
	return patternParser.ParseString("", input)
}

// Render substitutes value/page/pages into the pattern.
func (p *Pattern) Render(value string, page, pages int) string {
	var out strings.Builder
	for _, part := range p.Parts {
		switch {
		case part.Page:
			out.WriteString(strconv.Itoa(page))
		case part.Pages:
			out.WriteString(strconv.Itoa(pages))
		case part.Value:
			out.WriteString(value)
		case part.Zeros != "":
			out.WriteString(padNumeric(value, len(part.Zeros)))
		case part.Hashes != "":
			out.WriteString(value)
		default:
			out.WriteString(part.Text)
		}
	}
	return out.String()
}

// padNumeric zero-pads integral values to width; non-numeric values pass
// through unchanged.
func padNumeric(value string, width int) string {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return value
	}
	neg := ""
	if n < 0 {
		neg = "-"
		n = -n
	}
	digits := strconv.Itoa(n)
	if pad := width - len(digits); pad > 0 {
		digits = strings.Repeat("0", pad) + digits
	}
	return neg + digits
}
