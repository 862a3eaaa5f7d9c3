// Package unescape turns the raw content of a quoted literal, with the
// surrounding quotes already stripped, into the sequence of characters it
// denotes, reporting a byte range and a character or error for each unit.
package unescape

import (
	"unicode/utf8"

	"github.com/dhamidi/textscan/cursor"
)

// Mode selects which quote character must be escaped inside the literal:
// Single governs character literals ('), Double governs string literals (").
type Mode int

const (
	Single Mode = iota
	Double
)

// Quote returns the delimiter governed by the mode.
func (m Mode) Quote() rune {
	if m == Single {
		return '\''
	}
	return '"'
}

func (m Mode) String() string {
	if m == Single {
		return "single"
	}
	return "double"
}

// EscapeError identifies one way a decode unit can fail. One unit's error
// never stops the scan; each unit is reported independently.
type EscapeError int

const (
	// LoneSlash: backslash at the end of the input.
	LoneSlash EscapeError = iota
	// InvalidEscape: unrecognized character after a backslash.
	InvalidEscape
	// BareCarriageReturn: raw '\r' in the content.
	BareCarriageReturn
	// EscapeOnlyChar: unescaped delimiter matching the current mode.
	EscapeOnlyChar
	// TooShortHexEscape: '\x' followed by fewer than two characters.
	TooShortHexEscape
	// InvalidCharInHexEscape: non-hex digit in '\xHH'.
	InvalidCharInHexEscape
	// NoBraceInUnicodeEscape: '\u' not followed by '{'.
	NoBraceInUnicodeEscape
	// InvalidCharInUnicodeEscape: non-hex character inside '\u{..}'.
	InvalidCharInUnicodeEscape
	// EmptyUnicodeEscape: '\u{}'.
	EmptyUnicodeEscape
	// UnclosedUnicodeEscape: input ends before the closing brace.
	UnclosedUnicodeEscape
	// LeadingUnderscoreUnicodeEscape: '\u{_..}'.
	LeadingUnderscoreUnicodeEscape
	// OverlongUnicodeEscape: more than six significant hex digits.
	OverlongUnicodeEscape
	// LoneSurrogateUnicodeEscape: value in the surrogate range.
	LoneSurrogateUnicodeEscape
	// OutOfRangeUnicodeEscape: value above 0x10FFFF.
	OutOfRangeUnicodeEscape
)

var escapeErrorText = map[EscapeError]string{
	LoneSlash:                      "backslash without a following character",
	InvalidEscape:                  "unknown character escape",
	BareCarriageReturn:             "bare carriage return",
	EscapeOnlyChar:                 "character must be escaped",
	TooShortHexEscape:              "hexadecimal escape is too short",
	InvalidCharInHexEscape:         "invalid character in hexadecimal escape",
	NoBraceInUnicodeEscape:         "missing '{' in unicode escape",
	InvalidCharInUnicodeEscape:     "invalid character in unicode escape",
	EmptyUnicodeEscape:             "empty unicode escape",
	UnclosedUnicodeEscape:          "unterminated unicode escape",
	LeadingUnderscoreUnicodeEscape: "unicode escape starts with an underscore",
	OverlongUnicodeEscape:          "unicode escape has more than six digits",
	LoneSurrogateUnicodeEscape:     "unicode escape is a lone surrogate",
	OutOfRangeUnicodeEscape:        "unicode escape is out of range",
}

func (e EscapeError) Error() string {
	if s, ok := escapeErrorText[e]; ok {
		return s
	}
	return "invalid escape"
}

// Range is a half-open byte range within the literal content.
type Range struct {
	Start int
	End   int
}

// Text decodes literal content and calls callback once per unit, in order,
// with ranges exactly tiling the content from the cursor's starting
// position. Errors never stop the scan; the caller decides how to react to
// each unit. On error the rune argument is zero.
func Text(c *cursor.Cursor, mode Mode, callback func(Range, rune, error)) {
	initial := len(c.Rest())
	for {
		first, ok := c.Consume()
		if !ok {
			break
		}
		start := initial - len(c.Rest()) - utf8.RuneLen(first)

		var decoded rune
		var err error
		switch {
		case first == '\\':
			decoded, err = scanEscape(c)
		case first == '\n' || first == '\t':
			decoded = first
		case first == mode.Quote():
			err = EscapeOnlyChar
		case first == '\r':
			err = BareCarriageReturn
		default:
			decoded = first
		}

		end := initial - len(c.Rest())
		callback(Range{Start: start, End: end}, decoded, err)
	}
}

// scanEscape decodes one escape sequence. The backslash has already been
// consumed.
func scanEscape(c *cursor.Cursor) (rune, error) {
	second, ok := c.Consume()
	if !ok {
		return 0, LoneSlash
	}

	switch second {
	case '"':
		return '"', nil
	case 'n':
		return '\n', nil
	case 'r':
		return '\r', nil
	case 't':
		return '\t', nil
	case '\\':
		return '\\', nil
	case '\'':
		return '\'', nil
	case '0':
		return 0, nil
	case 'x':
		return scanHexEscape(c)
	case 'u':
		return scanUnicodeEscape(c)
	}
	return 0, InvalidEscape
}

func scanHexEscape(c *cursor.Cursor) (rune, error) {
	hiChar, ok := c.Consume()
	if !ok {
		return 0, TooShortHexEscape
	}
	hi, ok := hexDigit(hiChar)
	if !ok {
		return 0, InvalidCharInHexEscape
	}

	loChar, ok := c.Consume()
	if !ok {
		return 0, TooShortHexEscape
	}
	lo, ok := hexDigit(loChar)
	if !ok {
		return 0, InvalidCharInHexEscape
	}

	// The whole byte range is accepted, not just ASCII.
	return rune(hi*16 + lo), nil
}

func scanUnicodeEscape(c *cursor.Cursor) (rune, error) {
	if r, ok := c.Consume(); !ok || r != '{' {
		return 0, NoBraceInUnicodeEscape
	}

	// The first character inside the braces must be a hex digit.
	first, ok := c.Consume()
	if !ok {
		return 0, UnclosedUnicodeEscape
	}
	var value uint32
	switch first {
	case '_':
		return 0, LeadingUnderscoreUnicodeEscape
	case '}':
		return 0, EmptyUnicodeEscape
	default:
		d, ok := hexDigit(first)
		if !ok {
			return 0, InvalidCharInUnicodeEscape
		}
		value = d
	}

	digits := 1
	for {
		ch, ok := c.Consume()
		if !ok {
			return 0, UnclosedUnicodeEscape
		}
		switch ch {
		case '_':
			// Separator, does not count as a digit.
		case '}':
			if digits > 6 {
				return 0, OverlongUnicodeEscape
			}
			switch {
			case value > 0x10FFFF:
				return 0, OutOfRangeUnicodeEscape
			case value >= 0xD800 && value <= 0xDFFF:
				return 0, LoneSurrogateUnicodeEscape
			}
			return rune(value), nil
		default:
			d, ok := hexDigit(ch)
			if !ok {
				return 0, InvalidCharInUnicodeEscape
			}
			digits++
			if digits > 6 {
				// The value is already known bad; keep scanning only to
				// find the terminator.
				continue
			}
			value = value*16 + d
		}
	}
}

func hexDigit(r rune) (uint32, bool) {
	switch {
	case r >= '0' && r <= '9':
		return uint32(r - '0'), true
	case r >= 'a' && r <= 'f':
		return uint32(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return uint32(r-'A') + 10, true
	}
	return 0, false
}
