// Package cursor provides a position-tracking view over an immutable string,
// with lookahead, consumption, and focusing operations for building lexers.
package cursor

import (
	"fmt"
	"iter"
	"strings"
	"unicode/utf8"
)

// Cursor walks a string from left to right. It keeps a reference to the
// complete original input and a byte offset marking the start of the
// unconsumed remainder; the input itself is never modified, so independent
// cursors over the same string are safe to use concurrently.
type Cursor struct {
	input string
	off   int
}

// New returns a cursor over input positioned at the start.
func New(input string) *Cursor {
	return &Cursor{input: input}
}

// At returns a cursor over input positioned at byte offset off. The offset
// must lie within input and fall on a rune boundary; violating either is a
// caller bug and panics.
func At(input string, off int) *Cursor {
	if off < 0 || off > len(input) {
		panic(fmt.Sprintf("cursor: offset %d out of range [0, %d]", off, len(input)))
	}
	if off < len(input) && !utf8.RuneStart(input[off]) {
		panic(fmt.Sprintf("cursor: offset %d is not on a rune boundary", off))
	}
	return &Cursor{input: input, off: off}
}

// Input returns the complete original input.
func (c *Cursor) Input() string {
	return c.input
}

// Rest returns the unconsumed remainder of the input.
func (c *Cursor) Rest() string {
	return c.input[c.off:]
}

// Runes returns a sequence over the runes of the remainder as it was when
// Runes was called. Iterating it does not advance the cursor.
func (c *Cursor) Runes() iter.Seq[rune] {
	rest := c.Rest()
	return func(yield func(rune) bool) {
		for _, r := range rest {
			if !yield(r) {
				return
			}
		}
	}
}

// Empty reports whether any characters remain.
func (c *Cursor) Empty() bool {
	return c.off == len(c.input)
}

// Pos returns the byte offset of the remainder within the input. It never
// decreases.
func (c *Cursor) Pos() int {
	return c.off
}

// Clone returns an independent copy of the cursor.
func (c *Cursor) Clone() *Cursor {
	d := *c
	return &d
}

// Previous returns the character immediately before the remainder, or '\n'
// when the cursor is at the start of the input.
func (c *Cursor) Previous() rune {
	r, size := utf8.DecodeLastRuneInString(c.input[:c.off])
	if size == 0 {
		return '\n'
	}
	return r
}

// First returns the next character without consuming it.
func (c *Cursor) First() (rune, bool) {
	if c.Empty() {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(c.Rest())
	return r, true
}

// Second returns the character after the next one without consuming either.
func (c *Cursor) Second() (rune, bool) {
	if c.Empty() {
		return 0, false
	}
	_, size := utf8.DecodeRuneInString(c.Rest())
	if c.off+size >= len(c.input) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(c.input[c.off+size:])
	return r, true
}

// Consume removes and returns the next character. Every other consuming
// operation is built on it.
func (c *Cursor) Consume() (rune, bool) {
	if c.Empty() {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(c.Rest())
	c.off += size
	return r, true
}

// ConsumeWhile consumes the maximal prefix of characters satisfying pred.
// The first character for which pred is false stays in the remainder.
func (c *Cursor) ConsumeWhile(pred func(rune) bool) *Cursor {
	for {
		r, ok := c.First()
		if !ok || !pred(r) {
			break
		}
		c.Consume()
	}
	return c
}

// ConsumeUntil consumes characters unconditionally, stopping after the first
// one satisfying pred, or at the end of the input.
func (c *Cursor) ConsumeUntil(pred func(rune) bool) *Cursor {
	for {
		r, ok := c.Consume()
		if !ok || pred(r) {
			break
		}
	}
	return c
}

// ConsumeLine consumes through and including the next '\n', or the whole
// remainder if there is none.
func (c *Cursor) ConsumeLine() *Cursor {
	return c.ConsumeUntil(func(r rune) bool { return r == '\n' })
}

// firstLine returns the text of the remainder's first line without its line
// terminator. ok is false when nothing remains.
func firstLine(s string) (line string, ok bool) {
	if s == "" {
		return "", false
	}
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSuffix(s[:i], "\r"), true
	}
	return s, true
}

// ConsumeLinesWhile consumes whole lines as long as pred holds for each
// line's text, stopping before the first failing line.
func (c *Cursor) ConsumeLinesWhile(pred func(string) bool) *Cursor {
	for {
		line, ok := firstLine(c.Rest())
		if !ok || !pred(line) {
			break
		}
		c.ConsumeLine()
	}
	return c
}

// ConsumeLinesUntil consumes lines unconditionally, stopping after the first
// line whose text satisfies pred.
func (c *Cursor) ConsumeLinesUntil(pred func(string) bool) *Cursor {
	for {
		line, ok := firstLine(c.Rest())
		if !ok {
			break
		}
		c.ConsumeLine()
		if pred(line) {
			break
		}
	}
	return c
}

// FocusWith runs fn on the cursor and returns a new cursor whose input is
// exactly the substring fn consumed. The new cursor starts at position 0 and
// shares the original backing memory; the receiver keeps the position fn
// advanced it to.
func (c *Cursor) FocusWith(fn func(*Cursor)) *Cursor {
	start := c.off
	fn(c)
	return New(c.input[start:c.off])
}

// FocusChar focuses the next character.
func (c *Cursor) FocusChar() *Cursor {
	return c.FocusWith(func(c *Cursor) { c.Consume() })
}

// FocusLine focuses the next line, including its terminator.
func (c *Cursor) FocusLine() *Cursor {
	return c.FocusWith(func(c *Cursor) { c.ConsumeLine() })
}

// FocusWhile focuses what ConsumeWhile(pred) would consume.
func (c *Cursor) FocusWhile(pred func(rune) bool) *Cursor {
	return c.FocusWith(func(c *Cursor) { c.ConsumeWhile(pred) })
}

// FocusUntil focuses what ConsumeUntil(pred) would consume.
func (c *Cursor) FocusUntil(pred func(rune) bool) *Cursor {
	return c.FocusWith(func(c *Cursor) { c.ConsumeUntil(pred) })
}

// FocusLinesWhile focuses what ConsumeLinesWhile(pred) would consume.
func (c *Cursor) FocusLinesWhile(pred func(string) bool) *Cursor {
	return c.FocusWith(func(c *Cursor) { c.ConsumeLinesWhile(pred) })
}

// FocusLinesUntil focuses what ConsumeLinesUntil(pred) would consume.
func (c *Cursor) FocusLinesUntil(pred func(string) bool) *Cursor {
	return c.FocusWith(func(c *Cursor) { c.ConsumeLinesUntil(pred) })
}
