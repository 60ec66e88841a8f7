package adalex

import (
	"bufio"
	"bytes"
	"io"
	"sort"

	"github.com/amirrezaask/adalex/byteutils"
	"github.com/amirrezaask/adalex/lexers"
)

// Highlight paints buf[Start:End) with Color. Kind is None for gaps filled
// with the foreground color.
type Highlight struct {
	Start int
	End   int
	Kind  lexers.Kind
	Color RGBA
}

func sortme[T any](slice []T, pred func(t1 T, t2 T) bool) {
	sort.Slice(slice, func(i, j int) bool {
		return pred(slice[i], slice[j])
	})
}

// Highlights lexes buf[from:to) with l and colors every token whose category
// has a syntax color in the current theme. The result covers [from, to)
// without gaps.
func Highlights(cfg *Config, l lexers.Lexer, buf []byte, from, to int) ([]Highlight, error) {
	colors := cfg.CurrentThemeColors()
	if !cfg.EnableSyntaxHighlighting {
		return fillInTheBlanks(nil, from, to, colors.Foreground), nil
	}
	if err := l.Start(buf, from, to, 0); err != nil {
		return nil, err
	}
	var hs []Highlight
	for tok := l.Token(); tok.Type != lexers.None; tok = l.Token() {
		if c, exists := colors.SyntaxColors[tok.Type.Category()]; exists {
			hs = append(hs, Highlight{Start: tok.Start, End: tok.End, Kind: tok.Type, Color: c})
		}
		l.Advance()
	}
	return fillInTheBlanks(hs, from, to, colors.Foreground), nil
}

func fillInTheBlanks(hs []Highlight, start, end int, fg RGBA) []Highlight {
	sortme(hs, func(t1, t2 Highlight) bool {
		return t1.Start < t2.Start
	})
	if start == end {
		return hs
	}
	var filled []Highlight
	pos := start
	for _, h := range hs {
		if h.Start > pos {
			filled = append(filled, Highlight{Start: pos, End: h.Start, Color: fg})
		}
		filled = append(filled, h)
		pos = h.End
	}
	if pos < end {
		filled = append(filled, Highlight{Start: pos, End: end, Color: fg})
	}
	return filled
}

// WriteANSI writes the highlighted text to w with 24-bit color escapes.
// Colors are reset before every line break; tabs expand to tabSize spaces.
func WriteANSI(w io.Writer, buf []byte, hs []Highlight, tabSize int) error {
	bw := bufio.NewWriter(w)
	tab := bytes.Repeat([]byte(" "), tabSize)
	for _, h := range hs {
		byteutils.SplitLines(buf, h.Start, h.End, func(start, end int) {
			text := buf[start:end]
			newline := bytes.HasSuffix(text, []byte("\n"))
			text = bytes.TrimSuffix(text, []byte("\n"))
			if len(text) > 0 {
				bw.WriteString(h.Color.ANSI())
				bw.Write(bytes.ReplaceAll(text, []byte("\t"), tab))
				bw.WriteString(ansiReset)
			}
			if newline {
				bw.WriteByte('\n')
			}
		})
	}
	return bw.Flush()
}
