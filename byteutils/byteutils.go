package byteutils

import (
	"bytes"
	"sort"
	"unicode/utf8"
)

// LineIndex maps byte offsets of a buffer to line and column numbers.
// Lines end at '\n'. Lines and columns start at 1, columns count runes.
type LineIndex struct {
	bs     []byte
	starts []int
}

func NewLineIndex(bs []byte) *LineIndex {
	starts := []int{0}
	for i := 0; ; {
		idx := bytes.IndexByte(bs[i:], '\n')
		if idx < 0 {
			break
		}
		i += idx + 1
		starts = append(starts, i)
	}
	return &LineIndex{bs: bs, starts: starts}
}

// Position returns the line and column of offset. Offsets past the end of
// the buffer are clamped to it.
func (li *LineIndex) Position(offset int) (line int, column int) {
	if offset > len(li.bs) {
		offset = len(li.bs)
	}
	if offset < 0 {
		offset = 0
	}
	idx := sort.Search(len(li.starts), func(i int) bool { return li.starts[i] > offset }) - 1
	return idx + 1, utf8.RuneCount(li.bs[li.starts[idx]:offset]) + 1
}

// Line returns the content of line without its line terminator.
func (li *LineIndex) Line(line int) []byte {
	if line < 1 || line > len(li.starts) {
		return nil
	}
	end := len(li.bs)
	if line < len(li.starts) {
		end = li.starts[line] - 1
	}
	return bytes.TrimSuffix(li.bs[li.starts[line-1]:end], []byte("\r"))
}

// SplitLines calls fn for every [start, end) piece of [from, to) that does
// not cross a line break. The '\n' itself belongs to the piece before it.
func SplitLines(bs []byte, from, to int, fn func(start, end int)) {
	for from < to {
		idx := bytes.IndexByte(bs[from:to], '\n')
		if idx < 0 {
			fn(from, to)
			return
		}
		fn(from, from+idx+1)
		from += idx + 1
	}
}
