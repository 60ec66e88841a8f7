package adalex

import (
	"path/filepath"
	"strings"

	"github.com/amirrezaask/adalex/lexers"
)

type FileType struct {
	Name                     string
	TabSize                  int
	CommentLineBeginingChars []byte
	NewLexer                 func() lexers.Lexer
}

var FileTypes map[string]FileType

// PlainText is used for files with no known extension.
var PlainText = FileType{
	Name:     "text",
	TabSize:  4,
	NewLexer: func() lexers.Lexer { return lexers.NewWordLexer() },
}

func init() {
	ada := FileType{
		Name:                     "ada",
		TabSize:                  3,
		CommentLineBeginingChars: []byte("--"),
		NewLexer:                 func() lexers.Lexer { return lexers.NewAdaLexer() },
	}
	FileTypes = map[string]FileType{
		".adb": ada,
		".ads": ada,
		".ada": ada,
	}
}

// FileTypeFor picks the file type of filename by its extension.
func FileTypeFor(filename string) FileType {
	if ft, exists := FileTypes[strings.ToLower(filepath.Ext(filename))]; exists {
		return ft
	}
	return PlainText
}
