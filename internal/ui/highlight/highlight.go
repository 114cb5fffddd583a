package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
)

// Style is the chroma style used for every highlighted block
const Style = "nord"

// JSON returns src colored with 256-color ANSI sequences. On any lexer or
// formatter failure the source is returned unchanged.
func JSON(src string) string {
	return code(src, "json")
}

func code(src, lexer string) string {
	var b strings.Builder
	if err := quick.Highlight(&b, src, lexer, "terminal256", Style); err != nil {
		return src
	}
	return b.String()
}
