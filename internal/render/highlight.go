package render

import (
	"curso_backend/internal/content"
	"html/template"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
)

// HighlightCode resalta un bloque de código con chroma, tras normalizar los
// alias del contenido (jsx, tsx, bash). Si el resaltado falla, degrada a un
// <pre> escapado.
func HighlightCode(code, language string) template.HTML {
	lang := content.NormalizeLanguage(language)

	var buf strings.Builder
	if err := quick.Highlight(&buf, code, lang, "html", "github"); err != nil {
		return template.HTML("<pre><code>" + template.HTMLEscapeString(code) + "</code></pre>")
	}
	return template.HTML(buf.String())
}
