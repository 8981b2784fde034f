package content

import (
	"regexp"
	"strings"
)

var (
	htmlTagRE    = regexp.MustCompile(`<[^>]*>`)
	nonSlugRE    = regexp.MustCompile(`[^a-z0-9 -]`)
	whitespaceRE = regexp.MustCompile(`\s+`)
	dashRunRE    = regexp.MustCompile(`-+`)
)

// Slugify deriva un ancla estable a partir del texto de un subtítulo:
// minúsculas, sin etiquetas HTML, sin signos, espacios como guiones.
// Es pura e idempotente: la misma entrada produce siempre el mismo slug.
func Slugify(text string) string {
	s := htmlTagRE.ReplaceAllString(text, "")
	s = strings.ToLower(s)
	s = nonSlugRE.ReplaceAllString(s, "")
	s = whitespaceRE.ReplaceAllString(strings.TrimSpace(s), "-")
	s = dashRunRE.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
