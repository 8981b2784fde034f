package content

import "strings"

// Segment es un tramo de texto de un ítem de lista, en negrita o no.
type Segment struct {
	Text string
	Bold bool
}

// SplitBold trocea el texto por el delimitador literal `**`, alternando
// tramos normales y en negrita. Con un número impar de delimitadores el
// último tramo queda sin pareja y se trata como texto normal.
func SplitBold(text string) []Segment {
	parts := strings.Split(text, "**")
	segments := make([]Segment, 0, len(parts))
	unmatched := len(parts)%2 == 0
	for i, part := range parts {
		if part == "" {
			continue
		}
		bold := i%2 == 1
		if bold && unmatched && i == len(parts)-1 {
			bold = false
		}
		segments = append(segments, Segment{Text: part, Bold: bold})
	}
	return segments
}
