package content

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"<b>Hello, World!</b>", "hello-world"},
		{"Configuración del Entorno", "configuracin-del-entorno"},
		{"  Varios   espacios  ", "varios-espacios"},
		{"ya-con-guiones", "ya-con-guiones"},
		{"Guiones -- dobles", "guiones-dobles"},
		{"<h2>Props & State</h2>", "props-state"},
		{"", ""},
	}
	for _, c := range cases {
		if got := Slugify(c.in); got != c.want {
			t.Errorf("Slugify(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	in := "<b>Hello, World!</b>"
	first := Slugify(in)
	if second := Slugify(first); second != first {
		t.Fatalf("slug no es idempotente: %q -> %q", first, second)
	}
}

func TestSubtitleAnchorIDPrefersExplicit(t *testing.T) {
	p := SubtitlePart{Text: "Algo Largo", ID: "custom-id"}
	if got := p.AnchorID(); got != "custom-id" {
		t.Fatalf("AnchorID() = %q, want custom-id", got)
	}
	p.ID = ""
	if got := p.AnchorID(); got != "algo-largo" {
		t.Fatalf("AnchorID() = %q, want algo-largo", got)
	}
}
