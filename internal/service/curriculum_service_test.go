package service

import (
	"errors"
	"testing"

	"curso_backend/internal/curriculum"
	"curso_backend/internal/util"
)

func TestTableOfContents(t *testing.T) {
	svc := NewCurriculumService()

	toc, err := svc.TableOfContents("es")
	if err != nil {
		t.Fatalf("TableOfContents: %v", err)
	}
	if len(toc) < 2 {
		t.Fatalf("el índice tiene %d entradas, se esperaban al menos 2", len(toc))
	}
	if toc[0].ID != "general" {
		t.Fatalf("la primera entrada es %q, se esperaba el objetivo general", toc[0].ID)
	}
	for _, m := range toc[1:] {
		if len(m.Topics) < 2 {
			t.Fatalf("el módulo %s no lista overview más conferencias: %+v", m.ID, m.Topics)
		}
	}

	if _, err := svc.TableOfContents("fr"); !errors.Is(err, util.ErrUnsupportedLanguage) {
		t.Fatalf("idioma no soportado devolvió %v", err)
	}
}

func TestCourseIDForTopic(t *testing.T) {
	svc := NewCurriculumService()
	cur, err := curriculum.Get("es")
	if err != nil {
		t.Fatalf("cargando temario: %v", err)
	}

	if got := svc.CourseIDForTopic(cur, cur.ObjetivoGeneral.ID); got != "general" {
		t.Fatalf("el objetivo general pertenece a %q, se esperaba general", got)
	}
	for i := range cur.Modules {
		m := &cur.Modules[i]
		if got := svc.CourseIDForTopic(cur, m.Overview.ID); got != m.ID {
			t.Fatalf("el overview de %s pertenece a %q", m.ID, got)
		}
		for j := range m.Conferences {
			if got := svc.CourseIDForTopic(cur, m.Conferences[j].ID); got != m.ID {
				t.Fatalf("la conferencia %s pertenece a %q, se esperaba %s", m.Conferences[j].ID, got, m.ID)
			}
		}
	}
	if got := svc.CourseIDForTopic(cur, "no-existe"); got != "general" {
		t.Fatalf("un topic desconocido cae en %q, se esperaba general", got)
	}
}

func TestGetTopicErrors(t *testing.T) {
	svc := NewCurriculumService()

	if _, err := svc.GetTopic("es", "no-existe"); !errors.Is(err, util.ErrTopicNotFound) {
		t.Fatalf("topic inexistente devolvió %v", err)
	}
	if _, err := svc.GetTopic("de", "objetivo-general"); !errors.Is(err, util.ErrUnsupportedLanguage) {
		t.Fatalf("idioma inválido devolvió %v", err)
	}
}
