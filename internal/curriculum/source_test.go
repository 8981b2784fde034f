package curriculum

import (
	"curso_backend/internal/content"
	"curso_backend/internal/util"
	"errors"
	"strings"
	"testing"
)

func TestGetLoadsBothLanguages(t *testing.T) {
	for _, lang := range []string{"es", "pt"} {
		cur, err := Get(lang)
		if err != nil {
			t.Fatalf("Get(%q): %v", lang, err)
		}
		if len(cur.Modules) == 0 {
			t.Fatalf("curriculum %s has no modules", lang)
		}
		if cur.ObjetivoGeneral.ID != "objetivo-general" {
			t.Fatalf("objetivo general id = %q", cur.ObjetivoGeneral.ID)
		}
	}
}

func TestGetDefaultsToSpanish(t *testing.T) {
	cur, err := Get("")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(cur.ObjetivoGeneral.Title, "Objetivo General") {
		t.Fatalf("default language is not es: %q", cur.ObjetivoGeneral.Title)
	}
}

func TestGetRejectsUnknownLanguage(t *testing.T) {
	_, err := Get("fr")
	if !errors.Is(err, util.ErrUnsupportedLanguage) {
		t.Fatalf("err = %v", err)
	}
}

func TestGetIsCached(t *testing.T) {
	a, _ := Get("es")
	b, _ := Get("es")
	if a != b {
		t.Fatal("Get must return the cached instance")
	}
}

func TestTopicIDsMatchAcrossLanguages(t *testing.T) {
	// El progreso del usuario se guarda por id de topic; los ids deben ser
	// idénticos en ambos idiomas.
	es, _ := Get("es")
	pt, _ := Get("pt")
	esTopics := es.Topics()
	ptTopics := pt.Topics()
	if len(esTopics) != len(ptTopics) {
		t.Fatalf("topic count differs: es=%d pt=%d", len(esTopics), len(ptTopics))
	}
	for i := range esTopics {
		if esTopics[i].ID != ptTopics[i].ID {
			t.Fatalf("topic %d: es=%q pt=%q", i, esTopics[i].ID, ptTopics[i].ID)
		}
	}
}

func TestFindQuizByWidgetKey(t *testing.T) {
	cur, _ := Get("es")
	topic, ok := cur.FindTopic("conferencia-1")
	if !ok {
		t.Fatal("conferencia-1 not found")
	}

	var key string
	for i, p := range topic.Content {
		if _, isQuiz := p.(content.QuizPart); isQuiz {
			key = content.WidgetKey(topic.ID, i)
			break
		}
	}
	if key == "" {
		t.Fatal("conferencia-1 has no quiz")
	}

	found, quiz, ok := cur.FindQuiz(key)
	if !ok {
		t.Fatalf("FindQuiz(%q) failed", key)
	}
	if found.ID != "conferencia-1" || len(quiz.Questions) != 4 {
		t.Fatalf("found=%q questions=%d", found.ID, len(quiz.Questions))
	}

	if _, _, ok := cur.FindQuiz("no-existe-9"); ok {
		t.Fatal("unknown quiz key must not resolve")
	}
}

func TestFindAssignmentExplicitAndDerived(t *testing.T) {
	cur, _ := Get("es")

	// Id explícito del autor.
	topic, assignment, ok := cur.FindAssignment("tarea-componentes")
	if !ok {
		t.Fatal("tarea-componentes not found")
	}
	if topic.ID != "conferencia-2" || len(assignment.Description) == 0 {
		t.Fatalf("topic=%q", topic.ID)
	}

	// Id derivado de la posición para la tarea sin id.
	c4, _ := cur.FindTopic("conferencia-4")
	var derived string
	for i, p := range c4.Content {
		if a, isA := p.(content.AssignmentPart); isA && a.AssignmentID == "" {
			derived = content.WidgetKey(c4.ID, i)
		}
	}
	if derived == "" {
		t.Fatal("conferencia-4 has no anonymous assignment")
	}
	if _, _, ok := cur.FindAssignment(derived); !ok {
		t.Fatalf("FindAssignment(%q) failed", derived)
	}
}

func TestPlainTextFlattensTopic(t *testing.T) {
	cur, _ := Get("es")
	topic, _ := cur.FindTopic("conferencia-4")
	text := PlainText(topic)
	if !strings.Contains(text, "Datos Remotos") {
		t.Fatalf("missing heading in %q", text)
	}
	if !strings.Contains(text, "debouncing") {
		t.Fatal("missing paragraph text")
	}
	if strings.Contains(text, "useDebounce") {
		t.Fatal("code blocks must not leak into plain text")
	}
}
