package render

import (
	"curso_backend/internal/content"
	"strings"
	"testing"
)

type unknownPart struct{}

func (unknownPart) PartType() content.PartType { return "hologram" }

var testTopic = &content.Topic{ID: "topic-x", Title: "Tema X"}

func TestPartUnknownTypeRendersNothing(t *testing.T) {
	if got := Part(testTopic, 0, unknownPart{}); got != "" {
		t.Fatalf("unknown part rendered %q", got)
	}
}

func TestPartEscapesUserText(t *testing.T) {
	html := string(Part(testTopic, 0, content.ParagraphPart{Text: `<script>alert(1)</script>`}))
	if strings.Contains(html, "<script>") {
		t.Fatal("paragraph text must be escaped")
	}
}

func TestQuizWidgetKeyIsStable(t *testing.T) {
	quiz := content.QuizPart{Questions: []content.QuizQuestion{{Question: "q", Options: []string{"a", "b"}}}}

	first := string(Part(testTopic, 3, quiz))
	second := string(Part(testTopic, 3, quiz))
	if first != second {
		t.Fatal("same topic and index must render identically")
	}
	if !strings.Contains(first, `data-quiz-id="topic-x-3"`) {
		t.Fatalf("missing widget key: %s", first)
	}

	other := &content.Topic{ID: "topic-y"}
	if strings.Contains(string(Part(other, 3, quiz)), "topic-x-3") {
		t.Fatal("widget key leaked across topics")
	}
}

func TestQuizWithoutQuestionsRendersNothing(t *testing.T) {
	if got := Part(testTopic, 0, content.QuizPart{}); got != "" {
		t.Fatalf("empty quiz rendered %q", got)
	}
}

func TestAssignmentExplicitIDWins(t *testing.T) {
	a := content.AssignmentPart{AssignmentID: "tarea-7", Description: []string{"Haz algo."}}
	html := string(Part(testTopic, 5, a))
	if !strings.Contains(html, `data-assignment-id="tarea-7"`) {
		t.Fatalf("explicit id missing: %s", html)
	}

	a.AssignmentID = ""
	html = string(Part(testTopic, 5, a))
	if !strings.Contains(html, `data-assignment-id="topic-x-5"`) {
		t.Fatalf("derived key missing: %s", html)
	}
}

func TestAssignmentDescriptionAlwaysVisible(t *testing.T) {
	a := content.AssignmentPart{Description: []string{"Primera línea", "Segunda línea"}, Code: "const x = 1;"}
	html := string(Part(testTopic, 0, a))
	if !strings.Contains(html, "Primera línea") || !strings.Contains(html, "Segunda línea") {
		t.Fatalf("description missing: %s", html)
	}
}

func TestFileStructureDefaultSelection(t *testing.T) {
	fs := content.FileStructurePart{Files: []content.FileItem{
		{ID: "a", Name: "App.js", Description: []string{"entrada"}},
		{ID: "b", Name: "app.json", Description: []string{"config"}},
	}}
	html := string(Part(testTopic, 0, fs))
	if !strings.Contains(html, `class="selected" data-file-id="a"`) {
		t.Fatalf("first file not selected: %s", html)
	}
	if !strings.Contains(html, `data-file-id="b" hidden`) {
		t.Fatalf("second description not hidden: %s", html)
	}
}

func TestFileStructureEmptyRendersNothing(t *testing.T) {
	if got := Part(testTopic, 0, content.FileStructurePart{}); got != "" {
		t.Fatalf("empty file structure rendered %q", got)
	}
}

func TestComponentGridAnchors(t *testing.T) {
	grid := content.ComponentGridPart{Items: []content.GridItem{
		{ID: "seccion-view", Title: "View", Icon: "layout"},
		{ID: "seccion-text", Title: "Text", Icon: "no-existe"},
	}}
	html := string(Part(testTopic, 0, grid))
	if !strings.Contains(html, `href="#seccion-view"`) {
		t.Fatalf("anchor missing: %s", html)
	}
	// Icono desconocido: la tesela se pinta sin glifo, sin error.
	if !strings.Contains(html, "Text") {
		t.Fatalf("tile with unknown icon missing: %s", html)
	}
}

func TestListBoldSegments(t *testing.T) {
	list := content.ListPart{Items: []content.ListItem{{Text: "a **b** c **d**"}}}
	html := string(Part(testTopic, 0, list))
	if !strings.Contains(html, "<strong>b</strong>") || !strings.Contains(html, "<strong>d</strong>") {
		t.Fatalf("bold segments missing: %s", html)
	}
	if strings.Contains(html, "**") {
		t.Fatalf("delimiters leaked: %s", html)
	}
}

func TestSubtitleAnchor(t *testing.T) {
	html := string(Part(testTopic, 0, content.SubtitlePart{Text: "<b>Hello, World!</b>"}))
	if !strings.Contains(html, `id="hello-world"`) {
		t.Fatalf("derived anchor missing: %s", html)
	}
}

func TestCodeFallbackOnUnknownLanguage(t *testing.T) {
	html := string(Part(testTopic, 0, content.CodePart{Code: "x := <-ch", Language: "klingon"}))
	if !strings.Contains(html, "x := ") {
		t.Fatalf("code content missing: %s", html)
	}
	if !strings.Contains(html, "&lt;-ch") {
		t.Fatalf("code not escaped: %s", html)
	}
}

func TestTopicAssemblerKeepsDocumentOrder(t *testing.T) {
	topic := &content.Topic{
		ID: "orden",
		Content: content.PartList{
			content.HeadingPart{Text: "Primero"},
			unknownPart{},
			content.ParagraphPart{Text: "Segundo"},
			content.DividerPart{},
		},
	}
	html := string(Topic(topic))
	first := strings.Index(html, "Primero")
	second := strings.Index(html, "Segundo")
	divider := strings.Index(html, "divider")
	if first < 0 || second < 0 || divider < 0 {
		t.Fatalf("missing fragments: %s", html)
	}
	if !(first < second && second < divider) {
		t.Fatalf("document order broken: %s", html)
	}
}
