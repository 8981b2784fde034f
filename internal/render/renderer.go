package render

import (
	"curso_backend/internal/content"
	"fmt"
	"html/template"
	"strings"
)

func esc(s string) string {
	return template.HTMLEscapeString(s)
}

// Part transforma un bloque en exactamente un fragmento HTML, o en nada si
// el tipo no se reconoce. Es una función pura: todo el contexto entra por
// parámetros (topic y posición, para las claves de widget).
func Part(topic *content.Topic, partIndex int, p content.Part) template.HTML {
	switch v := p.(type) {
	case content.HeadingPart:
		return template.HTML(`<h2 class="heading">` + esc(v.Text) + `</h2>`)
	case content.SubtitlePart:
		return template.HTML(`<h3 class="subtitle" id="` + esc(v.AnchorID()) + `">` + esc(v.Text) + `</h3>`)
	case content.ParagraphPart:
		return template.HTML(`<p>` + esc(v.Text) + `</p>`)
	case content.CodePart:
		return renderCode(v)
	case content.ListPart:
		return renderList(v)
	case content.AlertPart:
		return renderAlert(v)
	case content.ImagePart:
		return renderImage(v)
	case content.TwoColumnPart:
		return renderTwoColumn(v)
	case content.FeatureCardPart:
		return renderFeatureCards(v)
	case content.DividerPart:
		return template.HTML(`<hr class="divider">`)
	case content.FileStructurePart:
		return renderFileStructure(v)
	case content.ComponentGridPart:
		return renderComponentGrid(v)
	case content.QuizPart:
		return renderQuiz(topic, partIndex, v)
	case content.AssignmentPart:
		return renderAssignment(topic, partIndex, v)
	case content.EvaluationCardsPart:
		return renderResourceCards("evaluation-cards", v.Cards)
	case content.BibliographyCardsPart:
		return renderResourceCards("bibliography-cards", v.Cards)
	}
	// Tipo fuera del conjunto cerrado: no se renderiza nada.
	return ""
}

// Topic ensambla la lección completa concatenando los bloques en orden de
// documento. El orden del array es la única garantía de ordenación.
func Topic(t *content.Topic) template.HTML {
	var b strings.Builder
	b.WriteString(`<article class="topic" data-topic-id="` + esc(t.ID) + `">`)
	for i, p := range t.Content {
		b.WriteString(string(Part(t, i, p)))
	}
	b.WriteString(`</article>`)
	return template.HTML(b.String())
}

func renderCode(v content.CodePart) template.HTML {
	var b strings.Builder
	b.WriteString(`<div class="code-block" data-language="` + esc(content.NormalizeLanguage(v.Language)) + `">`)
	b.WriteString(string(HighlightCode(v.Code, v.Language)))
	b.WriteString(`</div>`)
	return template.HTML(b.String())
}

func renderList(v content.ListPart) template.HTML {
	if len(v.Items) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<ul class="list">`)
	for _, item := range v.Items {
		b.WriteString(`<li>`)
		for _, seg := range content.SplitBold(item.Text) {
			if seg.Bold {
				b.WriteString(`<strong>` + esc(seg.Text) + `</strong>`)
			} else {
				b.WriteString(esc(seg.Text))
			}
		}
		if len(item.SubItems) > 0 {
			b.WriteString(`<ul>`)
			for _, sub := range item.SubItems {
				b.WriteString(`<li>` + esc(sub) + `</li>`)
			}
			b.WriteString(`</ul>`)
		}
		b.WriteString(`</li>`)
	}
	b.WriteString(`</ul>`)
	return template.HTML(b.String())
}

func renderAlert(v content.AlertPart) template.HTML {
	style := content.StyleForAlert(v.AlertType)
	return template.HTML(`<div class="alert ` + style.Class + `"><span class="alert-icon">` +
		style.Icon + `</span><p>` + esc(v.Text) + `</p></div>`)
}

func renderImage(v content.ImagePart) template.HTML {
	var b strings.Builder
	b.WriteString(`<figure class="image"><img src="` + esc(v.ImageURL) + `" alt="` + esc(v.Caption) + `">`)
	if v.Caption != "" {
		b.WriteString(`<figcaption>` + esc(v.Caption) + `</figcaption>`)
	}
	b.WriteString(`</figure>`)
	return template.HTML(b.String())
}

func renderTwoColumn(v content.TwoColumnPart) template.HTML {
	var b strings.Builder
	b.WriteString(`<div class="two-column">`)
	for _, col := range v.Columns {
		b.WriteString(`<div class="column"><h4>` + esc(col.Title) + `</h4><ul>`)
		for _, line := range col.Content {
			b.WriteString(`<li>` + esc(line) + `</li>`)
		}
		b.WriteString(`</ul></div>`)
	}
	b.WriteString(`</div>`)
	return template.HTML(b.String())
}

func renderFeatureCards(v content.FeatureCardPart) template.HTML {
	if len(v.FeatureItems) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<div class="feature-cards">`)
	for _, item := range v.FeatureItems {
		b.WriteString(`<div class="feature-card">`)
		if glyph, ok := content.IconGlyph(item.Icon); ok {
			b.WriteString(`<span class="icon">` + glyph + `</span>`)
		}
		b.WriteString(`<h4>` + esc(item.Title) + `</h4><p>` + esc(item.Text) + `</p></div>`)
	}
	b.WriteString(`</div>`)
	return template.HTML(b.String())
}

// renderFileStructure pinta la lista de ficheros con el primero seleccionado
// por defecto; el panel de cada fichero viaja en el markup para que el
// cliente cambie de selección sin red. Una lista vacía no renderiza nada.
func renderFileStructure(v content.FileStructurePart) template.HTML {
	if len(v.Files) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<div class="file-structure"><ul class="file-list">`)
	for i, f := range v.Files {
		selected := ""
		if i == 0 {
			selected = ` class="selected"`
		}
		b.WriteString(`<li` + selected + ` data-file-id="` + esc(f.ID) + `">` + esc(f.Name) + `</li>`)
	}
	b.WriteString(`</ul>`)
	for i, f := range v.Files {
		hidden := ` hidden`
		if i == 0 {
			hidden = ""
		}
		b.WriteString(`<div class="file-description" data-file-id="` + esc(f.ID) + `"` + hidden + `>`)
		for _, line := range f.Description {
			b.WriteString(`<p>` + esc(line) + `</p>`)
		}
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)
	return template.HTML(b.String())
}

// renderComponentGrid emite anclas a secciones de la misma página; el salto
// es navegación DOM pura, no una relación de datos.
func renderComponentGrid(v content.ComponentGridPart) template.HTML {
	if len(v.Items) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<nav class="component-grid">`)
	for _, item := range v.Items {
		b.WriteString(`<a class="grid-tile" href="#` + esc(item.ID) + `">`)
		if glyph, ok := content.IconGlyph(item.Icon); ok {
			b.WriteString(`<span class="icon">` + glyph + `</span>`)
		}
		b.WriteString(`<span>` + esc(item.Title) + `</span></a>`)
	}
	b.WriteString(`</nav>`)
	return template.HTML(b.String())
}

// renderQuiz emite el armazón del widget; el flujo de preguntas lo sirve la
// API de quizzes contra la clave del widget. Un quiz sin preguntas no
// renderiza nada.
func renderQuiz(topic *content.Topic, partIndex int, v content.QuizPart) template.HTML {
	if len(v.Questions) == 0 {
		return ""
	}
	key := content.WidgetKey(topic.ID, partIndex)
	return template.HTML(fmt.Sprintf(
		`<div class="quiz-widget" data-quiz-id="%s" data-question-count="%d"></div>`,
		esc(key), len(v.Questions)))
}

// renderAssignment deja siempre visible la descripción y el código de
// ejemplo, sea cual sea el estado de la entrega.
func renderAssignment(topic *content.Topic, partIndex int, v content.AssignmentPart) template.HTML {
	key := v.AssignmentID
	if key == "" {
		key = content.WidgetKey(topic.ID, partIndex)
	}
	var b strings.Builder
	b.WriteString(`<div class="assignment-widget" data-assignment-id="` + esc(key) + `">`)
	for _, line := range v.Description {
		b.WriteString(`<p>` + esc(line) + `</p>`)
	}
	if v.Code != "" {
		b.WriteString(string(HighlightCode(v.Code, "javascript")))
	}
	b.WriteString(`</div>`)
	return template.HTML(b.String())
}

func renderResourceCards(class string, cards []content.ResourceCard) template.HTML {
	if len(cards) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<div class="` + class + `">`)
	for _, card := range cards {
		b.WriteString(`<div class="resource-card"><h4>` + esc(card.Title) + `</h4><p>` +
			esc(card.Description) + `</p><a class="button" href="` + esc(card.URL) + `">` +
			esc(card.ButtonText) + `</a></div>`)
	}
	b.WriteString(`</div>`)
	return template.HTML(b.String())
}
