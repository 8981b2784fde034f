package curriculum

import (
	"curso_backend/internal/content"
	"curso_backend/internal/util"
	"embed"
	"encoding/json"
	"fmt"
	"sync"
)

//go:embed data/*.json
var dataFS embed.FS

// Curriculum es el temario completo de un idioma: datos estáticos de solo
// lectura, cargados una vez y nunca mutados por el resto del servidor.
type Curriculum struct {
	ObjetivoGeneral content.Topic          `json:"objetivoGeneral"`
	Modules         []content.Module       `json:"modules"`
	Evaluations     []content.ResourceCard `json:"evaluations"`
	Bibliography    []content.ResourceCard `json:"bibliography"`
}

var (
	mu    sync.Mutex
	cache = map[string]*Curriculum{}
)

// Get devuelve el temario del idioma indicado (es | pt), cacheado tras la
// primera carga.
func Get(lang string) (*Curriculum, error) {
	switch lang {
	case "es", "pt":
	case "":
		lang = "es"
	default:
		return nil, util.ErrUnsupportedLanguage
	}

	mu.Lock()
	defer mu.Unlock()

	if cur, ok := cache[lang]; ok {
		return cur, nil
	}

	raw, err := dataFS.ReadFile(fmt.Sprintf("data/%s.json", lang))
	if err != nil {
		return nil, err
	}

	var cur Curriculum
	if err := json.Unmarshal(raw, &cur); err != nil {
		return nil, fmt.Errorf("curriculum %s: %w", lang, err)
	}

	cache[lang] = &cur
	return &cur, nil
}

// Topics recorre todos los topics en orden de documento: objetivo general,
// y por cada módulo su overview seguido de sus conferencias.
func (c *Curriculum) Topics() []*content.Topic {
	topics := make([]*content.Topic, 0, 1+len(c.Modules)*4)
	topics = append(topics, &c.ObjetivoGeneral)
	for i := range c.Modules {
		m := &c.Modules[i]
		topics = append(topics, &m.Overview)
		for j := range m.Conferences {
			topics = append(topics, &m.Conferences[j])
		}
	}
	return topics
}

// FindTopic localiza una lección por id.
func (c *Curriculum) FindTopic(topicID string) (*content.Topic, bool) {
	for _, t := range c.Topics() {
		if t.ID == topicID {
			return t, true
		}
	}
	return nil, false
}

// FindQuiz resuelve la clave de widget de un quiz a su topic y bloque.
// Un quiz sin preguntas no existe a efectos de interacción.
func (c *Curriculum) FindQuiz(quizID string) (*content.Topic, content.QuizPart, bool) {
	for _, t := range c.Topics() {
		for i, p := range t.Content {
			quiz, ok := p.(content.QuizPart)
			if !ok {
				continue
			}
			if content.WidgetKey(t.ID, i) == quizID && len(quiz.Questions) > 0 {
				return t, quiz, true
			}
		}
	}
	return nil, content.QuizPart{}, false
}

// FindAssignment resuelve el id de una tarea (explícito o derivado de la
// posición) a su topic y bloque.
func (c *Curriculum) FindAssignment(assignmentID string) (*content.Topic, content.AssignmentPart, bool) {
	for _, t := range c.Topics() {
		for i, p := range t.Content {
			assignment, ok := p.(content.AssignmentPart)
			if !ok {
				continue
			}
			key := assignment.AssignmentID
			if key == "" {
				key = content.WidgetKey(t.ID, i)
			}
			if key == assignmentID {
				return t, assignment, true
			}
		}
	}
	return nil, content.AssignmentPart{}, false
}

// PlainText aplana el texto de una lección (títulos, párrafos, listas y
// alertas) para usarlo como contexto del chat.
func PlainText(t *content.Topic) string {
	out := t.Title + "\n"
	for _, p := range t.Content {
		switch v := p.(type) {
		case content.HeadingPart:
			out += v.Text + "\n"
		case content.SubtitlePart:
			out += v.Text + "\n"
		case content.ParagraphPart:
			out += v.Text + "\n"
		case content.AlertPart:
			out += v.Text + "\n"
		case content.ListPart:
			for _, item := range v.Items {
				out += item.Text + "\n"
				for _, sub := range item.SubItems {
					out += sub + "\n"
				}
			}
		}
	}
	return out
}
