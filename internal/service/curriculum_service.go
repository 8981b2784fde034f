package service

import (
	"curso_backend/internal/content"
	"curso_backend/internal/curriculum"
	"curso_backend/internal/util"
)

// CurriculumService expone el temario estático al resto del servidor. El
// contenido es inmutable en memoria; el servicio solo resuelve idioma,
// lecciones y a qué curso pertenece cada widget.
type CurriculumService struct{}

func NewCurriculumService() *CurriculumService {
	return &CurriculumService{}
}

func (s *CurriculumService) Get(lang string) (*curriculum.Curriculum, error) {
	return curriculum.Get(lang)
}

func (s *CurriculumService) GetTopic(lang, topicID string) (*content.Topic, error) {
	cur, err := curriculum.Get(lang)
	if err != nil {
		return nil, err
	}
	topic, ok := cur.FindTopic(topicID)
	if !ok {
		return nil, util.ErrTopicNotFound
	}
	return topic, nil
}

// CourseIDForTopic devuelve el id del módulo que contiene la lección, o
// "general" para los topics que viven fuera de los módulos.
func (s *CurriculumService) CourseIDForTopic(cur *curriculum.Curriculum, topicID string) string {
	for i := range cur.Modules {
		m := &cur.Modules[i]
		if m.Overview.ID == topicID {
			return m.ID
		}
		for j := range m.Conferences {
			if m.Conferences[j].ID == topicID {
				return m.ID
			}
		}
	}
	return "general"
}

// TOCModule es la entrada del índice lateral: módulo con sus lecciones.
type TOCModule struct {
	ID     string     `json:"id"`
	Title  string     `json:"title"`
	Topics []TOCEntry `json:"topics"`
}

type TOCEntry struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// TableOfContents aplana el temario a la estructura que consume la barra
// lateral, sin el cuerpo de las lecciones.
func (s *CurriculumService) TableOfContents(lang string) ([]TOCModule, error) {
	cur, err := curriculum.Get(lang)
	if err != nil {
		return nil, err
	}

	toc := make([]TOCModule, 0, len(cur.Modules)+1)
	toc = append(toc, TOCModule{
		ID:    "general",
		Title: cur.ObjetivoGeneral.Title,
		Topics: []TOCEntry{
			{ID: cur.ObjetivoGeneral.ID, Title: cur.ObjetivoGeneral.Title},
		},
	})
	for i := range cur.Modules {
		m := &cur.Modules[i]
		entry := TOCModule{ID: m.ID, Title: m.Title}
		entry.Topics = append(entry.Topics, TOCEntry{ID: m.Overview.ID, Title: m.Overview.Title})
		for j := range m.Conferences {
			c := &m.Conferences[j]
			entry.Topics = append(entry.Topics, TOCEntry{ID: c.ID, Title: c.Title})
		}
		toc = append(toc, entry)
	}
	return toc, nil
}
