package content

import (
	"encoding/json"
)

// PartType discriminates the closed set of content block variants.
type PartType string

const (
	TypeHeading           PartType = "heading"
	TypeSubtitle          PartType = "subtitle"
	TypeParagraph         PartType = "paragraph"
	TypeCode              PartType = "code"
	TypeList              PartType = "list"
	TypeAlert             PartType = "alert"
	TypeCallout           PartType = "callout" // alias de alert
	TypeImage             PartType = "image"
	TypeTwoColumn         PartType = "two-column"
	TypeFeatureCard       PartType = "feature-card"
	TypeDivider           PartType = "divider"
	TypeFileStructure     PartType = "file-structure"
	TypeComponentGrid     PartType = "component-grid"
	TypeQuiz              PartType = "quiz"
	TypeAssignment        PartType = "assignment"
	TypeEvaluationCards   PartType = "evaluation-cards"
	TypeBibliographyCards PartType = "bibliography-cards"
)

// Part is the tagged union of lecture content blocks. Each variant carries
// only its own payload; the JSON decoder selects the variant by the `type`
// tag and drops unknown tags without error.
type Part interface {
	PartType() PartType
}

type HeadingPart struct {
	Text string `json:"text"`
}

type SubtitlePart struct {
	Text string `json:"text"`
	ID   string `json:"id,omitempty"`
}

// AnchorID devuelve el id explícito del autor o el slug derivado del texto.
func (p SubtitlePart) AnchorID() string {
	if p.ID != "" {
		return p.ID
	}
	return Slugify(p.Text)
}

type ParagraphPart struct {
	Text string `json:"text"`
}

type CodePart struct {
	Code     string `json:"code"`
	Language string `json:"language"`
}

// ListItem acepta en JSON tanto una cadena simple como un objeto
// {text, subItems}.
type ListItem struct {
	Text     string   `json:"text"`
	SubItems []string `json:"subItems,omitempty"`
}

func (li *ListItem) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &li.Text)
	}
	type alias ListItem
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*li = ListItem(a)
	return nil
}

type ListPart struct {
	Items []ListItem `json:"items"`
}

type AlertType string

const (
	AlertInfo    AlertType = "info"
	AlertWarning AlertType = "warning"
	AlertTip     AlertType = "tip"
)

type AlertPart struct {
	Text      string    `json:"text"`
	AlertType AlertType `json:"alertType"`
}

type ImagePart struct {
	ImageURL string `json:"imageUrl"`
	Caption  string `json:"caption,omitempty"`
}

type Column struct {
	Title   string   `json:"title"`
	Content []string `json:"content"`
}

type TwoColumnPart struct {
	Columns []Column `json:"columns"`
}

type FeatureItem struct {
	Icon  string `json:"icon"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

type FeatureCardPart struct {
	FeatureItems []FeatureItem `json:"featureItems"`
}

type DividerPart struct{}

type FileItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description []string `json:"description"`
}

type FileStructurePart struct {
	Files []FileItem `json:"files"`
}

type GridItem struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Icon  string `json:"icon"`
}

type ComponentGridPart struct {
	Items []GridItem `json:"componentGridItems"`
}

type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
}

type QuizPart struct {
	Questions []QuizQuestion `json:"questions"`
}

type AssignmentPart struct {
	AssignmentID string   `json:"assignmentId,omitempty"`
	Description  []string `json:"description"`
	Code         string   `json:"code,omitempty"`
}

type ResourceCard struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ButtonText  string `json:"buttonText"`
	URL         string `json:"url"`
	Type        string `json:"type,omitempty"`
	Lang        string `json:"lang,omitempty"`
}

type EvaluationCardsPart struct {
	Cards []ResourceCard `json:"cards"`
}

type BibliographyCardsPart struct {
	Cards []ResourceCard `json:"cards"`
}

func (HeadingPart) PartType() PartType           { return TypeHeading }
func (SubtitlePart) PartType() PartType          { return TypeSubtitle }
func (ParagraphPart) PartType() PartType         { return TypeParagraph }
func (CodePart) PartType() PartType              { return TypeCode }
func (ListPart) PartType() PartType              { return TypeList }
func (AlertPart) PartType() PartType             { return TypeAlert }
func (ImagePart) PartType() PartType             { return TypeImage }
func (TwoColumnPart) PartType() PartType         { return TypeTwoColumn }
func (FeatureCardPart) PartType() PartType       { return TypeFeatureCard }
func (DividerPart) PartType() PartType           { return TypeDivider }
func (FileStructurePart) PartType() PartType     { return TypeFileStructure }
func (ComponentGridPart) PartType() PartType     { return TypeComponentGrid }
func (QuizPart) PartType() PartType              { return TypeQuiz }
func (AssignmentPart) PartType() PartType        { return TypeAssignment }
func (EvaluationCardsPart) PartType() PartType   { return TypeEvaluationCards }
func (BibliographyCardsPart) PartType() PartType { return TypeBibliographyCards }

// UnmarshalPart decodifica un bloque por su etiqueta `type`. Una etiqueta
// desconocida devuelve (nil, nil): compatibilidad hacia delante por omisión.
func UnmarshalPart(data []byte) (Part, error) {
	var probe struct {
		Type PartType `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, err
	}

	switch probe.Type {
	case TypeHeading:
		var p HeadingPart
		return p, json.Unmarshal(data, &p)
	case TypeSubtitle:
		var p SubtitlePart
		return p, json.Unmarshal(data, &p)
	case TypeParagraph:
		var p ParagraphPart
		return p, json.Unmarshal(data, &p)
	case TypeCode:
		var p CodePart
		return p, json.Unmarshal(data, &p)
	case TypeList:
		var p ListPart
		return p, json.Unmarshal(data, &p)
	case TypeAlert, TypeCallout:
		var p AlertPart
		return p, json.Unmarshal(data, &p)
	case TypeImage:
		var p ImagePart
		return p, json.Unmarshal(data, &p)
	case TypeTwoColumn:
		var p TwoColumnPart
		return p, json.Unmarshal(data, &p)
	case TypeFeatureCard:
		var p FeatureCardPart
		return p, json.Unmarshal(data, &p)
	case TypeDivider:
		return DividerPart{}, nil
	case TypeFileStructure:
		var p FileStructurePart
		return p, json.Unmarshal(data, &p)
	case TypeComponentGrid:
		var p ComponentGridPart
		return p, json.Unmarshal(data, &p)
	case TypeQuiz:
		var p QuizPart
		return p, json.Unmarshal(data, &p)
	case TypeAssignment:
		var p AssignmentPart
		return p, json.Unmarshal(data, &p)
	case TypeEvaluationCards:
		var p EvaluationCardsPart
		return p, json.Unmarshal(data, &p)
	case TypeBibliographyCards:
		var p BibliographyCardsPart
		return p, json.Unmarshal(data, &p)
	}
	return nil, nil
}

// PartList decodifica una secuencia ordenada de bloques, descartando los de
// tipo desconocido.
type PartList []Part

func (pl *PartList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parts := make([]Part, 0, len(raw))
	for _, r := range raw {
		p, err := UnmarshalPart(r)
		if err != nil {
			return err
		}
		if p == nil {
			continue
		}
		parts = append(parts, p)
	}
	*pl = parts
	return nil
}

// Topic es una lección: una secuencia ordenada e inmutable de bloques.
type Topic struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Content PartList `json:"content"`
}

// Module agrupa lecciones bajo un tema, con un topic de visión general.
type Module struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Overview    Topic   `json:"overview"`
	Conferences []Topic `json:"conferences"`
}
