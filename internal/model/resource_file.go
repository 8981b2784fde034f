package model

type ResourceKind string

const (
	ResourceEvaluation   ResourceKind = "evaluation"
	ResourceBibliography ResourceKind = "bibliography"
)

// ResourceFile es un fichero descargable (plantillas de evaluación,
// bibliografía en PDF) subido por un administrador al almacén de objetos.
// swagger:model ResourceFile
type ResourceFile struct {
	BaseModel
	Title       string       `gorm:"size:255;not null" json:"title"`
	Description string       `gorm:"type:text" json:"description"`
	Kind        ResourceKind `gorm:"type:enum('evaluation','bibliography');not null" json:"kind"`
	Lang        string       `gorm:"size:10;default:'es'" json:"lang"`
	URL         string       `gorm:"size:512" json:"url"`
	UploaderID  uint         `gorm:"index" json:"uploaderId"`
}

func (ResourceFile) TableName() string {
	return "resource_files"
}
