package repository

import (
	"curso_backend/internal/model"

	"gorm.io/gorm"
)

type ResourceFileRepository struct {
	DB *gorm.DB
}

func NewResourceFileRepository(db *gorm.DB) *ResourceFileRepository {
	return &ResourceFileRepository{DB: db}
}

func (r *ResourceFileRepository) Create(file *model.ResourceFile) error {
	return r.DB.Create(file).Error
}

func (r *ResourceFileRepository) FindByKind(kind model.ResourceKind, lang string) ([]model.ResourceFile, error) {
	var files []model.ResourceFile
	err := r.DB.Where("kind = ? AND lang = ?", kind, lang).
		Order("created_at DESC").
		Find(&files).Error
	return files, err
}
