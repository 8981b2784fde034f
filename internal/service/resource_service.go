package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"curso_backend/internal/model"
	"curso_backend/internal/repository"
	"curso_backend/internal/util"
)

var allowedResourceExts = map[string]string{
	".pdf":  "application/pdf",
	".zip":  "application/zip",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// ResourceService gestiona los archivos descargables de las tarjetas de
// evaluación y bibliografía que sube el administrador.
type ResourceService struct {
	Files   *repository.ResourceFileRepository
	Storage *StorageService
}

func NewResourceService(files *repository.ResourceFileRepository, storage *StorageService) *ResourceService {
	return &ResourceService{
		Files:   files,
		Storage: storage,
	}
}

func (s *ResourceService) List(kind model.ResourceKind, lang string) ([]model.ResourceFile, error) {
	return s.Files.FindByKind(kind, lang)
}

// Upload valida la extensión, sube el archivo al almacenamiento y registra
// su metadato.
func (s *ResourceService) Upload(ctx context.Context, uploaderID uint, kind model.ResourceKind, lang, title string, header *multipart.FileHeader) (*model.ResourceFile, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	contentType, ok := allowedResourceExts[ext]
	if !ok {
		return nil, util.ErrInvalidFileType
	}

	src, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	filename := fmt.Sprintf("resources/%s/%s%s", kind, model.GenerateUUID(), ext)
	url, err := s.Storage.Upload(ctx, filename, src, header.Size, contentType)
	if err != nil {
		return nil, err
	}

	file := &model.ResourceFile{
		Kind:       kind,
		Lang:       lang,
		Title:      title,
		URL:        url,
		UploaderID: uploaderID,
	}
	if err := s.Files.Create(file); err != nil {
		return nil, err
	}
	return file, nil
}
