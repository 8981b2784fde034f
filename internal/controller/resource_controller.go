package controller

import (
	"errors"

	"curso_backend/internal/model"
	"curso_backend/internal/service"
	"curso_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ResourceController struct {
	ResourceService *service.ResourceService
}

func NewResourceController(resourceService *service.ResourceService) *ResourceController {
	return &ResourceController{ResourceService: resourceService}
}

func parseKind(raw string) (model.ResourceKind, bool) {
	switch model.ResourceKind(raw) {
	case model.ResourceEvaluation, model.ResourceBibliography:
		return model.ResourceKind(raw), true
	}
	return "", false
}

// List godoc
// @Summary Archivos descargables de evaluación o bibliografía
// @Tags resources
// @Produce  json
// @Param   kind query string true "evaluation | bibliography"
// @Param   lang query string false "Idioma (es | pt)" default(es)
// @Success 200 {object} util.Response{data=[]model.ResourceFile}
// @Failure 400 {object} util.Response "Tipo inválido"
// @Router /api/resources [get]
func (c *ResourceController) List(ctx *gin.Context) {
	kind, ok := parseKind(ctx.Query("kind"))
	if !ok {
		util.BadRequest(ctx, "kind debe ser evaluation o bibliography")
		return
	}

	files, err := c.ResourceService.List(kind, langOf(ctx))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, files)
}

// Upload godoc
// @Summary Subir un archivo descargable (solo admin)
// @Tags resources
// @Accept  multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param   kind formData string true "evaluation | bibliography"
// @Param   lang formData string false "Idioma (es | pt)"
// @Param   title formData string true "Título visible"
// @Param   file formData file true "Archivo PDF, ZIP o DOCX"
// @Success 201 {object} util.Response{data=model.ResourceFile}
// @Failure 400 {object} util.Response "Petición inválida"
// @Failure 403 {object} util.Response "Requiere rol admin"
// @Failure 422 {object} util.Response "Extensión no permitida"
// @Router /api/admin/resources [post]
func (c *ResourceController) Upload(ctx *gin.Context) {
	kind, ok := parseKind(ctx.PostForm("kind"))
	if !ok {
		util.BadRequest(ctx, "kind debe ser evaluation o bibliography")
		return
	}
	title := ctx.PostForm("title")
	if title == "" {
		util.BadRequest(ctx, "title es obligatorio")
		return
	}
	lang := ctx.DefaultPostForm("lang", "es")

	header, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "falta el archivo")
		return
	}

	user := util.GetUserFromContext(ctx)
	file, err := c.ResourceService.Upload(ctx.Request.Context(), user.UserID, kind, lang, title, header)
	if err != nil {
		if errors.Is(err, util.ErrInvalidFileType) {
			util.Error(ctx, 422, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, file)
}
