package controller

import (
	"errors"

	"curso_backend/internal/render"
	"curso_backend/internal/service"
	"curso_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CurriculumController struct {
	CurriculumService *service.CurriculumService
}

func NewCurriculumController(curriculumService *service.CurriculumService) *CurriculumController {
	return &CurriculumController{CurriculumService: curriculumService}
}

// langOf resuelve el idioma de la petición: query ?lang=, o español por
// defecto. El idioma inválido lo rechaza el servicio.
func langOf(ctx *gin.Context) string {
	return ctx.DefaultQuery("lang", "es")
}

// Index godoc
// @Summary Índice del temario
// @Description Módulos y lecciones del idioma pedido, sin el cuerpo
// @Tags curriculum
// @Produce  json
// @Param   lang query string false "Idioma (es | pt)" default(es)
// @Success 200 {object} util.Response{data=[]service.TOCModule}
// @Failure 400 {object} util.Response "Idioma no soportado"
// @Router /api/curriculum [get]
func (c *CurriculumController) Index(ctx *gin.Context) {
	toc, err := c.CurriculumService.TableOfContents(langOf(ctx))
	if err != nil {
		if errors.Is(err, util.ErrUnsupportedLanguage) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, toc)
}

// Topic godoc
// @Summary Una lección renderizada
// @Description Devuelve la lección con su contenido ya convertido a HTML
// @Tags curriculum
// @Produce  json
// @Param   topicID path string true "Id de la lección"
// @Param   lang query string false "Idioma (es | pt)" default(es)
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response "Idioma no soportado"
// @Failure 404 {object} util.Response "Lección inexistente"
// @Router /api/curriculum/topics/{topicID} [get]
func (c *CurriculumController) Topic(ctx *gin.Context) {
	topic, err := c.CurriculumService.GetTopic(langOf(ctx), ctx.Param("topicID"))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUnsupportedLanguage):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrTopicNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{
		"id":    topic.ID,
		"title": topic.Title,
		"html":  render.Topic(topic),
	})
}
