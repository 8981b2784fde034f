package controller

import (
	"errors"
	"net/http"

	"curso_backend/internal/render"
	"curso_backend/internal/service"
	"curso_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// PageController sirve las páginas HTML del curso: portada con el índice y
// la vista de cada lección, renderizada en el servidor.
type PageController struct {
	CurriculumService *service.CurriculumService
}

func NewPageController(curriculumService *service.CurriculumService) *PageController {
	return &PageController{CurriculumService: curriculumService}
}

func (c *PageController) Home(ctx *gin.Context) {
	lang := langOf(ctx)
	toc, err := c.CurriculumService.TableOfContents(lang)
	if err != nil {
		lang = "es"
		toc, err = c.CurriculumService.TableOfContents(lang)
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
	}

	cur, err := c.CurriculumService.Get(lang)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.HTML(http.StatusOK, "index", gin.H{
		"lang":    lang,
		"title":   cur.ObjetivoGeneral.Title,
		"toc":     toc,
		"content": render.Topic(&cur.ObjetivoGeneral),
	})
}

func (c *PageController) Topic(ctx *gin.Context) {
	lang := langOf(ctx)
	topic, err := c.CurriculumService.GetTopic(lang, ctx.Param("topicID"))
	if err != nil {
		if errors.Is(err, util.ErrTopicNotFound) || errors.Is(err, util.ErrUnsupportedLanguage) {
			ctx.HTML(http.StatusNotFound, "index", gin.H{
				"lang":  "es",
				"title": "Lección no encontrada",
			})
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	toc, err := c.CurriculumService.TableOfContents(lang)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.HTML(http.StatusOK, "topic", gin.H{
		"lang":    lang,
		"title":   topic.Title,
		"topicID": topic.ID,
		"toc":     toc,
		"content": render.Topic(topic),
	})
}
