package controller

import (
	"errors"

	"curso_backend/internal/service"
	"curso_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

func (c *QuizController) respond(ctx *gin.Context, state *service.QuizState, err error) {
	if err == nil {
		util.Success(ctx, state)
		return
	}
	switch {
	case errors.Is(err, util.ErrQuizNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrUnsupportedLanguage):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrAnswerRequired):
		util.Error(ctx, 422, err.Error())
	case errors.Is(err, util.ErrQuizFinished):
		util.Error(ctx, 409, "el quiz ya está terminado")
	case errors.Is(err, util.ErrSaveInFlight):
		util.Error(ctx, 409, "hay un guardado en curso, reintenta en un momento")
	default:
		util.LogInternalError(ctx, err)
	}
}

// State godoc
// @Summary Estado del quiz para el alumno
// @Description Borrador en curso o intento terminado con su nota
// @Tags quiz
// @Produce  json
// @Security BearerAuth
// @Param   quizID path string true "Clave del quiz"
// @Param   lang query string false "Idioma (es | pt)" default(es)
// @Success 200 {object} util.Response{data=service.QuizState}
// @Failure 401 {object} util.Response "Sin sesión"
// @Failure 404 {object} util.Response "Quiz inexistente"
// @Router /api/quizzes/{quizID}/state [get]
func (c *QuizController) State(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	state, err := c.QuizService.State(ctx.Request.Context(), user.UserID, langOf(ctx), ctx.Param("quizID"))
	c.respond(ctx, state, err)
}

// swagger:model AnswerRequest
type AnswerRequest struct {
	QuestionIndex int `json:"questionIndex" binding:"min=0"`
	OptionIndex   int `json:"optionIndex" binding:"min=0"`
}

// Answer godoc
// @Summary Marcar la opción de la pregunta actual
// @Tags quiz
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   quizID path string true "Clave del quiz"
// @Param   body body AnswerRequest true "Pregunta y opción elegida"
// @Success 200 {object} util.Response{data=service.QuizState}
// @Failure 409 {object} util.Response "Quiz ya terminado"
// @Failure 422 {object} util.Response "Opción fuera de rango"
// @Router /api/quizzes/{quizID}/answer [post]
func (c *QuizController) Answer(ctx *gin.Context) {
	var req AnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user := util.GetUserFromContext(ctx)
	state, err := c.QuizService.Answer(ctx.Request.Context(), user.UserID, langOf(ctx), ctx.Param("quizID"), req.QuestionIndex, req.OptionIndex)
	c.respond(ctx, state, err)
}

// Advance godoc
// @Summary Pasar a la siguiente pregunta
// @Description Requiere respuesta marcada en la actual; nunca pasa de la última
// @Tags quiz
// @Produce  json
// @Security BearerAuth
// @Param   quizID path string true "Clave del quiz"
// @Success 200 {object} util.Response{data=service.QuizState}
// @Failure 422 {object} util.Response "La pregunta actual no tiene respuesta"
// @Router /api/quizzes/{quizID}/advance [post]
func (c *QuizController) Advance(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	state, err := c.QuizService.Advance(ctx.Request.Context(), user.UserID, langOf(ctx), ctx.Param("quizID"))
	c.respond(ctx, state, err)
}

// Finish godoc
// @Summary Cerrar el intento y guardar la nota
// @Description Idempotente: un intento ya guardado devuelve su nota
// @Tags quiz
// @Produce  json
// @Security BearerAuth
// @Param   quizID path string true "Clave del quiz"
// @Success 200 {object} util.Response{data=service.QuizState}
// @Failure 409 {object} util.Response "Guardado en curso"
// @Failure 422 {object} util.Response "Faltan respuestas"
// @Router /api/quizzes/{quizID}/finish [post]
func (c *QuizController) Finish(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	state, err := c.QuizService.Finish(ctx.Request.Context(), user.UserID, langOf(ctx), ctx.Param("quizID"))
	c.respond(ctx, state, err)
}
