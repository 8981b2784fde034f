package controller

import (
	"errors"

	"curso_backend/internal/service"
	"curso_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AssignmentController struct {
	AssignmentService *service.AssignmentService
}

func NewAssignmentController(assignmentService *service.AssignmentService) *AssignmentController {
	return &AssignmentController{AssignmentService: assignmentService}
}

// GetSubmission godoc
// @Summary Entrega del alumno para una tarea
// @Description Devuelve la entrega, o data nula si aún no entregó
// @Tags assignment
// @Produce  json
// @Security BearerAuth
// @Param   assignmentID path string true "Id de la tarea"
// @Success 200 {object} util.Response{data=model.AssignmentSubmission}
// @Failure 404 {object} util.Response "Tarea inexistente"
// @Router /api/assignments/{assignmentID}/submission [get]
func (c *AssignmentController) GetSubmission(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	submission, err := c.AssignmentService.Get(user.UserID, langOf(ctx), ctx.Param("assignmentID"))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrAssignmentNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrUnsupportedLanguage):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, submission)
}

// swagger:model SubmitRequest
type SubmitRequest struct {
	Content string `json:"content" binding:"required"`
}

// Submit godoc
// @Summary Entregar una tarea
// @Description Una sola entrega por tarea; la repetida devuelve la original
// @Tags assignment
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   assignmentID path string true "Id de la tarea"
// @Param   body body SubmitRequest true "Texto de la entrega"
// @Success 201 {object} util.Response{data=model.AssignmentSubmission}
// @Failure 404 {object} util.Response "Tarea inexistente"
// @Failure 409 {object} util.Response "Ya entregada"
// @Failure 422 {object} util.Response "Entrega vacía"
// @Router /api/assignments/{assignmentID}/submission [post]
func (c *AssignmentController) Submit(ctx *gin.Context) {
	var req SubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user := util.GetUserFromContext(ctx)
	submission, err := c.AssignmentService.Submit(user.UserID, langOf(ctx), ctx.Param("assignmentID"), req.Content)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrAlreadySubmitted):
			// Conflicto informativo: se devuelve la entrega existente.
			ctx.JSON(409, util.Response{Code: 409, Message: err.Error(), Data: submission})
		case errors.Is(err, util.ErrAssignmentNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrEmptySubmission):
			util.Error(ctx, 422, err.Error())
		case errors.Is(err, util.ErrUnsupportedLanguage):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, submission)
}
