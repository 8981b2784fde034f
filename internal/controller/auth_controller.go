package controller

import (
	"errors"

	"curso_backend/internal/model"
	"curso_backend/internal/service"
	"curso_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// swagger:model RegisterRequest
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Language string `json:"language" binding:"omitempty,oneof=es pt"`
}

// Register godoc
// @Summary Registrar un alumno
// @Description Crea la cuenta con correo y contraseña
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   body body RegisterRequest true "Datos de registro"
// @Success 201 {object} util.Response{data=object} "Cuenta creada"
// @Failure 400 {object} util.Response "Petición inválida"
// @Failure 409 {object} util.Response "Correo ya registrado"
// @Failure 500 {object} util.Response "Error interno"
// @Router /api/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     model.Student,
	}
	if req.Language != "" {
		user.Language = req.Language
	}

	if err := c.AuthService.Register(user); err != nil {
		if errors.Is(err, util.ErrEmailRegistered) {
			util.Error(ctx, 409, util.ErrEmailRegistered.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, gin.H{"id": user.ID})
}

// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary Iniciar sesión
// @Description Devuelve el token JWT si las credenciales son válidas
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   body body LoginRequest true "Credenciales"
// @Success 200 {object} util.Response{data=object} "Token emitido"
// @Failure 400 {object} util.Response "Petición inválida"
// @Failure 401 {object} util.Response "Credenciales incorrectas"
// @Router /api/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, err := c.AuthService.Login(req.Email, req.Password)
	if err != nil {
		util.Error(ctx, 401, "correo o contraseña incorrectos")
		return
	}

	util.Success(ctx, gin.H{"token": token})
}

// Profile godoc
// @Summary Perfil del usuario autenticado
// @Tags auth
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.User}
// @Failure 401 {object} util.Response "Sin sesión"
// @Router /api/profile [get]
func (c *AuthController) Profile(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	util.Success(ctx, user)
}
