package app

import (
	"curso_backend/docs"
	"curso_backend/internal/config"
	"curso_backend/internal/middleware"
	"curso_backend/internal/model"
	"curso_backend/pkg/monitoring"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// Páginas HTML renderizadas en el servidor.
	renderer := multitemplate.NewRenderer()
	renderer.AddFromFiles("index", "web/templates/layout.html", "web/templates/index.html")
	renderer.AddFromFiles("topic", "web/templates/layout.html", "web/templates/topic.html")
	router.HTMLRender = renderer

	router.GET("/", c.page.Home)
	router.GET("/topics/:topicID", c.page.Topic)

	// Rutas públicas.
	api := router.Group("/api")
	{
		api.GET("/health", c.health.Check)
		api.POST("/register", c.auth.Register)
		api.POST("/login", c.auth.Login)
		api.GET("/curriculum", c.curriculum.Index)
		api.GET("/curriculum/topics/:topicID", c.curriculum.Topic)
		api.GET("/resources", c.resource.List)
	}

	// Rutas con sesión obligatoria.
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		authGroup.GET("/profile", c.auth.Profile)

		authGroup.GET("/quizzes/:quizID/state", c.quiz.State)
		authGroup.POST("/quizzes/:quizID/answer", c.quiz.Answer)
		authGroup.POST("/quizzes/:quizID/advance", c.quiz.Advance)
		authGroup.POST("/quizzes/:quizID/finish", c.quiz.Finish)

		authGroup.GET("/assignments/:assignmentID/submission", c.assignment.GetSubmission)
		authGroup.POST("/assignments/:assignmentID/submission", c.assignment.Submit)

		authGroup.POST("/chat/ask", c.chat.Ask)
		authGroup.GET("/chat/history", c.chat.History)
	}

	// Rutas de administración.
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Admin))
	{
		admin.POST("/resources", c.resource.Upload)
	}
}
