package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"curso_backend/internal/config"
	"curso_backend/internal/controller"
	"curso_backend/internal/repository"
	"curso_backend/internal/service"
	"curso_backend/pkg/configwatcher"
	"curso_backend/pkg/database"
	"curso_backend/pkg/logger"
	"curso_backend/pkg/monitoring"
	"curso_backend/pkg/security"
	"curso_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client

	tracerShutdown func(context.Context) error
}

type repositories struct {
	user       *repository.UserRepository
	attempt    *repository.QuizAttemptRepository
	submission *repository.AssignmentSubmissionRepository
	chat       *repository.ChatRepository
	resource   *repository.ResourceFileRepository
}

type services struct {
	auth       *service.AuthService
	curriculum *service.CurriculumService
	quiz       *service.QuizService
	assignment *service.AssignmentService
	chat       *service.ChatService
	storage    *service.StorageService
	resource   *service.ResourceService
}

type controllers struct {
	auth       *controller.AuthController
	curriculum *controller.CurriculumController
	page       *controller.PageController
	quiz       *controller.QuizController
	assignment *controller.AssignmentController
	chat       *controller.ChatController
	resource   *controller.ResourceController
	health     *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		attempt:    repository.NewQuizAttemptRepository(db),
		submission: repository.NewAssignmentSubmissionRepository(db),
		chat:       repository.NewChatRepository(db),
		resource:   repository.NewResourceFileRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.curriculum = service.NewCurriculumService()
	s.quiz = service.NewQuizService(s.curriculum, repos.attempt, service.NewRedisQuizDraftStore(rdb))
	s.assignment = service.NewAssignmentService(s.curriculum, repos.submission)
	s.chat = service.NewChatService(s.curriculum, repos.chat, cfg.AI)
	s.resource = service.NewResourceService(repos.resource, s.storage)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth),
		curriculum: controller.NewCurriculumController(s.curriculum),
		page:       controller.NewPageController(s.curriculum),
		quiz:       controller.NewQuizController(s.quiz),
		assignment: controller.NewAssignmentController(s.assignment),
		chat:       controller.NewChatController(s.chat),
		resource:   controller.NewResourceController(s.resource),
		health:     controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Fatal("no se pudo inicializar la base de datos", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("no se pudo inicializar redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	gin.SetMode(cfg.Server.Mode)
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("curso-backend", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("no se pudo inicializar el trazado", zap.Error(err))
		}
		app.tracerShutdown = tp.Shutdown
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	go configwatcher.WatchConfig("configs/config.yaml", cfg, func(newCfg interface{}) {
		if reloaded, ok := newCfg.(*config.Config); ok {
			logger.Log.Info("configuración recargada", zap.String("mode", reloaded.Server.Mode))
		}
	})

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Servidor escuchando en el puerto %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Apagando el servidor...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("El servidor no cerró a tiempo:", err)
	}

	if a.tracerShutdown != nil {
		if err := a.tracerShutdown(ctx); err != nil {
			logger.Log.Error("no se pudo cerrar el proveedor de trazas", zap.Error(err))
		}
	}

	log.Println("Servidor detenido")
}
