package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/yourusername/studyquiz-api/internal/config"
	"github.com/yourusername/studyquiz-api/internal/handler"
	"github.com/yourusername/studyquiz-api/internal/middleware"
	pgRepo "github.com/yourusername/studyquiz-api/internal/repository/postgres"
	redisRepo "github.com/yourusername/studyquiz-api/internal/repository/redis"
	"github.com/yourusername/studyquiz-api/internal/service"
	"github.com/yourusername/studyquiz-api/internal/service/quizgen"
	"github.com/yourusername/studyquiz-api/pkg/auth"
	"github.com/yourusername/studyquiz-api/pkg/database"
)

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к PostgreSQL
	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	// Применяем миграции
	if err := database.MigrateDB(db); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к Redis с использованием унифицированной конфигурации
	redisClient, err := database.NewUniversalRedisClient(cfg.Redis)
	if err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}
	log.Println("Successfully connected to Redis")

	// Инициализируем репозитории
	userRepo := pgRepo.NewUserRepo(db)
	courseRepo := pgRepo.NewCourseRepo(db)
	questionRepo := pgRepo.NewQuestionRepo(db)
	sessionRepo := pgRepo.NewSessionRepo(db)
	resultRepo := pgRepo.NewResultRepo(db)

	cacheRepo, err := redisRepo.NewCacheRepo(redisClient)
	if err != nil {
		log.Printf("Failed to initialize CacheRepo: %v", err)
		os.Exit(1)
	}

	// Инициализируем JWT сервис
	jwtService, err := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpirationHrs)
	if err != nil {
		log.Printf("Failed to initialize JWTService: %v", err)
		os.Exit(1)
	}

	// --- Инициализация конфигурации политики генерации квизов ---
	quizConfig := quizgen.DefaultConfig()
	if cfg.Quiz.NewQuestionLimit > 0 {
		quizConfig.NewQuestionLimit = cfg.Quiz.NewQuestionLimit
	}
	if cfg.Quiz.ReviewQuestionLimit > 0 {
		quizConfig.ReviewQuestionLimit = cfg.Quiz.ReviewQuestionLimit
	}
	if cfg.Quiz.HistoryWindow > 0 {
		quizConfig.HistoryWindow = cfg.Quiz.HistoryWindow
	}
	if cfg.Quiz.HistoryLimit > 0 {
		quizConfig.HistoryLimit = cfg.Quiz.HistoryLimit
	}
	if cfg.Quiz.ChapterCacheTTLMin > 0 {
		quizConfig.ChapterCacheTTL = time.Duration(cfg.Quiz.ChapterCacheTTLMin) * time.Minute
	}

	quizDeps := &quizgen.Dependencies{
		CourseRepo:   courseRepo,
		QuestionRepo: questionRepo,
		SessionRepo:  sessionRepo,
		ResultRepo:   resultRepo,
		CacheRepo:    cacheRepo,
		Config:       quizConfig,
	}

	// Инициализируем сервисы
	authService := service.NewAuthService(userRepo, jwtService)
	courseService := service.NewCourseService(courseRepo, questionRepo, cacheRepo)
	quizService := service.NewQuizService(quizDeps, quizgen.NewTimeSeededShuffler())

	// Инициализируем обработчики
	authHandler := handler.NewAuthHandler(authService)
	courseHandler := handler.NewCourseHandler(courseService)
	quizHandler := handler.NewQuizHandler(quizService)

	// Инициализируем middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService)
	rateLimiter := middleware.NewRateLimiter(redisClient)

	// Инициализируем роутер Gin
	router := gin.Default()

	isProduction := gin.Mode() == gin.ReleaseMode

	// Настройка доверенных прокси для корректной работы c.ClientIP()
	// В production (GIN_MODE=release): не доверяем прокси (защита от IP spoofing)
	// В development: доверяем localhost
	if isProduction {
		// Production: не доверять прокси-заголовкам
		// Если используете load balancer, замените nil на []string{"IP_БАЛАНСИРОВЩИКА"}
		if err := router.SetTrustedProxies(nil); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	} else {
		// Development: доверяем localhost
		if err := router.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	}

	// Настройка CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Настраиваем маршруты API
	api := router.Group("/api")
	{
		// Аутентификация
		authGroup := api.Group("/auth")
		authGroup.Use(rateLimiter.Limit(middleware.StrictAuthRateLimitConfig()))
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}

		// Пользователи
		users := api.Group("/users")
		users.Use(authMiddleware.RequireAuth())
		{
			users.GET("/me", authHandler.GetMe)
		}

		// Курсы
		courses := api.Group("/courses")
		courses.Use(authMiddleware.RequireAuth())
		{
			courses.POST("", courseHandler.CreateCourse)
			courses.GET("", courseHandler.ListCourses)

			// Группа маршрутов, требующих courseID
			courseWithID := courses.Group("/:id")
			courseWithID.Use(middleware.ExtractUintParam("id", "courseID"))
			{
				courseWithID.GET("/chapters", courseHandler.GetChapters)
				courseWithID.POST("/chapters", courseHandler.AddChapters)

				courseWithID.POST("/quiz/generate",
					rateLimiter.Limit(middleware.GenerateRateLimitConfig()),
					quizHandler.GenerateQuiz)

				courseWithID.GET("/history", quizHandler.GetHistory)
				courseWithID.GET("/history/export", quizHandler.ExportHistory)
			}
		}

		// Главы (загрузка вопросов)
		chapters := api.Group("/chapters")
		chapters.Use(authMiddleware.RequireAuth())
		{
			chapterWithID := chapters.Group("/:id")
			chapterWithID.Use(middleware.ExtractUintParam("id", "chapterID"))
			{
				chapterWithID.POST("/questions", courseHandler.UploadQuestions)
			}
		}

		// Результаты квизов
		quiz := api.Group("/quiz")
		quiz.Use(authMiddleware.RequireAuth())
		{
			quiz.POST("/results", quizHandler.SubmitResult)
		}
	}

	// Настраиваем HTTP сервер с тайм-аутами для защиты от slow client attacks
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
		}
	}()

	log.Printf("Server started on port %s", cfg.Server.Port)

	// Ожидаем сигнал остановки
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Создаем контекст с таймаутом для graceful shutdown сервера
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		os.Exit(1)
	}

	log.Println("Server exited properly")
}
