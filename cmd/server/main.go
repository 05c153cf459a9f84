package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"ai-interviewer/internal/config"
	"ai-interviewer/internal/domain/fiber/handler"
	"ai-interviewer/internal/logger"
	"ai-interviewer/internal/middleware"
	"ai-interviewer/internal/model"
	"ai-interviewer/internal/repository"
	"ai-interviewer/internal/service"
	"ai-interviewer/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	ctx := context.Background()
	if err := godotenv.Load(); err != nil {
		logger.L().Info("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Status code defaults to 500
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}
			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}
			return c.Status(code).JSON(fiber.Map{"error": message})
		},
	})
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.Env == "production"
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	db := ConnectDB()

	userRepo := repository.NewUserRepository(db)
	cvRepo := repository.NewCVRepository(db)
	topicRepo := repository.NewTopicRepository(db)
	interviewRepo := repository.NewInterviewRepository(db)
	reportRepo := repository.NewReportRepository(db)

	ai, embedder := buildAIProvider(ctx)
	email := service.NewSMTPEmailService()

	userUC := usecase.NewUserUsecase(userRepo)
	cvUC := usecase.NewCVUsecase(cvRepo, userRepo, embedder)
	interviewUC := usecase.NewInterviewUsecase(
		interviewRepo, userRepo, cvRepo, reportRepo,
		usecase.NewTopicResolver(topicRepo), ai, email,
	)

	handler.NewUserHandler(userUC).RegisterRoutes(app)
	handler.NewCVHandler(cvUC).RegisterRoutes(app)
	handler.NewInterviewHandler(interviewUC).RegisterRoutes(app)

	logger.L().Infof("Server running on %s", appConfig.Port)
	if err := app.Listen(appConfig.Port); err != nil {
		logger.L().Fatal(err)
	}
}

// buildAIProvider picks the backend from AI_PROVIDER. Gemini is the default
// and the only one with embedding support; OpenRouter covers environments
// without a Gemini key.
func buildAIProvider(ctx context.Context) (service.AIServiceInterface, service.EmbeddingServiceInterface) {
	if os.Getenv("AI_PROVIDER") == "openrouter" {
		return service.NewOpenRouterService(), nil
	}
	gemini, err := service.NewGeminiService(ctx)
	if err != nil {
		logger.L().Fatal(err)
	}
	return gemini, gemini
}

func ConnectDB() *gorm.DB {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		dbConfig.Host,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Name,
		dbConfig.Port,
		dbConfig.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.L().Fatalf("Could not connect to database: %v", err)
	}
	pgDB, err := db.DB()
	if err != nil {
		logger.L().Fatalf("Could not get database instance: %v", err)
	}
	if appConfig.Env != "production" {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(200)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	// cv_embeddings needs the pgvector extension before AutoMigrate sees the
	// vector column type.
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		logger.L().Warnf("could not ensure pgvector extension: %v", err)
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.CV{},
		&model.Topic{},
		&model.Interview{},
		&model.Question{},
		&model.Answer{},
		&model.Report{},
		&model.CVEmbedding{},
	)
	if err != nil {
		logger.L().Fatalf("migration failed: %v", err)
	}

	if err := os.MkdirAll(config.LoadStorageConfig().BaseDir, 0o755); err != nil {
		logger.L().Fatalf("could not create storage dir: %v", err)
	}

	return db
}
