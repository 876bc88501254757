package main

import (
	"os"

	"quiz-bank-backend/internal/config"
	"quiz-bank-backend/internal/database"
	"quiz-bank-backend/internal/handlers"
	"quiz-bank-backend/internal/middleware"
	"quiz-bank-backend/internal/services"
	"quiz-bank-backend/internal/ws"

	_ "quiz-bank-backend/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Quiz Bank API
// @version         1.0
// @description     Question bank, quiz composition and scoring
// @host            localhost:8080
// @BasePath        /

func main() {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}
	configureLogger(log, cfg)

	db, err := database.Connect(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	if err := database.AutoMigrate(db); err != nil {
		log.WithError(err).Fatal("failed to migrate database")
	}

	hub := ws.NewHub(log)

	questionService := services.NewQuestionService(db)
	scoringService := services.NewScoringService()
	quizService := services.NewQuizService(db, scoringService)

	handlers.RegisterValidators()

	router := handlers.Router{
		Questions: handlers.NewQuestionHandler(questionService, hub),
		Quizzes:   handlers.NewQuizHandler(quizService, hub),
		WS:        handlers.NewWSHandler(hub),
		Health:    handlers.NewHealthHandler(db),
	}

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.RequestLogger(log), gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "Content-Disposition"},
		AllowCredentials: !allowsAnyOrigin(cfg.CORSOrigins),
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.Register(r)

	log.WithField("port", cfg.ServerPort).Info("server starting")
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.WithError(err).Fatal("failed to start server")
	}
}

func configureLogger(log *logrus.Logger, cfg *config.Config) {
	if cfg.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithField("level", cfg.LogLevel).Warn("unknown log level, using info")
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
}

// gin-contrib/cors refuses a wildcard origin together with credentials.
func allowsAnyOrigin(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
