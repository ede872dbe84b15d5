package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SYEDZUHAIR786-GITH/ATS-checker/config"
	_ "github.com/SYEDZUHAIR786-GITH/ATS-checker/docs" // Important for Swagger
	v1 "github.com/SYEDZUHAIR786-GITH/ATS-checker/internal/delivery/http/v1"
	"github.com/SYEDZUHAIR786-GITH/ATS-checker/internal/usecase"
	"github.com/SYEDZUHAIR786-GITH/ATS-checker/internal/vocabulary"
	"github.com/SYEDZUHAIR786-GITH/ATS-checker/pkg/email"
	"github.com/SYEDZUHAIR786-GITH/ATS-checker/pkg/logger"

	"github.com/go-playground/validator/v10"
)

// @title           ATS Resume Checker API
// @version         1.0
// @description     Stateless API that scores how well a resume matches a job description.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting ATS checker", "port", cfg.Port)

	// 3. Load Skill Vocabulary (read-only after this point)
	var vocab *vocabulary.Vocabulary
	if cfg.VocabularyFile != "" {
		vocab, err = vocabulary.LoadFile(cfg.VocabularyFile)
	} else {
		vocab, err = vocabulary.Default()
	}
	if err != nil {
		logger.Log.Error("Failed to load skill vocabulary", "error", err)
		os.Exit(1)
	}
	logger.Log.Info("Skill vocabulary loaded", "terms", vocab.Size())

	// 4. Setup Email Service
	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - emailed reports will be unavailable")
	}

	// 5. Setup UseCases
	validate := validator.New()
	analyzerUC := usecase.NewAnalyzerUsecase(vocab, emailService, validate)
	vocabularyUC := usecase.NewVocabularyUsecase(vocab)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AnalyzerUC:   analyzerUC,
		VocabularyUC: vocabularyUC,
		Config:       cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
