package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	_ "github.com/johnquangdev/meeting-summarizer/docs"
	"github.com/johnquangdev/meeting-summarizer/internal/adapter/handler"
	"github.com/johnquangdev/meeting-summarizer/internal/usecase/share"
	"github.com/johnquangdev/meeting-summarizer/internal/usecase/summary"
	pkgai "github.com/johnquangdev/meeting-summarizer/pkg/ai"
	"github.com/johnquangdev/meeting-summarizer/pkg/config"
	"github.com/johnquangdev/meeting-summarizer/pkg/logger"
	"github.com/johnquangdev/meeting-summarizer/pkg/mailer"
	pkgvalidator "github.com/johnquangdev/meeting-summarizer/pkg/validator"
)

// @title           Meeting Summarizer API
// @version         1.0
// @description     Summarizes meeting transcripts with a language model and shares the summaries by email

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath  /api

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := logger.New(cfg.IsDevelopment(), cfg.Log.Level)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zl.Sync()

	for _, w := range cfg.Warnings() {
		zl.Warn("config.warning", zap.String("detail", w))
	}

	// Summarization: chat client behind the llms.Model interface
	chatClient := pkgai.NewChatClient(cfg.LLM)
	summarizer := summary.NewService(chatClient, cfg.LLM, zl)

	// Sharing: SMTP transport
	sender := mailer.NewSMTPSender(cfg.Mail)
	dispatcher := share.NewService(sender, share.Options{Timeout: cfg.Mail.Timeout}, zl)

	v := pkgvalidator.New()
	summaryHandler := handler.NewSummaryHandler(summarizer, dispatcher, share.NewAdmission(v), zl)

	e := handler.NewServer(cfg, summaryHandler, zl)

	// Start server
	go func() {
		addr := cfg.Addr()
		zl.Info("server.start",
			zap.String("addr", addr),
			zap.String("environment", cfg.Server.Environment),
			zap.String("model", cfg.LLM.Model),
		)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			zl.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	zl.Info("server.shutdown")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		zl.Fatal("server forced to shutdown", zap.Error(err))
	}

	zl.Info("server.stopped")
}
