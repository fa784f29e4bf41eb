// Package server поднимает HTTP API поиска дубликатов названий компаний.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"dedupserver/internal/config"
	"dedupserver/normalization"
	"dedupserver/server/middleware"
)

// Server HTTP сервер поиска дубликатов
type Server struct {
	cfg        *config.Config
	logger     *slog.Logger
	normalizer *normalization.NameNormalizer
	clusterer  *normalization.DuplicateClusterer
	exporter   *normalization.GroupExporter
	httpServer *http.Server
}

// New создает сервер с зависимостями, собранными из конфигурации
func New(cfg *config.Config) *Server {
	logger := slog.Default().With("component", "server")

	s := &Server{
		cfg:        cfg,
		logger:     logger,
		normalizer: normalization.NewNameNormalizer(cfg.LegalFormTokens),
		clusterer:  normalization.NewDuplicateClustererWithLengthGap(cfg.SimilarityThreshold, cfg.MaxLengthGap),
		exporter:   normalization.NewGroupExporter(),
	}

	s.httpServer = &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s.buildRouter(),
	}

	return s
}

// buildRouter собирает gin-роутер с цепочкой middleware и маршрутами API
func (s *Server) buildRouter() *gin.Engine {
	router := gin.New()

	router.Use(middleware.GinRequestIDMiddleware())
	router.Use(middleware.GinRecoveryMiddleware(s.logger))
	router.Use(middleware.GinLoggerMiddleware(s.logger))
	router.Use(middleware.GinCORSMiddleware())
	router.Use(middleware.GinGzipMiddleware())
	router.Use(middleware.GinRateLimitMiddleware(s.cfg.RateLimitPerSec, s.cfg.RateLimitBurst))

	api := router.Group("/api")
	{
		api.GET("/health", s.handleHealth)
		api.POST("/normalize", s.handleNormalize)
		api.POST("/duplicates/analyze", s.handleAnalyze)
		api.POST("/duplicates/export", s.handleExport)
	}

	return router
}

// Run запускает сервер и блокируется до отмены контекста, после чего
// выполняет graceful shutdown.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("Starting HTTP server", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server failed: %w", err)
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	return nil
}
