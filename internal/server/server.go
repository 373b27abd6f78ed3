// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the research pipeline over HTTP. Routing and
// schemas are thin; every handler delegates to an injected component.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pdiddy/blueprint-engine/internal/pipeline"
	"github.com/pdiddy/blueprint-engine/internal/research"
	"github.com/pdiddy/blueprint-engine/internal/store"
	"github.com/pdiddy/blueprint-engine/pkg/types"
)

// Interviewer drives the keyword-refinement conversation.
type Interviewer interface {
	Continue(ctx context.Context, conversation []types.ChatMessage) (types.InterviewTurn, error)
}

// ProjectStore persists finished blueprints.
type ProjectStore interface {
	SaveProject(ctx context.Context, req store.SaveProjectRequest) (string, error)
}

// Server holds the injected components behind the HTTP surface.
type Server struct {
	cfg         types.ServerConfig
	searcher    research.Searcher
	decomposer  pipeline.Decomposer
	fetcher     pipeline.ContentFetcher
	extractor   pipeline.InsightExtractor
	narrator    pipeline.ReportSynthesizer
	editor      pipeline.ScriptCrafter
	runner      *pipeline.Runner
	interviewer Interviewer
	store       ProjectStore
	log         *zap.Logger
}

// Options bundles the collaborators for New.
type Options struct {
	Config      types.ServerConfig
	Searcher    research.Searcher
	Decomposer  pipeline.Decomposer
	Fetcher     pipeline.ContentFetcher
	Extractor   pipeline.InsightExtractor
	Narrator    pipeline.ReportSynthesizer
	Editor      pipeline.ScriptCrafter
	Runner      *pipeline.Runner
	Interviewer Interviewer
	Store       ProjectStore
	Log         *zap.Logger
}

// New builds a Server. The store may be nil when persistence is not
// configured; the save endpoint then reports that explicitly.
func New(opts Options) *Server {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		cfg:         opts.Config,
		searcher:    opts.Searcher,
		decomposer:  opts.Decomposer,
		fetcher:     opts.Fetcher,
		extractor:   opts.Extractor,
		narrator:    opts.Narrator,
		editor:      opts.Editor,
		runner:      opts.Runner,
		interviewer: opts.Interviewer,
		store:       opts.Store,
		log:         log,
	}
}

// Router assembles the gin engine with CORS and request logging.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(s.requestLogger())

	origins := []string{
		"http://localhost:3000",
		"http://localhost:5173",
	}
	if s.cfg.FrontendURL != "" {
		origins = append(origins, s.cfg.FrontendURL)
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/", s.handleRoot)
	router.GET("/health", s.handleHealth)
	router.POST("/interview/continue", s.handleInterviewContinue)

	api := router.Group("/api")
	{
		api.POST("/search", s.handleSearch)
		api.POST("/search-fallback", s.handleSearchFallback)
		api.POST("/decompose", s.handleDecompose)
		api.POST("/multi-search", s.handleMultiSearch)
		api.POST("/fetch-content", s.handleFetchContent)
		api.POST("/analyze", s.handleAnalyze)
		api.POST("/generate-report", s.handleGenerateReport)
		api.POST("/generate-script", s.handleGenerateScript)
		api.POST("/deep-research/start", s.handleDeepResearch)
		api.POST("/save-project", s.handleSaveProject)
	}
	return router
}

// Run serves until the listener fails.
func (s *Server) Run() error {
	addr := s.cfg.Addr
	if addr == "" {
		addr = ":8000"
	}
	s.log.Info("http server listening", zap.String("addr", addr))
	return s.Router().Run(addr)
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("elapsed", time.Since(start)))
	}
}

func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "blueprint-engine API",
		"status":  "running",
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
