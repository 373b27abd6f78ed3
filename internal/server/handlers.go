// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pdiddy/blueprint-engine/internal/pipeline"
	"github.com/pdiddy/blueprint-engine/internal/research"
	"github.com/pdiddy/blueprint-engine/internal/store"
	"github.com/pdiddy/blueprint-engine/pkg/types"
)

// fail maps an error to the HTTP surface: missing papers are 404,
// everything else 500, always with a message field.
func fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, pipeline.ErrNoPapers) {
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{"message": err.Error()})
}

// badRequest rejects an unparseable body.
func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
}

type searchRequest struct {
	Query string `json:"query" binding:"required"`
	Limit int    `json:"limit"`
}

func (s *Server) handleSearch(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	papers, err := s.searcher.Search(c.Request.Context(), req.Query, req.Limit)
	if err != nil {
		fail(c, err)
		return
	}
	if papers == nil {
		papers = []types.Paper{}
	}
	c.JSON(http.StatusOK, gin.H{"papers": papers, "total": len(papers)})
}

func (s *Server) handleSearchFallback(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	result, err := research.SearchWithFallback(c.Request.Context(), s.searcher, req.Query, req.Limit, s.log)
	if err != nil {
		fail(c, err)
		return
	}
	if result.Papers == nil {
		result.Papers = []types.Paper{}
	}
	c.JSON(http.StatusOK, result)
}

type decomposeRequest struct {
	Topic    string `json:"topic" binding:"required"`
	Keywords string `json:"keywords"`
}

func (s *Server) handleDecompose(c *gin.Context) {
	var req decomposeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	keywords := req.Keywords
	if keywords == "" {
		keywords = req.Topic
	}
	c.JSON(http.StatusOK, s.decomposer.Decompose(c.Request.Context(), req.Topic, keywords))
}

type multiSearchRequest struct {
	SubQueries    []string `json:"subQueries" binding:"required"`
	LimitPerQuery int      `json:"limitPerQuery"`
}

func (s *Server) handleMultiSearch(c *gin.Context) {
	var req multiSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	papers := research.MultiSearch(c.Request.Context(), s.searcher, req.SubQueries, req.LimitPerQuery, s.log)
	if papers == nil {
		papers = []types.Paper{}
	}
	c.JSON(http.StatusOK, gin.H{"papers": papers, "total": len(papers)})
}

type fetchContentRequest struct {
	Papers    []types.Paper `json:"papers" binding:"required"`
	MaxPapers int           `json:"maxPapers"`
}

func (s *Server) handleFetchContent(c *gin.Context) {
	var req fetchContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	enriched := s.fetcher.FetchAll(c.Request.Context(), req.Papers, req.MaxPapers)
	c.JSON(http.StatusOK, gin.H{"papers": enriched})
}

type analyzeRequest struct {
	Papers []types.Paper `json:"papers" binding:"required"`
	Topic  string        `json:"topic" binding:"required"`
}

func (s *Server) handleAnalyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	insights, err := s.extractor.ExtractInsights(c.Request.Context(), req.Papers, req.Topic)
	if err != nil {
		fail(c, err)
		return
	}
	if insights == nil {
		insights = []types.Insight{}
	}
	c.JSON(http.StatusOK, gin.H{"insights": insights})
}

type generateReportRequest struct {
	Topic    string                `json:"topic" binding:"required"`
	Papers   []types.EnrichedPaper `json:"papers" binding:"required"`
	Insights []types.Insight       `json:"insights"`
}

func (s *Server) handleGenerateReport(c *gin.Context) {
	var req generateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	report, err := s.narrator.SynthesizeReport(c.Request.Context(), req.Topic, req.Papers, req.Insights)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"report": report})
}

type generateScriptRequest struct {
	Topic    string                `json:"topic" binding:"required"`
	Report   string                `json:"report" binding:"required"`
	Papers   []types.EnrichedPaper `json:"papers"`
	Insights []types.Insight       `json:"insights"`
}

func (s *Server) handleGenerateScript(c *gin.Context) {
	var req generateScriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	refs := pipeline.BuildReferences(req.Papers)
	narrative, err := s.editor.CraftScript(c.Request.Context(), req.Topic, req.Report, refs)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, types.ContentBlueprint{
		Insights:   req.Insights,
		Narrative:  narrative,
		References: refs,
	})
}

type deepResearchRequest struct {
	Topic     string `json:"topic" binding:"required"`
	Keywords  string `json:"keywords"`
	DeepMode  bool   `json:"deepMode"`
	MaxPapers int    `json:"maxPapers"`
}

func (s *Server) handleDeepResearch(c *gin.Context) {
	var req deepResearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	result, err := s.runner.Run(c.Request.Context(), pipeline.Request{
		Topic:     req.Topic,
		Keywords:  req.Keywords,
		DeepMode:  req.DeepMode,
		MaxPapers: req.MaxPapers,
	})
	if err != nil {
		s.log.Warn("pipeline run failed", zap.Error(err))
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type interviewRequest struct {
	Conversation []types.ChatMessage `json:"conversation" binding:"required"`
}

func (s *Server) handleInterviewContinue(c *gin.Context) {
	var req interviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	turn, err := s.interviewer.Continue(c.Request.Context(), req.Conversation)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, turn)
}

type saveProjectRequest struct {
	UserID     string          `json:"user_id" binding:"required"`
	Title      string          `json:"title" binding:"required"`
	QueryTopic string          `json:"query_topic"`
	Insights   []types.Insight `json:"key_insights"`
	Narrative  types.Narrative `json:"narrative"`
	Papers     []types.Paper   `json:"papers"`
}

func (s *Server) handleSaveProject(c *gin.Context) {
	if s.store == nil {
		fail(c, errors.New("document store not configured"))
		return
	}
	var req saveProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	id, err := s.store.SaveProject(c.Request.Context(), store.SaveProjectRequest{
		UserID:     req.UserID,
		Title:      req.Title,
		QueryTopic: req.QueryTopic,
		Insights:   req.Insights,
		Narrative:  req.Narrative,
		Papers:     req.Papers,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"project_id": id,
		"message":    "Project saved successfully",
	})
}
