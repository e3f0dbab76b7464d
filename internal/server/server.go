package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/agenthands/gcsynth/internal/core"
	"github.com/agenthands/gcsynth/internal/core/model"
	"github.com/agenthands/gcsynth/internal/core/summary"
	"github.com/agenthands/gcsynth/internal/metrics"
	"github.com/agenthands/gcsynth/internal/store"
)

type Server struct {
	Compiler   *core.Compiler
	Store      store.NetworkStore
	Metrics    *metrics.Registry
	Summarizer *summary.Summarizer
	Log        logrus.FieldLogger

	validate *validator.Validate
}

func NewServer(c *core.Compiler, st store.NetworkStore, reg *metrics.Registry, log logrus.FieldLogger) *Server {
	return &Server{
		Compiler:   c,
		Store:      st,
		Metrics:    reg,
		Summarizer: summary.NewSummarizer(nil),
		Log:        log,
		validate:   validator.New(),
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	r.GET("/healthz", s.Health)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.Metrics.GetPrometheusRegistry(), promhttp.HandlerOpts{})))

	v1 := r.Group("/v1")
	v1.POST("/compile", s.Compile)
	v1.GET("/networks/:id", s.GetNetwork)
	v1.DELETE("/networks/:id", s.DeleteNetwork)

	return r
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.Log.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.FullPath(),
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
		}).Debug("request handled")
	}
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type CompileRequest struct {
	Root     string          `json:"root" binding:"required"`
	Document *model.Document `json:"document" binding:"required"`
}

type CompileResponse struct {
	*core.Compilation
	Summary *summary.Report `json:"summary"`
}

func (s *Server) Compile(c *gin.Context) {
	var req CompileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if err := s.validate.Struct(req.Document); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comp, err := s.Compiler.Compile(c.Request.Context(), req.Document, req.Root)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, CompileResponse{
		Compilation: comp,
		Summary:     s.Summarizer.Summarize(comp.Root),
	})
}

func (s *Server) GetNetwork(c *gin.Context) {
	if s.Store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "network store disabled"})
		return
	}

	id := c.Param("id")
	m, err := s.Store.Load(c.Request.Context(), id)
	s.Metrics.RecordStoreOperation("load", err)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		s.Log.WithError(err).WithField("network", id).Error("failed to load network")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load network"})
		return
	}

	c.JSON(http.StatusOK, m)
}

// DeleteNetwork drops a stored network so the next compile regenerates it.
func (s *Server) DeleteNetwork(c *gin.Context) {
	if s.Store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "network store disabled"})
		return
	}

	id := c.Param("id")
	err := s.Store.Delete(c.Request.Context(), id)
	s.Metrics.RecordStoreOperation("delete", err)
	if err != nil {
		s.Log.WithError(err).WithField("network", id).Error("failed to delete network")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete network"})
		return
	}

	c.Status(http.StatusNoContent)
}
