package server

import (
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/churnlens/churnlens/internal/config"
	"github.com/churnlens/churnlens/internal/core"
	"github.com/churnlens/churnlens/internal/ingest"
	"github.com/churnlens/churnlens/internal/report"
)

type Server struct {
	Config   *config.Config
	Analyzer *core.Analyzer
}

func NewServer() *Server {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Printf("Warning: could not load %s: %v. Using defaults", cfgPath, err)
		cfg = config.Default()
	}

	// Env vars win over file values.
	if envPath := os.Getenv("DATASET_PATH"); envPath != "" {
		cfg.Dataset.Path = envPath
	}
	if envPort := os.Getenv("PORT"); envPort != "" {
		cfg.Server.Port = envPort
	}

	return &Server{
		Config:   cfg,
		Analyzer: core.NewAnalyzer(cfg.Analysis.NeighborThreshold, cfg.Analysis.CentralityMultiplier),
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", s.Health)
	r.POST("/analyze", s.Analyze)

	return r
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type AnalyzeRequest struct {
	DatasetPath string `json:"dataset_path"`
}

// Analyze ingests the dataset (request path overrides the configured one),
// runs the pipeline, and returns the grouped results plus the rendered text
// report.
func (s *Server) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	path := req.DatasetPath
	if path == "" {
		path = s.Config.Dataset.Path
	}

	reader := ingest.NewReader()
	reader.RecordLimit = s.Config.Dataset.RecordLimit
	reader.IncludeCreditFields = s.Config.Dataset.IncludeCreditFields

	customers, err := reader.ReadFile(path)
	if err != nil {
		log.Printf("Failed to read dataset: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read dataset"})
		return
	}

	result := s.Analyzer.Run(customers)
	for i := range result.Groups {
		report.SortCategories(result.Groups[i].Categories)
	}

	var text strings.Builder
	report.Render(&text, result)

	c.JSON(http.StatusOK, gin.H{
		"run_id":   result.RunID,
		"groups":   result.Groups,
		"segments": result.Segments,
		"report":   text.String(),
	})
}
