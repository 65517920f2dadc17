package ui

import (
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"sync"

	"github.com/gin-gonic/gin"

	"sheetlens/domain/core"
	"sheetlens/domain/profile"
	"sheetlens/domain/table"
	"sheetlens/internal/config"
	"sheetlens/ports"
)

// Server is the SheetLens web server: ingestion, browsing, statistics and
// chart endpoints over the dataset catalog.
type Server struct {
	router     *gin.Engine
	config     *config.Config
	store      ports.CatalogStore
	classifier profile.Classifier
	templates  *template.Template
	files      fs.FS

	// Decoded row cache; entries are re-read from disk on a miss
	rowsCache map[core.DatasetID]*table.Dataset
	cacheMu   sync.RWMutex
}

// NewServer creates a new web server instance. files holds the embedded
// templates/ directory and guide.md.
func NewServer(cfg *config.Config, store ports.CatalogStore, files fs.FS) (*Server, error) {
	gin.SetMode(cfg.Server.GinMode)

	var classifier profile.Classifier
	if cfg.Analysis.FullScanClassify {
		classifier = profile.NewFullScanClassifier()
	} else {
		classifier = profile.NewQuickClassifier(cfg.Analysis.SampleSize)
	}

	funcs := template.FuncMap{
		"pct": func(rate float64) float64 { return rate * 100 },
	}
	templates, err := template.New("").Funcs(funcs).ParseFS(files, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	s := &Server{
		router:     gin.Default(),
		config:     cfg,
		store:      store,
		classifier: classifier,
		templates:  templates,
		files:      files,
		rowsCache:  make(map[core.DatasetID]*table.Dataset),
	}
	s.router.SetHTMLTemplate(templates)
	s.router.MaxMultipartMemory = cfg.Server.MaxUploadMB << 20
	s.setupRoutes()
	return s, nil
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleIndex)
	s.router.GET("/guide", s.handleGuide)

	api := s.router.Group("/api")
	{
		api.POST("/datasets/upload", s.handleDatasetUpload)
		api.GET("/datasets", s.handleListDatasets)
		api.GET("/datasets/:id", s.handleGetDataset)
		api.GET("/datasets/:id/rows", s.handleDatasetRows)
		api.GET("/datasets/:id/stats", s.handleColumnStats)
		api.GET("/datasets/:id/chart", s.handleChart)
		api.DELETE("/datasets/:id", s.handleDeleteDataset)
	}
}

// Run starts the HTTP server on the configured port
func (s *Server) Run() error {
	addr := ":" + s.config.Server.Port
	log.Printf("[Server] SheetLens listening on %s", addr)
	return s.router.Run(addr)
}
