package server

import (
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/deptrace/investigator/internal/config"
	"github.com/deptrace/investigator/internal/index"
	"github.com/deptrace/investigator/internal/investigate"
	"github.com/deptrace/investigator/internal/metrics"
	"github.com/deptrace/investigator/internal/scheduler"
	"github.com/deptrace/investigator/internal/store"
)

type Server struct {
	Investigator *investigate.Investigator
	Registry     *metrics.Registry
}

func NewServer() *Server {
	inv, registry := Bootstrap()
	return &Server{
		Investigator: inv,
		Registry:     registry,
	}
}

// Bootstrap wires the investigator from config and environment. Shared by
// the server and the one-shot CLI.
func Bootstrap() (*investigate.Investigator, *metrics.Registry) {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Env vars override file config.
	if envURI := os.Getenv("GRAPH_URI"); envURI != "" {
		cfg.Graph.URI = envURI
	}
	if envUser := os.Getenv("GRAPH_USER"); envUser != "" {
		cfg.Graph.User = envUser
	}
	if envPass := os.Getenv("GRAPH_PASSWORD"); envPass != "" {
		cfg.Graph.Password = envPass
	}
	if envURL := os.Getenv("SCHEDULER_URL"); envURL != "" {
		cfg.Scheduler.BaseURL = envURL
	}
	if envToken := os.Getenv("SCHEDULER_TOKEN"); envToken != "" {
		cfg.Scheduler.Token = envToken
	}

	if cfg.Graph.URI == "" {
		cfg.Graph.URI = "bolt://localhost:7687"
	}

	graphStore, err := store.NewGraphStore(cfg.Graph.URI, cfg.Graph.User, cfg.Graph.Password)
	if err != nil {
		log.Fatalf("Failed to connect to knowledge graph: %v", err)
	}

	schedulerClient := scheduler.NewClient(cfg.Scheduler.BaseURL, cfg.Scheduler.Token)
	indexClient := index.NewClient(time.Duration(cfg.Index.TimeoutSeconds) * time.Second)
	registry := metrics.NewRegistry()

	inv := investigate.New(graphStore, schedulerClient, indexClient, registry)
	inv.DebugSolver = cfg.DebugSolver()
	inv.DebugRevSolver = cfg.DebugRevSolver()

	return inv, registry
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.POST("/events/unresolved-package", s.UnresolvedPackage)
	r.POST("/events/package-release", s.PackageRelease)
	r.GET("/metrics", s.Metrics)

	return r
}

func (s *Server) UnresolvedPackage(c *gin.Context) {
	var event investigate.UnresolvedPackageEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event"})
		return
	}

	tally, err := s.Investigator.Dispatch(c.Request.Context(), event)
	if err != nil {
		if errors.Is(err, investigate.ErrMissingPackageName) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Failed to dispatch unresolved-package event: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "scheduled": tally})
}

func (s *Server) PackageRelease(c *gin.Context) {
	var event investigate.PackageReleaseEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event"})
		return
	}

	tally, err := s.Investigator.DispatchRelease(c.Request.Context(), event)
	if err != nil {
		if errors.Is(err, investigate.ErrMissingPackageName) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Failed to dispatch package-release event: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "scheduled": tally})
}

func (s *Server) Metrics(c *gin.Context) {
	c.JSON(http.StatusOK, s.Registry.Snapshot())
}
