package server

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/df07/go-scene-generator/internal/log"
	"github.com/df07/go-scene-generator/pkg/core"
	"github.com/df07/go-scene-generator/pkg/document"
	"github.com/df07/go-scene-generator/pkg/loaders"
	"github.com/df07/go-scene-generator/pkg/scene"
)

const (
	// MaxSpheres caps the sphere count a single request may ask for
	MaxSpheres = 5000

	// MaxAttemptsLimit caps the per-sphere placement attempts a request may ask for
	MaxAttemptsLimit = 100000

	// traceSize is the number of placement messages kept per request
	traceSize = 256

	SeedHeader      = "X-Scene-Seed"
	RequestIDHeader = "X-Request-ID"
)

// Server serves generated scene documents over HTTP
type Server struct {
	port   int
	router *gin.Engine
	logger *log.Logger
}

// NewServer creates a new web server
func NewServer(port int, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.NewNopLogger()
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:    []string{"Content-Type"},
		ExposeHeaders:   []string{SeedHeader, RequestIDHeader},
		MaxAge:          12 * time.Hour,
	}))

	s := &Server{port: port, router: router, logger: logger}
	s.setupRoutes()
	return s
}

// SceneRequest holds the generation options of a scene request. GET requests
// bind the query string; POST requests bind a JSON body, which may also carry
// placement and camera overrides.
type SceneRequest struct {
	Scene       string                    `form:"scene" json:"scene"`
	Spheres     *int                      `form:"spheres" json:"spheres" binding:"omitempty,gte=0"`
	Seed        uint64                    `form:"seed" json:"seed"`
	MaxAttempts *int                      `form:"max_attempts" json:"max_attempts" binding:"omitempty,gte=1"`
	Format      string                    `form:"format" json:"format" binding:"omitempty,oneof=json yaml yml toml"`
	Pretty      bool                      `form:"pretty" json:"pretty"`
	Placement   *loaders.PlacementSection `form:"-" json:"placement"`
	Camera      *loaders.CameraSection    `form:"-" json:"camera"`
}

// PlacementFailure is the body of a 422 response
type PlacementFailure struct {
	Error    string           `json:"error"`
	Sphere   int              `json:"sphere"`
	Attempts int              `json:"attempts"`
	Placed   int              `json:"placed"`
	Seed     uint64           `json:"seed"`
	Trace    []ConsoleMessage `json:"trace"`
}

// Handler returns the HTTP handler, for embedding and tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Infow("starting web server", "url", "http://localhost"+addr)
	return s.router.Run(addr)
}

func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	api.GET("/health", s.handleHealth)
	api.GET("/presets", s.handlePresets)
	api.GET("/scene", s.handleScene)
	api.POST("/scene", s.handleScene)
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handlePresets lists the scene presets with their placement settings
func (s *Server) handlePresets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"default": scene.DefaultPreset,
		"presets": scene.ListPresets(),
	})
}

// handleScene generates a scene and returns it in the requested format
func (s *Server) handleScene(c *gin.Context) {
	req, err := bindSceneRequest(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cfg := req.config()
	placement, camera, format, err := cfg.Resolve()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if placement.Spheres > MaxSpheres {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("at most %d spheres per request", MaxSpheres)})
		return
	}
	if placement.MaxAttempts > MaxAttemptsLimit {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("at most %d placement attempts per sphere", MaxAttemptsLimit)})
		return
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = core.RandomSeed()
	}
	requestID := uuid.NewString()
	c.Header(RequestIDHeader, requestID)
	c.Header(SeedHeader, strconv.FormatUint(seed, 10))

	trace := make(chan ConsoleMessage, traceSize)
	logger := NewWebLogger(requestID, s.logger, trace)

	generated, stats, err := scene.NewSeededPopulator(placement, seed, logger).Populate(camera)
	if err != nil {
		var placementErr *scene.PlacementError
		if errors.As(err, &placementErr) {
			s.logger.Warnw("placement exhausted", "request", requestID, "seed", seed,
				"sphere", placementErr.Index, "attempts", placementErr.Attempts)
			c.JSON(http.StatusUnprocessableEntity, PlacementFailure{
				Error:    placementErr.Error(),
				Sphere:   placementErr.Index,
				Attempts: placementErr.Attempts,
				Placed:   placementErr.Placed,
				Seed:     seed,
				Trace:    drainConsole(trace),
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var buf bytes.Buffer
	if err := document.Encode(&buf, document.FromScene(generated), format, cfg.Pretty); err != nil {
		s.logger.Errorw("failed to encode scene", "request", requestID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to encode scene"})
		return
	}

	s.logger.Infow("scene generated", "request", requestID, "seed", seed,
		"spheres", len(generated.Spheres), "rejections", stats.Rejections)
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}

func bindSceneRequest(c *gin.Context) (*SceneRequest, error) {
	var req SceneRequest
	if c.Request.Method == http.MethodPost {
		// An empty body means all defaults
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	} else if err := c.ShouldBindQuery(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// config converts the request into a loader config; top-level fields win over the placement section
func (r *SceneRequest) config() *loaders.Config {
	cfg := &loaders.Config{
		Scene:  r.Scene,
		Seed:   r.Seed,
		Format: r.Format,
		Pretty: r.Pretty,
	}
	if r.Placement != nil {
		cfg.Placement = *r.Placement
	}
	if r.Camera != nil {
		cfg.Camera = *r.Camera
	}
	if r.Spheres != nil {
		cfg.Placement.Spheres = r.Spheres
	}
	if r.MaxAttempts != nil {
		cfg.Placement.MaxAttempts = r.MaxAttempts
	}
	return cfg
}

// requestLogger logs each request through zap
func requestLogger(logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Infow("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}
