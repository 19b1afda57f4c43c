package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/png"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Config holds the web server settings
type Config struct {
	Port      int
	SceneDir  string // directory scanned for YAML scene files
	StaticDir string // directory served at "/"
	MaxWidth  int
	MaxHeight int
	TileSize  int // default tile size for streamed renders
}

// DefaultConfig returns the settings used by the web binary
func DefaultConfig() Config {
	return Config{
		Port:      8080,
		SceneDir:  "../scenes",
		StaticDir: "static",
		MaxWidth:  2000,
		MaxHeight: 2000,
		TileSize:  32,
	}
}

// Server handles web requests for the raytracer
type Server struct {
	config Config
	logger core.Logger
}

// NewServer creates a new web server
func NewServer(config Config) *Server {
	return &Server{config: config, logger: renderer.NewDefaultLogger()}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene    string `json:"scene"`    // Scene ID as listed by /api/scenes
	Width    int    `json:"width"`    // Image width, 0 keeps the scene's camera
	Height   int    `json:"height"`   // Image height, 0 keeps the scene's camera
	MaxDepth int    `json:"maxDepth"` // Reflection/refraction budget
	TileSize int    `json:"tileSize"` // Tile edge in pixels
}

// Handler returns the routes served by the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Serve static files
	mux.Handle("/", http.FileServer(http.Dir(s.config.StaticDir)))

	// API endpoints
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	mux.HandleFunc("/ws/render", s.handleStream)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.config.Port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes and the scene files in SceneDir
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	scenes, err := scene.ListAllScenes(s.config.SceneDir, s.logger)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, scenes)
}

// handleRender renders the whole image and replies with a PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request: " + err.Error()})
		return
	}

	sceneObj, err := s.loadScene(req)
	if err != nil {
		writeJSON(w, sceneErrorStatus(err), map[string]string{"error": err.Error()})
		return
	}

	raytracer := renderer.NewRaytracer(s.renderConfig(req), s.logger)
	camera := renderer.NewCameraFromConfig(sceneObj.CameraConfig)
	img, _, err := raytracer.RenderTiles(r.Context(), camera, sceneObj.World, nil)
	if err != nil {
		// client went away
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if err := img.WritePNG(w); err != nil {
		log.Printf("Error writing PNG: %v", err)
	}
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: query.Get("scene")}
	if req.Scene == "" {
		req.Scene = "default"
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 0, 1, s.config.MaxWidth); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 0, 1, s.config.MaxHeight); err != nil {
		return nil, err
	}
	if req.MaxDepth, err = parseIntParam(query, "depth", renderer.DefaultConfig().MaxDepth, 0, 32); err != nil {
		return nil, err
	}
	if req.TileSize, err = parseIntParam(query, "tile", s.config.TileSize, 1, 512); err != nil {
		return nil, err
	}
	return req, nil
}

// loadScene resolves the requested scene and applies the requested image size
func (s *Server) loadScene(req *RenderRequest) (*scene.Scene, error) {
	sceneObj, err := scene.LoadScene(req.Scene, s.config.SceneDir)
	if err != nil {
		return nil, err
	}
	sceneObj.CameraConfig = sceneObj.CameraConfig.WithSize(req.Width, req.Height)
	return sceneObj, nil
}

func (s *Server) renderConfig(req *RenderRequest) renderer.Config {
	return renderer.Config{
		TileSize:   req.TileSize,
		MaxDepth:   req.MaxDepth,
		NumWorkers: 0, // Auto-detect
	}
}

// sceneErrorStatus maps scene loading failures to an HTTP status
func sceneErrorStatus(err error) int {
	if errors.Is(err, scene.ErrUnknownScene) {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// imageToBase64PNG converts an image to base64-encoded PNG
func imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}
