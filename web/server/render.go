package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/df07/go-whitted-raytracer/pkg/canvas"
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

const (
	writeWait    = 10 * time.Second
	pingInterval = 30 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// TileUpdate carries one finished tile
type TileUpdate struct {
	X          int    `json:"x"`
	Y          int    `json:"y"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	ImageData  string `json:"imageData"`  // Base64 encoded PNG of just this tile
	TileNumber int    `json:"tileNumber"` // Tiles finished so far (1-based)
	TotalTiles int    `json:"totalTiles"`
}

// CompleteUpdate is sent once after the last tile
type CompleteUpdate struct {
	Width         int     `json:"width"`
	Height        int     `json:"height"`
	TotalPixels   int     `json:"totalPixels"`
	PrimaryRays   int     `json:"primaryRays"`
	Tiles         int     `json:"tiles"`
	ElapsedMs     int64   `json:"elapsedMs"`
	RaysPerSecond float64 `json:"raysPerSecond"`
}

// StreamEvent is one websocket message. Data holds a TileUpdate,
// ConsoleMessage, CompleteUpdate or an error string depending on Type.
type StreamEvent struct {
	Type string      `json:"type"` // "console", "tile", "error", "complete"
	Data interface{} `json:"data"`
}

// handleStream renders over a websocket, sending each tile as it finishes
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	// Scene problems are reported as plain HTTP errors before upgrading
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

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("upgrade:", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// The reader only watches for the client going away
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	consoleChan, webLogger := s.setupConsoleLogging()
	events := make(chan StreamEvent, 100)
	writerDone := make(chan struct{})
	go s.writeEvents(ctx, cancel, conn, events, consoleChan, writerDone)

	camera := renderer.NewCameraFromConfig(sceneObj.CameraConfig)
	config := s.renderConfig(req)
	totalTiles := len(renderer.NewTileGrid(camera.HSize, camera.VSize, config.TileSize))
	raytracer := renderer.NewRaytracer(config, webLogger)

	tileNumber := 0
	_, stats, err := raytracer.RenderTiles(ctx, camera, sceneObj.World, func(result renderer.TileResult, target *canvas.Canvas) error {
		tileNumber++
		tileData, err := imageToBase64PNG(target.SubImage(result.Bounds))
		if err != nil {
			return fmt.Errorf("failed to encode tile %v: %v", result.Bounds, err)
		}
		update := TileUpdate{
			X:          result.Bounds.Min.X,
			Y:          result.Bounds.Min.Y,
			Width:      result.Bounds.Dx(),
			Height:     result.Bounds.Dy(),
			ImageData:  tileData,
			TileNumber: tileNumber,
			TotalTiles: totalTiles,
		}
		return sendEvent(ctx, events, StreamEvent{Type: "tile", Data: update})
	})

	switch {
	case ctx.Err() != nil:
		// Client disconnected
	case err != nil:
		_ = sendEvent(ctx, events, StreamEvent{Type: "error", Data: fmt.Sprintf("Rendering failed: %v", err)})
	default:
		_ = sendEvent(ctx, events, StreamEvent{Type: "complete", Data: CompleteUpdate{
			Width:         camera.HSize,
			Height:        camera.VSize,
			TotalPixels:   stats.TotalPixels,
			PrimaryRays:   stats.PrimaryRays,
			Tiles:         stats.Tiles,
			ElapsedMs:     stats.Elapsed.Milliseconds(),
			RaysPerSecond: stats.RaysPerSecond(),
		}})
	}

	close(events)
	<-writerDone
}

// setupConsoleLogging creates console channel and web logger for a render
func (s *Server) setupConsoleLogging() (chan ConsoleMessage, core.Logger) {
	consoleChan := make(chan ConsoleMessage, 50)
	renderID := fmt.Sprintf("render-%d", time.Now().UnixNano())
	webLogger := NewWebLogger(renderID, consoleChan)
	return consoleChan, webLogger
}

// sendEvent queues an event for the writer unless the client has gone
func sendEvent(ctx context.Context, events chan<- StreamEvent, event StreamEvent) error {
	select {
	case events <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// writeEvents is the only goroutine writing to conn. Console messages that
// were logged before an event are flushed ahead of it. When events closes
// it sends a normal close frame and returns.
func (s *Server) writeEvents(ctx context.Context, cancel context.CancelFunc, conn *websocket.Conn,
	events <-chan StreamEvent, consoleChan <-chan ConsoleMessage, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	write := func(event StreamEvent) bool {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(event); err != nil {
			cancel()
			return false
		}
		return true
	}
	flushConsole := func() bool {
		for {
			select {
			case msg := <-consoleChan:
				if !write(StreamEvent{Type: "console", Data: msg}) {
					return false
				}
			default:
				return true
			}
		}
	}

	for {
		select {
		case msg := <-consoleChan:
			if !write(StreamEvent{Type: "console", Data: msg}) {
				return
			}

		case event, ok := <-events:
			if !flushConsole() {
				return
			}
			if !ok {
				conn.SetWriteDeadline(time.Now().Add(writeWait))
				_ = conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "render finished"))
				return
			}
			if !write(event) {
				return
			}

		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				cancel()
				return
			}

		case <-ctx.Done():
			// Client disconnected
			return
		}
	}
}
