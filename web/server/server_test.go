package server

import (
	"encoding/json"
	"image/png"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	config := DefaultConfig()
	config.SceneDir = "../../scenes"
	config.StaticDir = t.TempDir()
	config.MaxWidth = 200
	config.MaxHeight = 200

	ts := httptest.NewServer(NewServer(config).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/health")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}
	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("Expected status ok, got %v", body)
	}
}

func TestScenes(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/scenes")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()

	var scenes scene.ScenesResponse
	if err := json.NewDecoder(resp.Body).Decode(&scenes); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(scenes.Groups) < 2 {
		t.Fatalf("Expected built-in and file groups, got %d groups", len(scenes.Groups))
	}
	if scenes.Groups[0].Name != "Built-in Scenes" {
		t.Errorf("Expected built-in scenes first, got %q", scenes.Groups[0].Name)
	}

	found := false
	for _, group := range scenes.Groups {
		for _, info := range group.Scenes {
			if info.ID == "yaml:table" {
				found = true
			}
		}
	}
	if !found {
		t.Error("Expected yaml:table in scene list")
	}
}

func TestRenderPNG(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name          string
		query         string
		width, height int
	}{
		{"builtin", "scene=default&width=20&height=10", 20, 10},
		{"yaml", "scene=yaml:table&width=8&height=6&depth=2", 8, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(ts.URL + "/api/render?" + tt.query)
			if err != nil {
				t.Fatalf("GET failed: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				t.Fatalf("Expected status 200, got %d", resp.StatusCode)
			}
			if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
				t.Errorf("Expected image/png, got %q", ct)
			}
			img, err := png.Decode(resp.Body)
			if err != nil {
				t.Fatalf("PNG decode failed: %v", err)
			}
			if img.Bounds().Dx() != tt.width || img.Bounds().Dy() != tt.height {
				t.Errorf("Expected %dx%d image, got %v", tt.width, tt.height, img.Bounds())
			}
		})
	}
}

func TestRenderErrors(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name   string
		query  string
		status int
	}{
		{"unknown scene", "scene=nope", http.StatusNotFound},
		{"unknown yaml scene", "scene=yaml:missing", http.StatusNotFound},
		{"width too large", "width=5000", http.StatusBadRequest},
		{"bad height", "height=abc", http.StatusBadRequest},
		{"negative depth", "depth=-1", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(ts.URL + "/api/render?" + tt.query)
			if err != nil {
				t.Fatalf("GET failed: %v", err)
			}
			resp.Body.Close()
			if resp.StatusCode != tt.status {
				t.Errorf("Expected status %d, got %d", tt.status, resp.StatusCode)
			}
		})
	}
}

func TestInspect(t *testing.T) {
	ts := newTestServer(t)

	// The bottom-center pixel of the default scene looks down at the floor
	resp, err := http.Get(ts.URL + "/api/inspect?scene=default&x=200&y=199")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}
	var got InspectResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if !got.Hit {
		t.Fatal("Expected a hit")
	}
	if got.GeometryType != "plane" {
		t.Errorf("Expected plane, got %q", got.GeometryType)
	}
	if math.Abs(got.Normal[1]-1) > 1e-6 {
		t.Errorf("Expected floor normal (0, 1, 0), got %v", got.Normal)
	}
	if math.Abs(got.Point[1]) > 1e-6 {
		t.Errorf("Expected hit on y=0, got %v", got.Point)
	}
	if got.Inside {
		t.Error("Expected outside hit")
	}
	if got.N1 != 1 || got.N2 != 1 {
		t.Errorf("Expected n1 = n2 = 1, got %v, %v", got.N1, got.N2)
	}
	mat, ok := got.Properties["material"].(map[string]interface{})
	if !ok {
		t.Fatalf("Expected material properties, got %v", got.Properties)
	}
	if mat["pattern"] != "checkers" {
		t.Errorf("Expected checkers pattern, got %v", mat["pattern"])
	}
}

func TestInspectErrors(t *testing.T) {
	ts := newTestServer(t)

	for _, query := range []string{
		"scene=default&x=abc&y=0",
		"scene=default&x=0",
		"scene=default&x=400&y=0",
		"scene=default&x=0&y=-1",
	} {
		resp, err := http.Get(ts.URL + "/api/inspect?" + query)
		if err != nil {
			t.Fatalf("GET failed: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("%s: expected status 400, got %d", query, resp.StatusCode)
		}
	}
}

func TestGeometryInfoEncodes(t *testing.T) {
	open := geometry.NewCylinder()
	capped := geometry.NewCone()
	capped.Minimum, capped.Maximum = -1, 0

	tests := []struct {
		name       string
		shape      geometry.Shape
		wantLimits bool
	}{
		{"unbounded cylinder", open, false},
		{"capped cone", capped, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, props := extractGeometryInfo(tt.shape)
			if _, err := json.Marshal(props); err != nil {
				t.Fatalf("Marshal failed: %v", err)
			}
			_, hasMin := props["minimum"]
			_, hasMax := props["maximum"]
			if hasMin != tt.wantLimits || hasMax != tt.wantLimits {
				t.Errorf("Expected limits present = %v, got %v", tt.wantLimits, props)
			}
		})
	}
}

type rawEvent struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

func wsURL(ts *httptest.Server, path string) string {
	return "ws" + strings.TrimPrefix(ts.URL, "http") + path
}

func TestStreamRender(t *testing.T) {
	ts := newTestServer(t)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(ts, "/ws/render?scene=default&width=16&height=8&tile=8"), nil)
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	defer conn.Close()
	conn.SetReadDeadline(time.Now().Add(10 * time.Second))

	var tiles []TileUpdate
	var complete *CompleteUpdate
	consoleMessages := 0
	for complete == nil {
		var event rawEvent
		if err := conn.ReadJSON(&event); err != nil {
			t.Fatalf("Read failed before completion: %v", err)
		}

		switch event.Type {
		case "tile":
			var tile TileUpdate
			if err := json.Unmarshal(event.Data, &tile); err != nil {
				t.Fatalf("Bad tile: %v", err)
			}
			tiles = append(tiles, tile)
		case "console":
			consoleMessages++
		case "complete":
			complete = &CompleteUpdate{}
			if err := json.Unmarshal(event.Data, complete); err != nil {
				t.Fatalf("Bad completion: %v", err)
			}
		case "error":
			t.Fatalf("Render failed: %s", event.Data)
		default:
			t.Fatalf("Unexpected event type %q", event.Type)
		}
	}

	if len(tiles) != 2 {
		t.Fatalf("Expected 2 tiles, got %d", len(tiles))
	}
	for i, tile := range tiles {
		if tile.TotalTiles != 2 || tile.TileNumber != i+1 {
			t.Errorf("Tile %d: numbering %d/%d", i, tile.TileNumber, tile.TotalTiles)
		}
		if tile.Width != 8 || tile.Height != 8 || tile.Y != 0 {
			t.Errorf("Tile %d: unexpected geometry %+v", i, tile)
		}
		if tile.ImageData == "" {
			t.Errorf("Tile %d: missing image data", i)
		}
	}
	if tiles[0].X == tiles[1].X {
		t.Errorf("Expected distinct tiles, both at x=%d", tiles[0].X)
	}

	if complete.TotalPixels != 128 || complete.Tiles != 2 {
		t.Errorf("Unexpected completion stats %+v", complete)
	}
	if complete.PrimaryRays != complete.TotalPixels {
		t.Errorf("Expected one primary ray per pixel, got %d rays for %d pixels", complete.PrimaryRays, complete.TotalPixels)
	}
	if complete.Width != 16 || complete.Height != 8 {
		t.Errorf("Expected 16x8, got %dx%d", complete.Width, complete.Height)
	}
	if consoleMessages == 0 {
		t.Error("Expected console messages from the renderer")
	}

	// Drain anything still queued until the server closes the stream
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				t.Errorf("Expected normal closure, got %v", err)
			}
			break
		}
	}
}

func TestStreamUnknownScene(t *testing.T) {
	ts := newTestServer(t)

	_, resp, err := websocket.DefaultDialer.Dial(wsURL(ts, "/ws/render?scene=nope"), nil)
	if err == nil {
		t.Fatal("Expected handshake to fail")
	}
	if resp == nil || resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected 404 response, got %v", resp)
	}
}
