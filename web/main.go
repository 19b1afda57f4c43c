package main

import (
	"flag"
	"log"
	"os"

	"github.com/df07/go-whitted-raytracer/web/server"
)

func main() {
	defaults := server.DefaultConfig()

	// Parse command line flags
	port := flag.Int("port", defaults.Port, "Port to serve on")
	sceneDir := flag.String("scenes", defaults.SceneDir, "Directory containing YAML scene files")
	staticDir := flag.String("static", defaults.StaticDir, "Directory containing the web client")
	tileSize := flag.Int("tile", defaults.TileSize, "Tile size for streamed renders")
	flag.Parse()

	config := defaults
	config.Port = *port
	config.SceneDir = *sceneDir
	config.StaticDir = *staticDir
	config.TileSize = *tileSize

	// Create and start web server
	webServer := server.NewServer(config)

	log.Printf("Whitted Raytracer Web Server")
	log.Printf("Visit http://localhost:%d to start rendering", config.Port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
