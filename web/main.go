package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/df07/go-scene-generator/internal/log"
	"github.com/df07/go-scene-generator/web/server"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	debug := flag.Bool("debug", false, "Enable debug logging and gin debug mode")
	flag.Parse()

	logger, err := log.NewLogger(os.Stderr, *debug, *debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if !*debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create and start web server
	webServer := server.NewServer(*port, logger)

	logger.Infow("Random Sphere Scene Generator Web Server")
	logger.Infof("Visit http://localhost:%d/api/scene to generate a scene", *port)

	if err := webServer.Start(); err != nil {
		logger.Errorw("error starting server", "error", err)
		os.Exit(1)
	}
}
