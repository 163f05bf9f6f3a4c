package main

import (
	"flag"
	"os"

	"github.com/df07/go-weekend-pathtracer/pkg/log"
	"github.com/df07/go-weekend-pathtracer/web/server"
)

var logger = log.New("web")

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	verbose := flag.Bool("v", false, "enable verbose logging")
	flag.Parse()

	if *verbose {
		log.SetLevel(log.Info)
	}

	// Create and start web server
	webServer := server.NewServer(*port)

	logger.Noticef("Weekend Path Tracer Web Server")
	logger.Noticef("Visit http://localhost:%d to start rendering", *port)

	if err := webServer.Start(); err != nil {
		logger.Errorf("error starting server: %v", err)
		os.Exit(1)
	}
}
