package main

import (
	"flag"
	"log"

	"github.com/pathband/go-path-tracer/web/server"
)

func main() {
	port := flag.Int("port", 8080, "Port for the preview server")
	flag.Parse()

	s := server.NewServer(*port, log.Default())
	if err := s.Start(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
