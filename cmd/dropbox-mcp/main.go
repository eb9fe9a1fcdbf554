package main

import (
	"flag"

	log "github.com/sirupsen/logrus"

	"github.com/sukeshofficial/dropbox-mcp/internal/config"
	"github.com/sukeshofficial/dropbox-mcp/internal/drive"
	"github.com/sukeshofficial/dropbox-mcp/internal/mcp"
)

func main() {
	var cfgPath string
	var httpAddr string

	flag.StringVar(&cfgPath, "c", "", "Path to a JSON config file. Optional.")
	flag.StringVar(&httpAddr, "l", "", "Serve MCP over streamable HTTP on this address instead of stdio. Optional.")
	flag.Parse()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("couldn't load configuration: %v", err)
	}
	if httpAddr != "" {
		cfg.HTTPAddr = httpAddr
	}

	dbx := drive.NewDropboxClient(cfg.Dropbox)

	server, err := mcp.NewServer(dbx, cfg)
	if err != nil {
		log.Fatalf("couldn't initialize MCP server: %v", err)
	}

	if cfg.HTTPAddr != "" {
		log.WithField("addr", cfg.HTTPAddr).Info("serving MCP over HTTP")
		if err := server.ServeHTTP(cfg.HTTPAddr); err != nil {
			log.Fatalf("MCP HTTP server failed: %v", err)
		}
		return
	}

	if err := server.ServeStdio(); err != nil {
		log.Fatalf("MCP stdio server failed: %v", err)
	}
}
