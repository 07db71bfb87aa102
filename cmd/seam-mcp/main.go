package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/ironsheep/seam-carver/internal/config"
	"github.com/ironsheep/seam-carver/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("seam-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("seam-mcp - MCP server for interactive seam carving")
			fmt.Println()
			fmt.Println("Usage: seam-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  SEAMCARVE_CONFIG=path        Config file (default ./seamcarve.toml)")
			fmt.Println("  SEAMCARVE_LOG_LEVEL=debug    Enable debug logging")
			fmt.Println("  SEAMCARVE_WORKERS=n          Goroutines for the energy pass")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// Logs go to stderr (stdout is for MCP protocol)
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Prefix:          "seam-mcp",
	})

	cfg, err := config.Load(os.Getenv("SEAMCARVE_CONFIG"))
	if err != nil {
		logger.Fatal("invalid configuration", "err", err)
	}
	if level, err := log.ParseLevel(cfg.Log.Level); err == nil {
		logger.SetLevel(level)
	}

	logger.Debug("starting", "version", Version, "built", BuildTime, "commit", GitCommit)

	server.Version = Version
	srv := server.New(server.WithConfig(cfg), server.WithLogger(logger))
	if err := srv.Run(); err != nil {
		logger.Fatal("server error", "err", err)
	}
}
