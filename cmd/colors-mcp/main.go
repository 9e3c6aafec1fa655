package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/colors/internal/config"
	"github.com/ironsheep/colors/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	var configPath string

	// Handle --version, --help and --config flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("colors-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("colors-mcp - MCP server for color conversion and blending")
			fmt.Println()
			fmt.Println("Usage: colors-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --config <path>  Read settings from a TOML file")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  COLORS_MCP_CONFIG=<path>     TOML settings file")
			fmt.Println("  COLORS_MCP_LOG_LEVEL=debug   Enable debug logging")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client.")
			return
		case "--config":
			if len(os.Args) < 3 {
				fmt.Fprintln(os.Stderr, "--config requires a path")
				os.Exit(2)
			}
			configPath = os.Args[2]
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	conf, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	if conf.Debug() {
		log.Printf("Colors MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	srv := server.New(conf)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
