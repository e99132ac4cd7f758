package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/lift-mcp/internal/config"
	"github.com/ironsheep/lift-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	configPath := os.Getenv(config.EnvConfigPath)

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version", "-v", "version":
			fmt.Printf("lift-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printHelp()
			return
		case "--config", "-c":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "lift-mcp: --config requires a file path")
				os.Exit(2)
			}
			i++
			configPath = args[i]
		default:
			fmt.Fprintf(os.Stderr, "lift-mcp: unknown argument %q (see --help)\n", args[i])
			os.Exit(2)
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	if cfg.Debug() {
		log.Printf("Lift MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		log.Printf("Presets are written to %s at %v%% intensity by default", cfg.OutputDir, cfg.DefaultIntensity)
	}

	srv := server.New(cfg, Version)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func printHelp() {
	fmt.Println("lift-mcp - MCP server that turns reference photos into Lightroom presets")
	fmt.Println()
	fmt.Println("Usage: lift-mcp [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --config, -c <file>  Read settings from a YAML file")
	fmt.Println("  --version, -v        Print version information")
	fmt.Println("  --help, -h           Print this help message")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  LIFT_MCP_CONFIG=<file>       Settings file, same as --config")
	fmt.Println("  LIFT_MCP_LOG_LEVEL=debug     Enable debug logging")
	fmt.Println("  LIFT_MCP_OUTPUT_DIR=<dir>    Where preset_export writes .xmp files")
	fmt.Println()
	fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
	fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
}
