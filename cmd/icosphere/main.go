// icosphere generates subdivided icosahedron sphere meshes and reports on them.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/icosphere/internal/config"
	"github.com/Faultbox/icosphere/internal/logger"
)

func main() {
	config.ParseFlags()

	args := config.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Sugar.Debugf("Config: %+v", cfg)

	command, rest := args[0], args[1:]
	switch command {
	case "info":
		err = cmdInfo(os.Stdout, cfg)
	case "check":
		err = cmdCheck(os.Stdout, cfg)
	case "config":
		err = cmdConfig(os.Stdout, cfg)
	case "save":
		err = cmdSave(os.Stdout, cfg, rest)
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`icosphere - subdivided icosahedron sphere generator

Usage:
  icosphere [flags] <command> [args]

Commands:
  info            Generate the sphere and print mesh statistics
  check           Generate the sphere and verify the mesh invariants
  config          Print the effective configuration as YAML
  save [path]     Write the effective configuration (default: user config dir)

Flags:
  --config <file>     Config file (default ./icosphere.yaml, then user config dir)
  --radius <r>        Sphere radius
  --depth <n>         Subdivision depth (faces = 20 * 4^n)
  --center x,y,z      Sphere center
  --color r,g,b       Base color, channels in [0,1]
  --shade <d>         Shade difference for the lower hemisphere
  --seed <n>          Seed for the random base color
  --workers <n>       Generate base faces on n workers
  --rotate x,y,z      Placement rotation in degrees (info reports placed bounds)
  --scale <s>         Placement scale about the center
  --debug             Enable debug logging
  --log-file <file>   Also log to a rotating file

Examples:
  icosphere info
  icosphere --depth 2 --center 2,0,0 info
  icosphere --rotate 0,45,0 --scale 2 info
  icosphere --radius 10 --workers 8 check
  icosphere --color 0.1,0.5,0.9 save ./icosphere.yaml`)
}
