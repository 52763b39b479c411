package main

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/fatih/color"

	"github.com/hailam/filecraft/internal/adapters/console"
	"github.com/hailam/filecraft/internal/adapters/faker"
	"github.com/hailam/filecraft/internal/adapters/localfs"
	"github.com/hailam/filecraft/internal/adapters/txt"
	adapterutils "github.com/hailam/filecraft/internal/adapters/utils"
	"github.com/hailam/filecraft/internal/application"
	"github.com/hailam/filecraft/internal/cli"
	"github.com/hailam/filecraft/internal/config"
	"github.com/hailam/filecraft/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if cfg.NoColor {
		color.NoColor = true
	}

	// --- Composition Root: Initialize Adapters and Core Logic ---
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	text := faker.New(seed)
	generationService := application.NewGenerationService(
		txt.New(text),
		text,
		localfs.New(),
		console.New(os.Stdout),
		logger.New(cfg.Log, os.Stderr),
		rand.New(rand.NewPCG(seed, seed)),
	)
	rootCmd := cli.NewRootCmd(generationService, adapterutils.NewUtilSizeParser())
	// --- End Composition Root ---

	if err := rootCmd.Execute(); err != nil {
		// Cobra prints errors automatically, but we exit non-zero
		os.Exit(1)
	}
}
