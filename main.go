package main

import (
	"fmt"
	"os"

	"github.com/trknhr/postflow/cmd"
	"github.com/trknhr/postflow/internal/config"
	"github.com/trknhr/postflow/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config, using defaults: %v\n", err)
	}
	if err := logger.Init(cfg.Log.File, cfg.Log.Level); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
	}

	if err := cmd.Execute(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
