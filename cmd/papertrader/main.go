package main

import (
	"fmt"
	"os"

	"papertrader/internal/cli"
	"papertrader/internal/config"
	"papertrader/internal/logging"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "papertrader: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewLoggerWithConfig(cfg.Logging)

	rootCmd, app := cli.NewRootCmd(cfg, logger)

	err = rootCmd.Execute()
	app.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "papertrader: %v\n", err)
		os.Exit(1)
	}
}
