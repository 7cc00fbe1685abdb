package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/yurifrl/rampboard/pkg/config"
	"github.com/yurifrl/rampboard/pkg/server"
	"github.com/yurifrl/rampboard/pkg/service"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		Prefix:          "rampboard",
	})

	var (
		port    = flag.String("port", "", "Server port (overrides config)")
		cfgFile = flag.String("config", "", "Config file path")
	)
	flag.Parse()

	cfg, err := config.Build(*cfgFile, nil)
	if err != nil {
		logger.Fatal("failed to load config", "err", err)
	}
	if *port != "" {
		cfg.Port = *port
	}

	dashboard, err := service.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to build dashboard service", "err", err)
	}

	srv := server.New(dashboard, logger)
	addr := fmt.Sprintf("0.0.0.0:%s", cfg.Port)
	logger.Info("starting server", "addr", addr, "mode", dashboard.Mode())
	if err := srv.Start(addr); err != nil {
		logger.Fatal("server error", "err", err)
	}
}
