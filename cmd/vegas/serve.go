package main

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"

	"github.com/coder/quartz"

	"github.com/vxco/vegas/cmd/vegas/shared"
	"github.com/vxco/vegas/internal/config"
	"github.com/vxco/vegas/internal/server"
)

// ServeCmd runs the WebSocket game server
type ServeCmd struct {
	Config string `kong:"default='vegas.hcl',help='Path to the configuration file'"`
	Addr   string `kong:"default='',help='Listen address (overrides the config file)'"`
	Debug  bool   `kong:"help='Enable debug logging'"`
}

func (c *ServeCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if c.Debug {
		cfg.Server.LogLevel = "debug"
	}
	logger := shared.SetupLoggerWithLevel(cfg.Server.LogLevel)

	if c.Addr != "" {
		// A literal addr flag wins over the config file's host and port.
		host, portStr, err := net.SplitHostPort(c.Addr)
		if err != nil {
			return fmt.Errorf("bad listen address %q: %w", c.Addr, err)
		}
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return fmt.Errorf("bad listen port %q: %w", portStr, err)
		}
		logger.Info("overriding listen address", "addr", c.Addr)
		cfg.Server.Address = host
		cfg.Server.Port = port
	}

	s := server.NewServer(cfg, logger, quartz.NewReal())

	ctx := shared.SetupSignalHandlerWithLogger(logger)

	serverErr := make(chan error, 1)
	go func() {
		if err := s.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down server")
		return s.Stop()
	case err := <-serverErr:
		return err
	}
}
