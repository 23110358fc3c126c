package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	mcpadapter "memo/internal/adapters/mcp"
	"memo/internal/adapters/memory"
	"memo/internal/application"
	"memo/internal/config"
	"memo/internal/logging"
)

func main() {
	cfg := config.Load()
	filterFlag := flag.String("filter", cfg.Filter, "initial view: active, archived or removed")
	verboseFlag := flag.Bool("verbose", cfg.Verbose, "enable debug logging")
	flag.Parse()

	cfg.Filter = *filterFlag
	cfg.Verbose = *verboseFlag

	// stdout carries the protocol; logs go to stderr or MEMO_LOG_FILE
	logger, err := logging.New(cfg)
	if err != nil {
		log.Fatalf("memo-mcp: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	filter, err := application.ParseFilter(cfg.Filter)
	if err != nil {
		log.Fatalf("memo-mcp: -filter: %v", err)
	}

	store := memory.NewStore(time.Now, logger)
	store.SetFilter(filter)

	mcpServer := server.NewMCPServer(
		"memo-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, store)
	mcpadapter.RegisterWriteTools(mcpServer, store)

	logger.Info("serving MCP over stdio", zap.String("filter", filter.String()))
	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Error("server stopped", zap.Error(err))
		_ = logger.Sync()
		log.Fatalf("memo-mcp: %v", err)
	}
}
