package main

import (
	"fmt"
	"log"

	"procura/internal/config"
	"procura/internal/extractor"
	"procura/internal/handler"
	"procura/internal/parser"
	"procura/internal/port"
	"procura/internal/quota"
	"procura/internal/router"
	"procura/internal/service"

	// Completion providers register themselves with the parser factory.
	_ "procura/internal/parser/claude"
	_ "procura/internal/parser/openai"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	completer, err := buildCompleter(&cfg.Parser)
	if err != nil {
		return fmt.Errorf("failed to build completion client: %w", err)
	}

	// Initialize services
	quotaStore := quota.NewMemoryStore()
	textExtractor := extractor.NewPDFExtractor()
	extractionSvc := service.NewExtractionService(textExtractor, completer, quotaStore, &cfg.Upload)
	exportSvc := service.NewExportService()

	// Initialize handlers
	extractH := handler.NewExtractHandler(extractionSvc, &cfg.Upload)
	exportH := handler.NewExportHandler(exportSvc)
	healthH := handler.NewHealthHandler()

	// Setup router
	r := router.Setup(cfg, extractH, exportH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

// buildCompleter wires the configured provider, wrapping a failover chain
// around it when a secondary provider is configured.
func buildCompleter(cfg *config.ParserConfig) (port.Completer, error) {
	primary, err := parser.NewCompleter(cfg.PrimaryConfig())
	if err != nil {
		return nil, err
	}

	secondaryCfg := cfg.SecondaryConfig()
	if secondaryCfg == nil {
		return primary, nil
	}

	secondary, err := parser.NewCompleter(secondaryCfg)
	if err != nil {
		return nil, err
	}

	return parser.NewFallbackCompleter(
		[]port.Completer{primary, secondary},
		[]string{cfg.PrimaryConfig().Provider, secondaryCfg.Provider},
	), nil
}
