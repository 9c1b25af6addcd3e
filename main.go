package main

import (
	"flag"
	"os"

	"github.com/Aashish23092/finguide-ai/client"
	"github.com/Aashish23092/finguide-ai/config"
	"github.com/Aashish23092/finguide-ai/handler"
	"github.com/Aashish23092/finguide-ai/router"
	"github.com/Aashish23092/finguide-ai/service"
	"github.com/Aashish23092/finguide-ai/store"
	"github.com/rs/zerolog"
)

func main() {
	configPath := flag.String("config", "", "path to config.yaml (default: ./config.yaml if present)")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		zerolog.New(os.Stderr).Fatal().Err(err).Msg("load config")
	}
	logger := cfg.Log.NewLogger()

	// Initialize language model client
	llm, err := client.NewLLMClient(client.LLMOptions{
		Provider: cfg.LLM.Provider,
		APIKey:   cfg.LLM.APIKey,
		Model:    cfg.LLM.Model,
		BaseURL:  cfg.LLM.BaseURL,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("init llm client")
	}
	if cfg.LLM.APIKey == "" {
		logger.Warn().Str("provider", cfg.LLM.Provider).Msg("no API key configured; chat and statement analysis will fail until one is set")
	}
	llm = client.WithTimeout(llm, cfg.LLM.Timeout)

	// Scanned-PDF OCR is optional
	var ocr service.OCREngine
	if cfg.OCR.Enabled {
		ocr = client.NewTesseractClient(cfg.OCR.TessdataPrefix, cfg.OCR.Language)
		logger.Info().Str("tessdata", cfg.OCR.TessdataPrefix).Msg("OCR fallback enabled")
	}

	// Initialize storage
	repo := store.NewMemoryStore()
	if cfg.Store.SeedDemo {
		repo.Prepend(store.DemoTransactions()...)
	}

	// Initialize service layer
	extractor := service.NewDocumentExtractor(service.NewPDFProcessor(), ocr, logger)
	extraction := service.NewExtractionService(llm, logger)
	statementService := service.NewStatementService(extractor, extraction, logger)
	chatService := service.NewChatService(llm, logger)
	transactionService := service.NewTransactionService(repo, logger)
	dashboardService := service.NewDashboardService(repo, cfg.Dashboard.MonthlyIncome)

	// Initialize handler layer
	r := router.SetupRouter(cfg, router.Handlers{
		Upload:       handler.NewUploadHandler(statementService, cfg.Server.MaxUploadBytes(), logger),
		Chat:         handler.NewChatHandler(chatService, logger),
		Transactions: handler.NewTransactionHandler(transactionService, dashboardService, logger),
		Tax:          handler.NewTaxHandler(logger),
	}, logger)

	logger.Info().Str("port", cfg.Server.Port).Str("provider", cfg.LLM.Provider).Msg("starting FinGuide AI backend")
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		if cerr := client.Close(llm); cerr != nil {
			logger.Warn().Err(cerr).Msg("close llm client")
		}
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}
