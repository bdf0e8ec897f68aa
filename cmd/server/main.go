package main

import (
	"outreach/internal/config"
	"outreach/internal/data"
	"outreach/internal/generate"
	"outreach/internal/llm"
	"outreach/internal/server"
	"outreach/internal/store"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Setup logger
	logger := cfg.SetupLogger()

	// Initialize the persistence backend
	st, err := store.New(cfg)
	if err != nil {
		logger.Warn().Err(err).Str("backend", cfg.StoreBackend).Msg("Store initialization failed")
		logger.Info().Msg("Falling back to in-memory store")
		cfg.StoreBackend = "memory"
		st = store.NewMemory()
	} else {
		logger.Info().Str("backend", cfg.StoreBackend).Msg("Store initialized")
	}
	defer func() { _ = st.Close() }()

	// Reference data provider
	provider := data.NewProvider(cfg.DataDir, cfg.AccountCacheTTLMinutes)

	// LLM client and generation orchestrator
	var gen llm.Generator
	if client, err := llm.NewClient(cfg); err != nil {
		logger.Warn().Err(err).Msg("OpenAI client unavailable, generation will fail until configured")
		gen = llm.Unavailable{Err: err}
	} else {
		gen = client
	}
	orch := generate.NewOrchestrator(gen, logger)

	// Create and initialize server
	srv := server.New(cfg, logger, st, provider, orch)
	srv.Initialize()

	// Start server
	if err := srv.Start(); err != nil {
		logger.Fatal().Err(err).Msg("Server failed to start")
	}
}
