// Command tutor is an offline course tutor. It indexes the student's
// unlocked course modules and answers questions about them with source
// citations, using a local language model.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	configfile "github.com/campus-labs/tutor-cli/internal/adapters/driven/config/file"
	"github.com/campus-labs/tutor-cli/internal/adapters/driven/content/filesystem"
	"github.com/campus-labs/tutor-cli/internal/adapters/driven/content/httpfetch"
	"github.com/campus-labs/tutor-cli/internal/adapters/driven/genai/ollama"
	"github.com/campus-labs/tutor-cli/internal/adapters/driven/storage/memory"
	"github.com/campus-labs/tutor-cli/internal/adapters/driven/storage/sqlite"
	unlockfile "github.com/campus-labs/tutor-cli/internal/adapters/driven/unlock/file"
	"github.com/campus-labs/tutor-cli/internal/adapters/driving/cli"
	"github.com/campus-labs/tutor-cli/internal/core/domain"
	"github.com/campus-labs/tutor-cli/internal/core/ports/driven"
	"github.com/campus-labs/tutor-cli/internal/core/services"
	"github.com/campus-labs/tutor-cli/internal/logger"
	"github.com/campus-labs/tutor-cli/internal/postprocessors/chunker"
	"github.com/campus-labs/tutor-cli/internal/postprocessors/keywords"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	config, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}

	prompts, err := configfile.NewPromptStore("")
	if err != nil {
		return fmt.Errorf("open prompt store: %w", err)
	}

	contentDir := config.GetString("content.dir")
	if contentDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("get home directory: %w", err)
		}
		contentDir = filepath.Join(home, ".tutor", "content")
	}

	unlockPath := config.GetString("unlock.path")
	if unlockPath == "" {
		unlockPath = filepath.Join(contentDir, "unlock.toml")
	}

	// Content comes from a local directory unless a course server URL
	// is configured.
	var fetcher driven.ContentFetcher = filesystem.New(contentDir)
	if baseURL := config.GetString("content.url"); baseURL != "" {
		fetcher = httpfetch.New(baseURL)
	}

	gate := unlockfile.NewGate(unlockPath)
	chunkStore := memory.NewChunkStore()

	// History persists across runs; fall back to memory when the
	// database cannot be opened.
	var history driven.ConversationStore
	sqlStore, err := sqlite.NewStore(config.GetString("data.dir"))
	if err != nil {
		logger.Error("Falling back to in-memory history: %v", err)
		history = memory.NewConversationStore()
	} else {
		history = sqlStore
	}
	defer history.Close()

	extractor := keywords.New()
	indexer := services.NewIndexerService(gate, fetcher, chunkStore, chunker.New(), extractor)
	search := services.NewSearchService(chunkStore, indexer, extractor, scoringWeights(config))

	backend := ollama.New(ollama.Config{
		BaseURL: config.GetString("ollama.base_url"),
		Model:   config.GetString("ollama.model"),
		Timeout: time.Duration(config.GetInt("ollama.timeout_seconds")) * time.Second,
	})

	tutor := services.NewTutorService(backend, search, history)
	tutor.SetPromptStore(prompts)

	cli.Configure(cli.Deps{
		Index:      indexer,
		Search:     search,
		Tutor:      tutor,
		Config:     config,
		Prompts:    prompts,
		UnlockPath: unlockPath,
	})

	return cli.Execute(version)
}

// scoringWeights returns the reference scoring weights with any
// scoring.* keys from the config file applied on top. Absent keys keep
// their defaults, so a partial override section is valid.
func scoringWeights(config driven.ConfigStore) domain.ScoringConfig {
	cfg := domain.DefaultScoringConfig()

	override := func(key string, dst *float64) {
		if _, ok := config.Get(key); ok {
			*dst = config.GetFloat(key)
		}
	}

	override("scoring.keyword_match", &cfg.KeywordMatch)
	override("scoring.content_match", &cfg.ContentMatch)
	override("scoring.section_title_match", &cfg.SectionTitleMatch)
	override("scoring.source_title_match", &cfg.SourceTitleMatch)
	override("scoring.code_boost", &cfg.CodeBoost)
	override("scoring.section_boost", &cfg.SectionBoost)

	return cfg
}
