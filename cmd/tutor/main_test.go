package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	configfile "github.com/campus-labs/tutor-cli/internal/adapters/driven/config/file"
	"github.com/campus-labs/tutor-cli/internal/core/domain"
)

func TestScoringWeights_DefaultsWhenUnconfigured(t *testing.T) {
	config, err := configfile.NewConfigStore(t.TempDir())
	require.NoError(t, err)

	cfg := scoringWeights(config)

	assert.Equal(t, domain.DefaultScoringConfig(), cfg)
}

func TestScoringWeights_PartialOverride(t *testing.T) {
	config, err := configfile.NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, config.Set("scoring.keyword_match", 4.5))
	require.NoError(t, config.Set("scoring.code_boost", 2.0))

	cfg := scoringWeights(config)

	assert.InDelta(t, 4.5, cfg.KeywordMatch, 0.001)
	assert.InDelta(t, 2.0, cfg.CodeBoost, 0.001)

	// Untouched weights keep their defaults
	defaults := domain.DefaultScoringConfig()
	assert.InDelta(t, defaults.ContentMatch, cfg.ContentMatch, 0.001)
	assert.InDelta(t, defaults.SectionTitleMatch, cfg.SectionTitleMatch, 0.001)
	assert.InDelta(t, defaults.SourceTitleMatch, cfg.SourceTitleMatch, 0.001)
	assert.InDelta(t, defaults.SectionBoost, cfg.SectionBoost, 0.001)
}

func TestScoringWeights_IntegerValuesAccepted(t *testing.T) {
	config, err := configfile.NewConfigStore(t.TempDir())
	require.NoError(t, err)

	// TOML parses whole numbers as integers; weights must still apply
	require.NoError(t, config.Set("scoring.section_title_match", 7))
	require.NoError(t, config.Load())

	cfg := scoringWeights(config)

	assert.InDelta(t, 7.0, cfg.SectionTitleMatch, 0.001)
}
