// Package oracle produces flavor text for the player. Every call fails soft
// to a fixed fallback string.
package oracle

import (
	"context"
	"fmt"
	"io"
	"log"
	"sort"
	"strings"
	"time"

	"liferpg/internal/engine"
)

const (
	FallbackMotivation = "The path to greatness is long, but every step counts. Keep grinding, hero!"
	emptyMotivation    = "Every struggle is a hidden XP bar. Keep grinding, hero!"

	DefaultTimeout = 15 * time.Second
)

var seasonBosses = []string{
	"The Iron Sentinel (Strength/Stamina focus)",
	"The Balanced One (All-around focus)",
	"The Regulator (Hardcore health focus)",
	"The Perfect Balance (Mastery focus)",
}

// Generator turns a prompt into text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Oracle struct {
	gen     Generator
	logger  *log.Logger
	timeout time.Duration
}

// New returns an Oracle. A nil generator always yields fallbacks.
func New(gen Generator, logger *log.Logger) *Oracle {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Oracle{gen: gen, logger: logger, timeout: DefaultTimeout}
}

// SeasonBoss names the seasonal boss for a 1-based season.
func SeasonBoss(season int) string {
	if season < 1 || season > len(seasonBosses) {
		season = 1
	}
	return seasonBosses[season-1]
}

func FallbackBossFlavor(season int) string {
	return fmt.Sprintf("The Season %d boss awaits in the final week. Prepare your body and mind.", season)
}

// Motivation returns a short encouragement for the player's level and tiers.
func (o *Oracle) Motivation(ctx context.Context, level int, stats map[engine.StatKind]int) string {
	prompt := fmt.Sprintf("User is a level %d player in a Life RPG. Their current stat tiers are: %s. "+
		"Give a short, epic, 2-sentence motivational RPG-style encouragement.", level, formatStats(stats))
	text, err := o.generate(ctx, prompt)
	if err != nil {
		o.logger.Printf("motivation: %v", err)
		return FallbackMotivation
	}
	if text == "" {
		return emptyMotivation
	}
	return text
}

// BossFlavor returns an introduction for the season's boss.
func (o *Oracle) BossFlavor(ctx context.Context, season int) string {
	prompt := fmt.Sprintf("Write a 3-sentence dark, epic RPG introduction for a boss called %s for Season %d. Include their phases.",
		SeasonBoss(season), season)
	text, err := o.generate(ctx, prompt)
	if err != nil {
		o.logger.Printf("boss flavor: %v", err)
		return FallbackBossFlavor(season)
	}
	if text == "" {
		return FallbackBossFlavor(season)
	}
	return text
}

func (o *Oracle) generate(ctx context.Context, prompt string) (string, error) {
	if o.gen == nil {
		return "", errNoGenerator
	}
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()
	text, err := o.gen.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func formatStats(stats map[engine.StatKind]int) string {
	parts := make([]string, 0, len(stats))
	for k, v := range stats {
		parts = append(parts, fmt.Sprintf("%s=%d", k.Label(), v))
	}
	sort.Strings(parts)
	return strings.Join(parts, ", ")
}
