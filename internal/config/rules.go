package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"liferpg/internal/engine"
)

// Rules overrides parts of the built-in catalog. Empty sections keep the defaults.
type Rules struct {
	DailyQuests    []QuestRule          `yaml:"daily_quests"`
	HardcoreQuests []QuestRule          `yaml:"hardcore_quests"`
	RandomQuests   []string             `yaml:"random_quests"`
	Bosses         []BossRule           `yaml:"bosses"`
	Tiers          map[string][]float64 `yaml:"tiers"`
}

type QuestRule struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
	XP    int    `yaml:"xp"`
	Coins int    `yaml:"coins"`
}

type BossRule struct {
	ID        string  `yaml:"id"`
	Name      string  `yaml:"name"`
	Tier      string  `yaml:"tier"`
	MinStreak int     `yaml:"min_streak"`
	Scaling   float64 `yaml:"scaling"`
	XP        int     `yaml:"xp"`
	Coins     int     `yaml:"coins"`
}

func (b *BossRule) ApplyDefaults() {
	if b.Scaling == 0 {
		b.Scaling = 1
	}
	if b.Tier == "" {
		b.Tier = string(engine.BossMini)
	}
	if b.Name == "" {
		b.Name = b.ID
	}
}

func (q *QuestRule) ApplyDefaults() {
	if q.Label == "" {
		q.Label = q.ID
	}
}

func (r *Rules) ApplyDefaults() {
	for i := range r.DailyQuests {
		r.DailyQuests[i].ApplyDefaults()
	}
	for i := range r.HardcoreQuests {
		r.HardcoreQuests[i].ApplyDefaults()
	}
	for i := range r.Bosses {
		r.Bosses[i].ApplyDefaults()
	}
}

func LoadRules(path string) (*Rules, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules: %w", err)
	}
	var r Rules
	if err := yaml.Unmarshal(b, &r); err != nil {
		return nil, fmt.Errorf("parse rules: %w", err)
	}
	r.ApplyDefaults()
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *Rules) Validate() error {
	seen := map[string]bool{}
	for _, q := range append(append([]QuestRule{}, r.DailyQuests...), r.HardcoreQuests...) {
		if q.ID == "" {
			return fmt.Errorf("rules: quest without id")
		}
		if q.ID == engine.SleepQuestID || seen[q.ID] {
			return fmt.Errorf("rules: duplicate quest id %q", q.ID)
		}
		seen[q.ID] = true
	}
	for _, b := range r.Bosses {
		if b.ID == "" {
			return fmt.Errorf("rules: boss without id")
		}
		if !engine.BossTier(b.Tier).IsValid() {
			return fmt.Errorf("rules: boss %q has invalid tier %q", b.ID, b.Tier)
		}
	}
	for name, tiers := range r.Tiers {
		k, err := engine.ParseStatKind(name)
		if err != nil {
			return fmt.Errorf("rules: %w", err)
		}
		if len(tiers) != engine.TierCount {
			return fmt.Errorf("rules: %s needs %d thresholds, got %d", k, engine.TierCount, len(tiers))
		}
	}
	return nil
}

// Catalog merges the rules over base.
func (r *Rules) Catalog(base engine.Catalog) engine.Catalog {
	if r == nil {
		return base
	}
	if len(r.DailyQuests) > 0 {
		base.DailyQuests = questsFrom(r.DailyQuests, engine.QuestDaily)
	}
	if len(r.HardcoreQuests) > 0 {
		base.HardcoreQuests = questsFrom(r.HardcoreQuests, engine.QuestHardcore)
	}
	if len(r.RandomQuests) > 0 {
		base.RandomQuests = append([]string(nil), r.RandomQuests...)
	}
	if len(r.Bosses) > 0 {
		base.Bosses = make([]engine.Boss, 0, len(r.Bosses))
		for _, b := range r.Bosses {
			base.Bosses = append(base.Bosses, engine.Boss{
				ID:        b.ID,
				Name:      b.Name,
				Tier:      engine.BossTier(b.Tier),
				MinStreak: b.MinStreak,
				Scaling:   b.Scaling,
				XP:        b.XP,
				Coins:     b.Coins,
			})
		}
	}
	if len(r.Tiers) > 0 {
		tiers := make(map[engine.StatKind][]float64, len(base.Tiers))
		for k, v := range base.Tiers {
			tiers[k] = v
		}
		for name, v := range r.Tiers {
			k, err := engine.ParseStatKind(name)
			if err != nil {
				continue
			}
			tiers[k] = append([]float64(nil), v...)
		}
		base.Tiers = tiers
	}
	return base
}

func questsFrom(rules []QuestRule, kind engine.QuestKind) []engine.Quest {
	out := make([]engine.Quest, 0, len(rules))
	for _, q := range rules {
		out = append(out, engine.Quest{ID: q.ID, Label: q.Label, XP: q.XP, Coins: q.Coins, Kind: kind})
	}
	return out
}
