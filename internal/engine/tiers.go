package engine

import "time"

// CalculateStatTier counts satisfied thresholds for a stat value.
// Ascending stats satisfy a threshold at value >= t; reaction at value <= t.
func (c Catalog) CalculateStatTier(kind StatKind, value float64) int {
	tier := 0
	for _, t := range c.Tiers[kind] {
		if kind.LowerIsBetter() {
			if value <= t {
				tier++
			}
			continue
		}
		if value >= t {
			tier++
		}
	}
	if tier > TierCount {
		tier = TierCount
	}
	return tier
}

// recomputeTiers is the single place Player.Stats is derived.
func (c Catalog) recomputeTiers(p *Player) []Notice {
	old := p.Stats
	p.Stats = make(map[StatKind]int, len(StatKinds))
	var notices []Notice
	for _, k := range StatKinds {
		tier := c.CalculateStatTier(k, p.PR.Get(k))
		p.Stats[k] = tier
		if tier > old[k] {
			notices = append(notices, notice(NoticeTierUp, "TIER UP: %s (tier %d)!", k.Label(), tier))
		}
	}
	return notices
}

// PRFields holds submitted personal-record values keyed by stat.
type PRFields map[StatKind]float64

// RecordPersonalRecords merges fields into the player's records.
// A strictly better value appends one history entry. Vitality is ignored;
// it follows the sleep average.
func (c Catalog) RecordPersonalRecords(p Player, fields PRFields, now time.Time) (Player, []PRHistoryEntry, []Notice) {
	var history []PRHistoryEntry
	for _, k := range StatKinds {
		v, ok := fields[k]
		if !ok || k == StatVitality {
			continue
		}
		old := p.PR.Get(k)
		better := v > old
		if k.LowerIsBetter() {
			better = v < old
		}
		if better {
			history = append(history, PRHistoryEntry{Date: now.Format(time.RFC3339), Stat: k, Value: v})
		}
		p.PR.Set(k, v)
	}
	notices := c.recomputeTiers(&p)
	return p, history, notices
}
