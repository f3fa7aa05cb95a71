package ui

import (
	"strings"
	"testing"

	"liferpg/internal/engine"
)

func TestKindIcon(t *testing.T) {
	if got := KindIcon(engine.QuestHardcore); got != IconFire {
		t.Fatalf("hardcore icon = %q", got)
	}
	if got := KindIcon(engine.QuestDaily); got != IconQuest {
		t.Fatalf("daily icon = %q", got)
	}
}

func TestNoticeLineKeepsMessage(t *testing.T) {
	n := engine.Notice{Kind: engine.NoticePenalty, Message: "ALCOHOL PENALTY: -100 XP."}
	if !strings.Contains(NoticeLine(n), n.Message) {
		t.Fatalf("notice line lost message: %q", NoticeLine(n))
	}
}

func TestTierTextClamps(t *testing.T) {
	if got := strings.Count(TierText(9, 6), "★"); got != 6 {
		t.Fatalf("filled = %d, want 6", got)
	}
	if got := strings.Count(TierText(-1, 6), "☆"); got != 6 {
		t.Fatalf("empty = %d, want 6", got)
	}
}
