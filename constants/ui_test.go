package constants

import (
	"fmt"
	"strings"
	"testing"
)

func TestHighScoreFormat(t *testing.T) {
	got := fmt.Sprintf(HighScoreFormat, "10", "3")
	if got != "HIGHSCORE: 10\nYOUR SCORE: 3" {
		t.Fatalf("formatted = %q", got)
	}
}

func TestTextAnchorsInsideWorld(t *testing.T) {
	anchors := map[string][2]float64{
		"loading":      {LoadingAnchorX, LoadingAnchorY},
		"title":        {TitleAnchorX, TitleAnchorY},
		"instructions": {InstructionsAnchorX, InstructionsAnchorY},
		"about":        {AboutAnchorX, AboutAnchorY},
		"highscore":    {HighScoreAnchorX, HighScoreAnchorY},
		"score":        {ScoreAnchorX, ScoreAnchorY},
	}
	playable := float64(WorldHeight-GroundHeight) / WorldHeight
	for name, a := range anchors {
		if a[0] <= 0 || a[0] >= 1 || a[1] <= 0 || a[1] >= playable {
			t.Errorf("%s anchor %v outside the playfield", name, a)
		}
	}
}

func TestFlyingFramesLoop(t *testing.T) {
	f := BirdFlyingFrames
	if f[0] != f[len(f)-1] {
		t.Fatalf("animation %v does not return to its first frame", f)
	}
	for _, frame := range f {
		if frame < 0 || frame > BirdDeadFrame {
			t.Fatalf("frame %d outside sprite sheet", frame)
		}
	}
}

func TestInstructionsAreMultiline(t *testing.T) {
	for _, s := range []string{InstructionsText, InstructionsTextGameOver} {
		if strings.Count(s, "\n") != 2 {
			t.Errorf("%q should be three lines", s)
		}
	}
}
