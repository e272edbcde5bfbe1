package systems

import (
	"fmt"
	"testing"
	"time"

	"github.com/lixenwraith/flappy/persistence"
	"github.com/lixenwraith/flappy/physics"
)

func TestOnGapTraversedScoresOnce(t *testing.T) {
	ctx, presenter, sound := newTestContext(t)
	spawner := NewSpawnSystem(ctx)
	score := NewScoreSystem(ctx, spawner)
	text := presenter.CreateEntityAt(0, 0)
	score.SetScoreText(text)

	spawner.SpawnPair()
	sensor := spawner.Sensors()[0]

	if !score.OnGapTraversed(sensor) {
		t.Fatal("first traversal not scored")
	}
	if score.OnGapTraversed(sensor) {
		t.Fatal("second traversal scored")
	}

	if ctx.Session.Score != 1 {
		t.Errorf("score = %d, want 1", ctx.Session.Score)
	}
	if got := presenter.texts[text]; got != "1" {
		t.Errorf("score text = %q, want %q", got, "1")
	}
	if sound.scores != 1 {
		t.Errorf("score sounds = %d, want 1", sound.scores)
	}
}

func TestCheckTraversalAcrossFrames(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	spawner := NewSpawnSystem(ctx)
	score := NewScoreSystem(ctx, spawner)

	spawner.SpawnPair()
	sensor := spawner.Sensors()[0]

	// Bird sits across the sensor for several frames
	bird := physics.NewBody(sensor.Body.X-10, 200, 48, 34)
	spawner.Freeze()

	total := 0
	for i := 0; i < 5; i++ {
		ctx.Advance(16 * time.Millisecond)
		spawner.Update(16 * time.Millisecond)
		total += score.CheckTraversal(bird)
	}

	if total != 1 || ctx.Session.Score != 1 {
		t.Fatalf("scored %d (session %d) while overlapping one sensor, want 1", total, ctx.Session.Score)
	}
}

func TestCheckTraversalMuted(t *testing.T) {
	ctx, _, sound := newTestContext(t)
	spawner := NewSpawnSystem(ctx)
	score := NewScoreSystem(ctx, spawner)
	ctx.ToggleMute()

	spawner.SpawnPair()
	score.OnGapTraversed(spawner.Sensors()[0])

	if ctx.Session.Score != 1 {
		t.Fatalf("score = %d, want 1", ctx.Session.Score)
	}
	if sound.scores != 0 {
		t.Fatalf("muted context played %d score sounds", sound.scores)
	}
}

func TestFinalizeHighScore(t *testing.T) {
	tests := []struct {
		name     string
		stored   int
		hasPrior bool
		score    int
		wantHigh string
	}{
		{"absent prior", 0, false, 5, "5"},
		{"beats prior", 3, true, 5, "5"},
		{"below prior", 9, true, 5, "9"},
		{"zero run", 0, false, 0, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _, _ := newTestContext(t)
			if tt.hasPrior {
				if err := ctx.Store.SetHighScore(tt.stored); err != nil {
					t.Fatal(err)
				}
			}
			s := NewScoreSystem(ctx, NewSpawnSystem(ctx))

			high, session := s.FinalizeHighScore(tt.score)
			if high != tt.wantHigh || session != FormatScore(tt.score) {
				t.Fatalf("FinalizeHighScore(%d) = %q, %q", tt.score, high, session)
			}

			stored, ok, err := ctx.Store.HighScore()
			if err != nil || !ok || FormatScore(stored) != tt.wantHigh {
				t.Fatalf("stored = %d, %v, %v", stored, ok, err)
			}
		})
	}
}

func TestFinalizeHighScoreStoreErrors(t *testing.T) {
	corrupt := fmt.Errorf("%w: bad toml", persistence.ErrCorruptStore)
	tests := []struct {
		name        string
		readErr     error
		writeErr    error
		wantWritten []int
	}{
		{"corrupt read and failing write", corrupt, errBoom, []int{7}},
		{"corrupt read overwritten", corrupt, nil, []int{7}},
		{"io read failure skips write", errBoom, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _, _ := newTestContext(t)
			store := &failingStore{readErr: tt.readErr, writeErr: tt.writeErr}
			ctx.Store = store
			s := NewScoreSystem(ctx, NewSpawnSystem(ctx))

			high, session := s.FinalizeHighScore(7)
			if high != "7" || session != "7" {
				t.Fatalf("got %q, %q, want computed value despite store errors", high, session)
			}
			if len(store.written) != len(tt.wantWritten) {
				t.Fatalf("written = %v, want %v", store.written, tt.wantWritten)
			}
			for i := range tt.wantWritten {
				if store.written[i] != tt.wantWritten[i] {
					t.Fatalf("written = %v, want %v", store.written, tt.wantWritten)
				}
			}
		})
	}
}

func TestHighScoreText(t *testing.T) {
	got := HighScoreText("12", "4")
	want := "HIGHSCORE: 12\nYOUR SCORE: 4"
	if got != want {
		t.Fatalf("HighScoreText = %q, want %q", got, want)
	}
}
