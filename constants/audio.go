package constants

import "time"

// Flap Sound Timing
const (
	FlapSoundDuration = 90 * time.Millisecond
	FlapSoundAttack   = 5 * time.Millisecond
	FlapSoundRelease  = 60 * time.Millisecond
)

// Score Sound Timing
const (
	ScoreSoundNote1Duration = 60 * time.Millisecond
	ScoreSoundNote2Duration = 180 * time.Millisecond
	ScoreSoundAttack        = 5 * time.Millisecond
	ScoreSoundNote1Release  = 30 * time.Millisecond
	ScoreSoundNote2Release  = 140 * time.Millisecond
)

// Hurt Sound Timing
const (
	HurtSoundDuration = 300 * time.Millisecond
	HurtSoundAttack   = 5 * time.Millisecond
	HurtSoundRelease  = 200 * time.Millisecond
)
