package constants

// UI text
const (
	TitleText                = "FLAPPY BIRD"
	InstructionsText         = "TOUCH\nTO\nFLY"
	InstructionsTextGameOver = "TOUCH\nFOR GO\nBACK"
	AboutText                = "Developer\nEugene Obrezkov\nghaiklor@gmail.com\n\n\nGraphic\nDima Lezhenko"
	LoadingText              = "LOADING..."
	HighScoreFormat          = "HIGHSCORE: %s\nYOUR SCORE: %s"
)

// Text anchors as fractions of the world size
const (
	LoadingAnchorX      = 0.5
	LoadingAnchorY      = 0.5
	TitleAnchorX        = 0.5
	TitleAnchorY        = 0.15
	InstructionsAnchorX = 0.75
	InstructionsAnchorY = 0.45
	AboutAnchorX        = 0.5
	AboutAnchorY        = 0.7
	HighScoreAnchorX    = 0.5
	HighScoreAnchorY    = 0.3
	ScoreAnchorX        = 0.5
	ScoreAnchorY        = 0.1
)

// PausedText is shown over the playfield while paused
const PausedText = "PAUSED"
