// Package model defines the core types and interfaces for the UI.
package model

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/palemoky/pontoon/internal/game/round"
	"github.com/palemoky/pontoon/internal/game/session"
	"github.com/palemoky/pontoon/internal/storage"
)

// GamePhase represents the current screen.
type GamePhase int

const (
	PhaseTitle     GamePhase = iota // 欢迎界面
	PhasePlaying                    // player and banker turns
	PhaseRoundOver                  // outcome shown, waiting for next round
	PhaseSummary                    // session statistics and leaderboard
	PhaseError                      // a round violated an invariant
)

// --- Tea Messages ---

// BankerTickMsg paces the banker's draws.
type BankerTickMsg struct{}

// StatsSavedMsg reports the result of writing a statistics snapshot.
type StatsSavedMsg struct {
	Err error
}

// LeaderboardMsg carries the leaderboard fetched for the summary screen.
type LeaderboardMsg struct {
	Entries []*storage.LeaderboardEntry
	Err     error
}

// SoundPlayer plays named cues.
type SoundPlayer interface {
	Play(name string)
}

// --- Model Interface ---

// Model is what the view package needs to render a screen.
type Model interface {
	Phase() GamePhase

	// Round state; Round is nil before the first deal.
	Round() *round.Round
	LastResult() (round.Result, bool)
	Stats() session.Statistics
	PlayerName() string
	Leaderboard() []*storage.LeaderboardEntry

	// UI components
	NameInput() *textinput.Model
	HelpView() string
	Notice() string
	ShowingRules() bool
	Err() error

	// Dimensions
	Width() int
	Height() int
}
