// Package ui provides the main entry point for the UI.
package ui

import (
	"time"

	"github.com/palemoky/pontoon/internal/game/round"
	"github.com/palemoky/pontoon/internal/game/session"
	"github.com/palemoky/pontoon/internal/ui/model"
	"github.com/palemoky/pontoon/internal/ui/view"
)

// NewTableModel creates a TableModel with the view renderer wired in.
func NewTableModel(deck round.Dealer, s *session.Session, sp model.SoundPlayer, bankerDelay time.Duration) *model.TableModel {
	m := model.NewTableModel(deck, s, sp, bankerDelay)
	m.SetViewRenderer(view.CreateViewRenderer())
	return m
}
