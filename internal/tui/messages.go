package tui

import (
	"github.com/trknhr/postflow/internal/viewstate"
)

// getStateMsg and sendStateMsg wrap channel events so they can travel
// through the Bubble Tea update loop.
type getStateMsg viewstate.State[string]

type sendStateMsg viewstate.State[int]
