package tui

import (
	"time"

	"github.com/steviee/mc-locate/internal/locator"
)

// tickMsg is sent on every auto-refresh tick
type tickMsg time.Time

// lookupDoneMsg is sent when one full lookup has completed
type lookupDoneMsg struct {
	report *locator.Report
	err    error
}

// clearErrorMsg is sent to clear the error message
type clearErrorMsg struct{}
