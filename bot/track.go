// Copyright (c) 2017 the Lingo contributors
// released under the MIT license

package bot

import (
	"github.com/lost1n/lingo/bot/logger"
)

// Tracker records user-behavior events ("I set context", "I ask for
// help", ...). Failures to track must never affect the conversation.
type Tracker interface {
	Track(event string, userID string, message string)
	SetPerson(userID string, profile Profile)
}

// loggerTracker writes events to the log manager's "events" category;
// deployments that want a real analytics backend can swap in their own
// Tracker.
type loggerTracker struct {
	logger *logger.Manager
}

func NewLoggerTracker(logger *logger.Manager) Tracker {
	return &loggerTracker{logger: logger}
}

func (t *loggerTracker) Track(event string, userID string, message string) {
	if message == "" {
		t.logger.Info("events", event, userID)
		return
	}
	t.logger.Info("events", event, userID, message)
}

func (t *loggerTracker) SetPerson(userID string, profile Profile) {
	t.logger.Info("events", "person", userID, profile.FirstName, profile.Locale)
}
