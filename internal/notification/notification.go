// Package notification provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	"github.com/gen2brain/beeep"

	"github.com/zhubert/readthrough/internal/logger"
)

// AppName is the title used for every notification.
const AppName = "readthrough"

// notify is swapped out in tests.
var notify = beeep.Notify

// Send sends a desktop notification with the given title and message.
func Send(title, message string) error {
	logger.Debug("notification: sending title=%q message=%q", title, message)
	// Empty icon lets beeep use the platform default
	err := notify(title, message, "")
	if err != nil {
		logger.Warn("notification: failed to send: %v", err)
	}
	return err
}

// ChecklistCompleted announces that every item of the named checklist is ticked.
func ChecklistCompleted(docTitle, message string) error {
	if message == "" {
		message = docTitle + " is complete"
	}
	return Send(AppName, message)
}
