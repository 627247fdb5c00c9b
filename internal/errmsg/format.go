// Package errmsg formats failures shown in the player status line.
package errmsg

import "fmt"

// Op names an operation that can fail.
type Op string

const (
	OpLibraryScan   Op = "scan library"
	OpConfigLoad    Op = "load config"
	OpStateOpen     Op = "open preferences"
	OpStateLoad     Op = "load preferences"
	OpPlaybackStart Op = "play"
	OpPlaybackLoad  Op = "load song"
	OpNotify        Op = "send notification"
	OpMPRIS         Op = "start media controls"
)

// Format creates a user-facing message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith adds the subject of the operation, usually a song or path.
func FormatWith(op Op, subject string, err error) string {
	if err == nil {
		return ""
	}
	if subject == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, subject, err)
}
