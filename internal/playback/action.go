package playback

// Action is a one-shot signal emitted by the store to request a transient
// notification. ActionOther is the consumed/idle value.
type Action int

const (
	ActionOther Action = iota
	ActionAdd
	ActionPlay
	ActionDelete
	ActionClear
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionOther:
		return "Other"
	case ActionAdd:
		return "Add"
	case ActionPlay:
		return "Play"
	case ActionDelete:
		return "Delete"
	case ActionClear:
		return "Clear"
	default:
		return "Unknown"
	}
}

// Title returns the tooltip text for the action, or "" when the action
// does not produce a notification.
func (a Action) Title() string {
	switch a {
	case ActionAdd:
		return "Added to list"
	case ActionPlay:
		return "Playback started"
	default:
		return ""
	}
}
