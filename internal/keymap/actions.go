// Package keymap binds keys to player actions.
package keymap

// Action is a user-triggerable action.
type Action string

const (
	ActionQuit Action = "quit"
	ActionHelp Action = "help"

	// Transport
	ActionPlayPause   Action = "play_pause"
	ActionNextTrack   Action = "next_track"
	ActionPrevTrack   Action = "prev_track"
	ActionSeekForward Action = "seek_forward"
	ActionSeekBack    Action = "seek_back"
	ActionCycleMode   Action = "cycle_mode"
	ActionVolumeUp    Action = "volume_up"
	ActionVolumeDown  Action = "volume_down"

	// Visibility and panels
	ActionTogglePlayer      Action = "toggle_player"
	ActionToggleLock        Action = "toggle_lock"
	ActionToggleVolumePanel Action = "toggle_volume_panel"
	ActionToggleListPanel   Action = "toggle_list_panel"
	ActionDismiss           Action = "dismiss"

	// Navigation
	ActionSongInfo   Action = "song_info"
	ActionArtistInfo Action = "artist_info"

	// List panel
	ActionMoveUp   Action = "move_up"
	ActionMoveDown Action = "move_down"
	ActionSelect   Action = "select"
	ActionDelete   Action = "delete"
	ActionClear    Action = "clear"
)

// Context scopes a binding. Context bindings shadow global ones.
type Context string

const (
	ContextGlobal Context = "global"
	ContextList   Context = "list"
)

// Binding ties keys to an action in a context.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     Context
}

// Bindings is the default key map.
var Bindings = []Binding{
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", ContextGlobal},
	{ActionHelp, []string{"?"}, "Toggle help", ContextGlobal},

	{ActionPlayPause, []string{" "}, "Play/pause", ContextGlobal},
	{ActionNextTrack, []string{"n", "pgdown"}, "Next song", ContextGlobal},
	{ActionPrevTrack, []string{"p", "pgup"}, "Previous song", ContextGlobal},
	{ActionSeekForward, []string{"right", "shift+right"}, "Seek +5s", ContextGlobal},
	{ActionSeekBack, []string{"left", "shift+left"}, "Seek -5s", ContextGlobal},
	{ActionCycleMode, []string{"m"}, "Cycle play mode", ContextGlobal},
	{ActionVolumeUp, []string{"+", "="}, "Volume up", ContextGlobal},
	{ActionVolumeDown, []string{"-"}, "Volume down", ContextGlobal},

	{ActionTogglePlayer, []string{"tab"}, "Show/hide player", ContextGlobal},
	{ActionToggleLock, []string{"L"}, "Lock player", ContextGlobal},
	{ActionToggleVolumePanel, []string{"v"}, "Volume panel", ContextGlobal},
	{ActionToggleListPanel, []string{"l"}, "Play list", ContextGlobal},
	{ActionDismiss, []string{"esc"}, "Close panels", ContextGlobal},

	{ActionSongInfo, []string{"i"}, "Song page", ContextGlobal},
	{ActionArtistInfo, []string{"a"}, "Artist page", ContextGlobal},

	{ActionMoveUp, []string{"k", "up"}, "Move up", ContextList},
	{ActionMoveDown, []string{"j", "down"}, "Move down", ContextList},
	{ActionSelect, []string{"enter"}, "Play selected", ContextList},
	{ActionDelete, []string{"d", "delete"}, "Remove selected", ContextList},
	{ActionClear, []string{"c"}, "Clear list", ContextList},
}

// ByContext returns the bindings of one context.
func ByContext(ctx Context) []Binding {
	var result []Binding
	for _, b := range Bindings {
		if b.Context == ctx {
			result = append(result, b)
		}
	}
	return result
}
