package shell

import "github.com/alexisbeaulieu97/sdui/internal/model"

// GeneratedMsg carries the outcome of a generation request. Seq identifies
// the request so answers to cancelled prompts can be dropped.
type GeneratedMsg struct {
	Seq    int
	Screen *model.Screen
	Err    error
}

// ToggleThemeMsg switches between the light and dark variants.
type ToggleThemeMsg struct{}
