// Package ui contains the Bubble Tea program that powers the glyph picker.
// The package is structured so the Model type focuses on message orchestration,
// while dedicated helpers own navigation, input, rendering, and state updates.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (key presses, mouse clicks, resizes, command results).
//   - Navigation helpers (internal/ui/navigation.go) move the grid cursor,
//     switch category tabs and run the pick workflow. Filter helpers
//     (internal/ui/input.go) keep all text entry concerns isolated from the
//     Bubble Tea event loop.
//
// State ownership:
//   - Each category tab is an internal/ui/state.Page tracking its glyphs,
//     filter, grid cursor and row viewport.
//   - The first tab mirrors a recents.Cache. Picks made on other tabs are
//     queued as pending inserts and flushed when the recents tab is opened or
//     the popup closes; picks made on the recents tab move the glyph to the
//     front straight away.
//   - Typing the glyph into the target pane runs through the internal/ui/command
//     bus so the tmux round trip happens off the event loop.
package ui
