package tui

// Message types for Bubble Tea update loop.

// dispatchMsg carries a callback posted by a timer goroutine; it runs inside Update.
type dispatchMsg struct{ fn func() }

// rotateMsg advances the per-tick icon rotation started as generation seq.
type rotateMsg struct{ seq int }

// fadeMsg advances the cross-fade started as generation seq.
type fadeMsg struct{ seq int }
