// Package model defines the domain models for FastPilot.
package model

// Store key names. The storage layer namespaces each one under a common prefix.
const (
	KeySettings   = "settings"
	KeyFasts      = "fasts"
	KeyActiveFast = "active_fast"
	KeyOnboarded  = "onboarded"
)

// AllKeys lists every key the persistence gateway owns.
var AllKeys = []string{KeySettings, KeyFasts, KeyActiveFast, KeyOnboarded}
