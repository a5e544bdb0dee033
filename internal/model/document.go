package model

import "math"

// ExportVersion is the document version written by ExportAll.
const ExportVersion = 1

// ExportDocument is the portable backup of settings and history.
// Version holds whatever JSON value the document carried.
type ExportDocument struct {
	Version    any          `json:"version"`
	ExportDate string       `json:"exportDate"`
	Settings   *Settings    `json:"settings,omitempty"`
	Fasts      []FastRecord `json:"fasts"`
}

// Acceptable reports whether the document carries a truthy version marker and
// a fasts list. Unknown future versions are accepted.
func (d *ExportDocument) Acceptable() bool {
	return d != nil && truthy(d.Version) && d.Fasts != nil
}

// truthy reports whether a decoded JSON value counts as set: a non-zero
// number, a non-empty string, true, or any object or array.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case float64:
		return x != 0 && !math.IsNaN(x)
	case int:
		return x != 0
	case string:
		return x != ""
	default:
		return true
	}
}
