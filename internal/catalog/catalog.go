// Package catalog holds the immutable list of fasting methods.
package catalog

import (
	"fmt"
)

// Category groups methods by cadence.
type Category string

const (
	CategoryDaily    Category = "daily"
	CategoryWeekly   Category = "weekly"
	CategoryExtended Category = "extended"
)

// Label returns the heading used when listing a category.
func (c Category) Label() string {
	switch c {
	case CategoryDaily:
		return "Daily Protocols"
	case CategoryWeekly:
		return "Weekly Protocols"
	case CategoryExtended:
		return "Extended Fasts"
	default:
		return string(c)
	}
}

// Categories in display order.
var Categories = []Category{CategoryDaily, CategoryWeekly, CategoryExtended}

// Difficulty levels.
const (
	DifficultyBeginner     = "Beginner"
	DifficultyIntermediate = "Intermediate"
	DifficultyAdvanced     = "Advanced"
	DifficultyExpert       = "Expert"
	DifficultyAny          = "Any"
)

// CustomID is the id of the user-configurable method.
const CustomID = "custom"

// Method is a named fasting protocol.
type Method struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Subtitle           string   `json:"subtitle"`
	FastHours          float64  `json:"fastHours"`
	EatHours           float64  `json:"eatHours"`
	Description        string   `json:"description"`
	Category           Category `json:"category"`
	Difficulty         string   `json:"difficulty"`
	Icon               string   `json:"icon"`
	CalorieRestricted  bool     `json:"calorieRestricted,omitempty"`
	RestrictedCalories int      `json:"restrictedCalories,omitempty"`
	IsCustom           bool     `json:"isCustom,omitempty"`
}

// Resolve returns the method with the custom hours applied when it is the custom method.
// Non-positive custom fasting hours leave the catalog default in place.
func (m Method) Resolve(customFastHours, customEatHours float64) Method {
	if !m.IsCustom {
		return m
	}
	if customFastHours > 0 {
		m.FastHours = customFastHours
	}
	if customEatHours >= 0 {
		m.EatHours = customEatHours
	}
	return m
}

// Group is a category with its methods.
type Group struct {
	Category Category
	Label    string
	Methods  []Method
}

// Catalog is a read-only method registry.
type Catalog struct {
	methods []Method
	byID    map[string]int
}

// New returns the built-in catalog.
func New() *Catalog {
	c, err := NewFromMethods(builtin)
	if err != nil {
		panic(err)
	}
	return c
}

// NewFromMethods builds a catalog from methods. The first entry is the fallback.
func NewFromMethods(methods []Method) (*Catalog, error) {
	if len(methods) == 0 {
		return nil, fmt.Errorf("catalog: no methods")
	}
	c := &Catalog{
		methods: make([]Method, len(methods)),
		byID:    make(map[string]int, len(methods)),
	}
	copy(c.methods, methods)
	for i, m := range c.methods {
		if m.ID == "" {
			return nil, fmt.Errorf("catalog: method %d has empty id", i)
		}
		if _, dup := c.byID[m.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate method id %q", m.ID)
		}
		if m.FastHours <= 0 {
			return nil, fmt.Errorf("catalog: method %q has non-positive fast hours", m.ID)
		}
		if m.EatHours < 0 {
			return nil, fmt.Errorf("catalog: method %q has negative eat hours", m.ID)
		}
		c.byID[m.ID] = i
	}
	return c, nil
}

// Get returns the method for id, or the fallback for unknown ids.
func (c *Catalog) Get(id string) Method {
	if m, ok := c.Lookup(id); ok {
		return m
	}
	return c.Fallback()
}

// Lookup returns the method for id and whether it exists.
func (c *Catalog) Lookup(id string) (Method, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Method{}, false
	}
	return c.methods[i], true
}

// Has reports whether id is a known method.
func (c *Catalog) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// Fallback returns the method used for unknown ids.
func (c *Catalog) Fallback() Method {
	return c.methods[0]
}

// All returns every method in catalog order.
func (c *Catalog) All() []Method {
	out := make([]Method, len(c.methods))
	copy(out, c.methods)
	return out
}

// IDs returns every method id in catalog order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.methods))
	for i, m := range c.methods {
		ids[i] = m.ID
	}
	return ids
}

// ByCategory returns the methods in one category.
func (c *Catalog) ByCategory(cat Category) []Method {
	var out []Method
	for _, m := range c.methods {
		if m.Category == cat {
			out = append(out, m)
		}
	}
	return out
}

// Groups returns the non-empty categories in display order.
func (c *Catalog) Groups() []Group {
	var groups []Group
	for _, cat := range Categories {
		methods := c.ByCategory(cat)
		if len(methods) == 0 {
			continue
		}
		groups = append(groups, Group{Category: cat, Label: cat.Label(), Methods: methods})
	}
	return groups
}
