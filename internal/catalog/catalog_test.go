package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinCatalog(t *testing.T) {
	c := New()

	assert.Len(t, c.All(), 14)
	assert.Equal(t, "16-8", c.Fallback().ID)
	assert.True(t, c.Has(CustomID))

	seen := make(map[string]bool)
	for _, m := range c.All() {
		assert.False(t, seen[m.ID], "duplicate id %s", m.ID)
		seen[m.ID] = true
		assert.Greater(t, m.FastHours, 0.0, m.ID)
		assert.GreaterOrEqual(t, m.EatHours, 0.0, m.ID)
	}
}

func TestGet(t *testing.T) {
	c := New()

	tests := []struct {
		id        string
		wantID    string
		wantHours float64
	}{
		{"16-8", "16-8", 16},
		{"23-1", "23-1", 23},
		{"72-hour", "72-hour", 72},
		{"adf", "adf", 36},
		{"circadian", "circadian", 13},
		{"nonexistent", "16-8", 16},
		{"", "16-8", 16},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			m := c.Get(tt.id)
			assert.Equal(t, tt.wantID, m.ID)
			assert.Equal(t, tt.wantHours, m.FastHours)
		})
	}
}

func TestLookup(t *testing.T) {
	c := New()

	m, ok := c.Lookup("5-2")
	require.True(t, ok)
	assert.True(t, m.CalorieRestricted)
	assert.Equal(t, 500, m.RestrictedCalories)

	_, ok = c.Lookup("nope")
	assert.False(t, ok)
}

func TestResolveCustom(t *testing.T) {
	c := New()

	custom := c.Get(CustomID).Resolve(20, 4)
	assert.Equal(t, 20.0, custom.FastHours)
	assert.Equal(t, 4.0, custom.EatHours)

	// Non-custom methods ignore the override
	std := c.Get("18-6").Resolve(20, 4)
	assert.Equal(t, 18.0, std.FastHours)

	// Invalid custom hours keep the default
	assert.Equal(t, 16.0, c.Get(CustomID).Resolve(0, 8).FastHours)
}

func TestGroups(t *testing.T) {
	groups := New().Groups()
	require.Len(t, groups, 3)

	assert.Equal(t, "Daily Protocols", groups[0].Label)
	assert.Equal(t, "Weekly Protocols", groups[1].Label)
	assert.Equal(t, "Extended Fasts", groups[2].Label)

	total := 0
	for _, g := range groups {
		for _, m := range g.Methods {
			assert.Equal(t, g.Category, m.Category)
		}
		total += len(g.Methods)
	}
	assert.Equal(t, 14, total)
	assert.Len(t, groups[2].Methods, 3)
}

func TestNewFromMethodsValidation(t *testing.T) {
	_, err := NewFromMethods(nil)
	assert.Error(t, err)

	_, err = NewFromMethods([]Method{{ID: "a", FastHours: 1}, {ID: "a", FastHours: 2}})
	assert.Error(t, err)

	_, err = NewFromMethods([]Method{{ID: "a", FastHours: 0}})
	assert.Error(t, err)

	c, err := NewFromMethods([]Method{{ID: "x", FastHours: 10}, {ID: "y", FastHours: 12}})
	require.NoError(t, err)
	assert.Equal(t, "x", c.Get("zzz").ID)
	assert.Equal(t, []string{"x", "y"}, c.IDs())
}
