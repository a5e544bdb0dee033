package model

// Default settings values.
const (
	DefaultMethodID        = "16-8"
	DefaultStartTime       = "20:00"
	DefaultWeeklyGoal      = 5
	DefaultCustomFastHours = 16
	DefaultCustomEatHours  = 8
	MaxWeeklyGoal          = 7
)

// Settings holds the user's preferences. It is saved wholesale.
type Settings struct {
	MethodID        string  `json:"methodId"`
	StartTime       string  `json:"startTime"`
	WeeklyGoal      int     `json:"weeklyGoal"`
	Notifications   bool    `json:"notifications"`
	CustomFastHours float64 `json:"customFastHours"`
	CustomEatHours  float64 `json:"customEatHours"`
}

// DefaultSettings returns the first-run settings.
func DefaultSettings() Settings {
	return Settings{
		MethodID:        DefaultMethodID,
		StartTime:       DefaultStartTime,
		WeeklyGoal:      DefaultWeeklyGoal,
		Notifications:   false,
		CustomFastHours: DefaultCustomFastHours,
		CustomEatHours:  DefaultCustomEatHours,
	}
}
