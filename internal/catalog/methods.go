package catalog

var builtin = []Method{
	{
		ID:          "16-8",
		Name:        "16:8",
		Subtitle:    "Leangains",
		FastHours:   16,
		EatHours:    8,
		Description: "Fast for 16 hours and eat within an 8-hour window. The most popular starting point.",
		Category:    CategoryDaily,
		Difficulty:  DifficultyBeginner,
		Icon:        "⏱",
	},
	{
		ID:          "18-6",
		Name:        "18:6",
		Subtitle:    "Extended Daily",
		FastHours:   18,
		EatHours:    6,
		Description: "An 18-hour fast with a 6-hour eating window for stronger fat adaptation.",
		Category:    CategoryDaily,
		Difficulty:  DifficultyBeginner,
		Icon:        "🔥",
	},
	{
		ID:          "14-10",
		Name:        "14:10",
		Subtitle:    "Gentle Start",
		FastHours:   14,
		EatHours:    10,
		Description: "A gentle 14-hour fast that suits beginners and women easing into fasting.",
		Category:    CategoryDaily,
		Difficulty:  DifficultyBeginner,
		Icon:        "🌱",
	},
	{
		ID:          "12-12",
		Name:        "12:12",
		Subtitle:    "Balanced",
		FastHours:   12,
		EatHours:    12,
		Description: "An even split between fasting and eating. A natural overnight fast.",
		Category:    CategoryDaily,
		Difficulty:  DifficultyBeginner,
		Icon:        "⚖",
	},
	{
		ID:          "20-4",
		Name:        "20:4",
		Subtitle:    "Warrior Diet",
		FastHours:   20,
		EatHours:    4,
		Description: "Fast for 20 hours with one 4-hour eating window in the evening.",
		Category:    CategoryDaily,
		Difficulty:  DifficultyIntermediate,
		Icon:        "⚔",
	},
	{
		ID:          "23-1",
		Name:        "OMAD",
		Subtitle:    "One Meal a Day",
		FastHours:   23,
		EatHours:    1,
		Description: "Eat one meal within a single hour each day.",
		Category:    CategoryDaily,
		Difficulty:  DifficultyAdvanced,
		Icon:        "🍽",
	},
	{
		ID:                 "5-2",
		Name:               "5:2",
		Subtitle:           "Fast Diet",
		FastHours:          24,
		EatHours:           0,
		Description:        "Eat normally five days a week and restrict to 500 calories on two non-consecutive days.",
		Category:           CategoryWeekly,
		Difficulty:         DifficultyIntermediate,
		Icon:               "📅",
		CalorieRestricted:  true,
		RestrictedCalories: 500,
	},
	{
		ID:          "eat-stop-eat",
		Name:        "Eat-Stop-Eat",
		Subtitle:    "24h Fast",
		FastHours:   24,
		EatHours:    0,
		Description: "One or two full 24-hour fasts per week.",
		Category:    CategoryWeekly,
		Difficulty:  DifficultyIntermediate,
		Icon:        "⏸",
	},
	{
		ID:          "adf",
		Name:        "ADF",
		Subtitle:    "Alternate Day",
		FastHours:   36,
		EatHours:    12,
		Description: "Alternate between fasting days and eating days.",
		Category:    CategoryWeekly,
		Difficulty:  DifficultyAdvanced,
		Icon:        "🔄",
	},
	{
		ID:          "36-hour",
		Name:        "36 Hour",
		Subtitle:    "Monk Fast",
		FastHours:   36,
		EatHours:    0,
		Description: "Skip a full day of eating, from dinner to breakfast two days later.",
		Category:    CategoryExtended,
		Difficulty:  DifficultyAdvanced,
		Icon:        "🧘",
	},
	{
		ID:          "48-hour",
		Name:        "48 Hour",
		Subtitle:    "Two Day Fast",
		FastHours:   48,
		EatHours:    0,
		Description: "A two-day fast for deeper autophagy.",
		Category:    CategoryExtended,
		Difficulty:  DifficultyAdvanced,
		Icon:        "💪",
	},
	{
		ID:          "72-hour",
		Name:        "72 Hour",
		Subtitle:    "Three Day Fast",
		FastHours:   72,
		EatHours:    0,
		Description: "A three-day fast. Only with experience and medical guidance.",
		Category:    CategoryExtended,
		Difficulty:  DifficultyExpert,
		Icon:        "⚡",
	},
	{
		ID:          "circadian",
		Name:        "Circadian",
		Subtitle:    "Sunrise to Sunset",
		FastHours:   13,
		EatHours:    11,
		Description: "Eat during daylight hours, aligned with your body clock.",
		Category:    CategoryDaily,
		Difficulty:  DifficultyBeginner,
		Icon:        "☀",
	},
	{
		ID:          CustomID,
		Name:        "Custom",
		Subtitle:    "Your Own Schedule",
		FastHours:   16,
		EatHours:    8,
		Description: "Set your own fasting and eating hours.",
		Category:    CategoryDaily,
		Difficulty:  DifficultyAny,
		Icon:        "⚙",
		IsCustom:    true,
	},
}
