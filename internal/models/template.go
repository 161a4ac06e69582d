package models

// TemplateRoutine is a routine blueprint inside a template pack.
type TemplateRoutine struct {
	Title          string       `json:"title" yaml:"title"`
	Time           string       `json:"time" yaml:"time"`
	ReminderOffset int          `json:"reminder_offset" yaml:"reminder_offset"`
	RepeatOption   RepeatOption `json:"repeat_option" yaml:"repeat_option"`
	CustomDays     []DayOfWeek  `json:"custom_days,omitempty" yaml:"custom_days,omitempty"`
}

// RoutineTemplate is a named pack of routine blueprints.
type RoutineTemplate struct {
	ID          string            `json:"id" yaml:"id"`
	Name        string            `json:"name" yaml:"name"`
	Description string            `json:"description" yaml:"description"`
	Routines    []TemplateRoutine `json:"routines" yaml:"routines"`
}

// BuiltinTemplates are the packs shipped with the app.
var BuiltinTemplates = []RoutineTemplate{
	{
		ID:          "morning",
		Name:        "Morning Routine",
		Description: "Start your day right with energizing activities",
		Routines: []TemplateRoutine{
			{Title: "Wake Up", Time: "06:00", ReminderOffset: 5, RepeatOption: RepeatDaily},
			{Title: "Morning Stretch", Time: "06:15", ReminderOffset: 5, RepeatOption: RepeatDaily},
			{Title: "Healthy Breakfast", Time: "06:45", ReminderOffset: 10, RepeatOption: RepeatDaily},
			{Title: "Plan Your Day", Time: "07:15", ReminderOffset: 5, RepeatOption: RepeatDaily},
		},
	},
	{
		ID:          "student",
		Name:        "Student Study Routine",
		Description: "Optimize your study sessions for better learning",
		Routines: []TemplateRoutine{
			{Title: "Morning Review", Time: "08:00", ReminderOffset: 10, RepeatOption: RepeatWeekdays},
			{Title: "Study Session 1", Time: "09:00", ReminderOffset: 5, RepeatOption: RepeatWeekdays},
			{Title: "Break & Snack", Time: "10:30", ReminderOffset: 5, RepeatOption: RepeatWeekdays},
			{Title: "Study Session 2", Time: "11:00", ReminderOffset: 5, RepeatOption: RepeatWeekdays},
			{Title: "Evening Review", Time: "19:00", ReminderOffset: 10, RepeatOption: RepeatWeekdays},
		},
	},
	{
		ID:          "gym",
		Name:        "Gym Routine",
		Description: "Stay fit with a structured workout schedule",
		Routines: []TemplateRoutine{
			{Title: "Pre-Workout Meal", Time: "05:30", ReminderOffset: 15, RepeatOption: RepeatWeekdays},
			{Title: "Gym Session", Time: "06:00", ReminderOffset: 10, RepeatOption: RepeatWeekdays},
			{Title: "Post-Workout Shake", Time: "07:30", ReminderOffset: 5, RepeatOption: RepeatWeekdays},
			{Title: "Rest Day Yoga", Time: "07:00", ReminderOffset: 10, RepeatOption: RepeatCustom, CustomDays: []DayOfWeek{DaySat, DaySun}},
		},
	},
	{
		ID:          "meditation",
		Name:        "Meditation Routine",
		Description: "Find inner peace with daily mindfulness practice",
		Routines: []TemplateRoutine{
			{Title: "Morning Meditation", Time: "06:00", ReminderOffset: 5, RepeatOption: RepeatDaily},
			{Title: "Breathing Exercise", Time: "12:00", ReminderOffset: 5, RepeatOption: RepeatDaily},
			{Title: "Gratitude Journal", Time: "20:00", ReminderOffset: 10, RepeatOption: RepeatDaily},
			{Title: "Evening Meditation", Time: "21:30", ReminderOffset: 5, RepeatOption: RepeatDaily},
		},
	},
	{
		ID:          "workday",
		Name:        "Workday Routine",
		Description: "Stay productive throughout your work day",
		Routines: []TemplateRoutine{
			{Title: "Morning Standup Prep", Time: "08:45", ReminderOffset: 10, RepeatOption: RepeatWeekdays},
			{Title: "Deep Work Block", Time: "09:30", ReminderOffset: 5, RepeatOption: RepeatWeekdays},
			{Title: "Lunch Break", Time: "12:00", ReminderOffset: 10, RepeatOption: RepeatWeekdays},
			{Title: "Email Check", Time: "14:00", ReminderOffset: 5, RepeatOption: RepeatWeekdays},
			{Title: "End of Day Review", Time: "17:30", ReminderOffset: 10, RepeatOption: RepeatWeekdays},
		},
	},
}
