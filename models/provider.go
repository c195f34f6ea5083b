package models

import "time"

// DaySchedule describes a provider's working hours for one weekday.
// All times are minutes from midnight (e.g., 540 for 9:00 AM).
type DaySchedule struct {
	IsWorkingDay bool `bson:"isWorkingDay" json:"isWorkingDay"`
	WorkStart    int  `bson:"workStart" json:"workStart"`
	WorkEnd      int  `bson:"workEnd" json:"workEnd"`
	BreakStart   *int `bson:"breakStart,omitempty" json:"breakStart,omitempty"`
	BreakEnd     *int `bson:"breakEnd,omitempty" json:"breakEnd,omitempty"`
}

// WeeklySchedule maps each weekday (Sunday = 0) to its schedule.
// A nil entry means the provider is closed that day.
type WeeklySchedule [7]*DaySchedule

// For returns the schedule entry for the given weekday, or nil if closed.
func (ws WeeklySchedule) For(day time.Weekday) *DaySchedule {
	return ws[int(day)]
}

// Provider represents a service provider and their recurring weekly schedule.
// The schedule is owned by the provider profile; the scheduling engine only reads it.
type Provider struct {
	ID        string         `bson:"id" json:"id"`
	Name      string         `bson:"name" json:"name"`
	Timezone  string         `bson:"timezone" json:"timezone"` // IANA name, e.g. "Europe/Moscow"
	Schedule  WeeklySchedule `bson:"schedule" json:"schedule"`
	CreatedAt time.Time      `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time      `bson:"updated_at" json:"updated_at"`
}
