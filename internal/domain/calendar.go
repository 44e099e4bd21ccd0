package domain

import "time"

// rushHours are the hours treated as rush hour when deriving calendar
// features from a timestamp (morning and evening delivery peaks).
var rushHours = map[int]bool{
	8: true, 9: true, 10: true,
	17: true, 18: true, 19: true, 20: true,
}

// CalendarFeatures are the time-of-order inputs the model consumes.
type CalendarFeatures struct {
	Day        int
	Month      int
	DayOfWeek  int // Monday = 0
	IsWeekend  int
	Hour       int
	IsRushHour int
}

// CalendarFeaturesFromTime derives all calendar features from a single
// timestamp, matching how the interactive form fills them in.
func CalendarFeaturesFromTime(t time.Time) CalendarFeatures {
	dow := (int(t.Weekday()) + 6) % 7 // time.Weekday has Sunday = 0

	weekend := 0
	if dow >= 5 {
		weekend = 1
	}

	rush := 0
	if rushHours[t.Hour()] {
		rush = 1
	}

	return CalendarFeatures{
		Day:        t.Day(),
		Month:      int(t.Month()),
		DayOfWeek:  dow,
		IsWeekend:  weekend,
		Hour:       t.Hour(),
		IsRushHour: rush,
	}
}
