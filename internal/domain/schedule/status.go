package schedule

import "time"

// EventWindow is the assumed duration of a session. Status flips to
// completed once the window has passed.
const EventWindow = 3 * time.Hour

// venueZone is the fixed UTC+1 offset of the host region. Using a fixed
// zone keeps status computation independent of tzdata availability.
var venueZone = time.FixedZone("CET", 60*60)

// StartTime parses the event's local date and time in the venue zone.
func StartTime(event Event) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", event.Date+" "+event.Time, venueZone)
}

// ComputeStatus derives the live/upcoming/completed state from the clock.
// Events with unparseable times stay upcoming.
func ComputeStatus(event Event, now time.Time) Status {
	start, err := StartTime(event)
	if err != nil {
		return StatusUpcoming
	}
	end := start.Add(EventWindow)

	switch {
	case !now.Before(end):
		return StatusCompleted
	case !now.Before(start) && now.Before(end):
		return StatusLive
	default:
		return StatusUpcoming
	}
}
