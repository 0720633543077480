package finanza

// Streak is the engagement counter: consecutive days with at least one
// logged action. LastLog zero means no activity has ever been logged.
type Streak struct {
	Count   int
	LastLog Date
}

// Touch records activity for today.
//
// A second touch on the same day is a no-op. Activity on the day right after
// the last one extends the streak; any longer gap, or a first ever touch,
// restarts it at 1.
func (s *Streak) Touch(today Date) {
	if s.LastLog == today {
		return
	}
	if !s.LastLog.IsZero() && today.DaysSince(s.LastLog) == 1 {
		s.Count++
	} else {
		s.Count = 1
	}
	s.LastLog = today
}

// Decay is the passive session-start check: a gap of more than one day since
// the last activity resets the count to zero. LastLog is left untouched so a
// later Touch still sees the real gap.
func (s *Streak) Decay(today Date) {
	if s.LastLog.IsZero() || s.LastLog == today {
		return
	}
	if today.DaysSince(s.LastLog) > 1 {
		s.Count = 0
	}
}

// MarshalJSON implements the json.Marshaler interface with a canonical key order.
func (s Streak) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("count", s.Count)
	if !s.LastLog.IsZero() {
		w.Append("lastLogDate", s.LastLog)
	}
	return w.MarshalJSON()
}

// jstreak is a specialized struct for decoding json.
type jstreak struct {
	Count   int  `json:"count"`
	LastLog Date `json:"lastLogDate"`
}

func (j jstreak) Streak() Streak { return Streak{Count: j.Count, LastLog: j.LastLog} }
