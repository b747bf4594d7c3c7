package settings

import (
	"fmt"
	"strings"
	"time"
)

// FormSchedule identifies the run schedule form
const FormSchedule = "schedule"

// DateLayout is the accepted start-date format
const DateLayout = "2006-01-02"

// ScheduleForm holds the experiment start date and run length
type ScheduleForm struct {
	*Form
	start time.Time
}

// NewScheduleForm returns a schedule starting on the day of start
func NewScheduleForm(start time.Time) *ScheduleForm {
	s := &ScheduleForm{start: truncateDay(start)}
	s.Form = NewForm(FormSchedule, "Schedule", s.summary,
		Field{Name: "days", Label: "Run length", Unit: "days", Min: 1, Max: 365, Value: 14},
	)
	s.extra = func() []Entry {
		return []Entry{
			{Key: "start", Value: s.start.Format(DateLayout)},
			{Key: "end", Value: s.End().Format(DateLayout)},
		}
	}
	return s
}

// Start returns the start date
func (s *ScheduleForm) Start() time.Time { return s.start }

// End returns the last day of the run
func (s *ScheduleForm) End() time.Time {
	return s.start.AddDate(0, 0, s.Value("days")-1)
}

// SetStart parses a YYYY-MM-DD date; on error the start date is unchanged
func (s *ScheduleForm) SetStart(text string) error {
	t, err := time.Parse(DateLayout, strings.TrimSpace(text))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, text)
	}
	s.start = t
	s.RecomputeSummary()
	return nil
}

// ShiftStart moves the start date by days
func (s *ScheduleForm) ShiftStart(days int) {
	s.start = s.start.AddDate(0, 0, days)
	s.RecomputeSummary()
}

func (s *ScheduleForm) summary(v Values) string {
	end := s.start.AddDate(0, 0, v["days"]-1)
	return fmt.Sprintf("Runs %d days from %s to %s", v["days"], s.start.Format(DateLayout), end.Format(DateLayout))
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
