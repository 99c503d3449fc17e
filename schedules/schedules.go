package schedules

import (
	"fmt"
	"strings"
	"time"

	"github.com/pallium-care/console/notes"
	"github.com/pallium-care/console/validation"
)

type Schedule struct {
	Id          string `json:"id,omitempty" form:"id"`
	PatientId   string `json:"patient_id" form:"patient_id"`
	PatientName string `json:"patient_name,omitempty" form:"patient_name"`
	MemberId    string `json:"member_id" form:"member_id"`
	MemberName  string `json:"member_name,omitempty" form:"member_name"`
	VisitDate   string `json:"visit_date" form:"visit_date"`
	VisitTime   string `json:"visit_time,omitempty" form:"visit_time"`
	VisitType   string `json:"visit_type,omitempty" form:"visit_type"`
	Notes       string `json:"notes,omitempty" form:"notes"`
}

func (s Schedule) NoteLines() []notes.Line {
	return notes.ParseLines(s.Notes)
}

// DisplayDate formats the visit date for lists, falling back to the raw value.
func (s Schedule) DisplayDate() string {
	d, err := ParseDate(s.VisitDate, time.Local)
	if err != nil {
		return s.VisitDate
	}
	return d.Format("Mon, 02 Jan 2006")
}

const (
	DateLayout = "2006-01-02"
)

var timeLayouts = []string{
	"15:04",
	"15:04:05",
	"3:04 PM",
	"03:04 PM",
	"3:04PM",
}

// ParseDate returns midnight of the visit date in loc. Timestamps are moved to
// loc before the time of day is dropped.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if d, err := time.ParseInLocation(DateLayout, value, loc); err == nil {
		return d, nil
	}
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid visit date %q", value)
	}
	return midnight(ts.In(loc)), nil
}

// ParseTime returns the offset of a visit time from midnight. An empty time is
// midnight.
func ParseTime(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, strings.ToUpper(value)); err == nil {
			return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute + time.Duration(t.Second())*time.Second, nil
		}
	}
	return 0, fmt.Errorf("invalid visit time %q", value)
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func Validate(s Schedule) validation.Errors {
	errs := validation.Errors{}
	errs.Required("patient_id", s.PatientId, "Patient")
	errs.Required("member_id", s.MemberId, "Team member")
	errs.Required("visit_date", s.VisitDate, "Visit date")
	if s.VisitDate != "" {
		if _, err := ParseDate(s.VisitDate, time.Local); err != nil {
			errs.Add("visit_date", "Visit date must be a valid date")
		}
	}
	if _, err := ParseTime(s.VisitTime); err != nil {
		errs.Add("visit_time", "Visit time must look like 14:30 or 2:30 PM")
	}
	return errs
}
