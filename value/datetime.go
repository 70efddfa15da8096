package value

import (
	"fmt"
	"strings"
	"time"
)

// Date is a TOML calendar date.
type Date struct {
	Year  int
	Month int
	Day   int
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Time is a TOML time of day.
type Time struct {
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

func (t Time) String() string {
	s := fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	if t.Nanosecond == 0 {
		return s
	}
	frac := strings.TrimRight(fmt.Sprintf("%09d", t.Nanosecond), "0")
	return s + "." + frac
}

// Offset is a TOML time offset: either Z or a signed minute offset from UTC.
type Offset struct {
	Z       bool
	Minutes int
}

func (o Offset) String() string {
	if o.Z {
		return "Z"
	}
	m := o.Minutes
	sign := "+"
	if m < 0 {
		sign = "-"
		m = -m
	}
	return fmt.Sprintf("%s%02d:%02d", sign, m/60, m%60)
}

// Datetime is any of the four TOML date-time forms: offset date-time, local
// date-time, local date, or local time. Unset parts are nil.
type Datetime struct {
	Date   *Date
	Time   *Time
	Offset *Offset
}

func (d Datetime) String() string {
	b := &strings.Builder{}
	if d.Date != nil {
		b.WriteString(d.Date.String())
	}
	if d.Time != nil {
		if d.Date != nil {
			b.WriteByte('T')
		}
		b.WriteString(d.Time.String())
	}
	if d.Offset != nil {
		b.WriteString(d.Offset.String())
	}
	return b.String()
}

// FromTime converts a time.Time into a full offset date-time.
func FromTime(t time.Time) Datetime {
	_, secs := t.Zone()
	off := &Offset{Minutes: secs / 60}
	if secs == 0 {
		off = &Offset{Z: true}
	}
	return Datetime{
		Date: &Date{
			Year:  t.Year(),
			Month: int(t.Month()),
			Day:   t.Day(),
		},
		Time: &Time{
			Hour:       t.Hour(),
			Minute:     t.Minute(),
			Second:     t.Second(),
			Nanosecond: t.Nanosecond(),
		},
		Offset: off,
	}
}
