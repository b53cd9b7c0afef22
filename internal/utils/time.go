package util

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// LocalDate is a calendar date without a time-of-day component. Due dates are
// compared day-by-day, so the wall clock and zone of the underlying time are
// irrelevant once parsed.
type LocalDate struct {
	time.Time
}

const dateLayout = "2006-01-02"

func NewLocalDate(year int, month time.Month, day int) LocalDate {
	return LocalDate{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar date.
func DateOf(t time.Time) LocalDate {
	return NewLocalDate(t.Year(), t.Month(), t.Day())
}

func (d LocalDate) Before(other LocalDate) bool {
	return d.Time.Before(other.Time)
}

func (d LocalDate) Equal(other LocalDate) bool {
	return d.Time.Equal(other.Time)
}

func (d *LocalDate) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d LocalDate) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d LocalDate) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Time, nil
}

func (d *LocalDate) Scan(value interface{}) error {
	if value == nil {
		d.Time = time.Time{}
		return nil
	}

	switch v := value.(type) {
	case time.Time:
		d.Time = time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, time.UTC)
		return nil
	case []byte:
		parsed, err := time.ParseInLocation(dateLayout, string(v), time.UTC)
		if err != nil {
			return err
		}
		d.Time = parsed
		return nil
	case string:
		parsed, err := time.ParseInLocation(dateLayout, v, time.UTC)
		if err != nil {
			return err
		}
		d.Time = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan type %T into LocalDate", value)
	}
}
