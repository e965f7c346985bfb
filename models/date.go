package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the wire and storage format for calendar dates.
const DateLayout = "2006-01-02"

// Date is a day-precision calendar date. It serializes as "YYYY-MM-DD" and
// maps to a DATE column.
type Date struct {
	time.Time
}

// MarshalJSON renders the date as "YYYY-MM-DD".
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(DateLayout))
}

// UnmarshalJSON parses "YYYY-MM-DD".
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// GormDataType tells gorm to create a DATE column for this type.
func (Date) GormDataType() string {
	return "date"
}

// Value implements driver.Valuer.
func (d Date) Value() (driver.Value, error) {
	return d.Format(DateLayout), nil
}

// Scan implements sql.Scanner. Postgres and sqlite both hand back time.Time
// for declared DATE columns; the string cases cover drivers that return raw
// text.
func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case time.Time:
		d.Time = v
		return nil
	case string:
		return d.parse(v)
	case []byte:
		return d.parse(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Date", value)
	}
}

func (d *Date) parse(s string) error {
	for _, layout := range []string{DateLayout, time.RFC3339, "2006-01-02 15:04:05-07:00"} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("cannot parse %q as date", s)
}
