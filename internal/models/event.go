package models

import (
	"errors"
	"strings"
	"time"
)

type Event struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
}

// EventInput holds the client-supplied fields of an event. The id is
// assigned by the store.
type EventInput struct {
	Title       string
	Description string
	Date        time.Time
	Location    string
}

var ErrInvalidDate = errors.New("invalid date format")

// Layouts without an offset are read as UTC.
var naiveDateLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseEventDate parses an ISO-8601 date. A trailing "Z" is rewritten to an
// explicit "+00:00" offset before anything else is done with the value.
func ParseEventDate(value string) (time.Time, error) {
	if strings.HasSuffix(value, "Z") {
		value = strings.TrimSuffix(value, "Z") + "+00:00"
	}

	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}

	for _, layout := range naiveDateLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, nil
		}
	}

	return time.Time{}, ErrInvalidDate
}
