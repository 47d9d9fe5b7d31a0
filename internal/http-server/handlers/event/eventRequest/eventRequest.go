package eventRequest

import (
	"encoding/json"
	"log/slog"
	"math"
	"reflect"
	"strconv"
	"time"

	"eventRegistry/internal/models"
)

// EventRequest is the body accepted when creating or replacing an event.
// Fields are pointers so that an explicitly empty string counts as present.
type EventRequest struct {
	Title       *string    `json:"title" validate:"required"`
	Description *string    `json:"description" validate:"required"`
	Date        *EventDate `json:"date" validate:"required"`
	Location    *string    `json:"location" validate:"required"`
}

// Input projects a validated request onto the storage input, parsing the date.
func (r EventRequest) Input() (models.EventInput, error) {
	if r.Date == nil {
		return models.EventInput{}, models.ErrInvalidDate
	}

	date, err := r.Date.Time()
	if err != nil {
		return models.EventInput{}, err
	}

	return models.EventInput{
		Title:       value(r.Title),
		Description: value(r.Description),
		Date:        date,
		Location:    value(r.Location),
	}, nil
}

func (r EventRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("title", value(r.Title)),
		slog.String("description", value(r.Description)),
		slog.String("date", r.Date.String()),
		slog.String("location", value(r.Location)),
	)
}

// EventDate is an event date as clients send it: an ISO-8601 string or a
// number of seconds since the Unix epoch.
type EventDate struct {
	text    string
	seconds float64
	numeric bool
}

func (d *EventDate) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*d = EventDate{text: text}
		return nil
	}

	var seconds float64
	if err := json.Unmarshal(data, &seconds); err == nil {
		*d = EventDate{seconds: seconds, numeric: true}
		return nil
	}

	return &json.UnmarshalTypeError{
		Value: string(data),
		Type:  reflect.TypeOf(EventDate{}),
		Field: "date",
	}
}

// Time resolves the date. Numbers are Unix seconds in UTC; strings go through
// models.ParseEventDate.
func (d EventDate) Time() (time.Time, error) {
	if d.numeric {
		if math.IsNaN(d.seconds) || math.IsInf(d.seconds, 0) {
			return time.Time{}, models.ErrInvalidDate
		}

		sec, frac := math.Modf(d.seconds)
		return time.Unix(int64(sec), int64(math.Round(frac*1e9))).UTC(), nil
	}

	return models.ParseEventDate(d.text)
}

func (d *EventDate) String() string {
	switch {
	case d == nil:
		return ""
	case d.numeric:
		return strconv.FormatFloat(d.seconds, 'f', -1, 64)
	default:
		return d.text
	}
}

func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
