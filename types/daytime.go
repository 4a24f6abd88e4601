package types

import (
	"encoding/xml"
	"time"
)

// eMIP timestamps are ISO-8601 with millisecond precision, always UTC.
const wireTimeLayout = "2006-01-02T15:04:05.000Z"

// DateTime wraps a time.Time struct, allowing for improved dateTime XML compatibility.
type DateTime struct {
	time.Time
}

// NewDateTime creates a new DateTime struct, embedding a time.Time struct.
func NewDateTime(time time.Time) *DateTime {
	return &DateTime{Time: time}
}

func Now() *DateTime {
	return &DateTime{Time: time.Now().UTC()}
}

func (dt DateTime) FormatWire() string {
	return dt.UTC().Format(wireTimeLayout)
}

func ParseDateTime(s string) (*DateTime, error) {
	t, err := time.Parse(wireTimeLayout, s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return nil, err
		}
	}
	return NewDateTime(t.UTC()), nil
}

func (dt DateTime) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(dt.FormatWire(), start)
}

func (dt *DateTime) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var s string
	if err := d.DecodeElement(&s, &start); err != nil {
		return err
	}
	parsed, err := ParseDateTime(s)
	if err != nil {
		return err
	}
	dt.Time = parsed.Time
	return nil
}

func (dt *DateTime) Equals(other *DateTime) bool {
	if dt == nil || other == nil {
		return dt == other
	}
	return dt.Time.Equal(other.Time)
}
