package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/stagehand/internal/domain"
	"github.com/spf13/pflag"
)

// dateFlag holds a YYYY-MM-DD calendar date. The zero value is unset.
type dateFlag struct {
	key string
}

var _ pflag.Value = (*dateFlag)(nil)

func (d *dateFlag) String() string { return d.key }
func (d *dateFlag) Type() string   { return "date" }

func (d *dateFlag) Set(s string) error {
	if _, err := domain.ParseDateKey(s); err != nil {
		return err
	}
	d.key = s
	return nil
}

var instantLayouts = []string{"2006-01-02T15:04", "2006-01-02 15:04", domain.DateLayout}

// instantFlag holds a point in time. RFC 3339 values keep their offset;
// shorter forms are read in loc.
type instantFlag struct {
	t   time.Time
	loc *time.Location
}

var _ pflag.Value = (*instantFlag)(nil)

func (f *instantFlag) String() string {
	if f.t.IsZero() {
		return ""
	}
	return f.t.Format(time.RFC3339)
}

func (f *instantFlag) Type() string { return "time" }

func (f *instantFlag) Set(s string) error {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		f.t = t
		return nil
	}
	loc := f.loc
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range instantLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			f.t = t
			return nil
		}
	}
	return fmt.Errorf("invalid time %q (expected RFC 3339, YYYY-MM-DD HH:MM or YYYY-MM-DD)", s)
}
