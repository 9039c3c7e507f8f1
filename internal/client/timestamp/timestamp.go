// Package timestamp converts server UTC instants into the fixed display
// zone used to group and order the coach transcript. The host timezone is
// never consulted.
package timestamp

import (
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"

	// DefaultOffset is the display zone offset (KST).
	DefaultOffset = 9 * time.Hour
)

// Stamp is a display-zone calendar date and minute-resolution time.
type Stamp struct {
	Date string
	Time string
}

// Normalizer splits instants into display-zone stamps.
type Normalizer struct {
	loc *time.Location
	now func() time.Time
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithClock overrides the clock used by NowLocal.
func WithClock(now func() time.Time) Option {
	return func(n *Normalizer) { n.now = now }
}

// New returns a Normalizer for a fixed UTC offset.
func New(offset time.Duration, opts ...Option) *Normalizer {
	n := &Normalizer{
		loc: time.FixedZone(zoneName(offset), int(offset/time.Second)),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

var defaultNormalizer = New(DefaultOffset)

// SplitToLocal splits utc using the default +09:00 normalizer.
func SplitToLocal(utc string) (Stamp, error) { return defaultNormalizer.SplitToLocal(utc) }

// NowLocal returns the current instant in the default display zone.
func NowLocal() Stamp { return defaultNormalizer.NowLocal() }

// Location returns the display zone.
func (n *Normalizer) Location() *time.Location { return n.loc }

// SplitToLocal parses an RFC 3339 timestamp and returns its date and time in
// the display zone. A missing zone designator means UTC. A space may stand
// in for the 'T' separator.
func (n *Normalizer) SplitToLocal(utc string) (Stamp, error) {
	t, err := Parse(utc)
	if err != nil {
		return Stamp{}, err
	}
	return n.stamp(t), nil
}

// NowLocal returns the clock's current instant in the display zone.
func (n *Normalizer) NowLocal() Stamp {
	return n.stamp(n.now())
}

func (n *Normalizer) stamp(t time.Time) Stamp {
	t = t.In(n.loc)
	return Stamp{Date: t.Format(DateLayout), Time: t.Format(TimeLayout)}
}

// Parse reads an RFC 3339 instant, treating zone-less input as UTC.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("timestamp: empty value")
	}
	if len(s) > 10 && s[10] == ' ' {
		s = s[:10] + "T" + s[11:]
	}
	if !hasZone(s) {
		s += "Z"
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("timestamp: %w", err)
	}
	return t, nil
}

// hasZone reports whether s ends with 'Z' or a ±hh:mm offset after the
// time-of-day part.
func hasZone(s string) bool {
	if strings.HasSuffix(s, "Z") {
		return true
	}
	i := strings.IndexByte(s, 'T')
	if i < 0 {
		return false
	}
	return strings.ContainsAny(s[i:], "+-")
}

func zoneName(offset time.Duration) string {
	if offset == DefaultOffset {
		return "KST"
	}
	sign := '+'
	if offset < 0 {
		sign = '-'
		offset = -offset
	}
	return fmt.Sprintf("UTC%c%02d:%02d", sign, int(offset.Hours()), int(offset.Minutes())%60)
}
