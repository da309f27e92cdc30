package object

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Identity represents a git identity (author or committer) in its raw form.
// This matches git's internal format: "name <email> timestamp timezone"
type Identity struct {
	Name      string
	Email     string
	Timestamp int64
	Timezone  string
}

// NewIdentity builds an Identity for the given instant, keeping the offset of
// t's location as the timezone.
func NewIdentity(name, email string, t time.Time) Identity {
	_, offset := t.Zone()
	sign := '+'
	if offset < 0 {
		sign = '-'
		offset = -offset
	}

	return Identity{
		Name:      name,
		Email:     email,
		Timestamp: t.Unix(),
		Timezone:  fmt.Sprintf("%c%02d%02d", sign, offset/3600, (offset%3600)/60),
	}
}

// String formats the identity the way it is stored in a commit header.
func (i Identity) String() string {
	return fmt.Sprintf("%s <%s> %d %s", i.Name, i.Email, i.Timestamp, i.Timezone)
}

// ParseIdentity parses a git identity string in the format "name <email> timestamp timezone"
// and returns an Identity struct.
func ParseIdentity(identity string) (*Identity, error) {
	// The email ends at the last '>'; names may contain angle brackets.
	emailEnd := strings.LastIndex(identity, ">")
	if emailEnd == -1 {
		return nil, fmt.Errorf("invalid identity format: %s", identity)
	}

	emailStart := strings.LastIndex(identity[:emailEnd], "<")
	if emailStart == -1 {
		return nil, fmt.Errorf("invalid identity format: %s", identity)
	}

	name := strings.TrimSpace(identity[:emailStart])
	email := identity[emailStart+1 : emailEnd]

	timeStr := strings.TrimSpace(identity[emailEnd+1:])
	parts := strings.Split(timeStr, " ")
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid time format: %s", timeStr)
	}

	timestamp, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid timestamp: %w", err)
	}

	if _, err := parseTimezone(parts[1]); err != nil {
		return nil, err
	}

	return &Identity{
		Name:      name,
		Email:     email,
		Timestamp: timestamp,
		Timezone:  parts[1],
	}, nil
}

// Time returns the time.Time representation of the identity's timestamp and timezone.
func (i *Identity) Time() (time.Time, error) {
	seconds, err := parseTimezone(i.Timezone)
	if err != nil {
		return time.Time{}, err
	}

	loc := time.FixedZone("", seconds)
	return time.Unix(i.Timestamp, 0).In(loc), nil
}

// parseTimezone converts "+hhmm" or "-hhmm" to seconds east of UTC.
func parseTimezone(tz string) (int, error) {
	if len(tz) != 5 {
		return 0, fmt.Errorf("invalid timezone offset format: %s", tz)
	}

	sign := tz[0]
	if sign != '+' && sign != '-' {
		return 0, fmt.Errorf("invalid timezone sign: %c", sign)
	}

	hours, err := strconv.Atoi(tz[1:3])
	if err != nil || hours > 23 {
		return 0, fmt.Errorf("invalid hours in timezone %s", tz)
	}

	minutes, err := strconv.Atoi(tz[3:5])
	if err != nil || minutes > 59 {
		return 0, fmt.Errorf("invalid minutes in timezone %s", tz)
	}

	seconds := hours*3600 + minutes*60
	if sign == '-' {
		seconds = -seconds
	}
	return seconds, nil
}
