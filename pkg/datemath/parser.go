package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ISODate is the wire format for normalized dates.
const ISODate = "2006-01-02"

// DateSlots lists slot names whose values get relative-date normalization.
var DateSlots = []string{"date", "checkin_date", "checkout_date", "return_date", "travel_date"}

// relative day offsets for English, Hinglish and Devanagari terms
var dayOffsets = map[string]int{
	"today":              0,
	"aaj":                0,
	"आज":                 0,
	"tomorrow":           1,
	"kal":                1,
	"कल":                 1,
	"day after tomorrow": 2,
	"parso":              2,
	"परसों":              2,
}

// Parser converts relative date expressions to absolute dates.
type Parser struct {
	location *time.Location
}

// NewParser creates a date parser for the given IANA timezone string,
// e.g. "Asia/Kolkata".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Normalize maps a relative date expression to an ISO date string using
// baseTime as the reference point. Expressions it does not recognize pass
// through unchanged: they are assumed to be absolute already, or handled
// downstream.
func (p *Parser) Normalize(value string, baseTime time.Time) string {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return value
	}

	if offset, ok := dayOffsets[v]; ok {
		return p.startOfDay(baseTime.AddDate(0, 0, offset)).Format(ISODate)
	}

	if strings.Contains(v, "next week") {
		return p.startOfDay(baseTime.AddDate(0, 0, 7)).Format(ISODate)
	}

	if strings.HasPrefix(v, "in ") {
		if t, err := p.parseInDuration(v, baseTime); err == nil {
			return t.Format(ISODate)
		}
		return value
	}

	if strings.HasPrefix(v, "next ") {
		if t, err := p.parseNextWeekday(v, baseTime); err == nil {
			return t.Format(ISODate)
		}
		return value
	}

	return value
}

// NormalizeSlots applies Normalize to every date-bearing slot in place and
// returns the map for chaining.
func (p *Parser) NormalizeSlots(slots map[string]string, baseTime time.Time) map[string]string {
	for _, name := range DateSlots {
		if v, ok := slots[name]; ok && v != "" {
			slots[name] = p.Normalize(v, baseTime)
		}
	}
	return slots
}

var inDurationRe = regexp.MustCompile(`in (\d+) (day|days|week|weeks|month|months)`)

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	case strings.HasPrefix(unit, "month"):
		return p.startOfDay(baseTime.AddDate(0, amount, 0)), nil
	}

	return baseTime, fmt.Errorf("unknown time unit: %q", unit)
}

// parseNextWeekday handles patterns like "next monday", "next friday".
func (p *Parser) parseNextWeekday(relative string, baseTime time.Time) (time.Time, error) {
	weekdays := map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}

	dayName := strings.TrimPrefix(relative, "next ")
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday: %q", dayName)
	}

	currentWeekday := baseTime.Weekday()
	daysUntil := int(targetWeekday - currentWeekday)
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.startOfDay(baseTime.AddDate(0, 0, daysUntil)), nil
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
