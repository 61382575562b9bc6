// ABOUTME: Periodicity parsing for company communication cadences
// ABOUTME: Turns strings like "2 weeks" into a structured Interval
package cadence

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	ErrInvalidPeriodicity = errors.New("invalid periodicity")
	ErrInvalidDate        = errors.New("invalid date")
)

// Unit is the calendar unit of an Interval.
type Unit string

const (
	UnitDay   Unit = "day"
	UnitWeek  Unit = "week"
	UnitMonth Unit = "month"
)

// Interval is a parsed periodicity: Amount units of Unit.
type Interval struct {
	Amount int  `json:"amount"`
	Unit   Unit `json:"unit"`
}

// String renders the canonical periodicity text, e.g. "1 day" or "3 months".
func (iv Interval) String() string {
	if iv.Amount == 1 {
		return fmt.Sprintf("1 %s", iv.Unit)
	}
	return fmt.Sprintf("%d %ss", iv.Amount, iv.Unit)
}

func (iv Interval) valid() bool {
	if iv.Amount <= 0 {
		return false
	}
	switch iv.Unit {
	case UnitDay, UnitWeek, UnitMonth:
		return true
	}
	return false
}

var periodicityPattern = regexp.MustCompile(`(?i)^(\d+)\s+(days?|weeks?|months?)$`)

// ParsePeriodicity parses "<n> <unit>[s]" case-insensitively.
func ParsePeriodicity(text string) (Interval, error) {
	match := periodicityPattern.FindStringSubmatch(strings.TrimSpace(text))
	if match == nil {
		return Interval{}, fmt.Errorf("%w: %q", ErrInvalidPeriodicity, text)
	}

	amount, err := strconv.Atoi(match[1])
	if err != nil || amount <= 0 {
		return Interval{}, fmt.Errorf("%w: %q: amount must be a positive integer", ErrInvalidPeriodicity, text)
	}

	unit := Unit(strings.TrimSuffix(strings.ToLower(match[2]), "s"))
	return Interval{Amount: amount, Unit: unit}, nil
}
