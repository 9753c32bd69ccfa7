// Package cycle maps calendar dates onto the cooperative's recurring shift
// cycles. A cycle is WeeksPerCycle consecutive weeks; cycle 1 starts on
// WeekADate and weeks inside a cycle are lettered A, B, C...
package cycle

import (
	"fmt"
	"time"

	apperrors "member-history-backend/internal/errors"
	"member-history-backend/internal/models"
)

// MaxWeeksPerCycle is bounded by the number of week letters.
const MaxWeeksPerCycle = 26

const weekLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Config is the process-wide cycle calendar configuration.
type Config struct {
	WeeksPerCycle int         `json:"weeks_per_cycle" yaml:"weeks_per_cycle" validate:"required,min=1,max=26"`
	WeekADate     models.Date `json:"week_a_date" yaml:"week_a_date"`
}

// DefaultConfig is used whenever the upstream configuration is unavailable.
func DefaultConfig() Config {
	return Config{
		WeeksPerCycle: 4,
		WeekADate:     models.NewDate(2025, time.January, 13),
	}
}

// Validate checks the configuration is usable for bucketing.
func (c Config) Validate() error {
	if c.WeeksPerCycle < 1 || c.WeeksPerCycle > MaxWeeksPerCycle {
		return fmt.Errorf("%w: got %d", apperrors.ErrInvalidWeeksPerCycle, c.WeeksPerCycle)
	}
	if c.WeekADate.IsZero() {
		return apperrors.ErrMissingWeekADate
	}
	return nil
}

// AnchorIsMonday reports whether week A starts on a Monday. Other anchors
// work but produce weeks that straddle calendar weeks.
func (c Config) AnchorIsMonday() bool {
	return c.WeekADate.Weekday() == time.Monday
}

// Position is where a date falls in the cycle calendar.
type Position struct {
	CycleNumber int         `json:"cycle_number" yaml:"cycle_number"`
	CycleStart  models.Date `json:"cycle_start" yaml:"cycle_start"`
	CycleEnd    models.Date `json:"cycle_end" yaml:"cycle_end"`
	WeekLetter  string      `json:"week_letter" yaml:"week_letter"`
	WeekIndex   int         `json:"week_index" yaml:"week_index"`
	WeekStart   models.Date `json:"week_start" yaml:"week_start"`
	WeekEnd     models.Date `json:"week_end" yaml:"week_end"`
}

// Locate returns the cycle position of date. ok is false when date is
// before the anchor or the configuration is invalid.
func Locate(date models.Date, cfg Config) (Position, bool) {
	if date.IsZero() || cfg.Validate() != nil {
		return Position{}, false
	}

	daysDiff := date.DaysSince(cfg.WeekADate)
	if daysDiff < 0 {
		return Position{}, false
	}

	totalWeeks := daysDiff / 7
	cycleNumber := totalWeeks/cfg.WeeksPerCycle + 1
	weekIndex := totalWeeks % cfg.WeeksPerCycle

	weekStart := cfg.WeekADate.AddDays(totalWeeks * 7)
	cycleStart := cfg.WeekADate.AddDays((cycleNumber - 1) * cfg.WeeksPerCycle * 7)

	return Position{
		CycleNumber: cycleNumber,
		CycleStart:  cycleStart,
		CycleEnd:    cycleStart.AddDays(cfg.WeeksPerCycle*7 - 1),
		WeekLetter:  WeekLetter(weekIndex),
		WeekIndex:   weekIndex,
		WeekStart:   weekStart,
		WeekEnd:     weekStart.AddDays(6),
	}, true
}

// WeekLetter returns the letter for a zero-based week index.
func WeekLetter(index int) string {
	if index < 0 || index >= len(weekLetters) {
		return "?"
	}
	return weekLetters[index : index+1]
}

// CycleStart returns the first day of cycle n.
func CycleStart(n int, cfg Config) (models.Date, error) {
	if err := cfg.Validate(); err != nil {
		return models.Date{}, err
	}
	if n < 1 {
		return models.Date{}, apperrors.ErrInvalidCycleCount
	}
	return cfg.WeekADate.AddDays((n - 1) * cfg.WeeksPerCycle * 7), nil
}

// Range spans a run of whole cycles.
type Range struct {
	StartDate  models.Date `json:"start_date" yaml:"start_date"`
	EndDate    models.Date `json:"end_date" yaml:"end_date"`
	StartCycle int         `json:"start_cycle" yaml:"start_cycle"`
	EndCycle   int         `json:"end_cycle" yaml:"end_cycle"`
}

// DateRange returns the span from the start of the last n cycles up to end,
// counting the cycle that contains end. The first cycle is clamped to 1.
func DateRange(n int, end models.Date, cfg Config) (Range, error) {
	if err := cfg.Validate(); err != nil {
		return Range{}, err
	}
	if n < 1 {
		return Range{}, apperrors.ErrInvalidCycleCount
	}

	pos, ok := Locate(end, cfg)
	if !ok {
		return Range{}, apperrors.ErrDateBeforeEpoch
	}

	startCycle := pos.CycleNumber - n + 1
	if startCycle < 1 {
		startCycle = 1
	}
	start, err := CycleStart(startCycle, cfg)
	if err != nil {
		return Range{}, err
	}

	return Range{
		StartDate:  start,
		EndDate:    end,
		StartCycle: startCycle,
		EndCycle:   pos.CycleNumber,
	}, nil
}
