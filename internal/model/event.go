package model

import (
	"fmt"
	"strings"
	"time"
)

// Event represents one stored calendar record. A multi-day ("period") event
// is materialized as one Event per covered day; all members of the period
// share PeriodStart, PeriodEnd and Title, and that triple is the only group
// identity the data model carries.
type Event struct {
	ID                string    `gorm:"primaryKey" json:"id"`
	Title             string    `json:"title"`
	Date              string    `gorm:"index" json:"date"`
	PeriodStart       *string   `gorm:"index" json:"periodStart"`
	PeriodEnd         *string   `json:"periodEnd"`
	Color             string    `json:"color"`
	ExcludeFromExport bool      `gorm:"default:false" json:"excludeFromExport"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// IsPeriod reports whether the record belongs to a period group, i.e. both
// period bounds are present. Bounds that are present but equal still count:
// such records went through the period save path.
func (e *Event) IsPeriod() bool {
	return e.PeriodStart != nil && e.PeriodEnd != nil
}

// IsMultiDay reports whether the record belongs to a period group spanning
// more than one day. Only multi-day groups are resolved by the value triple;
// everything else is mutated by id alone.
func (e *Event) IsMultiDay() bool {
	return e.IsPeriod() && *e.PeriodStart != *e.PeriodEnd
}

// SameGroup reports whether two records belong to the same logical period
// event under the (periodStart, periodEnd, title) identity rule.
func (e *Event) SameGroup(other *Event) bool {
	if !e.IsPeriod() || !other.IsPeriod() {
		return false
	}
	return *e.PeriodStart == *other.PeriodStart &&
		*e.PeriodEnd == *other.PeriodEnd &&
		e.Title == other.Title
}

// Validate checks the invariants every record must satisfy before it may be
// handed to the store.
func (e *Event) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("event id is required")
	}
	if strings.TrimSpace(e.Title) == "" {
		return fmt.Errorf("event title is required")
	}
	if _, err := ParseDate(e.Date); err != nil {
		return fmt.Errorf("invalid event date %q: %w", e.Date, err)
	}
	if (e.PeriodStart == nil) != (e.PeriodEnd == nil) {
		return fmt.Errorf("period bounds must be set together")
	}
	if e.IsPeriod() {
		if _, err := ParseDate(*e.PeriodStart); err != nil {
			return fmt.Errorf("invalid period start %q: %w", *e.PeriodStart, err)
		}
		if _, err := ParseDate(*e.PeriodEnd); err != nil {
			return fmt.Errorf("invalid period end %q: %w", *e.PeriodEnd, err)
		}
		if *e.PeriodStart > *e.PeriodEnd {
			return fmt.Errorf("period start %s is after period end %s", *e.PeriodStart, *e.PeriodEnd)
		}
	}
	return nil
}

// Normalize brings caller-supplied fields into canonical form: dates to
// yyyy-MM-dd and the color token through the palette compatibility map.
func (e *Event) Normalize() error {
	date, err := NormalizeDate(e.Date)
	if err != nil {
		return fmt.Errorf("normalize date: %w", err)
	}
	e.Date = date

	if e.PeriodStart != nil {
		start, err := NormalizeDate(*e.PeriodStart)
		if err != nil {
			return fmt.Errorf("normalize period start: %w", err)
		}
		e.PeriodStart = &start
	}
	if e.PeriodEnd != nil {
		end, err := NormalizeDate(*e.PeriodEnd)
		if err != nil {
			return fmt.Errorf("normalize period end: %w", err)
		}
		e.PeriodEnd = &end
	}

	e.Color = NormalizeColor(e.Color)
	return nil
}
