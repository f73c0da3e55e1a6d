package schedule

import (
	"time"

	"tourbase/models"
)

// maxRecurrenceInstances bounds recurrence expansion so a malformed
// configuration (end date before start, bogus pattern) can never loop forever.
const maxRecurrenceInstances = 100

const dateLayout = "2006-01-02"

// Labels applied to instances generated from schedule-level date ranges.
const (
	FixedScheduleLabel    = "Fixed Schedule"
	FlexibleScheduleLabel = "Flexible Schedule"
)

// GenerateDepartureInstances expands a tour's date configuration into the
// concrete list of bookable departures. It is a pure function of its input:
// malformed or incomplete configurations degrade to an empty or partial list,
// never an error. Callers must treat an empty result as "no departures
// available".
func GenerateDepartureInstances(td models.TourDates) []models.Departure {
	switch td.ScheduleType {
	case models.ScheduleMultiple:
		out := make([]models.Departure, 0, len(td.Departures))
		for _, dep := range td.Departures {
			if !dep.DateRange.IsComplete() {
				continue
			}
			if dep.IsRecurring && dep.RecurrencePattern != "" && dep.RecurrenceEndDate != "" {
				out = append(out, ExpandRecurring(dep, td.Days)...)
			} else {
				out = append(out, dep)
			}
		}
		return out

	case models.ScheduleFixed:
		if td.IsRecurring && td.RecurrencePattern != "" && td.RecurrenceEndDate != "" {
			rng := pickRange(td.SingleDateRange, td.DefaultDateRange)
			if rng == nil {
				return nil
			}
			template := models.Departure{
				Label:                  FixedScheduleLabel,
				DateRange:              *rng,
				IsRecurring:            true,
				RecurrencePattern:      td.RecurrencePattern,
				RecurrenceEndDate:      td.RecurrenceEndDate,
				SelectedPricingOptions: td.SelectedPricingOptions,
			}
			return ExpandRecurring(template, td.Days)
		}
		rng := pickRange(td.SingleDateRange, nil)
		if rng == nil {
			return nil
		}
		return []models.Departure{{
			Label:                  FixedScheduleLabel,
			DateRange:              *rng,
			SelectedPricingOptions: td.SelectedPricingOptions,
		}}

	case models.ScheduleFlexible:
		rng := pickRange(td.DefaultDateRange, nil)
		if rng == nil {
			return nil
		}
		return []models.Departure{{
			Label:                  FlexibleScheduleLabel,
			DateRange:              *rng,
			SelectedPricingOptions: td.SelectedPricingOptions,
		}}
	}
	return nil
}

// ExpandRecurring materializes a recurrence template into concrete departure
// instances. Each instance spans durationDays (start date inclusive) and
// carries the template's label and pricing options with IsRecurring cleared.
// Unparseable template dates return the template itself unchanged; an
// unrecognized pattern stops the loop after whatever has been emitted.
func ExpandRecurring(template models.Departure, durationDays int) []models.Departure {
	start, err := time.Parse(dateLayout, template.DateRange.From)
	if err != nil {
		return []models.Departure{template}
	}
	end, err := time.Parse(dateLayout, template.DateRange.To)
	if err != nil {
		return []models.Departure{template}
	}
	if template.RecurrenceEndDate != "" {
		if until, perr := time.Parse(dateLayout, template.RecurrenceEndDate); perr == nil {
			end = until
		}
	}
	if durationDays < 1 {
		durationDays = 1
	}

	var out []models.Departure
	for cursor := start; !cursor.After(end) && len(out) < maxRecurrenceInstances; {
		inst := template
		inst.IsRecurring = false
		inst.DateRange = models.DateRange{
			From: cursor.Format(dateLayout),
			To:   cursor.AddDate(0, 0, durationDays-1).Format(dateLayout),
		}
		out = append(out, inst)

		next, ok := advance(cursor, template.RecurrencePattern)
		if !ok {
			break
		}
		cursor = next
	}
	return out
}

// advance moves the cursor one step per the recurrence pattern. The second
// return value is false for unrecognized patterns.
func advance(t time.Time, pattern string) (time.Time, bool) {
	switch pattern {
	case models.RecurDaily:
		return t.AddDate(0, 0, 1), true
	case models.RecurWeekly:
		return t.AddDate(0, 0, 7), true
	case models.RecurBiweekly:
		return t.AddDate(0, 0, 14), true
	case models.RecurMonthly:
		return t.AddDate(0, 1, 0), true
	case models.RecurQuarterly:
		return t.AddDate(0, 3, 0), true
	case models.RecurYearly:
		return t.AddDate(1, 0, 0), true
	}
	return t, false
}

// pickRange returns the first complete range of the two, or nil.
func pickRange(primary, fallback *models.DateRange) *models.DateRange {
	if primary != nil && primary.IsComplete() {
		return primary
	}
	if fallback != nil && fallback.IsComplete() {
		return fallback
	}
	return nil
}
