// Package domain defines the almanac record model and its ports
package domain

import "sort"

// Record is one user's whole almanac, day key to year key to event texts.
// A day maps recurring dates across years: "3-15" holds every March 15th.
type Record map[string]map[string][]string

// Day returns the year groups stored for a day key, nil when absent
func (r Record) Day(dayKey string) map[string][]string {
	return r[dayKey]
}

// Add appends an event text under a day and year, creating levels as needed
func (r Record) Add(dayKey, yearKey, text string) {
	day := r[dayKey]
	if day == nil {
		day = make(map[string][]string)
		r[dayKey] = day
	}
	day[yearKey] = append(day[yearKey], text)
}

// Remove deletes the event at index under a day and year. Emptied levels are
// removed with it: a year with no events disappears, and a day with no years
// disappears, so presence always implies at least one event.
func (r Record) Remove(dayKey, yearKey string, index int) (removed string, ok bool) {
	day := r[dayKey]
	evs, found := day[yearKey]
	if !found || index < 0 || index >= len(evs) {
		return "", false
	}
	removed = evs[index]
	evs = append(evs[:index], evs[index+1:]...)
	if len(evs) == 0 {
		delete(day, yearKey)
	} else {
		day[yearKey] = evs
	}
	if len(day) == 0 {
		delete(r, dayKey)
	}
	return removed, true
}

// Replace swaps the event text at index under a day and year
func (r Record) Replace(dayKey, yearKey string, index int, text string) (old string, ok bool) {
	evs, found := r[dayKey][yearKey]
	if !found || index < 0 || index >= len(evs) {
		return "", false
	}
	old = evs[index]
	evs[index] = text
	return old, true
}

// Years returns the day's year keys sorted ascending. Year keys are
// zero-padded to four digits so lexicographic order is chronological.
func (r Record) Years(dayKey string) []string {
	day := r[dayKey]
	if len(day) == 0 {
		return nil
	}
	years := make([]string, 0, len(day))
	for y := range day {
		years = append(years, y)
	}
	sort.Strings(years)
	return years
}
