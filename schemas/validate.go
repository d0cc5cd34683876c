// Package schemas holds the request and response contracts of the HTTP API.
// Request types validate their own shape; business rules live in services.
package schemas

import (
	"strings"
	"time"
)

const (
	MinWeek   = 1
	MaxWeek   = 22
	MinSeason = 1920
	MaxSeason = 2100
)

// fieldErrors collects the first failure per field.
type fieldErrors map[string]string

func (e fieldErrors) check(ok bool, field, message string) {
	if ok {
		return
	}
	if _, exists := e[field]; !exists {
		e[field] = message
	}
}

func (e fieldErrors) required(value, field string) {
	e.check(strings.TrimSpace(value) != "", field, "must be provided")
}

func (e fieldErrors) week(week int, field string) {
	e.check(week >= MinWeek && week <= MaxWeek, field, "must be between 1 and 22")
}

func (e fieldErrors) season(season int, field string) {
	e.check(season >= MinSeason && season <= MaxSeason, field, "must be a valid season year")
}

func (e fieldErrors) positiveID(id int, field string) {
	e.check(id > 0, field, "must be a positive id")
}

// result returns nil when nothing failed.
func (e fieldErrors) result() map[string]string {
	if len(e) == 0 {
		return nil
	}
	return e
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// Week validates a week query parameter.
func Week(week int) map[string]string {
	errs := fieldErrors{}
	errs.week(week, "week")
	return errs.result()
}

// WeekSeason validates week and season query parameters.
func WeekSeason(week, season int) map[string]string {
	errs := fieldErrors{}
	errs.week(week, "week")
	errs.season(season, "season")
	return errs.result()
}
