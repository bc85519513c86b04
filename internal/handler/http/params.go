package http

import (
	"net/http"
	"strconv"

	"github.com/fabtracko/fabtracko-backend-go/internal/pkg/calendar"
	"github.com/fabtracko/fabtracko-backend-go/internal/pkg/validator"
)

// intParam reads an optional integer query parameter.
func intParam(r *http.Request, name string, errs *validator.ValidationErrors) *int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		errs.Add(name, name+" must be a number")
		return nil
	}
	return &n
}

// monthParams reads month and year, falling back to the current month when both are absent.
func monthParams(r *http.Request, clock calendar.Clock) (month, year int, err error) {
	var errs validator.ValidationErrors
	m := intParam(r, "month", &errs)
	y := intParam(r, "year", &errs)
	if err := errs.Err(); err != nil {
		return 0, 0, err
	}

	today := clock.Today()
	month, year = int(today.Month()), today.Year()
	if m != nil {
		month = *m
	}
	if y != nil {
		year = *y
	}
	return month, year, nil
}
