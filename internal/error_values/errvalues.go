package errorvalues

import "errors"

var (
	ErrAthleteExists   = errors.New("such athlete already exists")
	ErrAthleteNotFound = errors.New("athlete doesn't exists")
	ErrWeekNotFound    = errors.New("no week registered for this date")
	ErrStartNotMonday  = errors.New("start date is not monday")
	ErrEndNotSunday    = errors.New("end date is not sunday")
	ErrActivityExists  = errors.New("activity with such fingerprint already stored")
	ErrUnauthorized    = errors.New("strava rejected the access token")
	ErrNoAccessCode    = errors.New("authorization code was never received")
)
