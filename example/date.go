package main

import (
	"errors"
	"regexp"
	"strconv"
	"time"
)

var datePattern = regexp.MustCompile(`^(\d{8})(\d{6})?(?:\.\d{3})?(?:\[([+-]?\d+(?:\.\d+)?)(?::([A-Za-z]+))?\])?$`)

// ParseDate parses an OFX datetime (YYYYMMDD[HHMMSS[.XXX]][[gmt offset[:tz name]]]). Without an
// offset the time is read in loc, or UTC when loc is nil.
func ParseDate(d string, loc *time.Location) (*time.Time, error) {
	parts := datePattern.FindStringSubmatch(d)
	if parts == nil {
		return nil, errors.New("error - date string can not be parsed")
	}
	if loc == nil {
		loc = time.UTC
	}
	if parts[3] != "" {
		hours, err := strconv.ParseFloat(parts[3], 64)
		if err != nil {
			return nil, err
		}
		name := parts[4]
		if name == "" {
			name = "GMT" + parts[3]
		}
		loc = time.FixedZone(name, int(hours*60*60))
	}
	layout, value := "20060102", parts[1]
	if parts[2] != "" {
		layout, value = "20060102150405", parts[1]+parts[2]
	}
	t, err := time.ParseInLocation(layout, value, loc)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
