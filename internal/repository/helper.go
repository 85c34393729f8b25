package repository

import (
	"fmt"
	"time"
)

// ParseTime parses a stored timestamp in RFC3339 or "2006-01-02 15:04:05" format.
// The second form is what SQLite's CURRENT_TIMESTAMP default produces.
func ParseTime(str string) (time.Time, error) {
	returnTime, err := time.Parse(time.RFC3339, str)
	if err != nil {
		returnTime, err = time.Parse(time.DateTime, str)
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to parse timestamp: %w", err)
		}
	}
	return returnTime.UTC(), nil
}
