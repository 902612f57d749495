package utils

import (
	"fmt"
	"time"
)

// ConvertExpire returns the moment a verification request created at create
// with the given ttl stops being answerable.
func ConvertExpire(create time.Time, ttl int64) *time.Time {
	duration, _ := time.ParseDuration(fmt.Sprintf("%ds", ttl))
	e := create.Add(duration)
	return &e
}
