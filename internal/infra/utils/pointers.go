package utils

import "time"

// StringPtr returns a pointer to the string if it's not empty, otherwise returns nil
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// IntPtr returns a pointer to the given int
func IntPtr(i int) *int {
	return &i
}

// TimePtr returns a pointer to the time if it's not zero, otherwise returns nil
func TimePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
