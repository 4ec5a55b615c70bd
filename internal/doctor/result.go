// Package doctor inspects a base directory and reports whether its
// configuration still needs migrating.
package doctor

// Status is the outcome of a single check.
type Status string

const (
	StatusOK   Status = "OK"
	StatusWarn Status = "WARN"
	StatusFail Status = "FAIL"
)

// Result is a single check outcome.
type Result struct {
	Status         Status
	CheckName      string
	Message        string
	Recommendation string
}

// HasFailures reports whether any result is a FAIL.
func HasFailures(results []Result) bool {
	for _, r := range results {
		if r.Status == StatusFail {
			return true
		}
	}
	return false
}

// AllOK reports whether every result is OK.
func AllOK(results []Result) bool {
	for _, r := range results {
		if r.Status != StatusOK {
			return false
		}
	}
	return true
}
