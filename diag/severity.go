package diag

//go:generate go tool stringer -type=Severity

// Severity classifies a diagnostic event. Fatal events terminate the
// process; Warning and Debug events do not.
type Severity int

const (
	Fatal Severity = iota
	Warning
	Debug
)

// tag returns the stream prefix for the severity. Debug events carry no
// prefix.
func (s Severity) tag() string {
	switch s {
	case Fatal:
		return "[FATAL] "
	case Warning:
		return "[Warning] "
	}
	return ""
}
