package types

// ViolationStatus is the enforcement lifecycle status of an HOA violation
type ViolationStatus string

const (
	ViolationStatusOpen      ViolationStatus = "open"
	ViolationStatusNoticed   ViolationStatus = "noticed"
	ViolationStatusEscalated ViolationStatus = "escalated"
	ViolationStatusResolved  ViolationStatus = "resolved"
	ViolationStatusDismissed ViolationStatus = "dismissed"
)

// ViolationSeverity grades how serious a violation is
type ViolationSeverity string

const (
	ViolationSeverityMinor    ViolationSeverity = "minor"
	ViolationSeverityModerate ViolationSeverity = "moderate"
	ViolationSeverityMajor    ViolationSeverity = "major"
)
