package types

type RunMode string

const (
	// ModeLocal is the mode for running both the worker and the scheduler locally
	ModeLocal RunMode = "local"
	// ModeWorker is the mode for running just the workflow worker
	ModeWorker RunMode = "worker"
	// ModeScheduler is the mode for running just the scheduled jobs
	ModeScheduler RunMode = "scheduler"
)

type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
)
