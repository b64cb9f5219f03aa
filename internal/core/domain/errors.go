package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownTask is returned when a requested task name is not present in the task table.
	ErrUnknownTask = zerr.New("unknown task")

	// ErrUndefinedOverride is returned when a task step references an override
	// variable that is neither recognized nor defaulted.
	ErrUndefinedOverride = zerr.New("undefined override variable")

	// ErrTaskAlreadyExists is returned when two task definitions share a name.
	ErrTaskAlreadyExists = zerr.New("task already exists")

	// ErrEmptyTaskName is returned when a task definition has no name.
	ErrEmptyTaskName = zerr.New("task name must not be empty")

	// ErrEmptyStep is returned when a task step carries no commands.
	ErrEmptyStep = zerr.New("task step has no commands")

	// ErrInvalidTarget is returned when a target violates the sysroot invariant:
	// a cross target must carry a rebuild set and the native target must not.
	ErrInvalidTarget = zerr.New("invalid target")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrTaskExecutionFailed is returned when a task's step fails and the
	// remaining steps are aborted.
	ErrTaskExecutionFailed = zerr.New("task execution failed")
)
