package service

import "errors"

var (
	// ErrPreconditionNotMet means the project lacks the content a tool needs
	// (outline, design documents or materials). No report is written and any
	// previous report is left untouched.
	ErrPreconditionNotMet = errors.New("precondition not met")

	// ErrRunInProgress is returned when the same tool is already running for
	// the same project.
	ErrRunInProgress = errors.New("run already in progress")

	ErrUnknownTool = errors.New("unknown tool")
)
