package pipeline

import (
	"errors"
	"fmt"
)

// Fatal error classes. Every error returned by Run wraps one of them.
var (
	ErrSetup   = errors.New("setup failed")
	ErrPrompt  = errors.New("name prompt failed")
	ErrNetwork = errors.New("network failure")
	ErrArchive = errors.New("archive failure")
	ErrLayout  = errors.New("layout failure")
	ErrLink    = errors.New("link failure")
	ErrEnable  = errors.New("enable failure")
)

// Stage identifies a step of the run.
type Stage int

const (
	StageProbing Stage = iota
	StageEnumerating
	StageNegotiating
	StageFetching
	StageUnpacking
	StageRenaming
	StageLinking
	StageEnabling
	StageDone
	StageFailed
)

func (s Stage) String() string {
	switch s {
	case StageProbing:
		return "probing"
	case StageEnumerating:
		return "enumerating"
	case StageNegotiating:
		return "negotiating"
	case StageFetching:
		return "fetching"
	case StageUnpacking:
		return "unpacking"
	case StageRenaming:
		return "renaming"
	case StageLinking:
		return "linking"
	case StageEnabling:
		return "enabling"
	case StageDone:
		return "done"
	case StageFailed:
		return "failed"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// StageError is a fatal error together with the stage it ended the run in.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// SetupError classifies err as a setup failure raised before the pipeline
// could start, such as an unsupported operating system.
func SetupError(err error) error {
	return &StageError{Stage: StageProbing, Err: fmt.Errorf("%w: %w", ErrSetup, err)}
}

func fail(stage Stage, class, err error) error {
	return &StageError{Stage: stage, Err: fmt.Errorf("%w: %w", class, err)}
}
