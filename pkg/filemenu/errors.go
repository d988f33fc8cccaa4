package filemenu

import "errors"

var (
	// ErrManuallyTerminated means the user ended the session (Ctrl+D).
	ErrManuallyTerminated = errors.New("file selection has been manually terminated")
	// ErrFileDeleted means the user deleted the colliding file and walked away.
	ErrFileDeleted = errors.New("specified file has been deleted")
	// ErrNameTooLong is fatal: the menu does not re-prompt for it.
	ErrNameTooLong = errors.New("selected file name is too long")
	// ErrSequentialOverflow means the next sequential counter exceeds the maximum.
	ErrSequentialOverflow = errors.New("sequential name counter overflow")
	// ErrUnknownFileType drives extension correction; it never leaves the menu.
	ErrUnknownFileType = errors.New("unsupported file type")
	ErrInvalidConfig   = errors.New("invalid menu configuration")
)

// Outcome is the result of a sub-dialog. Only OutcomeAccept carries a usable name.
type Outcome int

const (
	OutcomeAccept Outcome = iota
	OutcomeNeedNewName
	OutcomeFileDeleted
	OutcomeTerminated
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAccept:
		return "accept"
	case OutcomeNeedNewName:
		return "need-new-name"
	case OutcomeFileDeleted:
		return "file-deleted"
	case OutcomeTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}
