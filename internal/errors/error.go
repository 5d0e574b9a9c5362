package errors

import "errors"

var (
	ErrMatchNotFound     = errors.New("match with provided id was not found")
	ErrCreateMatchFailed = errors.New("create match failed")
	ErrIllegalMove       = errors.New("illegal move")
	ErrMatchInProgress   = errors.New("match is still in progress")
	ErrSnapshotCorrupt   = errors.New("stored match snapshot is corrupt")
	ErrInternal          = errors.New("internal error")
)
