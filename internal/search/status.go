package search

import "errors"

// StatusFromError maps a dispatch failure to its stable StatusCode. nil maps
// to Success; anything unrecognised maps to ErrorFromRipgrep.
func StatusFromError(err error) StatusCode {
	if err == nil {
		return Success
	}

	var (
		missingFilename   interface{ MissingFilename() bool }
		missingSearchText interface{ MissingSearchText() bool }
		missingCallback   interface{ MissingCallback() bool }
		engine            interface{ EngineFailure() bool }
		aborted           interface{ SearchAborted() bool }
		badPattern        interface{ InvalidPattern() bool }
		cannotOpen        interface{ CannotOpen() bool }
	)

	switch {
	case errors.As(err, &missingFilename) && missingFilename.MissingFilename():
		return MissingFilename
	case errors.As(err, &missingSearchText) && missingSearchText.MissingSearchText():
		return MissingSearchText
	case errors.As(err, &missingCallback) && missingCallback.MissingCallback():
		return MissingCallback
	case errors.As(err, &engine) && engine.EngineFailure():
		return ErrorFromRipgrep
	case errors.As(err, &aborted) && aborted.SearchAborted():
		return ErrorFromCallback
	case errors.As(err, &badPattern) && badPattern.InvalidPattern():
		return ErrorBadPattern
	case errors.As(err, &cannotOpen) && cannotOpen.CannotOpen():
		return ErrorCouldNotOpenFile
	default:
		return ErrorFromRipgrep
	}
}
