package errors

import (
	"context"
	"errors"
)

// Is is a wrapper around errors.Is
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is a wrapper around errors.As for *Error targets
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// GetCode extracts the code from an error. An interrupted context is
// Canceled wherever it sits in the chain; other uncoded errors are Internal.
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return CodeCanceled
	}

	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code
	}
	return CodeInternal
}

// GetMeta extracts metadata from an error
func GetMeta(err error) map[string]any {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Meta
	}
	return nil
}

// GetMessage returns the outermost message without the code prefix, for
// showing to a player
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var coded *Error
	if errors.As(err, &coded) {
		return coded.Message
	}
	return err.Error()
}

// IsRecoverable reports whether err is a broken game rule or a bad choice
// rather than a fault. A session can report it and carry on.
func IsRecoverable(err error) bool {
	switch GetCode(err) {
	case CodeInvalidArgument, CodeNotFound, CodeFailedPrecondition, CodeOutOfRange:
		return true
	default:
		return false
	}
}

func hasCode(err error, code Code) bool {
	return GetCode(err) == code
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool { return hasCode(err, CodeNotFound) }

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool { return hasCode(err, CodeInvalidArgument) }

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool { return hasCode(err, CodeAlreadyExists) }

// IsFailedPrecondition checks if an error is a failed precondition error
func IsFailedPrecondition(err error) bool { return hasCode(err, CodeFailedPrecondition) }

// IsOutOfRange checks if an error is an out of range error
func IsOutOfRange(err error) bool { return hasCode(err, CodeOutOfRange) }

// IsInternal checks if an error is an internal error
func IsInternal(err error) bool { return hasCode(err, CodeInternal) }

// IsDataLoss checks if an error is a data loss error
func IsDataLoss(err error) bool { return hasCode(err, CodeDataLoss) }

// IsCanceled checks if an error comes from an interrupted session
func IsCanceled(err error) bool { return hasCode(err, CodeCanceled) }
