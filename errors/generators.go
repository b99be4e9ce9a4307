package errors

import "fmt"

// NewValidationError returns a new ErrBadRequest error with kind
// KindValidation.
func NewValidationError(message string, details Details) error {
	return Error{
		Code:    ErrBadRequest,
		Kind:    KindValidation,
		Message: message,
		Details: details,
	}
}

// NewMatchAlreadyExistsError returns a new ErrConflict error with kind
// KindMatchAlreadyExists for the match with the given teams.
func NewMatchAlreadyExistsError(homeTeam string, awayTeam string) error {
	return Error{
		Code:    ErrConflict,
		Kind:    KindMatchAlreadyExists,
		Message: fmt.Sprintf("match %s vs %s already exists", homeTeam, awayTeam),
		Details: matchDetails(homeTeam, awayTeam),
	}
}

// NewMatchNotFoundError returns a new ErrNotFound error with kind
// KindMatchNotFound for the match with the given teams.
func NewMatchNotFoundError(homeTeam string, awayTeam string) error {
	return Error{
		Code:    ErrNotFound,
		Kind:    KindMatchNotFound,
		Message: fmt.Sprintf("match %s vs %s not found", homeTeam, awayTeam),
		Details: matchDetails(homeTeam, awayTeam),
	}
}

func matchDetails(homeTeam string, awayTeam string) Details {
	return Details{
		"home_team": homeTeam,
		"away_team": awayTeam,
	}
}

// NewInternalErrorFromErr returns a new ErrInternal error wrapping the given
// one.
func NewInternalErrorFromErr(err error, message string, details Details) error {
	return Error{
		Code:    ErrInternal,
		Err:     err,
		Message: message,
		Details: details,
	}
}

// IsValidation checks whether the given error is a validation error.
func IsValidation(err error) bool {
	return hasCodeAndKind(err, ErrBadRequest, KindValidation)
}

// IsConflict checks whether the given error is caused by an already existing
// match.
func IsConflict(err error) bool {
	e, ok := Cast(err)
	return ok && e.Code == ErrConflict
}

// IsNotFound checks whether the given error has code ErrNotFound.
func IsNotFound(err error) bool {
	e, ok := Cast(err)
	return ok && e.Code == ErrNotFound
}

func hasCodeAndKind(err error, code Code, kind Kind) bool {
	e, ok := Cast(err)
	return ok && e.Code == code && e.Kind == kind
}
