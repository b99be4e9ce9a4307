package errors

// Code is the general category of an Error. It decides how an error is logged
// and whether the caller is to blame.
type Code string

const (
	ErrBadRequest Code = "bad-request"
	ErrConflict   Code = "conflict"
	ErrFatal      Code = "fatal"
	ErrNotFound   Code = "not-found"
	ErrInternal   Code = "internal"
	ErrUnexpected Code = "unexpected"
)

// Kind narrows down a Code.
type Kind string

const (
	// KindValidation is used for malformed input like blank team names,
	// self-matches or negative scores.
	KindValidation Kind = "validation"
	// KindMatchAlreadyExists is used when a match with the same home and away
	// team is already in progress.
	KindMatchAlreadyExists Kind = "match-already-exists"
	// KindMatchNotFound is used when no match with the requested home and away
	// team is in progress.
	KindMatchNotFound Kind = "match-not-found"
	// KindUnknownCommand is used when the console receives a command it does
	// not know.
	KindUnknownCommand Kind = "unknown-command"
	// KindInvalidConfig is used when the app config fails validation.
	KindInvalidConfig Kind = "invalid-config"
	KindDecodeJSON    Kind = "decode-json"
	KindUnexpected    Kind = "unexpected"
)
