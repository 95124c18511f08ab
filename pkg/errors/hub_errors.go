package errors

var (
	// Domain errors — used in usecase/repository
	ErrEmailTaken           = AlreadyExists("email already in use")
	ErrProfileNotFound      = NotFound("profile not found")
	ErrAuthenticationFailed = Unauthorized("no account matches that email")
	ErrInvalidEmail         = InvalidArg("email cannot be empty")
	ErrInvalidRole          = InvalidArg("role must be Founder or Funder")
	ErrEmptyContent         = InvalidArg("post content cannot be empty")
	ErrEmptyText            = InvalidArg("message text cannot be empty")
	ErrInvalidEventTitle    = InvalidArg("event title cannot be empty")
	ErrEventNotFound        = NotFound("event not found")
)

func ErrScheduleLoadFailed(cause error) error {
	return Wrap(CodeInternal, "failed to load schedule slot", cause)
}

func ErrScheduleSaveFailed(cause error) error {
	return Wrap(CodeInternal, "failed to save schedule slot", cause)
}
