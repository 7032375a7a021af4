package patient

// Error messages
const (
	ErrMsgPatientIDRequired = "patient ID is required"
	ErrMsgEmailRequired     = "email is required"
	ErrMsgNicknameRequired  = "nickname is required"
	ErrMsgCreateFailed      = "failed to create patient: %w"
	ErrMsgGetFailed         = "failed to get patient: %w"
)

// Log messages
const (
	LogMsgPatientRegistered   = "Patient registered"
	LogMsgRegisterEventError  = "Failed to publish patient registered event"
	LogMsgTimezoneFallback    = "Stored timezone no longer resolves, falling back to UTC"
)

// DefaultTimezone is used when registration omits a timezone
const DefaultTimezone = "UTC"
