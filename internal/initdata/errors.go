package initdata

import "errors"

var (
	// ErrMissingField is returned when a required field is absent from
	// the payload.
	ErrMissingField = errors.New("missing required field")

	// ErrMissingSignature is returned when the hash field is absent, in
	// which case verification cannot even be attempted.
	ErrMissingSignature = errors.New("hash not found in init data")

	// ErrDuplicateField is returned when the same key appears twice in
	// the query string.
	ErrDuplicateField = errors.New("duplicate field in init data")

	// ErrDecode is returned for malformed base64 transport input.
	ErrDecode = errors.New("init data is not valid base64")

	// ErrEmptyPayload is returned when nothing is left to sign after
	// excluding the hash field.
	ErrEmptyPayload = errors.New("no data to sign after excluding hash")

	// ErrInvalidUserData is returned when the user field is present but
	// is not a JSON object carrying a numeric id.
	ErrInvalidUserData = errors.New("invalid user data")

	// ErrInvalidData is returned by the Get* helpers when the signature
	// check fails; they never hand out unverified data.
	ErrInvalidData = errors.New("init data is not valid")
)
