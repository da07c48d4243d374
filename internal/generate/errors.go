package generate

import "errors"

// Generation errors. Records that fail model validation are dropped and
// logged rather than surfaced; these cover failures of the service itself.
var (
	// ErrNoChoices is returned when the completion API responds without
	// any choices.
	ErrNoChoices = errors.New("no response choices from completion API")

	// ErrBadPayload is returned when the response cannot be decoded, or
	// when every returned record fails validation.
	ErrBadPayload = errors.New("generated payload is unusable")
)
