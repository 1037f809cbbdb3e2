package session

import "errors"

var (
	// ErrNoStore indicates a Manager was constructed without a Store.
	ErrNoStore = errors.New("session: no store configured")

	// ErrCorruptRecord indicates the durable session record could not be
	// decoded. Restore treats this as anonymous rather than failing startup.
	ErrCorruptRecord = errors.New("session: corrupt stored record")
)
