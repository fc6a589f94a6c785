package booking

import "errors"

// ErrSlotUnavailable is returned when the requested start instant is not
// among the day's computed bookable slots, or was claimed concurrently.
var ErrSlotUnavailable = errors.New("requested slot is not available")

// ErrAlreadyCancelled is returned when cancelling a booking twice.
var ErrAlreadyCancelled = errors.New("booking is already cancelled")
