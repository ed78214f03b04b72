package repository

import "errors"

// ErrDataUnavailable is returned when price history cannot be obtained for a
// symbol, currency and day count.
var ErrDataUnavailable = errors.New("data unavailable")
