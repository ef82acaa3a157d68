package trip

import "errors"

var ErrTripNotFound = errors.New("business trip not found")
