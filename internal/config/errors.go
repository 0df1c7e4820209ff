package config

import "errors"

// ErrInvalidConfig is returned when settings parse but contradict each other.
var ErrInvalidConfig = errors.New("invalid configuration")
