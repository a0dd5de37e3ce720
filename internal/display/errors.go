package display

import "errors"

var ErrSourceRequired = errors.New("display: slide source not configured")
