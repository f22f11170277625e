package catalog

import "errors"

var ErrNotFound = errors.New("occupation not found")
