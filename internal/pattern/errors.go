package pattern

import "errors"

var (
	ErrNoKeywords = errors.New("no keywords extracted")
)
