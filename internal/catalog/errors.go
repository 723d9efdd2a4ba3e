package catalog

import "errors"

var (
	ErrMissingAsset = errors.New("entry has no image")
	ErrMissingAlt   = errors.New("entry has no alt text")
	ErrNoMoods      = errors.New("entry has no mood tags")
	ErrEmptyMood    = errors.New("entry has an empty mood tag")
)
