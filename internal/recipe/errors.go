package recipe

import "errors"

var (
	ErrRecipe       = errors.New("invalid recipe")
	ErrMissingInput = errors.New("missing input file")
	ErrUnpinnedBase = errors.New("base image reference is not pinned")
)
