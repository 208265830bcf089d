package bst

import "github.com/pkg/errors"

var (
	ErrNilComparator = errors.New("bst: nil comparator")
)
