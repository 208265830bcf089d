package chained

import "github.com/pkg/errors"

var (
	ErrInvalidBucketCount = errors.New("chained: bucket count must be positive")
)
