package dfs

import "errors"

// ErrUnknownAlgorithm is returned by the CLI layer when --algo names
// something outside the supported set.
var ErrUnknownAlgorithm = errors.New("dfs: unknown algorithm")
