// SPDX-License-Identifier: MIT

package bfs

import "errors"

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("bfs: graph is nil")
