// SPDX-License-Identifier: MIT

package interchange

import "errors"

// ErrFormat indicates malformed or inconsistent input.
var ErrFormat = errors.New("interchange: malformed input")
