// SPDX-License-Identifier: EPL-2.0

package tone

import "errors"

var (
	ErrInvalidTone  = errors.New("invalid tone parameters")
	ErrInvalidDigit = errors.New("invalid DTMF digit")
)
