// SPDX-License-Identifier: EPL-2.0

package dsp

import "errors"

var (
	ErrInvalidConfig    = errors.New("invalid pipeline configuration")
	ErrInvalidFrequency = errors.New("filter frequency outside stable range")
	ErrNotMono          = errors.New("source must be mono")
)
