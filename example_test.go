// SPDX-License-Identifier: EPL-2.0

package narrowband_test

import (
	"fmt"

	"github.com/ik5/narrowband"
	"github.com/ik5/narrowband/g711"
	"github.com/ik5/narrowband/tone"
)

// A ringback-style tone encoded for a G.711 mu-law call.
func ExampleToneToG711() {
	cfg := tone.Config{
		Frequency:  440,
		Amplitude:  0.5,
		SampleRate: 8000,
		Duration:   1.0,
	}

	payload, stats, err := narrowband.ToneToG711(cfg, 0.9, g711.PCMU)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%d bytes, %v\n", len(payload), stats.Duration)
	// Output: 8000 bytes, 1s
}
