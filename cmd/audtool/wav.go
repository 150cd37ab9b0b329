// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"os"

	"github.com/ik5/audcore/formats/wav"
)

// runWav decodes in and writes it as a 16-bit PCM WAV file.
func runWav(in, out string) error {
	clip, _, err := decodeFile(in)
	if err != nil {
		return err
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating %s: %w", out, err)
	}

	if err := wav.Encode(f, clip); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", out, err)
	}

	return f.Close()
}
