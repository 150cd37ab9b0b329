// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"

	"github.com/ik5/audcore"
	"github.com/ik5/audcore/audio"
	"github.com/ik5/audcore/formats/aud"
)

var shortUnits, _ = durafmt.DefaultUnitsCoder.Decode("y:yrs,wk:wks,d:d,h:h,m:m,s:s,ms:ms,us:us")

// decodeFile decodes path with the decoder matching its extension.
func decodeFile(path string) (*audio.Clip, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	dec, ok := audcore.DefaultRegistry().ForName(path)
	if !ok {
		return nil, nil, fmt.Errorf("%s: unsupported format %q", path, filepath.Ext(path))
	}

	clip, err := dec.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	return clip, data, nil
}

func channelName(n int) string {
	if n == 2 {
		return "stereo"
	}
	return "mono"
}

func runInfo(w io.Writer, paths []string) error {
	var failed int

	for _, p := range paths {
		clip, data, err := decodeFile(p)
		if err != nil {
			fmt.Fprintln(w, err)
			failed++
			continue
		}

		codec := strings.TrimPrefix(strings.ToUpper(filepath.Ext(p)), ".")
		if codec == "AUD" {
			if h, err := aud.ParseHeader(data); err == nil {
				codec = h.Compression.String()
			}
		}

		fmt.Fprintf(w, "%s: %d Hz %s, %s, %s -> %s PCM, %s\n",
			filepath.Base(p),
			clip.SampleRate,
			channelName(clip.Channels),
			codec,
			humanize.Bytes(uint64(len(data))),
			humanize.Bytes(uint64(len(clip.Samples)*2)),
			durafmt.Parse(clip.Duration()).LimitFirstN(2).Format(shortUnits),
		)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(paths))
	}
	return nil
}
