// SPDX-License-Identifier: EPL-2.0

// Command audtool inspects, converts and plays game audio assets.
//
//	audtool info FILE...
//	audtool wav IN OUT
//	audtool play [-config audio.yaml] [-env .env] [-event ui_click] [-voice name] CLIP...
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

var errUsage = errors.New("usage")

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage:")
	fmt.Fprintln(w, "  audtool info FILE...")
	fmt.Fprintln(w, "  audtool wav IN OUT")
	fmt.Fprintln(w, "  audtool play [flags] CLIP...")
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) < 1 {
		return errUsage
	}

	switch args[0] {
	case "info":
		if len(args) < 2 {
			return errUsage
		}
		return runInfo(stdout, args[1:])
	case "wav":
		if len(args) != 3 {
			return errUsage
		}
		return runWav(args[1], args[2])
	case "play":
		return runPlay(args[1:], stdout, stderr)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
}

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if errors.Is(err, errUsage) {
		usage(os.Stderr)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "audtool:", err)
		os.Exit(1)
	}
}
