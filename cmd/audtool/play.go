// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/ik5/audcore"
	"github.com/ik5/audcore/config"
	"github.com/ik5/audcore/cooldown"
	"github.com/ik5/audcore/output"
	"github.com/ik5/audcore/scheduler"
)

const tick = 15 * time.Millisecond

func runPlay(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("play", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", "", "YAML file overriding the built-in tables")
	envPath := fs.String("env", "", ".env file with AUDCORE_* overrides")
	event := fs.String("event", "ui_click", "event category the clips are played as")
	voice := fs.String("voice", "", "announcer voice to speak after the clips")
	unit := fs.String("unit", "", "unit acknowledgement to speak after the clips")
	faction := fs.String("faction", "allied", "faction of the unit: neutral, allied or soviet")
	rate := fs.Int("rate", 22050, "output sample rate")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() == 0 && *voice == "" && *unit == "" {
		return errUsage
	}

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.LoadFile(*cfgPath); err != nil {
			return err
		}
	}
	var envFiles []string
	if *envPath != "" {
		envFiles = append(envFiles, *envPath)
	}
	if err := cfg.LoadEnv(envFiles...); err != nil {
		return err
	}
	logger := cfg.Logger(stderr)

	cat, ok := config.Event(*event)
	if !ok {
		return fmt.Errorf("%w: %s", config.ErrUnknownEvent, *event)
	}

	side, ok := scheduler.ParseFaction(*faction)
	if !ok {
		return fmt.Errorf("%w: faction %s", errUsage, *faction)
	}
	var ack scheduler.UnitVoice
	if *unit != "" {
		if ack, ok = config.UnitVoiceByName(*unit); !ok {
			return fmt.Errorf("%w: unit %s", config.ErrUnknownVoice, *unit)
		}
	}

	dev, err := output.NewOto(*rate, output.WithLogger(logger))
	if err != nil {
		return err
	}
	defer dev.Close()

	s, err := audcore.New(cfg, dev, audcore.WithLogger(logger))
	if err != nil {
		return err
	}
	defer s.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if _, err := s.Preload(ctx, fs.Args()); err != nil {
		return err
	}

	clock := cooldown.SystemClock()
	s.Update(clock())
	for _, name := range fs.Args() {
		if _, ok := s.Play(name, 1, cat); !ok {
			logger.Warn("Play: denied", "clip", name)
		}
	}
	if *voice != "" {
		v, ok := config.VoiceByName(*voice)
		if !ok {
			return fmt.Errorf("%w: %s", config.ErrUnknownVoice, *voice)
		}
		s.Announce(v)
	}
	if ack != 0 {
		if _, ok := s.PlayUnitVoice(ack, side); !ok {
			logger.Warn("Play: unit voice denied", "unit", *unit, "faction", side)
		}
	}

	t := time.NewTicker(tick)
	defer t.Stop()

	for {
		_, speaking := s.Speaking()
		_, acking := s.UnitSpeaking()
		if s.Active() == 0 && !speaking && !acking {
			break
		}

		select {
		case <-ctx.Done():
			s.StopAll()
			fmt.Fprintln(stdout, s.Stats())
			return nil
		case <-t.C:
			s.Update(clock())
		}
	}

	fmt.Fprintln(stdout, s.Stats())
	return nil
}
