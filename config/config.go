/*
NAME
  config.go

DESCRIPTION
  config.go defines Config, the validated CLI configuration described
  by spec.md §6, and Parse, which builds one from os.Args-style flags,
  modelled on ausocean-av's revid/config.Config.

LICENSE
  This software is Copyright (C) 2026 the author. All Rights Reserved.
*/

// Package config parses and validates the ntsctv CLI surface named in
// spec.md §6.
package config

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Config is the fully parsed and validated CLI configuration.
type Config struct {
	In       []string
	Out      []string
	Control  string
	Width    int
	Height   int
	Seed     int64
	Verbose  int
}

// minSize is the --size boundary named in spec.md §6/§7 ("each >= 64").
// spec.md §8 scenario 6 is the authority on the exact boundary: it
// rejects "--size 64 64" and accepts "--size 66 66", so the true rule
// is strictly greater than minSize, not "greater than or equal".
const minSize = 64

// ControlScenario is the parsed form of --control, either a path to a
// JSON scenario or a ":random[:key=val...]" descriptor.
type ControlScenario struct {
	ScenarioPath string // non-empty means "read this JSON file"

	Duration    int
	FPS         int
	PowerUpDown bool
	FixSettings bool
}

// Parse parses args (excluding the program name) into a Config, per
// spec.md §6. On invalid input it returns an error (the flag set itself
// prints usage to stderr). It checks --size and that --control is
// present; the --control string is parsed later by ParseControlScenario.
//
// --size takes two operands ("--size width height"), which flag.Value
// cannot express (a flag.Value consumes exactly one token). It is pulled
// out of args by hand before the rest are handed to flag.FlagSet, the
// same way ausocean-av's own CLIs hand-scan multi-operand flags ahead of
// flag.Parse.
func Parse(args []string) (Config, error) {
	width, height, rest, err := extractSize(args)
	if err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("ntsctv", flag.ContinueOnError)

	var in, out multiFlag
	fs.Var(&in, "in", "signal source (repeatable)")
	fs.Var(&out, "out", "output destination (repeatable)")
	control := fs.String("control", "", ":random[:key=val...] or a JSON scenario path")
	seed := fs.Int64("seed", 0, "deterministic run seed; 0 seeds from wall clock")
	verbose := fs.Int("verbose", 1, "log verbosity 0-5")

	if err := fs.Parse(rest); err != nil {
		return Config{}, errors.Wrap(err, "config: parsing flags")
	}

	c := Config{
		In:      []string(in),
		Out:     []string(out),
		Control: *control,
		Width:   width,
		Height:  height,
		Seed:    *seed,
		Verbose: *verbose,
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// extractSize pulls "-size"/"--size w h" out of args, returning the
// parsed width/height (0, 0 if --size was not given) and the remaining
// args for flag.FlagSet to parse.
func extractSize(args []string) (width, height int, rest []string, err error) {
	rest = make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a != "-size" && a != "--size" {
			rest = append(rest, a)
			continue
		}
		if i+2 >= len(args) {
			return 0, 0, nil, errors.Errorf("config: %s requires two operands: width height", a)
		}
		w, werr := strconv.Atoi(args[i+1])
		if werr != nil {
			return 0, 0, nil, errors.Wrapf(werr, "config: %s width %q", a, args[i+1])
		}
		h, herr := strconv.Atoi(args[i+2])
		if herr != nil {
			return 0, 0, nil, errors.Wrapf(herr, "config: %s height %q", a, args[i+2])
		}
		width, height = w, h
		i += 2
	}
	return width, height, rest, nil
}

func (c Config) validate() error {
	if len(c.In) == 0 {
		return errors.New("config: --in is required")
	}
	if len(c.Out) == 0 {
		return errors.New("config: --out is required")
	}
	if c.Control == "" {
		return errors.New("config: --control is required")
	}
	if (c.Width != 0 || c.Height != 0) && (c.Width <= minSize || c.Height <= minSize) {
		return errors.Errorf("config: --size dimensions must each be > %d", minSize)
	}
	if c.Verbose < 0 || c.Verbose > 5 {
		return errors.New("config: --verbose must be in [0, 5]")
	}
	return nil
}

// ParseControlScenario parses the --control string into a
// ControlScenario, per spec.md §6.
func ParseControlScenario(s string) (ControlScenario, error) {
	sc := ControlScenario{Duration: 60, FPS: 30}
	if !strings.HasPrefix(s, ":") {
		sc.ScenarioPath = s
		return sc, nil
	}
	parts := strings.Split(s[1:], ":")
	if parts[0] != "random" {
		return ControlScenario{}, errors.Errorf("config: unrecognised --control scenario %q", s)
	}
	for _, kv := range parts[1:] {
		if kv == "" {
			continue
		}
		k, v, hasVal := strings.Cut(kv, "=")
		switch k {
		case "duration":
			n, err := strconv.Atoi(v)
			if err != nil {
				return ControlScenario{}, errors.Wrapf(err, "config: bad duration in %q", s)
			}
			sc.Duration = n
		case "fps":
			n, err := strconv.Atoi(v)
			if err != nil {
				return ControlScenario{}, errors.Wrapf(err, "config: bad fps in %q", s)
			}
			sc.FPS = n
		case "powerup":
			sc.PowerUpDown = true
		case "fixsettings":
			sc.FixSettings = true
		default:
			if hasVal {
				return ControlScenario{}, errors.Errorf("config: unrecognised --control key %q in %q", k, s)
			}
			return ControlScenario{}, errors.Errorf("config: unrecognised --control flag %q in %q", k, s)
		}
	}
	return sc, nil
}

// multiFlag implements flag.Value for repeatable string flags.
type multiFlag []string

func (m *multiFlag) String() string { return fmt.Sprintf("%v", []string(*m)) }
func (m *multiFlag) Set(v string) error {
	*m = append(*m, v)
	return nil
}
