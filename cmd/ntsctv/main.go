/*
NAME
  main.go

DESCRIPTION
  main.go is the ntsctv CLI entry point: it parses the flags named in
  spec.md §6, builds a Runner, and drives it to completion or
  interruption, exiting with the codes spec.md §7 describes.

LICENSE
  This software is Copyright (C) 2026 the author. All Rights Reserved.
*/

// Command ntsctv synthesises and renders an NTSC composite-video signal
// from one or more image/video sources, as if tuned and displayed on a
// late-1970s analog television.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/duskframe/ntsctv/config"
	"github.com/duskframe/ntsctv/log"
	"github.com/duskframe/ntsctv/runner"
)

const (
	logPath      = "ntsctv.log"
	logMaxSizeMB = 50
	logMaxBackup = 5
	logMaxAgeDay = 14
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// verbosityToLevel maps the --verbose 0-5 scale (0 quietest, 5 loudest)
// onto log.Level, where a lower Level threshold logs more.
func verbosityToLevel(verbose int) log.Level {
	lvl := 4 - verbose
	if lvl < int(log.Debug) {
		lvl = int(log.Debug)
	}
	if lvl > int(log.Fatal) {
		lvl = int(log.Fatal)
	}
	return log.Level(lvl)
}

func run(args []string) int {
	cfg, err := config.Parse(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return -1
	}

	lj := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    logMaxSizeMB,
		MaxBackups: logMaxBackup,
		MaxAge:     logMaxAgeDay,
	}
	defer lj.Close()
	l := log.New(verbosityToLevel(cfg.Verbose), lj, false)

	r, err := runner.New(cfg, l)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		cancel()
	}()

	if err := r.Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
