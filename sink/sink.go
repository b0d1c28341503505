/*
NAME
  sink.go

DESCRIPTION
  sink.go defines FrameSink and Open, the dispatcher implementing the
  --out grammar named in spec.md §6: ":highgui" opens an interactive
  window, anything else opens a container file encoded at 30fps with
  gocv.VideoWriter.

LICENSE
  This software is Copyright (C) 2026 the author. All Rights Reserved.
*/

// Package sink implements the Runner's output destinations: an
// interactive highgui window or an encoded video file, dispatched from
// the --out string grammar named in spec.md §6.
package sink

import (
	"path/filepath"
	"strings"

	"github.com/duskframe/ntsctv/raster"
)

// OutputFPS is the fixed output frame rate named in spec.md §6.
const OutputFPS = 30

// FrameSink accepts successive output frames.
type FrameSink interface {
	Write(frame *raster.Raster) error
	Close() error
}

// Open dispatches one --out string: ":highgui" for an interactive
// window, else a container file path (fourcc chosen from its extension).
func Open(dst string, w, h int) (FrameSink, error) {
	if dst == ":highgui" {
		return openWindow(w, h)
	}

	fourcc := "mp4v"
	if strings.ToLower(filepath.Ext(dst)) == ".avi" {
		fourcc = "MJPG"
	}
	return openFile(dst, fourcc, w, h)
}
