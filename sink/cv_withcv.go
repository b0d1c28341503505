//go:build withcv

/*
NAME
  cv_withcv.go

DESCRIPTION
  cv_withcv.go implements the gocv-backed FrameSink variants: an
  interactive window (gocv.Window / IMShow) and an encoded video file
  (gocv.VideoWriter).

LICENSE
  This software is Copyright (C) 2026 the author. All Rights Reserved.
*/

package sink

import (
	"fmt"

	"gocv.io/x/gocv"

	"github.com/duskframe/ntsctv/raster"
)

type windowSink struct {
	win *gocv.Window
	mat gocv.Mat
}

func openWindow(w, h int) (FrameSink, error) {
	win := gocv.NewWindow("ntsctv")
	win.ResizeWindow(w, h)
	return &windowSink{win: win, mat: gocv.NewMat()}, nil
}

func (s *windowSink) Write(frame *raster.Raster) error {
	m, err := frame.ToMat()
	if err != nil {
		return err
	}
	defer m.Close()
	s.win.IMShow(m)
	s.win.WaitKey(1)
	return nil
}

func (s *windowSink) Close() error {
	s.mat.Close()
	return s.win.Close()
}

type fileSink struct {
	vw *gocv.VideoWriter
}

func openFile(path, fourcc string, w, h int) (FrameSink, error) {
	vw, err := gocv.VideoWriterFile(path, fourcc, OutputFPS, w, h, true)
	if err != nil {
		return nil, fmt.Errorf("sink: opening %q: %w", path, err)
	}
	return &fileSink{vw: vw}, nil
}

func (s *fileSink) Write(frame *raster.Raster) error {
	m, err := frame.ToMat()
	if err != nil {
		return err
	}
	defer m.Close()
	return s.vw.Write(m)
}

func (s *fileSink) Close() error { return s.vw.Close() }
