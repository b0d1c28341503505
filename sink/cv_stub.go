//go:build !withcv

/*
NAME
  cv_stub.go

DESCRIPTION
  cv_stub.go provides the FrameSink stand-ins used when built without
  gocv, mirroring ausocean-av's filter/filters_circleci.go stub
  pattern: neither an encoded video file nor an interactive window can
  be produced without OpenCV.

LICENSE
  This software is Copyright (C) 2026 the author. All Rights Reserved.
*/

package sink

import "fmt"

func openWindow(w, h int) (FrameSink, error) {
	return nil, fmt.Errorf("sink: highgui window requires a gocv build (tag withcv)")
}

func openFile(path, fourcc string, w, h int) (FrameSink, error) {
	return nil, fmt.Errorf("sink: video file encode requires a gocv build (tag withcv): %s", path)
}
