//go:build !withcv

/*
NAME
  cv_stub.go

DESCRIPTION
  cv_stub.go provides the camera/video-file FrameSource stand-ins used
  when built without gocv, mirroring ausocean-av's
  filter/filters_circleci.go stub pattern. Still images continue to work
  via the stdlib image package (image_stub.go); live capture and video
  decode are unavailable without OpenCV.

LICENSE
  This software is Copyright (C) 2026 the author. All Rights Reserved.
*/

package device

import "fmt"

func openCamera(n int) (FrameSource, error) {
	return nil, fmt.Errorf("device: camera capture requires a gocv build (tag withcv)")
}

func openVideoFile(path string) (FrameSource, error) {
	return nil, fmt.Errorf("device: video file decode requires a gocv build (tag withcv): %s", path)
}
