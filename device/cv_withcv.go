//go:build withcv

/*
NAME
  cv_withcv.go

DESCRIPTION
  cv_withcv.go implements the gocv-backed FrameSource variants: camera
  capture and video file decode, mirroring ausocean-av's filter/motion.go
  gocv build-tag split.

LICENSE
  This software is Copyright (C) 2026 the author. All Rights Reserved.
*/

package device

import (
	"fmt"
	"io"

	"gocv.io/x/gocv"

	"github.com/duskframe/ntsctv/raster"
)

type cvCapture struct {
	cap *gocv.VideoCapture
	mat gocv.Mat
}

func openCamera(n int) (FrameSource, error) {
	cap, err := gocv.OpenVideoCapture(n)
	if err != nil {
		return nil, fmt.Errorf("device: opening camera %d: %w", n, err)
	}
	return &cvCapture{cap: cap, mat: gocv.NewMat()}, nil
}

func openVideoFile(path string) (FrameSource, error) {
	cap, err := gocv.VideoCaptureFile(path)
	if err != nil {
		return nil, fmt.Errorf("device: opening video file %q: %w", path, err)
	}
	return &cvCapture{cap: cap, mat: gocv.NewMat()}, nil
}

func (c *cvCapture) Next() (*raster.Raster, error) {
	if ok := c.cap.Read(&c.mat); !ok || c.mat.Empty() {
		return nil, io.EOF
	}
	return raster.FromMat(c.mat)
}

func (c *cvCapture) Close() error {
	c.mat.Close()
	return c.cap.Close()
}

type cvImage struct{}

func (cvImage) Decode(path string) (*raster.Raster, error) {
	m := gocv.IMRead(path, gocv.IMReadColor)
	if m.Empty() {
		return nil, fmt.Errorf("device: decoding image %q failed", path)
	}
	defer m.Close()
	return raster.FromMat(m)
}

var defaultDecoder ImageDecoder = cvImage{}
