//go:build !withcv

/*
NAME
  image_stub.go

DESCRIPTION
  image_stub.go provides the stdlib-based ImageDecoder used when built
  without gocv: image/jpeg and image/png decode via the standard
  library, per DESIGN.md's note that the image.ImageDecoder concern is
  served by a third-party library only when gocv is available, and
  falls back to the stdlib otherwise (the stdlib image codecs are a
  reasonable substitute here, since there is no ecosystem alternative
  the rest of the pack exercises for static image decode).

LICENSE
  This software is Copyright (C) 2026 the author. All Rights Reserved.
*/

package device

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/duskframe/ntsctv/raster"
)

type stdlibDecoder struct{}

func (stdlibDecoder) Decode(path string) (*raster.Raster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("device: opening image %q: %w", path, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("device: decoding image %q: %w", path, err)
	}
	return raster.FromImage(img), nil
}

var defaultDecoder ImageDecoder = stdlibDecoder{}
