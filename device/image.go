/*
NAME
  image.go

DESCRIPTION
  image.go provides stillImageSource, the FrameSource that serves a
  single decoded image forever, and openImageFile, the non-video-
  extension branch of the --in dispatcher in source.go.

LICENSE
  This software is Copyright (C) 2026 the author. All Rights Reserved.
*/

package device

import "github.com/duskframe/ntsctv/raster"

// stillImageSource serves the same decoded frame on every Next call.
type stillImageSource struct {
	frame *raster.Raster
}

func openImageFile(path string) (FrameSource, error) {
	img, err := defaultDecoder.Decode(path)
	if err != nil {
		return nil, err
	}
	return &stillImageSource{frame: img}, nil
}

func (s *stillImageSource) Next() (*raster.Raster, error) { return s.frame, nil }
func (s *stillImageSource) Close() error                  { return nil }
