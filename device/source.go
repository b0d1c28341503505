/*
NAME
  source.go

DESCRIPTION
  source.go defines FrameSource and ImageDecoder, the external
  collaborators TVEngine input channels are built from, and Open, the
  dispatcher implementing the --in source-string grammar named in
  spec.md §6, modelled on ausocean-av's device.AVDevice / Config.Set
  pattern.

LICENSE
  This software is Copyright (C) 2026 the author. All Rights Reserved.
*/

// Package device implements the Runner's video/image input sources: still
// images, video files and cameras (via gocv), and the synthetic SMPTE
// colour-bars generator, dispatched from the --in source-string grammar
// named in spec.md §6.
package device

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/duskframe/ntsctv/raster"
)

// videoExts names the file extensions spec.md §6 classifies as video
// sources; anything else is treated as a still image.
var videoExts = map[string]bool{
	".h264": true, ".h265": true, ".mpeg2": true, ".mpeg4": true,
	".mp4": true, ".mjpeg": true, ".mpg": true, ".vp8": true,
	".mov": true, ".wmv": true, ".flv": true, ".avi": true, ".mkv": true,
}

// ImageDecoder decodes a single still image from a filesystem path.
type ImageDecoder interface {
	Decode(path string) (*raster.Raster, error)
}

// FrameSource yields a sequence of frames: a still image forever, a
// video file's successive frames, or a camera's live feed.
type FrameSource interface {
	// Next returns the next frame, or io.EOF (wrapped) when a video
	// source is exhausted. A still-image source returns the same frame
	// forever.
	Next() (*raster.Raster, error)
	Close() error
}

// Open dispatches one --in source string to a FrameSource, per spec.md
// §6: a filesystem path (video or image by extension), ":cam[:N]", or
// ":bars[:/path/to/logo]".
func Open(src string) (FrameSource, error) {
	if strings.HasPrefix(src, ":") {
		parts := strings.Split(src[1:], ":")
		switch parts[0] {
		case "cam":
			n := 0
			if len(parts) > 1 {
				v, err := strconv.Atoi(parts[1])
				if err != nil {
					return nil, fmt.Errorf("device: invalid camera index %q: %w", parts[1], err)
				}
				n = v
			}
			return openCamera(n)
		case "bars":
			logo := ""
			if len(parts) > 1 {
				logo = parts[1]
			}
			return newBarsSource(logo)
		default:
			return nil, fmt.Errorf("device: unrecognised source %q", src)
		}
	}

	ext := strings.ToLower(filepath.Ext(src))
	if videoExts[ext] {
		return openVideoFile(src)
	}
	return openImageFile(src)
}
