// Package stream supplies the I/O boundary around the gradient engines:
// frame sources that yield luma rasters from still images and animated
// GIFs, frame sinks that collect visualization rasters into PNG files or an
// animated GIF, and a color rendering of gradient direction.
//
// Sources return io.EOF at end-of-stream and support Reset for callers that
// want to loop playback; the gradient package itself never loops. All
// frames produced by one source have identical dimensions.
package stream
