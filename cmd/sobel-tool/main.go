package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/hardye/sobel-tools/internal/gradient"
	"github.com/hardye/sobel-tools/internal/stream"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("sobel-tool %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			usage()
			return
		}
	}

	mode := flag.String("mode", "image", "processing mode: image, video2d or video3d")
	in := flag.String("in", "", "input image or animated GIF")
	out := flag.String("out", "output", "output directory")
	maxWidth := flag.Int("max-width", 0, "downscale frames wider than this (0 = off)")
	scale := flag.Int("scale", 1, "integer upscale factor for output frames")
	delay := flag.Int("delay", 3, "GIF frame delay in 100ths of a second")
	loop := flag.Int("loop", 0, "extra playback passes over the source in video modes")
	flag.Parse()

	// Processing progress goes to stderr, keeping stdout clean
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if *in == "" {
		usage()
		os.Exit(2)
	}
	if err := os.MkdirAll(*out, 0o755); err != nil {
		log.Fatalf("Cannot create output directory: %v", err)
	}

	var err error
	switch *mode {
	case "image":
		err = runImage(*in, *out, *maxWidth, *scale)
	case "video2d":
		err = runVideo2D(*in, *out, *maxWidth, *scale, *delay, *loop)
	case "video3d":
		err = runVideo3D(*in, *out, *maxWidth, *scale, *delay, *loop)
	default:
		log.Fatalf("Unknown mode %q (want image, video2d or video3d)", *mode)
	}
	if err != nil {
		log.Fatalf("Processing error: %v", err)
	}
}

func usage() {
	fmt.Println("sobel-tool - Sobel gradient computation over images and animated GIFs")
	fmt.Println()
	fmt.Println("Usage: sobel-tool [options]")
	fmt.Println()
	fmt.Println("Modes:")
	fmt.Println("  image      2-D Sobel over a still image; writes gray, gx, gy,")
	fmt.Println("             magnitude, theta and direction PNGs")
	fmt.Println("  video2d    per-frame 2-D Sobel over a GIF; writes magnitude.gif")
	fmt.Println("             and theta.gif")
	fmt.Println("  video3d    3-D spatiotemporal Sobel over a GIF; writes")
	fmt.Println("             original.gif, gt.gif and magnitude.gif")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
}

// runImage handles the still-image pipeline: one spatial computation, the
// full set of visualization PNGs.
func runImage(in, outDir string, maxWidth, scale int) error {
	src, err := stream.OpenStill(in, maxWidth)
	if err != nil {
		return err
	}
	frame, err := src.Next()
	if err != nil {
		return err
	}

	field, err := gradient.ComputeSpatial(frame)
	if err != nil {
		return err
	}
	log.Printf("Computed %dx%d spatial gradient", field.Width, field.Height)

	wheel, err := stream.DirectionColormap(field)
	if err != nil {
		return err
	}

	w, h := field.Width, field.Height
	outputs := []struct {
		name string
		img  image.Image
	}{
		{"gray.png", frame.Gray()},
		{"gx.png", gradient.NormalizeAbs(field.Gx, w, h).Gray()},
		{"gy.png", gradient.NormalizeAbs(field.Gy, w, h).Gray()},
		{"magnitude.png", gradient.Normalize(field.Magnitude, w, h).Gray()},
		{"theta.png", gradient.Normalize(field.Theta, w, h).Gray()},
		{"direction.png", wheel},
	}
	for _, out := range outputs {
		path := filepath.Join(outDir, out.name)
		if err := stream.SavePNG(path, stream.Upscale(out.img, scale)); err != nil {
			return err
		}
		log.Printf("Wrote %s", path)
	}
	return nil
}

// runVideo2D runs the spatial engine on every frame of an animated GIF and
// collects magnitude and theta animations.
func runVideo2D(in, outDir string, maxWidth, scale, delay, loop int) error {
	src, err := stream.OpenGIF(in, maxWidth)
	if err != nil {
		return err
	}

	magSink := stream.NewGIFSink(filepath.Join(outDir, "magnitude.gif"), delay, scale)
	thetaSink := stream.NewGIFSink(filepath.Join(outDir, "theta.gif"), delay, scale)

	frames := 0
	for pass := 0; pass <= loop; pass++ {
		for {
			frame, err := src.Next()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return err
			}

			field, err := gradient.ComputeSpatial(frame)
			if err != nil {
				return err
			}
			if err := magSink.Write(gradient.Normalize(field.Magnitude, field.Width, field.Height)); err != nil {
				return err
			}
			if err := thetaSink.Write(gradient.Normalize(field.Theta, field.Width, field.Height)); err != nil {
				return err
			}
			frames++
		}
		if err := src.Reset(); err != nil {
			return err
		}
	}
	log.Printf("Processed %d frames", frames)

	if err := magSink.Close(); err != nil {
		return err
	}
	return thetaSink.Close()
}

// runVideo3D runs the spatiotemporal engine over a sliding three-frame
// window, re-priming at end-of-stream when extra passes are requested. The
// looping policy lives here; the window itself never loops.
func runVideo3D(in, outDir string, maxWidth, scale, delay, loop int) error {
	src, err := stream.OpenGIF(in, maxWidth)
	if err != nil {
		return err
	}

	origSink := stream.NewGIFSink(filepath.Join(outDir, "original.gif"), delay, scale)
	gtSink := stream.NewGIFSink(filepath.Join(outDir, "gt.gif"), delay, scale)
	magSink := stream.NewGIFSink(filepath.Join(outDir, "magnitude.gif"), delay, scale)

	window, err := gradient.PrimeWindow(src)
	if err != nil {
		return err
	}

	frames := 0
	pass := 0
	for {
		field, err := gradient.ComputeTemporal(window)
		if err != nil {
			return err
		}

		if err := origSink.Write(window.Curr()); err != nil {
			return err
		}
		if err := gtSink.Write(gradient.NormalizeAbs(field.Gt, field.Width, field.Height)); err != nil {
			return err
		}
		if err := magSink.Write(gradient.Normalize(field.Magnitude, field.Width, field.Height)); err != nil {
			return err
		}
		frames++

		next, err := src.Next()
		if errors.Is(err, io.EOF) {
			pass++
			if pass > loop {
				break
			}
			// Restart playback: rewind the source and prime a fresh window,
			// mirroring a video-capture re-open.
			if err := src.Reset(); err != nil {
				return err
			}
			if window, err = gradient.PrimeWindow(src); err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}
		if err := window.Advance(next); err != nil {
			return err
		}
	}
	log.Printf("Processed %d frames", frames)

	if err := origSink.Close(); err != nil {
		return err
	}
	if err := gtSink.Close(); err != nil {
		return err
	}
	return magSink.Close()
}
