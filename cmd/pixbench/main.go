// Command pixbench measures the sequential and parallel conversion drivers on
// a synthetic frame.
//
// Usage:
//
//	go run ./cmd/pixbench --pair rgb-i420 --width 1920 --height 1080 --workers 8
package main

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/pion/logging"
	pixlog "github.com/pion/pixconv/internal/logging"
	"github.com/pion/pixconv/pkg/convert"
	"github.com/pion/pixconv/pkg/frame"
	"github.com/pion/pixconv/pkg/pixel"
	"github.com/spf13/pflag"
)

var logger = pixlog.NewLogger("pixconv/pixbench")

var logLevels = map[string]logging.LogLevel{
	"disabled": logging.LogLevelDisabled,
	"error":    logging.LogLevelError,
	"warn":     logging.LogLevelWarn,
	"info":     logging.LogLevelInfo,
	"debug":    logging.LogLevelDebug,
	"trace":    logging.LogLevelTrace,
}

type result struct {
	sequential, parallel time.Duration
}

type benchFunc func(e *convert.Engine, width, height, iterations int) result

var pairs = map[string]benchFunc{
	"gray-rgb": func(e *convert.Engine, width, height, iterations int) result {
		src := frame.NewPacked[pixel.Gray[uint8]](width, height)
		for i := range src.Pix {
			src.Pix[i] = pixel.Gray[uint8]{uint8(i)}
		}
		return bench(e, src, frame.NewPacked[pixel.Rgb[uint8]](0, 0), pixel.GrayToRgb[uint8], iterations)
	},
	"rgb-gray": func(e *convert.Engine, width, height, iterations int) result {
		return bench(e, rgbSource(width, height), frame.NewPacked[pixel.Gray[uint8]](0, 0), pixel.RgbToGray[uint8], iterations)
	},
	"rgb-bgr": func(e *convert.Engine, width, height, iterations int) result {
		return bench(e, rgbSource(width, height), frame.NewPacked[pixel.Bgr[uint8]](0, 0), pixel.RgbToBgr[uint8], iterations)
	},
	"rgb-i420": func(e *convert.Engine, width, height, iterations int) result {
		dst := frame.NewPlanar[uint8, pixel.Yuv420p[uint8]](0, 0)
		return bench(e, rgbSource(width, height), dst, pixel.RgbToYuv[uint8, pixel.Yuv420p[uint8]], iterations)
	},
	"i420-rgb": func(e *convert.Engine, width, height, iterations int) result {
		src := frame.NewPlanar[uint8, pixel.Yuv420p[uint8]](0, 0)
		convert.Sequential(rgbSource(width, height), src, pixel.RgbToYuv[uint8, pixel.Yuv420p[uint8]])
		return bench(e, src, frame.NewPacked[pixel.Rgb[uint8]](0, 0), pixel.YuvToRgb[uint8, pixel.Yuv420p[uint8]], iterations)
	},
}

func rgbSource(width, height int) *frame.Packed[pixel.Rgb[uint8]] {
	src := frame.NewPacked[pixel.Rgb[uint8]](width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			src.Set(x, y, pixel.Rgb[uint8]{uint8(x), uint8(y), uint8(x + y)})
		}
	}
	return src
}

func bench[S, D any, SI convert.Source[S], DI convert.Sink[D]](e *convert.Engine, src SI, dst DI, rule func(S) D, iterations int) result {
	var r result

	start := time.Now()
	for i := 0; i < iterations; i++ {
		convert.Sequential(src, dst, rule)
	}
	r.sequential = time.Since(start)

	start = time.Now()
	for i := 0; i < iterations; i++ {
		convert.ParallelOn(e, src, dst, rule)
	}
	r.parallel = time.Since(start)

	return r
}

func pairNames() string {
	names := make([]string, 0, len(pairs))
	for name := range pairs {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func main() {
	width := pflag.Int("width", 1920, "Frame width")
	height := pflag.Int("height", 1080, "Frame height")
	workers := pflag.Int("workers", 0, "Number of workers, 0 uses GOMAXPROCS")
	iterations := pflag.Int("iterations", 50, "Conversions per driver")
	pair := pflag.String("pair", "rgb-i420", "Conversion to run: "+pairNames())
	logLevel := pflag.String("log-level", "", "Log level: disabled, error, warn, info, debug or trace")
	pflag.Parse()

	if *logLevel != "" {
		level, ok := logLevels[strings.ToLower(*logLevel)]
		if !ok {
			log.Fatalf("unknown log level %q", *logLevel)
		}
		pixlog.SetLevel(level)
	}

	run, ok := pairs[*pair]
	if !ok {
		log.Fatalf("unknown pair %q, expected one of %s", *pair, pairNames())
	}
	if *width <= 0 || *height <= 0 || *iterations <= 0 {
		log.Fatalf("width, height and iterations must be positive")
	}

	e := convert.NewEngine(&convert.Config{Workers: *workers})
	defer e.Close()

	logger.Infof("running %s on %dx%d, %d iterations, %d workers", *pair, *width, *height, *iterations, e.Workers())
	r := run(e, *width, *height, *iterations)

	perFrame := func(d time.Duration) time.Duration { return d / time.Duration(*iterations) }
	fmt.Printf("%s %dx%d\n", *pair, *width, *height)
	fmt.Printf("sequential: %v/frame\n", perFrame(r.sequential))
	fmt.Printf("parallel:   %v/frame (%d workers, %.2fx)\n", perFrame(r.parallel), e.Workers(),
		float64(r.sequential)/float64(max(r.parallel, 1)))
}
