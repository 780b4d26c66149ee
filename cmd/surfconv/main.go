// Command surfconv converts images between pixel formats through the surf
// blitter.
//
// Usage:
//
//	surfconv [options] input output
//
// The input is decoded, optionally reduced to one animation frame, scaled,
// colorkeyed, converted to the requested pixel format, blitted over a
// background and captioned, in that order. The output format follows the
// output file extension.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/gogpu/surf"
	"github.com/gogpu/surf/surfio"
)

type options struct {
	Format   string `short:"f" long:"format" default:"rgba32" description:"Target pixel format (rgba32, bgra32, rgb32, rgb24, rgb565, rgb332, rgba4444, indexedN, grayN, grayN-lightness)"`
	Colorkey string `short:"k" long:"colorkey" value-name:"RRGGBB" description:"Color treated as transparent when blitting"`
	Over     string `short:"o" long:"over" value-name:"FILE" description:"Background image to blit the input onto"`
	X        int    `short:"x" long:"x" description:"Horizontal blit position on the background"`
	Y        int    `short:"y" long:"y" description:"Vertical blit position on the background"`
	Alpha    int    `short:"a" long:"alpha" default:"-1" description:"Per-surface alpha applied when blitting, 0 to 255"`
	Scale    string `short:"s" long:"scale" value-name:"WxH" description:"Scale the input to WxH"`
	Filter   string `long:"filter" default:"bilinear" choice:"nearest" choice:"approx" choice:"bilinear" choice:"catmullrom" description:"Scale filter"`
	Frame    int    `long:"frame" default:"-1" description:"Render this animation frame instead of the whole animation"`
	Caption  string `short:"c" long:"caption" description:"Text drawn at the bottom left of the output"`
	Ink      string `long:"ink" default:"ffffff" value-name:"RRGGBB" description:"Caption color"`
	Quality  int    `short:"q" long:"quality" default:"90" description:"JPEG quality"`
	Verbose  bool   `short:"v" long:"verbose" description:"Log blit dispatch and conversions to stderr"`

	Args struct {
		Input  string `positional-arg-name:"input"`
		Output string `positional-arg-name:"output"`
	} `positional-args:"yes" required:"yes"`
}

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Println(flagsErr.Message)
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "surfconv:", err)
		os.Exit(1)
	}
}

func parseArgs(args []string) (*options, error) {
	var opts options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Usage = "[options] input output"
	if _, err := parser.ParseArgs(args); err != nil {
		return nil, err
	}
	return &opts, nil
}

func run(args []string, stderr io.Writer) error {
	opts, err := parseArgs(args)
	if err != nil {
		return err
	}
	if opts.Verbose {
		surf.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer surf.SetLogger(nil)
	}
	c, err := newConverter(opts)
	if err != nil {
		return err
	}

	s, format, err := surfio.Load(opts.Args.Input)
	if err != nil {
		return err
	}
	surf.Logger().Info("surfconv: loaded", "file", opts.Args.Input, "format", format,
		"w", s.W, "h", s.H, "pf", s.Format.String(), "frames", len(s.Frames))

	out, err := c.convert(s)
	if err != nil {
		return err
	}
	if err := surfio.Save(opts.Args.Output, out, surfio.WithQuality(opts.Quality)); err != nil {
		return err
	}
	surf.Logger().Info("surfconv: wrote", "file", opts.Args.Output,
		"w", out.W, "h", out.H, "pf", out.Format.String())
	return nil
}
