// Package export writes rendered diagrams as vector and raster images.
package export

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jovian/orrery"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
	"github.com/tdewolff/canvas/renderers/rasterizer"
	"github.com/tdewolff/canvas/renderers/svg"
	"github.com/tdewolff/minify/v2"
	minifySVG "github.com/tdewolff/minify/v2/svg"
	"golang.org/x/image/draw"
)

const svgMediatype = "image/svg+xml"

// PxPerInch is the number of canvas units per inch. Canvas units are treated as CSS pixels.
const PxPerInch = 96.0

// Options are the output options.
type Options struct {
	Resolution  canvas.Resolution
	Background  color.Color // nil for a transparent background
	Minify      bool        // minify SVG output
	Compression int         // gzip level for SVG output, zero for none
}

// DefaultOptions writes one pixel per canvas unit on a transparent background.
var DefaultOptions = Options{
	Resolution: canvas.DPMM(1.0),
}

// DPI returns the resolution for the given dots per inch, with canvas units taken as pixels at 96 DPI.
func DPI(dpi float64) canvas.Resolution {
	return canvas.DPMM(dpi / PxPerInch)
}

func options(opts *Options) Options {
	if opts == nil {
		return DefaultOptions
	}
	o := *opts
	if o.Resolution == 0.0 {
		o.Resolution = DefaultOptions.Resolution
	}
	return o
}

// SVG returns a writer for scalable vector graphics.
func SVG(opts *Options) canvas.Writer {
	o := options(opts)
	return func(w io.Writer, c *canvas.Canvas) error {
		svgOpts := svg.DefaultOptions
		svgOpts.Compression = o.Compression
		if o.Compression != 0 {
			return renderers.SVGZ(&svgOpts)(w, c)
		} else if !o.Minify {
			return renderers.SVG(&svgOpts)(w, c)
		}

		m := minify.New()
		m.AddFunc(svgMediatype, minifySVG.Minify)
		mw := m.Writer(svgMediatype, w)
		if err := renderers.SVG(&svgOpts)(mw, c); err != nil {
			mw.Close()
			return err
		}
		return mw.Close()
	}
}

// PNG returns a writer for PNG images. The canvas is rasterized and composited over the background color, if any.
func PNG(opts *Options) canvas.Writer {
	o := options(opts)
	return func(w io.Writer, c *canvas.Canvas) error {
		return png.Encode(w, Image(c, o.Resolution, o.Background))
	}
}

// Image rasterizes the canvas over a background color. A nil background leaves the image transparent.
func Image(c *canvas.Canvas, resolution canvas.Resolution, background color.Color) image.Image {
	img := rasterizer.Draw(c, resolution, canvas.DefaultColorSpace)
	if background == nil {
		return img
	}

	dst := image.NewRGBA(img.Bounds())
	draw.Draw(dst, dst.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Over)
	return dst
}

// Write writes the canvas to a file, the format is chosen by the file extension. Formats other than SVG and PNG are handled by
// the canvas renderers, the resolution only applies to raster formats.
func Write(filename string, c *canvas.Canvas, opts *Options) error {
	o := options(opts)

	var err error
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".svg":
		err = c.WriteFile(filename, SVG(&o))
	case ".svgz":
		if o.Compression == 0 {
			o.Compression = -1
		}
		err = c.WriteFile(filename, SVG(&o))
	case ".png":
		err = c.WriteFile(filename, PNG(&o))
	case ".jpg", ".jpeg", ".gif", ".tif", ".tiff":
		err = renderers.Write(filename, c, o.Resolution)
	case ".pdf", ".eps", ".tex", ".pgf":
		err = renderers.Write(filename, c)
	default:
		return fmt.Errorf("%w: %s: unknown file extension %q", orrery.ErrRendering, filename, ext)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %v", orrery.ErrRendering, filename, err)
	}
	return nil
}

// WriteAll writes base.svg, base_transparent.png and base.png, the last on a white background. It returns the written filenames.
func WriteAll(base string, c *canvas.Canvas, opts *Options) ([]string, error) {
	o := options(opts)

	transparent := o
	transparent.Background = nil
	white := o
	white.Background = canvas.White

	files := []struct {
		name string
		opts Options
	}{
		{base + ".svg", o},
		{base + "_transparent.png", transparent},
		{base + ".png", white},
	}

	written := []string{}
	for _, f := range files {
		if dir := filepath.Dir(f.name); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return written, fmt.Errorf("%w: %v", orrery.ErrRendering, err)
			}
		}
		if err := Write(f.name, c, &f.opts); err != nil {
			return written, err
		}
		written = append(written, f.name)
	}
	return written, nil
}
