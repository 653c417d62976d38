package main

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/spf13/cobra"

	qrcode "github.com/jalphad/qrdecode"
	"github.com/jalphad/qrdecode/internal/config"
	"github.com/jalphad/qrdecode/qrerror"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <image>",
	Short: "Decode a QR code from an image file",
	Args:  cobra.ExactArgs(1),
	RunE:  runDecode,
}

func runDecode(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg.Apply()

	width, height, pixels, err := loadGrayscale(args[0])
	if err != nil {
		return err
	}
	logger.Sugar().Debugw("loaded image", "path", args[0], "width", width, "height", height)

	result, err := qrcode.DecodeDetail(width, height, pixels)
	if err != nil {
		logger.Sugar().Errorw("decode failed", "path", args[0], "kind", qrerror.KindOf(err), "error", err)
		return err
	}

	logger.Sugar().Infow("decoded",
		"version", result.Version,
		"ecc", result.ECC.String(),
		"mask", result.Mask,
		"errors_corrected", result.ErrorsCorrected,
	)
	fmt.Println(result.Text)
	return nil
}

// loadGrayscale opens an image file and flattens it into a row-major
// 8-bit luma buffer, the pixel format qrcode.Decode expects for
// bytesPerPixel=1.
func loadGrayscale(path string) (width, height int, pixels []byte, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return 0, 0, nil, err
	}

	bounds := img.Bounds()
	width, height = bounds.Dx(), bounds.Dy()
	pixels = make([]byte, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			r, g, b = r>>8, g>>8, b>>8
			// (R + 2G + B) / 4, the same weighting internal/binarize applies
			// internally — keeps a pre-converted grayscale PNG's values
			// unchanged by this step.
			pixels[y*width+x] = byte((r + 2*g + b) / 4)
		}
	}
	return width, height, pixels, nil
}
