// Package binarize turns a raw pixel buffer into a ternary Bitmap using
// 8x8-block adaptive thresholding, the way a phone camera's uneven
// lighting across a photographed QR symbol is handled: no single global
// threshold works, so each block gets its own, smoothed by its neighbors
// when the block itself is too uniform to tell.
package binarize

import (
	"github.com/jalphad/qrdecode/internal/bitmap"
	"github.com/jalphad/qrdecode/qrerror"
)

// Image is a decoded pixel buffer: width*height*bytesPerPixel bytes, row
// major, bytesPerPixel in {1 (gray), 3 (RGB), 4 (RGBA)}.
type Image struct {
	Width, Height int
	Bytes         []byte
	BytesPerPixel int
}

const blockSize = 8
const minDimension = 5 * blockSize // 40

// Binarize converts img to a Bitmap of ON/OFF cells. It fails with
// qrerror.ImageTooSmall when either dimension is below 40 pixels (5
// blocks), and qrerror.InvalidArgument when the image's declared
// dimensions and byte count disagree or bytesPerPixel is not 1, 3, or 4.
func Binarize(img Image) (*bitmap.Bitmap, error) {
	return BinarizeOffset(img, 0)
}

// BinarizeOffset is Binarize with a brightness offset added to every luma
// sample before thresholding (clamped to [0,255]). A caller may retry
// decoding with a small nonzero offset (e.g. +-5) as a compatibility
// heuristic for source images whose luma comes out slightly mis-biased;
// the offset has no effect on which block is "nearly uniform" logic picks,
// only on where the threshold falls.
func BinarizeOffset(img Image, offset int) (*bitmap.Bitmap, error) {
	if img.Width <= 0 || img.Height <= 0 {
		return nil, qrerror.New(qrerror.InvalidArgument, "image dimensions must be positive, got %dx%d", img.Width, img.Height)
	}
	if img.BytesPerPixel != 1 && img.BytesPerPixel != 3 && img.BytesPerPixel != 4 {
		return nil, qrerror.New(qrerror.InvalidArgument, "bytesPerPixel must be 1, 3, or 4, got %d", img.BytesPerPixel)
	}
	if len(img.Bytes) != img.Width*img.Height*img.BytesPerPixel {
		return nil, qrerror.New(qrerror.InvalidArgument, "image byte buffer length %d does not match %dx%dx%d", len(img.Bytes), img.Width, img.Height, img.BytesPerPixel)
	}
	if img.Width < minDimension || img.Height < minDimension {
		return nil, qrerror.New(qrerror.ImageTooSmall, "image %dx%d is smaller than the minimum %dx%d", img.Width, img.Height, minDimension, minDimension)
	}

	luma := computeLuma(img)
	if offset != 0 {
		for i, v := range luma {
			luma[i] = clamp(v+offset, 0, 255)
		}
	}
	bWidth := (img.Width + blockSize - 1) / blockSize
	bHeight := (img.Height + blockSize - 1) / blockSize
	thresholds := computeBlockThresholds(luma, img.Width, img.Height, bWidth, bHeight)

	out := bitmap.New(img.Width, img.Height)
	for by := 0; by < bHeight; by++ {
		for bx := 0; bx < bWidth; bx++ {
			mean := neighborhoodMean(thresholds, bx, by, bWidth, bHeight)
			x0, y0 := bx*blockSize, by*blockSize
			x1 := min(x0+blockSize, img.Width)
			y1 := min(y0+blockSize, img.Height)
			for y := y0; y < y1; y++ {
				for x := x0; x < x1; x++ {
					v := luma[y*img.Width+x]
					if v <= mean {
						out.Set(x, y, bitmap.On)
					} else {
						out.Set(x, y, bitmap.Off)
					}
				}
			}
		}
	}
	return out, nil
}

// computeLuma returns Y = (R + 2G + B) / 4 per pixel, clamped to a byte.
// Grayscale input is passed through unchanged.
func computeLuma(img Image) []int {
	out := make([]int, img.Width*img.Height)
	if img.BytesPerPixel == 1 {
		for i := range out {
			out[i] = int(img.Bytes[i])
		}
		return out
	}
	for i := 0; i < img.Width*img.Height; i++ {
		p := i * img.BytesPerPixel
		r, g, b := int(img.Bytes[p]), int(img.Bytes[p+1]), int(img.Bytes[p+2])
		y := (r + 2*g + b) / 4
		if y > 255 {
			y = 255
		}
		out[i] = y
	}
	return out
}

// computeBlockThresholds computes one threshold per 8x8 block, smoothing
// near-uniform blocks against their above/left neighbors.
func computeBlockThresholds(luma []int, width, height, bWidth, bHeight int) [][]int {
	thresholds := make([][]int, bHeight)
	for i := range thresholds {
		thresholds[i] = make([]int, bWidth)
	}

	for by := 0; by < bHeight; by++ {
		for bx := 0; bx < bWidth; bx++ {
			x0, y0 := bx*blockSize, by*blockSize
			x1 := min(x0+blockSize, width)
			y1 := min(y0+blockSize, height)

			blockMin, blockMax, sum := 255, 0, 0
			for y := y0; y < y1; y++ {
				for x := x0; x < x1; x++ {
					v := luma[y*width+x]
					if v < blockMin {
						blockMin = v
					}
					if v > blockMax {
						blockMax = v
					}
					sum += v
				}
			}

			var threshold int
			if blockMax-blockMin > 24 {
				threshold = sum / 64
			} else {
				threshold = blockMin / 2
				haveAbove := by > 0
				haveLeft := bx > 0
				if haveAbove && haveLeft {
					above := thresholds[by-1][bx]
					left := thresholds[by][bx-1]
					aboveLeft := thresholds[by-1][bx-1]
					prev := (above + 2*left + aboveLeft) / 4
					if blockMin < prev {
						threshold = prev
					}
				}
			}
			thresholds[by][bx] = threshold
		}
	}
	return thresholds
}

// neighborhoodMean averages the 5x5 neighborhood of block thresholds
// centered on (bx, by), clamped so the window stays in bounds.
func neighborhoodMean(thresholds [][]int, bx, by, bWidth, bHeight int) int {
	cy := clamp(by, 2, bHeight-3)
	cx := clamp(bx, 2, bWidth-3)
	sum := 0
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			sum += thresholds[cy+dy][cx+dx]
		}
	}
	return sum / 25
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
