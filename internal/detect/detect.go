package detect

import "github.com/jalphad/qrdecode/internal/bitmap"

// finderVarianceRetries are the variance factors the detector tries in
// turn when a pass comes up short of three finder candidates. The run
// tolerance is ideal/factor, so with these defaults each later pass is
// stricter than the one before it, not looser.
var finderVarianceRetries = []float64{2.0, 2.5, 3.0}

// SetVarianceSteps overrides the finder variance-factor schedule
// Detect retries through. It exists so an operator-facing config layer
// (internal/config) can tune the robustness/latency tradeoff without the
// core package exposing a mutable knob in its normal call signature.
func SetVarianceSteps(steps []float64) {
	if len(steps) > 0 {
		finderVarianceRetries = steps
	}
}

// Result is everything the rectifier needs: the three finder centers, the
// bottom-right point (an alignment pattern center if one was found, else
// the extrapolated corner), whether that point came from a real alignment
// pattern, the estimated module size, and the snapped symbol size.
type Result struct {
	Triple             Triple
	BottomRight        Pattern
	HasAlignment       bool
	ModuleSize         float64
	Size               int
}

// Detect runs the full finder + alignment search over a binarized bitmap,
// retrying the finder search with each variance factor in turn (2.0, 2.5,
// 3.0 by default; a larger factor is a tighter tolerance) until a pass
// turns up at least three candidates or every factor is exhausted.
func Detect(bm *bitmap.Bitmap) (Result, error) {
	var candidates []Pattern
	var err error
	for _, variance := range finderVarianceRetries {
		candidates, err = FindFinderCandidatesWithVariance(bm, variance)
		if err == nil {
			break
		}
	}
	if err != nil {
		return Result{}, err
	}
	triple, err := SelectTriple(candidates)
	if err != nil {
		return Result{}, err
	}

	moduleSize, err := EstimateModuleSize(bm, triple)
	if err != nil {
		return Result{}, err
	}
	size, err := EstimateSize(triple, moduleSize)
	if err != nil {
		return Result{}, err
	}

	estBRX := triple.TopRight.X - triple.TopLeft.X + triple.BottomLeft.X
	estBRY := triple.TopRight.Y - triple.TopLeft.Y + triple.BottomLeft.Y

	var bottomRight Pattern
	hasAlignment := false
	if size >= 25 { // version >= 2
		if p, ok := FindAlignmentPattern(bm, estBRX, estBRY, moduleSize); ok {
			bottomRight = p
			hasAlignment = true
		}
	}
	if !hasAlignment {
		bottomRight = Pattern{X: estBRX, Y: estBRY, ModuleSize: moduleSize, Count: 1}
	}

	return Result{
		Triple:       triple,
		BottomRight:  bottomRight,
		HasAlignment: hasAlignment,
		ModuleSize:   moduleSize,
		Size:         size,
	}, nil
}
