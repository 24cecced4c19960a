package capture

import "gocv.io/x/gocv"

// Mirror returns a horizontally flipped copy of frame, so a front-facing
// camera behaves like a mirror. The caller owns the returned Mat.
func Mirror(frame *gocv.Mat) gocv.Mat {
	mirrored := gocv.NewMat()
	gocv.Flip(*frame, &mirrored, 1)
	return mirrored
}
