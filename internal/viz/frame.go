package viz

// Frame maps force-displacement data coordinates onto canvas sub-pixels,
// with 10% padding around the data bounds. Y grows downward on the canvas,
// so force is flipped.
type Frame struct {
	dMin, dRange float64
	fMin, fRange float64
	w, h         int
}

// NewFrame builds a mapping for the given data bounds onto a canvas of
// w x h character cells.
func NewFrame(dMin, dMax, fMin, fMax float64, w, h int) Frame {
	dRange := dMax - dMin
	fRange := fMax - fMin
	if dRange == 0 {
		dRange = 1
	}
	if fRange == 0 {
		fRange = 1
	}
	dMin -= dRange * 0.1
	fMin -= fRange * 0.1
	return Frame{
		dMin: dMin, dRange: dRange * 1.2,
		fMin: fMin, fRange: fRange * 1.2,
		w: w * 2, h: h * 4,
	}
}

// Map converts a (displacement, force) pair to sub-pixel coordinates.
func (fr Frame) Map(d, f float64) (int, int) {
	x := int(float64(fr.w-1) * (d - fr.dMin) / fr.dRange)
	y := fr.h - 1 - int(float64(fr.h-1)*(f-fr.fMin)/fr.fRange)
	return x, y
}

// PlotSeries traces the sample path onto the canvas.
func PlotSeries(c *Canvas, fr Frame, disp, force []float64) {
	prevX, prevY := 0, 0
	for i := range disp {
		x, y := fr.Map(disp[i], force[i])
		if i > 0 {
			c.DrawLine(prevX, prevY, x, y)
		}
		prevX, prevY = x, y
	}
}

// PlotLoop traces a closed vertex sequence; dashed when dashed is true.
func PlotLoop(c *Canvas, fr Frame, disp, force []float64, dashed bool) {
	for i := 1; i < len(disp); i++ {
		x0, y0 := fr.Map(disp[i-1], force[i-1])
		x1, y1 := fr.Map(disp[i], force[i])
		if dashed {
			c.DrawDashedLine(x0, y0, x1, y1, 3, 2)
		} else {
			c.DrawLine(x0, y0, x1, y1)
		}
	}
}
