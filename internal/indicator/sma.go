package indicator

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/newthinker/movingavg/internal/core"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// SMA is the simple moving average over a trailing window. The first
// window-1 outputs are NaN.
type SMA struct {
	window int
}

// NewSMA creates a simple moving average with the given window.
func NewSMA(window int) (*SMA, error) {
	if window < 2 {
		return nil, core.WrapError(core.ErrInvalidWindow, fmt.Errorf("got %d", window))
	}
	return &SMA{window: window}, nil
}

func (s *SMA) Name() string {
	return "sma_indicator"
}

func (s *SMA) Description() string {
	return "Simple moving average indicator."
}

func (s *SMA) Window() int {
	return s.window
}

// Run computes the rolling mean with gota.
func (s *SMA) Run(data series.Series) series.Series {
	if data.Err != nil {
		return data.Copy()
	}
	out := data.Rolling(s.window).Mean()
	out.Name = data.Name
	return out
}

func (s *SMA) RunFrame(data dataframe.DataFrame) dataframe.DataFrame {
	return mapFrame(data, s.Run)
}

// RunVec computes the same averages from prefix sums: with c the cumulative
// sum of data prefixed by 0, out[i] = (c[i+1] - c[i+1-w]) / w.
// NaN in data poisons every later window, unlike Run.
func (s *SMA) RunVec(data []float64) []float64 {
	n, w := len(data), s.window
	out := nans(n)
	if n < w {
		return out
	}

	cumsum := make([]float64, n+1)
	floats.CumSum(cumsum[1:], data)

	fw := float64(w)
	for i := w; i <= n; i++ {
		out[i-1] = (cumsum[i] - cumsum[i-w]) / fw
	}
	return out
}

// RunMat applies RunVec to every column. The NaN padding always matches
// the width of the given matrix.
func (s *SMA) RunMat(data mat.Matrix) *mat.Dense {
	return mapColumns(data, s.RunVec)
}
