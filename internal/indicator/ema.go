package indicator

import (
	"fmt"
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/newthinker/movingavg/internal/core"
	"gonum.org/v1/gonum/mat"
)

const emaDescription = `Exponential moving average indicator. Formula:
y[0] = x[0];
y[i] = alpha * x[i] + (1 - alpha) * y[i-1];
where 0 < alpha <= 1.

alpha can be derived from a window w:
span:     alpha = 2 / (w + 1)
com:      alpha = 1 / (w + 1)
halflife: alpha = 1 - exp(-ln(2) / w)
alpha:    alpha = 1 / w`

// EMA is the exponential moving average with a fixed smoothing constant.
// There is no undefined warm-up region: out[0] == data[0].
type EMA struct {
	alpha float64
	k     float64 // 1 - alpha
}

// NewEMA creates an exponential moving average with smoothing constant
// alpha in (0, 1].
func NewEMA(alpha float64) (*EMA, error) {
	if !(alpha > 0 && alpha <= 1) {
		return nil, core.WrapError(core.ErrInvalidAlpha, fmt.Errorf("got %v", alpha))
	}
	return &EMA{alpha: alpha, k: 1 - alpha}, nil
}

// NewEMAFromWindow derives alpha with ComputeAlpha and creates the EMA.
func NewEMAFromWindow(window int, wt WindowType) (*EMA, error) {
	alpha, err := ComputeAlpha(window, wt)
	if err != nil {
		return nil, err
	}
	return NewEMA(alpha)
}

func (e *EMA) Name() string {
	return "ema_indicator"
}

func (e *EMA) Description() string {
	return emaDescription
}

func (e *EMA) Alpha() float64 {
	return e.alpha
}

func (e *EMA) Run(data series.Series) series.Series {
	if data.Err != nil {
		return data.Copy()
	}
	return series.New(ewmMean(data.Float(), e.alpha, e.k), series.Float, data.Name)
}

func (e *EMA) RunFrame(data dataframe.DataFrame) dataframe.DataFrame {
	return mapFrame(data, e.Run)
}

// RunVec shares Run's recurrence. A closed-form vectorization costs more
// than the loop at the sizes this is used for.
// TODO: try a blocked prefix formulation for very long inputs.
func (e *EMA) RunVec(data []float64) []float64 {
	return ewmMean(data, e.alpha, e.k)
}

func (e *EMA) RunMat(data mat.Matrix) *mat.Dense {
	return mapColumns(data, e.RunVec)
}

// ewmMean is the unadjusted exponentially weighted mean. Leading NaN stay
// NaN until the first observation seeds the average. A NaN after that
// repeats the previous value, but the old average keeps decaying by k per
// step, so the next observation is weighted against (1-alpha)^(gap+1).
func ewmMean(data []float64, alpha, k float64) []float64 {
	out := make([]float64, len(data))
	y := math.NaN()
	oldWt := 1.0
	for i, x := range data {
		if math.IsNaN(y) {
			y = x
		} else {
			oldWt *= k
			if !math.IsNaN(x) {
				y = (oldWt*y + alpha*x) / (oldWt + alpha)
				oldWt = 1
			}
		}
		out[i] = y
	}
	return out
}
