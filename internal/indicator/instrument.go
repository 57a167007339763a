package indicator

import (
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/newthinker/movingavg/internal/metrics"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
)

// Instrumented wraps an Indicator with debug logging and Prometheus
// metrics. Outputs are those of the wrapped indicator.
type Instrumented struct {
	inner   Indicator
	log     *zap.Logger
	metrics *metrics.Registry
}

// Instrument wraps ind. A nil logger discards logs; a nil registry skips
// metrics.
func Instrument(ind Indicator, log *zap.Logger, m *metrics.Registry) *Instrumented {
	if log == nil {
		log = zap.NewNop()
	}
	return &Instrumented{
		inner:   ind,
		log:     log.With(zap.String("indicator", ind.Name())),
		metrics: m,
	}
}

// Unwrap returns the wrapped indicator.
func (i *Instrumented) Unwrap() Indicator {
	return i.inner
}

func (i *Instrumented) Name() string {
	return i.inner.Name()
}

func (i *Instrumented) Description() string {
	return i.inner.Description()
}

func (i *Instrumented) Run(data series.Series) series.Series {
	start := time.Now()
	out := i.inner.Run(data)
	i.observe(metrics.PathSeries, start, data.Len(), countNaN(out.Float()))
	return out
}

func (i *Instrumented) RunFrame(data dataframe.DataFrame) dataframe.DataFrame {
	start := time.Now()
	out := i.inner.RunFrame(data)

	undefined := 0
	if out.Err == nil {
		for _, name := range out.Names() {
			undefined += countNaN(out.Col(name).Float())
		}
	}
	i.observe(metrics.PathFrame, start, data.Nrow(), undefined)
	return out
}

func (i *Instrumented) RunVec(data []float64) []float64 {
	start := time.Now()
	out := RunVec(i.inner, data)
	i.observe(metrics.PathVec, start, len(data), countNaN(out))
	return out
}

func (i *Instrumented) RunMat(data mat.Matrix) *mat.Dense {
	start := time.Now()
	out := RunMat(i.inner, data)

	r, c := out.Dims()
	undefined := 0
	for j := 0; j < c; j++ {
		undefined += countNaN(mat.Col(nil, j, out))
	}
	i.observe(metrics.PathMat, start, r, undefined)
	return out
}

func (i *Instrumented) observe(path string, start time.Time, rows, undefined int) {
	elapsed := time.Since(start)
	if i.metrics != nil {
		i.metrics.RecordRun(i.inner.Name(), path, elapsed.Seconds())
		i.metrics.RecordUndefined(i.inner.Name(), undefined)
	}
	i.log.Debug("indicator run",
		zap.String("path", path),
		zap.Int("rows", rows),
		zap.Int("undefined", undefined),
		zap.Duration("elapsed", elapsed),
	)
}
