package indicator

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/newthinker/movingavg/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// prices is a deterministic, non-monotonic test series.
func prices(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 100 + 10*math.Sin(float64(i)/3) + float64(i%7)*0.37
	}
	return out
}

func assertFloatsEqual(t *testing.T, want, got []float64, tolerance float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		if math.IsNaN(want[i]) {
			assert.True(t, math.IsNaN(got[i]), "index %d: want NaN, got %v", i, got[i])
			continue
		}
		assert.InDelta(t, want[i], got[i], tolerance, "index %d", i)
	}
}

func TestNewSMA_InvalidWindow(t *testing.T) {
	for _, w := range []int{-3, 0, 1} {
		_, err := NewSMA(w)
		assert.True(t, errors.Is(err, core.ErrInvalidWindow), "window %d: got %v", w, err)
	}

	sma, err := NewSMA(2)
	require.NoError(t, err)
	assert.Equal(t, 2, sma.Window())
	assert.Equal(t, "sma_indicator", sma.Name())
	assert.NotEmpty(t, sma.Description())
}

func TestSMA_Run(t *testing.T) {
	sma, err := NewSMA(3)
	require.NoError(t, err)

	in := series.New([]float64{1, 2, 3, 4, 5}, series.Float, "close")
	out := sma.Run(in)

	assert.Equal(t, "close", out.Name)
	assertFloatsEqual(t, []float64{math.NaN(), math.NaN(), 2, 3, 4}, out.Float(), 1e-12)

	// Input untouched
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, in.Float())
}

func TestSMA_RunVec(t *testing.T) {
	sma, err := NewSMA(3)
	require.NoError(t, err)

	data := []float64{1, 2, 3, 4, 5}
	out := sma.RunVec(data)

	assertFloatsEqual(t, []float64{math.NaN(), math.NaN(), 2, 3, 4}, out, 1e-12)
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, data)
}

func TestSMA_WindowMeans(t *testing.T) {
	const w = 7
	sma, err := NewSMA(w)
	require.NoError(t, err)

	data := prices(60)
	out := sma.Run(series.Floats(data)).Float()
	require.Len(t, out, len(data))

	for i := range data {
		if i < w-1 {
			assert.True(t, math.IsNaN(out[i]), "index %d should be NaN", i)
			continue
		}
		want := floats.Sum(data[i-w+1:i+1]) / w
		assert.InDelta(t, want, out[i], 1e-9, "index %d", i)
	}
}

func TestSMA_RunAndRunVecAgree(t *testing.T) {
	for _, w := range []int{2, 5, 20} {
		sma, err := NewSMA(w)
		require.NoError(t, err)

		data := prices(250)
		assertFloatsEqual(t, sma.Run(series.Floats(data)).Float(), sma.RunVec(data), 1e-9)
	}
}

func TestSMA_ShortInput(t *testing.T) {
	sma, err := NewSMA(5)
	require.NoError(t, err)

	data := []float64{10, 11}

	vec := sma.RunVec(data)
	require.Len(t, vec, 2)
	assert.Equal(t, len(data), countNaN(vec))

	s := sma.Run(series.Floats(data)).Float()
	require.Len(t, s, 2)
	assert.Equal(t, len(data), countNaN(s))

	assert.Empty(t, sma.RunVec(nil))
}

func TestSMA_RunMat(t *testing.T) {
	sma, err := NewSMA(2)
	require.NoError(t, err)

	m := mat.NewDense(4, 2, []float64{
		1, 10,
		3, 20,
		5, 30,
		7, 40,
	})
	out := sma.RunMat(m)

	r, c := out.Dims()
	require.Equal(t, 4, r)
	require.Equal(t, 2, c)

	assertFloatsEqual(t, []float64{math.NaN(), 2, 4, 6}, mat.Col(nil, 0, out), 1e-12)
	assertFloatsEqual(t, []float64{math.NaN(), 15, 25, 35}, mat.Col(nil, 1, out), 1e-12)

	// Padding follows the width of each call, not of a previous one
	wide := sma.RunMat(mat.NewDense(1, 3, []float64{1, 2, 3}))
	r, c = wide.Dims()
	assert.Equal(t, 1, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 3, countNaN(wide.RawRowView(0)))

	assert.Equal(t, 1.0, m.At(0, 0), "input must not be modified")
}

func TestSMA_RunFrame(t *testing.T) {
	sma, err := NewSMA(3)
	require.NoError(t, err)

	df := dataframe.New(
		series.New([]float64{1, 2, 3, 4, 5}, series.Float, "a"),
		series.New([]float64{5, 4, 3, 2, 1}, series.Float, "b"),
	)
	out := sma.RunFrame(df)
	require.NoError(t, out.Err)

	assert.Equal(t, []string{"a", "b"}, out.Names())
	assertFloatsEqual(t, []float64{math.NaN(), math.NaN(), 2, 3, 4}, out.Col("a").Float(), 1e-12)
	assertFloatsEqual(t, []float64{math.NaN(), math.NaN(), 4, 3, 2}, out.Col("b").Float(), 1e-12)

	// Vectorized path over the same table agrees column by column
	m := mat.NewDense(5, 2, []float64{1, 5, 2, 4, 3, 3, 4, 2, 5, 1})
	vec := sma.RunMat(m)
	assertFloatsEqual(t, out.Col("a").Float(), mat.Col(nil, 0, vec), 1e-9)
	assertFloatsEqual(t, out.Col("b").Float(), mat.Col(nil, 1, vec), 1e-9)
}

func TestSMA_ErrInputsAreCopied(t *testing.T) {
	sma, err := NewSMA(2)
	require.NoError(t, err)

	in := series.New([]float64{1, 2, 3}, series.Float, "bad")
	in.Err = errors.New("upstream failure")

	out := sma.Run(in)
	assert.Equal(t, in.Err, out.Err)
	out.Set(0, series.Floats([]float64{99}))
	assert.Equal(t, []float64{1, 2, 3}, in.Float())

	df := dataframe.New(series.New([]float64{1, 2, 3}, series.Float, "a"))
	df.Err = errors.New("upstream failure")
	fr := sma.RunFrame(df)
	assert.Equal(t, df.Err, fr.Err)
}
