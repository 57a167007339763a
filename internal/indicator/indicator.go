// Package indicator implements moving-average indicators over gota series
// and tables, with an optional vectorized path over plain slices and gonum
// matrices.
package indicator

import (
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"gonum.org/v1/gonum/mat"
)

// Indicator transforms a series into a new series of the same length.
// Inputs are never modified. An input carrying Err comes back as a copy
// with the same Err.
type Indicator interface {
	Name() string
	Description() string
	Run(data series.Series) series.Series
	// RunFrame applies Run to every column independently.
	RunFrame(data dataframe.DataFrame) dataframe.DataFrame
}

// Vectorized is implemented by indicators with a faster path over raw
// values. Results agree with Run within floating-point tolerance.
type Vectorized interface {
	RunVec(data []float64) []float64
	// RunMat treats rows as observations and columns as independent series.
	RunMat(data mat.Matrix) *mat.Dense
}

// RunVec uses the indicator's vectorized path when it has one and Run
// otherwise.
func RunVec(ind Indicator, data []float64) []float64 {
	if v, ok := ind.(Vectorized); ok {
		return v.RunVec(data)
	}
	return ind.Run(series.Floats(data)).Float()
}

// RunMat is RunVec for matrices.
func RunMat(ind Indicator, data mat.Matrix) *mat.Dense {
	if v, ok := ind.(Vectorized); ok {
		return v.RunMat(data)
	}
	return mapColumns(data, func(col []float64) []float64 {
		return ind.Run(series.Floats(col)).Float()
	})
}

func nans(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}

func countNaN(values []float64) int {
	n := 0
	for _, v := range values {
		if math.IsNaN(v) {
			n++
		}
	}
	return n
}

// mapColumns builds a new matrix by applying f to each column of m.
// f must return a slice of the column's length.
func mapColumns(m mat.Matrix, f func(col []float64) []float64) *mat.Dense {
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return &mat.Dense{}
	}

	out := mat.NewDense(r, c, nil)
	col := make([]float64, r)
	for j := 0; j < c; j++ {
		mat.Col(col, j, m)
		out.SetCol(j, f(col))
	}
	return out
}

// mapFrame builds a new DataFrame by applying f to each column of df.
// Frames with Err or without columns are returned as copies.
func mapFrame(df dataframe.DataFrame, f func(series.Series) series.Series) dataframe.DataFrame {
	if df.Err != nil || df.Ncol() == 0 {
		return df.Copy()
	}

	cols := make([]series.Series, 0, df.Ncol())
	for _, name := range df.Names() {
		cols = append(cols, f(df.Col(name)))
	}
	return dataframe.New(cols...)
}
