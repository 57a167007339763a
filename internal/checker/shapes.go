package checker

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"gonum.org/v1/gonum/mat"
)

// Shape is the (rows, cols) extent of a series or table. One-dimensional
// series have Cols == 0, so a series never matches a single-column table.
type Shape struct {
	Rows int
	Cols int
}

func SeriesShape(s series.Series) Shape {
	return Shape{Rows: s.Len()}
}

func FrameShape(df dataframe.DataFrame) Shape {
	r, c := df.Dims()
	return Shape{Rows: r, Cols: c}
}

func MatrixShape(m mat.Matrix) Shape {
	r, c := m.Dims()
	return Shape{Rows: r, Cols: c}
}

// SameShapes reports whether every shape equals the first one.
func SameShapes(shapes []Shape) bool {
	if len(shapes) == 0 {
		return true
	}
	return CheckAllWith(shapes[1:], IsEqual[Shape], shapes[0])
}

func SameSeriesShapes(items []series.Series) bool {
	return SameShapes(shapesOf(items, SeriesShape))
}

func SameFrameShapes(items []dataframe.DataFrame) bool {
	return SameShapes(shapesOf(items, FrameShape))
}

func SameMatrixShapes(items []mat.Matrix) bool {
	return SameShapes(shapesOf(items, MatrixShape))
}

func shapesOf[T any](items []T, shape func(T) Shape) []Shape {
	out := make([]Shape, len(items))
	for i, it := range items {
		out[i] = shape(it)
	}
	return out
}
