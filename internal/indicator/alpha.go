package indicator

import (
	"fmt"
	"math"
	"strings"

	"github.com/newthinker/movingavg/internal/core"
)

// WindowType selects how a window length is converted into a smoothing
// constant.
type WindowType string

const (
	Span     WindowType = "span"     // alpha = 2 / (w + 1)
	COM      WindowType = "com"      // center of mass, alpha = 1 / (w + 1)
	HalfLife WindowType = "halflife" // alpha = 1 - exp(-ln 2 / w)
	Alpha    WindowType = "alpha"    // alpha = 1 / w
)

// ParseWindowType resolves a configured window type name. Only the
// canonical names are accepted, so "halftime" is rejected.
func ParseWindowType(s string) (WindowType, error) {
	wt := WindowType(strings.ToLower(strings.TrimSpace(s)))
	switch wt {
	case Span, COM, HalfLife, Alpha:
		return wt, nil
	}
	return "", unsupportedWindowType(s)
}

// ComputeAlpha returns the smoothing constant equivalent to window under wt.
func ComputeAlpha(window int, wt WindowType) (float64, error) {
	if window < 2 {
		return 0, core.WrapError(core.ErrInvalidWindow, fmt.Errorf("got %d", window))
	}

	w := float64(window)
	switch wt {
	case Span:
		return 2 / (w + 1), nil
	case COM:
		return 1 / (w + 1), nil
	case HalfLife:
		return 1 - math.Exp(-math.Ln2/w), nil
	case Alpha:
		return 1 / w, nil
	}
	return 0, unsupportedWindowType(string(wt))
}

func unsupportedWindowType(name string) error {
	return core.WrapError(core.ErrUnsupportedWindowType,
		fmt.Errorf("window type %q (want span, com, halflife or alpha)", name))
}
