package indicator

import (
	"fmt"

	"github.com/newthinker/movingavg/internal/config"
	"github.com/newthinker/movingavg/internal/core"
)

// New creates an indicator from configuration. An "ema" with a non-zero
// Alpha uses it directly, otherwise the alpha is derived from Window and
// WindowType (span by default).
func New(cfg config.IndicatorConfig) (Indicator, error) {
	switch cfg.Kind {
	case "sma":
		return NewSMA(cfg.Window)
	case "ema":
		if cfg.Alpha != 0 {
			return NewEMA(cfg.Alpha)
		}
		wt := Span
		if cfg.WindowType != "" {
			var err error
			if wt, err = ParseWindowType(cfg.WindowType); err != nil {
				return nil, err
			}
		}
		return NewEMAFromWindow(cfg.Window, wt)
	default:
		return nil, core.WrapError(core.ErrUnknownIndicator, fmt.Errorf("kind %q", cfg.Kind))
	}
}
