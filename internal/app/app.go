package app

import (
	"fmt"
	"sort"

	"github.com/newthinker/movingavg/internal/config"
	"github.com/newthinker/movingavg/internal/core"
	"github.com/newthinker/movingavg/internal/indicator"
	"github.com/newthinker/movingavg/internal/metrics"
	"go.uber.org/zap"
)

// App holds the indicators built from one configuration, each wrapped with
// logging and (optionally) metrics.
type App struct {
	cfg        *config.Config
	logger     *zap.Logger
	metrics    *metrics.Registry
	indicators map[string]*indicator.Instrumented
}

// New validates cfg and constructs every configured indicator.
func New(cfg *config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg == nil {
		return nil, core.WrapError(core.ErrConfigMissing, fmt.Errorf("nil config"))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var reg *metrics.Registry
	if cfg.Metrics.Enabled {
		reg = metrics.NewRegistry(cfg.Metrics.Namespace)
	}

	a := &App{
		cfg:        cfg,
		logger:     logger,
		metrics:    reg,
		indicators: make(map[string]*indicator.Instrumented, len(cfg.Indicators)),
	}

	for name, icfg := range cfg.Indicators {
		ind, err := indicator.New(icfg)
		if err != nil {
			return nil, fmt.Errorf("indicator %s: %w", name, err)
		}
		a.indicators[name] = indicator.Instrument(ind, logger.With(zap.String("name", name)), reg)
		logger.Info("indicator configured",
			zap.String("name", name),
			zap.String("kind", icfg.Kind),
			zap.String("indicator", ind.Name()),
		)
	}

	return a, nil
}

// Indicator returns the configured indicator with the given name.
func (a *App) Indicator(name string) (indicator.Indicator, bool) {
	ind, ok := a.indicators[name]
	return ind, ok
}

// Names returns the configured indicator names in sorted order.
func (a *App) Names() []string {
	names := make([]string, 0, len(a.indicators))
	for name := range a.indicators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Metrics returns the metrics registry, or nil when metrics are disabled.
func (a *App) Metrics() *metrics.Registry {
	return a.metrics
}
