package puzzle

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/render"
)

// Runner solves manifest entries against a Registry and logs each solve.
type Runner struct {
	reg *Registry
	log *zap.Logger
}

// NewRunner returns a Runner. A nil logger disables logging.
func NewRunner(reg *Registry, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{reg: reg, log: log}
}

// Run loads e's input and solves it. When e carries an expectation the
// answer is still returned alongside ErrMismatch if it differs.
func (r *Runner) Run(e Entry) (Answer, error) {
	log := r.log.With(zap.String("puzzle", e.Name), zap.String("kind", e.Kind))

	input, err := e.Load()
	if err != nil {
		log.Error("load input failed", zap.Error(err))
		return Answer{}, err
	}
	ans, err := r.solve(log, e.Kind, input, e.Params)
	if err != nil {
		return Answer{}, fmt.Errorf("puzzle %q: %w", e.Name, err)
	}

	if e.Expect != nil && *e.Expect != ans {
		err := fmt.Errorf("%w: %q got %v, want %v", ErrMismatch, e.Name, ans, *e.Expect)
		log.Warn("unexpected answer", zap.Error(err))
		return ans, err
	}
	return ans, nil
}

// Solve runs the solver for kind on raw input.
func (r *Runner) Solve(kind, input string, params map[string]any) (Answer, error) {
	return r.solve(r.log.With(zap.String("kind", kind)), kind, input, params)
}

func (r *Runner) solve(log *zap.Logger, kind, input string, params map[string]any) (Answer, error) {
	k, err := r.reg.Lookup(kind)
	if err != nil {
		log.Error("no solver", zap.Error(err))
		return Answer{}, err
	}

	log.Debug("solving", zap.Int("input_bytes", len(input)), zap.Any("params", params))
	began := time.Now()
	ans, err := k.Solve(input, params)
	elapsed := time.Since(began)
	if err != nil {
		log.Error("solve failed", zap.Duration("elapsed", elapsed), zap.Error(err))
		return Answer{}, err
	}
	log.Info("solved",
		zap.Duration("elapsed", elapsed),
		zap.String("part1", ans.Part1),
		zap.String("part2", ans.Part2),
	)
	return ans, nil
}

// Draw runs the drawer for kind on raw input.
func (r *Runner) Draw(kind, input string, params map[string]any) (*grid.Grid, render.Overlay, error) {
	k, err := r.reg.Lookup(kind)
	if err != nil {
		return nil, render.Overlay{}, err
	}
	if k.Draw == nil {
		return nil, render.Overlay{}, fmt.Errorf("%w: %q", ErrNoVisual, kind)
	}
	g, ov, err := k.Draw(input, params)
	if err != nil {
		r.log.Error("draw failed", zap.String("kind", kind), zap.Error(err))
		return nil, render.Overlay{}, err
	}
	return g, ov, nil
}
