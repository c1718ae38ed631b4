package script

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/atomic"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Options struct {
	// Strict stops a script at the first failed operation.
	Strict bool
	// Parallel caps how many scripts run at once.
	Parallel int
}

type Result struct {
	Line   Line
	Output string
	Err    error
}

func (r Result) String() string {
	if r.Err != nil {
		return r.Line.String() + " -> error: " + r.Err.Error()
	}
	return r.Line.String() + " -> " + r.Output
}

type Report struct {
	Name    string
	Results []Result
	Final   string
	Err     error
}

type Stats struct {
	Scripts  *atomic.Int64
	Ops      *atomic.Int64
	Failures *atomic.Int64
}

func newStats() Stats {
	return Stats{
		Scripts:  atomic.NewInt64(0),
		Ops:      atomic.NewInt64(0),
		Failures: atomic.NewInt64(0),
	}
}

// Exec runs every line of s against list. In strict mode the first failed
// operation stops the script and is returned wrapped with its position.
func Exec(ctx context.Context, s *Script, list *List, strict bool) ([]Result, error) {
	results := make([]Result, 0, len(s.Lines))
	for _, line := range s.Lines {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		out, err := ops[line.Op].exec(list, line)
		results = append(results, Result{Line: line, Output: out, Err: err})

		if err != nil && strict {
			return results, errors.Wrapf(err, "%s:%d", s.Name, line.No)
		}
	}

	return results, nil
}

type Runner struct {
	log   *zap.Logger
	opts  Options
	stats Stats
}

func NewRunner(log *zap.Logger, opts Options) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Parallel <= 0 {
		opts.Parallel = 1
	}

	return &Runner{log: log, opts: opts, stats: newStats()}
}

func (r *Runner) Stats() Stats {
	return r.stats
}

// RunAll executes each script on its own list. Reports come back in the
// order of scripts. The returned error is the first strict mode failure,
// other scripts still run to completion.
func (r *Runner) RunAll(ctx context.Context, scripts []*Script) ([]Report, error) {
	reports := make([]Report, len(scripts))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.Parallel)

	for i, s := range scripts {
		g.Go(func() error {
			reports[i] = r.run(ctx, s)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return reports, err
	}

	for _, report := range reports {
		if report.Err != nil {
			return reports, report.Err
		}
	}

	return reports, nil
}

func (r *Runner) run(ctx context.Context, s *Script) Report {
	log := r.log.With(zap.String("script", s.Name))
	log.Debug("script started", zap.Int("lines", len(s.Lines)))

	list := &List{}
	results, err := Exec(ctx, s, list, r.opts.Strict)

	r.stats.Scripts.Inc()
	r.stats.Ops.Add(int64(len(results)))
	for _, res := range results {
		if res.Err != nil {
			r.stats.Failures.Inc()
			log.Warn("operation failed", zap.Int("line", res.Line.No), zap.String("op", res.Line.Op), zap.Error(res.Err))
		}
	}

	if err != nil {
		log.Error("script aborted", zap.Error(err))
	} else {
		log.Debug("script finished", zap.Int("len", list.Len()))
	}

	report := Report{Name: s.Name, Results: results, Final: list.String(), Err: err}
	list.Clear()

	return report
}
