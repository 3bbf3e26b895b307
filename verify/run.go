package verify

import (
	"context"
	"runtime"

	"github.com/moby/patternmatcher"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/wippyai/winabi/errors"
)

// RunOptions selects and schedules cases for Run.
type RunOptions struct {
	// Include and Exclude are glob patterns over case names. An empty
	// Include selects every case; Exclude is applied after it.
	Include []string
	Exclude []string

	// Structs and Funcs default to the built-in table when nil.
	Structs []StructCase
	Funcs   []FuncCase

	// Parallel bounds concurrent evaluations; zero means GOMAXPROCS.
	Parallel int
}

// Report holds one result per selected case, struct cases first, each group
// in table order.
type Report struct {
	Results []Result
}

// Counts tallies passed, failed and skipped results.
func (r Report) Counts() (passed, failed, skipped int) {
	for _, res := range r.Results {
		switch {
		case res.Skipped:
			skipped++
		case res.Failed():
			failed++
		default:
			passed++
		}
	}
	return passed, failed, skipped
}

// OK reports whether no result failed.
func (r Report) OK() bool {
	_, failed, _ := r.Counts()
	return failed == 0
}

// Matcher builds a case-name filter from include and exclude globs.
func Matcher(include, exclude []string) (func(name string) (bool, error), error) {
	patterns := make([]string, 0, len(include)+len(exclude)+1)
	if len(include) == 0 {
		patterns = append(patterns, "*")
	}
	patterns = append(patterns, include...)
	for _, ex := range exclude {
		patterns = append(patterns, "!"+ex)
	}
	pm, err := patternmatcher.New(patterns)
	if err != nil {
		return nil, errors.ParseFailed("case filter", err)
	}
	return pm.MatchesOrParentMatches, nil
}

// Run evaluates the selected cases concurrently with v. Evaluation failures
// are reported in the results; the returned error is limited to invalid
// options and context cancellation.
func Run(ctx context.Context, v *Verifier, opts RunOptions) (Report, error) {
	structs, funcs := opts.Structs, opts.Funcs
	if structs == nil {
		structs = Cases()
	}
	if funcs == nil {
		funcs = FuncCases()
	}

	match, err := Matcher(opts.Include, opts.Exclude)
	if err != nil {
		return Report{}, err
	}

	var jobs []func() Result
	for _, c := range structs {
		ok, err := match(c.Name)
		if err != nil {
			return Report{}, errors.ParseFailed("case filter", err)
		}
		if ok {
			jobs = append(jobs, func() Result { return v.EvaluateStruct(c) })
		}
	}
	for _, c := range funcs {
		ok, err := match(c.Name)
		if err != nil {
			return Report{}, errors.ParseFailed("case filter", err)
		}
		if ok {
			jobs = append(jobs, func() Result { return v.EvaluateFunc(c) })
		}
	}

	limit := opts.Parallel
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(jobs))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(limit)
	for i, job := range jobs {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = job()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Report{}, err
	}

	v.logger.Info("verification finished",
		zap.String("arch", v.arch.String()),
		zap.Int("cases", len(results)))
	return Report{Results: results}, nil
}
