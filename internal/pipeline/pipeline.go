package pipeline

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Step is one stage of an ordered processing pipeline. A fatal step aborts
// the run on failure; a best-effort step has its error recorded and the run
// continues. Declaring the distinction up front keeps the door open for
// compensating actions without restructuring callers.
type Step struct {
	Name       string
	BestEffort bool
	Run        func(ctx context.Context) error
}

// Result records which steps completed and which best-effort steps failed.
type Result struct {
	Completed    []string
	SoftFailures map[string]error
}

// SoftFailed reports whether the named best-effort step failed.
func (r *Result) SoftFailed(name string) bool {
	_, failed := r.SoftFailures[name]
	return failed
}

// Run executes the steps in order. The error from a failing fatal step is
// returned wrapped with the step name; already-recorded soft failures are
// still available in the partial result.
func Run(ctx context.Context, logger *logrus.Logger, steps []Step) (*Result, error) {
	result := &Result{SoftFailures: make(map[string]error)}

	for _, step := range steps {
		err := step.Run(ctx)
		if err != nil {
			if !step.BestEffort {
				return result, fmt.Errorf("%s: %w", step.Name, err)
			}
			logger.WithError(err).Warnf("Pipeline.%v.BestEffortFailure", step.Name)
			result.SoftFailures[step.Name] = err
			continue
		}
		result.Completed = append(result.Completed, step.Name)
	}

	return result, nil
}
