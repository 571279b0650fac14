// Package saga runs a sequence of steps and, when a step fails, undoes the steps
// that already committed by running their compensations in reverse order.
package saga

import (
	"context"
	"fmt"
	"log/slog"

	"eventcomposer/internal/domain"
)

// Step is one unit of work. Compensate may be nil for steps with nothing to undo.
type Step struct {
	Name       string
	Do         func(ctx context.Context) error
	Compensate func(ctx context.Context) error
}

// Saga records committed steps as they run. It is not safe for concurrent use.
type Saga struct {
	name      string
	logger    *slog.Logger
	committed []Step
	failures  []*domain.CompensationError
}

// New returns an empty saga. Compensation failures are logged to logger.
func New(name string, logger *slog.Logger) *Saga {
	if logger == nil {
		logger = slog.Default()
	}
	return &Saga{name: name, logger: logger}
}

// PanicError reports a step whose Do panicked.
type PanicError struct {
	Step  string
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("step %s panicked: %v", e.Step, e.Value)
}

// Run executes step. On success the step is recorded as committed. On failure every
// committed step is compensated in reverse order and the step's own error is
// returned unchanged; compensation failures never replace it. A panicking step
// counts as failed and is returned as a *PanicError.
func (s *Saga) Run(ctx context.Context, step Step) error {
	if err := s.do(ctx, step.Name, step.Do); err != nil {
		s.unwind(ctx)
		return err
	}
	s.committed = append(s.committed, step)
	return nil
}

func (s *Saga) do(ctx context.Context, name string, fn func(ctx context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Step: name, Value: r}
		}
	}()
	return fn(ctx)
}

// Committed returns the names of the steps that committed, in execution order.
func (s *Saga) Committed() []string {
	names := make([]string, len(s.committed))
	for i, st := range s.committed {
		names[i] = st.Name
	}
	return names
}

// CompensationFailures returns the compensations that failed while unwinding.
func (s *Saga) CompensationFailures() []*domain.CompensationError {
	return s.failures
}

func (s *Saga) unwind(ctx context.Context) {
	for i := len(s.committed) - 1; i >= 0; i-- {
		st := s.committed[i]
		if st.Compensate == nil {
			continue
		}
		if err := s.do(ctx, st.Name, st.Compensate); err != nil {
			cerr := &domain.CompensationError{Step: st.Name, Err: err}
			s.failures = append(s.failures, cerr)
			s.logger.ErrorContext(ctx, "compensation failed", "saga", s.name, "step", st.Name, "err", err)
			continue
		}
		s.logger.InfoContext(ctx, "step compensated", "saga", s.name, "step", st.Name)
	}
	s.committed = nil
}
