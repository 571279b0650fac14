package saga

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestSaga_Run(t *testing.T) {
	ctx := context.Background()
	errBoom := errors.New("boom")
	errUndo := errors.New("undo failed")

	tests := []struct {
		name            string
		failAt          int // index of the failing step, -1 for none
		failCompensate  map[string]bool
		wantErr         error
		wantCompensated []string
		wantCommitted   []string
		wantFailures    int
	}{
		{
			name:          "all steps succeed",
			failAt:        -1,
			wantCommitted: []string{"a", "b", "c"},
		},
		{
			name:            "last step fails unwinds in reverse",
			failAt:          2,
			wantErr:         errBoom,
			wantCompensated: []string{"b", "a"},
			wantCommitted:   []string{},
		},
		{
			name:            "first step fails compensates nothing",
			failAt:          0,
			wantErr:         errBoom,
			wantCompensated: nil,
			wantCommitted:   []string{},
		},
		{
			name:            "compensation failure does not mask primary error",
			failAt:          2,
			failCompensate:  map[string]bool{"b": true},
			wantErr:         errBoom,
			wantCompensated: []string{"b", "a"},
			wantCommitted:   []string{},
			wantFailures:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New("test", testLogger)
			var compensated []string
			var runErr error
			for i, name := range []string{"a", "b", "c"} {
				name := name
				fail := i == tt.failAt
				runErr = s.Run(ctx, Step{
					Name: name,
					Do: func(context.Context) error {
						if fail {
							return errBoom
						}
						return nil
					},
					Compensate: func(context.Context) error {
						compensated = append(compensated, name)
						if tt.failCompensate[name] {
							return errUndo
						}
						return nil
					},
				})
				if runErr != nil {
					break
				}
			}
			if tt.wantErr != nil {
				require.ErrorIs(t, runErr, tt.wantErr)
			} else {
				require.NoError(t, runErr)
			}
			assert.Equal(t, tt.wantCompensated, compensated)
			assert.Equal(t, tt.wantCommitted, s.Committed())
			require.Len(t, s.CompensationFailures(), tt.wantFailures)
			for _, f := range s.CompensationFailures() {
				assert.ErrorIs(t, f, errUndo)
			}
		})
	}
}

func TestSaga_StepWithoutCompensation(t *testing.T) {
	ctx := context.Background()
	s := New("test", testLogger)
	require.NoError(t, s.Run(ctx, Step{Name: "upload", Do: func(context.Context) error { return nil }}))
	undone := false
	require.NoError(t, s.Run(ctx, Step{
		Name:       "write",
		Do:         func(context.Context) error { return nil },
		Compensate: func(context.Context) error { undone = true; return nil },
	}))
	err := s.Run(ctx, Step{Name: "fail", Do: func(context.Context) error { return errors.New("x") }})
	require.Error(t, err)
	assert.True(t, undone)
	assert.Empty(t, s.CompensationFailures())
}

func TestSaga_PanickingStepUnwinds(t *testing.T) {
	ctx := context.Background()
	s := New("test", testLogger)
	undone := false
	require.NoError(t, s.Run(ctx, Step{
		Name:       "reserve",
		Do:         func(context.Context) error { return nil },
		Compensate: func(context.Context) error { undone = true; return nil },
	}))

	err := s.Run(ctx, Step{Name: "persist", Do: func(context.Context) error { panic("driver bug") }})

	var perr *PanicError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "persist", perr.Step)
	assert.Contains(t, err.Error(), "driver bug")
	assert.True(t, undone)
	assert.Empty(t, s.Committed())
	assert.Empty(t, s.CompensationFailures())
}

func TestSaga_PanickingCompensationIsRecorded(t *testing.T) {
	ctx := context.Background()
	s := New("test", testLogger)
	firstUndone := false
	require.NoError(t, s.Run(ctx, Step{
		Name:       "a",
		Do:         func(context.Context) error { return nil },
		Compensate: func(context.Context) error { firstUndone = true; return nil },
	}))
	require.NoError(t, s.Run(ctx, Step{
		Name:       "b",
		Do:         func(context.Context) error { return nil },
		Compensate: func(context.Context) error { panic("undo bug") },
	}))

	errBoom := errors.New("boom")
	err := s.Run(ctx, Step{Name: "c", Do: func(context.Context) error { return errBoom }})

	require.ErrorIs(t, err, errBoom)
	assert.True(t, firstUndone)
	require.Len(t, s.CompensationFailures(), 1)
	failure := s.CompensationFailures()[0]
	assert.Equal(t, "b", failure.Step)
	var perr *PanicError
	assert.ErrorAs(t, failure, &perr)
}
