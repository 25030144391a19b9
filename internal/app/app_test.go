package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStep struct {
	name string
	err  error
	runs *[]string
}

func (s *stubStep) Run(_ context.Context) error {
	*s.runs = append(*s.runs, s.name)
	return s.err
}

func (s *stubStep) Name() string { return s.name }

type stubCloser struct {
	name   string
	err    error
	closed *[]string
}

func (s *stubCloser) Close() error {
	*s.closed = append(*s.closed, s.name)
	return s.err
}

func (s *stubCloser) Name() string { return s.name }

func TestCreateApp(t *testing.T) {
	t.Parallel()

	var runs []string

	t.Run("invalid config", func(t *testing.T) {
		t.Parallel()
		application, err := CreateApp(&Config{})
		require.Error(t, err)
		require.Nil(t, application)
	})

	t.Run("missing steps", func(t *testing.T) {
		t.Parallel()
		application, err := CreateApp(&Config{ServiceName: "test"})
		require.Error(t, err)
		require.Nil(t, application)
	})

	t.Run("valid config", func(t *testing.T) {
		t.Parallel()
		application, err := CreateApp(&Config{
			ServiceName: "test",
			Steps:       []Step{&stubStep{name: "one", runs: &runs}},
		})
		require.NoError(t, err)
		require.NotNil(t, application)
	})
}

func TestApp_Run(t *testing.T) {
	t.Parallel()

	t.Run("steps run in order", func(t *testing.T) {
		t.Parallel()
		req := require.New(t)

		var runs []string
		application, err := CreateApp(&Config{
			ServiceName: "test",
			Steps: []Step{
				&stubStep{name: "first", runs: &runs},
				&stubStep{name: "second", runs: &runs},
				&stubStep{name: "third", runs: &runs},
			},
		})
		req.NoError(err)

		req.NoError(application.Run(context.Background()))
		req.Equal([]string{"first", "second", "third"}, runs)
	})

	t.Run("first failure aborts the pipeline", func(t *testing.T) {
		t.Parallel()
		req := require.New(t)

		var runs []string
		stepErr := errors.New("boom")
		application, err := CreateApp(&Config{
			ServiceName: "test",
			Steps: []Step{
				&stubStep{name: "first", runs: &runs},
				&stubStep{name: "second", runs: &runs, err: stepErr},
				&stubStep{name: "third", runs: &runs},
			},
		})
		req.NoError(err)

		err = application.Run(context.Background())
		req.Error(err)
		req.True(errors.Is(err, stepErr))
		req.Equal([]string{"first", "second"}, runs)
	})

	t.Run("closers released LIFO on success and failure", func(t *testing.T) {
		t.Parallel()
		req := require.New(t)

		var runs, closed []string
		application, err := CreateApp(&Config{
			ServiceName: "test",
			Steps: []Step{
				&stubStep{name: "step", runs: &runs, err: errors.New("boom")},
			},
			Closers: []Closer{
				&stubCloser{name: "first", closed: &closed},
				&stubCloser{name: "second", closed: &closed},
			},
		})
		req.NoError(err)

		req.Error(application.Run(context.Background()))
		req.Equal([]string{"second", "first"}, closed)
	})

	t.Run("closer failure surfaces alongside step error", func(t *testing.T) {
		t.Parallel()
		req := require.New(t)

		var runs, closed []string
		stepErr := errors.New("step failed")
		closeErr := errors.New("close failed")
		application, err := CreateApp(&Config{
			ServiceName: "test",
			Steps: []Step{
				&stubStep{name: "step", runs: &runs, err: stepErr},
			},
			Closers: []Closer{
				&stubCloser{name: "res", closed: &closed, err: closeErr},
			},
		})
		req.NoError(err)

		err = application.Run(context.Background())
		req.True(errors.Is(err, stepErr))
		req.True(errors.Is(err, closeErr))
	})

	t.Run("run twice errors", func(t *testing.T) {
		t.Parallel()
		req := require.New(t)

		var runs []string
		application, err := CreateApp(&Config{
			ServiceName: "test",
			Steps:       []Step{&stubStep{name: "step", runs: &runs}},
		})
		req.NoError(err)

		req.NoError(application.Run(context.Background()))
		req.Error(application.Run(context.Background()))
		req.Equal([]string{"step"}, runs)
	})

	t.Run("cancelled context stops before the next step", func(t *testing.T) {
		t.Parallel()

		var runs []string
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		application, err := CreateApp(&Config{
			ServiceName: "test",
			Steps:       []Step{&stubStep{name: "step", runs: &runs}},
		})
		require.NoError(t, err)

		err = application.Run(ctx)
		assert.True(t, errors.Is(err, context.Canceled))
		assert.Empty(t, runs)
	})
}
