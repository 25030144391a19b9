package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/rs/zerolog/log"
)

//go:generate mockgen -destination=./app_mock.go -package=app -source=app.go

// Step is one phase of the pipeline. Steps run strictly in order; the first
// failure aborts the run.
type Step interface {
	// Run does the step's work. The context is cancelled when the OS asks
	// the application to stop.
	Run(ctx context.Context) error
	// Name is the name of the step. It is used for logging and identification purposes, only.
	Name() string
}

// Closer is a resource released after the pipeline finishes, successfully or
// not. Closers are released in reverse order of registration.
type Closer interface {
	Close() error
	Name() string
}

type App struct {
	serviceName string
	// steps run sequentially in the order given.
	steps []Step
	// closers are released LIFO once the pipeline is done.
	closers []Closer
	// osSignalChan is a channel that will be used to signal when the OS has sent a signal to the application.
	osSignalChan chan os.Signal
	// runCalled allows Run to be called once
	runCalled *atomic.Bool
}

type Config struct {
	ServiceName string
	Steps       []Step
	Closers     []Closer
}

func (c *Config) validate() error {
	var errs []error
	if c.ServiceName == "" {
		errs = append(errs, errors.New("service name is required"))
	}
	if len(c.Steps) == 0 {
		errs = append(errs, errors.New("at least one step is required"))
	}
	return errors.Join(errs...)
}

// CreateApp creates a new application with the provided pipeline steps.
func CreateApp(cfg *Config) (*App, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &App{
		serviceName:  cfg.ServiceName,
		steps:        cfg.Steps,
		closers:      cfg.Closers,
		runCalled:    &atomic.Bool{},
		osSignalChan: make(chan os.Signal, 1), // first signal we get cancels the run
	}, nil
}

// Run executes every step in order. An OS interrupt cancels the step
// context, which aborts the pipeline at the next blocking call.
func (a *App) Run(ctx context.Context) error {
	// This first call is defensive because Run is a public function. We do not want a consumer
	// to call this more than once.
	if !a.runCalled.CompareAndSwap(false, true) {
		return errors.New("run has already been called")
	}

	ctxRun, cancel := context.WithCancel(ctx)
	defer cancel()

	signal.Notify(a.osSignalChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(a.osSignalChan)

	go func() {
		select {
		case sig := <-a.osSignalChan:
			log.Info().Msg("OS Signal received: " + sig.String() + " shutdown beginning...")
			cancel()
		case <-ctxRun.Done():
		}
	}()

	var runErr error
	for _, step := range a.steps {
		if err := ctxRun.Err(); err != nil {
			runErr = err
			break
		}

		log.Info().Msg("Running step: " + step.Name())
		if err := step.Run(ctxRun); err != nil {
			runErr = fmt.Errorf("failure in Run() for step %s: %w", step.Name(), err)
			break
		}
	}

	if err := a.close(); err != nil {
		log.Error().Msg("Error closing application resources: " + err.Error())
		return errors.Join(runErr, err)
	}

	return runErr
}

// close releases every registered closer, newest first. All closers run even
// when one fails.
func (a *App) close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		closer := a.closers[i]
		log.Info().Msg("Closing: " + closer.Name())
		if err := closer.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failure in Close() for %s: %w", closer.Name(), err))
		}
	}
	return errors.Join(errs...)
}
