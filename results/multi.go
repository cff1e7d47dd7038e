package results

import (
	"errors"
	"io"

	"sort_bench_go/benchmark"
)

// Fanout forwards every call to each of its sinks in order and stops at the
// first error. Algorithm boundaries only reach sinks that implement them.
type Fanout struct {
	sinks []benchmark.Sink
}

// Multi returns a Fanout over sinks.
func Multi(sinks ...benchmark.Sink) *Fanout {
	return &Fanout{sinks: sinks}
}

func (m *Fanout) WriteHeader() error {
	for _, s := range m.sinks {
		if err := s.WriteHeader(); err != nil {
			return err
		}
	}
	return nil
}

func (m *Fanout) WriteRow(rec benchmark.Record) error {
	for _, s := range m.sinks {
		if err := s.WriteRow(rec); err != nil {
			return err
		}
	}
	return nil
}

func (m *Fanout) BeginAlgorithm(name string) error {
	for _, s := range m.sinks {
		if as, ok := s.(benchmark.AlgorithmSink); ok {
			if err := as.BeginAlgorithm(name); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *Fanout) EndAlgorithm(name string) error {
	for _, s := range m.sinks {
		if as, ok := s.(benchmark.AlgorithmSink); ok {
			if err := as.EndAlgorithm(name); err != nil {
				return err
			}
		}
	}
	return nil
}

// Close closes every sink that is an io.Closer, even after a failure,
// and returns the joined errors.
func (m *Fanout) Close() error {
	var errs []error
	for _, s := range m.sinks {
		if c, ok := s.(io.Closer); ok {
			if err := c.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}
