package viewstate

import "fmt"

type kind int

const (
	kindNone kind = iota
	kindLoading
	kindFinished
	kindError
)

// State tracks the lifecycle of one asynchronous value: not started,
// in flight, finished with a value, or failed with an error. A State is
// replaced on every transition, never mutated, and only the constructors
// below can produce one, so a value and an error can never coexist.
type State[T any] struct {
	kind  kind
	value T
	err   error
}

func None[T any]() State[T] {
	return State[T]{kind: kindNone}
}

func Loading[T any]() State[T] {
	return State[T]{kind: kindLoading}
}

func Finished[T any](value T) State[T] {
	return State[T]{kind: kindFinished, value: value}
}

func Errored[T any](err error) State[T] {
	return State[T]{kind: kindError, err: err}
}

// Cases is the handler set for Match. A nil handler makes that case a
// no-op, which is how views ignore states they have nothing to render.
type Cases[T any] struct {
	None     func()
	Loading  func()
	Finished func(T)
	Error    func(error)
}

// Match dispatches on the active case. It is the only way to consume
// the payload, so a caller can never observe both a value and an error.
func (s State[T]) Match(c Cases[T]) {
	switch s.kind {
	case kindLoading:
		if c.Loading != nil {
			c.Loading()
		}
	case kindFinished:
		if c.Finished != nil {
			c.Finished(s.value)
		}
	case kindError:
		if c.Error != nil {
			c.Error(s.err)
		}
	default:
		if c.None != nil {
			c.None()
		}
	}
}

func (s State[T]) IsNone() bool    { return s.kind == kindNone }
func (s State[T]) IsLoading() bool { return s.kind == kindLoading }

// Value returns the finished payload, if any.
func (s State[T]) Value() (T, bool) {
	return s.value, s.kind == kindFinished
}

// Err returns the failure, if any.
func (s State[T]) Err() (error, bool) {
	return s.err, s.kind == kindError
}

func (s State[T]) String() string {
	switch s.kind {
	case kindLoading:
		return "loading"
	case kindFinished:
		return fmt.Sprintf("finished(%v)", s.value)
	case kindError:
		return fmt.Sprintf("error(%v)", s.err)
	default:
		return "none"
	}
}
