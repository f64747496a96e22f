package usecase

// UseCase maps one input to its outputs, delivered through emit rather
// than a return value. The callback shape is the seam where a real
// implementation would go async (an HTTP client, a job queue); the
// implementations in this repo call emit at most once, synchronously,
// on the caller's goroutine.
type UseCase[Input, Output any] interface {
	Transform(input Input, emit func(Output))
}

// Func adapts a plain function to the UseCase interface.
type Func[Input, Output any] func(input Input, emit func(Output))

func (f Func[Input, Output]) Transform(input Input, emit func(Output)) {
	f(input, emit)
}
