package state

// Kind identifies which variant a View holds.
type Kind int

const (
	// KindLoading is the zero Kind, so a zero View is Loading.
	KindLoading Kind = iota
	KindLoaded
	KindFailed
)

func (k Kind) String() string {
	switch k {
	case KindLoading:
		return "loading"
	case KindLoaded:
		return "loaded"
	case KindFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// View is the renderable condition of a screen: Loading, Loaded(value) or
// Failed(message). Views are values; transitions replace them.
type View[T any] struct {
	kind    Kind
	value   T
	message string
}

// Loading returns the Loading view.
func Loading[T any]() View[T] {
	return View[T]{kind: KindLoading}
}

// Loaded returns a Loaded view carrying value.
func Loaded[T any](value T) View[T] {
	return View[T]{kind: KindLoaded, value: value}
}

// Failed returns a Failed view carrying a user-facing message.
func Failed[T any](message string) View[T] {
	return View[T]{kind: KindFailed, message: message}
}

// Kind reports the variant.
func (v View[T]) Kind() Kind {
	return v.kind
}

// Value returns the loaded value; ok is false for other variants.
func (v View[T]) Value() (value T, ok bool) {
	if v.kind != KindLoaded {
		var zero T
		return zero, false
	}
	return v.value, true
}

// Message returns the failure message; ok is false for other variants.
func (v View[T]) Message() (message string, ok bool) {
	if v.kind != KindFailed {
		return "", false
	}
	return v.message, true
}

func (v View[T]) String() string {
	if v.kind == KindFailed {
		return "failed: " + v.message
	}
	return v.kind.String()
}
