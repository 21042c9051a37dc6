package domain

// Outcome is the result of a single lookup: either a value or a Failure,
// never both. The zero Outcome is neither and reports OK() == false with a
// nil Failure; clients always return one built by Success or Fail.
type Outcome[T any] struct {
	value   T
	failure *Failure
	ok      bool
}

// Success wraps a value.
func Success[T any](v T) Outcome[T] {
	return Outcome[T]{value: v, ok: true}
}

// Fail wraps a failure reason.
func Fail[T any](f *Failure) Outcome[T] {
	return Outcome[T]{failure: f}
}

// OK reports whether the outcome carries a value.
func (o Outcome[T]) OK() bool { return o.ok }

// Value returns the carried value and whether there was one.
func (o Outcome[T]) Value() (T, bool) { return o.value, o.ok }

// Failure returns the failure reason, or nil on success.
func (o Outcome[T]) Failure() *Failure { return o.failure }

// Unpack converts the outcome into the usual (value, error) pair.
func (o Outcome[T]) Unpack() (T, error) {
	if o.ok {
		return o.value, nil
	}
	if o.failure == nil {
		var zero T
		return zero, NewNetworkFailure(nil)
	}
	return o.value, o.failure
}
