// Package result is a minimal Result type for analyzer tests.
package result

type Result[T any] struct {
	value T
	err   error
}

func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

func (r Result[T]) IsOk() bool {
	return r.err == nil
}

func (r Result[T]) Map(f func(T) T) Result[T] {
	if r.err != nil {
		return r
	}
	return Ok(f(r.value))
}

func (r Result[T]) MapErr(f func(error) error) Result[T] {
	if r.err == nil {
		return r
	}
	return Err[T](f(r.err))
}

func (r Result[T]) AndThen(f func(T) Result[T]) Result[T] {
	if r.err != nil {
		return r
	}
	return f(r.value)
}

func (r Result[T]) Then(f func(T) Result[T]) Result[T] {
	return r.AndThen(f)
}

func (r Result[T]) OrElse(f func(error) Result[T]) Result[T] {
	if r.err == nil {
		return r
	}
	return f(r.err)
}

func (r Result[T]) Match(ok func(T) T, fail func(error) T) T {
	if r.err != nil {
		return fail(r.err)
	}
	return ok(r.value)
}

func (r Result[T]) UnwrapOr(v T) T {
	if r.err != nil {
		return v
	}
	return r.value
}
