package configured

import "result"

func check(v int) result.Result[int] { return result.Ok(v) }

func discarded() {
	r := check(1)

	r.Then(check) // want "Result must be handled"
	r.AndThen(check)
	r.Then(check) //nolint:mustuse
	r.Then(check) //mustuse:ignore // want "Result must be handled"
}
