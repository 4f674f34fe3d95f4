package callee

import (
	"fmt"

	"result"
)

func check(v int) result.Result[int] { return result.Ok(v) }

func double(v int) int { return v * 2 }

func keep(any) {}

type box struct{}

func (box) Map(f func(int) int) int { return f(1) }

func discarded() {
	r := check(1)

	r.AndThen(check)             // want "Result must be handled"
	r.Map(double).AndThen(check) // want "Result must be handled"
	r.AndThen(check).Then(check)
	fmt.Println(r.Map(double))
	keep(r.AndThen)

	var b box
	b.Map(double) // want "Result must be handled"
}
