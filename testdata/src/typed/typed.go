package typed

import (
	"fmt"

	"result"
)

func parse(s string) result.Result[int] { return result.Ok(len(s)) }

func check(v int) result.Result[int] { return result.Ok(v) }

func double(v int) int { return v * 2 }

func pair() (*result.Result[int], error) {
	r := parse("pair")
	return &r, nil
}

func keep(any) {}

type box struct{}

func (box) Map(f func(int) int) int { return f(1) }

func discarded() {
	r := parse("a")

	r.AndThen(check) // want "Result must be handled"
	r.Then(check)    // want "Result must be handled"
	parse("b")       // want "Result must be handled"
	pair()           // want "Result must be handled"

	r.UnwrapOr(0)
	fmt.Println(r.Map(double))
	keep(r.AndThen)
	var b box
	b.Map(double)
}
