package basic

import (
	"errors"
	"fmt"

	"result"
)

func parse(s string) result.Result[int] {
	if s == "" {
		return result.Err[int](errors.New("empty input"))
	}
	return result.Ok(len(s))
}

func double(v int) int { return v * 2 }

func check(v int) result.Result[int] { return result.Ok(v) }

func wrap(err error) error { return fmt.Errorf("wrap: %w", err) }

func fallback(error) result.Result[int] { return result.Ok(0) }

func keep(any) {}

type box struct{}

func (box) Map(f func(int) int) int { return f(1) }

func discarded() {
	r := parse("a")

	r.AndThen(check)             // want "Result must be handled with match, unwrapOr, or _unsafeUnwrap"
	r.MapErr(wrap)               // want "Result must be handled"
	(r.Map(double))              // want "Result must be handled"
	r.Map(double).AndThen(check) // want "Result must be handled"
	defer r.OrElse(fallback)     // want "Result must be handled"
	go r.AndThen(check)          // want "Result must be handled"

	// The name based detection cannot tell these from real discards.
	fmt.Println(r.Map(double)) // want "Result must be handled"
	keep(r.AndThen)            // want "Result must be handled"
	var b box
	b.Map(double) // want "Result must be handled"

	parse("b")
	r.Then(check)
}

func used() result.Result[int] {
	r := parse("a")

	v := r.UnwrapOr(0)
	_ = r.AndThen(check)
	var mapped = r.Map(double)
	if r.MapErr(wrap).IsOk() {
		v++
	}
	total := v + r.Match(double, func(error) int { return 0 })
	total = consume(r.AndThen(check), mapped, total)
	results := []result.Result[int]{r.Map(double)}
	for _, item := range []result.Result[int]{r.OrElse(fallback)} {
		results = append(results, item)
	}
	ch := make(chan result.Result[int], 1)
	ch <- r.MapErr(wrap)
	_ = consume(<-ch, results[0], total)

	return r.OrElse(fallback)
}

func consume(_, _ result.Result[int], v int) int { return v }

func suppressed() {
	r := parse("a")

	r.AndThen(check) //mustuse:ignore checked by the caller
	//mustuse:ignore
	r.Map(double)
	r.MapErr(wrap) //mustuse:ignored // want "Result must be handled"
	r.OrElse(func(error) result.Result[int] {
		return result.Ok(1)
	}) //mustuse:ignore
	r.Map(double) // want "Result must be handled"
}

//mustuse:ignore
func suppressedFunc() {
	r := parse("a")
	r.AndThen(check)
	r.Map(double)
}
