package match_test

import (
	"fmt"

	"github.com/opencost/match/pkg/match"
)

func ExampleFrom() {
	var v any = 5

	err := match.From(v).
		Case(
			match.Stop(func(n int) { fmt.Println("int", n) }),
			match.Stop(func(s string) { fmt.Println("string", s) }),
		).
		Run()

	fmt.Println(err)
	// Output:
	// int 5
	// <nil>
}

func ExampleContinue() {
	counter := 0

	_ = match.From[any]("hi").
		Case(
			match.Continue(func(s string) { counter += 1 }),
			match.Stop(func(s string) { counter += 10 }),
		).
		Run()

	fmt.Println(counter)
	// Output: 11
}

func ExampleInCase() {
	var seen []int

	_ = match.Run[any](7,
		match.InCase(func(n int) bool {
			seen = append(seen, n)
			return n < 5
		}),
		match.Continue(func(n int) { seen = append(seen, n*10) }),
	)

	fmt.Println(seen)
	// Output: [7]
}

func ExampleBuilder() {
	describe, err := match.NewBuilder[any]().
		Add(
			match.Stop(func(n int) { fmt.Println("int:", n) }),
			match.Stop(func(s string) { fmt.Println("string:", s) }),
			match.Stop(func(v any) { fmt.Printf("other: %v\n", v) }),
		).
		Build()
	if err != nil {
		panic(err)
	}

	for _, v := range []any{1, "two", 3.0} {
		_ = describe.Run(v)
	}
	// Output:
	// int: 1
	// string: two
	// other: 3
}
