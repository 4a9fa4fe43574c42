//nolint:errcheck
package purefunctor_test

import (
	"fmt"
	"strings"

	pf "github.com/Pure-Company/purefunctor"
	"github.com/Pure-Company/purefunctor/ranges"
)

// ============================================================================
// Example 1: PREDICATE COMPOSITION - Validation Rules
// ============================================================================

// Order represents a domain model
type Order struct {
	ID    string
	Total float64
	Items int
}

// Example_predicateComposition builds validation rules from small predicates
func Example_predicateComposition() {
	hasItems := pf.UnaryPredicate[Order](func(o Order) bool { return o.Items > 0 })
	underLimit := pf.UnaryPredicate[Order](func(o Order) bool { return o.Total <= 1000 })
	isTest := pf.UnaryPredicate[Order](func(o Order) bool { return strings.HasPrefix(o.ID, "TEST-") })

	// Test orders skip the limit, everything else must satisfy both rules
	valid := hasItems.And(underLimit.Or(isTest))

	orders := []Order{
		{ID: "ORD-1", Total: 50, Items: 2},
		{ID: "ORD-2", Total: 5000, Items: 1},
		{ID: "TEST-3", Total: 5000, Items: 1},
		{ID: "ORD-4", Total: 10, Items: 0},
	}
	for _, o := range orders {
		fmt.Printf("%s valid=%v\n", o.ID, valid(o))
	}
	// Output:
	// ORD-1 valid=true
	// ORD-2 valid=false
	// TEST-3 valid=true
	// ORD-4 valid=false
}

// ============================================================================
// Example 2: ADAPTERS - Binding and Ignoring Arguments
// ============================================================================

// Example_adapters turns binary functors into unary ones and back
func Example_adapters() {
	discount := pf.BinaryFunction[float64, float64, float64](func(price, pct float64) float64 {
		return price * (1 - pct/100)
	})

	tenOff := discount.BindSecond(10)
	fmt.Printf("%.2f\n", tenOff(200))

	// A unary function used where a binary one is expected
	fixedFee := pf.IgnoreLeft[string](pf.UnaryFunction[float64, float64](func(price float64) float64 {
		return price + 5
	}))
	fmt.Printf("%.2f\n", fixedFee("ignored-customer-id", 100))
	// Output:
	// 180.00
	// 105.00
}

// ============================================================================
// Example 3: MONOID COMPOSITION - Procedures
// ============================================================================

// Example_monoidCompositionProcedures composes side effects in sequence
func Example_monoidCompositionProcedures() {
	var log []string
	step := func(name string) pf.Procedure {
		return func() { log = append(log, name) }
	}

	pipeline := step("validate").Compose(step("charge"), step("ship"))

	// Empty() is the identity: composing with it changes nothing
	pipeline = pipeline.Compose(pipeline.Empty())
	pipeline.Run()

	fmt.Println(strings.Join(log, " -> "))
	// Output: validate -> charge -> ship
}

// ============================================================================
// Example 4: GENERATORS OVER RANGES
// ============================================================================

// Example_generatorsOverRanges feeds a range through a functor pipeline
func Example_generatorsOverRanges() {
	r, err := ranges.IntegerRangeWithBoundsAndStep(1, ranges.BoundTypeClosed, 30, ranges.BoundTypeClosed, 1)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fizz := pf.UnaryPredicate[int32](func(n int32) bool { return n%3 == 0 })
	buzz := pf.UnaryPredicate[int32](func(n int32) bool { return n%5 == 0 })

	both := pf.FromRange[int32, int32](r).Filter(fizz.And(buzz))
	fmt.Println(both.ToSlice())

	firstFour := pf.FromRange[int32, int32](r).Filter(fizz.Xor(buzz)).Take(4)
	fmt.Println(firstFour.ToSlice())
	// Output:
	// [15 30]
	// [3 5 6 9]
}

// ============================================================================
// Example 5: STATEFUL PREDICATES - Paging
// ============================================================================

// Example_paging uses Offset and Limit to page through a sequence
func Example_paging() {
	letters := pf.FromRange[rune, int](ranges.CharacterRangeOf('a', 'z'))

	page := func(n, size uint64) string {
		return string(letters.Skip(n * size).Take(size).ToSlice())
	}

	fmt.Println(page(0, 5))
	fmt.Println(page(1, 5))
	fmt.Println(page(5, 5))
	// Output:
	// abcde
	// fghij
	// z
}

// ============================================================================
// Example 6: CONDITIONALS
// ============================================================================

// Example_conditionals picks a function per argument
func Example_conditionals() {
	label := pf.ConditionalFunction(
		pf.LessThan(0),
		pf.UnaryFunction[int, string](func(int) string { return "negative" }),
		pf.ConditionalFunction(
			pf.IsZero[int](),
			pf.UnaryFunction[int, string](func(int) string { return "zero" }),
			pf.UnaryFunction[int, string](func(int) string { return "positive" }),
		),
	)

	for _, n := range []int{-2, 0, 7} {
		fmt.Println(n, label(n))
	}
	// Output:
	// -2 negative
	// 0 zero
	// 7 positive
}
