package numfmt_test

import (
	"fmt"

	"github.com/assetval/asset/numfmt"
)

func ExampleFormat() {
	fmt.Println(numfmt.Format(1500000, numfmt.Compact()))
	fmt.Println(numfmt.Format(1234567.891))
	fmt.Println(numfmt.Format(0.00001, numfmt.AdaptiveDecimals()))

	// Output:
	// 1.5M
	// 1,234,567.89
	// 0.00001
}

func ExampleRoundToFirstNonZeroDecimal() {
	fmt.Println(numfmt.RoundToFirstNonZeroDecimal(0.0005678))
	fmt.Println(numfmt.RoundToFirstNonZeroDecimal(123.456))

	// Output:
	// 0.0006
	// 123.46
}
