package weibull_test

import (
	"fmt"
	"strings"

	"github.com/numgrove/rootfind/weibull"
)

// ExampleReadSeries
//
// Scenario:
//
//	Parse a small measurement file (header + whitespace columns, third
//	column is the observation) and summarize it as a Sample.
func ExampleReadSeries() {
	const data = `time station speed
00:00 A 1.0
01:00 A 2.0
02:00 A 3.0
`

	xs, err := weibull.ReadSeries(strings.NewReader(data))
	if err != nil {
		fmt.Println("read:", err)
		return
	}

	s, err := weibull.NewSample(xs)
	if err != nil {
		fmt.Println("sample:", err)
		return
	}

	fmt.Printf("n=%d mean=%.2f below=%.2f\n", s.Len(), s.Mean(), s.BelowMeanFrac())
	// Output:
	// n=3 mean=2.00 below=0.33
}
