package baseline_test

import (
	"fmt"

	"github.com/cwbudde/algo-xrd/dsp/baseline"
)

func ExampleNew() {
	est, err := baseline.New(baseline.MethodRollingBall, baseline.WithWindow(3))
	if err != nil {
		fmt.Println(err)
		return
	}

	b, err := est.Estimate(nil, []float64{5, 3, 8, 1, 9, 7, 6})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(est.Method(), b)
	// Output:
	// rolling_ball [3 3 1 1 1 6 6]
}

func ExampleAnchor() {
	est := baseline.Anchor{Anchors: []baseline.Point{{X: 0, Y: 5}, {X: 10, Y: 5}, {X: 20, Y: 15}}}

	b, err := est.Estimate([]float64{0, 5, 10, 15, 20}, make([]float64, 5))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(b)
	// Output:
	// [5 5 5 10 15]
}
