package aco_test

import (
	"fmt"

	"github.com/katalvlaran/antpath/aco"
)

func ExampleEnumerateRoutes() {
	d, err := aco.NewDistances(aco.ExampleDistances())
	if err != nil {
		fmt.Println(err)
		return
	}
	all, err := aco.EnumerateRoutes(d, 0)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, rc := range all {
		fmt.Printf("%s %.1f\n", rc.Route, rc.Cost)
	}
	// Output:
	// [0 2 3 1 | 0] 4.5
	// [0 1 3 2 | 0] 5.5
	// [0 3 2 1 | 0] 6.0
	// [0 2 1 3 | 0] 6.5
	// [0 3 1 2 | 0] 6.5
	// [0 1 2 3 | 0] 7.0
}

func ExampleColony() {
	d, _ := aco.NewDistances(aco.ExampleDistances())
	col, err := aco.NewColony(d, aco.WithSeed(7), aco.WithWorkers(1))
	if err != nil {
		fmt.Println(err)
		return
	}
	tr, err := col.Run()
	if err != nil {
		fmt.Println(err)
		return
	}
	best, cost, _ := tr.Best()
	fmt.Println(best, cost, tr.Total())
	// Output:
	// [0 2 3 1 | 0] 4.5 2500
}
