package affine_test

import (
	"fmt"

	"github.com/katalvlaran/unitgraph/affine"
)

// ExampleConversion_CombineSequential chains metre→kilometre with
// kilometre→mile into a single direct edge.
func ExampleConversion_CombineSequential() {
	mkm, _ := affine.NewFactor("m", "km", 0.001)
	kmmi, _ := affine.NewFactor("km", "mi", 0.621371)

	mmi, _ := mkm.CombineSequential(kmmi)
	fmt.Printf("%s→%s: %.6f\n", mmi.Src(), mmi.Dst(), mmi.ApplyValue(1000))
	// Output:
	// m→mi: 0.621371
}

// ExampleConversion_Invert derives Fahrenheit→Celsius from the registered
// Celsius→Fahrenheit edge.
func ExampleConversion_Invert() {
	cf, _ := affine.NewScaled("C", "F", 1.8, 32)

	fc := cf.Invert()
	fmt.Printf("%.0f\n", fc.ApplyValue(212))
	// Output:
	// 100
}
