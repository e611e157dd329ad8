package lorentz_test

import (
	"fmt"

	"github.com/katalvlaran/lorentz/lorentz"
)

// ExampleLogmap shows that Expmap undoes Logmap.
func ExampleLogmap() {
	k := 1.0
	a, _ := lorentz.Project([]float64{0, 0.3, -0.2}, k)
	b, _ := lorentz.Project([]float64{0, -0.1, 0.4}, k)

	u, _ := lorentz.Logmap(a, b, k)
	bh, _ := lorentz.Expmap(a, u, k)

	fmt.Printf("b  = [%.6f %.6f %.6f]\n", b[0], b[1], b[2])
	fmt.Printf("bh = [%.6f %.6f %.6f]\n", bh[0], bh[1], bh[2])
	// Output:
	// b  = [1.081665 -0.100000 0.400000]
	// bh = [1.081665 -0.100000 0.400000]
}

// ExampleGeodesicUnit walks one unit of arc length from the origin.
func ExampleGeodesicUnit() {
	k := 1.0
	origin, _ := lorentz.Origin(3, k)
	p, _ := lorentz.GeodesicUnit(1, origin, []float64{0, 3, 4}, k)
	d, _ := lorentz.Dist(origin, p, k)

	fmt.Printf("distance travelled: %.6f\n", d)
	// Output:
	// distance travelled: 1.000000
}
