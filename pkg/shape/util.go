package shape

import (
	"math"
	"sort"
)

var (
	negInf = math.Inf(-1)
	posInf = math.Inf(1)
)

func sortIntersections(xs []Intersection) {
	sort.Slice(xs, func(i, j int) bool { return xs[i].T < xs[j].T })
}
