package peak

import "sort"

// Peak describes one detected maximum.
type Peak struct {
	Index      int
	Height     float64
	Prominence float64
}

// Find returns the peaks of y that pass the configured height, distance
// and prominence filters, in ascending index order.
func Find(y []float64, opts ...Option) []Peak {
	cfg := applyOptions(opts)

	candidates := localMaxima(y)
	if cfg.hasHeight {
		candidates = filterHeight(y, candidates, cfg.height)
	}
	if cfg.distance > 1 {
		candidates = filterDistance(y, candidates, cfg.distance)
	}

	peaks := make([]Peak, 0, len(candidates))
	for _, p := range candidates {
		prom := prominence(y, p)
		if prom < cfg.prominence {
			continue
		}
		peaks = append(peaks, Peak{Index: p, Height: y[p], Prominence: prom})
	}
	return peaks
}

// localMaxima returns indices of samples greater than both neighbours.
// A flat top counts once, at the middle of the plateau (rounded down).
func localMaxima(y []float64) []int {
	var out []int
	last := len(y) - 1

	for i := 1; i < last; i++ {
		if !(y[i-1] < y[i]) {
			continue
		}

		ahead := i + 1
		for ahead < last && y[ahead] == y[i] {
			ahead++
		}

		if y[ahead] < y[i] {
			out = append(out, (i+ahead-1)/2)
			i = ahead
		}
	}
	return out
}

func filterHeight(y []float64, idx []int, h float64) []int {
	out := idx[:0:0]
	for _, p := range idx {
		if y[p] >= h {
			out = append(out, p)
		}
	}
	return out
}

// filterDistance visits peaks from tallest to lowest and drops every
// remaining neighbour closer than distance samples. On equal heights the
// right-most peak wins.
func filterDistance(y []float64, idx []int, distance int) []int {
	n := len(idx)
	keep := make([]bool, n)
	for i := range keep {
		keep[i] = true
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return y[idx[order[a]]] < y[idx[order[b]]]
	})

	for o := n - 1; o >= 0; o-- {
		j := order[o]
		if !keep[j] {
			continue
		}
		for k := j - 1; k >= 0 && idx[j]-idx[k] < distance; k-- {
			keep[k] = false
		}
		for k := j + 1; k < n && idx[k]-idx[j] < distance; k++ {
			keep[k] = false
		}
	}

	out := make([]int, 0, n)
	for i, p := range idx {
		if keep[i] {
			out = append(out, p)
		}
	}
	return out
}

// prominence measures how far y[p] rises above the higher of the two
// lowest points reachable on either side before meeting a taller sample.
func prominence(y []float64, p int) float64 {
	top := y[p]

	leftMin := top
	for i := p; i >= 0 && y[i] <= top; i-- {
		if y[i] < leftMin {
			leftMin = y[i]
		}
	}

	rightMin := top
	for i := p; i < len(y) && y[i] <= top; i++ {
		if y[i] < rightMin {
			rightMin = y[i]
		}
	}

	base := leftMin
	if rightMin > base {
		base = rightMin
	}
	return top - base
}
