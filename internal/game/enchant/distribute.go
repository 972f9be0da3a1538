package enchant

import (
	"fmt"
	"math"
	"slices"

	"github.com/udisondev/itemforge/internal/game/dice"
)

// Distribute splits total points into n slots, each holding at least minimum.
//
// The budget above the minimums is cut at n-1 uniform random points; slot i
// takes the (rounded) length of the i-th segment. Rounding drift is settled on
// slot 0. If total >= n, zero slots are topped up with one point taken from the
// first slot holding more than one. The result always sums to total.
//
// n <= 0 yields nil. minimum*n > total yields ErrInsufficientBudget.
func Distribute(src dice.Source, total, n, minimum int) ([]int, error) {
	if n <= 0 {
		return nil, nil
	}
	minimum = max(minimum, 0)
	if minimum*n > total {
		return nil, fmt.Errorf("%d points for %d slots of %d: %w", total, n, minimum, ErrInsufficientBudget)
	}

	remaining := total - minimum*n

	cuts := make([]float64, n+1)
	for i := 1; i < n; i++ {
		cuts[i] = src.Float64()
	}
	cuts[n] = 1
	slices.Sort(cuts[1:n])

	out := make([]int, n)
	sum := 0
	for i := range n {
		share := float64(remaining) * (cuts[i+1] - cuts[i])
		out[i] = minimum + int(math.Round(share))
		sum += out[i]
	}

	out[0] += total - sum
	if out[0] < minimum {
		// Отрицательный дрейф больше слота 0: добираем с остальных.
		deficit := minimum - out[0]
		out[0] = minimum
		for i := 1; i < n && deficit > 0; i++ {
			take := min(out[i]-minimum, deficit)
			out[i] -= take
			deficit -= take
		}
	}

	if total >= n {
		for i := range out {
			if out[i] != 0 {
				continue
			}
			for j := range out {
				if out[j] > 1 {
					out[j]--
					out[i]++
					break
				}
			}
		}
	}

	return out, nil
}
