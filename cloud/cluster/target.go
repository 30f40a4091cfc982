package cluster

// Direction is the sign of a resize.
type Direction int

const (
	Down Direction = -1
	Up   Direction = 1
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return "invalid"
}

// A resize moves a group by a fifth of its current size.
const (
	stepNumerator   = 1
	stepDenominator = 5
)

// TargetCount is the requested count a group of 'current' instances should be moved to.
// Growth rounds the step up and shrinking rounds it down (toward minus infinity), so a
// group of 6 grows to 8 and shrinks to 4. An empty group grows to 1.
// Integer arithmetic keeps multiples of five exact, e.g. 15 grows to 18 and not 19.
func TargetCount(current int64, dir Direction) int64 {
	switch dir {
	case Up:
		if current == 0 {
			return 1
		}
		return current + ceilDiv(current*stepNumerator, stepDenominator)
	case Down:
		return current + floorDiv(-current*stepNumerator, stepDenominator)
	}
	return current
}

// ceilDiv rounds a/b toward plus infinity, b > 0.
func ceilDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && a > 0 {
		q++
	}
	return q
}

// floorDiv rounds a/b toward minus infinity, b > 0.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
