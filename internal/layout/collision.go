package layout

// Intersects reports whether two monitors overlap. Touching edges do not count.
func Intersects(a, b Monitor) bool {
	return a.X < b.Right() && a.Right() > b.X &&
		a.Y < b.Bottom() && a.Bottom() > b.Y
}

// Resolve nudges moved out of every neighbor it overlaps and returns its new
// position. For each intersecting neighbor only the axis with the smaller
// correction is applied. Neighbors are handled one after another in the given
// order and each test sees the already corrected position, so the outcome
// depends on that order; this is not a simultaneous separation solve.
//
// snapped is true when at least one neighbor intersected.
func Resolve(moved Monitor, others []Monitor) (x, y int, snapped bool) {
	for _, other := range others {
		if !Intersects(moved, other) {
			continue
		}

		dx, dy := 0, 0
		if moved.X < other.X {
			dx = other.X - moved.Right()
		} else if moved.Right() > other.X {
			dx = other.Right() - moved.X
		}

		if moved.Y < other.Y {
			dy = other.Y - moved.Bottom()
		} else if moved.Bottom() > other.Y {
			dy = other.Bottom() - moved.Y
		}

		if abs(dx) < abs(dy) {
			moved.X += dx
		} else {
			moved.Y += dy
		}
		snapped = true
	}
	return moved.X, moved.Y, snapped
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
