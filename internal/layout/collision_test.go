package layout

import "testing"

func TestIntersects(t *testing.T) {
	base := Monitor{Name: "A", X: 0, Y: 0, Width: 100, Height: 100}

	tests := []struct {
		name     string
		other    Monitor
		expected bool
	}{
		{"Overlapping", Monitor{X: 50, Y: 50, Width: 100, Height: 100}, true},
		{"Contained", Monitor{X: 10, Y: 10, Width: 10, Height: 10}, true},
		{"Touching Right Edge", Monitor{X: 100, Y: 0, Width: 100, Height: 100}, false},
		{"Touching Bottom Edge", Monitor{X: 0, Y: 100, Width: 100, Height: 100}, false},
		{"Touching Corner", Monitor{X: 100, Y: 100, Width: 10, Height: 10}, false},
		{"Far Away", Monitor{X: 500, Y: 500, Width: 100, Height: 100}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Intersects(base, tt.other); got != tt.expected {
				t.Errorf("Intersects: expected %v, got %v", tt.expected, got)
			}
			if got := Intersects(tt.other, base); got != tt.expected {
				t.Errorf("Intersects (swapped): expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name          string
		moved         Monitor
		others        []Monitor
		expectedX     int
		expectedY     int
		expectSnapped bool
	}{
		{
			name:          "Pushed Left Of Neighbor",
			moved:         Monitor{X: 200, Y: 0, Width: 1920, Height: 1080},
			others:        []Monitor{{Name: "B", X: 2000, Y: 0, Width: 1920, Height: 1080}},
			expectedX:     80,
			expectedY:     0,
			expectSnapped: true,
		},
		{
			name:          "Pushed Right Of Neighbor",
			moved:         Monitor{X: 1900, Y: 500, Width: 1920, Height: 1080},
			others:        []Monitor{{Name: "B", X: 0, Y: 0, Width: 1920, Height: 1080}},
			expectedX:     1920,
			expectedY:     500,
			expectSnapped: true,
		},
		{
			name:          "Pushed Below Neighbor",
			moved:         Monitor{X: 0, Y: 900, Width: 1920, Height: 1080},
			others:        []Monitor{{Name: "B", X: 0, Y: 0, Width: 1920, Height: 1080}},
			expectedX:     0,
			expectedY:     1080,
			expectSnapped: true,
		},
		{
			name:          "Pushed Above Neighbor",
			moved:         Monitor{X: 100, Y: -1000, Width: 1920, Height: 1080},
			others:        []Monitor{{Name: "B", X: 0, Y: 0, Width: 1920, Height: 1080}},
			expectedX:     100,
			expectedY:     -1080,
			expectSnapped: true,
		},
		{
			name:          "No Overlap",
			moved:         Monitor{X: 0, Y: 0, Width: 1920, Height: 1080},
			others:        []Monitor{{Name: "B", X: 1920, Y: 0, Width: 1920, Height: 1080}},
			expectedX:     0,
			expectedY:     0,
			expectSnapped: false,
		},
		{
			name:          "No Others",
			moved:         Monitor{X: 42, Y: 7, Width: 1920, Height: 1080},
			expectedX:     42,
			expectedY:     7,
			expectSnapped: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, snapped := Resolve(tt.moved, tt.others)
			if x != tt.expectedX || y != tt.expectedY {
				t.Errorf("expected (%d,%d), got (%d,%d)", tt.expectedX, tt.expectedY, x, y)
			}
			if snapped != tt.expectSnapped {
				t.Errorf("snapped: expected %v, got %v", tt.expectSnapped, snapped)
			}
		})
	}
}

// TestResolve_OrderDependent pins down that corrections are applied one
// neighbor at a time in the given order.
func TestResolve_OrderDependent(t *testing.T) {
	moved := Monitor{X: 90, Y: 50, Width: 20, Height: 20}
	b := Monitor{Name: "B", X: 0, Y: 0, Width: 100, Height: 100}
	c := Monitor{Name: "C", X: 100, Y: 0, Width: 100, Height: 100}

	x, y, _ := Resolve(moved, []Monitor{b, c})
	if x != 100 || y != 100 {
		t.Errorf("order [B C]: expected (100,100), got (%d,%d)", x, y)
	}

	x, y, _ = Resolve(moved, []Monitor{c, b})
	if x != 100 || y != 50 {
		t.Errorf("order [C B]: expected (100,50), got (%d,%d)", x, y)
	}
}

// TestResolve_IncrementalDragNeverOverlaps drags A toward a stationary B in
// small steps and checks that every resolved step is overlap free.
func TestResolve_IncrementalDragNeverOverlaps(t *testing.T) {
	for _, by := range []int{0, 300, -500} {
		a := Monitor{Name: "A", X: 0, Y: 0, Width: 1920, Height: 1080}
		b := Monitor{Name: "B", X: 2000, Y: by, Width: 1920, Height: 1080}

		for step := 0; step < 40; step++ {
			a.X += 50
			a.X, a.Y, a.Snapping = Resolve(a, []Monitor{b})
			if Intersects(a, b) {
				t.Fatalf("B.Y=%d step %d: A %+v overlaps B %+v", by, step, a, b)
			}
		}
	}
}
