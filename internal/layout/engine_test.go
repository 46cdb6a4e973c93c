package layout

import (
	"testing"

	"github.com/genricoloni/hyprarrange/internal/domain"
	"go.uber.org/zap"
)

// quarterZoom keeps scaled arithmetic exact in tests
var quarterZoom = ZoomPolicy{Initial: 0.25, Min: 0.125, Max: 0.5, Step: 2}

func newTestEngine(t *testing.T, descriptors []domain.MonitorDescriptor, viewport domain.Size, zoom ZoomPolicy) *Engine {
	t.Helper()
	reg, err := Load(descriptors)
	if err != nil {
		t.Fatalf("failed to load registry: %v", err)
	}
	return NewEngine(zap.NewNop(), reg, viewport, zoom)
}

func position(t *testing.T, e *Engine, name string) (int, int) {
	t.Helper()
	m, ok := e.Registry().Get(name)
	if !ok {
		t.Fatalf("monitor %s not found", name)
	}
	return m.X, m.Y
}

// sideBySide is A and B separated by an 80px gap; the 980x270 viewport at
// scale 0.25 fits the bounding box exactly, so the initial centering is a no-op.
func sideBySide(t *testing.T) *Engine {
	return newTestEngine(t, []domain.MonitorDescriptor{
		{Name: "A", Width: 1920, Height: 1080, X: 0, Y: 0},
		{Name: "B", Width: 1920, Height: 1080, X: 2000, Y: 0},
	}, domain.Size{Width: 980, Height: 270}, quarterZoom)
}

func TestEngine_InitialCentering(t *testing.T) {
	e := newTestEngine(t, []domain.MonitorDescriptor{
		{Name: "A", Width: 1920, Height: 1080, X: 0, Y: 0},
		{Name: "B", Width: 1920, Height: 1080, X: 1920, Y: 0},
	}, domain.Size{Width: 1280, Height: 720}, quarterZoom)

	x, y := position(t, e, "A")
	if x != 640 || y != 900 {
		t.Errorf("expected A centered at (640,900), got (%d,%d)", x, y)
	}
	x, y = position(t, e, "B")
	if x != 2560 || y != 900 {
		t.Errorf("expected B centered at (2560,900), got (%d,%d)", x, y)
	}
}

func TestEngine_PointerDownHitTest(t *testing.T) {
	tests := []struct {
		name         string
		x, y         float64
		expectHit    bool
		expectedName string
	}{
		{"Inside A", 10, 10, true, "A"},
		{"Inside B", 600, 100, true, "B"},
		{"A Right Edge Inclusive", 480, 270, true, "A"},
		{"Gap Between Monitors", 490, 100, false, ""},
		{"Below Everything", 100, 300, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := sideBySide(t)

			if got := e.OnPointerDown(tt.x, tt.y); got != tt.expectHit {
				t.Fatalf("OnPointerDown: expected %v, got %v", tt.expectHit, got)
			}
			name, dragging := e.Dragging()
			if dragging != tt.expectHit || name != tt.expectedName {
				t.Errorf("Dragging: expected (%q,%v), got (%q,%v)", tt.expectedName, tt.expectHit, name, dragging)
			}
		})
	}
}

func TestEngine_FirstHitWins(t *testing.T) {
	e := newTestEngine(t, []domain.MonitorDescriptor{
		{Name: "A", Width: 1000, Height: 1000, X: 0, Y: 0},
		{Name: "B", Width: 1000, Height: 1000, X: 1000, Y: 0},
	}, domain.Size{Width: 500, Height: 250}, quarterZoom)

	// x=250 is the shared edge of both scaled rectangles
	e.OnPointerDown(250, 100)
	if name, _ := e.Dragging(); name != "A" {
		t.Errorf("expected first monitor in registry order, got %q", name)
	}
}

func TestEngine_FreeDragPansOtherMonitors(t *testing.T) {
	e := newTestEngine(t, []domain.MonitorDescriptor{
		{Name: "A", Width: 1000, Height: 1000, X: 0, Y: 0},
		{Name: "B", Width: 1000, Height: 1000, X: 3000, Y: 0},
	}, domain.Size{Width: 1000, Height: 250}, quarterZoom)

	e.OnPointerDown(100, 100)
	if !e.OnPointerMove(200, 100) {
		t.Fatal("OnPointerMove should be handled while dragging")
	}

	// pointer moved 100px at scale 0.25 = 400 layout units
	if x, _ := position(t, e, "A"); x != 400 {
		t.Errorf("expected A.X=400, got %d", x)
	}
	if x, _ := position(t, e, "B"); x != 2600 {
		t.Errorf("expected B.X=2600 (panned by -400), got %d", x)
	}
	if m, _ := e.Registry().Get("A"); m.Snapping {
		t.Error("free drag should not be snapping")
	}
}

func TestEngine_CollisionStopsPanning(t *testing.T) {
	e := sideBySide(t)
	e.OnPointerDown(100, 100)

	// +200 units on A and -200 on B: overlap of 320, pushed back left of B
	e.OnPointerMove(150, 100)
	ax, _ := position(t, e, "A")
	bx, _ := position(t, e, "B")
	if ax != -120 || bx != 1800 {
		t.Fatalf("expected A.X=-120 B.X=1800, got A.X=%d B.X=%d", ax, bx)
	}
	a, _ := e.Registry().Get("A")
	if !a.Snapping {
		t.Fatal("A should be snapping after a collision")
	}
	if a.Right() != bx {
		t.Errorf("A's right edge should touch B, got %d vs %d", a.Right(), bx)
	}

	// while snapping B stays put
	e.OnPointerMove(200, 100)
	ax, _ = position(t, e, "A")
	bx, _ = position(t, e, "B")
	if ax != -120 || bx != 1800 {
		t.Errorf("expected A.X=-120 B.X=1800 while snapping, got A.X=%d B.X=%d", ax, bx)
	}

	// moving away clears snapping without moving B
	e.OnPointerMove(100, 100)
	ax, _ = position(t, e, "A")
	bx, _ = position(t, e, "B")
	if ax != -520 || bx != 1800 {
		t.Errorf("expected A.X=-520 B.X=1800, got A.X=%d B.X=%d", ax, bx)
	}
	if a, _ := e.Registry().Get("A"); a.Snapping {
		t.Error("A should stop snapping once clear of B")
	}

	// free again: A moves -200 and B pans the opposite way
	e.OnPointerMove(50, 100)
	ax, _ = position(t, e, "A")
	bx, _ = position(t, e, "B")
	if ax != -720 || bx != 2000 {
		t.Errorf("expected A.X=-720 B.X=2000, got A.X=%d B.X=%d", ax, bx)
	}

	if !e.OnPointerUp(50, 100) {
		t.Error("OnPointerUp should report the finished drag")
	}
	if _, dragging := e.Dragging(); dragging {
		t.Error("session should be idle after pointer up")
	}

	// release recenters: bbox [-720, 3920] in a 3920 wide area
	ax, _ = position(t, e, "A")
	bx, _ = position(t, e, "B")
	if ax != -360 || bx != 2360 {
		t.Errorf("expected recentered A.X=-360 B.X=2360, got A.X=%d B.X=%d", ax, bx)
	}
}

func TestEngine_PointerDownClearsSnapping(t *testing.T) {
	e := sideBySide(t)
	e.OnPointerDown(100, 100)
	e.OnPointerMove(150, 100)
	e.OnPointerUp(150, 100)

	if a, _ := e.Registry().Get("A"); !a.Snapping {
		t.Fatal("A should still be snapping after release")
	}

	if !e.OnPointerDown(10, 10) {
		t.Fatal("expected to hit A")
	}
	if a, _ := e.Registry().Get("A"); a.Snapping {
		t.Error("starting a drag should clear Snapping")
	}
}

func TestEngine_SubUnitMovesAreDropped(t *testing.T) {
	e := sideBySide(t)
	e.OnPointerDown(100, 100)
	e.OnPointerMove(100.1, 100.1)
	e.OnPointerMove(100.2, 100.2)

	if x, y := position(t, e, "A"); x != 0 || y != 0 {
		t.Errorf("fractional layout deltas should truncate to zero, got (%d,%d)", x, y)
	}
	if x, _ := position(t, e, "B"); x != 2000 {
		t.Errorf("B should not move, got X=%d", x)
	}
}

func TestEngine_IdleEvents(t *testing.T) {
	e := sideBySide(t)

	if e.OnPointerMove(200, 200) {
		t.Error("OnPointerMove without a drag should not be handled")
	}
	if e.OnPointerUp(200, 200) {
		t.Error("OnPointerUp without a drag should report false")
	}
	if x, _ := position(t, e, "A"); x != 0 {
		t.Errorf("idle events should not move monitors, got X=%d", x)
	}
}

func TestEngine_ScrollBounds(t *testing.T) {
	e := newTestEngine(t, []domain.MonitorDescriptor{
		{Name: "A", Width: 1920, Height: 1080},
		{Name: "B", Width: 2560, Height: 1440, X: 1920},
	}, domain.Size{Width: 1280, Height: 720}, DefaultZoomPolicy())

	policy := DefaultZoomPolicy()
	for i := 0; i < 30; i++ {
		e.OnScroll(ScrollUp)
		if e.ScaleFactor() > policy.Max {
			t.Fatalf("scale %v exceeded max %v", e.ScaleFactor(), policy.Max)
		}
		if off := Center(e.Monitors(), e.Viewport(), e.ScaleFactor()); !off.IsZero() {
			t.Fatalf("layout not centered after zoom: %+v", off)
		}
	}
	if e.ScaleFactor() != policy.Max {
		t.Errorf("expected scale to settle at %v, got %v", policy.Max, e.ScaleFactor())
	}

	for i := 0; i < 60; i++ {
		e.OnScroll(ScrollDown)
		if e.ScaleFactor() < policy.Min {
			t.Fatalf("scale %v fell below min %v", e.ScaleFactor(), policy.Min)
		}
	}
	if e.ScaleFactor() != policy.Min {
		t.Errorf("expected scale to settle at %v, got %v", policy.Min, e.ScaleFactor())
	}
}

func TestEngine_ScrollDoesNotEndDrag(t *testing.T) {
	e := sideBySide(t)
	e.OnPointerDown(10, 10)
	e.OnScroll(ScrollUp)

	if _, dragging := e.Dragging(); !dragging {
		t.Error("zooming must not end the drag session")
	}
}

func TestEngine_Resize(t *testing.T) {
	e := sideBySide(t)
	e.OnResize(2000, 500)

	if got := e.Viewport(); got.Width != 2000 || got.Height != 500 {
		t.Errorf("expected viewport 2000x500, got %dx%d", got.Width, got.Height)
	}
	if x, y := position(t, e, "A"); x != 2040 || y != 460 {
		t.Errorf("expected A at (2040,460), got (%d,%d)", x, y)
	}
}

func TestEngine_RedrawRequests(t *testing.T) {
	e := sideBySide(t)
	redraws := 0
	e.SetRedraw(func() { redraws++ })

	e.OnPointerDown(490, 100) // miss
	if redraws != 0 {
		t.Errorf("a missed pointer down should not redraw, got %d", redraws)
	}

	e.OnPointerDown(10, 10)
	e.OnPointerMove(20, 10)
	e.OnPointerUp(20, 10)
	e.OnScroll(ScrollDown)
	e.OnResize(800, 600)

	if redraws != 5 {
		t.Errorf("expected 5 redraws, got %d", redraws)
	}
}

func TestEngine_EmptyRegistry(t *testing.T) {
	e := newTestEngine(t, nil, domain.Size{Width: 800, Height: 600}, DefaultZoomPolicy())

	if e.OnPointerDown(10, 10) {
		t.Error("nothing to hit in an empty registry")
	}
	if e.OnPointerUp(10, 10) {
		t.Error("no drag to finish")
	}
	if !e.OnScroll(ScrollUp) {
		t.Error("scroll should still change zoom")
	}
	if tiles := e.Frame(); tiles != nil {
		t.Errorf("expected no tiles, got %v", tiles)
	}
	if commands := e.ExportCommands(); len(commands) != 0 {
		t.Errorf("expected no commands, got %v", commands)
	}
	if config := e.ExportClipboardConfig(); config != "" {
		t.Errorf("expected empty config, got %q", config)
	}
}

func TestEngine_DragThenExport(t *testing.T) {
	e := sideBySide(t)
	e.OnPointerDown(100, 100)
	e.OnPointerMove(150, 100)
	e.OnPointerUp(150, 100)

	expected := []string{
		"hyprctl keyword monitor A,1920x1080,0x0,1",
		"hyprctl keyword monitor B,1920x1080,1920x0,1",
	}
	commands := e.ExportCommands()
	for i := range expected {
		if commands[i] != expected[i] {
			t.Errorf("command %d: expected %q, got %q", i, expected[i], commands[i])
		}
	}
}

func TestEngine_Frame(t *testing.T) {
	e := sideBySide(t)

	tiles := e.Frame()
	if len(tiles) != 2 {
		t.Fatalf("expected 2 tiles, got %d", len(tiles))
	}
	b := tiles[1]
	if b.Index != 1 || b.Name != "B" {
		t.Errorf("unexpected tile identity %+v", b)
	}
	if b.X != 500 || b.Y != 0 || b.Width != 480 || b.Height != 270 {
		t.Errorf("unexpected scaled rectangle %+v", b)
	}
	if b.RelX != 2000 || b.RelY != 0 {
		t.Errorf("expected relative position (2000,0), got (%d,%d)", b.RelX, b.RelY)
	}
	if !b.ShowDetails {
		t.Error("details should be shown above the threshold")
	}

	e.OnScroll(ScrollDown) // 0.125
	for _, tile := range e.Frame() {
		if tile.ShowDetails {
			t.Errorf("details should be hidden at scale %v", e.ScaleFactor())
		}
	}
}
