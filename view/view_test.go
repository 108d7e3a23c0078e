package view

import (
	"math"
	"testing"
)

func TestProjectionRoundTrip(t *testing.T) {
	p := Default()
	for wx := -10.0; wx <= 20; wx += 0.75 {
		for wy := -10.0; wy <= 20; wy += 1.25 {
			sx, sy := p.WorldToScreen(wx, wy)
			gx, gy := p.ScreenToWorld(sx, sy)
			if math.Abs(gx-wx) > 1e-9 || math.Abs(gy-wy) > 1e-9 {
				t.Fatalf("round trip (%v,%v) -> (%v,%v) -> (%v,%v)", wx, wy, sx, sy, gx, gy)
			}
		}
	}
}

func TestProjectionAnchors(t *testing.T) {
	p := Default()
	sx, sy := p.WorldToScreen(0, 0)
	if sx != 160 || sy != 60 {
		t.Fatalf("expected origin at (160,60), got (%v,%v)", sx, sy)
	}
	sx, sy = p.WorldToScreen(1, 0)
	if sx != 168 || sy != 64 {
		t.Fatalf("expected +x step to (168,64), got (%v,%v)", sx, sy)
	}
	sx, sy = p.WorldToScreen(0, 1)
	if sx != 152 || sy != 64 {
		t.Fatalf("expected +y step to (152,64), got (%v,%v)", sx, sy)
	}
}

func TestDepthMonotoneWithScreenY(t *testing.T) {
	p := Default()
	_, a := p.WorldToScreen(4, 5)
	_, b := p.WorldToScreen(5, 6)
	if !(Depth(4, 5) < Depth(5, 6) && a < b) {
		t.Fatal("expected depth and projected y to increase together")
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 5, H: 5}
	if !r.Contains(10, 10) || !r.Contains(15, 15) || r.Contains(16, 12) {
		t.Fatal("unexpected containment result")
	}
}

func TestResponseY(t *testing.T) {
	if ResponseY(0) != 145 || ResponseY(2) != 169 {
		t.Fatalf("unexpected response rows: %v %v", ResponseY(0), ResponseY(2))
	}
}
