package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestCylinder_Defaults(t *testing.T) {
	c := NewCylinder()
	if !math.IsInf(c.Minimum, -1) || !math.IsInf(c.Maximum, 1) {
		t.Errorf("Expected infinite extent, got [%f, %f]", c.Minimum, c.Maximum)
	}
	if c.Closed {
		t.Error("Expected an open cylinder")
	}
}

func TestCylinder_Miss(t *testing.T) {
	tests := []struct {
		origin    core.Tuple
		direction core.Tuple
	}{
		{core.Point(1, 0, 0), core.Vector(0, 1, 0)},
		{core.Point(0, 0, 0), core.Vector(0, 1, 0)},
		{core.Point(0, 0, -5), core.Vector(1, 1, 1)},
	}

	for _, tt := range tests {
		r := core.NewRay(tt.origin, tt.direction.Normalize())
		if xs := NewCylinder().LocalIntersect(r); len(xs) != 0 {
			t.Errorf("Ray %v %v: expected miss, got %v", tt.origin, tt.direction, xs)
		}
	}
}

func TestCylinder_Hit(t *testing.T) {
	tests := []struct {
		origin    core.Tuple
		direction core.Tuple
		t0, t1    float64
	}{
		{core.Point(1, 0, -5), core.Vector(0, 0, 1), 5, 5},
		{core.Point(0, 0, -5), core.Vector(0, 0, 1), 4, 6},
		{core.Point(0.5, 0, -5), core.Vector(0.1, 1, 1), 6.80798, 7.08872},
	}

	for _, tt := range tests {
		r := core.NewRay(tt.origin, tt.direction.Normalize())
		xs := NewCylinder().LocalIntersect(r)
		if len(xs) != 2 {
			t.Fatalf("Ray %v %v: expected 2 intersections, got %d", tt.origin, tt.direction, len(xs))
		}
		if math.Abs(xs[0].T-tt.t0) > 1e-4 || math.Abs(xs[1].T-tt.t1) > 1e-4 {
			t.Errorf("Expected t=%f,%f, got %f,%f", tt.t0, tt.t1, xs[0].T, xs[1].T)
		}
	}
}

func TestCylinder_LocalNormalAt(t *testing.T) {
	tests := []struct {
		point    core.Tuple
		expected core.Tuple
	}{
		{core.Point(1, 0, 0), core.Vector(1, 0, 0)},
		{core.Point(0, 5, -1), core.Vector(0, 0, -1)},
		{core.Point(0, -2, 1), core.Vector(0, 0, 1)},
		{core.Point(-1, 1, 0), core.Vector(-1, 0, 0)},
	}

	for _, tt := range tests {
		if got := NewCylinder().LocalNormalAt(tt.point); !got.Equals(tt.expected) {
			t.Errorf("At %v: expected %v, got %v", tt.point, tt.expected, got)
		}
	}
}

func TestCylinder_Truncated(t *testing.T) {
	tests := []struct {
		name      string
		origin    core.Tuple
		direction core.Tuple
		count     int
	}{
		{"diagonal from inside", core.Point(0, 1.5, 0), core.Vector(0.1, 1, 0), 0},
		{"above", core.Point(0, 3, -5), core.Vector(0, 0, 1), 0},
		{"below", core.Point(0, 0, -5), core.Vector(0, 0, 1), 0},
		{"at maximum", core.Point(0, 2, -5), core.Vector(0, 0, 1), 0},
		{"at minimum", core.Point(0, 1, -5), core.Vector(0, 0, 1), 0},
		{"through the middle", core.Point(0, 1.5, -2), core.Vector(0, 0, 1), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCylinder()
			c.Minimum = 1
			c.Maximum = 2
			xs := c.LocalIntersect(core.NewRay(tt.origin, tt.direction.Normalize()))
			if len(xs) != tt.count {
				t.Errorf("Expected %d intersections, got %d", tt.count, len(xs))
			}
		})
	}
}

func TestCylinder_Caps(t *testing.T) {
	tests := []struct {
		name      string
		origin    core.Tuple
		direction core.Tuple
		count     int
	}{
		{"down the axis", core.Point(0, 3, 0), core.Vector(0, -1, 0), 2},
		{"through top cap and side", core.Point(0, 3, -2), core.Vector(0, -1, 2), 2},
		{"top corner", core.Point(0, 4, -2), core.Vector(0, -1, 1), 2},
		{"through bottom cap and side", core.Point(0, 0, -2), core.Vector(0, 1, 2), 2},
		{"bottom corner", core.Point(0, -1, -2), core.Vector(0, 1, 1), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCylinder()
			c.Minimum = 1
			c.Maximum = 2
			c.Closed = true
			xs := c.LocalIntersect(core.NewRay(tt.origin, tt.direction.Normalize()))
			if len(xs) != tt.count {
				t.Errorf("Expected %d intersections, got %d", tt.count, len(xs))
			}
		})
	}
}

func TestCylinder_CapNormals(t *testing.T) {
	tests := []struct {
		point    core.Tuple
		expected core.Tuple
	}{
		{core.Point(0, 1, 0), core.Vector(0, -1, 0)},
		{core.Point(0.5, 1, 0), core.Vector(0, -1, 0)},
		{core.Point(0, 1, 0.5), core.Vector(0, -1, 0)},
		{core.Point(0, 2, 0), core.Vector(0, 1, 0)},
		{core.Point(0.5, 2, 0), core.Vector(0, 1, 0)},
		{core.Point(0, 2, 0.5), core.Vector(0, 1, 0)},
	}

	c := NewCylinder()
	c.Minimum = 1
	c.Maximum = 2
	c.Closed = true
	for _, tt := range tests {
		if got := c.LocalNormalAt(tt.point); !got.Equals(tt.expected) {
			t.Errorf("At %v: expected %v, got %v", tt.point, tt.expected, got)
		}
	}
}
