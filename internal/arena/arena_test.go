package arena

import (
	"errors"
	"testing"

	"go-arena/pkg/geom"
)

var defaultBounds = Bounds{Left: -450, Right: 450, Bottom: -300, Top: 300, WallThickness: 10}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		b    Bounds
		want error
	}{
		{"default arena", defaultBounds, nil},
		{"zero width", Bounds{Left: 5, Right: 5, Bottom: -1, Top: 1}, ErrEmptyWidth},
		{"inverted height", Bounds{Left: -1, Right: 1, Bottom: 1, Top: -1}, ErrEmptyHeight},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.b.Validate(); !errors.Is(err, tc.want) {
				t.Errorf("Validate() = %v, expected %v", err, tc.want)
			}
		})
	}

	if err := (Bounds{Left: -1, Right: 1, Bottom: -1, Top: 1, WallThickness: -2}).Validate(); err == nil {
		t.Error("negative thickness accepted")
	}
}

func TestWallGeometry(t *testing.T) {
	tests := []struct {
		loc      WallLocation
		position geom.Vec2
		size     geom.Vec2
	}{
		{Left, geom.V(-450, 0), geom.V(10, 610)},
		{Right, geom.V(450, 0), geom.V(10, 610)},
		{Bottom, geom.V(0, -300), geom.V(910, 10)},
		{Top, geom.V(0, 300), geom.V(910, 10)},
	}
	for _, tc := range tests {
		t.Run(tc.loc.String(), func(t *testing.T) {
			if got := defaultBounds.WallPosition(tc.loc); got != tc.position {
				t.Errorf("WallPosition() = %v, expected %v", got, tc.position)
			}
			if got := defaultBounds.WallSize(tc.loc); got != tc.size {
				t.Errorf("WallSize() = %v, expected %v", got, tc.size)
			}
		})
	}
}

func TestInterior(t *testing.T) {
	r := defaultBounds.Interior(25)
	want := Rect{MinX: -420, MaxX: 420, MinY: -270, MaxY: 270}
	if r != want {
		t.Errorf("Interior(25) = %+v, expected %+v", r, want)
	}
}

func TestClamp(t *testing.T) {
	r := defaultBounds.Interior(25)
	tests := []struct {
		name    string
		in      geom.Vec2
		want    geom.Vec2
		changed bool
	}{
		{"inside untouched", geom.V(10, -10), geom.V(10, -10), false},
		{"on the boundary untouched", geom.V(-420, 270), geom.V(-420, 270), false},
		{"past left wall", geom.V(-426.5, 0), geom.V(-420, 0), true},
		{"past top right corner", geom.V(500, 400), geom.V(420, 270), true},
		{"past bottom", geom.V(0, -1000), geom.V(0, -270), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, changed := r.Clamp(tc.in)
			if got != tc.want || changed != tc.changed {
				t.Errorf("Clamp(%v) = %v, %v; expected %v, %v", tc.in, got, changed, tc.want, tc.changed)
			}
			if !r.Contains(got) {
				t.Errorf("clamped point %v outside %+v", got, r)
			}
		})
	}
}
