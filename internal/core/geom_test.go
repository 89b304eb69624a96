package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 2)

	cases := []struct {
		x, y int
		want bool
	}{
		{2, 3, true},   // top-left corner
		{5, 4, true},   // bottom-right interior
		{6, 3, false},  // right edge is exclusive
		{2, 5, false},  // bottom edge is exclusive
		{1, 3, false},  // left of rect
		{-1, -1, false},
	}

	for _, c := range cases {
		if got := r.Contains(c.x, c.y); got != c.want {
			t.Errorf("Contains(%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(1, 2, 3, 4)
	if r.Right() != 4 {
		t.Errorf("Right() = %d, want 4", r.Right())
	}
	if r.Bottom() != 6 {
		t.Errorf("Bottom() = %d, want 6", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5,0,10) = %d, want 5", got)
	}
	if got := Clamp(-3, 0, 10); got != 0 {
		t.Errorf("Clamp(-3,0,10) = %d, want 0", got)
	}
	if got := Clamp(42, 0, 10); got != 10 {
		t.Errorf("Clamp(42,0,10) = %d, want 10", got)
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(0.5, 0, 1); got != 0.5 {
		t.Errorf("ClampF(0.5,0,1) = %v, want 0.5", got)
	}
	if got := ClampF(-0.1, 0, 1); got != 0 {
		t.Errorf("ClampF(-0.1,0,1) = %v, want 0", got)
	}
	if got := ClampF(1.5, 0, 1); got != 1 {
		t.Errorf("ClampF(1.5,0,1) = %v, want 1", got)
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(2, 3) != 2 || Min(3, 2) != 2 {
		t.Error("Min is wrong")
	}
	if Max(2, 3) != 3 || Max(3, 2) != 3 {
		t.Error("Max is wrong")
	}
	if Abs(-4) != 4 || Abs(4) != 4 {
		t.Error("Abs is wrong")
	}
}
