package core

import "testing"

func TestDirectionStep(t *testing.T) {
	cases := []struct {
		dir  Direction
		want Position
	}{
		{Up, Position{Row: -1}},
		{Down, Position{Row: 1}},
		{Left, Position{Col: -1}},
		{Right, Position{Col: 1}},
	}

	for _, tc := range cases {
		if got := tc.dir.Step(); got != tc.want {
			t.Errorf("%s.Step() = %v, expected %v", tc.dir, got, tc.want)
		}
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range []Direction{Up, Down, Left, Right} {
		got, err := ParseDirection(d.String())
		if err != nil {
			t.Fatalf("ParseDirection(%q) failed: %v", d.String(), err)
		}
		if got != d {
			t.Errorf("ParseDirection(%q) = %v, expected %v", d.String(), got, d)
		}
	}

	if _, err := ParseDirection("north"); err == nil {
		t.Error("ParseDirection(\"north\") should fail")
	}
	if _, err := ParseDirection("UP"); err == nil {
		t.Error("ParseDirection is case-sensitive, \"UP\" should fail")
	}
}

func TestPositionAddNeg(t *testing.T) {
	p := Position{Row: 2, Col: 3}

	if got := p.Add(Down.Step()); got != (Position{Row: 3, Col: 3}) {
		t.Errorf("Add(Down.Step()) = %v", got)
	}
	if got := p.Add(Left.Step().Neg()); got != (Position{Row: 2, Col: 4}) {
		t.Errorf("Add(Left.Step().Neg()) = %v", got)
	}

	// Positions may leave the grid freely
	if got := (Position{}).Add(Up.Step()); got != (Position{Row: -1}) {
		t.Errorf("Add(Up.Step()) from origin = %v", got)
	}
}

func TestAbs(t *testing.T) {
	if Abs(-5) != 5 || Abs(5) != 5 || Abs(0) != 0 {
		t.Error("Abs is wrong")
	}
}
