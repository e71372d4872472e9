package rectpack

import "testing"

func TestFitnessPolicyScore(t *testing.T) {
	free := NewRect(0, 0, 10, 6)
	cases := []struct {
		policy           FitnessPolicy
		w, h             int
		wantP, wantS int
	}{
		{BSSF, 4, 4, 2, 0},  // min(10-4, 6-4) = min(6,2) = 2
		{BLSF, 4, 4, 6, 0},  // max(6,2) = 6
		{BAF, 4, 4, 44, 0},  // 60 - 16
		{BL, 4, 4, 4, 0},    // m.Y + h = 0 + 4
	}
	for _, c := range cases {
		p, s := c.policy.score(free, c.w, c.h)
		if p != c.wantP || s != c.wantS {
			t.Errorf("%s.score(%dx%d) = (%d,%d), want (%d,%d)", c.policy, c.w, c.h, p, s, c.wantP, c.wantS)
		}
	}
}

func TestParseFitnessPolicy(t *testing.T) {
	for _, name := range []string{"BSSF", "BLSF", "BAF", "BL"} {
		if _, err := ParseFitnessPolicy(name); err != nil {
			t.Errorf("ParseFitnessPolicy(%q) returned error: %v", name, err)
		}
	}
	if _, err := ParseFitnessPolicy("NOPE"); err == nil {
		t.Error("expected error for unknown policy")
	}
}

func TestLessScore(t *testing.T) {
	if !lessScore(1, 0, 2, 0) {
		t.Error("lower primary should be less")
	}
	if !lessScore(1, 1, 1, 2) {
		t.Error("equal primary should tie-break on secondary")
	}
	if lessScore(2, 0, 1, 0) {
		t.Error("higher primary should not be less")
	}
}
