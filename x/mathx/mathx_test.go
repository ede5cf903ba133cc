package mathx

import "testing"

func TestClamp(t *testing.T) {
	for _, c := range []struct {
		v, lo, hi, want int
	}{
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{7, 0, 10, 7},
		{7, 10, 0, 7}, // swapped bounds
		{11, 10, 0, 10},
	} {
		if got := Clamp(c.v, c.lo, c.hi); got != c.want {
			t.Fatalf("Clamp(%d, %d, %d) = %d, want %d", c.v, c.lo, c.hi, got, c.want)
		}
	}
	if got := Clamp(uint16(995), 1000, 1200); got != 1000 {
		t.Fatalf("Clamp(uint16) = %d, want 1000", got)
	}
}

func TestBetween(t *testing.T) {
	if !Between(1000, 1000, 1200) || !Between(1200, 1200, 1000) {
		t.Fatal("inclusive bounds failed")
	}
	if Between(999, 1000, 1200) || Between(1201, 1000, 1200) {
		t.Fatal("out of band reported as between")
	}
}

func TestRoundDiv(t *testing.T) {
	for _, c := range []struct {
		a, b, want uint32
	}{
		{10, 4, 3}, // 2.5 rounds up
		{9, 4, 2},  // 2.25
		{11, 4, 3}, // 2.75
		{0, 7, 0},
		{5, 0, 0},
		{40950, 10, 4095},
	} {
		if got := RoundDiv(c.a, c.b); got != c.want {
			t.Fatalf("RoundDiv(%d, %d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}
