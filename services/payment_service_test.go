package services

import "testing"

func TestAmountInCents(t *testing.T) {
	cases := []struct {
		total float64
		want  int64
	}{
		{19.99, 1999},
		{107.19, 10719},
		{17.99, 1799},
		{0.10, 10},
		{100.00, 10000},
		{0, 0},
		{249.50, 24950},
	}

	for _, c := range cases {
		if got := AmountInCents(c.total); got != c.want {
			t.Errorf("AmountInCents(%v) = %d, want %d", c.total, got, c.want)
		}
	}
}
