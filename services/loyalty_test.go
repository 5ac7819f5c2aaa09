package services

import "testing"

func TestDefaultLoyaltyPolicy(t *testing.T) {
	cases := []struct {
		total float64
		want  int
	}{
		{0, 0},
		{-50, 0},
		{99.99, 0},
		{100, 10},
		{250, 20},
		{300, 30},
		{1050, 100},
	}
	for _, tc := range cases {
		if got := DefaultLoyaltyPolicy(tc.total); got != tc.want {
			t.Errorf("DefaultLoyaltyPolicy(%v) = %d, esperaba %d", tc.total, got, tc.want)
		}
	}
}

func TestLoyaltyPolicyInyectable(t *testing.T) {
	doble := LoyaltyPolicy(func(total float64) int {
		return DefaultLoyaltyPolicy(total) * 2
	})
	if got := doble(300); got != 60 {
		t.Errorf("política inyectada = %d, esperaba 60", got)
	}
}
