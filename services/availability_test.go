package services

import (
	"testing"
	"time"

	apperrors "github.com/abigaildinucci5-hue/tp-final-sub001/errors"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("fecha inválida %q: %v", value, err)
	}
	return parsed
}

func TestNights(t *testing.T) {
	cases := []struct {
		checkIn, checkOut string
		want              int
	}{
		{"2026-07-10", "2026-07-13", 3},
		{"2026-07-10", "2026-07-11", 1},
		{"2026-07-10", "2026-07-10", 0},
		{"2026-12-30", "2027-01-02", 3},
	}
	for _, tc := range cases {
		got := Nights(mustDate(t, tc.checkIn), mustDate(t, tc.checkOut))
		if got != tc.want {
			t.Errorf("Nights(%s, %s) = %d, esperaba %d", tc.checkIn, tc.checkOut, got, tc.want)
		}
	}
}

func TestRangesOverlap(t *testing.T) {
	cases := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd string
		want                       bool
	}{
		{"solapamiento parcial", "2026-07-10", "2026-07-12", "2026-07-11", "2026-07-13", true},
		{"contenido", "2026-07-10", "2026-07-20", "2026-07-12", "2026-07-14", true},
		{"mismo rango", "2026-07-10", "2026-07-12", "2026-07-10", "2026-07-12", true},
		{"contiguos no solapan", "2026-07-10", "2026-07-12", "2026-07-12", "2026-07-14", false},
		{"contiguos al revés", "2026-07-12", "2026-07-14", "2026-07-10", "2026-07-12", false},
		{"disjuntos", "2026-07-10", "2026-07-11", "2026-07-20", "2026-07-22", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := RangesOverlap(
				mustDate(t, tc.aStart), mustDate(t, tc.aEnd),
				mustDate(t, tc.bStart), mustDate(t, tc.bEnd),
			)
			if got != tc.want {
				t.Errorf("RangesOverlap = %v, esperaba %v", got, tc.want)
			}
		})
	}
}

func TestParseDateRange(t *testing.T) {
	if _, _, err := ParseDateRange("2026-07-10", "2026-07-13"); err != nil {
		t.Fatalf("rango válido rechazado: %v", err)
	}

	_, _, err := ParseDateRange("2026-07-13", "2026-07-10")
	if !apperrors.HasCode(err, apperrors.ErrCodeInvalidDateRange) {
		t.Errorf("check-out anterior al check-in: esperaba INVALID_DATE_RANGE, recibí %v", err)
	}

	_, _, err = ParseDateRange("2026-07-10", "2026-07-10")
	if !apperrors.HasCode(err, apperrors.ErrCodeInvalidDateRange) {
		t.Errorf("rango de cero noches: esperaba INVALID_DATE_RANGE, recibí %v", err)
	}

	_, _, err = ParseDateRange("10/07/2026", "2026-07-13")
	if !apperrors.HasCode(err, apperrors.ErrCodeInvalidFormat) {
		t.Errorf("formato inválido: esperaba INVALID_FORMAT, recibí %v", err)
	}
}

func TestComputeTotalSinRecargo(t *testing.T) {
	// 3 noches a $100 sin huéspedes extra
	detail := ComputeTotal(100, 25, 2, 3, 2)
	if detail.BasePrice != 300 {
		t.Errorf("BasePrice = %d, esperaba 300", detail.BasePrice)
	}
	if detail.ExtraPrice != 0 {
		t.Errorf("ExtraPrice = %d, esperaba 0", detail.ExtraPrice)
	}
	if detail.TotalPrice != 300 {
		t.Errorf("TotalPrice = %v, esperaba 300", detail.TotalPrice)
	}
}

func TestComputeTotalConRecargo(t *testing.T) {
	// 2 noches, 1 huésped sobre la capacidad base a $25 por noche
	detail := ComputeTotal(100, 25, 2, 2, 3)
	if detail.BasePrice != 200 {
		t.Errorf("BasePrice = %d, esperaba 200", detail.BasePrice)
	}
	if detail.ExtraPrice != 50 {
		t.Errorf("ExtraPrice = %d, esperaba 50", detail.ExtraPrice)
	}
	if detail.TotalPrice != 250 {
		t.Errorf("TotalPrice = %v, esperaba 250", detail.TotalPrice)
	}
}

func TestComputeTotalDeterminista(t *testing.T) {
	first := ComputeTotal(180, 30, 2, 5, 4)
	for i := 0; i < 10; i++ {
		if got := ComputeTotal(180, 30, 2, 5, 4); got != first {
			t.Fatalf("ComputeTotal no es determinista: %+v vs %+v", got, first)
		}
	}
}
