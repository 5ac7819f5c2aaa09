package services

// LoyaltyPolicy calcula los puntos de fidelidad otorgados al hacer
// check-out. La fórmula exacta es política configurable, no un invariante
// del dominio: se inyecta en el ReservationService.
type LoyaltyPolicy func(totalPrice float64) int

// DefaultLoyaltyPolicy otorga 10 puntos por cada 100 de precio total
func DefaultLoyaltyPolicy(totalPrice float64) int {
	if totalPrice <= 0 {
		return 0
	}
	return int(totalPrice/100) * 10
}
