package models

// Service is a bookable consulting offering. The catalog is static, so
// services never touch storage.
type Service struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Duration int     `json:"duration"`
	Price    float64 `json:"price"`
}
