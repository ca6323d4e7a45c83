package request

// PackageRequest creates a travel package.
type PackageRequest struct {
	Name        string  `json:"name" binding:"required"`
	BasePrice   float64 `json:"base_price" binding:"required"`
	MaxCapacity int     `json:"max_capacity" binding:"min=0"`
}

// SeatRequest admits or releases seats against a package.
type SeatRequest struct {
	Seats int `json:"seats" binding:"required"`
}
