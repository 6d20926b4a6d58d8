package dto

// ListReq carries the optional query parameters of GET /offers.
type ListReq struct {
	Title    *string
	PriceMin *float64
	PriceMax *float64
	Sort     *string
	Page     *int
}
