package dto

type GetBookResponseDTO struct {
	ID        int     `json:"id"`
	Title     string  `json:"title"`
	Author    string  `json:"author"`
	Cover     string  `json:"cover"`
	Inventory int     `json:"inventory"`
	DailyFee  float64 `json:"daily_fee"`
}
