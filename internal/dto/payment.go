package dto

type GetPaymentResponseDTO struct {
	ID          int     `json:"id"`
	BorrowingID int     `json:"borrowing_id"`
	Status      string  `json:"status"`
	Type        string  `json:"type"`
	SessionID   string  `json:"session_id"`
	SessionURL  string  `json:"session_url"`
	MoneyToPay  float64 `json:"money_to_pay"`
}
