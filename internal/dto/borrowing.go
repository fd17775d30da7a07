package dto

type CreateBorrowingRequestDTO struct {
	BookID             int    `json:"book_id" validate:"required"`
	ExpectedReturnDate string `json:"expected_return_date" validate:"required" example:"2026-09-15"`
}

type GetBorrowingResponseDTO struct {
	ID                 int     `json:"id"`
	UserID             int     `json:"user_id"`
	BookID             int     `json:"book_id"`
	BorrowDate         string  `json:"borrow_date"`
	ExpectedReturnDate string  `json:"expected_return_date"`
	ActualReturnDate   *string `json:"actual_return_date"`
}
