package domain

import "time"

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	IsStaff      bool      `db:"is_staff"`
	CreatedAt    time.Time `db:"created_at"`
}

// Actor identifies the caller of a scoped operation. Staff actors see
// all records, everyone else only their own.
type Actor struct {
	ID      int
	IsStaff bool
}

// Scope returns the user id to bind into scoped queries, nil for staff.
func (a Actor) Scope() *int {
	if a.IsStaff {
		return nil
	}
	id := a.ID
	return &id
}

// CoverType is a closed set, invalid values are rejected at the boundary.
type CoverType string

const (
	HardCover CoverType = "HARD"
	SoftCover CoverType = "SOFT"
)

func (c CoverType) Valid() bool {
	return c == HardCover || c == SoftCover
}

type Book struct {
	ID        int       `db:"id"`
	Title     string    `db:"title"`
	Author    string    `db:"author"`
	Cover     CoverType `db:"cover"`
	Inventory int       `db:"inventory"`
	DailyFee  float64   `db:"daily_fee"`
}

type Borrowing struct {
	ID                 int        `db:"id"`
	UserID             int        `db:"user_id"`
	BookID             int        `db:"book_id"`
	BorrowDate         time.Time  `db:"borrow_date"`
	ExpectedReturnDate time.Time  `db:"expected_return_date"`
	ActualReturnDate   *time.Time `db:"actual_return_date"`
}

// Active reports whether the borrowing has not been returned yet.
func (b *Borrowing) Active() bool {
	return b.ActualReturnDate == nil
}

// OverdueBorrowing is a borrowing joined with the data the overdue
// report needs.
type OverdueBorrowing struct {
	Borrowing
	UserLogin string `db:"login"`
	BookTitle string `db:"title"`
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentPaid    PaymentStatus = "PAID"
)

func (s PaymentStatus) Valid() bool {
	return s == PaymentPending || s == PaymentPaid
}

type PaymentType string

const (
	TypePayment PaymentType = "PAYMENT"
	TypeFine    PaymentType = "FINE"
)

func (t PaymentType) Valid() bool {
	return t == TypePayment || t == TypeFine
}

// PendingCheckout is a payment that still needs a provider session,
// joined with the book title used for the line-item description.
type PendingCheckout struct {
	Payment
	BookTitle string `db:"title"`
}

type Payment struct {
	ID            int           `db:"id"`
	BorrowingID   int           `db:"borrowing_id"`
	Status        PaymentStatus `db:"status"`
	Type          PaymentType   `db:"type_pay"`
	CorrelationID string        `db:"correlation_id"`
	SessionID     string        `db:"session_id"`
	SessionURL    string        `db:"session_url"`
	MoneyToPay    float64       `db:"money_to_pay"`
}
