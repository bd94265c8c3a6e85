package main

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrEmailExists     = errors.New("email already exists")
	ErrExpenseNotFound = errors.New("expense not found")
)

type User struct {
	Id           int64  `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

// Expense rows carry nullable title and amount columns and a loose user_id
// that is never checked against users.
type Expense struct {
	Id     int64    `json:"id"`
	Title  *string  `json:"title"`
	Amount *float64 `json:"amount"`
	UserId *int64   `json:"-"`
}

// ExpenseUpdate is a partial update. Only fields with their Set flag raised
// are written; a raised flag with a nil value clears the column.
type ExpenseUpdate struct {
	SetTitle  bool
	Title     *string
	SetAmount bool
	Amount    *float64
}

