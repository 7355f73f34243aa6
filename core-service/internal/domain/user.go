package domain

import "time"

type User struct {
	ID       int64  `db:"id"`
	Username string `db:"username"`
	Password string `db:"password"`
}

type Person struct {
	ID     int64     `db:"id"`
	CPF    string    `db:"cpf"`
	Name   string    `db:"name"`
	Birth  time.Time `db:"birth"`
	Email  string    `db:"email"`
	UserID *int64    `db:"user_id"`
}

// UserWithPerson is a user left-joined with its person; person columns are nil when absent.
type UserWithPerson struct {
	ID       int64      `db:"id"`
	Username string     `db:"username"`
	PersonID *int64     `db:"person_id"`
	CPF      *string    `db:"cpf"`
	Name     *string    `db:"name"`
	Birth    *time.Time `db:"birth"`
	Email    *string    `db:"email"`
}
