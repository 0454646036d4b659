package entity

import (
	"github.com/google/uuid"
)

type User struct {
	Base
	Email        string      `db:"email"`
	PasswordHash string      `db:"password"`
	Movies       []uuid.UUID `db:"movies"`
}
