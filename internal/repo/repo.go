package repo

import (
	"errors"

	"gorm.io/gorm"
)

type GormRepo struct {
	DB *gorm.DB
}

var (
	ErrUserAlreadyExist  = errors.New("user already exist")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// NotFound reports whether err is the store's record-absent error.
func NotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
