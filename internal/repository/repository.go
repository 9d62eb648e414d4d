package repository

import (
	"errors"

	"github.com/edumobile/edu-api/internal/apperrors"
	"gorm.io/gorm"
)

// translateNotFound maps gorm's record-not-found onto the application error
// taxonomy so services never have to import gorm.
func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrNotFound
	}
	return err
}
