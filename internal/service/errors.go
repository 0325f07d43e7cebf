package service

import (
	"errors"

	"github.com/GulfDevInnovations/royal-academy/internal/apperrors"
	"github.com/GulfDevInnovations/royal-academy/internal/repository"
)

// storeErr converts a repository error into a domain error. Errors that already carry a
// domain code pass through.
func storeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	var domain *apperrors.Error
	if errors.As(err, &domain) {
		return err
	}
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.Wrap(apperrors.CodeNotFound, op, err)
	}
	if repository.IsUniqueViolation(err) {
		return apperrors.Wrap(apperrors.CodeConflict, op, err)
	}
	return apperrors.StoreUnavailable(op, err)
}

func isConflict(err error) bool {
	return errors.Is(err, apperrors.ErrConflict) || repository.IsUniqueViolation(err)
}
