package service

import (
	"errors"

	"canteen/apperr"
	"canteen/canteen-svc/internal/domain"
)

var (
	ErrEmptyCart        = errors.New("cart is empty")
	ErrUnknownMenuItem  = errors.New("menu item does not exist")
	ErrRefundExists     = errors.New("order already has an active refund")
	ErrRefundReviewed   = errors.New("refund was already reviewed")
	ErrNotOrderOwner    = errors.New("order belongs to another user")
	ErrUnsupportedImage = errors.New("unsupported image payload")
)

// repoErr maps storage sentinels onto application errors for the named entity.
func repoErr(err error, entity string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrNotFound):
		return apperr.NotFoundErr(entity + " not found.").With(err)
	case errors.Is(err, domain.ErrDuplicate):
		return apperr.ConflictErr(entity + " already exists.").With(err)
	}
	return apperr.Wrap(err)
}
