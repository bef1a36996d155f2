package postgres

import "errors"

var (
	ErrFieldsNotAllowedToUpdate = errors.New("provided fields that are not allowed to update")
	ErrContributionResolved     = errors.New("contribution is already resolved")
	ErrInvalidEngagementFlag    = errors.New("invalid engagement flag")
)
