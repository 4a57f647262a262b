package impl

import (
	"time"

	"activator/internal/domain/entity"
	domainerrors "activator/internal/domain/errors"
	"activator/internal/util"
)

// expirationPolicy turns a validity choice into a concrete expiration date.
type expirationPolicy struct {
	fixedTermMonths int
}

func newExpirationPolicy(fixedTermMonths int) expirationPolicy {
	if fixedTermMonths <= 0 {
		fixedTermMonths = 1
	}

	return expirationPolicy{fixedTermMonths: fixedTermMonths}
}

// expirationFor computes the expiration date relative to now, in now's location.
func (p expirationPolicy) expirationFor(validity entity.ValidityType, customDate string, now time.Time) (time.Time, error) {
	switch validity {
	case entity.ValidityFixedTerm:
		return util.EndOfDay(now.AddDate(0, p.fixedTermMonths, 0)), nil
	case entity.ValidityCustom:
		date, err := util.ParseDate(customDate, now.Location())
		if err != nil {
			return time.Time{}, domainerrors.ErrInvalidCustomDate.WithDetails(err.Error())
		}
		if util.StartOfDay(date).Before(util.StartOfDay(now)) {
			return time.Time{}, domainerrors.ErrInvalidCustomDate.WithDetails("date is in the past")
		}

		return util.EndOfDay(date), nil
	case entity.ValidityLifetime:
		return entity.LifetimeExpiration, nil
	default:
		return time.Time{}, domainerrors.ErrInvalidValidityType
	}
}
