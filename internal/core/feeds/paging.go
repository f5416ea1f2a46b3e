package feeds

import (
	"math"
	"strconv"
	"strings"
)

// MaxLimitPerPage bounds a single page of any feed or tag listing
const MaxLimitPerPage = 100

// ValidatePage checks that both pagination parameters are strictly positive,
// that limitPerPage does not exceed MaxLimitPerPage, and that the resulting
// offset fits in an int.
func ValidatePage(pageNumber, limitPerPage int) error {
	if pageNumber < 1 {
		return NewValidationError("pageNumber", "pageNumber must be a positive integer")
	}
	if limitPerPage < 1 {
		return NewValidationError("limitPerPage", "limitPerPage must be a positive integer")
	}
	if limitPerPage > MaxLimitPerPage {
		return NewValidationError("limitPerPage", "limitPerPage must not exceed "+strconv.Itoa(MaxLimitPerPage))
	}
	if pageNumber-1 > math.MaxInt/limitPerPage {
		return NewValidationError("pageNumber", "pageNumber is too large")
	}
	return nil
}

// ParsePageParams parses pagination path segments. Missing, non-numeric,
// zero and negative values are all validation errors.
func ParsePageParams(pageNumber, limitPerPage string) (int, int, error) {
	page, err := strconv.Atoi(strings.TrimSpace(pageNumber))
	if err != nil {
		return 0, 0, NewValidationError("pageNumber", "pageNumber must be a positive integer")
	}
	limit, err := strconv.Atoi(strings.TrimSpace(limitPerPage))
	if err != nil {
		return 0, 0, NewValidationError("limitPerPage", "limitPerPage must be a positive integer")
	}
	if err := ValidatePage(page, limit); err != nil {
		return 0, 0, err
	}
	return page, limit, nil
}
