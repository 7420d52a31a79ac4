package platform

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/k5aq/adifcount/pkg/core"
)

var validate = validator.New()

type dateQuery struct {
	Date string `validate:"len=8,numeric,datetime=20060102"`
}

// ResolveDate returns the query date for arg.
// An empty arg means today in loc. Otherwise arg must be a valid YYYYMMDD day.
func ResolveDate(arg string, now time.Time, loc *time.Location) (string, error) {
	if loc == nil {
		loc = time.UTC
	}
	if arg == "" {
		return now.In(loc).Format(core.DateLayout), nil
	}

	if err := validate.Struct(dateQuery{Date: arg}); err != nil {
		return "", fmt.Errorf("%w: %q", core.ErrInvalidDate, arg)
	}
	return arg, nil
}
