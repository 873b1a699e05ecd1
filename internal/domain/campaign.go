package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Campaign is a fundraising initiative run by an organization. It is
// read-only from this front end's perspective except for creation; the
// backend owns its lifecycle.
type Campaign struct {
	ID           int64
	Name         string
	Category     string
	Description  string
	Location     string
	Website      string
	Phone        string
	Email        string
	Verified     bool
	Rating       float64
	TargetAmount decimal.Decimal
	AmountRaised decimal.Decimal
	EndDate      *time.Time
}

// ProgressPercent returns how far the campaign is towards its target, in
// percent, clamped to [0, 100]. A campaign without a positive target reports
// zero so callers never divide by zero.
func (c Campaign) ProgressPercent() float64 {
	if !c.TargetAmount.IsPositive() {
		return 0
	}
	pct, _ := c.AmountRaised.
		Div(c.TargetAmount).
		Mul(decimal.NewFromInt(100)).
		Float64()
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
