package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ScarMeireles/JuntosMais/internal/domain"
)

func TestProgressPercent(t *testing.T) {
	tests := []struct {
		name   string
		raised string
		target string
		want   float64
	}{
		{"quarter", "25", "100", 25},
		{"exactly full", "100", "100", 100},
		{"overfunded clamps to 100", "150", "100", 100},
		{"zero target", "50", "0", 0},
		{"negative target", "50", "-10", 0},
		{"nothing raised", "0", "100", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := domain.Campaign{
				TargetAmount: decimal.RequireFromString(tt.target),
				AmountRaised: decimal.RequireFromString(tt.raised),
			}
			assert.InDelta(t, tt.want, c.ProgressPercent(), 0.0001)
		})
	}
}
