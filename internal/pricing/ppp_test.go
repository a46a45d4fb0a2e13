package pricing

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"lendrock/rate-quote/internal/models"
)

func init() {
	// Setup a test logger
	log = logrus.New()
	log.SetLevel(logrus.DebugLevel)
}

func TestIsPenaltyBearing(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"2 YR PPP 30yr Fixed", true},
		{"3YR PPP 30yr Fixed", true},
		{"30yr Fixed YR PPP", true},
		{"0 YR PPP 30yr Fixed", false},
		{"0YR PPP 30yr Fixed", false},
		{"0MO PPP", false},
		{"30yr Fixed", false},
		{"", false},
		{"PPP at start without space", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPenaltyBearing(tt.text))
		})
	}
}

func TestPenaltyPermitted(t *testing.T) {
	assert.True(t, PenaltyPermitted(models.OccupancyInvestment))
	assert.False(t, PenaltyPermitted(models.OccupancyPrimary))
	assert.False(t, PenaltyPermitted(models.OccupancySecondary))
}

func TestExpectedPenaltyLabel(t *testing.T) {
	tests := []struct {
		period string
		want   string
	}{
		{"5year", "5 YR PPP"},
		{"4year", "4 YR PPP"},
		{"3year", "3 YR PPP"},
		{"2year", "2 YR PPP"},
		{"1year", "1 YR PPP"},
		{"0year", "0 YR PPP"},
		{"", "3 YR PPP"},
		{"something else", "3 YR PPP"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ExpectedPenaltyLabel(tt.period))
	}
}
