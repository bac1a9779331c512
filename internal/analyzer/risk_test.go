package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fillerWords(n int) string {
	return strings.TrimSpace(strings.Repeat("lorem ipsum dolor sit amet ", (n+4)/5))
}

func TestCalculateRiskLevel_Baseline(t *testing.T) {
	level := CalculateRiskLevel("a plain renewal clause", CategoryAutoRenewal)
	assert.Equal(t, 1, level)
}

func TestCalculateRiskLevel_KeywordEscalation(t *testing.T) {
	tests := []struct {
		name   string
		clause string
		want   int
	}{
		{"level 2", "cancellation requires notice within 30 days of the anniversary", 2},
		{"level 3", "the agreement is subject to automatic extension", 3},
		{"level 4", "the term extends without notice to the subscriber", 4},
		{"level 5 without lower levels", "renewal occurs at the sole discretion of the provider", 5},
		{"max wins over sum", "automatic extension with 30 day cancellation window", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateRiskLevel(tt.clause, CategoryAutoRenewal))
		})
	}
}

func TestCalculateRiskLevel_LengthPenalty(t *testing.T) {
	// 101-150 words add half a level; the half rounds up.
	medium := fillerWords(120)
	assert.Equal(t, 2, CalculateRiskLevel(medium, CategoryAutoRenewal))

	// Over 200 words adds a full level.
	long := fillerWords(220)
	assert.Equal(t, 2, CalculateRiskLevel(long, CategoryAutoRenewal))

	short := fillerWords(50)
	assert.Equal(t, 1, CalculateRiskLevel(short, CategoryAutoRenewal))
}

func TestCalculateRiskLevel_HalfRoundsUp(t *testing.T) {
	// Level 2 keyword plus the >100-word penalty lands on 2.5, which must
	// round to 3, never down to 2.
	clause := "notice is due within 30 days " + fillerWords(110)
	assert.Equal(t, 3, CalculateRiskLevel(clause, CategoryAutoRenewal))
}

func TestCalculateRiskLevel_CappedAtFive(t *testing.T) {
	clause := "automatically renew at the sole discretion of the provider " + fillerWords(250)
	assert.Equal(t, 5, CalculateRiskLevel(clause, CategoryAutoRenewal))
}

func TestCalculateRiskLevel_Monotonic(t *testing.T) {
	base := "the agreement is subject to automatic extension"
	longer := base + " " + fillerWords(210)

	short := CalculateRiskLevel(base, CategoryAutoRenewal)
	long := CalculateRiskLevel(longer, CategoryAutoRenewal)

	assert.GreaterOrEqual(t, long, short)
	assert.LessOrEqual(t, long, 5)
}

func TestCalculateRiskLevel_UnknownCategory(t *testing.T) {
	// Categories without a severity table keep the baseline plus length
	// penalty only.
	assert.Equal(t, 1, CalculateRiskLevel("sole discretion everywhere", Category(97)))
	assert.Equal(t, 2, CalculateRiskLevel(fillerWords(210), Category(97)))
}

func TestCalculateRiskLevel_CaseInsensitive(t *testing.T) {
	assert.Equal(t, 5, CalculateRiskLevel("SOLE DISCRETION of the provider", CategoryAutoRenewal))
}
