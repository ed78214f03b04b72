package analysis

const (
	curveSamples = 10
	curveStart   = 0.1
	curveStop    = 1.0
)

// RiskProfile describes a fixed trading setup. WinRate is carried for display
// only; the profitability curve sweeps the win rate itself.
type RiskProfile struct {
	WinRate     float64 `json:"win_rate"`
	RewardRatio float64 `json:"reward_ratio"`
}

type ProfitabilityPoint struct {
	WinRate       float64 `json:"win_rate"`
	ExpectedValue float64 `json:"expected_value"`
}

// ProfitabilityCurve returns the expected value per unit risked,
// w*R - (1-w), for ten evenly spaced win rates w from 0.1 to 1.0 inclusive.
func ProfitabilityCurve(profile RiskProfile) []ProfitabilityPoint {
	step := (curveStop - curveStart) / float64(curveSamples-1)
	curve := make([]ProfitabilityPoint, 0, curveSamples)
	for i := 0; i < curveSamples; i++ {
		w := curveStart + float64(i)*step
		if i == curveSamples-1 {
			w = curveStop
		}
		curve = append(curve, ProfitabilityPoint{
			WinRate:       w,
			ExpectedValue: w*profile.RewardRatio - (1 - w),
		})
	}
	return curve
}

// BreakEvenWinRate is the win rate at which the expected value is zero.
func BreakEvenWinRate(rewardRatio float64) float64 {
	return 1 / (1 + rewardRatio)
}
