package game

import "math"

// Score totals the won scenes. Each contributes its completion score, minus
// the attempt reduction for every attempt after the first, plus the gas bonus
// scaled by the fraction of fuel left when it was won. The total never drops
// below zero. gasBonus is the sum of the fuel bonuses alone.
func (g *Game) Score() (total, gasBonus float64) {
	for _, s := range g.scenes {
		if !s.Won {
			continue
		}
		extra := math.Max(0, float64(s.Attempts-1))
		bonus := 0.0
		if initial := s.Spacecraft.InitialGas; initial > 0 {
			bonus = s.FuelAtWin / initial * s.GasBonus
		}
		total += s.CompletionScore - extra*s.AttemptReduction + bonus
		gasBonus += bonus
	}
	return math.Max(0, total), gasBonus
}
