package pcos

// Rule-score thresholds. Computed from raw inputs, independent of the
// trained classifiers, and reproducible for the same request.
const (
	cycleWeight       = 2
	ultrasoundWeight  = 2
	follicleThreshold = 10
	bmiThreshold      = 25
	overrideThreshold = 4
	maxRuleScore      = 9
	minPositiveRisk   = 30
)

func ruleScore(in Input) Breakdown {
	var b Breakdown

	if !in.CycleRegular {
		b.CycleScore = cycleWeight
	}

	for _, flag := range []bool{in.HairGrowth, in.SkinDarkening, in.HairLoss, in.Pimples} {
		if flag {
			b.HormonalScore++
		}
	}

	if in.FollicleLeft+in.FollicleRight >= follicleThreshold {
		b.UltrasoundScore = ultrasoundWeight
	}

	if in.BMI >= bmiThreshold {
		b.MetabolicScore = 1
	}

	return b
}

// severityForRisk buckets a positive-verdict risk percentage. Boundaries are
// half-open: [30,50) Low, [50,70) Medium, 70 and above High.
func severityForRisk(risk int) string {
	switch {
	case risk < 50:
		return SeverityLow
	case risk < 70:
		return SeverityMedium
	default:
		return SeverityHigh
	}
}
