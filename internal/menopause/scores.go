package menopause

// breakdownScores computes the four explanatory sub-scores from raw inputs.
// The stage decision never consults these; they exist to make the
// classifier's verdict legible to the caller.
func breakdownScores(in Input) Breakdown {
	return Breakdown{
		AgeScore:     ageScore(in.Age),
		HormoneScore: hormoneScore(in.FSHLevel, in.EstrogenLevel),
		SymptomScore: symptomScore(in),
		PeriodScore:  periodScore(in.YearsSincePeriod),
	}
}

func ageScore(age int) int {
	switch {
	case age >= 55:
		return 4
	case age >= 50:
		return 3
	case age >= 45:
		return 2
	case age >= 40:
		return 1
	default:
		return 0
	}
}

func hormoneScore(fsh, estrogen float64) int {
	score := 0

	if fsh >= 40 {
		score += 2
	} else if fsh >= 25 {
		score++
	}

	if estrogen <= 30 {
		score += 2
	} else if estrogen <= 50 {
		score++
	}

	return score
}

// symptomScore sums the integer-coded symptom fields. Callers are expected
// to send 0/1 codes; the sum is intentionally not capped.
func symptomScore(in Input) int {
	return in.IrregularPeriods +
		in.MissedPeriods +
		in.HotFlashes +
		in.NightSweats +
		in.SleepProblems +
		in.VaginalDryness +
		in.JointPain
}

func periodScore(years float64) int {
	switch {
	case years >= 2:
		return 4
	case years >= 1:
		return 3
	case years >= 0.5:
		return 2
	case years > 0:
		return 1
	default:
		return 0
	}
}
