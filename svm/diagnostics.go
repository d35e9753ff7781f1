package svm

// sign collapses a decision value or label to ±1; zero counts as negative,
// so a decision of exactly 0 disagrees with a +1 label.
func sign(x float64) int {
	if x > 0 {
		return 1
	}

	return -1
}

// ComputeDiagnostics refreshes the confusion counts and error totals for
// both splits from the current α and b. Called once after training and on
// verbose progress ticks during it.
//
// Complexity: O((TrainingCount+TestCount) · support vectors).
func (m *Model) ComputeDiagnostics() Diagnostics {
	var d Diagnostics

	// Training split.
	for i := 0; i < m.TrainingCount; i++ {
		predicted := sign(m.Decision(i))
		actual := int(m.Labels[i])
		if predicted != actual {
			d.TrainErrCount++
			if actual == 1 {
				d.Train.FN++
			} else {
				d.Train.FP++
			}
		} else {
			if actual == 1 {
				d.Train.TP++
			} else {
				d.Train.TN++
			}
		}
	}

	// Test split: exemplars TrainingCount..TrainingCount+TestCount-1.
	total := m.TrainingCount + m.TestCount
	for i := m.TrainingCount; i < total; i++ {
		predicted := sign(m.Decision(i))
		actual := int(m.Labels[i])
		if predicted != actual {
			d.TestErrCount++
			if actual == 1 {
				d.Test.FN++
			} else {
				d.Test.FP++
			}
		} else {
			if actual == 1 {
				d.Test.TP++
			} else {
				d.Test.TN++
			}
		}
	}

	m.diag = d

	return d
}
