package trend

import "github.com/swarmops/swarmsre/pkg/models"

// FusionMethod is recorded on trends produced by Fuse.
const FusionMethod = "priority_weighted"

// StateConfidence is one (state, confidence) input to fusion.
type StateConfidence struct {
	State      models.TrendState
	Confidence float64
}

// Fuse combines per-metric trends by priority: the fused state is the
// highest-priority state present (DEGRADING > RECOVERING > STABLE >
// UNKNOWN) and the fused confidence weights matching trends at 0.7 and the
// rest at 0.3, renormalized when either side is empty. Empty input yields
// (UNKNOWN, 0).
func Fuse(trends []StateConfidence) (models.TrendState, float64) {
	if len(trends) == 0 {
		return models.TrendUnknown, 0
	}

	fused := trends[0].State
	for _, t := range trends[1:] {
		if t.State > fused {
			fused = t.State
		}
	}

	var matching, other []float64
	for _, t := range trends {
		if t.State == fused {
			matching = append(matching, t.Confidence)
		} else {
			other = append(other, t.Confidence)
		}
	}

	matchingWeight, otherWeight := 0.0, 0.0
	matchingAvg, otherAvg := 0.0, 0.0
	if len(matching) > 0 {
		matchingWeight = 0.7
		matchingAvg = average(matching)
	}
	if len(other) > 0 {
		otherWeight = 0.3
		otherAvg = average(other)
	}

	total := matchingWeight + otherWeight
	if total == 0 {
		return fused, 0
	}
	confidence := matchingAvg*(matchingWeight/total) + otherAvg*(otherWeight/total)
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}
	return fused, confidence
}

// FuseTrends is Fuse over full MetricTrend values.
func FuseTrends(trends map[string]models.MetricTrend) (models.TrendState, float64) {
	inputs := make([]StateConfidence, 0, len(trends))
	for _, t := range trends {
		inputs = append(inputs, StateConfidence{State: t.State, Confidence: t.Confidence})
	}
	return Fuse(inputs)
}

func average(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
