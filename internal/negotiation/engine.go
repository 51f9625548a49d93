package negotiation

// Outcome is the result of matching an employer range against a candidate
// range. MatchedSalary is meaningful only when Result is StatusMatched.
type Outcome struct {
	Result        Status
	MatchedSalary int64
}

// Match computes the overlap outcome for one negotiation round. It is a
// pure function: no side effects, identical inputs always yield identical
// results. Both ranges must already be validated.
//
// The intersection of the two closed intervals is
// [max(e.Min, c.Min), min(e.Max, c.Max)]. A non-empty intersection
// (including a single touching point) is a match at the intersection
// midpoint, rounded half-up in minor units. When the intervals are
// disjoint, the direction describes the employer's offer relative to the
// candidate's expectations: a candidate range entirely above the
// employer's means the offer was too low, and vice versa.
func Match(employer, candidate Range) Outcome {
	lower := max(employer.Min, candidate.Min)
	upper := min(employer.Max, candidate.Max)

	if lower <= upper {
		return Outcome{Result: StatusMatched, MatchedSalary: midpointHalfUp(lower, upper)}
	}
	if candidate.Min > employer.Max {
		return Outcome{Result: StatusNoMatchLow}
	}
	return Outcome{Result: StatusNoMatchHigh}
}

// midpointHalfUp returns (lo+hi)/2 rounded half-up. Bounds are positive
// minor-unit amounts, so the sum cannot overflow int64 for any realistic
// salary.
func midpointHalfUp(lo, hi int64) int64 {
	sum := lo + hi
	if sum%2 != 0 {
		return sum/2 + 1
	}
	return sum / 2
}
