package negotiation

// Disclosure policy: before a match, each party gets a direction-only
// signal and never the other party's figures. The offered employer range
// is intentionally disclosed to the candidate while a submission is
// pending; everything else stays on its own side of the boundary.

// EmployerDisclosure is what the employer may see for a given status.
type EmployerDisclosure struct {
	Status        Status
	Message       string
	MatchedSalary *int64
}

// CandidateDisclosure is what the candidate may see for a given status.
// ShowOfferedRange gates the employer range in the candidate-facing view.
type CandidateDisclosure struct {
	Status           Status
	Message          string
	ShowOfferedRange bool
	MatchedSalary    *int64
}

// DiscloseToEmployer renders the employer-side view of an outcome.
// matchedSalary is only consulted when st is StatusMatched.
func DiscloseToEmployer(st Status, matchedSalary int64) EmployerDisclosure {
	d := EmployerDisclosure{Status: st}
	switch st {
	case StatusNone:
		d.Message = "range offer not sent yet"
	case StatusPendingCandidate:
		d.Message = "awaiting candidate response"
	case StatusMatched:
		d.Message = "ranges matched"
		v := matchedSalary
		d.MatchedSalary = &v
	case StatusNoMatchLow:
		d.Message = "your offer may be too low relative to candidate expectations"
	case StatusNoMatchHigh:
		d.Message = "your offer may be too high relative to candidate expectations"
	}
	return d
}

// DiscloseToCandidate renders the candidate-side view of an outcome.
// matchedSalary is only consulted when st is StatusMatched.
func DiscloseToCandidate(st Status, matchedSalary int64) CandidateDisclosure {
	d := CandidateDisclosure{Status: st}
	switch st {
	case StatusPendingCandidate:
		d.Message = "review the offered range and submit your own"
		d.ShowOfferedRange = true
	case StatusMatched:
		d.Message = "ranges matched"
		v := matchedSalary
		d.MatchedSalary = &v
	case StatusNoMatchLow, StatusNoMatchHigh:
		d.Message = "your range did not overlap with the employer's"
	}
	return d
}
