package eligibility

// Suspension is the tracker's verdict on a fighter's medical suspension
// state. A suspension is time-bounded and self-expiring: no action is
// needed to clear it once the window has elapsed. Method carries the
// bout-ending method for derived windows, or the issuing reason for
// commission-issued ones.
type Suspension struct {
	Active bool   `json:"active"`
	Until  Date   `json:"until,omitzero"`
	Method string `json:"method,omitempty"`
}

// DominantSuspension returns the verdict that governs when both a
// bout-derived window and a commission-issued suspension are in play:
// the one ending later.
func DominantSuspension(a, b Suspension) Suspension {
	switch {
	case !a.Active:
		return b
	case !b.Active:
		return a
	case b.Until.After(a.Until):
		return b
	default:
		return a
	}
}

// LatestBout selects the bout that governs current suspension state: the
// most recently completed bout by date, with card position (descending)
// breaking ties on the same day. Returns nil for an empty slice.
func LatestBout(bouts []BoutOutcome) *BoutOutcome {
	var latest *BoutOutcome
	for i := range bouts {
		b := &bouts[i]
		if latest == nil ||
			b.Date.After(latest.Date) ||
			(b.Date.Equal(latest.Date) && b.Position > latest.Position) {
			latest = b
		}
	}
	return latest
}

// ActiveSuspension computes the suspension window implied by a fighter's
// most recent completed bout. A nil bout means no suspension. Methods the
// policy table does not model imply zero mandatory days; those lookups
// return a DataQualityWarning alongside the verdict so the caller can
// surface the miss, and the verdict itself fails open to no suspension.
func ActiveSuspension(last *BoutOutcome, asOf Date, policy SuspensionPolicy) (Suspension, *DataQualityWarning) {
	if last == nil {
		return Suspension{}, nil
	}

	days, known := policy.Lookup(last.Method)
	var warning *DataQualityWarning
	if !known {
		warning = &DataQualityWarning{Method: last.Method}
	}

	if days <= 0 {
		return Suspension{}, warning
	}

	until := last.Date.AddDays(days)
	if !asOf.Before(until) {
		return Suspension{}, warning
	}

	return Suspension{
		Active: true,
		Until:  until,
		Method: last.Method,
	}, warning
}
