package eligibility

// Freshness classifies a document's validity relative to its expiration
// date and a lookahead threshold.
type Freshness string

const (
	FreshnessValid         Freshness = "valid"
	FreshnessExpiringSoon  Freshness = "expiring_soon"
	FreshnessExpired       Freshness = "expired"
	FreshnessNotApplicable Freshness = "not_applicable"
)

// ClassifyFreshness evaluates a document against an as-of date. Documents
// that are not verified never classify: they cannot satisfy a requirement
// regardless of their dates. Verified documents without an expiration date
// are treated as always valid once verified, per policy, and also return
// not applicable. A document expiring exactly on asOf is not yet expired
// but counts as expiring soon.
//
// The classification is a pure function of (doc, asOf, thresholdDays);
// there is no hidden clock.
func ClassifyFreshness(doc DocumentEvidence, asOf Date, thresholdDays int) Freshness {
	if doc.Status != DocumentVerified || doc.ExpirationDate == nil {
		return FreshnessNotApplicable
	}

	remaining := doc.ExpirationDate.DaysUntil(asOf)
	switch {
	case remaining < 0:
		return FreshnessExpired
	case remaining <= thresholdDays:
		return FreshnessExpiringSoon
	default:
		return FreshnessValid
	}
}
