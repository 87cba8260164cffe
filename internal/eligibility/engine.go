package eligibility

import "fmt"

// Input carries everything Evaluate needs: the fighter summary, its full
// document set, the jurisdiction's required-document checklist, the
// suspension tracker's verdict, and an explicit as-of date.
type Input struct {
	Fighter    FighterEvidence
	Documents  []DocumentEvidence
	Required   []DocumentType
	Suspension Suspension
	AsOf       Date

	// ExpiringSoonDays is the conditional-status lookahead window.
	// Zero means DefaultExpiringSoonDays.
	ExpiringSoonDays int
}

// Result is the engine's verdict: the derived status and an ordered list
// of blocking reasons. Reasons are empty only for an eligible verdict.
type Result struct {
	Status  Status   `json:"status"`
	Reasons []string `json:"reasons"`
}

// Evaluate derives a fighter's eligibility status from its evidence.
// Rules apply in strict priority order so outcomes are deterministic:
//
//  1. An active suspension always dominates, regardless of document
//     completeness.
//  2. A rejected fighter verification, or a rejection on any required
//     document with no verified re-upload of the same type, escalates to
//     under_review; a rejection alone is never a terminal negative, it
//     pends a human decision.
//  3. Required documents are then checked in checklist order: any type
//     with no verified document at all makes the fighter incomplete; else
//     any expired classification makes it expired; else any expiring-soon
//     classification makes it conditional.
//  4. Otherwise the fighter is eligible with no reasons.
//
// A checklist entry outside the known document-type vocabulary returns a
// ConfigurationError; the evaluation never silently defaults. The function
// is pure and total over well-formed inputs.
func Evaluate(in Input) (Result, error) {
	threshold := in.ExpiringSoonDays
	if threshold == 0 {
		threshold = DefaultExpiringSoonDays
	}

	for _, required := range in.Required {
		if !KnownDocumentType(required) {
			return Result{}, &ConfigurationError{
				Detail: fmt.Sprintf("required checklist references unknown document type %q", required),
			}
		}
	}

	if in.Suspension.Active {
		return Result{
			Status: StatusSuspended,
			Reasons: []string{fmt.Sprintf(
				"medical suspension (%s) until %s",
				in.Suspension.Method,
				in.Suspension.Until,
			)},
		}, nil
	}

	if reasons := reviewReasons(in); len(reasons) > 0 {
		return Result{Status: StatusUnderReview, Reasons: reasons}, nil
	}

	var (
		missing  []string
		expired  []string
		expiring []string
	)

	for _, required := range in.Required {
		doc, ok := verifiedDocument(in.Documents, required)
		if !ok {
			missing = append(missing, string(required))
			continue
		}

		switch ClassifyFreshness(doc, in.AsOf, threshold) {
		case FreshnessExpired:
			expired = append(expired, string(required))
		case FreshnessExpiringSoon:
			expiring = append(expiring, fmt.Sprintf(
				"%s: %d days remaining",
				required,
				doc.ExpirationDate.DaysUntil(in.AsOf),
			))
		}
	}

	switch {
	case len(missing) > 0:
		return Result{Status: StatusIncomplete, Reasons: missing}, nil
	case len(expired) > 0:
		return Result{Status: StatusExpired, Reasons: expired}, nil
	case len(expiring) > 0:
		return Result{Status: StatusConditional, Reasons: expiring}, nil
	default:
		return Result{Status: StatusEligible, Reasons: []string{}}, nil
	}
}

func reviewReasons(in Input) []string {
	var reasons []string

	if in.Fighter.VerificationStatus == VerificationRejected {
		reasons = append(reasons, "fighter verification rejected")
	}

	for _, required := range in.Required {
		// A verified re-upload of the same type cures an earlier
		// rejection; the rejection only blocks while it stands alone.
		if _, ok := verifiedDocument(in.Documents, required); ok {
			continue
		}
		for _, doc := range in.Documents {
			if doc.Type == required && doc.Status == DocumentRejected {
				reasons = append(reasons, fmt.Sprintf("%s rejected", required))
				break
			}
		}
	}

	return reasons
}

// verifiedDocument returns the verified document satisfying a required
// type. When multiple verified documents share a type, an always-valid
// document (no expiration date) wins, otherwise the one expiring last;
// re-uploads supersede older artifacts.
func verifiedDocument(docs []DocumentEvidence, required DocumentType) (DocumentEvidence, bool) {
	var (
		best  DocumentEvidence
		found bool
	)

	for _, doc := range docs {
		if doc.Type != required || doc.Status != DocumentVerified {
			continue
		}
		if !found {
			best, found = doc, true
			continue
		}
		if best.ExpirationDate == nil {
			continue
		}
		if doc.ExpirationDate == nil || doc.ExpirationDate.After(*best.ExpirationDate) {
			best = doc
		}
	}

	return best, found
}
