package eligibility

import "fmt"

// DefaultExpiringSoonDays is the lookahead window for flagging documents
// that will lapse shortly.
const DefaultExpiringSoonDays = 30

// ExpirationPolicy maps a document type to its validity duration in days.
// Commissions may override the defaults per jurisdiction; the tables are
// injected into the systems that consume them, never read from globals.
type ExpirationPolicy map[DocumentType]int

// DefaultExpirationPolicy returns the baseline validity table.
// Blood work turns over every six months, drug screens every ninety days,
// everything else annually.
func DefaultExpirationPolicy() ExpirationPolicy {
	return ExpirationPolicy{
		DocBloodTest: 180,
		DocPhysical:  365,
		DocEyeExam:   365,
		DocMRI:       365,
		DocEKG:       365,
		DocDrugTest:  90,
		DocLicense:   365,
		DocInsurance: 365,
		DocOther:     365,
	}
}

// ValidityDays returns the validity duration for a document type.
// Unknown types are a configuration fault, never silently defaulted.
func (p ExpirationPolicy) ValidityDays(t DocumentType) (int, error) {
	days, ok := p[t]
	if !ok {
		return 0, &ConfigurationError{Detail: fmt.Sprintf("no expiration policy for document type %q", t)}
	}
	return days, nil
}

// SuspensionPolicy maps a bout-loss method to a mandatory medical
// suspension duration in days. Methods absent from the table carry no
// mandatory suspension.
type SuspensionPolicy map[string]int

// Bout result methods with mandated suspension windows.
const (
	MethodKnockoutLoss   = "knockout_loss"
	MethodTKOLoss        = "tko_loss"
	MethodSubmissionLoss = "submission_loss"
	MethodDecisionLoss   = "decision_loss"
)

// DefaultSuspensionPolicy returns the baseline suspension table. Non-loss
// outcomes are modeled explicitly at zero days so routine wins and draws
// do not register as data-quality misses.
func DefaultSuspensionPolicy() SuspensionPolicy {
	return SuspensionPolicy{
		MethodKnockoutLoss:   30,
		MethodTKOLoss:        21,
		MethodSubmissionLoss: 14,
		MethodDecisionLoss:   7,
		"knockout_win":       0,
		"tko_win":            0,
		"submission_win":     0,
		"decision_win":       0,
		"draw":               0,
		"no_contest":         0,
	}
}

// Lookup returns the suspension days for a bout-ending method and whether
// the method is modeled in the table.
func (p SuspensionPolicy) Lookup(method string) (days int, known bool) {
	days, known = p[method]
	return days, known
}

// Policies bundles the jurisdiction-specific rule tables consumed by the
// engine and its evaluators.
type Policies struct {
	Expiration       ExpirationPolicy
	Suspension       SuspensionPolicy
	ExpiringSoonDays int
}

// DefaultPolicies returns the baseline policy bundle.
func DefaultPolicies() Policies {
	return Policies{
		Expiration:       DefaultExpirationPolicy(),
		Suspension:       DefaultSuspensionPolicy(),
		ExpiringSoonDays: DefaultExpiringSoonDays,
	}
}
