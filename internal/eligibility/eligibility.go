// Package eligibility implements the eligibility determination engine for
// Ringside. It combines a fighter's verified document set, jurisdiction
// policy tables, and medical suspension state into a single derived
// eligibility verdict with supporting reasons. The decision core is pure:
// every operation takes an explicit as-of date and has no side effects, so
// repeated evaluation with identical inputs is idempotent.
package eligibility

// Status is the derived compliance verdict for a fighter. It is always the
// output of Evaluate, never set directly by a caller.
type Status string

const (
	StatusEligible    Status = "eligible"
	StatusConditional Status = "conditional"
	StatusIncomplete  Status = "incomplete"
	StatusExpired     Status = "expired"
	StatusUnderReview Status = "under_review"
	StatusSuspended   Status = "suspended"
)

// VerificationStatus tracks identity review state for a fighter.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

// DocumentType identifies a kind of medical or licensing artifact.
type DocumentType string

const (
	DocBloodTest DocumentType = "blood_test"
	DocPhysical  DocumentType = "physical"
	DocEyeExam   DocumentType = "eye_exam"
	DocMRI       DocumentType = "mri"
	DocEKG       DocumentType = "ekg"
	DocDrugTest  DocumentType = "drug_test"
	DocLicense   DocumentType = "license"
	DocInsurance DocumentType = "insurance"
	DocOther     DocumentType = "other"
)

// DocumentTypes lists every known document type.
var DocumentTypes = []DocumentType{
	DocBloodTest,
	DocPhysical,
	DocEyeExam,
	DocMRI,
	DocEKG,
	DocDrugTest,
	DocLicense,
	DocInsurance,
	DocOther,
}

// KnownDocumentType reports whether t is a member of the fixed vocabulary.
func KnownDocumentType(t DocumentType) bool {
	for _, known := range DocumentTypes {
		if t == known {
			return true
		}
	}
	return false
}

// DocumentStatus tracks a document through its verification lifecycle.
// Only verified documents count toward eligibility. The expired state is
// computed on read from the expiration date, never stored by the engine.
type DocumentStatus string

const (
	DocumentPending    DocumentStatus = "pending"
	DocumentProcessing DocumentStatus = "processing"
	DocumentVerified   DocumentStatus = "verified"
	DocumentRejected   DocumentStatus = "rejected"
	DocumentExpired    DocumentStatus = "expired"
)

// DocumentEvidence is the engine's view of a single document: the minimum
// the rule set needs to classify freshness and satisfy a requirement.
type DocumentEvidence struct {
	Type           DocumentType
	Status         DocumentStatus
	ExpirationDate *Date
}

// FighterEvidence is the engine's view of the fighter under evaluation.
type FighterEvidence struct {
	VerificationStatus VerificationStatus
}

// BoutOutcome is the engine's view of a completed bout: when it happened,
// where it sat on the card, and how it ended.
type BoutOutcome struct {
	Date     Date
	Position int
	Method   string
}
