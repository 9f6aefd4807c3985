package domain

// ReferenceKind names one of the parallel reference-data collections.
type ReferenceKind string

const (
	KindCategory      ReferenceKind = "category"
	KindPaymentMethod ReferenceKind = "paymentMethod"
	KindAmountType    ReferenceKind = "amountType"
)

// Reference is a low-cardinality lookup entity (category, payment method or
// amount type) used to classify transactions. Name is unique per user.
type Reference struct {
	ID     string `json:"id"`
	UserID string `json:"-"`
	Name   string `json:"name"`
	Status Status `json:"status"`
	AuditFields
}

// Ref is the embedded form a reference takes inside a transactional entity.
type Ref struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
