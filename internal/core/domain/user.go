package domain

// AuthProvider identifies how a user authenticates.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "local"
	ProviderGoogle AuthProvider = "google"
)

// BankDetails is the free-form payout information shown on the profile page.
type BankDetails struct {
	AccountNumber string `json:"accountNumber,omitempty"`
	IFSC          string `json:"ifsc,omitempty"`
	BankName      string `json:"bankName,omitempty"`
}

// User is an authenticated owner of all other entities.
type User struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Email          string       `json:"email"`
	PasswordHash   string       `json:"-"`
	Phone          string       `json:"phone,omitempty"`
	UPIID          string       `json:"upiId,omitempty"`
	BankDetails    BankDetails  `json:"bankDetails"`
	QRCodePath     string       `json:"qrcode,omitempty"`
	AuthProvider   AuthProvider `json:"-"`
	ProviderUserID string       `json:"-"`
	AuditFields
}
