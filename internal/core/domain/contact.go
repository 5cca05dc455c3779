package domain

// ContactType classifies a contact's relationship to the organization.
type ContactType string

const (
	ContactCustomer ContactType = "customer"
	ContactSupplier ContactType = "supplier"
	ContactEmployee ContactType = "employee"
)

// IsValid reports whether the type is one of the permitted values.
func (t ContactType) IsValid() bool {
	switch t {
	case ContactCustomer, ContactSupplier, ContactEmployee:
		return true
	}
	return false
}

// Contact is a customer, supplier or employee an organization does business
// with. Invoices reference contacts.
type Contact struct {
	ContactID      string      `json:"contactID"` // Primary key (UUID)
	OrganizationID string      `json:"organizationID"`
	Name           string      `json:"name"`
	Type           ContactType `json:"type"`
	Email          string      `json:"email"`
	Phone          string      `json:"phone"`
	Address        string      `json:"address"`
	IsActive       bool        `json:"isActive"`
	AuditFields
}
