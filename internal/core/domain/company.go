package domain

// Company represents an isolated tenant containing projects, staff and ledgers.
type Company struct {
	CompanyID   string `json:"companyID"` // Primary Key (UUID)
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
	AuditFields
}
