package models

// Employer is the profile document for a company account.
type Employer struct {
	Id          string `gorm:"column:id;primaryKey" json:"id"`
	CompanyName string `json:"companyName"`
	Email       string `json:"email,omitempty"`
}
