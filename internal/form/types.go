package form

import "frizo/offering_engine/internal/common"

// InvestorProfile step 1: who is investing
type InvestorProfile struct {
	FirstName    string `json:"firstName" validate:"required,max=50"`
	LastName     string `json:"lastName" validate:"required,max=50"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required,min=10,phone"`
	IsAccredited bool   `json:"isAccredited"`
	ConsentGiven bool   `json:"consentGiven" validate:"eq=true"`
}

// Address shared by every investor type and the joint co-investor
type Address struct {
	StreetAddress string `json:"streetAddress" validate:"required"`
	ApartmentUnit string `json:"apartmentUnit,omitempty"`
	City          string `json:"city" validate:"required"`
	ZipCode       string `json:"zipCode" validate:"required,min=5"`
	State         string `json:"state" validate:"required"`
	Country       string `json:"country" validate:"required"`
}

// SecondInvestor co-owner on a joint account
type SecondInvestor struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Address
	DateOfBirth string `json:"dateOfBirth" validate:"required"`
	TinOrSSN    string `json:"tinOrSSN" validate:"required,min=9"`
}

// InvestorInformation step 3: registration details, fields in use depend on Type
type InvestorInformation struct {
	Type common.InvestorType `json:"type"`
	Address

	// individual, joint, ira
	DateOfBirth string `json:"dateOfBirth,omitempty"`
	TinOrSSN    string `json:"tinOrSSN,omitempty"`

	// joint
	JointHoldingType string          `json:"jointHoldingType,omitempty"`
	SecondInvestor   *SecondInvestor `json:"secondInvestor,omitempty"`

	// corporation, trust
	EntityName          string `json:"entityName,omitempty"`
	EntityType          string `json:"entityType,omitempty"`
	TaxID               string `json:"taxId,omitempty"`
	AuthorizedSignatory string `json:"authorizedSignatory,omitempty"`

	// ira
	CustodianName string `json:"custodianName,omitempty"`
	AccountNumber string `json:"accountNumber,omitempty"`
	IRAType       string `json:"iraType,omitempty"`
}

// clone deep copy, the state never shares the caller's SecondInvestor
func (i InvestorInformation) clone() InvestorInformation {
	if i.SecondInvestor != nil {
		second := *i.SecondInvestor
		i.SecondInvestor = &second
	}
	return i
}
