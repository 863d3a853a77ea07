package models

type FundedResearch struct {
	ID                    uint    `gorm:"primaryKey" json:"id"`
	TitleOfFund           string  `gorm:"size:255" json:"titleOfFund"`
	DateReceived          string  `gorm:"size:10" json:"dateReceived"`
	PrincipalInvestigator string  `gorm:"size:255" json:"principalInvestigator"`
	CoInvestigator        string  `gorm:"size:255" json:"coInvestigator"`
	AmountReceived        float64 `json:"amountReceived"`
	FundingAgencyName     string  `gorm:"size:255" json:"fundingAgencyName"`
	GrantType             string  `gorm:"size:100" json:"grantType"`
	DocumentProof         string  `gorm:"size:255" json:"documentProof"`
}
