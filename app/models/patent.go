package models

type Patent struct {
	ID                 uint   `gorm:"primaryKey" json:"id"`
	Title              string `gorm:"size:255" json:"title"`
	ApplicantsAuthors  string `gorm:"size:500" json:"applicantsAuthors"`
	Status             string `gorm:"size:50" json:"status"`
	TypeOfPatent       string `gorm:"size:100" json:"typeOfPatent"`
	PublicationNumbers string `gorm:"size:100" json:"publicationNumbers"`
	FilingDate         string `gorm:"size:10" json:"filingDate"`
	AcceptedDate       string `gorm:"size:10" json:"acceptedDate"`
	ProofDoc           string `gorm:"size:255" json:"proofDoc"`
}
