package models

type Workshop struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Title     string `gorm:"size:255" json:"title"`
	Location  string `gorm:"size:255" json:"location"`
	StartDate string `gorm:"size:10" json:"startDate"`
	EndDate   string `gorm:"size:10" json:"endDate"`
	NoOfDays  int    `json:"noOfDays"`
	ProofDoc  string `gorm:"size:255" json:"proofDoc"`
}
