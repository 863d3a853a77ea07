package models

type Conference struct {
	ID                uint   `gorm:"primaryKey" json:"id"`
	Title             string `gorm:"size:255" json:"title"`
	Authors           string `gorm:"size:500" json:"authors"`
	Date              string `gorm:"size:10" json:"date"`
	ConferenceName    string `gorm:"size:255" json:"conferenceName"`
	PlaceOfConference string `gorm:"size:255" json:"placeOfConference"`
	ProofDoc          string `gorm:"size:255" json:"proofDoc"`
}
