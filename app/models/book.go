package models

type Book struct {
	ID                uint   `gorm:"primaryKey" json:"id"`
	TitleOfBook       string `gorm:"size:255" json:"titleOfBook"`
	Author            string `gorm:"size:255" json:"author"`
	ISBN              string `gorm:"size:20" json:"isbn"`
	YearOfPublication int    `json:"yearOfPublication"`
	ProofDoc          string `gorm:"size:255" json:"proofDoc"`
}
