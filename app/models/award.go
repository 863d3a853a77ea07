package models

// Award is the only category without a proof document field.
type Award struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Title  string `gorm:"size:255" json:"title"`
	Agency string `gorm:"size:255" json:"agency"`
	Place  string `gorm:"size:255" json:"place"`
	Date   string `gorm:"size:10" json:"date"`
	Type   string `gorm:"size:50" json:"type"`
}
