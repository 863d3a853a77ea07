package models

type Article struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	TitleOfArticle   string `gorm:"size:255" json:"titleOfArticle"`
	AuthorsCoAuthors string `gorm:"size:500" json:"authorsCoAuthors"`
	IndexingAgency   string `gorm:"size:255" json:"indexingAgency"`
	PublicationName  string `gorm:"size:255" json:"publicationName"`
	ISSN             string `gorm:"size:20" json:"issn"`
	PublicationDate  string `gorm:"size:10" json:"publicationDate"`
	DocProof         string `gorm:"size:255" json:"docProof"`
}
