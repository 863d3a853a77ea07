package controllers

import "faculty-portal/app/models"

// Catalog bundles the seven activity-category controllers so wiring
// and routing can hand them around as one unit.
type Catalog struct {
	FundedResearch *RecordController[models.FundedResearch]
	Books          *RecordController[models.Book]
	Articles       *RecordController[models.Article]
	Conferences    *RecordController[models.Conference]
	Workshops      *RecordController[models.Workshop]
	Awards         *RecordController[models.Award]
	Patents        *RecordController[models.Patent]
}
