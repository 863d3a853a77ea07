package controllers

import (
	"encoding/json"
	"net/http"
	"strings"

	"faculty-portal/app/dto"
	"faculty-portal/app/services"
	"faculty-portal/global"
)

// RecordController serves one activity category: POST appends a row,
// GET lists all rows newest-first. There is no update, delete or
// filtered query on any category.
type RecordController[T any] struct {
	Records *services.RecordService[T]
	// human label used in response and log messages, e.g. "workshop"
	Label string
	// getID reads the id gorm assigned on insert
	GetID func(*T) uint
}

func NewRecordController[T any](records *services.RecordService[T], label string, getID func(*T) uint) *RecordController[T] {
	return &RecordController[T]{Records: records, Label: label, GetID: getID}
}

// Handle dispatches the category route; anything but POST/GET is 405.
func (c *RecordController[T]) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		c.Post(w, r)
	case http.MethodGet:
		c.Get(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// Post stores the submitted field tuple verbatim. Absent fields stay
// absent; the catalog does not second-guess the caller.
func (c *RecordController[T]) Post(w http.ResponseWriter, r *http.Request) {
	var rec T
	_ = json.NewDecoder(r.Body).Decode(&rec)
	if err := c.Records.Create(&rec); err != nil {
		global.Logger.Error().Err(err).Str("category", c.Label).Msg("record insert failed")
		writeError(w, http.StatusInternalServerError, "Failed to save "+c.Label)
		return
	}
	writeJSON(w, http.StatusOK, dto.CreatedResponse{Message: capitalize(c.Label) + " saved successfully", ID: c.GetID(&rec)})
}

func (c *RecordController[T]) Get(w http.ResponseWriter, r *http.Request) {
	recs, err := c.Records.List()
	if err != nil {
		global.Logger.Error().Err(err).Str("category", c.Label).Msg("record list failed")
		writeError(w, http.StatusInternalServerError, "Failed to fetch "+c.Label+" records")
		return
	}
	writeJSON(w, http.StatusOK, recs)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
