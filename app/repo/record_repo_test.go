package repo

import (
	"path/filepath"
	"testing"

	"faculty-portal/app/db"
	"faculty-portal/app/models"
	"faculty-portal/config"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := db.Connect(config.DB{Driver: "sqlite", Path: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))
	return gdb
}

func TestAwardsListNewestFirst(t *testing.T) {
	r := NewRecordRepository[models.Award](newTestDB(t), "date")

	require.NoError(t, r.Create(&models.Award{Title: "Best Research Paper Award", Agency: "IEEE", Date: "2024-09-15"}))
	require.NoError(t, r.Create(&models.Award{Title: "Excellence in Teaching", Agency: "UGC", Date: "2024-10-20"}))

	got, err := r.List()
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "Excellence in Teaching", got[0].Title)
	require.Equal(t, "Best Research Paper Award", got[1].Title)
}

func TestListTieBreaksByInsertionOrder(t *testing.T) {
	r := NewRecordRepository[models.Conference](newTestDB(t), "date")

	for _, title := range []string{"first", "second", "third"} {
		require.NoError(t, r.Create(&models.Conference{Title: title, Date: "2024-05-20"}))
	}

	got, err := r.List()
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, "first", got[0].Title)
	require.Equal(t, "second", got[1].Title)
	require.Equal(t, "third", got[2].Title)
	require.Less(t, got[0].ID, got[1].ID)
	require.Less(t, got[1].ID, got[2].ID)
}

func TestListIsStableAcrossCalls(t *testing.T) {
	r := NewRecordRepository[models.Workshop](newTestDB(t), "start_date")

	require.NoError(t, r.Create(&models.Workshop{Title: "Python for Data Science", StartDate: "2024-07-01", EndDate: "2024-07-05", NoOfDays: 5}))
	require.NoError(t, r.Create(&models.Workshop{Title: "Machine Learning Workshop", StartDate: "2024-08-10", EndDate: "2024-08-12", NoOfDays: 3}))

	first, err := r.List()
	require.NoError(t, err)
	second, err := r.List()
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestCreateAssignsSequentialIDs(t *testing.T) {
	r := NewRecordRepository[models.Book](newTestDB(t), "year_of_publication")

	a := models.Book{TitleOfBook: "Advanced Machine Learning", YearOfPublication: 2024}
	b := models.Book{TitleOfBook: "Data Science Fundamentals", YearOfPublication: 2023}
	require.NoError(t, r.Create(&a))
	require.NoError(t, r.Create(&b))
	require.Equal(t, a.ID+1, b.ID)
}

func TestEmptyProofReferenceIsKept(t *testing.T) {
	r := NewRecordRepository[models.Patent](newTestDB(t), "filing_date")

	require.NoError(t, r.Create(&models.Patent{Title: "AI-Powered Diagnostic System", FilingDate: "2024-01-10", ProofDoc: ""}))

	got, err := r.List()
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "", got[0].ProofDoc)
	require.Equal(t, "", got[0].AcceptedDate)
}

func TestPartialTupleStoredAsAbsent(t *testing.T) {
	r := NewRecordRepository[models.FundedResearch](newTestDB(t), "date_received")

	require.NoError(t, r.Create(&models.FundedResearch{TitleOfFund: "AI Research Project"}))

	got, err := r.List()
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "AI Research Project", got[0].TitleOfFund)
	require.Equal(t, "", got[0].DateReceived)
	require.Zero(t, got[0].AmountReceived)
}
