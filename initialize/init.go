package initialize

import (
	"fmt"
	"net/http"

	"faculty-portal/app/controllers"
	"faculty-portal/app/db"
	jwtutil "faculty-portal/app/jwt"
	"faculty-portal/app/middleware"
	"faculty-portal/app/models"
	"faculty-portal/app/repo"
	"faculty-portal/app/services"
	"faculty-portal/config"
	"faculty-portal/global"
	"faculty-portal/router"

	"gorm.io/gorm"
)

type App struct {
	Cfg     *config.Config
	DB      *gorm.DB
	Router  http.Handler
	Auth    *controllers.AuthController
	Catalog *controllers.Catalog
	Uploads *controllers.UploadController
	Users   *services.UserService
}

func Build(configPath string) (*App, error) {
	// Load config
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	global.Config = cfg

	// Connect DB
	gdb, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	global.Mdb = gdb

	// Migrate
	if err := db.Migrate(gdb); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	// Services
	userRepo := repo.NewUserRepository(gdb)
	userSvc := services.NewUserService(userRepo)
	if err := userSvc.EnsureAdmin("admin", "admin123", "admin@christuniversity.in"); err != nil {
		global.Logger.Warn().Err(err).Msg("admin seed failed")
	}
	uploadSvc, err := services.NewUploadService(cfg.Upload.Dir)
	if err != nil {
		return nil, fmt.Errorf("upload store: %w", err)
	}

	// Controllers
	signer := &jwtutil.Signer{Secret: []byte(cfg.JWT.Secret), Issuer: cfg.JWT.Issuer, ExpMin: cfg.JWT.ExpMin}
	authCtrl := controllers.NewAuthController(userSvc, signer)
	uploadCtrl := controllers.NewUploadController(uploadSvc, cfg.Upload.MaxBytes)
	mw := &middleware.Auth{Signer: signer}
	catalog := NewCatalog(gdb)

	// Router
	h := router.NewRouter(controllers.NewHTTPController(), authCtrl, catalog, uploadCtrl, mw)
	h = middleware.Logging(h)

	return &App{Cfg: cfg, DB: gdb, Router: h, Auth: authCtrl, Catalog: catalog, Uploads: uploadCtrl, Users: userSvc}, nil
}

// NewCatalog instantiates the shared record contract once per
// category: same create/list semantics, different row type and
// ordering column.
func NewCatalog(gdb *gorm.DB) *controllers.Catalog {
	return &controllers.Catalog{
		FundedResearch: newCategory(gdb, "date_received", "funded research project", func(r *models.FundedResearch) uint { return r.ID }),
		Books:          newCategory(gdb, "year_of_publication", "book", func(r *models.Book) uint { return r.ID }),
		Articles:       newCategory(gdb, "publication_date", "article", func(r *models.Article) uint { return r.ID }),
		Conferences:    newCategory(gdb, "date", "conference", func(r *models.Conference) uint { return r.ID }),
		Workshops:      newCategory(gdb, "start_date", "workshop", func(r *models.Workshop) uint { return r.ID }),
		Awards:         newCategory(gdb, "date", "award", func(r *models.Award) uint { return r.ID }),
		Patents:        newCategory(gdb, "filing_date", "patent", func(r *models.Patent) uint { return r.ID }),
	}
}

func newCategory[T any](gdb *gorm.DB, dateField, label string, getID func(*T) uint) *controllers.RecordController[T] {
	recRepo := repo.NewRecordRepository[T](gdb, dateField)
	return controllers.NewRecordController(services.NewRecordService(recRepo), label, getID)
}
