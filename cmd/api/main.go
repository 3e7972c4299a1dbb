package main

import (
	"fmt"
	"net/http"

	"github.com/itops-tools/absence-backend-go/internal/config"
	"github.com/itops-tools/absence-backend-go/internal/domain/absence"
	appHTTP "github.com/itops-tools/absence-backend-go/internal/handler/http"
	"github.com/itops-tools/absence-backend-go/internal/pkg/database"
	"github.com/itops-tools/absence-backend-go/internal/repository/postgresql"
	absenceService "github.com/itops-tools/absence-backend-go/internal/service/absence"
	absenceTypeService "github.com/itops-tools/absence-backend-go/internal/service/absencetype"
	auditService "github.com/itops-tools/absence-backend-go/internal/service/audit"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	absenceRepo := postgresql.NewAbsenceRepository(db)
	absenceTypeRepo := postgresql.NewAbsenceTypeRepository(db)
	auditLogRepo := postgresql.NewAuditLogRepository(db)

	recorder := auditService.NewRecorder(auditLogRepo, cfg.Audit.Actor)
	absenceSvc := absenceService.NewService(db, absenceRepo, absenceTypeRepo, recorder, absence.OverlapScope(cfg.Absence.OverlapScope))
	absenceTypeSvc := absenceTypeService.NewService(absenceTypeRepo, absenceRepo)
	auditSvc := auditService.NewService(auditLogRepo)

	absenceHandler := appHTTP.NewAbsenceHandler(absenceSvc)
	absenceTypeHandler := appHTTP.NewAbsenceTypeHandler(absenceTypeSvc)
	auditHandler := appHTTP.NewAuditHandler(auditSvc)
	healthHandler := appHTTP.NewHealthHandler(db)

	router := appHTTP.NewRouter(cfg, absenceHandler, absenceTypeHandler, auditHandler, healthHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
