package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/payroll-engine/internal/auth"
	"github.com/frahmantamala/payroll-engine/internal/bankexport"
	"github.com/frahmantamala/payroll-engine/internal/compensation"
	"github.com/frahmantamala/payroll-engine/internal/department"
	"github.com/frahmantamala/payroll-engine/internal/employee"
	"github.com/frahmantamala/payroll-engine/internal/payroll"
	"github.com/frahmantamala/payroll-engine/internal/transport/middleware"
	"github.com/frahmantamala/payroll-engine/internal/transport/swagger"
	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
)

type Handlers struct {
	Auth         *auth.Handler
	Department   *department.Handler
	Employee     *employee.Handler
	Compensation *compensation.Handler
	Payroll      *payroll.Handler
	BankExport   *bankexport.Handler
}

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, handlers Handlers, rbac *auth.RBACAuthorization, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS)
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	// OpenAPI spec and swagger UI at root, outside the API prefix
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		if handlers.Auth != nil {
			r.Route("/auth", func(sr chi.Router) {
				sr.Post("/login", handlers.Auth.Login)
				sr.Post("/refresh", handlers.Auth.RefreshToken)
				sr.Post("/logout", handlers.Auth.Logout)
			})
		}

		// Public reference data
		if handlers.Department != nil {
			r.Get("/departments", handlers.Department.GetDepartments)
		}

		if handlers.Auth != nil {
			r.Group(func(pr chi.Router) {
				pr.Use(handlers.Auth.AuthMiddleware)

				if handlers.Employee != nil {
					pr.Route("/employees", func(er chi.Router) {
						er.Get("/", handlers.Employee.ListEmployees)
						er.Get("/{id}", handlers.Employee.GetEmployee)

						if handlers.Payroll != nil {
							er.Get("/{id}/payslips", handlers.Payroll.ListEmployeePayslips)
						}

						if handlers.Compensation != nil {
							er.Get("/{id}/compensation", handlers.Compensation.ListCompensation)

							er.Group(func(cr chi.Router) {
								cr.Use(rbac.RequireManageCompensation())
								cr.Post("/{id}/compensation", handlers.Compensation.CreateCompensation)
							})
						}
					})
				}

				if handlers.Payroll != nil {
					pr.Route("/payroll/runs", func(rr chi.Router) {
						rr.Get("/", handlers.Payroll.ListRuns)
						rr.Get("/{id}", handlers.Payroll.GetRun)
						rr.Get("/{id}/payslips", handlers.Payroll.ListRunPayslips)

						rr.Group(func(mr chi.Router) {
							mr.Use(rbac.RequireProcessPayroll())
							mr.Post("/", handlers.Payroll.CreateRun)
						})

						if handlers.BankExport != nil {
							rr.Get("/{id}/exports", handlers.BankExport.ListExports)

							rr.Group(func(mr chi.Router) {
								mr.Use(rbac.RequireExportPayroll())
								mr.Post("/{id}/exports", handlers.BankExport.GenerateExport)
							})
						}
					})
				}
			})
		}
	})
}
