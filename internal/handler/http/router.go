package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/shiftsync/shiftsync-backend-go/internal/domain/user"
	"github.com/shiftsync/shiftsync-backend-go/internal/handler/http/middleware"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/jwt"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Auth       AuthHandler
	Dashboard  DashboardHandler
	Employee   EmployeeHandler
	Attendance AttendanceHandler
	Leave      LeaveHandler
	Holiday    HolidayHandler
	Deduction  DeductionHandler
	Payroll    PayrollHandler
	Import     ImportHandler
	Report     ReportHandler
	Company    CompanyHandler
	User       UserHandler
	About      AboutHandler
}

type RouterOptions struct {
	Logger         *slog.Logger
	AllowedOrigins []string
}

func NewRouter(JWTService jwt.Service, users user.UserRepository, h Handlers, opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	if opts.Logger != nil {
		r.Use(httplog.RequestLogger(opts.Logger, &httplog.Options{
			Level:  slog.LevelDebug,
			Schema: httplog.SchemaECS,
		}))
	}

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	can := func(p user.Permission) func(http.Handler) http.Handler {
		return middleware.RequirePermission(users, p)
	}

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService))

			r.Post("/auth/logout", h.Auth.Logout)
			r.Get("/me", h.User.Me)
			r.Get("/about", h.About.Get)
			r.With(can(user.PermissionSettingsManage)).Put("/about", h.About.Update)
			r.With(can(user.PermissionReportsView)).Get("/dashboard", h.Dashboard.GetDashboard)

			r.Route("/employees", func(r chi.Router) {
				r.With(can(user.PermissionEmployeesView)).Get("/", h.Employee.ListEmployees)
				r.With(can(user.PermissionEmployeesView)).Get("/{id}", h.Employee.GetEmployee)

				r.Group(func(r chi.Router) {
					r.Use(can(user.PermissionEmployeesManage))
					r.Post("/", h.Employee.CreateEmployee)
					r.Put("/{id}", h.Employee.UpdateEmployee)
					r.Post("/{id}/offboard", h.Employee.OffboardEmployee)
					r.Post("/{id}/rehire", h.Employee.RehireEmployee)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(can(user.PermissionAttendanceView))
					r.Get("/", h.Attendance.List)
					r.Get("/month", h.Attendance.Month)
					r.Get("/{employeeID}/{date}", h.Attendance.Get)
				})

				r.Group(func(r chi.Router) {
					r.Use(can(user.PermissionAttendanceManage))
					r.Put("/", h.Attendance.Mark)
					r.Delete("/", h.Attendance.Delete)
					r.Post("/copy-day", h.Attendance.CopyDay)
				})
			})

			r.Route("/leave-requests", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(can(user.PermissionLeaveView))
					r.Get("/", h.Leave.ListRequests)
					r.Get("/{id}", h.Leave.GetRequest)
					r.Post("/", h.Leave.CreateRequest)
				})

				r.Group(func(r chi.Router) {
					r.Use(can(user.PermissionLeaveManage))
					r.Patch("/{id}/status", h.Leave.SetStatus)
					r.Delete("/{id}", h.Leave.DeleteRequest)
				})
			})

			r.Route("/holidays", func(r chi.Router) {
				r.With(can(user.PermissionAttendanceView)).Get("/", h.Holiday.List)
				r.With(can(user.PermissionSettingsManage)).Post("/", h.Holiday.Create)
				r.With(can(user.PermissionSettingsManage)).Delete("/{id}", h.Holiday.Delete)
			})

			r.Route("/deductions", func(r chi.Router) {
				r.With(can(user.PermissionPayrollView)).Get("/", h.Deduction.List)
				r.With(can(user.PermissionPayrollManage)).Post("/", h.Deduction.Create)
				r.With(can(user.PermissionPayrollManage)).Delete("/{id}", h.Deduction.Delete)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Use(can(user.PermissionPayrollView))
				r.Get("/summary", h.Payroll.GetPayrollSummary)
				r.Get("/employees/{id}", h.Payroll.GetEmployeePayroll)
				r.Get("/employees/{id}/payslip.pdf", h.Payroll.DownloadPayslip)
			})

			r.Route("/imports", func(r chi.Router) {
				r.With(can(user.PermissionAttendanceManage)).Post("/attendance", h.Import.ImportAttendance)
				r.With(can(user.PermissionEmployeesManage)).Post("/employees", h.Import.ImportEmployees)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Use(can(user.PermissionReportsView))
				r.Get("/attendance.csv", h.Report.ExportAttendanceCSV)
				r.Get("/attendance-summary", h.Report.GetMonthlyAttendanceReport)
				r.Get("/leave-balance", h.Report.GetLeaveBalanceReport)
				r.Get("/document-expiry", h.Report.GetDocumentExpiryReport)
			})

			r.Route("/companies", func(r chi.Router) {
				r.With(can(user.PermissionSettingsView)).Get("/", h.Company.List)

				r.Group(func(r chi.Router) {
					r.Use(can(user.PermissionSettingsManage))
					r.Post("/", h.Company.Create)
					r.Put("/{name}", h.Company.Rename)
					r.Delete("/{name}", h.Company.Delete)
				})
			})

			r.Route("/users", func(r chi.Router) {
				r.Use(can(user.PermissionUsersManage))
				r.Get("/", h.User.List)
				r.Post("/", h.User.Create)
				r.Get("/{username}", h.User.Get)
				r.Patch("/{username}", h.User.Update)
				r.Delete("/{username}", h.User.Delete)
			})
		})
	})
	return r
}
