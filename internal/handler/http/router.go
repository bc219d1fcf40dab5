package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/paydesk/paydesk-backend-go/internal/handler/http/middleware"
	"github.com/paydesk/paydesk-backend-go/internal/pkg/jwt"
)

type RouterConfig struct {
	Env         string
	FrontendURL string
}

func NewRouter(
	cfg RouterConfig,
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	payslipHandler PayslipHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "paydesk"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/employees", func(r chi.Router) {
					r.Get("/", employeeHandler.ListEmployees)
					r.Post("/", employeeHandler.CreateEmployee)
					r.Get("/{id}", employeeHandler.GetEmployee)
					r.Put("/{id}", employeeHandler.UpdateEmployee)
					r.Delete("/{id}", employeeHandler.DeleteEmployee)
				})

				r.Route("/attendance", func(r chi.Router) {
					r.Post("/", attendanceHandler.MarkAttendance)
					r.Post("/bulk", attendanceHandler.MarkAttendanceBulk)
					r.Get("/{date}", attendanceHandler.GetAttendanceByDate)
				})

				r.Route("/leave-requests", func(r chi.Router) {
					r.Get("/", leaveHandler.ListLeaveRequests)
					r.Patch("/{id}", leaveHandler.DecideLeaveRequest)
				})

				r.Route("/payslips", func(r chi.Router) {
					r.Get("/", payslipHandler.ListPayslips)
					r.Post("/generate", payslipHandler.GeneratePayslips)
				})

				r.Patch("/payslip-permissions", payslipHandler.ApprovePayslip)
			})

			r.Get("/employees/me", employeeHandler.GetMyProfile)
			r.Get("/attendance/me", attendanceHandler.GetMyAttendance)

			r.Route("/leave-requests", func(r chi.Router) {
				r.Post("/", leaveHandler.SubmitLeaveRequest)
				r.Get("/me", leaveHandler.ListMyLeaveRequests)
			})

			r.Route("/payslips", func(r chi.Router) {
				r.Get("/me", payslipHandler.ListMyPayslips)
				r.Get("/download", payslipHandler.DownloadPayslip)
			})
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	return r
}
