package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/paydesk/paydesk-backend-go/internal/config"
	appHTTP "github.com/paydesk/paydesk-backend-go/internal/handler/http"
	"github.com/paydesk/paydesk-backend-go/internal/pkg/database"
	"github.com/paydesk/paydesk-backend-go/internal/pkg/jwt"
	"github.com/paydesk/paydesk-backend-go/internal/pkg/pdf"
	"github.com/paydesk/paydesk-backend-go/internal/repository/postgresql"
	attendanceService "github.com/paydesk/paydesk-backend-go/internal/service/attendance"
	authService "github.com/paydesk/paydesk-backend-go/internal/service/auth"
	employeeService "github.com/paydesk/paydesk-backend-go/internal/service/employee"
	leaveService "github.com/paydesk/paydesk-backend-go/internal/service/leave"
	payslipService "github.com/paydesk/paydesk-backend-go/internal/service/payslip"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.StatementTimeout)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	payslipRepo := postgresql.NewPayslipRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	payslipRenderer := pdf.NewPayslipRenderer(cfg.App.CompanyName)

	authSvc := authService.NewAuthService(db, userRepo, employeeRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, userRepo, attendanceRepo, leaveRequestRepo, payslipRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, employeeRepo)
	leaveSvc := leaveService.NewLeaveService(db, leaveRequestRepo, attendanceRepo, employeeRepo)
	payslipSvc := payslipService.NewPayslipService(db, payslipRepo, attendanceRepo, employeeRepo, payslipRenderer)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	payslipHandler := appHTTP.NewPayslipHandler(payslipSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{Env: cfg.App.Env, FrontendURL: cfg.App.FrontendURL},
		jwtService,
		authHandler,
		employeeHandler,
		attendanceHandler,
		leaveHandler,
		payslipHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Println("Server starting on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server failed:", err)
	}
}
