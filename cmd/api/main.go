package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/notch-hr/notch-backend-go/internal/config"
	appHTTP "github.com/notch-hr/notch-backend-go/internal/handler/http"
	"github.com/notch-hr/notch-backend-go/internal/pkg/clock"
	"github.com/notch-hr/notch-backend-go/internal/pkg/database"
	"github.com/notch-hr/notch-backend-go/internal/repository/postgresql"
	attendanceService "github.com/notch-hr/notch-backend-go/internal/service/attendance"
	departmentService "github.com/notch-hr/notch-backend-go/internal/service/department"
	employeeService "github.com/notch-hr/notch-backend-go/internal/service/employee"
	leaveService "github.com/notch-hr/notch-backend-go/internal/service/leave"
	salaryService "github.com/notch-hr/notch-backend-go/internal/service/salary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	if err := db.EnsureSchema(context.Background()); err != nil {
		fmt.Println("Error ensuring database schema:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	salaryRepo := postgresql.NewSalaryRepository(db)

	clk := clock.New()

	employeeSvc := employeeService.NewEmployeeService(employeeRepo, departmentRepo)
	departmentSvc := departmentService.NewDepartmentService(departmentRepo, employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, employeeRepo, clk)
	leaveSvc := leaveService.NewLeaveService(db, leaveRequestRepo, employeeRepo, clk)
	salarySvc := salaryService.NewSalaryService(salaryRepo)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	departmentHandler := appHTTP.NewDepartmentHandler(departmentSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveRequestHandler(leaveSvc)
	salaryHandler := appHTTP.NewSalaryHandler(salarySvc)

	router := appHTTP.NewRouter(
		employeeHandler,
		departmentHandler,
		attendanceHandler,
		leaveHandler,
		salaryHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
