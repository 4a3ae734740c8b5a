package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	employeeHandler EmployeeHandler,
	departmentHandler DepartmentHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveRequestHandler,
	salaryHandler SalaryHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "notch-api"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link", "Location"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.Route("/Employee", func(r chi.Router) {
		r.Get("/", employeeHandler.List)
		r.Post("/", employeeHandler.Create)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", employeeHandler.Get)
			r.Put("/", employeeHandler.Update)
			r.Delete("/", employeeHandler.Delete)
		})
	})

	r.Route("/Department", func(r chi.Router) {
		r.Get("/", departmentHandler.List)
		r.Post("/", departmentHandler.Create)
		r.Get("/{id}", departmentHandler.Get)
	})

	r.Route("/Attendance", func(r chi.Router) {
		r.Post("/SetStatus", attendanceHandler.SetStatus)
		r.Get("/Today", attendanceHandler.Today)
		r.Get("/ByDate/{date}", attendanceHandler.ByDate)
		r.Get("/CalculateHours/{id}", attendanceHandler.CalculateHours)
		r.Get("/{id}", attendanceHandler.Get)
	})

	r.Route("/LeaveRequest", func(r chi.Router) {
		r.Post("/RequestLeave", leaveHandler.RequestLeave)
		r.Get("/AllLeaveRequests", leaveHandler.List)
		r.Post("/ApproveLeave/{id}", leaveHandler.Approve)
		r.Post("/RejectLeave/{id}", leaveHandler.Reject)
		r.Get("/ApprovedLeaveRequests", leaveHandler.ListApproved)
		r.Get("/PendingLeaveRequests", leaveHandler.ListPending)
		r.Get("/RejectedLeaveRequests", leaveHandler.ListRejected)
		r.Get("/{id}", leaveHandler.Get)
	})

	r.Route("/Salary", func(r chi.Router) {
		r.Post("/", salaryHandler.Create)
		r.Get("/{id}", salaryHandler.Get)
	})

	return r
}
