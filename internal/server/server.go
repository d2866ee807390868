package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/lightlabcreation/gym-backend/internal/attendance"
	"github.com/lightlabcreation/gym-backend/internal/auth"
	"github.com/lightlabcreation/gym-backend/internal/booking"
	"github.com/lightlabcreation/gym-backend/internal/config"
	"github.com/lightlabcreation/gym-backend/internal/dashboard"
	"github.com/lightlabcreation/gym-backend/internal/email"
	"github.com/lightlabcreation/gym-backend/internal/invoice"
	"github.com/lightlabcreation/gym-backend/internal/membership"
	"github.com/lightlabcreation/gym-backend/internal/schedule"
	"github.com/lightlabcreation/gym-backend/internal/shift"
	"github.com/lightlabcreation/gym-backend/internal/user"
)

const roleAdmin = "admin"

type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *sqlx.DB
	config *config.Config
	email  *email.Service
}

func New(db *sqlx.DB, cfg *config.Config, emailService *email.Service) *Server {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		RequestIDMiddleware(),
		RequestLoggingMiddleware(),
		MetricsMiddleware(),
		corsMiddleware(cfg.CORSAllowedOrigin),
		RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst),
	)

	scheduleRepo := schedule.NewRepository(db)
	members := membership.NewRepository(db)

	userHandler := user.NewHandler(user.NewService(user.NewRepository(db), cfg.JWTSecret))
	scheduleHandler := schedule.NewHandler(schedule.NewService(scheduleRepo))
	bookingHandler := booking.NewHandler(booking.NewService(booking.NewRepository(db), members, scheduleRepo, emailService))
	invoiceHandler := invoice.NewHandler(invoice.NewService(invoice.NewRepository(db)))
	shiftHandler := shift.NewHandler(shift.NewService(shift.NewRepository(db)))
	attendanceHandler := attendance.NewHandler(attendance.NewService(attendance.NewRepository(db)))
	dashboardHandler := dashboard.NewHandler(dashboard.NewService(dashboard.NewRepository(db)))

	router.GET("/health", Health(map[string]Check{
		"database": db.PingContext,
		"redis":    emailService.Ping,
	}))
	router.GET("/metrics", Metrics())

	public := router.Group("/auth")
	{
		public.POST("/login", userHandler.Login)
		public.POST("/refresh", userHandler.RefreshToken)
	}

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", userHandler.GetMe)

		protected.GET("/schedules", bookingHandler.ListSchedules)
		protected.GET("/schedules/:scheduleID", scheduleHandler.GetSchedule)
		protected.POST("/schedules/:scheduleID/book", bookingHandler.BookClass)
		protected.GET("/members/:memberID/bookings", bookingHandler.MemberBookings)
		protected.DELETE("/members/:memberID/bookings/:scheduleID", bookingHandler.CancelBooking)

		protected.GET("/invoices/:paymentID", invoiceHandler.GetInvoice)
		protected.GET("/dashboard/housekeeping", dashboardHandler.Housekeeping)
		protected.GET("/shifts/staff/:staffID", shiftHandler.ListByStaff)

		protected.POST("/attendance/checkin", attendanceHandler.CheckIn)
		protected.PUT("/attendance/checkout/:id", attendanceHandler.CheckOut)
		protected.GET("/attendance/daily", attendanceHandler.Daily)
		protected.GET("/attendance/summary/today", attendanceHandler.TodaySummary)
		protected.GET("/attendance/member/:memberID", attendanceHandler.ListByMember)
		protected.GET("/attendance/:id", attendanceHandler.Get)
		protected.DELETE("/attendance/:id", attendanceHandler.Delete)
	}

	admin := router.Group("/admin")
	admin.Use(authMiddleware, auth.RequireRole(roleAdmin))
	{
		admin.POST("/schedules", scheduleHandler.CreateSchedule)
		admin.GET("/schedules", scheduleHandler.ListSchedules)
		admin.GET("/schedules/:scheduleID", scheduleHandler.GetSchedule)
		admin.PUT("/schedules/:scheduleID", scheduleHandler.UpdateSchedule)
		admin.DELETE("/schedules/:scheduleID", scheduleHandler.DeleteSchedule)
		admin.POST("/class-types", scheduleHandler.CreateClassType)
		admin.GET("/class-types", scheduleHandler.ListClassTypes)
		admin.GET("/trainers", scheduleHandler.ListTrainers)

		admin.POST("/shifts", shiftHandler.CreateShiftBatch)
		admin.GET("/shifts", shiftHandler.ListShifts)
		admin.GET("/shifts/export", shiftHandler.ExportRoster)
		admin.GET("/shifts/:shiftID", shiftHandler.GetShift)
		admin.PUT("/shifts/:shiftID", shiftHandler.UpdateShift)
		admin.PATCH("/shifts/:shiftID/status", shiftHandler.UpdateShiftStatus)
		admin.DELETE("/shifts/:shiftID", shiftHandler.DeleteShift)

		admin.GET("/test-email", TestEmail(emailService))
	}

	return &Server{
		router: router,
		http: &http.Server{
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		db:     db,
		config: cfg,
		email:  emailService,
	}
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Start blocks until the server stops. A graceful Shutdown is not an error.
func (s *Server) Start(port string) error {
	s.http.Addr = ":" + port
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
