package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"mechanic_payroll/config"
	"mechanic_payroll/dao"
	"mechanic_payroll/metrics"
	"mechanic_payroll/middleware"
	"mechanic_payroll/services"
)

// Handler carries everything the HTTP layer needs. It is built once at
// startup and shared by every request.
type Handler struct {
	DB          *gorm.DB
	Admins      *services.AdminService
	Records     *services.RecordService
	Salary      *services.SalaryService
	Metrics     *metrics.Metrics
	Logger      *zap.Logger
	JWTSecret   string
	TokenExpiry time.Duration
}

func New(db *gorm.DB, cfg config.Config, logger *zap.Logger) *Handler {
	admins := dao.NewAdminDAO(db)
	members := dao.NewMemberDAO(db)
	earnings := dao.NewEarningDAO(db)

	return &Handler{
		DB:          db,
		Admins:      services.NewAdminService(admins, cfg.AdminUsername, cfg.AdminPassword, logger),
		Records:     services.NewRecordService(members, earnings, logger),
		Salary:      services.NewSalaryService(members, earnings),
		Metrics:     metrics.New(),
		Logger:      logger,
		JWTSecret:   cfg.JWTSecret,
		TokenExpiry: cfg.TokenExpiry,
	}
}

// NewApp builds the fiber app with logging, panic recovery and all routes.
func NewApp(h *Handler, requireAuth bool) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "mechanic-payroll",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(middleware.RequestLogger(h.Logger))

	h.Register(app, requireAuth)
	return app
}

// Register mounts the payroll routes. With requireAuth the write endpoints
// need an admin bearer token from /login.
func (h *Handler) Register(app *fiber.App, requireAuth bool) {
	guard := func(c *fiber.Ctx) error { return c.Next() }
	if requireAuth {
		guard = middleware.RequireAdmin(h.JWTSecret)
	}

	app.Post("/init-admin", h.InitAdmin)
	app.Get("/init-admin", h.InitAdmin)
	app.Post("/login", h.Login)

	app.Post("/add-member", guard, h.AddMember)
	app.Post("/add-earning", guard, h.AddEarning)
	app.Get("/calculate-salary/:member_id", h.CalculateSalary)

	app.Get("/members", h.ListMembers)
	app.Get("/members/:member_id/earnings", h.ListEarnings)
	app.Get("/roles", h.ListRoles)

	app.Get("/healthz", h.Health)
	app.Get("/metrics", h.Metrics.Handler())
}

func memberIDParam(c *fiber.Ctx) (uint, bool) {
	id, err := c.ParamsInt("member_id")
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}
