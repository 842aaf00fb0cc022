package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Finanzas-api/internal/application/analytics"
	"github.com/jhoicas/Finanzas-api/internal/application/auth"
	"github.com/jhoicas/Finanzas-api/internal/application/billing"
	"github.com/jhoicas/Finanzas-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	InvoiceUC   *billing.InvoiceUseCase
	PDFUC       *billing.PDFUseCase
	CustomerUC  *billing.CustomerUseCase
	DashboardUC *analytics.DashboardUseCase
	RevenueUC   *analytics.RevenueUseCase
	JWTSecret   string
	Log         *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Invoices (protegido). Las rutas fijas van antes de /:id.
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.PDFUC, deps.Log)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/latest", invoiceHandler.Latest)
	invoices.Get("/export", invoiceHandler.ExportXML)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Get("/:id/pdf", invoiceHandler.PDF)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Delete("/:id", invoiceHandler.Delete)

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.Log)
	customers.Get("/", customerHandler.List)
	customers.Get("/names", customerHandler.ListNames)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.Log)
	dashboard.Get("/summary", dashboardHandler.Summary)

	// Revenue (protegido)
	revenueHandler := NewRevenueHandler(deps.RevenueUC, deps.Log)
	protected.Get("/revenue", revenueHandler.List)
}
