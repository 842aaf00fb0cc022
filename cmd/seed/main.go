// seed puebla la base de datos con los datos de demostración del panel:
// un usuario de acceso, diez clientes, quince facturas y el dataset de
// ingresos mensuales. Es idempotente: re-ejecutarlo no duplica filas.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
	"github.com/jhoicas/Finanzas-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Finanzas-api/pkg/config"
	"github.com/jhoicas/Finanzas-api/pkg/logger"
)

type seedInvoice struct {
	id     string
	amount int64 // centavos
	status string
	date   string
}

var seedUser = entity.User{
	ID:    "410544b2-4001-4271-9855-fec4b6a6442a",
	Name:  "User",
	Email: "user@nextmail.com",
}

const seedUserPassword = "123456"

var seedCustomers = []entity.Customer{
	{ID: "d6e15727-9fe1-4961-8c5b-ea44a9bd81aa", Name: "Evil Rabbit", Email: "evil@rabbit.com", ImageURL: "/customers/evil-rabbit.png"},
	{ID: "3958dc9e-712f-4377-85e9-fec4b6a6442a", Name: "Delba de Oliveira", Email: "delba@oliveira.com", ImageURL: "/customers/delba-de-oliveira.png"},
	{ID: "3958dc9e-742f-4377-85e9-fec4b6a6442a", Name: "Lee Robinson", Email: "lee@robinson.com", ImageURL: "/customers/lee-robinson.png"},
	{ID: "3958dc9e-737f-4377-85e9-fec4b6a6442a", Name: "Hector Simpson", Email: "hector@simpson.com", ImageURL: "/customers/hector-simpson.png"},
	{ID: "50ca3e18-62cd-11ee-8c99-0242ac120002", Name: "Steven Tey", Email: "steven@tey.com", ImageURL: "/customers/steven-tey.png"},
	{ID: "3958dc9e-787f-4377-85e9-fec4b6a6442a", Name: "Steph Dietz", Email: "steph@dietz.com", ImageURL: "/customers/steph-dietz.png"},
	{ID: "76d65c26-f784-44a2-ac19-586678f7c2f2", Name: "Michael Novotny", Email: "michael@novotny.com", ImageURL: "/customers/michael-novotny.png"},
	{ID: "126eed9c-c90c-4ef6-a4a8-fcf7408d3c66", Name: "Emil Kowalski", Email: "emil@kowalski.com", ImageURL: "/customers/emil-kowalski.png"},
	{ID: "CC27C14A-0ACF-4F4A-A6C9-D45682C144B9", Name: "Amy Burns", Email: "amy@burns.com", ImageURL: "/customers/amy-burns.png"},
	{ID: "13D07535-C59E-4157-A011-F8D2EF4E0CBB", Name: "Balazs Orban", Email: "balazs@orban.com", ImageURL: "/customers/balazs-orban.png"},
}

// Facturas de demostración. Los montos están en centavos; los índices de
// cliente refieren a seedCustomers.
var seedInvoices = []seedInvoice{
	{"b0a9e6f1-0001-4f1e-8d10-02d15c10a001", 15795, entity.InvoiceStatusPending, "2022-12-06"},
	{"b0a9e6f1-0002-4f1e-8d10-02d15c10a002", 20348, entity.InvoiceStatusPending, "2022-11-14"},
	{"b0a9e6f1-0003-4f1e-8d10-02d15c10a003", 3040, entity.InvoiceStatusPaid, "2022-10-29"},
	{"b0a9e6f1-0004-4f1e-8d10-02d15c10a004", 44800, entity.InvoiceStatusPaid, "2023-09-10"},
	{"b0a9e6f1-0005-4f1e-8d10-02d15c10a005", 34577, entity.InvoiceStatusPending, "2023-08-05"},
	{"b0a9e6f1-0006-4f1e-8d10-02d15c10a006", 54246, entity.InvoiceStatusPending, "2023-07-16"},
	{"b0a9e6f1-0007-4f1e-8d10-02d15c10a007", 666, entity.InvoiceStatusPending, "2023-06-27"},
	{"b0a9e6f1-0008-4f1e-8d10-02d15c10a008", 32545, entity.InvoiceStatusPaid, "2023-06-09"},
	{"b0a9e6f1-0009-4f1e-8d10-02d15c10a009", 1250, entity.InvoiceStatusPaid, "2023-06-17"},
	{"b0a9e6f1-0010-4f1e-8d10-02d15c10a010", 8546, entity.InvoiceStatusPaid, "2023-06-07"},
	{"b0a9e6f1-0011-4f1e-8d10-02d15c10a011", 500, entity.InvoiceStatusPaid, "2023-08-19"},
	{"b0a9e6f1-0012-4f1e-8d10-02d15c10a012", 8945, entity.InvoiceStatusPaid, "2023-06-03"},
	{"b0a9e6f1-0013-4f1e-8d10-02d15c10a013", 1000, entity.InvoiceStatusPaid, "2022-06-05"},
	{"b0a9e6f1-0014-4f1e-8d10-02d15c10a014", 8945, entity.InvoiceStatusPaid, "2023-10-04"},
	{"b0a9e6f1-0015-4f1e-8d10-02d15c10a015", 17500, entity.InvoiceStatusPending, "2023-09-25"},
}

// Ingresos mensuales de referencia, en centavos.
var seedRevenue = []entity.Revenue{
	{Month: "Jan", Revenue: 200000},
	{Month: "Feb", Revenue: 180000},
	{Month: "Mar", Revenue: 220000},
	{Month: "Apr", Revenue: 250000},
	{Month: "May", Revenue: 230000},
	{Month: "Jun", Revenue: 320000},
	{Month: "Jul", Revenue: 350000},
	{Month: "Aug", Revenue: 370000},
	{Month: "Sep", Revenue: 250000},
	{Month: "Oct", Revenue: 280000},
	{Month: "Nov", Revenue: 300000},
	{Month: "Dec", Revenue: 480000},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	if err := postgres.RunMigrations(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	revenueRepo := postgres.NewRevenueRepository(pool)

	now := time.Now()

	// Usuario de acceso
	existing, err := userRepo.FindByEmail(ctx, seedUser.Email)
	if err != nil {
		log.Fatal().Err(err).Msg("consultar usuario seed")
	}
	if existing == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(seedUserPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("hashear password seed")
		}
		u := seedUser
		u.PasswordHash = string(hash)
		u.CreatedAt, u.UpdatedAt = now, now
		if err := userRepo.Create(ctx, &u); err != nil {
			log.Fatal().Err(err).Msg("crear usuario seed")
		}
		log.Info().Str("email", u.Email).Msg("usuario creado")
	}

	// Clientes
	for i := range seedCustomers {
		c := seedCustomers[i]
		found, err := customerRepo.GetByID(ctx, c.ID)
		if err != nil {
			log.Fatal().Err(err).Str("customer", c.Name).Msg("consultar cliente")
		}
		if found != nil {
			continue
		}
		c.CreatedAt, c.UpdatedAt = now, now
		if err := customerRepo.Create(ctx, &c); err != nil {
			log.Fatal().Err(err).Str("customer", c.Name).Msg("crear cliente")
		}
	}
	log.Info().Int("count", len(seedCustomers)).Msg("clientes listos")

	// Facturas: se reparten round-robin entre los clientes seed.
	created := 0
	for i, s := range seedInvoices {
		found, err := invoiceRepo.GetByID(ctx, s.id)
		if err != nil {
			log.Fatal().Err(err).Str("invoice", s.id).Msg("consultar factura")
		}
		if found != nil {
			continue
		}
		date, err := time.Parse("2006-01-02", s.date)
		if err != nil {
			log.Fatal().Err(err).Str("invoice", s.id).Msg("fecha seed inválida")
		}
		inv := &entity.Invoice{
			ID:         s.id,
			CustomerID: seedCustomers[i%len(seedCustomers)].ID,
			Amount:     s.amount,
			Status:     s.status,
			Date:       date,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := invoiceRepo.Create(ctx, inv); err != nil {
			log.Fatal().Err(err).Str("invoice", s.id).Msg("crear factura")
		}
		created++
	}
	log.Info().Int("created", created).Msg("facturas listas")

	// Ingresos mensuales
	for i := range seedRevenue {
		if err := revenueRepo.Upsert(ctx, &seedRevenue[i]); err != nil {
			log.Fatal().Err(err).Str("month", seedRevenue[i].Month).Msg("upsert ingreso")
		}
	}
	log.Info().Int("count", len(seedRevenue)).Msg("ingresos mensuales listos")

	log.Info().Msg("seed completado")
}
