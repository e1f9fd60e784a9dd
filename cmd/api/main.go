package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "avendro-backend/internal/adapter/http"
	appmw "avendro-backend/internal/adapter/middleware"
	"avendro-backend/internal/adapter/notifier"
	"avendro-backend/internal/adapter/repository/mysql"
	"avendro-backend/internal/config"
	appDomain "avendro-backend/internal/domain/application"
	lenderDomain "avendro-backend/internal/domain/lender"
	notifDomain "avendro-backend/internal/domain/notification"
	paymentDomain "avendro-backend/internal/domain/payment"
	"avendro-backend/internal/infrastructure/cache"
	"avendro-backend/internal/infrastructure/db"
	appUsecase "avendro-backend/internal/usecase/application"
	"avendro-backend/internal/usecase/identity"
	lenderUsecase "avendro-backend/internal/usecase/lender"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	if err := gdb.AutoMigrate(
		&lenderDomain.Lender{},
		&appDomain.Application{},
		&paymentDomain.Payment{},
		&notifDomain.Notification{},
	); err != nil {
		log.Fatal(err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	apps := mysql.NewApplicationRepository(gdb)
	lenders := mysql.NewLenderRepository(gdb)
	payments := mysql.NewPaymentRepository(gdb)
	notifications := mysql.NewNotificationRepository(gdb)
	tx := mysql.NewGormUoW(gdb)

	inbox := notifier.NewInboxNotifier(notifications)
	resolver := identity.NewResolver(apps, payments, lenders)
	appUC := appUsecase.NewUsecase(apps, lenders, payments, resolver, tx, inbox)
	lenderUC := lenderUsecase.NewUsecase(lenders, inbox)

	h := httpadp.NewHandler()
	appH := httpadp.NewApplicationHandler(appUC)
	lenderH := httpadp.NewLenderHandler(lenderUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())
	e.Use(appmw.ActorMiddleware())
	e.Use(appmw.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))

	// routes
	e.GET("/health", h.Health)

	e.POST("/lenders", lenderH.Register)
	e.GET("/lenders/:lender_id", lenderH.Get)
	e.POST("/lenders/:lender_id/approve", lenderH.Approve)
	e.POST("/lenders/:lender_id/decline", lenderH.Decline)

	e.POST("/applications", appH.Create)
	e.GET("/applications/:application_id", appH.Get)
	e.POST("/applications/:application_id/approve", appH.Approve)
	e.POST("/applications/:application_id/reject", appH.Reject)
	e.POST("/applications/:application_id/escalate", appH.Escalate)
	e.POST("/applications/:application_id/payments", appH.RecordPayment)
	e.POST("/applications/:application_id/rating", appH.Rate)
	e.GET("/applications/:application_id/payment-preview", appH.PaymentPreview)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
