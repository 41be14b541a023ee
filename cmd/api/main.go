package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "talenthire-backend/internal/adapter/http"
	mw "talenthire-backend/internal/adapter/middleware"
	"talenthire-backend/internal/adapter/repository/mysql"
	"talenthire-backend/internal/config"
	clientDomain "talenthire-backend/internal/domain/client"
	instDomain "talenthire-backend/internal/domain/installment"
	leadDomain "talenthire-backend/internal/domain/lead"
	"talenthire-backend/internal/infrastructure/cache"
	"talenthire-backend/internal/infrastructure/db"
	portalapi "talenthire-backend/internal/infrastructure/portal"
	enrollmentUC "talenthire-backend/internal/usecase/enrollment"
	installmentUC "talenthire-backend/internal/usecase/installment"
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
	if err := gdb.AutoMigrate(&leadDomain.Lead{}, &clientDomain.EnrolledClient{}, &instDomain.Installment{}); err != nil {
		log.Fatal(err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	clientRepo := mysql.NewClientRepository(gdb)
	instRepo := mysql.NewInstallmentRepository(gdb)
	leadRepo := mysql.NewLeadRepository(gdb)
	uow := mysql.NewGormUoW(gdb)

	provisioner := portalapi.NewProvisionerClient(cfg.PortalBaseURL, 10*time.Second)
	notifier := portalapi.NewNotifierClient(cfg.NotifyBaseURL, 10*time.Second)

	enrollUC := enrollmentUC.NewUsecase(clientRepo, leadRepo, uow, provisioner, notifier)
	instUC := installmentUC.NewUsecase(clientRepo, instRepo, uow)

	h := httpadp.NewHandler()
	eh := httpadp.NewEnrollmentHandler(enrollUC)
	ih := httpadp.NewInstallmentHandler(instUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())

	e.GET("/health", h.Health)

	// mutating workflow routes sit behind the idempotency guard
	idemp := mw.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	ec := e.Group("/enrolled-clients", idemp)
	ec.POST("", eh.CreateEnrolledClient)
	ec.GET("/:client_id", eh.GetEnrolledClient)
	ec.GET("/pending-admin-review", eh.ListPendingAdminReview)
	ec.GET("/pending-sales-review", eh.ListPendingSalesReview)
	ec.POST("/:client_id/sales-update", eh.SalesUpdate)
	ec.POST("/:client_id/admin-approval", eh.AdminApproval)
	ec.POST("/:client_id/sales-approval", eh.SalesApproval)
	ec.POST("/:client_id/final-configuration", eh.FinalConfiguration)
	ec.POST("/:client_id/final-approval", eh.FinalApproval)
	ec.POST("/:client_id/accept-admin-changes", eh.AcceptAdminChanges)
	ec.POST("/:client_id/offer-letter-charge", eh.OfferLetterCharge)
	ec.POST("/:client_id/first-year-charge", eh.FirstYearCharge)

	ins := e.Group("/installments", idemp)
	ins.POST("", ih.CreateInstallment)
	ins.GET("", ih.ListInstallments)
	ins.PUT("/:installment_id", ih.UpdateInstallment)
	ins.DELETE("/:installment_id", ih.DeleteInstallment)
	ins.POST("/:installment_id/admin-edit", ih.ProposeAdminEdit)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
