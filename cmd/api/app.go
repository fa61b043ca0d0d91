package main

import (
	"shoppingpaglu/internal/config"
	"shoppingpaglu/internal/handler"
	"shoppingpaglu/internal/infra/db"
	infraRepo "shoppingpaglu/internal/infra/repository"
	"shoppingpaglu/internal/logger"
	"shoppingpaglu/internal/metrics"
	"shoppingpaglu/internal/server"
	"shoppingpaglu/internal/usecase"
	auth "shoppingpaglu/internal/usecase/auth_usecase"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// app は起動時に1回だけ組み立てる依存のまとまり
type app struct {
	cfg    config.Config
	log    *logrus.Logger
	db     *gorm.DB
	schema *db.SchemaManager
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log := logger.New(cfg.LogLevel, cfg.IsProd())

	//DB接続
	gormDB, err := db.Connect(cfg, log)
	if err != nil {
		return nil, err
	}
	log.WithField("driver", cfg.DBDriver).Info("connected to database")

	productRepo := infraRepo.NewProductGormRepository(gormDB)

	return &app{
		cfg:    cfg,
		log:    log,
		db:     gormDB,
		schema: db.NewSchemaManager(gormDB, productRepo, log),
	}, nil
}

// echoを組み立てる（Repository → Usecase → Handler）
func (a *app) buildServer() *echo.Echo {
	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(a.db)
	productRepo := infraRepo.NewProductGormRepository(a.db)
	txManager := infraRepo.NewTxManagerGorm(a.db)

	m := metrics.New()
	clock := usecase.SystemClock{}

	//bcrypt（会員登録：Hash / ログイン：Verify）
	hasher := auth.NewBcryptPasswordHasher(a.cfg.BcryptCost)
	verifier := auth.NewBcryptPasswordVerifier()

	//JWT issuer
	issuer := auth.NewJWTIssuer(a.cfg.JWTSecret, a.cfg.AccessTokenTTL)

	//Usecase生成
	registerUC := auth.NewRegisterUserUsecase(userRepo, hasher)
	loginUC := auth.NewLoginUsecase(userRepo, hasher, verifier, issuer, clock)
	productUC := usecase.NewProductUsecase(productRepo)
	orderUC := usecase.NewOrderUsecase(productRepo, txManager, a.cfg.CheckoutAtomic,
		usecase.WithClock(clock),
		usecase.WithCheckoutObserver(m),
	)

	if !a.cfg.CheckoutAtomic {
		a.log.Warn("CHECKOUT_ATOMIC=false: order header and items are written without a transaction")
	}

	//Handler生成
	return server.New(server.Handlers{
		Auth:     handler.NewAuthHandler(registerUC, loginUC),
		Products: handler.NewProductHandler(productUC),
		Orders:   handler.NewOrderHandler(orderUC),
	}, server.Options{
		Log:         a.log,
		Metrics:     m,
		TokenParser: issuer,
		StaticDir:   a.cfg.StaticDir,
	})
}

func (a *app) close() {
	sqlDB, err := a.db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		a.log.WithError(err).Warn("close database")
	}
}
