package main

import (
	"log/slog"
	"os"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/server"
	"app/internal/usecase"
	"app/internal/validator"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// カートIDの発行はUUID
type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

func main() {
	//.envは無くても起動できる（本番は環境変数を直接渡す）
	_ = godotenv.Load("../.env")

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		logger.Error("failed to connect db", "error", err)
		os.Exit(1)
	}
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Customer{},
		&model.Address{},
		&model.Category{},
		&model.Book{},
		&model.BookImage{},
		&model.Comment{},
		&model.Discount{},
		&model.BookDiscount{},
		&model.Cart{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		logger.Error("failed to migrate schema", "error", err)
		os.Exit(1)
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserRepository(gormDB)
	customerRepo := infraRepo.NewCustomerGormRepository(gormDB)
	addressRepo := infraRepo.NewAddressGormRepository(gormDB)
	categoryRepo := infraRepo.NewCategoryGormRepository(gormDB)
	bookRepo := infraRepo.NewBookGormRepository(gormDB)
	imageRepo := infraRepo.NewBookImageGormRepository(gormDB)
	commentRepo := infraRepo.NewCommentGormRepository(gormDB)
	discountRepo := infraRepo.NewDiscountGormRepository(gormDB)
	cartRepo := infraRepo.NewCartGormRepository(gormDB)
	cartItemRepo := infraRepo.NewCartItemGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	orderItemRepo := infraRepo.NewOrderItemGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//usecaseに渡す部品
	idGen := &uuidGenerator{}
	authValidator := validator.NewAuthValidator(userRepo)

	//Usecase生成
	authUC := usecase.NewAuthUsecase(cfg, userRepo, txManager, authValidator)
	bookUC := usecase.NewBookUsecase(bookRepo, categoryRepo, imageRepo, orderItemRepo)
	categoryUC := usecase.NewCategoryUsecase(categoryRepo, bookRepo)
	discountUC := usecase.NewDiscountUsecase(discountRepo, bookRepo)
	commentUC := usecase.NewCommentUsecase(commentRepo, bookRepo)
	cartUC := usecase.NewCartUsecase(cartRepo, cartItemRepo, bookRepo, idGen)
	orderUC := usecase.NewOrderUsecase(txManager, customerRepo)
	adminOrderUC := usecase.NewAdminOrderUsecase(orderRepo, orderItemRepo, bookRepo)
	customerUC := usecase.NewCustomerUsecase(customerRepo, addressRepo)

	//Handler生成
	handlers := server.Handlers{
		Auth:       handler.NewAuthHandler(authUC),
		Book:       handler.NewBookHandler(bookUC, commentUC),
		AdminBook:  handler.NewAdminBookHandler(bookUC, commentUC),
		Category:   handler.NewCategoryHandler(categoryUC),
		Discount:   handler.NewDiscountHandler(discountUC),
		Cart:       handler.NewCartHandler(cartUC),
		Order:      handler.NewOrderHandler(orderUC),
		AdminOrder: handler.NewAdminOrderHandler(adminOrderUC),
		Customer:   handler.NewCustomerHandler(customerUC),
	}

	//Server起動
	e := server.New(cfg)
	server.RegisterRoutes(e, cfg, handlers)

	logger.Info("starting server", "port", cfg.Port, "env", cfg.GoEnv)
	if err := server.Start(e, cfg); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
