package main

import (
	"context"
	"os"
	"time"

	"producttrial/internal/config"
	"producttrial/internal/handler"
	"producttrial/internal/infra/cache"
	"producttrial/internal/infra/db"
	infraRepo "producttrial/internal/infra/repository"
	"producttrial/internal/infra/token"
	"producttrial/internal/security"
	"producttrial/internal/server"
	"producttrial/internal/usecase"
	auth "producttrial/internal/usecase/auth_usecase"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	// .env は無くてもよい
	_ = godotenv.Load()

	logger := log.New("producttrial")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("config: %v", err)
	}
	logger.SetLevel(cfg.LogLevel)

	//DB接続
	gormDB, err := db.Connect(cfg.DSN(), cfg.LogLevel == log.DEBUG)
	if err != nil {
		logger.Fatalf("db connect: %v", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		logger.Fatalf("db migrate: %v", err)
	}

	//商品キャッシュ（REDIS_ADDRが無ければ無効）
	var productCache usecase.ProductCache = cache.NoopProductCache{}
	if cfg.RedisAddr != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		client, err := cache.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
		cancel()
		if err != nil {
			logger.Warnf("redis unavailable, product cache disabled: %v", err)
		} else {
			defer client.Close()
			productCache = cache.NewRedisProductCache(client, cfg.ProductCacheTTL, logger)
		}
	}

	//Repository（GORM実装）生成
	txm := infraRepo.NewTxManagerGorm(gormDB)
	userRepo := infraRepo.NewUserGormRepository(gormDB)

	//usecaseに渡す部品
	clock := usecase.SystemClock{}
	hasher := auth.NewBcryptPasswordHasher(bcrypt.DefaultCost)
	verifier := auth.NewBcryptPasswordVerifier()
	jwtSvc := token.NewJWTService(cfg.JWTSecret, cfg.JWTExpiration)
	gate := security.NewGate(cfg.AdminEmail)

	//Usecase生成
	registerUC := auth.NewRegisterUserUsecase(txm, hasher, logger)
	loginUC := auth.NewLoginUsecase(userRepo, verifier, jwtSvc, clock)
	deleteUC := auth.NewDeleteAccountUsecase(txm, logger)
	cartUC := usecase.NewCartUsecase(txm)
	wishlistUC := usecase.NewWishlistUsecase(txm)
	productUC := usecase.NewProductUsecase(txm, productCache, clock, logger)
	contactUC := usecase.NewContactUsecase(logger)

	//Handler生成
	e := server.New(cfg, jwtSvc, server.Handlers{
		Auth:         handler.NewAuthHandler(registerUC, loginUC, deleteUC, gate),
		Cart:         handler.NewCartHandler(cartUC, gate),
		Wishlist:     handler.NewWishlistHandler(wishlistUC, gate),
		Product:      handler.NewProductHandler(productUC, gate),
		AdminProduct: handler.NewAdminProductHandler(productUC, gate),
		Contact:      handler.NewContactHandler(contactUC),
		Health: handler.NewHealthHandler(func(ctx context.Context) error {
			return db.Ping(ctx, gormDB)
		}),
	})

	//Server起動
	if err := server.Start(e, cfg); err != nil {
		logger.Errorf("server: %v", err)
		os.Exit(1)
	}
}
