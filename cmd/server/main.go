package main

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/corebank/bulktransfer/pkg/configpkg"
	"github.com/corebank/bulktransfer/pkg/dbpkg"
	_ "github.com/lib/pq"

	"github.com/corebank/bulktransfer/internal/accountdelivery"
	"github.com/corebank/bulktransfer/internal/accountrepo"
	"github.com/corebank/bulktransfer/internal/accountservice"
	"github.com/corebank/bulktransfer/internal/middleware"
	"github.com/corebank/bulktransfer/internal/transactionrepo"
	"github.com/corebank/bulktransfer/internal/transferdelivery"
	"github.com/corebank/bulktransfer/internal/transferrepo"
	"github.com/corebank/bulktransfer/internal/transferservice"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.CreateLogger(config)

	conn, err := dbpkg.Setup(config.DBDriver, config.DBSource)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot connect to db")
	}

	server, err := createServer(conn, logger, config)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create server")
	}

	err = server.Run(config.ServerAddress)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot start server")
	}
}

func createServer(conn *sql.DB, logger zerolog.Logger, config configpkg.Config) (*gin.Engine, error) {
	accountRepo := accountrepo.NewRepoPGS(conn)
	transactionRepo := transactionrepo.NewRepoPGS(conn)
	transferRepo := transferrepo.NewRepoPGS(conn)

	accountService := accountservice.New(accountRepo, transactionRepo)
	transferService := transferservice.New(transferRepo, config.TransferBatchSize)

	accountHandler := accountdelivery.NewHandler(accountService)
	transferHandler := transferdelivery.NewHandler(transferService)

	gin.SetMode(gin.ReleaseMode)
	server := gin.New()

	server.Use(middleware.RequestLogger(logger))
	server.Use(gin.Recovery())

	v1 := server.Group("/api/v1")

	v1.POST("/transfers/bulk", transferHandler.CreateBulk)

	v1.POST("/accounts", accountHandler.Create)
	v1.GET("/accounts/:id", accountHandler.Get)
	v1.GET("/accounts", accountHandler.List)
	v1.DELETE("/accounts/:id", accountHandler.Delete)
	v1.GET("/accounts/:id/transactions", accountHandler.ListTransactions)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		err := v.RegisterValidation("iban", accountdelivery.ValidIBAN)
		if err != nil {
			return nil, errors.New("cannot register iban validator")
		}
	}

	return server, nil
}
