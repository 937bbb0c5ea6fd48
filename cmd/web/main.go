package main

import (
	"fmt"
	"net"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/fin-tools/pocket-ledger/pkg/server"
	"github.com/fin-tools/pocket-ledger/pkg/services/config"
	reportsvc "github.com/fin-tools/pocket-ledger/pkg/services/report"
	"github.com/fin-tools/pocket-ledger/pkg/store/mongodb"
	"github.com/fin-tools/pocket-ledger/pkg/store/mongodb/account"
	"github.com/fin-tools/pocket-ledger/pkg/store/mongodb/budget"
	"github.com/fin-tools/pocket-ledger/pkg/store/mongodb/reminder"
	"github.com/fin-tools/pocket-ledger/pkg/store/mongodb/transaction"
	"github.com/fin-tools/pocket-ledger/pkg/store/mongodb/user"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the Pocket Ledger report server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "config.yaml",
		"Path to the configuration file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := mongodb.Connect(ctx, mongodb.Settings{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	defer func() {
		if err := db.Client().Disconnect(ctx); err != nil {
			logger.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	transactionStore, err := transaction.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create transaction store: %w", err)
	}
	budgetStore, err := budget.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create budget store: %w", err)
	}
	accountStore, err := account.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create account store: %w", err)
	}
	reminderStore, err := reminder.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create reminder store: %w", err)
	}
	userStore, err := user.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create user store: %w", err)
	}

	aggregator := reportsvc.NewAggregator(transactionStore, budgetStore, accountStore, reminderStore, userStore)
	reports := reportsvc.NewService(aggregator, cfg.Report.CacheTTL)

	addr := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)
	api := server.NewWebAPI(logger, server.Config{
		Addr:            addr,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Reports: reports,
		},
	})

	return api.Start()
}
