package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/fin-tools/pocket-ledger/pkg/runtime/terminal"
	"github.com/fin-tools/pocket-ledger/pkg/services/config"
	reportsvc "github.com/fin-tools/pocket-ledger/pkg/services/report"
	"github.com/fin-tools/pocket-ledger/pkg/store/mongodb"
	"github.com/fin-tools/pocket-ledger/pkg/store/mongodb/account"
	"github.com/fin-tools/pocket-ledger/pkg/store/mongodb/budget"
	"github.com/fin-tools/pocket-ledger/pkg/store/mongodb/reminder"
	"github.com/fin-tools/pocket-ledger/pkg/store/mongodb/transaction"
	"github.com/fin-tools/pocket-ledger/pkg/store/mongodb/user"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfgPath := os.Getenv("LEDGER_CONFIG")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx := context.Background()
	db, err := mongodb.Connect(ctx, mongodb.Settings{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	defer func() { _ = db.Client().Disconnect(ctx) }()

	transactionStore, err := transaction.NewStore(db)
	if err != nil {
		return err
	}
	budgetStore, err := budget.NewStore(db)
	if err != nil {
		return err
	}
	accountStore, err := account.NewStore(db)
	if err != nil {
		return err
	}
	reminderStore, err := reminder.NewStore(db)
	if err != nil {
		return err
	}
	userStore, err := user.NewStore(db)
	if err != nil {
		return err
	}

	aggregator := reportsvc.NewAggregator(transactionStore, budgetStore, accountStore, reminderStore, userStore)

	cli := terminal.NewCLI(terminal.Options{
		Generator:  reportsvc.NewService(aggregator, cfg.Report.CacheTTL),
		Aggregator: aggregator,
		Output:     os.Stdout,
	})

	return cli.Execute()
}
