package main

import (
	"context"
	"flag"
	"log"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/repository"
	"fintrack/pkg/config"
	"fintrack/pkg/logger"
	"fintrack/pkg/postgres"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Seeds one month of demo data so the dashboard has something to show on a
// fresh database.
func main() {
	userFlag := flag.String("user", "", "user ID to seed data for (defaults to a new random ID)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	userID := uuid.New()
	if *userFlag != "" {
		userID, err = uuid.Parse(*userFlag)
		if err != nil {
			appLogger.Fatal("Invalid user ID", zap.Error(err))
		}
	}

	ctx := context.Background()
	if err := postgres.RunMigrations(&cfg.Database); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	txRepo := repository.NewTransactionRepository(db, appLogger)
	acctRepo := repository.NewAccountRepository(db, appLogger)

	appLogger.Info("Seeding demo data", zap.String("user", userID.String()))

	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 9, 0, 0, 0, time.UTC)

	seedTxns := []models.Transaction{
		{Amount: 65000, Date: monthStart, Type: models.TypeIncome, Mode: "NEFT", Payee: "Acme Corp", Remarks: "Salary"},
		{Amount: 1800, Date: monthStart.AddDate(0, 0, 2), Type: models.TypeExpense, Mode: "GPay UPI", Payee: "BigBasket", ExpenseType: "Food", NeedsWants: models.NeedsWantsNeeds},
		{Amount: 1200, Date: monthStart.AddDate(0, 0, 4), Type: models.TypeExpense, Mode: "Coral GPay CC", Payee: "Swiggy", ExpenseType: "Food", NeedsWants: models.NeedsWantsWants},
		{Amount: 4500, Date: monthStart.AddDate(0, 0, 6), Type: models.TypeExpense, Mode: "MMT Mastercard", Payee: "MakeMyTrip", ExpenseType: "Travel", NeedsWants: models.NeedsWantsWants},
		{Amount: 2200, Date: monthStart.AddDate(0, 0, 8), Type: models.TypeExpense, Mode: "Cash", Payee: "Landlord", ExpenseType: "Essentials", NeedsWants: models.NeedsWantsNeeds},
		{Amount: 10000, Date: monthStart.AddDate(0, 0, 10), Type: models.TypeSaved, Mode: "NEFT", Payee: "Savings Account", Remarks: "Monthly transfer"},
		{Amount: 5000, Date: monthStart.AddDate(0, 0, 12), Type: models.TypeExpense, Mode: "GPay UPI", Payee: "Zerodha", ExpenseType: "Investment", NeedsWants: models.NeedsWantsInvested},
		{Amount: 3000, Date: monthStart.AddDate(0, 0, 15), Type: models.TypeCreditCardPayment, Mode: "Coral GPay CC", Payee: "ICICI Bank", Remarks: "Card bill"},
		{Amount: 2500, Date: monthStart.AddDate(0, 0, 16), Type: models.TypeTransfer, Mode: "NEFT", Payee: "Joint Account"},
	}

	for i := range seedTxns {
		tx := seedTxns[i]
		tx.ID = uuid.New()
		tx.UserID = userID
		tx.CreatedAt = now
		tx.UpdatedAt = now
		if err := txRepo.Create(ctx, &tx); err != nil {
			appLogger.Fatal("Failed to seed transaction", zap.Error(err))
		}
	}

	acct := &models.Account{
		ID:              uuid.New(),
		UserID:          userID,
		Name:            models.DefaultAccountName,
		MonthYear:       monthStart.Format("2006-01"),
		StartingBalance: 25000,
		CurrentBalance:  25000,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := acctRepo.Upsert(ctx, acct); err != nil {
		appLogger.Fatal("Failed to seed account", zap.Error(err))
	}

	appLogger.Info("Seeding completed",
		zap.String("user", userID.String()),
		zap.Int("transactions", len(seedTxns)),
	)
}
