package adapters

import (
	"github.com/fin-tools/pocket-ledger/pkg/models/domain"
	"github.com/fin-tools/pocket-ledger/pkg/models/store"
)

func MapStoreTransactionToDomain(doc store.TransactionDoc) domain.Transaction {
	return domain.Transaction{
		ID:          doc.ID.Hex(),
		Type:        doc.Type,
		Amount:      doc.Amount,
		Category:    doc.Category,
		Date:        doc.Date,
		Account:     doc.Account,
		FromAccount: doc.FromAccount,
		ToAccount:   doc.ToAccount,
		Description: doc.Description,
	}
}

func MapStoreTransactionsToDomain(docs []store.TransactionDoc) []domain.Transaction {
	out := make([]domain.Transaction, 0, len(docs))
	for _, doc := range docs {
		out = append(out, MapStoreTransactionToDomain(doc))
	}
	return out
}

func MapStoreAccountToDomain(doc store.AccountDoc) domain.Account {
	return domain.Account{
		ID:      doc.ID.Hex(),
		Name:    doc.Name,
		Balance: doc.Balance,
	}
}

func MapStoreBudgetToDomain(doc store.BudgetDoc) domain.Budget {
	return domain.Budget{
		ID:     doc.ID.Hex(),
		Month:  doc.Month,
		Year:   doc.Year,
		Amount: doc.Amount,
		Status: doc.Status,
	}
}

func MapStoreReminderToDomain(doc store.ReminderDoc) domain.Reminder {
	return domain.Reminder{
		ID:      doc.ID.Hex(),
		Title:   doc.Title,
		Amount:  doc.Amount,
		DueDate: doc.DueDate,
		Status:  doc.Status,
	}
}

func MapStoreUserToDomain(doc store.UserDoc) domain.UserProfile {
	return domain.UserProfile{
		ID:       doc.ID.Hex(),
		Username: doc.Username,
	}
}
