package ledger

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/DioVale2002/finance-tracker/internal/model"
)

// DateLayout is the naive local timestamp format used on disk: no timezone
// offset, fractional seconds only when present.
const DateLayout = "2006-01-02T15:04:05.999999999"

// fileEnvelope is the top-level document shape. Transient UI state is never
// part of it.
type fileEnvelope struct {
	Transactions []transactionRecord `json:"transactions"`
}

// transactionRecord is the wire form of one transaction. Category is
// optional for compatibility with files written before the field existed.
type transactionRecord struct {
	Description string  `json:"description"`
	Type        string  `json:"trans_type"`
	Category    string  `json:"category,omitempty"`
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
}

// MarshalTransactions encodes a transaction sequence as the ledger file
// document, preserving order.
func MarshalTransactions(txns []model.Transaction) ([]byte, error) {
	env := fileEnvelope{
		Transactions: make([]transactionRecord, 0, len(txns)),
	}
	for i := range txns {
		env.Transactions = append(env.Transactions, transactionRecord{
			Description: txns[i].Description,
			Amount:      txns[i].Amount,
			Type:        string(txns[i].Type),
			Category:    string(txns[i].Category),
			Date:        txns[i].Date.Format(DateLayout),
		})
	}
	return json.Marshal(env)
}

// UnmarshalTransactions decodes a ledger file document back into a
// transaction sequence. Any record failing the schema fails the whole
// document; callers treat that as a corrupt file and start empty.
func UnmarshalTransactions(data []byte) ([]model.Transaction, error) {
	var env fileEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("parsing ledger document: %w", err)
	}

	txns := make([]model.Transaction, 0, len(env.Transactions))
	for i, rec := range env.Transactions {
		txn, err := decodeRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("transaction %d: %w", i, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

func decodeRecord(rec transactionRecord) (model.Transaction, error) {
	transType, err := model.ParseTransactionType(rec.Type)
	if err != nil {
		return model.Transaction{}, err
	}

	// Older files predate the category field; default rather than reject.
	category := model.DefaultCategory
	if rec.Category != "" {
		category, err = model.ParseCategory(rec.Category)
		if err != nil {
			return model.Transaction{}, err
		}
	}

	date, err := time.Parse(DateLayout, rec.Date)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", rec.Date, err)
	}

	txn := model.Transaction{
		Date:        date,
		Description: rec.Description,
		Category:    category,
		Type:        transType,
		Amount:      rec.Amount,
	}
	if err := txn.Validate(); err != nil {
		return model.Transaction{}, err
	}
	return txn, nil
}
