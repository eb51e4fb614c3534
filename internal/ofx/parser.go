// Package ofx parses OFX/QFX bank and credit card statements into ledger
// transactions.
package ofx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/DioVale2002/finance-tracker/internal/model"
	"github.com/aclindsa/ofxgo"
)

// Parser implements OFX/QFX file parsing.
type Parser struct{}

// NewParser creates a new OFX parser.
func NewParser() *Parser {
	return &Parser{}
}

// preprocessOFX fixes common formatting issues in OFX files.
func (p *Parser) preprocessOFX(content string) string {
	// Trim any leading whitespace or blank lines before the header
	content = strings.TrimLeft(content, " \t\r\n")

	// Fix mixed-case SEVERITY values (should be INFO, WARN, or ERROR)
	severityRegex := regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	content = severityRegex.ReplaceAllStringFunc(content, func(match string) string {
		return strings.ToUpper(match)
	})

	// Fix missing closing angle brackets in SGML-style OFX files
	tagFixRegex := regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
	content = tagFixRegex.ReplaceAllString(content, "$1>")

	return content
}

// ParseFile parses an OFX/QFX file and returns ledger transactions. The
// statement's signed amounts become positive magnitudes with the sign folded
// into the transaction type. Transactions sharing a FITID within the file
// are deduplicated.
func (p *Parser) ParseFile(ctx context.Context, reader io.Reader) ([]model.Transaction, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	processedContent := p.preprocessOFX(string(content))

	resp, err := ofxgo.ParseResponse(strings.NewReader(processedContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	var transactions []model.Transaction
	var bankStmts, ccStmts, duplicates int
	seen := make(map[string]bool)

	appendStatement := func(list *ofxgo.TransactionList) {
		if list == nil {
			return
		}
		for _, ofxTx := range list.Transactions {
			if id := string(ofxTx.FiTID); id != "" {
				if seen[id] {
					duplicates++
					continue
				}
				seen[id] = true
			}
			transactions = append(transactions, p.convertTransaction(ofxTx))
		}
	}

	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok {
			bankStmts++
			appendStatement(stmt.BankTranList)
		}
	}

	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok {
			ccStmts++
			appendStatement(stmt.BankTranList)
		}
	}

	slog.Info("Parsed OFX file",
		"total_transactions", len(transactions),
		"bank_statements", bankStmts,
		"cc_statements", ccStmts,
		"duplicates_skipped", duplicates)

	return transactions, nil
}

// convertTransaction converts an OFX transaction to a ledger transaction.
func (p *Parser) convertTransaction(ofxTx ofxgo.Transaction) model.Transaction {
	description := p.extractDescription(ofxTx)

	// OFX amounts are signed: negative for debits. The ledger stores
	// positive magnitudes and derives the sign from the type.
	amount, _ := ofxTx.TrnAmt.Float64()
	transType := model.TypeIncome
	if amount < 0 {
		amount = -amount
		transType = model.TypeExpense
	}

	return model.Transaction{
		Date:        model.NaiveTime(ofxTx.DtPosted.Time),
		Description: description,
		Category:    categoryHint(fmt.Sprintf("%v", ofxTx.TrnType), transType),
		Type:        transType,
		Amount:      amount,
	}
}

// categoryHint maps OFX transaction types to ledger categories where the
// statement gives enough signal; everything else lands in Other for the
// user to reclassify.
func categoryHint(trnType string, transType model.TransactionType) model.Category {
	switch trnType {
	case "INT", "DIV":
		if transType == model.TypeIncome {
			return model.CategoryInvestments
		}
	case "DIRECTDEP":
		if transType == model.TypeIncome {
			return model.CategorySalary
		}
	}
	return model.DefaultCategory
}

// extractDescription tries to get a clean description from OFX data.
func (p *Parser) extractDescription(tx ofxgo.Transaction) string {
	// Prefer PAYEE if available (cleaner merchant name)
	if tx.Payee != nil && tx.Payee.Name != "" {
		return string(tx.Payee.Name)
	}

	// Fall back to NAME field
	name := string(tx.Name)

	// Use MEMO field if NAME is generic
	if tx.Memo != "" && isGenericDescription(name) {
		name = string(tx.Memo)
	}

	name = strings.TrimSpace(name)

	// Remove common processor prefixes
	prefixes := []string{
		"POS PURCHASE ",
		"PURCHASE AUTHORIZED ON ",
		"DEBIT CARD PURCHASE ",
		"ACH DEBIT ",
		"CHECK CARD ",
		"VISA PURCHASE ",
		"MC PURCHASE ",
		"DEBIT PURCHASE ",
	}
	for _, prefix := range prefixes {
		if strings.HasPrefix(strings.ToUpper(name), prefix) {
			name = name[len(prefix):]
			break
		}
	}

	// Clean up date patterns like "MM/DD" at the beginning
	if len(name) > 5 && name[2] == '/' && name[5] == ' ' {
		name = strings.TrimSpace(name[6:])
	}

	if name == "" {
		name = "Imported transaction"
	}
	return name
}

// isGenericDescription checks if a transaction name is too generic.
func isGenericDescription(name string) bool {
	generic := []string{
		"DEBIT",
		"CREDIT",
		"PURCHASE",
		"PAYMENT",
		"POS TRANSACTION",
		"CARD PURCHASE",
	}

	upperName := strings.ToUpper(name)
	for _, g := range generic {
		if upperName == g {
			return true
		}
	}
	return false
}

// GetAccounts extracts unique account IDs from the OFX file.
func (p *Parser) GetAccounts(ctx context.Context, reader io.Reader) ([]string, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	processedContent := p.preprocessOFX(string(content))

	resp, err := ofxgo.ParseResponse(strings.NewReader(processedContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	accountMap := make(map[string]bool)

	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok {
			if stmt.BankAcctFrom.AcctID != "" {
				accountMap[string(stmt.BankAcctFrom.AcctID)] = true
			}
		}
	}

	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok {
			if stmt.CCAcctFrom.AcctID != "" {
				accountMap[string(stmt.CCAcctFrom.AcctID)] = true
			}
		}
	}

	var accounts []string
	for acct := range accountMap {
		accounts = append(accounts, acct)
	}

	return accounts, nil
}
