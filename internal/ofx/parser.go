package ofx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"github.com/Veraticus/fintrack/internal/ledger"
	"github.com/aclindsa/ofxgo"
	"github.com/shopspring/decimal"
)

var (
	severityRegex = regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	tagFixRegex   = regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
)

// Parser turns OFX/QFX statements into ledger import entries.
type Parser struct {
	categorizer Categorizer
}

// NewParser creates a new OFX parser. A nil categorizer uses the default keywords.
func NewParser(categorizer Categorizer) *Parser {
	if categorizer == nil {
		categorizer = NewKeywordCategorizer(nil)
	}
	return &Parser{categorizer: categorizer}
}

// preprocessOFX fixes common formatting issues in OFX files.
func (p *Parser) preprocessOFX(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")

	// SEVERITY must be INFO, WARN, or ERROR.
	content = severityRegex.ReplaceAllStringFunc(content, strings.ToUpper)

	// SGML files sometimes drop the closing bracket of a bare tag line.
	return tagFixRegex.ReplaceAllString(content, "$1>")
}

func (p *Parser) parse(reader io.Reader) (*ofxgo.Response, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(p.preprocessOFX(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}
	return resp, nil
}

// ParseFile parses an OFX/QFX statement. Credits become income entries and
// debits become categorized expense entries.
func (p *Parser) ParseFile(ctx context.Context, reader io.Reader) ([]ledger.ImportEntry, error) {
	resp, err := p.parse(reader)
	if err != nil {
		return nil, err
	}

	var entries []ledger.ImportEntry
	var bankStmts, ccStmts int

	for _, msg := range resp.Bank {
		stmt, ok := msg.(*ofxgo.StatementResponse)
		if !ok || stmt.BankTranList == nil {
			continue
		}
		bankStmts++
		for _, tx := range stmt.BankTranList.Transactions {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if entry, ok := p.convertTransaction(tx); ok {
				entries = append(entries, entry)
			}
		}
	}

	for _, msg := range resp.CreditCard {
		stmt, ok := msg.(*ofxgo.CCStatementResponse)
		if !ok || stmt.BankTranList == nil {
			continue
		}
		ccStmts++
		for _, tx := range stmt.BankTranList.Transactions {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if entry, ok := p.convertTransaction(tx); ok {
				entries = append(entries, entry)
			}
		}
	}

	slog.Info("Parsed OFX file",
		"entries", len(entries),
		"bank_statements", bankStmts,
		"cc_statements", ccStmts)

	return entries, nil
}

// convertTransaction maps one statement line. Zero amounts are skipped.
func (p *Parser) convertTransaction(tx ofxgo.Transaction) (ledger.ImportEntry, bool) {
	amount, err := decimal.NewFromString(tx.TrnAmt.FloatString(2))
	if err != nil || amount.IsZero() {
		slog.Debug("Skipping OFX transaction without amount", "fitid", string(tx.FiTID), "error", err)
		return ledger.ImportEntry{}, false
	}

	description := p.extractMerchantName(tx)
	date := tx.DtPosted.Time

	if amount.IsPositive() {
		return ledger.ImportEntry{Income: &ledger.IncomeInput{
			Amount: amount,
			Source: description,
			Date:   date,
		}}, true
	}

	return ledger.ImportEntry{Expense: &ledger.ExpenseInput{
		Amount:      amount.Abs(),
		Description: description,
		Category:    p.categorizer.Categorize(description),
		Date:        date,
	}}, true
}

var merchantPrefixes = []string{
	"POS PURCHASE ",
	"PURCHASE AUTHORIZED ON ",
	"DEBIT CARD PURCHASE ",
	"ACH DEBIT ",
	"ACH CREDIT ",
	"CHECK CARD ",
	"VISA PURCHASE ",
	"MC PURCHASE ",
	"DEBIT PURCHASE ",
}

// extractMerchantName tries to get a clean merchant name from OFX data.
func (p *Parser) extractMerchantName(tx ofxgo.Transaction) string {
	if tx.Payee != nil && tx.Payee.Name != "" {
		return string(tx.Payee.Name)
	}

	name := string(tx.Name)
	if tx.Memo != "" && isGenericDescription(name) {
		name = string(tx.Memo)
	}
	name = strings.TrimSpace(name)

	for _, prefix := range merchantPrefixes {
		if strings.HasPrefix(strings.ToUpper(name), prefix) {
			name = name[len(prefix):]
			break
		}
	}

	// Leading "MM/DD " date stamps.
	if len(name) > 5 && name[2] == '/' && name[5] == ' ' {
		name = strings.TrimSpace(name[6:])
	}

	if name == "" {
		return fmt.Sprintf("%v", tx.TrnType)
	}
	return name
}

func isGenericDescription(name string) bool {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBIT", "CREDIT", "PURCHASE", "PAYMENT", "POS TRANSACTION", "CARD PURCHASE":
		return true
	}
	return false
}

// Accounts lists the account IDs found in an OFX file, sorted.
func (p *Parser) Accounts(reader io.Reader) ([]string, error) {
	resp, err := p.parse(reader)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok && stmt.BankAcctFrom.AcctID != "" {
			seen[string(stmt.BankAcctFrom.AcctID)] = true
		}
	}
	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok && stmt.CCAcctFrom.AcctID != "" {
			seen[string(stmt.CCAcctFrom.AcctID)] = true
		}
	}

	accounts := make([]string, 0, len(seen))
	for acct := range seen {
		accounts = append(accounts, acct)
	}
	sort.Strings(accounts)
	return accounts, nil
}
