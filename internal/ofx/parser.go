// Package ofx parses OFX/QFX bank statement files into transactions.
package ofx

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/aclindsa/ofxgo"

	"github.com/codesagesllc/my-budget-planner-sub002/internal/model"
)

// Parser implements OFX/QFX file parsing.
type Parser struct{}

// NewParser creates a new OFX parser.
func NewParser() *Parser {
	return &Parser{}
}

var (
	severityRe = regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	// Opening tags in SGML-style files sometimes lack the closing bracket.
	tagFixRe = regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
)

// preprocess fixes common formatting issues in OFX files before parsing.
func (p *Parser) preprocess(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")
	content = severityRe.ReplaceAllStringFunc(content, strings.ToUpper)
	content = tagFixRe.ReplaceAllString(content, "$1>")
	return content
}

// ParseFile parses an OFX/QFX statement and returns its transactions.
// Statements that fail to convert are logged and skipped; one bad
// statement must not block the rest of the file.
func (p *Parser) ParseFile(reader io.Reader) ([]model.Transaction, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(p.preprocess(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	var transactions []model.Transaction

	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok && stmt.BankTranList != nil {
			accountID := string(stmt.BankAcctFrom.AcctID)
			for _, ofxTxn := range stmt.BankTranList.Transactions {
				transactions = append(transactions, p.convert(ofxTxn, accountID))
			}
		}
	}

	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok && stmt.BankTranList != nil {
			accountID := string(stmt.CCAcctFrom.AcctID)
			for _, ofxTxn := range stmt.BankTranList.Transactions {
				transactions = append(transactions, p.convert(ofxTxn, accountID))
			}
		}
	}

	slog.Info("Parsed OFX file", "transactions", len(transactions))

	return transactions, nil
}

// convert maps an OFX transaction to our model.
func (p *Parser) convert(ofxTxn ofxgo.Transaction, accountID string) model.Transaction {
	amount, _ := ofxTxn.TrnAmt.Float64()

	direction := model.DirectionInflow
	if amount < 0 {
		direction = model.DirectionOutflow
	}

	txn := model.Transaction{
		ID:           string(ofxTxn.FiTID),
		Date:         ofxTxn.DtPosted.Time,
		Description:  p.description(ofxTxn),
		MerchantName: p.merchantName(ofxTxn),
		Amount:       amount,
		AccountID:    accountID,
		Direction:    direction,
		Type:         fmt.Sprintf("%v", ofxTxn.TrnType),
	}
	txn.Hash = txn.GenerateHash()

	return txn
}

// description prefers the NAME field, falling back to MEMO when NAME is
// too generic to identify a merchant.
func (p *Parser) description(txn ofxgo.Transaction) string {
	name := strings.TrimSpace(string(txn.Name))
	if txn.Memo != "" && isGeneric(name) {
		return strings.TrimSpace(string(txn.Memo))
	}
	return name
}

// merchantName extracts a clean merchant name when the statement carries
// a PAYEE record.
func (p *Parser) merchantName(txn ofxgo.Transaction) string {
	if txn.Payee != nil && txn.Payee.Name != "" {
		return strings.TrimSpace(string(txn.Payee.Name))
	}
	return ""
}

func isGeneric(name string) bool {
	switch strings.ToUpper(name) {
	case "", "DEBIT", "CREDIT", "PURCHASE", "PAYMENT", "POS TRANSACTION", "CARD PURCHASE":
		return true
	}
	return false
}
