package detect

import (
	"regexp"
	"strings"
)

// Noise stripped from raw bank-feed descriptions, applied in order.
var (
	trailingRefRe   = regexp.MustCompile(`\s*#?\d{4,}\s*$`)
	trailingStateRe = regexp.MustCompile(`\s+[A-Z]{2}$`)
	processorRe     = regexp.MustCompile(`^(?:SQ|TST|PY|PP|PAYPAL|VENMO|CASH APP|ZELLE|APPLE PAY|GOOGLE PAY)\s+`)
	txnTypeRe       = regexp.MustCompile(`^(?:(?:ACH|EFT|DEBIT(?: CARD)?|CREDIT(?: CARD)?|CHECKCARD|CHKCARD|VISA|MC)\s+)+`)
	methodRe        = regexp.MustCompile(`\b(?:POS|ATM|ONLINE|MOBILE|WEB|RECURRING)\b`)
	actionRe        = regexp.MustCompile(`\b(?:PURCHASE|PAYMENT|PMT|PYMT|TRANSFER|XFER|WITHDRAWAL|AUTOPAY)\b`)
	trailingDateRe  = regexp.MustCompile(`\s+\d{1,2}[/-]\d{1,2}(?:[/-]\d{2,4})?$`)
	trailingTimeRe  = regexp.MustCompile(`\s+\d{1,2}:\d{2}(?::\d{2})?\s*(?:AM|PM)?$`)
	whitespaceRe    = regexp.MustCompile(`\s+`)
)

// Generic words that cannot anchor a meaningful pattern on their own.
var stopKeys = map[string]struct{}{
	"PAYMENT":    {},
	"FEE":        {},
	"CHECK":      {},
	"DEPOSIT":    {},
	"WITHDRAWAL": {},
	"TRANSFER":   {},
	"INTEREST":   {},
	"CHARGE":     {},
}

// Normalize strips noise tokens from a raw transaction description and
// returns a stable upper-case grouping key. Deterministic and pure.
func Normalize(description string) string {
	s := strings.ToUpper(strings.TrimSpace(description))

	s = trailingRefRe.ReplaceAllString(s, "")
	s = trailingStateRe.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "*", " ")
	s = processorRe.ReplaceAllString(s, "")
	s = txnTypeRe.ReplaceAllString(s, "")
	s = methodRe.ReplaceAllString(s, " ")
	s = actionRe.ReplaceAllString(s, " ")
	s = trailingDateRe.ReplaceAllString(s, "")
	s = trailingTimeRe.ReplaceAllString(s, "")

	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// Clusterable reports whether a normalized key can anchor a candidate
// group. Keys shorter than 3 characters, or matching the stoplist of
// generic banking words, are excluded from name clustering entirely.
func Clusterable(key string) bool {
	if len(key) < 3 {
		return false
	}
	_, stopped := stopKeys[key]
	return !stopped
}
