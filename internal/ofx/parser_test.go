package ofx

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codesagesllc/my-budget-planner-sub002/internal/model"
)

const sampleBankOFX = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20250315120000[0:GMT]
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
<BANKMSGSRSV1>
<STMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<STMTRS>
<CURDEF>USD
<BANKACCTFROM>
<BANKID>123456789
<ACCTID>1234567890
<ACCTTYPE>CHECKING
</BANKACCTFROM>
<BANKTRANLIST>
<DTSTART>20250101120000[0:GMT]
<DTEND>20250131120000[0:GMT]
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20250103120000[0:GMT]
<TRNAMT>-15.99
<FITID>2025010301
<NAME>NETFLIX.COM
</STMTTRN>
<STMTTRN>
<TRNTYPE>CREDIT
<DTPOSTED>20250110120000[0:GMT]
<TRNAMT>2000.00
<FITID>2025011001
<NAME>ACME CORP PAYROLL
</STMTTRN>
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20250115120000[0:GMT]
<TRNAMT>-42.10
<FITID>2025011501
<NAME>DEBIT
<MEMO>WHOLE FOODS MKT
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>1000.00
<DTASOF>20250131120000[0:GMT]
</LEDGERBAL>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>`

func TestParseFileBankStatement(t *testing.T) {
	p := NewParser()

	txns, err := p.ParseFile(strings.NewReader(sampleBankOFX))
	require.NoError(t, err)
	require.Len(t, txns, 3)

	netflix := txns[0]
	assert.Equal(t, "2025010301", netflix.ID)
	assert.Equal(t, "NETFLIX.COM", netflix.Description)
	assert.InDelta(t, -15.99, netflix.Amount, 0.001)
	assert.Equal(t, model.DirectionOutflow, netflix.Direction)
	assert.Equal(t, "1234567890", netflix.AccountID)
	assert.Equal(t, 2025, netflix.Date.Year())
	assert.Equal(t, time.January, netflix.Date.Month())
	assert.NotEmpty(t, netflix.Hash)

	payroll := txns[1]
	assert.Equal(t, "ACME CORP PAYROLL", payroll.Description)
	assert.Equal(t, model.DirectionInflow, payroll.Direction)

	// A generic NAME falls back to the MEMO field.
	memo := txns[2]
	assert.Equal(t, "WHOLE FOODS MKT", memo.Description)
}

func TestParseFileInvalidContent(t *testing.T) {
	p := NewParser()

	_, err := p.ParseFile(strings.NewReader("this is not an OFX file"))
	assert.Error(t, err)
}

func TestPreprocess(t *testing.T) {
	p := NewParser()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "mixed case severity upper cased",
			in:   "<SEVERITY>Info</SEVERITY>",
			want: "<SEVERITY>INFO</SEVERITY>",
		},
		{
			name: "missing closing bracket fixed",
			in:   "<STMTTRN",
			want: "<STMTTRN>",
		},
		{
			name: "leading blank lines trimmed",
			in:   "\n\nOFXHEADER:100",
			want: "OFXHEADER:100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.preprocess(tt.in))
		})
	}
}
