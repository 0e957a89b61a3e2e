package inwestomat

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// this file contains the ledger format: the semicolon separated file that the
// Inwestomat spreadsheet imports.
//
// Each row has 16 columns:
//
//	account, date, ticker, currency, name, asset class, type, amount, price,
//	fee, PLN rate, nominal price, total PLN, key, XIRR, comment
//
// account, name, asset class, key and XIRR are computed by the spreadsheet
// and always left empty.

// Columns is the number of columns of a ledger row.
const Columns = 16

// DateTimeFormat is the format of the date column.
const DateTimeFormat = "2006-01-02 15:04:05"

// Timezone is the fixed offset dates are written in. It has no daylight
// saving time on purpose: the spreadsheet compares dates written that way.
var Timezone = time.FixedZone("UTC+2", 2*60*60)

// FormatDecimal renders d in its shortest exact form, using a decimal comma.
func FormatDecimal(d decimal.Decimal) string {
	return strings.Replace(d.String(), ".", ",", 1)
}

// ParseDecimal is the inverse of FormatDecimal.
func ParseDecimal(s string) (decimal.Decimal, error) {
	if strings.Contains(s, ".") {
		return decimal.Decimal{}, fmt.Errorf("invalid number %q: decimal separator must be a comma", s)
	}
	d, err := decimal.NewFromString(strings.Replace(s, ",", ".", 1))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return d, nil
}

// Encoder writes transactions as ledger rows.
type Encoder struct {
	w *csv.Writer
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	cw := csv.NewWriter(w)
	cw.Comma = ';'
	cw.UseCRLF = true
	return &Encoder{w: cw}
}

// Encode writes tx as a single row.
func (e *Encoder) Encode(tx Transaction) error {
	return e.w.Write(record(tx))
}

// Flush writes any buffered row to the underlying writer.
func (e *Encoder) Flush() error {
	e.w.Flush()
	return e.w.Error()
}

// record returns the ledger columns of tx.
func record(tx Transaction) []string {
	return []string{
		"", // account
		tx.Date.In(Timezone).Format(DateTimeFormat),
		string(tx.Ticker),
		string(tx.Currency),
		"", // name
		"", // asset class
		tx.Type.Label(),
		FormatDecimal(tx.Amount),
		FormatDecimal(tx.Price),
		FormatDecimal(tx.Fee),
		FormatDecimal(tx.PLNRate),
		FormatDecimal(tx.NominalPrice),
		FormatDecimal(tx.TotalPLN),
		"", // key
		"", // XIRR
		tx.Comment,
	}
}

// EncodeLedger writes all transactions to w, in order.
func EncodeLedger(w io.Writer, txs []Transaction) error {
	e := NewEncoder(w)
	for _, tx := range txs {
		if err := e.Encode(tx); err != nil {
			return fmt.Errorf("cannot write ledger row %v: %w", tx, err)
		}
	}
	return e.Flush()
}

// DecodeLedger reads ledger rows from r.
func DecodeLedger(r io.Reader) ([]Transaction, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = Columns

	var txs []Transaction
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return txs, nil
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read ledger: %w", err)
		}
		tx, err := parseRecord(rec)
		if err != nil {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("invalid ledger row at line %d: %w", line, err)
		}
		txs = append(txs, tx)
	}
}

// parseRecord is the inverse of record.
func parseRecord(rec []string) (tx Transaction, err error) {
	tx.Date, err = time.ParseInLocation(DateTimeFormat, rec[1], Timezone)
	if err != nil {
		return tx, fmt.Errorf("invalid date %q: %w", rec[1], err)
	}
	tx.Ticker = Ticker(rec[2])
	if tx.Currency, err = ParseCurrency(rec[3]); err != nil {
		return tx, err
	}
	if tx.Type, err = ParseTxType(rec[6]); err != nil {
		return tx, err
	}
	numbers := []struct {
		dst *decimal.Decimal
		src string
	}{
		{&tx.Amount, rec[7]},
		{&tx.Price, rec[8]},
		{&tx.Fee, rec[9]},
		{&tx.PLNRate, rec[10]},
		{&tx.NominalPrice, rec[11]},
		{&tx.TotalPLN, rec[12]},
	}
	for _, n := range numbers {
		if *n.dst, err = ParseDecimal(n.src); err != nil {
			return tx, err
		}
	}
	tx.Comment = rec[15]
	return tx, nil
}
