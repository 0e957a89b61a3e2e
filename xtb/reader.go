package xtb

import (
	"encoding/csv"
	"fmt"
	"io"
	"iter"
	"regexp"
	"strings"
	"time"

	"github.com/etnz/inwestomat"
	"github.com/shopspring/decimal"
)

// TimeFormat is the layout of the Time column.
const TimeFormat = "02.01.2006 15:04:05"

type kind int

const (
	kindBuySell kind = iota
	kindDepositWithdraw
	kindDividendInterest
	kindCosts
)

// labels maps every recognized Type column value to the operation it denotes.
var labels = map[string]kind{
	"Zakup akcji/ETF":     kindBuySell,
	"Sprzedaż akcji/ETF":  kindBuySell,
	"Stocks/ETF purchase": kindBuySell,
	"Stocks/ETF sale":     kindBuySell,

	"Wpłata":     kindDepositWithdraw,
	"Wypłata":    kindDepositWithdraw,
	"Deposit":    kindDepositWithdraw,
	"Withdrawal": kindDepositWithdraw,

	"Dywidenda":                  kindDividendInterest,
	"Odsetki od wolnych środków": kindDividendInterest,
	"DIVIDENT":                   kindDividendInterest,
	"Free-funds Interest":        kindDividendInterest,

	"Podatek od dywidend":                   kindCosts,
	"Podatek od odsetek od wolnych środków": kindCosts,
	"Withholding Tax":                       kindCosts,
	"Free-funds Interest Tax":               kindCosts,
}

// commentRE matches a trade comment like "OPEN BUY 3/5 @ 212.40".
var commentRE = regexp.MustCompile(`^(?:OPEN|CLOSE) BUY (\d+(?:\.\d+)?)(?:/\d+(?:\.\d+)?)? @ (\d+(?:\.\d+)?)$`)

// columns read from the history, located by their header name.
var columns = []string{"ID", "Type", "Time", "Symbol", "Comment", "Amount"}

// ReadTransactions reads cash operations from a semicolon separated XTB export.
//
// The first row must be the header. The sequence stops at the first error.
func ReadTransactions(r io.Reader) iter.Seq2[Tx, error] {
	return func(yield func(Tx, error) bool) {
		cr := csv.NewReader(r)
		cr.Comma = ';'
		cr.FieldsPerRecord = -1
		cr.LazyQuotes = true

		header, err := cr.Read()
		if err == io.EOF {
			return
		}
		if err != nil {
			yield(nil, fmt.Errorf("cannot read header: %w", err))
			return
		}
		index, err := indexColumns(header)
		if err != nil {
			yield(nil, err)
			return
		}

		for row := 2; ; row++ {
			record, err := cr.Read()
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(nil, fmt.Errorf("row %d: %w", row, err))
				return
			}
			if isBlank(record) {
				continue
			}
			fields := make(map[string]string, len(columns))
			for name, i := range index {
				if i < len(record) {
					fields[name] = strings.TrimSpace(record[i])
				}
			}
			tx, err := parseRow(fields)
			if err != nil {
				yield(nil, fmt.Errorf("row %d: %w", row, err))
				return
			}
			if !yield(tx, nil) {
				return
			}
		}
	}
}

// indexColumns returns the position of every needed column in header.
func indexColumns(header []string) (map[string]int, error) {
	index := make(map[string]int, len(columns))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		index[name] = i
	}
	var missing []string
	for _, name := range columns {
		if _, ok := index[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing columns %s in header", strings.Join(missing, ", "))
	}
	return index, nil
}

func isBlank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func parseRow(fields map[string]string) (Tx, error) {
	k, ok := labels[fields["Type"]]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownType, fields["Type"])
	}
	t, err := time.ParseInLocation(TimeFormat, fields["Time"], inwestomat.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid time %q: %w", fields["Time"], err)
	}
	amount, err := decimal.NewFromString(fields["Amount"])
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", fields["Amount"], err)
	}
	h := Header{ID: fields["ID"], Time: t, CurrencyAmount: amount}

	switch k {
	case kindBuySell:
		units, price, err := parseComment(fields["Comment"])
		if err != nil {
			return nil, err
		}
		typ := inwestomat.Sell
		if amount.IsNegative() {
			typ = inwestomat.Buy
		}
		return BuySell{Header: h, Type: typ, Symbol: fields["Symbol"], AssetAmount: units, Price: price}, nil

	case kindDepositWithdraw:
		typ := inwestomat.Deposit
		if amount.IsNegative() {
			typ = inwestomat.Withdraw
		}
		return DepositWithdraw{Header: h, Type: typ}, nil

	case kindDividendInterest:
		return DividendInterest{Header: h, Symbol: fields["Symbol"]}, nil

	case kindCosts:
		return Costs{Header: h, Symbol: fields["Symbol"]}, nil
	}
	panic(fmt.Sprintf("unexpected operation kind %d", k))
}

// parseComment returns the executed units and the price of a trade comment.
func parseComment(comment string) (units, price decimal.Decimal, err error) {
	m := commentRE.FindStringSubmatch(comment)
	if m == nil {
		return units, price, fmt.Errorf("%w %q", ErrComment, comment)
	}
	if units, err = decimal.NewFromString(m[1]); err != nil {
		return units, price, fmt.Errorf("%w %q: %w", ErrComment, comment, err)
	}
	if price, err = decimal.NewFromString(m[2]); err != nil {
		return units, price, fmt.Errorf("%w %q: %w", ErrComment, comment, err)
	}
	return units, price, nil
}
