package binance

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
	"time"

	"github.com/etnz/inwestomat"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// columns is the number of columns of the trade history sheet:
//
//	Date(UTC), Pair, Side, Price, Executed, Amount, Fee, Fee Coin
const columns = 8

// dateLayouts are the accepted text formats of the Date(UTC) column.
var dateLayouts = []string{time.DateTime, "2006-01-02T15:04:05"}

// ReadTransactions reads trades from the active sheet of a Binance trade
// history workbook.
//
// The first row is a header. Reading stops at the first row with an empty
// cell. The sequence stops at the first error.
func ReadTransactions(r io.Reader) iter.Seq2[Tx, error] {
	return func(yield func(Tx, error) bool) {
		f, err := excelize.OpenReader(r)
		if err != nil {
			yield(Tx{}, fmt.Errorf("cannot open workbook: %w", err))
			return
		}
		defer f.Close()

		sheet := f.GetSheetName(f.GetActiveSheetIndex())
		rows, err := f.Rows(sheet)
		if err != nil {
			yield(Tx{}, fmt.Errorf("cannot read sheet %q: %w", sheet, err))
			return
		}
		defer rows.Close()

		rows.Next() // skip header
		for line := 2; rows.Next(); line++ {
			cells, err := rows.Columns(excelize.Options{RawCellValue: true})
			if err != nil {
				yield(Tx{}, fmt.Errorf("cannot read row %d: %w", line, err))
				return
			}
			if blank(cells) {
				return
			}
			tx, err := parseRow(cells)
			if err != nil {
				yield(Tx{}, fmt.Errorf("invalid trade at row %d: %w", line, err))
				return
			}
			if !yield(tx, nil) {
				return
			}
		}
		if err := rows.Error(); err != nil {
			yield(Tx{}, fmt.Errorf("cannot read sheet %q: %w", sheet, err))
		}
	}
}

// blank reports whether one of the trade cells is empty.
func blank(cells []string) bool {
	if len(cells) < columns {
		return true
	}
	for _, c := range cells[:columns] {
		if strings.TrimSpace(c) == "" {
			return true
		}
	}
	return false
}

// parseRow parses the cells of a non blank row.
func parseRow(cells []string) (tx Tx, err error) {
	if tx.Date, err = parseDate(cells[0]); err != nil {
		return tx, err
	}
	if tx.Market, err = DefaultQuoteAssets.Split(strings.TrimSpace(cells[1])); err != nil {
		return tx, err
	}
	switch side := inwestomat.TxType(strings.TrimSpace(cells[2])); side {
	case inwestomat.Buy, inwestomat.Sell:
		tx.Type = side
	default:
		return tx, fmt.Errorf("%w %q", ErrUnknownSide, cells[2])
	}

	numbers := []struct {
		name string
		dst  *decimal.Decimal
		src  string
	}{
		{"price", &tx.Price, cells[3]},
		{"executed", &tx.Amount, cells[4]},
		{"amount", &tx.Total, cells[5]},
		{"fee", &tx.Fee, cells[6]},
	}
	for _, n := range numbers {
		if *n.dst, err = decimal.NewFromString(strings.TrimSpace(n.src)); err != nil {
			return tx, fmt.Errorf("invalid %s %q: %w", n.name, n.src, err)
		}
	}
	tx.FeeCoin = inwestomat.Ticker(strings.TrimSpace(cells[7]))
	return tx, nil
}

// parseDate parses the Date(UTC) column, either text or a spreadsheet date.
func parseDate(cell string) (time.Time, error) {
	cell = strings.TrimSpace(cell)
	for _, layout := range dateLayouts {
		if on, err := time.Parse(layout, cell); err == nil {
			return on, nil
		}
	}
	if serial, err := strconv.ParseFloat(cell, 64); err == nil {
		on, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date %q: %w", cell, err)
		}
		return on.UTC().Round(time.Second), nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q want format %q", cell, time.DateTime)
}
