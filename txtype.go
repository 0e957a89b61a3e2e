package inwestomat

import "fmt"

// TxType is the kind of a ledger transaction.
type TxType string

// Transaction types known by the ledger.
const (
	Buy              TxType = "BUY"
	Sell             TxType = "SELL"
	Deposit          TxType = "DEPOSIT"
	Withdraw         TxType = "WITHDRAW"
	DividendInterest TxType = "DIVIDEND_INTEREST"
	Costs            TxType = "COSTS"
	Split            TxType = "SPLIT"
)

// TxTypes lists all transaction types.
var TxTypes = []TxType{Buy, Sell, Deposit, Withdraw, DividendInterest, Costs, Split}

// Label returns the Polish label the ledger uses for t.
func (t TxType) Label() string {
	switch t {
	case Buy:
		return "Zakup"
	case Sell:
		return "Sprzedaż"
	case Deposit:
		return "Wpłata środków"
	case Withdraw:
		return "Wypłata środków"
	case DividendInterest:
		return "Dywidenda / Odsetki"
	case Costs:
		return "Koszty"
	case Split:
		return "Split"
	}
	return string(t)
}

// ParseTxType returns the transaction type whose ledger label is label.
func ParseTxType(label string) (TxType, error) {
	for _, t := range TxTypes {
		if t.Label() == label {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown transaction label %q", label)
}

// IsTrade reports whether t is BUY or SELL.
func (t TxType) IsTrade() bool { return t == Buy || t == Sell }

// IsCashMovement reports whether t is DEPOSIT or WITHDRAW.
func (t TxType) IsCashMovement() bool { return t == Deposit || t == Withdraw }

// Opposite returns the other side of a trade: SELL for BUY and BUY for SELL.
// It panics for non trade types.
func (t TxType) Opposite() TxType {
	switch t {
	case Buy:
		return Sell
	case Sell:
		return Buy
	}
	panic(fmt.Sprintf("transaction type %s has no opposite", t))
}
