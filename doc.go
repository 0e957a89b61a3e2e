// Package inwestomat converts transaction exports from exchanges and brokers
// into the ledger format imported by the Inwestomat portfolio spreadsheet.
//
// The package holds the canonical ledger row ([Transaction]), the closed sets
// of transaction types and account currencies, the two lookup ports the
// conversion rules depend on ([PriceFunc] and [RateFunc]) and the ledger
// encoding itself.
//
// Exchange specific readers and conversion rules live in sub packages:
//   - binance: spot trade history (xlsx), each trade split into a SELL and a
//     BUY leg valued in PLN.
//   - xtb: cash operations history (csv), each operation converted into an
//     asset leg and, for non PLN accounts, a mirrored currency leg.
//
// Both rules are pure: prices and rates are resolved beforehand through the
// lookup ports, so they can be substituted in tests.
//
// This package serves as the foundational logic for the `inw` command-line
// tool.
package inwestomat
