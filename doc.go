// Package valutatrade implements a personal multi-currency trading ledger
// simulator. Users register, log in, hold one balance per currency
// ("wallets") inside a single portfolio, and buy or sell currencies against a
// locally stored table of exchange rates.
//
// The core functionalities include:
//   - Wallets and Portfolios: balances that never go negative, at most one
//     wallet per currency code.
//   - Rate Lookup: a directed, not necessarily symmetric, table of rates
//     where a missing entry means "unavailable", not zero.
//   - Accounts: salted SHA-256 credentials, with a fresh salt on every
//     password change.
//   - Trading: Buy and Sell orchestrate the three above and persist the
//     result.
//   - Data Persistence: users.json, portfolios.json and rates.json, plain
//     JSON files in a data directory.
//
// This package serves as the foundational logic for the `vt` command-line
// tool.
package valutatrade
