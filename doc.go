// Package konto provides a small, local-first ledger for personal or
// small-business bookkeeping.
//
// A Ledger owns a set of named accounts. Each account is an ordered list of
// transactions of one of four kinds:
//   - Payment: a deposit (positive amount) or a withdrawal (negative amount)
//     adjusted by the incoming or outgoing interest rate.
//   - Transfer: a plain transfer between two accounts, never negative.
//   - IncomingTransfer: a transfer received by the account.
//   - OutgoingTransfer: a transfer sent by the account, counted negatively.
//
// Every account is persisted in its own human-readable JSON file named
// "Konto <account>.json" inside the ledger's storage folder. The ledger
// reloads all of them when it is opened again on the same folder.
//
// The package is not safe for concurrent use, neither within a process nor
// across processes sharing the same storage folder.
package konto
