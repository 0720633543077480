// Package finanza provides the ledger engine behind a local-first personal
// finance tracker for single- and dual-currency households, with a dedicated
// dual-currency mode for Venezuela (USD alongside the local bolívar).
//
// The core functionalities include:
//   - Account Ledger: accounts whose balances are mutated exclusively through
//     the engine's operations.
//   - Transaction Engine: income, expense and transfer recording with exact
//     reversal on deletion, including cross-currency transfers converted at
//     the rate captured when the transaction was created.
//   - Debt Ledger: debts owed and owed-to, partial payments, and the mirror
//     transactions they post against accounts.
//   - Recurring Scheduler: templates materialized into concrete transactions
//     at session start, one occurrence per template per session even when
//     several periods have elapsed. A template overdue by three months
//     therefore catches up one session at a time; callers that surface the
//     generated count to the user should be aware of this pacing.
//   - Streak Tracker: a day-granular activity streak updated by every
//     ledger-mutating user action.
//   - Data Persistence: encoding and decoding of all collections to and from
//     human-readable, version-controllable JSONL documents.
//
// All mutations go through a single Ledger value. The engine is synchronous
// and single-writer: callers must not mutate one Ledger from multiple
// goroutines without external serialization.
//
// This package serves as the foundational logic for the `fzp` command-line
// tool.
package finanza
