package finanza

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// This file contains code to persist the ledger collections in a way that is
// human-readable and git-friendly: one JSONL document per collection, one
// record per line, with canonical key order within each record.

// encodeLines writes each item as a JSON line.
func encodeLines[T any](w io.Writer, items []T) error {
	for _, item := range items {
		data, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("failed to marshal record: %w", err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}
	return nil
}

// decodeLines parses a JSONL stream line by line, skipping blank lines.
func decodeLines[J, T any](r io.Reader, convert func(J) T) ([]T, error) {
	var items []T
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var j J
		if err := json.Unmarshal(line, &j); err != nil {
			return nil, fmt.Errorf("format error in line %q: %w", string(line), err)
		}
		items = append(items, convert(j))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return items, nil
}

// EncodeAccounts writes accounts as JSONL.
func EncodeAccounts(w io.Writer, accounts []Account) error { return encodeLines(w, accounts) }

// DecodeAccounts reads accounts from a JSONL stream.
func DecodeAccounts(r io.Reader) ([]Account, error) {
	return decodeLines(r, jaccount.Account)
}

// EncodeTransactions writes transactions as JSONL, in the order given.
func EncodeTransactions(w io.Writer, transactions []Transaction) error {
	return encodeLines(w, transactions)
}

// DecodeTransactions reads transactions from a JSONL stream.
func DecodeTransactions(r io.Reader) ([]Transaction, error) {
	return decodeLines(r, jtransaction.Transaction)
}

// EncodeDebts writes debts as JSONL.
func EncodeDebts(w io.Writer, debts []Debt) error { return encodeLines(w, debts) }

// DecodeDebts reads debts from a JSONL stream.
func DecodeDebts(r io.Reader) ([]Debt, error) {
	return decodeLines(r, jdebt.Debt)
}

// EncodeRecurring writes recurring templates as JSONL.
func EncodeRecurring(w io.Writer, recurring []RecurringTransaction) error {
	return encodeLines(w, recurring)
}

// DecodeRecurring reads recurring templates from a JSONL stream.
func DecodeRecurring(r io.Reader) ([]RecurringTransaction, error) {
	return decodeLines(r, jrecurring.RecurringTransaction)
}

// EncodeCategories writes the category directory as JSONL.
func EncodeCategories(w io.Writer, categories []Category) error {
	return encodeLines(w, categories)
}

// DecodeCategories reads the category directory from a JSONL stream.
func DecodeCategories(r io.Reader) ([]Category, error) {
	return decodeLines(r, jcategory.Category)
}

// EncodeStreak writes the streak cursor as a single JSON line.
func EncodeStreak(w io.Writer, s Streak) error { return encodeLines(w, []Streak{s}) }

// DecodeStreak reads the streak cursor. An empty stream is the initial state.
func DecodeStreak(r io.Reader) (Streak, error) {
	streaks, err := decodeLines(r, jstreak.Streak)
	if err != nil {
		return Streak{}, err
	}
	if len(streaks) == 0 {
		return Streak{}, nil
	}
	return streaks[0], nil
}
