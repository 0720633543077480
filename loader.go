package finanza

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// File names inside the data directory, one document per collection.
const (
	profileFile      = "profile.yaml"
	accountsFile     = "accounts.jsonl"
	transactionsFile = "transactions.jsonl"
	debtsFile        = "debts.jsonl"
	recurringFile    = "recurring.jsonl"
	categoriesFile   = "categories.jsonl"
	streakFile       = "streak.jsonl"
	rateFile         = "rate.jsonl"
)

// LoadLedger reads the whole ledger state from a data directory.
//
// A missing profile means the user never ran setup: the error wraps
// fs.ErrNotExist so callers can tell that apart from corruption. Missing
// collection files are simply empty collections; a missing categories file
// falls back to the default directory.
func LoadLedger(path string) (*Ledger, error) {
	var profile Profile
	data, err := os.ReadFile(filepath.Join(path, profileFile))
	if err != nil {
		return nil, fmt.Errorf("could not read profile in %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("could not parse profile in %q: %w", path, err)
	}

	l := NewLedger(profile)
	if l.accounts, err = loadOne(path, accountsFile, DecodeAccounts); err != nil {
		return nil, err
	}
	if l.transactions, err = loadOne(path, transactionsFile, DecodeTransactions); err != nil {
		return nil, err
	}
	if l.debts, err = loadOne(path, debtsFile, DecodeDebts); err != nil {
		return nil, err
	}
	if l.recurring, err = loadOne(path, recurringFile, DecodeRecurring); err != nil {
		return nil, err
	}
	categories, err := loadOne(path, categoriesFile, DecodeCategories)
	if err != nil {
		return nil, err
	}
	if categories != nil {
		l.categories = categories
	}
	streak, err := loadOne(path, streakFile, DecodeStreak)
	if err != nil {
		return nil, err
	}
	l.streak = streak
	return l, nil
}

// SaveLedger persists the whole ledger state into a data directory, creating
// it if needed. Transactions are written in chronological order so the file
// diffs cleanly under version control.
func SaveLedger(path string, l *Ledger) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("could not create data directory %q: %w", path, err)
	}
	data, err := yaml.Marshal(l.profile)
	if err != nil {
		return fmt.Errorf("could not marshal profile: %w", err)
	}
	if err := os.WriteFile(filepath.Join(path, profileFile), data, 0644); err != nil {
		return fmt.Errorf("could not write profile: %w", err)
	}

	l.stableSort()
	if err := saveCollection(path, accountsFile, l.accounts, EncodeAccounts); err != nil {
		return err
	}
	if err := saveCollection(path, transactionsFile, l.transactions, EncodeTransactions); err != nil {
		return err
	}
	if err := saveCollection(path, debtsFile, l.debts, EncodeDebts); err != nil {
		return err
	}
	if err := saveCollection(path, recurringFile, l.recurring, EncodeRecurring); err != nil {
		return err
	}
	if err := saveCollection(path, categoriesFile, l.categories, EncodeCategories); err != nil {
		return err
	}
	return saveCollection(path, streakFile, l.streak, EncodeStreak)
}

// loadOne opens a file and runs a decoder over it. A missing file yields the
// decoder result on an empty value.
func loadOne[T any](path, name string, decode func(io.Reader) (T, error)) (T, error) {
	var zero T
	f, err := os.Open(filepath.Join(path, name))
	if errors.Is(err, fs.ErrNotExist) {
		return zero, nil
	}
	if err != nil {
		return zero, fmt.Errorf("could not open %q: %w", name, err)
	}
	defer f.Close()
	v, err := decode(f)
	if err != nil {
		return zero, fmt.Errorf("could not decode %q: %w", name, err)
	}
	return v, nil
}

// saveCollection encodes one collection into its file.
func saveCollection[T any](path, name string, items T, encode func(io.Writer, T) error) error {
	f, err := os.Create(filepath.Join(path, name))
	if err != nil {
		return fmt.Errorf("could not create %q: %w", name, err)
	}
	defer f.Close()
	if err := encode(f, items); err != nil {
		return fmt.Errorf("could not encode %q: %w", name, err)
	}
	return nil
}

// cachedRate is the last successfully fetched exchange rate, kept on disk so
// a failed fetch degrades to yesterday's rate instead of no rate at all.
type cachedRate struct {
	Date Date            `json:"date"`
	Rate decimal.Decimal `json:"rate"`
}

func (c cachedRate) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", c.Date)
	w.Append("rate", c.Rate)
	return w.MarshalJSON()
}

// LoadCachedRate returns the last stored exchange rate and the day it was
// fetched. A zero rate means no rate has ever been cached.
func LoadCachedRate(path string) (decimal.Decimal, Date, error) {
	c, err := loadOne(path, rateFile, func(r io.Reader) (cachedRate, error) {
		rates, err := decodeLines(r, func(c cachedRate) cachedRate { return c })
		if err != nil || len(rates) == 0 {
			return cachedRate{}, err
		}
		return rates[0], nil
	})
	if err != nil {
		return decimal.Decimal{}, Date{}, err
	}
	return c.Rate, c.Date, nil
}

// SaveCachedRate stores a freshly fetched exchange rate. Non-positive rates
// are rejected: a bad fetch must never clobber a good cache.
func SaveCachedRate(path string, rate decimal.Decimal, on Date) error {
	if !rate.IsPositive() {
		return invalidf("refusing to cache non-positive rate %s", rate)
	}
	return saveCollection(path, rateFile, []cachedRate{{Date: on, Rate: rate}},
		func(w io.Writer, items []cachedRate) error { return encodeLines(w, items) })
}
