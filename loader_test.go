package finanza

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
)

func TestSaveLoadLedger(t *testing.T) {
	dir := t.TempDir()
	l := testLedger(100, 0)
	if _, err := l.AddTransaction(TransactionInput{
		Type: Expense, Amount: USD(10), AccountID: "usd", CategoryID: "1",
		Note: "Almuerzo", Date: NewDate(2025, 4, 2),
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := l.AddDebt("Tarjeta", IOwe, USD(50), NewDate(2025, 12, 1)); err != nil {
		t.Fatal(err)
	}

	if err := SaveLedger(dir, l); err != nil {
		t.Fatal(err)
	}
	got, err := LoadLedger(dir)
	if err != nil {
		t.Fatal(err)
	}

	if got.Profile() != testProfile {
		t.Errorf("profile = %+v, want %+v", got.Profile(), testProfile)
	}
	if !balance(got, "usd").Equal(USD(90)) {
		t.Errorf("reloaded balance = %v, want %v", balance(got, "usd"), USD(90))
	}
	if len(got.Transactions()) != 1 || got.Transactions()[0].Note != "Almuerzo" {
		t.Errorf("reloaded transactions = %+v", got.Transactions())
	}
	if len(got.Debts()) != 1 || got.Debts()[0].Name != "Tarjeta" {
		t.Errorf("reloaded debts = %+v", got.Debts())
	}
	if got.Streak() != l.Streak() {
		t.Errorf("reloaded streak = %+v, want %+v", got.Streak(), l.Streak())
	}
	if len(got.Categories()) != len(DefaultCategories()) {
		t.Errorf("reloaded %d categories", len(got.Categories()))
	}
}

// Transactions are rewritten in chronological order on save, whatever the
// posting order was.
func TestSaveLedger_SortsChronologically(t *testing.T) {
	dir := t.TempDir()
	l := testLedger(100, 0)
	for _, on := range []Date{NewDate(2025, 4, 3), NewDate(2025, 4, 1), NewDate(2025, 4, 2)} {
		if _, err := l.AddTransaction(TransactionInput{
			Type: Expense, Amount: USD(1), AccountID: "usd", CategoryID: "1", Date: on,
		}); err != nil {
			t.Fatal(err)
		}
	}
	if err := SaveLedger(dir, l); err != nil {
		t.Fatal(err)
	}
	got, err := LoadLedger(dir)
	if err != nil {
		t.Fatal(err)
	}
	txs := got.Transactions()
	for i := 1; i < len(txs); i++ {
		if txs[i].Date.Before(txs[i-1].Date) {
			t.Errorf("transactions out of order: %v before %v", txs[i].Date, txs[i-1].Date)
		}
	}
}

func TestLoadLedger_NoProfile(t *testing.T) {
	_, err := LoadLedger(t.TempDir())
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadLedger() on empty dir error = %v, want fs.ErrNotExist", err)
	}
}

// A profile alone is a valid, empty ledger with the default categories.
func TestLoadLedger_MissingCollections(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, profileFile),
		[]byte("country: Venezuela\nmainCurrency: USD\nsecondaryCurrency: VES\n"), 0644); err != nil {
		t.Fatal(err)
	}
	l, err := LoadLedger(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(l.Accounts()) != 0 || len(l.Transactions()) != 0 {
		t.Errorf("empty ledger has data: %+v", l)
	}
	if len(l.Categories()) != len(DefaultCategories()) {
		t.Errorf("missing categories file did not fall back to defaults")
	}
}

func TestCachedRate(t *testing.T) {
	dir := t.TempDir()

	// Nothing cached yet.
	rate, on, err := LoadCachedRate(dir)
	if err != nil || !rate.IsZero() || !on.IsZero() {
		t.Fatalf("LoadCachedRate(empty) = %v, %v, %v", rate, on, err)
	}

	want := decimal.NewFromFloat(36.58)
	fetched := NewDate(2025, 6, 1)
	if err := SaveCachedRate(dir, want, fetched); err != nil {
		t.Fatal(err)
	}
	rate, on, err = LoadCachedRate(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !rate.Equal(want) || on != fetched {
		t.Errorf("LoadCachedRate() = %v on %v, want %v on %v", rate, on, want, fetched)
	}

	if err := SaveCachedRate(dir, decimal.Zero, fetched); err == nil {
		t.Error("SaveCachedRate() accepted a zero rate")
	}
}
