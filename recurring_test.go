package finanza

import (
	"strings"
	"testing"
)

func TestNextDueDate(t *testing.T) {
	from := NewDate(2025, 1, 15)

	tests := []struct {
		name     string
		freq     Frequency
		interval int
		unit     CustomUnit
		want     Date
	}{
		{"daily", Daily, 0, "", NewDate(2025, 1, 16)},
		{"weekly", Weekly, 0, "", NewDate(2025, 1, 22)},
		{"biweekly is fifteen days", Biweekly, 0, "", NewDate(2025, 1, 30)},
		{"monthly", Monthly, 0, "", NewDate(2025, 2, 15)},
		{"yearly", Yearly, 0, "", NewDate(2026, 1, 15)},
		{"custom days", Custom, 10, Days, NewDate(2025, 1, 25)},
		{"custom weeks", Custom, 2, Weeks, NewDate(2025, 1, 29)},
		{"custom months", Custom, 3, Months, NewDate(2025, 4, 15)},
		{"custom years", Custom, 2, Years, NewDate(2027, 1, 15)},
		{"custom defaults to one month", Custom, 0, "", NewDate(2025, 2, 15)},
		{"unknown falls back to monthly", Frequency("WHENEVER"), 0, "", NewDate(2025, 2, 15)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextDueDate(from, tt.freq, tt.interval, tt.unit); got != tt.want {
				t.Errorf("NextDueDate() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestProcessDue_OneStepPerCall checks the catch-up pacing: a template overdue
// by several periods materializes exactly one occurrence per call, dated at
// the due date, and advances by a single period.
func TestProcessDue_OneStepPerCall(t *testing.T) {
	l := testLedger(100, 0)
	due := NewDate(2025, 1, 5)
	l.recurring = []RecurringTransaction{{
		ID: "r1", Amount: USD(20), Type: Expense, AccountID: "usd",
		CategoryID: "3", Note: "Internet", Frequency: Monthly,
		NextDueDate: due, Active: true,
	}}

	today := due.Add(95) // three-odd months late
	generated := l.ProcessDue(today)
	if len(generated) != 1 {
		t.Fatalf("ProcessDue() generated %d transactions, want 1", len(generated))
	}
	tx := generated[0]
	if tx.Date != due {
		t.Errorf("occurrence dated %v, want the due date %v", tx.Date, due)
	}
	if tx.Note != "(Recurrente) Internet" {
		t.Errorf("occurrence note = %q", tx.Note)
	}
	if !balance(l, "usd").Equal(USD(80)) {
		t.Errorf("balance = %v, want %v", balance(l, "usd"), USD(80))
	}
	if next := l.recurring[0].NextDueDate; next != NewDate(2025, 2, 5) {
		t.Errorf("template advanced to %v, want one month", next)
	}

	// A second call catches up by one more period, no further.
	generated = l.ProcessDue(today)
	if len(generated) != 1 {
		t.Fatalf("second ProcessDue() generated %d, want 1", len(generated))
	}
	if !balance(l, "usd").Equal(USD(60)) {
		t.Errorf("balance = %v, want %v", balance(l, "usd"), USD(60))
	}
}

func TestProcessDue_NotYetDue(t *testing.T) {
	l := testLedger(100, 0)
	l.recurring = []RecurringTransaction{{
		ID: "r1", Amount: USD(20), Type: Expense, AccountID: "usd",
		CategoryID: "3", Frequency: Monthly,
		NextDueDate: NewDate(2025, 3, 1), Active: true,
	}}

	if got := l.ProcessDue(NewDate(2025, 2, 28)); got != nil {
		t.Fatalf("ProcessDue() before due date generated %d transactions", len(got))
	}
	// Due exactly today fires.
	if got := l.ProcessDue(NewDate(2025, 3, 1)); len(got) != 1 {
		t.Fatalf("ProcessDue() on due date generated %d, want 1", len(got))
	}
}

func TestProcessDue_InactiveSkipped(t *testing.T) {
	l := testLedger(100, 0)
	l.recurring = []RecurringTransaction{{
		ID: "r1", Amount: USD(20), Type: Expense, AccountID: "usd",
		CategoryID: "3", Frequency: Monthly,
		NextDueDate: NewDate(2025, 1, 1), Active: false,
	}}

	if got := l.ProcessDue(NewDate(2025, 6, 1)); got != nil {
		t.Fatalf("inactive template generated %d transactions", len(got))
	}
	if next := l.recurring[0].NextDueDate; next != NewDate(2025, 1, 1) {
		t.Errorf("inactive template advanced to %v", next)
	}

	// Reactivating resumes the schedule where it stopped.
	if err := l.SetRecurringActive("r1", true); err != nil {
		t.Fatal(err)
	}
	if got := l.ProcessDue(NewDate(2025, 6, 1)); len(got) != 1 {
		t.Fatalf("reactivated template generated %d, want 1", len(got))
	}
}

func TestProcessDue_DeletedAccountSkipped(t *testing.T) {
	l := testLedger(100, 0)
	l.recurring = []RecurringTransaction{{
		ID: "r1", Amount: USD(20), Type: Expense, AccountID: "gone",
		CategoryID: "3", Frequency: Monthly,
		NextDueDate: NewDate(2025, 1, 1), Active: true,
	}}

	if got := l.ProcessDue(NewDate(2025, 2, 1)); got != nil {
		t.Fatalf("orphan template generated %d transactions", len(got))
	}
	if len(l.Transactions()) != 0 {
		t.Errorf("orphan template posted a transaction")
	}
}

// TestProcessDue_Income credits instead of debiting.
func TestProcessDue_Income(t *testing.T) {
	l := testLedger(0, 0)
	l.recurring = []RecurringTransaction{{
		ID: "r1", Amount: USD(500), Type: Income, AccountID: "usd",
		CategoryID: "1", Note: "Salario", Frequency: Biweekly,
		NextDueDate: NewDate(2025, 1, 15), Active: true,
	}}

	if got := l.ProcessDue(NewDate(2025, 1, 15)); len(got) != 1 {
		t.Fatalf("generated %d, want 1", len(got))
	}
	if !balance(l, "usd").Equal(USD(500)) {
		t.Errorf("balance = %v, want %v", balance(l, "usd"), USD(500))
	}
	if next := l.recurring[0].NextDueDate; next != NewDate(2025, 1, 30) {
		t.Errorf("biweekly template advanced to %v, want fifteen days later", next)
	}
}

// TestRecurring_Registration checks that flagging an entry as recurring
// creates a template scheduled one period after the transaction date.
func TestRecurring_Registration(t *testing.T) {
	l := testLedger(1000, 0)
	on := NewDate(2025, 2, 1)
	_, err := l.AddTransaction(TransactionInput{
		Type: Expense, Amount: USD(12), AccountID: "usd", CategoryID: "3",
		Note: "Spotify", Date: on, Recurring: true, Frequency: Monthly,
	})
	if err != nil {
		t.Fatal(err)
	}
	rts := l.Recurring()
	if len(rts) != 1 {
		t.Fatalf("got %d templates, want 1", len(rts))
	}
	rt := rts[0]
	if rt.NextDueDate != on.AddMonth(1) {
		t.Errorf("NextDueDate = %v, want %v", rt.NextDueDate, on.AddMonth(1))
	}
	if !rt.Active || rt.Note != "Spotify" || !rt.Amount.Equal(USD(12)) {
		t.Errorf("template = %+v", rt)
	}
}

// Deleting a materialized occurrence must not touch its template.
func TestRecurring_TemplateSurvivesOccurrenceDeletion(t *testing.T) {
	l := testLedger(100, 0)
	l.recurring = []RecurringTransaction{{
		ID: "r1", Amount: USD(20), Type: Expense, AccountID: "usd",
		CategoryID: "3", Frequency: Monthly,
		NextDueDate: NewDate(2025, 1, 1), Active: true,
	}}
	generated := l.ProcessDue(NewDate(2025, 1, 1))
	if len(generated) != 1 {
		t.Fatal("expected one occurrence")
	}
	if err := l.DeleteTransaction(generated[0].ID); err != nil {
		t.Fatal(err)
	}
	if !balance(l, "usd").Equal(USD(100)) {
		t.Errorf("balance = %v, want the exact reversal", balance(l, "usd"))
	}
	rt := l.Recurring()[0]
	if !rt.Active || rt.NextDueDate != NewDate(2025, 2, 1) {
		t.Errorf("template changed by occurrence deletion: %+v", rt)
	}
	if !strings.HasPrefix(generated[0].Note, recurringNotePrefix) {
		t.Errorf("occurrence note = %q", generated[0].Note)
	}
}
