package konto

import (
	"errors"
	"math"
	"testing"
)

func TestPayment_Calculate(t *testing.T) {
	testCases := []struct {
		name     string
		amount   float64
		incoming float64
		outgoing float64
		want     string
	}{
		{name: "deposit reduced by incoming interest", amount: 100, incoming: 0.1, outgoing: 0.2, want: "90"},
		{name: "withdrawal increased by outgoing interest", amount: -100, incoming: 0.1, outgoing: 0.2, want: "-120"},
		{name: "zero amount", amount: 0, incoming: 0.1, outgoing: 0.2, want: "0"},
		{name: "no incoming interest", amount: 50, incoming: 0, outgoing: 1, want: "50"},
		{name: "full outgoing interest", amount: -50, incoming: 0, outgoing: 1, want: "-100"},
		{name: "full incoming interest", amount: 100, incoming: 1, outgoing: 0, want: "0"},
		{name: "fractional amount", amount: 12.5, incoming: 0.04, outgoing: 0, want: "12"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := NewPayment("01.01.2024", tc.amount, "test", tc.incoming, tc.outgoing)
			if err != nil {
				t.Fatalf("NewPayment() returned an unexpected error: %v", err)
			}
			if got := p.Calculate(); !got.Equal(dec(tc.want)) {
				t.Errorf("Calculate() = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestNewPayment_InvalidInterest(t *testing.T) {
	t.Run("incoming above 1", func(t *testing.T) {
		p, err := NewPayment("01.01.2024", 100, "test", 1.5, 0.2)
		var attrErr *AttributeError
		if !errors.As(err, &attrErr) {
			t.Fatalf("NewPayment() error = %v, want an *AttributeError", err)
		}
		if attrErr.Field != attrIncomingInterest {
			t.Errorf("AttributeError.Field = %q, want %q", attrErr.Field, attrIncomingInterest)
		}
		if !p.IncomingInterest().IsZero() {
			t.Errorf("rejected incoming interest = %s, want 0", p.IncomingInterest())
		}
	})

	t.Run("negative outgoing", func(t *testing.T) {
		p, err := NewPayment("01.01.2024", 100, "test", 0.1, -0.1)
		var attrErr *AttributeError
		if !errors.As(err, &attrErr) {
			t.Fatalf("NewPayment() error = %v, want an *AttributeError", err)
		}
		if attrErr.Field != attrOutgoingInterest {
			t.Errorf("AttributeError.Field = %q, want %q", attrErr.Field, attrOutgoingInterest)
		}
		if !p.OutgoingInterest().IsZero() {
			t.Errorf("rejected outgoing interest = %s, want 0", p.OutgoingInterest())
		}
		if !p.IncomingInterest().Equal(dec("0.1")) {
			t.Errorf("valid incoming interest = %s, want 0.1", p.IncomingInterest())
		}
	})

	t.Run("bounds are valid", func(t *testing.T) {
		if _, err := NewPayment("01.01.2024", 100, "test", 0, 1); err != nil {
			t.Errorf("NewPayment() with rates 0 and 1 returned an unexpected error: %v", err)
		}
	})
}

func TestNewTransfer_NegativeAmount(t *testing.T) {
	constructors := map[Kind]func(date string, amount float64, description, sender, recipient string) (Transaction, error){
		Transfer:         NewTransfer,
		IncomingTransfer: NewIncomingTransfer,
		OutgoingTransfer: NewOutgoingTransfer,
	}
	for kind, newTx := range constructors {
		t.Run(string(kind), func(t *testing.T) {
			tx, err := newTx("01.01.2024", -1, "test", "alice", "bob")
			var attrErr *AttributeError
			if !errors.As(err, &attrErr) {
				t.Fatalf("constructor error = %v, want an *AttributeError", err)
			}
			if attrErr.Field != attrAmount {
				t.Errorf("AttributeError.Field = %q, want %q", attrErr.Field, attrAmount)
			}
			if tx != (Transaction{}) {
				t.Errorf("constructor returned %v, want no transaction", tx)
			}
		})
	}
}

func TestNewTransaction_NotFinite(t *testing.T) {
	newPayment := func(amount, incoming, outgoing float64) func() (Transaction, error) {
		return func() (Transaction, error) { return NewPayment("01.01.2024", amount, "x", incoming, outgoing) }
	}
	newTransfer := func(newTx func(string, float64, string, string, string) (Transaction, error), amount float64) func() (Transaction, error) {
		return func() (Transaction, error) { return newTx("01.01.2024", amount, "x", "alice", "bob") }
	}
	testCases := []struct {
		name  string
		newTx func() (Transaction, error)
		field string
	}{
		{"payment NaN amount", newPayment(math.NaN(), 0, 0), attrAmount},
		{"payment -Inf amount", newPayment(math.Inf(-1), 0, 0), attrAmount},
		{"payment NaN incoming", newPayment(1, math.NaN(), 0), attrIncomingInterest},
		{"payment +Inf outgoing", newPayment(-1, 0, math.Inf(1)), attrOutgoingInterest},
		{"transfer +Inf amount", newTransfer(NewTransfer, math.Inf(1)), attrAmount},
		{"incoming NaN amount", newTransfer(NewIncomingTransfer, math.NaN()), attrAmount},
		{"outgoing NaN amount", newTransfer(NewOutgoingTransfer, math.NaN()), attrAmount},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tx, err := tc.newTx()
			var attrErr *AttributeError
			if !errors.As(err, &attrErr) {
				t.Fatalf("constructor error = %v, want an *AttributeError", err)
			}
			if attrErr.Field != tc.field {
				t.Errorf("AttributeError.Field = %q, want %q", attrErr.Field, tc.field)
			}
			if tx != (Transaction{}) {
				t.Errorf("constructor returned %v, want no transaction", tx)
			}
		})
	}
}

func TestTransfer_Calculate(t *testing.T) {
	plain := must(NewTransfer("01.01.2024", 50, "gift", "alice", "bob"))
	incoming := must(NewIncomingTransfer("01.01.2024", 50, "gift", "alice", "bob"))
	outgoing := must(NewOutgoingTransfer("01.01.2024", 50, "gift", "alice", "bob"))

	if got := plain.Calculate(); !got.Equal(dec("50")) {
		t.Errorf("Transfer.Calculate() = %s, want 50", got)
	}
	if got := incoming.Calculate(); !got.Equal(plain.Calculate()) {
		t.Errorf("IncomingTransfer.Calculate() = %s, want %s", got, plain.Calculate())
	}
	if got := outgoing.Calculate(); !got.Equal(plain.Calculate().Neg()) {
		t.Errorf("OutgoingTransfer.Calculate() = %s, want %s", got, plain.Calculate().Neg())
	}
}

func TestTransaction_Equal(t *testing.T) {
	payment := must(NewPayment("01.01.2024", 100, "rent", 0.1, 0.2))
	transfer := must(NewTransfer("01.01.2024", 100, "rent", "alice", "bob"))

	testCases := []struct {
		name string
		a, b Transaction
		want bool
	}{
		{"same payment", payment, must(NewPayment("01.01.2024", 100, "rent", 0.1, 0.2)), true},
		{"payment with another date", payment, must(NewPayment("02.01.2024", 100, "rent", 0.1, 0.2)), false},
		{"payment with another description", payment, must(NewPayment("01.01.2024", 100, "food", 0.1, 0.2)), false},
		{"payment with another amount", payment, must(NewPayment("01.01.2024", 101, "rent", 0.1, 0.2)), false},
		{"payment with another effective value", payment, must(NewPayment("01.01.2024", 100, "rent", 0.3, 0.2)), false},
		{"payment differing by an unused rate", payment, must(NewPayment("01.01.2024", 100, "rent", 0.1, 0.9)), true},
		{"same transfer", transfer, must(NewTransfer("01.01.2024", 100, "rent", "alice", "bob")), true},
		{"transfer with another sender", transfer, must(NewTransfer("01.01.2024", 100, "rent", "carol", "bob")), false},
		{"transfer with another recipient", transfer, must(NewTransfer("01.01.2024", 100, "rent", "alice", "carol")), false},
		{"transfer and incoming transfer", transfer, must(NewIncomingTransfer("01.01.2024", 100, "rent", "alice", "bob")), false},
		{"payment and transfer", must(NewPayment("01.01.2024", 100, "rent", 0, 0)), transfer, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Equal(tc.b); got != tc.want {
				t.Errorf("a.Equal(b) = %v, want %v", got, tc.want)
			}
			if got := tc.b.Equal(tc.a); got != tc.want {
				t.Errorf("b.Equal(a) = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestTransaction_WithInterest(t *testing.T) {
	payment := must(NewPayment("01.01.2024", 100, "rent", 0, 0))

	got, err := payment.WithInterest(dec("0.25"), dec("0.5"))
	if err != nil {
		t.Fatalf("WithInterest() returned an unexpected error: %v", err)
	}
	if !got.Calculate().Equal(dec("75")) {
		t.Errorf("WithInterest().Calculate() = %s, want 75", got.Calculate())
	}
	if !payment.IncomingInterest().IsZero() {
		t.Errorf("WithInterest() modified the original payment: %v", payment)
	}

	if _, err := payment.WithInterest(dec("2"), dec("0")); err == nil {
		t.Error("WithInterest() with a rate of 2 should fail")
	}

	transfer := must(NewOutgoingTransfer("01.01.2024", 10, "gift", "alice", "bob"))
	same, err := transfer.WithInterest(dec("2"), dec("2"))
	if err != nil {
		t.Fatalf("WithInterest() on a transfer returned an unexpected error: %v", err)
	}
	if same != transfer {
		t.Errorf("WithInterest() on a transfer = %v, want it unchanged", same)
	}
}

func TestTransaction_Clone(t *testing.T) {
	for _, tx := range []Transaction{
		must(NewPayment("01.01.2024", -30, "coffee", 0.1, 0.2)),
		must(NewTransfer("01.01.2024", 30, "loan", "alice", "bob")),
		must(NewIncomingTransfer("01.01.2024", 30, "loan", "alice", "bob")),
		must(NewOutgoingTransfer("01.01.2024", 30, "loan", "alice", "bob")),
	} {
		got, err := tx.Clone()
		if err != nil {
			t.Fatalf("Clone() of %v returned an unexpected error: %v", tx, err)
		}
		if !got.Equal(tx) || got.Sender() != tx.Sender() || !got.OutgoingInterest().Equal(tx.OutgoingInterest()) {
			t.Errorf("Clone() = %v, want %v", got, tx)
		}
	}

	if _, err := (Transaction{}).Clone(); err == nil {
		t.Error("Clone() of the zero transaction should fail")
	}
}

func TestParseKind(t *testing.T) {
	for _, kind := range Kinds {
		got, err := ParseKind(string(kind))
		if err != nil || got != kind {
			t.Errorf("ParseKind(%q) = %q, %v", kind, got, err)
		}
	}
	for _, s := range []string{"", "payment", "Loan", "bank.Payment"} {
		if _, err := ParseKind(s); err == nil {
			t.Errorf("ParseKind(%q) should fail", s)
		}
	}
}
