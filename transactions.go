package konto

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Kind identifies the concrete variant of a transaction.
type Kind string

// Transaction kinds. The set is closed: persisted records naming any other
// kind are rejected.
const (
	Payment          Kind = "Payment"
	Transfer         Kind = "Transfer"
	IncomingTransfer Kind = "IncomingTransfer"
	OutgoingTransfer Kind = "OutgoingTransfer"
)

// Kinds lists all transaction kinds.
var Kinds = []Kind{Payment, Transfer, IncomingTransfer, OutgoingTransfer}

// ParseKind parses the name of a transaction kind.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case Payment, Transfer, IncomingTransfer, OutgoingTransfer:
		return k, nil
	default:
		return "", fmt.Errorf("unknown transaction kind %q", s)
	}
}

// IsTransfer reports whether k belongs to the transfer family.
func (k Kind) IsTransfer() bool {
	return k == Transfer || k == IncomingTransfer || k == OutgoingTransfer
}

// Transaction is a single entry of an account.
//
// Fields that do not belong to the transaction's kind are always zero:
// interest rates are only set on payments, sender and recipient only on
// transfers. Values are built with the New* constructors and never modified
// afterwards, methods that change an attribute return a copy.
type Transaction struct {
	kind        Kind
	date        string // DD.MM.YYYY, never parsed.
	amount      decimal.Decimal
	description string

	// payment only
	incomingInterest decimal.Decimal
	outgoingInterest decimal.Decimal

	// transfer family only
	sender    string
	recipient string
}

// NewPayment creates a payment, either a deposit (positive amount) or a
// withdrawal (negative amount).
//
// Both interest rates must be within [0,1]. On failure it returns an
// *AttributeError along with the transaction built so far, where the rejected
// rate has been reset to 0. That value must be discarded. A value that is NaN
// or infinite is an *AttributeError too, returned with no transaction.
func NewPayment(date string, amount float64, description string, incomingInterest, outgoingInterest float64) (Transaction, error) {
	a, err := newDecimal(attrAmount, amount)
	if err != nil {
		return Transaction{}, err
	}
	in, err := newDecimal(attrIncomingInterest, incomingInterest)
	if err != nil {
		return Transaction{}, err
	}
	out, err := newDecimal(attrOutgoingInterest, outgoingInterest)
	if err != nil {
		return Transaction{}, err
	}
	return newPayment(date, a, description, in, out)
}

func newPayment(date string, amount decimal.Decimal, description string, incomingInterest, outgoingInterest decimal.Decimal) (Transaction, error) {
	t := Transaction{kind: Payment, date: date, amount: amount, description: description}
	return t.setInterest(incomingInterest, outgoingInterest)
}

// setInterest sets both rates in order, stopping at the first invalid one.
func (t Transaction) setInterest(incoming, outgoing decimal.Decimal) (Transaction, error) {
	if err := checkRate(attrIncomingInterest, incoming); err != nil {
		t.incomingInterest = decimal.Zero
		return t, err
	}
	t.incomingInterest = incoming
	if err := checkRate(attrOutgoingInterest, outgoing); err != nil {
		t.outgoingInterest = decimal.Zero
		return t, err
	}
	t.outgoingInterest = outgoing
	return t, nil
}

// NewTransfer creates a transfer of a non negative amount from sender to recipient.
// It returns an *AttributeError and no transaction if the amount is negative
// or not a finite number.
func NewTransfer(date string, amount float64, description, sender, recipient string) (Transaction, error) {
	return newFloatTransfer(Transfer, date, amount, description, sender, recipient)
}

// NewIncomingTransfer creates a transfer received by the account it is added to.
func NewIncomingTransfer(date string, amount float64, description, sender, recipient string) (Transaction, error) {
	return newFloatTransfer(IncomingTransfer, date, amount, description, sender, recipient)
}

// NewOutgoingTransfer creates a transfer sent by the account it is added to.
// Its effective value is the negated amount.
func NewOutgoingTransfer(date string, amount float64, description, sender, recipient string) (Transaction, error) {
	return newFloatTransfer(OutgoingTransfer, date, amount, description, sender, recipient)
}

func newFloatTransfer(kind Kind, date string, amount float64, description, sender, recipient string) (Transaction, error) {
	a, err := newDecimal(attrAmount, amount)
	if err != nil {
		return Transaction{}, err
	}
	return newTransfer(kind, date, a, description, sender, recipient)
}

func newTransfer(kind Kind, date string, amount decimal.Decimal, description, sender, recipient string) (Transaction, error) {
	if err := checkAmount(amount); err != nil {
		return Transaction{}, err
	}
	return Transaction{
		kind:        kind,
		date:        date,
		amount:      amount,
		description: description,
		sender:      sender,
		recipient:   recipient,
	}, nil
}

// Kind returns the transaction's variant.
func (t Transaction) Kind() Kind { return t.kind }

// Date returns the transaction date as it was recorded.
func (t Transaction) Date() string { return t.date }

// Amount returns the raw signed amount.
func (t Transaction) Amount() decimal.Decimal { return t.amount }

// Description returns the free text associated with the transaction.
func (t Transaction) Description() string { return t.description }

// IncomingInterest returns the rate applied to positive payments.
func (t Transaction) IncomingInterest() decimal.Decimal { return t.incomingInterest }

// OutgoingInterest returns the rate applied to negative payments.
func (t Transaction) OutgoingInterest() decimal.Decimal { return t.outgoingInterest }

// Sender returns the name of the sending account of a transfer.
func (t Transaction) Sender() string { return t.sender }

// Recipient returns the name of the receiving account of a transfer.
func (t Transaction) Recipient() string { return t.recipient }

// Calculate returns the effective signed value of the transaction, the one
// used for balances, sorting and filtering.
//
//   - Payment: a positive amount is reduced by the incoming interest, a
//     negative amount is increased (in absolute value) by the outgoing interest.
//   - Transfer and IncomingTransfer: the amount.
//   - OutgoingTransfer: the negated amount.
func (t Transaction) Calculate() decimal.Decimal {
	switch t.kind {
	case Payment:
		switch {
		case t.amount.IsPositive():
			return t.amount.Sub(t.amount.Mul(t.incomingInterest))
		case t.amount.IsNegative():
			return t.amount.Add(t.amount.Mul(t.outgoingInterest))
		default:
			return decimal.Zero
		}
	case OutgoingTransfer:
		return t.amount.Neg()
	default:
		return t.amount
	}
}

// Equal reports whether t and o are the same transaction: same kind, date,
// description, amount and effective value, and for transfers the same sender
// and recipient.
func (t Transaction) Equal(o Transaction) bool {
	if t.kind != o.kind || t.date != o.date || t.description != o.description {
		return false
	}
	if !t.amount.Equal(o.amount) || !t.Calculate().Equal(o.Calculate()) {
		return false
	}
	if t.kind.IsTransfer() {
		return t.sender == o.sender && t.recipient == o.recipient
	}
	return true
}

// WithInterest returns a copy of a payment using the given rates. Transactions
// of other kinds are returned unchanged.
//
// As with NewPayment, an invalid rate yields an *AttributeError and a value
// that must be discarded.
func (t Transaction) WithInterest(incomingInterest, outgoingInterest decimal.Decimal) (Transaction, error) {
	if t.kind != Payment {
		return t, nil
	}
	return t.setInterest(incomingInterest, outgoingInterest)
}

// Clone builds a copy of t through the constructor of its kind, so the copy
// is validated again.
func (t Transaction) Clone() (Transaction, error) {
	switch t.kind {
	case Payment:
		return newPayment(t.date, t.amount, t.description, t.incomingInterest, t.outgoingInterest)
	case Transfer, IncomingTransfer, OutgoingTransfer:
		return newTransfer(t.kind, t.date, t.amount, t.description, t.sender, t.recipient)
	default:
		return Transaction{}, fmt.Errorf("cannot copy transaction of unknown kind %q", t.kind)
	}
}

// Counterparty describes the other side of a transfer as "sender → recipient".
// It is empty for payments.
func (t Transaction) Counterparty() string {
	if !t.kind.IsTransfer() {
		return ""
	}
	return t.sender + " → " + t.recipient
}

// String returns a one line description of the transaction.
func (t Transaction) String() string {
	switch t.kind {
	case Payment:
		return fmt.Sprintf("Payment of %s on %s %q (interest in %s, out %s) = %s",
			t.amount, t.date, t.description, t.incomingInterest, t.outgoingInterest, t.Calculate())
	case Transfer, IncomingTransfer, OutgoingTransfer:
		return fmt.Sprintf("%s of %s on %s %q from %s to %s = %s",
			t.kind, t.amount, t.date, t.description, t.sender, t.recipient, t.Calculate())
	default:
		return "invalid transaction"
	}
}
