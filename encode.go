package konto

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/shopspring/decimal"
)

// Persisted attribute names.
const (
	attrClassName        = "CLASSNAME"
	attrDate             = "date"
	attrAmount           = "amount"
	attrDescription      = "description"
	attrIncomingInterest = "incomingInterest"
	attrOutgoingInterest = "outgoingInterest"
	attrSender           = "sender"
	attrRecipient        = "recipient"
)

// The encoding of a transaction is a flat JSON object with the discriminator
// first, then the common attributes, then the attributes of its kind:
//
//	{"CLASSNAME":"Payment","date":"01.01.2024","amount":100,"description":"rent","incomingInterest":0.1,"outgoingInterest":0.2}
//	{"CLASSNAME":"OutgoingTransfer","date":"02.01.2024","amount":20,"description":"gift","sender":"alice","recipient":"bob"}
//
// A whole account is a JSON array of such objects.

// MarshalJSON implements the json.Marshaler interface for Transaction.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w recordWriter
	w.Field(attrClassName, t.kind)
	w.Field(attrDate, t.date)
	w.Field(attrAmount, t.amount)
	w.Field(attrDescription, t.description)
	switch t.kind {
	case Payment:
		w.Field(attrIncomingInterest, t.incomingInterest)
		w.Field(attrOutgoingInterest, t.outgoingInterest)
	case Transfer, IncomingTransfer, OutgoingTransfer:
		w.Field(attrSender, t.sender)
		w.Field(attrRecipient, t.recipient)
	default:
		return nil, fmt.Errorf("cannot encode transaction of unknown kind %q", t.kind)
	}
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Transaction.
// See DecodeTransaction.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	tx, err := DecodeTransaction(data)
	if err != nil {
		return err
	}
	*t = tx
	return nil
}

// DecodeTransaction decodes a single record.
//
// The discriminator is read first and must name one of the known kinds,
// otherwise a *ParseError is returned. The other attributes go through the
// constructor of that kind, so an invalid value yields the same
// *AttributeError as building the transaction directly.
func DecodeTransaction(data []byte) (Transaction, error) {
	var record map[string]json.RawMessage
	if err := json.Unmarshal(data, &record); err != nil {
		return Transaction{}, &ParseError{Reason: "record is not a JSON object", Err: err}
	}
	raw, ok := record[attrClassName]
	if !ok {
		return Transaction{}, &ParseError{Reason: fmt.Sprintf("missing the property %q", attrClassName)}
	}
	var name string
	if err := json.Unmarshal(raw, &name); err != nil {
		return Transaction{}, &ParseError{Reason: fmt.Sprintf("property %q must be of type 'string'", attrClassName), Err: err}
	}
	kind, err := ParseKind(name)
	if err != nil {
		return Transaction{}, &ParseError{Reason: fmt.Sprintf("property %q", attrClassName), Err: err}
	}

	// Attributes are looked up by their exact name, the ones of other kinds
	// are ignored.
	var (
		date, description, sender, recipient       string
		amount, incomingInterest, outgoingInterest decimal.Decimal
	)
	attrs := map[string]any{attrDate: &date, attrAmount: &amount, attrDescription: &description}
	if kind == Payment {
		attrs[attrIncomingInterest] = &incomingInterest
		attrs[attrOutgoingInterest] = &outgoingInterest
	} else {
		attrs[attrSender] = &sender
		attrs[attrRecipient] = &recipient
	}
	for _, name := range slices.Sorted(maps.Keys(attrs)) {
		raw, ok := record[name]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, attrs[name]); err != nil {
			return Transaction{}, &ParseError{Reason: fmt.Sprintf("invalid %s attribute %q", kind, name), Err: err}
		}
	}

	var tx Transaction
	if kind == Payment {
		tx, err = newPayment(date, amount, description, incomingInterest, outgoingInterest)
	} else {
		tx, err = newTransfer(kind, date, amount, description, sender, recipient)
	}
	if err != nil {
		return Transaction{}, err
	}
	return tx, nil
}

// EncodeTransaction writes a single record followed by a newline.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	data, err := tx.MarshalJSON()
	if err != nil {
		return err
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write transaction: %w", err)
	}
	return nil
}

// EncodeAccount writes the transactions of an account as an indented JSON
// array, in order.
func EncodeAccount(w io.Writer, txs []Transaction) error {
	if txs == nil {
		txs = []Transaction{} // "[]" rather than "null"
	}
	data, err := json.MarshalIndent(txs, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode account: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write account: %w", err)
	}
	return nil
}

// DecodeAccount reads a JSON array of records as written by EncodeAccount.
// It fails on the first record that cannot be decoded, errors are prefixed
// with the record position.
func DecodeAccount(r io.Reader) ([]Transaction, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read account: %w", err)
	}
	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &ParseError{Reason: "account is not a JSON array", Err: err}
	}
	if records == nil {
		return nil, &ParseError{Reason: "account is null, not a JSON array"}
	}
	txs := make([]Transaction, 0, len(records))
	for i, record := range records {
		tx, err := DecodeTransaction(record)
		if err != nil {
			return nil, fmt.Errorf("record #%d: %w", i+1, err)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}
