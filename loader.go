package konto

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// An account named "name" is persisted in the file "Konto <name>.json".
const (
	accountFilePrefix = "Konto "
	accountFileSuffix = ".json"
)

// AccountFileName returns the base name of the file persisting an account.
func AccountFileName(account string) string {
	return accountFilePrefix + account + accountFileSuffix
}

// accountName returns the account persisted in the file with base name
// filename, or false if filename does not follow the account file pattern or
// holds a name that CreateAccount would reject.
func accountName(filename string) (string, bool) {
	name, ok := strings.CutPrefix(filename, accountFilePrefix)
	if !ok {
		return "", false
	}
	name, ok = strings.CutSuffix(name, accountFileSuffix)
	if !ok || checkAccountName(name) != nil {
		return "", false
	}
	return name, true
}

// checkAccountName rejects names that cannot be mapped to a file in the
// storage folder.
func checkAccountName(account string) error {
	if account == "" || strings.ContainsAny(account, `/\`) || account != strings.TrimSpace(account) {
		return fmt.Errorf("invalid account name %q: %w", account, fs.ErrInvalid)
	}
	return nil
}

// loadAccounts scans folder for account files and decodes all of them.
// A missing folder is an empty set of accounts; any other failure aborts the
// whole load.
func loadAccounts(folder string) (map[string][]Transaction, error) {
	accounts := make(map[string][]Transaction)
	entries, err := os.ReadDir(folder)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("missing-storage-folder", "folder", folder)
		return accounts, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot scan folder %q for account files: %w", folder, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		account, ok := accountName(entry.Name())
		if !ok {
			if strings.HasPrefix(entry.Name(), accountFilePrefix) {
				slog.Warn("skip-account-file", "name", entry.Name(), "folder", folder)
			}
			continue
		}
		txs, err := loadAccountFile(filepath.Join(folder, entry.Name()))
		if err != nil {
			return nil, err
		}
		accounts[account] = txs
	}
	return accounts, nil
}

// loadAccountFile opens and decodes a single account file.
func loadAccountFile(filename string) ([]Transaction, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot open account file %q: %w", filename, err)
	}
	defer f.Close()

	txs, err := DecodeAccount(f)
	if err != nil {
		return nil, fmt.Errorf("cannot decode account file %q: %w", filename, err)
	}
	slog.Debug("read-account-file", "name", filename, "transactions", len(txs))
	return txs, nil
}

// saveAccount rewrites the file of an account with txs, creating folder if
// needed.
//
// The content is first written to a temporary file in the same folder and
// then renamed, so a failed write leaves the previous file untouched.
func saveAccount(folder, account string, txs []Transaction) (err error) {
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return fmt.Errorf("cannot create storage folder %q: %w", folder, err)
	}
	filename := filepath.Join(folder, AccountFileName(account))

	tmp, err := os.CreateTemp(folder, ".konto-*.tmp")
	if err != nil {
		return fmt.Errorf("cannot create temporary file for %q: %w", filename, err)
	}
	defer func() {
		if err != nil {
			os.Remove(tmp.Name())
		}
	}()

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("cannot write account file %q: %w", filename, err)
	}
	if err := EncodeAccount(tmp, txs); err != nil {
		tmp.Close()
		return fmt.Errorf("cannot write account file %q: %w", filename, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cannot write account file %q: %w", filename, err)
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		return fmt.Errorf("cannot replace account file %q: %w", filename, err)
	}
	slog.Debug("write-account-file", "name", filename, "transactions", len(txs))
	return nil
}
