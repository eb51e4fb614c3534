// Package ledger implements the transaction store: an ordered in-memory
// collection of transactions persisted as a single JSON document.
//
// Records are addressed two ways. Display order is positional, matching the
// order transactions appear in the UI list. Each record also carries an
// opaque Handle issued at insertion; handles are monotonic and never reused,
// so a handle held across deletes either still resolves to its record's
// current position or fails cleanly once the record is gone.
package ledger

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/DioVale2002/finance-tracker/internal/common"
	"github.com/DioVale2002/finance-tracker/internal/model"
)

// Handle is an opaque identifier for a stored transaction. The zero Handle
// is never issued and never resolves.
type Handle uint64

type record struct {
	txn    model.Transaction
	handle Handle
}

// Store owns the ordered transaction sequence for one session.
// It is not safe for concurrent use; the application is single-threaded.
type Store struct {
	path    string
	records []record
	next    Handle
}

// New creates an empty store persisting to the given file path. The file is
// not touched until Restore or Persist is called.
func New(path string) *Store {
	return &Store{
		path: path,
		next: 1,
	}
}

// Path returns the file path the store persists to.
func (s *Store) Path() string {
	return s.path
}

// Len returns the number of stored transactions.
func (s *Store) Len() int {
	return len(s.records)
}

// Add appends a transaction and returns its handle. It always succeeds
// in-process; persistence is a separate concern.
func (s *Store) Add(txn model.Transaction) Handle {
	h := s.next
	s.next++
	s.records = append(s.records, record{txn: txn, handle: h})
	return h
}

// At returns the transaction at the given display position.
func (s *Store) At(index int) (model.Transaction, bool) {
	if index < 0 || index >= len(s.records) {
		return model.Transaction{}, false
	}
	return s.records[index].txn, true
}

// HandleAt returns the handle of the record at the given display position.
func (s *Store) HandleAt(index int) (Handle, bool) {
	if index < 0 || index >= len(s.records) {
		return 0, false
	}
	return s.records[index].handle, true
}

// Resolve returns the current display position of a live handle. It reports
// false once the record has been deleted; handles are never reused, so a
// stale handle can never alias a newer record.
func (s *Store) Resolve(h Handle) (int, bool) {
	if h == 0 {
		return 0, false
	}
	for i := range s.records {
		if s.records[i].handle == h {
			return i, true
		}
	}
	return 0, false
}

// UpdateAt replaces the transaction at the given position in place.
// Out-of-range positions are a no-op returning false.
func (s *Store) UpdateAt(index int, txn model.Transaction) bool {
	if index < 0 || index >= len(s.records) {
		return false
	}
	s.records[index].txn = txn
	return true
}

// Update replaces the transaction identified by handle. Stale handles are a
// no-op returning false.
func (s *Store) Update(h Handle, txn model.Transaction) bool {
	i, ok := s.Resolve(h)
	if !ok {
		return false
	}
	s.records[i].txn = txn
	return true
}

// DeleteAt removes the transaction at the given position, shifting later
// records down by one. Out-of-range positions are a no-op returning false.
func (s *Store) DeleteAt(index int) bool {
	if index < 0 || index >= len(s.records) {
		return false
	}
	s.records = append(s.records[:index], s.records[index+1:]...)
	return true
}

// Delete removes the transaction identified by handle. Stale handles are a
// no-op returning false.
func (s *Store) Delete(h Handle) bool {
	i, ok := s.Resolve(h)
	if !ok {
		return false
	}
	return s.DeleteAt(i)
}

// Snapshot returns a copy of the current sequence in display order for the
// projection components. The copy does not track later mutations.
func (s *Store) Snapshot() []model.Transaction {
	out := make([]model.Transaction, len(s.records))
	for i := range s.records {
		out[i] = s.records[i].txn
	}
	return out
}

// TotalBalance returns the sum of signed amounts across all transactions:
// income adds, expense subtracts.
func (s *Store) TotalBalance() float64 {
	var balance float64
	for i := range s.records {
		balance += s.records[i].txn.Signed()
	}
	return balance
}

// Persist writes the full sequence to the store's file path. The caller
// decides what to do with a failure; the in-memory state is authoritative
// either way.
func (s *Store) Persist() error {
	data, err := MarshalTransactions(s.Snapshot())
	if err != nil {
		return fmt.Errorf("%w: encoding ledger: %v", common.ErrPersistence, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("%w: creating data directory: %v", common.ErrPersistence, err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("%w: writing %s: %v", common.ErrPersistence, s.path, err)
	}
	return nil
}

// Restore replaces the store contents with the sequence read from the file
// path. A missing file is a normal first launch and leaves the store empty
// with no error. Malformed content also leaves the store empty but returns
// an error for the caller to log; the application keeps running either way.
func (s *Store) Restore() error {
	s.records = nil
	s.next = 1

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("%w: reading %s: %v", common.ErrLedgerCorrupted, s.path, err)
	}

	txns, err := UnmarshalTransactions(data)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrLedgerCorrupted, err)
	}

	for _, txn := range txns {
		s.Add(txn)
	}
	return nil
}
