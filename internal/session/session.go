// Package session implements the edit-state controller: one explicitly
// constructed object that owns the ledger store for the running application,
// stages form input, and commits it as transactions.
//
// The session is either adding (the initial state) or editing one existing
// record. While editing it holds the record's ledger handle rather than its
// position, so deletes elsewhere in the list never invalidate the edit.
package session

import (
	"log/slog"
	"math"
	"strconv"
	"time"

	"github.com/DioVale2002/finance-tracker/internal/ledger"
	"github.com/DioVale2002/finance-tracker/internal/model"
)

// Mode is the edit-state: adding a new transaction or editing an existing one.
type Mode int

const (
	// ModeAdd is the initial state; commits append to the ledger.
	ModeAdd Mode = iota
	// ModeEdit means commits replace the record being edited.
	ModeEdit
)

// Form holds the staged, not-yet-committed field values. Description and
// Amount stay as raw text until commit; Date is a calendar date with the
// time zeroed.
type Form struct {
	Date        time.Time
	Description string
	Amount      string
	Category    model.Category
	Type        model.TransactionType
}

// Session is the edit-state controller. Not safe for concurrent use; the
// application is single-threaded.
type Session struct {
	clock   func() time.Time
	store   *ledger.Store
	form    Form
	editing ledger.Handle
	mode    Mode
}

// Option configures a Session.
type Option func(*Session)

// WithClock overrides the wall-clock source used for commit timestamps and
// the "today" default date.
func WithClock(clock func() time.Time) Option {
	return func(s *Session) {
		s.clock = clock
	}
}

// New creates a session owning the given store, with the form at defaults.
func New(store *ledger.Store, opts ...Option) *Session {
	s := &Session{
		store: store,
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.resetForm()
	return s
}

// Store exposes the owned store for read-side projections.
func (s *Session) Store() *ledger.Store {
	return s.store
}

// Mode returns the current edit-state.
func (s *Session) Mode() Mode {
	return s.mode
}

// Form returns a copy of the staged input.
func (s *Session) Form() Form {
	return s.form
}

// EditingIndex resolves the edited record's current display position.
// It reports false in add mode.
func (s *Session) EditingIndex() (int, bool) {
	if s.mode != ModeEdit {
		return 0, false
	}
	return s.store.Resolve(s.editing)
}

// SetDescription stages the description text.
func (s *Session) SetDescription(text string) {
	s.form.Description = text
}

// SetAmount stages the amount text.
func (s *Session) SetAmount(text string) {
	s.form.Amount = text
}

// SetDate stages the calendar date; any time component is discarded.
func (s *Session) SetDate(date time.Time) {
	s.form.Date = dateOnly(date)
}

// SetType stages the transaction type and resets the staged category to that
// type's default, mirroring how the category choices change with the type.
func (s *Session) SetType(transType model.TransactionType) {
	s.form.Type = transType
	s.form.Category = model.DefaultCategoryFor(transType)
}

// SetCategory stages the category.
func (s *Session) SetCategory(category model.Category) {
	s.form.Category = category
}

// BeginEdit copies the record at the given display position into the form
// and switches to edit mode. Only reachable from add mode; out-of-range
// positions are a no-op.
func (s *Session) BeginEdit(index int) bool {
	if s.mode != ModeAdd {
		return false
	}
	txn, ok := s.store.At(index)
	if !ok {
		return false
	}
	handle, ok := s.store.HandleAt(index)
	if !ok {
		return false
	}

	s.form.Description = txn.Description
	s.form.Amount = strconv.FormatFloat(txn.Amount, 'f', -1, 64)
	s.form.Date = dateOnly(txn.Date)
	s.form.Type = txn.Type
	s.form.Category = txn.Category
	s.editing = handle
	s.mode = ModeEdit
	return true
}

// Cancel leaves edit mode, discarding staged input. Text fields clear and
// the date resets to today; type and category keep their last selection.
func (s *Session) Cancel() {
	s.mode = ModeAdd
	s.editing = 0
	s.form.Description = ""
	s.form.Amount = ""
	s.form.Date = s.today()
}

// Commit validates the staged input and applies it to the store: append in
// add mode, replace in edit mode. Validation failure leaves the form and the
// store untouched and reports false; the user corrects and retries. A
// successful commit persists the store and resets the form for the next
// entry.
func (s *Session) Commit() bool {
	amount, ok := parseAmount(s.form.Amount)
	if !ok || s.form.Description == "" {
		slog.Debug("Commit rejected",
			"empty_description", s.form.Description == "",
			"amount_text", s.form.Amount)
		return false
	}

	switch s.mode {
	case ModeAdd:
		now := s.clock()
		txn := model.Transaction{
			Date:        combine(s.form.Date, now),
			Description: s.form.Description,
			Category:    s.form.Category,
			Type:        s.form.Type,
			Amount:      amount,
		}
		s.store.Add(txn)

	case ModeEdit:
		index, ok := s.store.Resolve(s.editing)
		if !ok {
			// The record was deleted out from under the edit.
			s.Cancel()
			return false
		}
		original, _ := s.store.At(index)
		txn := model.Transaction{
			Date:        combine(s.form.Date, original.Date),
			Description: s.form.Description,
			Category:    s.form.Category,
			Type:        s.form.Type,
			Amount:      amount,
		}
		s.store.Update(s.editing, txn)
	}

	s.mode = ModeAdd
	s.editing = 0
	s.form.Description = ""
	s.form.Amount = ""
	s.form.Date = s.today()
	s.persist()
	return true
}

// Delete removes the record at the given display position and persists. If
// that record was being edited, the session drops back to add mode with a
// cleared form. A record being edited at a later position keeps resolving to
// the right record through its handle.
func (s *Session) Delete(index int) bool {
	handle, ok := s.store.HandleAt(index)
	if !ok {
		return false
	}
	if !s.store.DeleteAt(index) {
		return false
	}
	if s.mode == ModeEdit && handle == s.editing {
		s.Cancel()
	}
	s.persist()
	return true
}

// persist saves the store, swallowing failures: the in-memory state stays
// authoritative for the session and the user is never interrupted.
func (s *Session) persist() {
	if err := s.store.Persist(); err != nil {
		slog.Warn("Failed to save ledger", "path", s.store.Path(), "error", err)
	}
}

func (s *Session) resetForm() {
	s.form = Form{
		Date:     s.today(),
		Type:     model.DefaultTransactionType,
		Category: model.DefaultCategoryFor(model.DefaultTransactionType),
	}
}

func (s *Session) today() time.Time {
	return dateOnly(s.clock())
}

// parseAmount accepts only positive finite numbers.
func parseAmount(text string) (float64, bool) {
	amount, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false
	}
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, false
	}
	return amount, true
}

// dateOnly truncates to the naive calendar date.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// combine builds a naive timestamp from one value's calendar date and
// another's time-of-day.
func combine(date, clock time.Time) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), clock.Nanosecond(),
		time.UTC,
	)
}
