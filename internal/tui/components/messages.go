package components

// AddRequestedMsg asks the application to focus the entry form in add mode.
type AddRequestedMsg struct{}

// EditRequestedMsg asks the application to start editing the record at the
// given ledger position.
type EditRequestedMsg struct {
	Index int
}

// DeleteRequestedMsg asks the application to delete the record at the given
// ledger position.
type DeleteRequestedMsg struct {
	Index int
}

// FormSavedMsg reports that the entry form committed a transaction.
type FormSavedMsg struct{}

// FormCancelledMsg reports that the entry form was dismissed.
type FormCancelledMsg struct{}
