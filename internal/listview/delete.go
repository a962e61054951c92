package listview

// DeleteState is the confirmation state of a screen's delete flow
type DeleteState int

const (
	// DeleteIdle means no delete is in progress
	DeleteIdle DeleteState = iota
	// DeleteConfirmPending means a delete awaits user confirmation
	DeleteConfirmPending
)

// Outcome classifies the result of a confirmed delete for the
// notification sink
type Outcome int

const (
	// OutcomeSuccess means the entity was deleted and the page re-fetched
	OutcomeSuccess Outcome = iota
	// OutcomeError covers transport and generic server failures
	OutcomeError
	// OutcomeReferentialIntegrity means the delete was rejected because
	// other entities still reference the target
	OutcomeReferentialIntegrity
	// OutcomeNone means no delete was pending when Confirm was called
	OutcomeNone
)

// deleteFlow tracks Idle -> ConfirmPending -> (Confirmed | Cancelled).
// Confirmation and cancellation both return the flow to Idle; the
// controller owning the flow performs the actual request on confirm.
type deleteFlow struct {
	state  DeleteState
	target Row
}

// request arms the flow for the given row
func (f *deleteFlow) request(row Row) {
	f.state = DeleteConfirmPending
	f.target = row
}

// cancel disarms the flow without touching the row
func (f *deleteFlow) cancel() {
	f.state = DeleteIdle
	f.target = Row{}
}

// take returns the pending target and resets the flow to Idle
func (f *deleteFlow) take() (Row, bool) {
	if f.state != DeleteConfirmPending {
		return Row{}, false
	}
	row := f.target
	f.cancel()
	return row, true
}
