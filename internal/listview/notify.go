package listview

// Notifier receives human-readable outcome messages for the user.
// Implementations are injected into controllers; the core never reaches
// for an ambient sink. Wording of the referential-integrity case is
// distinct from the generic failure message so the view can surface it
// as such.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// NopNotifier discards all messages
type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Error(string)   {}
