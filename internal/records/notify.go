package records

import "time"

// SuccessTTL is how long a success banner stays up before it dismisses
// itself.
const SuccessTTL = 2000 * time.Millisecond

// NoticeKind distinguishes the mutually exclusive banner states.
type NoticeKind int

const (
	NoticeNone NoticeKind = iota
	NoticeSuccess
	NoticeFailure
)

// Notification is the single banner currently shown, if any.
type Notification struct {
	Kind    NoticeKind
	Message string
	Seq     uint64
}

// Notifier holds the banner state. Success banners expire via a timer
// message carrying the banner's sequence number, so a timer for a
// banner that was replaced or dismissed early fires harmlessly.
type Notifier struct {
	current Notification
	seq     uint64
}

// NewNotifier returns a notifier with no banner up.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// Current returns the banner to show.
func (n *Notifier) Current() Notification {
	return n.current
}

// Success raises a success banner, replacing whatever was up, and
// returns its sequence number for the expiry timer.
func (n *Notifier) Success(message string) uint64 {
	n.seq++
	n.current = Notification{Kind: NoticeSuccess, Message: message, Seq: n.seq}
	return n.seq
}

// Failure raises a failure banner. It stays until dismissed.
func (n *Notifier) Failure(message string) uint64 {
	n.seq++
	n.current = Notification{Kind: NoticeFailure, Message: message, Seq: n.seq}
	return n.seq
}

// Dismiss clears the banner.
func (n *Notifier) Dismiss() {
	n.current = Notification{}
}

// Expire clears the banner only if seq still identifies it; stale
// timers are ignored.
func (n *Notifier) Expire(seq uint64) {
	if n.current.Seq == seq {
		n.current = Notification{}
	}
}
