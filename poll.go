// SPDX-License-Identifier: GPL-3.0-or-later

package eppcore

import "time"

// PollKind tags the shape of an unsolicited poll message's payload (§3,
// §4.4). The dispatcher decodes the <msgQ> wrapper and the object-specific
// body, then hands a [PollData] to the [PollSink].
type PollKind int

const (
	PollKindTransfer PollKind = iota
	PollKindDelete
	PollKindEmailForwardTransfer
	PollKindEuridHitPoints
	PollKindEuridRegistrarFinance
	PollKindNominetNotification
	PollKindVerisignLowBalance
	PollKindChangePoll
	PollKindUnknown
)

// pollKindNames backs PollKind.String for metrics labels and logging.
var pollKindNames = map[PollKind]string{
	PollKindTransfer:             "domain_transfer",
	PollKindDelete:               "domain_delete",
	PollKindEmailForwardTransfer: "email_forward_transfer",
	PollKindEuridHitPoints:       "eurid_hit_points",
	PollKindEuridRegistrarFinance: "eurid_registrar_finance",
	PollKindNominetNotification:  "nominet_notification",
	PollKindVerisignLowBalance:   "verisign_low_balance",
	PollKindChangePoll:           "change_poll",
	PollKindUnknown:              "unknown",
}

// String implements [fmt.Stringer].
func (k PollKind) String() string {
	if name, ok := pollKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// PollData is one dequeued poll message: the envelope fields every
// <msgQ>/<resData> message carries plus a kind-tagged payload.
type PollData struct {
	// MessageID is the server-assigned queue message identifier (msgQ
	// id="..."), used to build the corresponding <poll op="ack"> request.
	MessageID string

	// MessageCount is the server's self-reported queue depth at the time
	// this message was dequeued (msgQ count="...").
	MessageCount int

	// QueuedAt is the message's <qDate>, zero if absent.
	QueuedAt time.Time

	// Message is the human-readable <msg> text.
	Message string

	// Kind tags which of the payload fields below is meaningful.
	Kind PollKind

	// Payload is the kind-specific decoded body (one of the
	// router-declared poll payload structs), or nil for PollKindUnknown,
	// where Raw holds the undecoded inner XML instead.
	Payload any

	// Raw holds the inner XML of <resData> when Kind is PollKindUnknown,
	// so a caller can still inspect an extension the router does not yet
	// recognize rather than silently dropping it.
	Raw []byte
}

// PollSink is a bounded, single-consumer queue of decoded poll messages.
// The dispatcher is the sole producer; exactly one goroutine should drain
// it via Messages, matching the dispatcher's single-owner model for the
// connection.
type PollSink struct {
	ch chan PollData
}

// NewPollSink returns a [*PollSink] buffering up to capacity undelivered
// messages. A full sink makes the dispatcher block on delivery rather than
// drop messages, since EPP poll delivery is at-least-once only if nothing
// is ever silently discarded client-side.
func NewPollSink(capacity int) *PollSink {
	if capacity <= 0 {
		capacity = 1
	}
	return &PollSink{ch: make(chan PollData, capacity)}
}

// Messages returns the receive side of the sink for a consumer loop:
//
//	for msg := range sink.Messages() { ... }
//
// The channel is closed when the [Dispatcher] delivering to it returns
// from Run, that is when its connection ends; a [Session] creates a new
// sink for every connection.
func (s *PollSink) Messages() <-chan PollData {
	return s.ch
}

// deliver enqueues msg, blocking until there is room or ctx is canceled.
func (s *PollSink) deliver(ctx doneWaiter, msg PollData) error {
	select {
	case s.ch <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// close shuts down the sink. Only the dispatcher that owns this sink may
// call it, exactly once, after the underlying connection is gone.
func (s *PollSink) close() {
	close(s.ch)
}

// doneWaiter is the subset of context.Context that deliver needs; declared
// separately so tests can pass a bare channel-backed stand-in without
// constructing a full context.
type doneWaiter interface {
	Done() <-chan struct{}
	Err() error
}
