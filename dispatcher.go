// SPDX-License-Identifier: GPL-3.0-or-later

package eppcore

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/AS207960/eppcore/metrics"
	"github.com/AS207960/eppcore/store"
	"github.com/AS207960/eppcore/wire"
)

// pendingEntry is one in-flight request awaiting its server response.
type pendingEntry struct {
	request      *Request
	deadline     time.Time
	dispatchedAt time.Time
	fromPump     bool
	span         trace.Span
}

// Dispatcher owns the single framed connection for one account: it is
// the sole reader and writer on that connection. Callers never touch the
// connection directly; they submit [*Request] values via Submit and
// receive decoded results by awaiting the request's reply channel.
type Dispatcher struct {
	conn      *wire.FrameConn
	encoder   RequestEncoder
	decoder   ResponseDecoder
	account   *AccountConfig
	features  *ServerFeatures
	pollSink  *PollSink
	logger    SLogger
	errClass  ErrClassifier
	timeNow   func() time.Time
	store     store.Store
	metrics   metrics.Metrics

	requests chan *Request
	maxInFlight int

	mu      sync.Mutex
	pending map[string]*pendingEntry

	pump pollPumpState

	done chan struct{}
}

// NewDispatcher constructs a [*Dispatcher] bound to an already-framed,
// already-logged-in connection. The caller (normally [Session]) is
// responsible for performing the greeting/login exchange first.
func NewDispatcher(conn *wire.FrameConn, encoder RequestEncoder, decoder ResponseDecoder,
	account *AccountConfig, features *ServerFeatures, pollSink *PollSink,
	logger SLogger, errClass ErrClassifier, timeNow func() time.Time) *Dispatcher {

	if logger == nil {
		logger = DefaultSLogger()
	}
	if timeNow == nil {
		timeNow = time.Now
	}
	return &Dispatcher{
		conn:        conn,
		encoder:     encoder,
		decoder:     decoder,
		account:     account,
		features:    features,
		pollSink:    pollSink,
		logger:      logger,
		errClass:    errClass,
		timeNow:     timeNow,
		store:       account.effectiveStore(),
		metrics:     account.effectiveMetrics(),
		requests:    make(chan *Request),
		maxInFlight: account.effectiveMaxInFlight(),
		pending:     make(map[string]*pendingEntry),
		pump:        newPollPumpState(account.effectivePollPumpInterval(), timeNow()),
		done:        make(chan struct{}),
	}
}

// archive persists one framed XML document under the §6 layout:
// <account-id>/<ISO8601>_<client-TRID>_{req,resp}.xml. Failures are
// logged but never propagated (§4.6): a broken archive backend must not
// interrupt protocol progress.
func (d *Dispatcher) archive(ctx context.Context, clTRID, direction string, payload []byte) {
	key := fmt.Sprintf("%s_%s_%s.xml", d.timeNow().UTC().Format(time.RFC3339Nano), clTRID, direction)
	if err := d.store.Put(ctx, key, payload); err != nil {
		d.logger.Warn("eppArtifactPersistError", slog.Any("err", err), slog.String("key", key))
	}
}

// Submit enqueues req for transmission. It blocks until the dispatcher's
// run loop has accepted it (not until it is answered); use [Request.Await]
// for that.
func (d *Dispatcher) Submit(ctx context.Context, req *Request) error {
	select {
	case d.requests <- req:
		return nil
	case <-d.done:
		return fmt.Errorf("eppcore: dispatcher is shutting down")
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run drives the dispatcher's single read/write loop until ctx is
// canceled or the connection fails. It always closes the pending poll
// sink before returning.
func (d *Dispatcher) Run(ctx context.Context) error {
	defer close(d.done)
	defer d.pollSink.close()

	frames := make(chan frameResult)
	go d.readLoop(ctx, frames)

	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		inflight := d.inflightCount()

		var requestsCh chan *Request
		if inflight < d.maxInFlight {
			requestsCh = d.requests
		}

		select {
		case <-ctx.Done():
			return ctx.Err()

		case fr := <-frames:
			if fr.err != nil {
				d.failAllPending(fr.err)
				return fr.err
			}
			if err := d.handleResponse(ctx, fr.resp, fr.payload); err != nil {
				d.logger.Error("eppResponseHandlingError", slog.Any("err", err))
			}

		case req := <-requestsCh:
			if err := d.sendRequest(ctx, req); err != nil {
				req.fulfill(nil, err)
			}

		case <-ticker.C:
			if d.expirePending() {
				// §4.5: a command timeout means out-of-order responses
				// on the shared connection are no longer recoverable;
				// tear down so [Session] reconnects from scratch.
				cause := fmt.Errorf("eppcore: command timeout, tearing down session")
				d.failAllPending(cause)
				return cause
			}
			if d.pump.due(d.timeNow()) {
				d.firePollPump(ctx)
			}
		}
	}
}

// frameResult is what the background reader goroutine hands to the main
// loop: either a decoded response or a terminal connection error.
type frameResult struct {
	resp    *wire.Response
	payload []byte
	err     error
}

func (d *Dispatcher) readLoop(ctx context.Context, out chan<- frameResult) {
	for {
		payload, err := d.conn.ReadFrame(ctx)
		if err != nil {
			select {
			case out <- frameResult{err: err}:
			case <-ctx.Done():
			}
			return
		}
		env, err := wire.Decode(payload)
		if err != nil {
			select {
			case out <- frameResult{err: err}:
			case <-ctx.Done():
			}
			return
		}
		if env.Response == nil {
			continue
		}
		select {
		case out <- frameResult{resp: env.Response, payload: payload}:
		case <-ctx.Done():
			return
		}
	}
}

func (d *Dispatcher) sendRequest(ctx context.Context, req *Request) error {
	return d.dispatch(ctx, req, false)
}

// firePollPump issues a pump-originated `poll request` outside the normal
// caller queue. Its response is handled specially in handleResponse:
// delivered to the poll sink and immediately acknowledged, rather than
// fulfilled to a caller nobody is waiting on.
func (d *Dispatcher) firePollPump(ctx context.Context) {
	req := NewRequest(KindPollRequest, nil)
	if err := d.dispatch(ctx, req, true); err != nil {
		d.logger.Warn("eppPollPumpError", slog.Any("err", err))
	}
}

func (d *Dispatcher) dispatch(ctx context.Context, req *Request, fromPump bool) error {
	clTRID := NewClientTRID()
	env, err := d.encoder.Encode(req, clTRID, d.account, d.features)
	if err != nil {
		return fmt.Errorf("eppcore: encoding request %s: %w", req.Kind, err)
	}
	payload, err := wire.Encode(env)
	if err != nil {
		return fmt.Errorf("eppcore: encoding envelope for %s: %w", req.Kind, err)
	}

	// A <hello> provokes a bare <greeting>, which carries no <trID> to
	// correlate back to a pending entry (RFC 5730 §2.4). Fire it and
	// forget rather than waiting out a full command timeout every cycle.
	if req.Kind == KindHello {
		err := d.conn.WriteFrame(ctx, payload)
		req.fulfill(nil, err)
		return nil
	}

	spanCtx, span := startCommandSpan(ctx, d.account.ID, req.Kind)

	now := d.timeNow()
	d.mu.Lock()
	d.pending[clTRID] = &pendingEntry{
		request:      req,
		deadline:     now.Add(d.account.effectiveCommandTimeout()),
		dispatchedAt: now,
		fromPump:     fromPump,
		span:         span,
	}
	d.mu.Unlock()
	ctx = spanCtx

	if err := d.conn.WriteFrame(ctx, payload); err != nil {
		d.mu.Lock()
		delete(d.pending, clTRID)
		d.mu.Unlock()
		writeErr := fmt.Errorf("eppcore: writing frame for %s: %w", req.Kind, err)
		endCommandSpan(span, writeErr)
		return writeErr
	}
	d.archive(ctx, clTRID, "req", payload)
	return nil
}

// handleResponse correlates an inbound response to a pending request by
// its echoed client-TRID. A response with no matching pending entry (an
// empty client-TRID, or one the dispatcher never sent, e.g. an
// out-of-band poll push some registries emit unsolicited) is routed to
// the poll sink instead (§4.4).
func (d *Dispatcher) handleResponse(ctx context.Context, resp *wire.Response, payload []byte) error {
	clTRID := resp.TRID.ClientTRID

	d.mu.Lock()
	entry, ok := d.pending[clTRID]
	if ok {
		delete(d.pending, clTRID)
	}
	d.mu.Unlock()

	if result, hasResult := resp.FirstResult(); hasResult {
		d.metrics.ResultCodeObserved(ctx, d.account.ID, result.Code)
	}

	if !ok {
		poll, err := d.decoder.DecodePoll(resp, d.features)
		if err != nil {
			return fmt.Errorf("eppcore: decoding unsolicited poll message: %w", err)
		}
		d.metrics.PollMessageReceived(ctx, d.account.ID, poll.Kind.String())
		d.archive(ctx, clTRID, "resp", payload)
		return d.pollSink.deliver(ctx, poll)
	}

	d.archive(ctx, clTRID, "resp", payload)
	d.metrics.CommandDuration(ctx, d.account.ID, entry.request.Kind.String(), d.timeNow().Sub(entry.dispatchedAt))

	if !resp.Success() {
		result, _ := resp.FirstResult()
		serverErr := NewServerError(ResultCode(result.Code), result.Message, result.ExtraValues)
		endCommandSpan(entry.span, serverErr)
		entry.request.fulfill(nil, serverErr)
		return nil
	}

	value, err := d.decoder.Decode(entry.request.Kind, resp, d.features)
	if err != nil {
		decodeErr := fmt.Errorf("eppcore: decoding response for %s: %w", entry.request.Kind, err)
		endCommandSpan(entry.span, decodeErr)
		entry.request.fulfill(nil, decodeErr)
		return nil
	}
	endCommandSpan(entry.span, nil)

	if entry.fromPump && entry.request.Kind == KindPollRequest {
		return d.handlePollPumpResult(ctx, value)
	}

	entry.request.fulfill(value, nil)
	return nil
}

// handlePollPumpResult delivers a pump-issued poll's result to the poll
// sink and, when a message was actually dequeued, fires the matching
// `poll ack` (§4.4). An empty queue (no MessageID) is a silent no-op.
func (d *Dispatcher) handlePollPumpResult(ctx context.Context, value any) error {
	poll, ok := value.(*PollData)
	if !ok || poll == nil || poll.MessageID == "" {
		return nil
	}

	if err := d.pollSink.deliver(ctx, *poll); err != nil {
		return err
	}

	ackReq := NewRequest(KindPollAck, poll.MessageID)
	return d.dispatch(ctx, ackReq, true)
}

func (d *Dispatcher) inflightCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}

// expirePending fails any pending request whose per-command deadline has
// passed and reports whether it found any (§4.5). The caller tears down
// the whole session when it did: out-of-order responses on a shared TCP
// connection are not otherwise recoverable once one command has gone
// unanswered past its deadline.
func (d *Dispatcher) expirePending() bool {
	now := d.timeNow()
	d.mu.Lock()
	var expired []*pendingEntry
	for clTRID, entry := range d.pending {
		if now.After(entry.deadline) {
			expired = append(expired, entry)
			delete(d.pending, clTRID)
		}
	}
	d.mu.Unlock()

	for _, entry := range expired {
		cause := fmt.Errorf("eppcore: command %s timed out", entry.request.Kind)
		err := NewTransportError(d.errClass.Classify(cause), cause)
		endCommandSpan(entry.span, err)
		entry.request.fulfill(nil, err)
	}
	return len(expired) > 0
}

func (d *Dispatcher) failAllPending(cause error) {
	d.mu.Lock()
	entries := d.pending
	d.pending = make(map[string]*pendingEntry)
	d.mu.Unlock()

	errClass := d.errClass.Classify(cause)
	for _, entry := range entries {
		err := NewTransportError(errClass, cause)
		endCommandSpan(entry.span, err)
		entry.request.fulfill(nil, err)
	}
}
