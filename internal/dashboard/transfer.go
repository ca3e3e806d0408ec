package dashboard

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/gabapcia/walletsync/internal/pkg/logger"
	"github.com/gabapcia/walletsync/internal/pkg/validator"
	"github.com/gabapcia/walletsync/internal/walletapi"
)

// ErrSubmitInProgress is returned by Submit while a transfer is in flight.
var ErrSubmitInProgress = errors.New("transfer already in progress")

// TransferState is a state of the submission flow.
type TransferState string

const (
	TransferIdle       TransferState = "idle"
	TransferSubmitting TransferState = "submitting"
	TransferSettled    TransferState = "settled"
	TransferFailed     TransferState = "failed"
)

// TransferForm is the transfer form as edited by the user.
type TransferForm struct {
	ToAddress string  `json:"toAddress" validate:"notblank"`
	Amount    float64 `json:"amount" validate:"gt=0"`
	Memo      string  `json:"memo"`
}

func (f TransferForm) request() walletapi.TransferRequest {
	return walletapi.TransferRequest{
		ToAddress: strings.TrimSpace(f.ToAddress),
		Amount:    f.Amount,
		Memo:      f.Memo,
	}
}

// TransferSnapshot is a copy of the flow state.
type TransferSnapshot struct {
	State     TransferState
	Form      TransferForm
	PanelOpen bool

	// Success is the message of the last settled transfer, "" once
	// dismissed or replaced by a new submission.
	Success string

	// Hash of the last settled transfer.
	Hash string

	// Errors lists the validation messages or the failure of the last
	// submission.
	Errors []string
	Err    error
}

// CanSubmit reports whether the submit control is enabled.
func (s TransferSnapshot) CanSubmit() bool {
	return s.State != TransferSubmitting
}

// SettlementListener is told when a transfer starts and when it settles.
// Coordinator implements it.
type SettlementListener interface {
	OnTransferStarted(ctx context.Context)
	OnTransferSettled(ctx context.Context, hash string)
}

type transferHook func(from, to TransferState)

// TransferFlow submits transfers: idle, submitting, then settled, or
// failed and straight back to idle with the form kept.
type TransferFlow struct {
	mu sync.Mutex

	api      API
	listener SettlementListener
	onChange transferHook

	state     TransferState
	form      TransferForm
	panelOpen bool
	success   string
	hash      string
	errs      []string
	err       error
}

// TransferOption configures a TransferFlow.
type TransferOption func(*TransferFlow)

// WithTransitionHook observes every state transition. The hook runs
// outside the flow lock, in transition order.
func WithTransitionHook(f func(from, to TransferState)) TransferOption {
	return func(t *TransferFlow) {
		t.onChange = f
	}
}

// NewTransferFlow creates an idle flow with an empty form. listener may be nil.
func NewTransferFlow(api API, listener SettlementListener, opts ...TransferOption) *TransferFlow {
	t := &TransferFlow{
		api:      api,
		listener: listener,
		onChange: func(TransferState, TransferState) {},
		state:    TransferIdle,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *TransferFlow) SetToAddress(addr string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.form.ToAddress = addr
}

// SetAmountInput sets the amount from user input. Anything that is not a
// finite number becomes 0, which then fails validation.
func (t *TransferFlow) SetAmountInput(input string) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	t.SetAmount(amount)
}

func (t *TransferFlow) SetAmount(amount float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.form.Amount = amount
}

func (t *TransferFlow) SetMemo(memo string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.form.Memo = memo
}

func (t *TransferFlow) OpenPanel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.panelOpen = true
}

func (t *TransferFlow) ClosePanel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.panelOpen = false
}

func (t *TransferFlow) TogglePanel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.panelOpen = !t.panelOpen
}

// DismissSuccess clears the success message.
func (t *TransferFlow) DismissSuccess() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.success = ""
}

func (t *TransferFlow) Snapshot() TransferSnapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	return TransferSnapshot{
		State:     t.state,
		Form:      t.form,
		PanelOpen: t.panelOpen,
		Success:   t.success,
		Hash:      t.hash,
		Errors:    append([]string(nil), t.errs...),
		Err:       t.err,
	}
}

// Submit validates the form and sends the transfer. An invalid form is
// reported as validator.ErrValidationFailed without any request. The
// listener is told when the request starts. On failure the form is kept and
// the error returned; on success the form is reset, the panel closed and
// the listener told about the hash.
func (t *TransferFlow) Submit(ctx context.Context) (walletapi.TransferResult, error) {
	send, err := t.Start(ctx)
	if err != nil {
		return walletapi.TransferResult{}, err
	}
	return send(ctx)
}

// Start is the first half of Submit: it validates the form and moves to
// submitting, then returns the function that sends the transfer and
// completes the flow. The form is captured when Start runs. The returned
// function must be called exactly once.
func (t *TransferFlow) Start(ctx context.Context) (func(context.Context) (walletapi.TransferResult, error), error) {
	t.mu.Lock()
	if t.state == TransferSubmitting {
		t.mu.Unlock()
		return nil, ErrSubmitInProgress
	}

	form := t.form
	if err := validator.Validate(form); err != nil {
		t.errs = validator.Messages(err)
		t.err = err
		t.mu.Unlock()
		return nil, err
	}

	from := t.state
	t.state = TransferSubmitting
	t.success = ""
	t.errs = nil
	t.err = nil
	t.mu.Unlock()
	t.onChange(from, TransferSubmitting)

	if t.listener != nil {
		t.listener.OnTransferStarted(ctx)
	}

	return func(ctx context.Context) (walletapi.TransferResult, error) {
		return t.send(ctx, form.request())
	}, nil
}

func (t *TransferFlow) send(ctx context.Context, req walletapi.TransferRequest) (walletapi.TransferResult, error) {
	logger.Info(ctx, "submitting transfer", "transfer.to", req.ToAddress, "transfer.amount", req.Amount)

	result, err := t.api.TransferFunds(ctx, req)
	if err != nil {
		t.fail(ctx, err)
		return walletapi.TransferResult{}, err
	}

	t.mu.Lock()
	t.state = TransferSettled
	t.form = TransferForm{}
	t.panelOpen = false
	t.hash = result.Hash
	t.success = "Transfer successful! Transaction hash: " + result.Hash
	t.mu.Unlock()
	t.onChange(TransferSubmitting, TransferSettled)

	logger.Info(ctx, "transfer settled", "transfer.hash", result.Hash)

	if t.listener != nil {
		t.listener.OnTransferSettled(ctx, result.Hash)
	}

	return result, nil
}

func (t *TransferFlow) fail(ctx context.Context, err error) {
	logger.Error(ctx, "transfer failed", "error", err)

	t.mu.Lock()
	t.state = TransferFailed
	t.errs = []string{walletapi.Message(err)}
	t.err = err
	t.mu.Unlock()
	t.onChange(TransferSubmitting, TransferFailed)

	t.mu.Lock()
	t.state = TransferIdle
	t.mu.Unlock()
	t.onChange(TransferFailed, TransferIdle)
}
