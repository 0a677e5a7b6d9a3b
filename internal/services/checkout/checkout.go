// Package checkout drives the simulated payment flow from a non-empty cart to
// a pending ledger entry.
//
// A flow walks Idle → AwaitingMethodSelection → Processing → AwaitingProof →
// PendingVerification. Processing runs on real timers owned by a single
// goroutine and is cancellable at any point; a cancelled flow stops every
// pending timer and writes nothing. One flow per user at a time.
package checkout

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/guswanstore/guswanmy/internal/lib/payref"
	"github.com/guswanstore/guswanmy/internal/models"
)

// Flow states as reported by Status.
const (
	StateIdle                = "idle"
	StateAwaitingMethod      = "awaiting_method_selection"
	StateProcessing          = "processing"
	StateAwaitingProof       = "awaiting_proof"
	StatePendingVerification = "pending_verification"
)

// Service errors surfaced to handlers.
var (
	// ErrEmptyCart means checkout was invoked with nothing in the cart.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrInvalidMethod means the payment method is missing or unknown.
	ErrInvalidMethod = errors.New("invalid payment method")
	// ErrFlowActive means a checkout flow is already running for this user.
	ErrFlowActive = errors.New("checkout already in progress")
	// ErrNoFlow means no checkout flow exists for this user.
	ErrNoFlow = errors.New("no active checkout")
	// ErrNotAwaitingProof means proof was submitted in the wrong state.
	ErrNotAwaitingProof = errors.New("checkout is not awaiting proof")
	// ErrMissingProof means proof was submitted without an artifact.
	ErrMissingProof = errors.New("payment proof is required")
)

// Status messages cycled during the processing simulation.
var processingMessages = []string{
	"Menganalisis pesanan...",
	"Menghubungi server pembayaran...",
	"Mengenkripsi data transaksi...",
	"AI sedang membuat bukti pembayaran...",
	"Menggenerasi nomor referensi...",
}

// Config sets the timing of the processing simulation.
type Config struct {
	ProcessingDuration time.Duration // total time in Processing
	MessageInterval    time.Duration // status message cycle
	ProgressInterval   time.Duration // stochastic progress tick
	RevealDelay        time.Duration // pause between 100% and AwaitingProof
}

// CartService is the slice of the cart API the orchestrator needs.
type CartService interface {
	Get(ctx context.Context, email string) (models.Cart, error)
	ClearLines(ctx context.Context, email string, ids []string) error
}

// Ledger appends finished orders.
type Ledger interface {
	Append(ctx context.Context, order models.Order) error
}

// Status is a snapshot of one user's flow.
type Status struct {
	State     string   `json:"state"`
	Progress  int      `json:"progress"`
	Message   string   `json:"message,omitempty"`
	Reference string   `json:"reference,omitempty"`
	Method    string   `json:"method,omitempty"`
	Total     int64    `json:"total,omitempty"`
	Items     []string `json:"items,omitempty"`
}

type flow struct {
	mu sync.Mutex

	email  string
	method string
	lines  []models.CartLine
	total  int64

	state     string
	progress  float64
	msgIdx    int
	reference string

	cancel context.CancelFunc
	ctx    context.Context
}

// Service is the checkout orchestrator. It is the only writer of new orders.
type Service struct {
	mu    sync.Mutex
	flows map[string]*flow

	cfg    Config
	carts  CartService
	ledger Ledger
	log    *slog.Logger

	onCancel func() // counter hook, wired to metrics in the app
}

// NewService creates a checkout Service.
func NewService(cfg Config, carts CartService, ledger Ledger, log *slog.Logger) *Service {
	return &Service{
		flows:  make(map[string]*flow),
		cfg:    cfg,
		carts:  carts,
		ledger: ledger,
		log:    log,
	}
}

// SetCancelHook registers a callback invoked whenever a processing flow is
// cancelled.
func (s *Service) SetCancelHook(fn func()) {
	s.onCancel = fn
}

// Start snapshots the cart and begins the processing simulation. It requires
// a non-empty cart and a known payment method, and refuses to run two flows
// for the same user.
func (s *Service) Start(ctx context.Context, email, method string) error {
	if !models.ValidMethod(method) {
		return ErrInvalidMethod
	}
	c, err := s.carts.Get(ctx, email)
	if err != nil {
		return err
	}
	if len(c.Lines) == 0 {
		return ErrEmptyCart
	}

	s.mu.Lock()
	if _, ok := s.flows[email]; ok {
		s.mu.Unlock()
		return ErrFlowActive
	}
	// The flow outlives the request; its lifetime is bound to Cancel, not ctx.
	flowCtx, cancel := context.WithCancel(context.Background())
	f := &flow{
		email:  email,
		method: method,
		lines:  c.Lines,
		total:  c.Total(),
		state:  StateProcessing,
		ctx:    flowCtx,
		cancel: cancel,
	}
	s.flows[email] = f
	s.mu.Unlock()

	s.log.Info("checkout started",
		slog.String("email", email),
		slog.String("method", method),
		slog.Int64("total", f.total))

	go s.run(f)
	return nil
}

// run owns every timer of the processing simulation. Exits either on flow
// cancellation or after revealing the payment reference.
func (s *Service) run(f *flow) {
	msgTicker := time.NewTicker(s.cfg.MessageInterval)
	defer msgTicker.Stop()
	progTicker := time.NewTicker(s.cfg.ProgressInterval)
	defer progTicker.Stop()
	done := time.NewTimer(s.cfg.ProcessingDuration)
	defer done.Stop()

	for {
		select {
		case <-f.ctx.Done():
			return
		case <-msgTicker.C:
			f.mu.Lock()
			f.msgIdx = (f.msgIdx + 1) % len(processingMessages)
			f.mu.Unlock()
		case <-progTicker.C:
			f.mu.Lock()
			f.progress = min(f.progress+rand.Float64()*20, 95)
			f.mu.Unlock()
		case <-done.C:
			msgTicker.Stop()
			progTicker.Stop()

			ref, err := payref.New()
			if err != nil {
				// entropy failure; abort the flow rather than surface a bad reference
				s.log.Error("failed to generate payment reference", slog.Any("err", err))
				s.dropFlow(f.email)
				return
			}
			f.mu.Lock()
			f.progress = 100
			f.mu.Unlock()

			reveal := time.NewTimer(s.cfg.RevealDelay)
			select {
			case <-f.ctx.Done():
				reveal.Stop()
				return
			case <-reveal.C:
			}

			f.mu.Lock()
			f.state = StateAwaitingProof
			f.reference = ref
			f.mu.Unlock()

			s.log.Info("checkout processing complete",
				slog.String("email", f.email),
				slog.String("reference", ref))
			return
		}
	}
}

// Status reports the caller's flow. Without a flow it derives the implicit
// pre-checkout state from the cart: AwaitingMethodSelection once non-empty.
func (s *Service) Status(ctx context.Context, email string) (*Status, error) {
	s.mu.Lock()
	f, ok := s.flows[email]
	s.mu.Unlock()

	if !ok {
		c, err := s.carts.Get(ctx, email)
		if err != nil {
			return nil, err
		}
		if len(c.Lines) == 0 {
			return &Status{State: StateIdle}, nil
		}
		return &Status{State: StateAwaitingMethod}, nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	st := &Status{
		State:    f.state,
		Progress: int(f.progress),
		Method:   f.method,
		Total:    f.total,
	}
	if f.state == StateProcessing {
		st.Message = processingMessages[f.msgIdx]
	}
	if f.reference != "" {
		st.Reference = f.reference
		st.Items = lineNames(f.lines)
	}
	return st, nil
}

// Cancel dismisses the flow: all pending timers stop and no partial state
// survives. Cancelling without a flow is an error so callers can tell a stale
// dismiss from a real one.
func (s *Service) Cancel(_ context.Context, email string) error {
	s.mu.Lock()
	f, ok := s.flows[email]
	if ok {
		delete(s.flows, email)
	}
	s.mu.Unlock()
	if !ok {
		return ErrNoFlow
	}

	f.cancel()

	f.mu.Lock()
	wasProcessing := f.state == StateProcessing
	f.mu.Unlock()
	if wasProcessing && s.onCancel != nil {
		s.onCancel()
	}
	s.log.Info("checkout cancelled", slog.String("email", email))
	return nil
}

// SubmitProof turns an AwaitingProof flow into a pending ledger entry and
// clears the ordered lines from the cart by identity.
func (s *Service) SubmitProof(ctx context.Context, email, proofImage string) (*models.Order, error) {
	if proofImage == "" {
		return nil, ErrMissingProof
	}

	s.mu.Lock()
	f, ok := s.flows[email]
	s.mu.Unlock()
	if !ok {
		return nil, ErrNoFlow
	}

	f.mu.Lock()
	if f.state != StateAwaitingProof {
		f.mu.Unlock()
		return nil, ErrNotAwaitingProof
	}
	order := models.Order{
		ID:            f.reference,
		Email:         f.email,
		Items:         lineNames(f.lines),
		Total:         f.total,
		PaymentMethod: f.method,
		Status:        models.StatusPending,
		ProofImage:    proofImage,
		Timestamp:     time.Now().UTC(),
	}
	lineIDs := make([]string, len(f.lines))
	for i, l := range f.lines {
		lineIDs[i] = l.ID
	}
	f.mu.Unlock()

	if err := s.ledger.Append(ctx, order); err != nil {
		return nil, err
	}

	if err := s.carts.ClearLines(ctx, email, lineIDs); err != nil {
		// the order is already in the ledger; a stale cart is the lesser fault
		s.log.Warn("failed to clear cart after order", slog.String("email", email), slog.Any("err", err))
	}

	f.mu.Lock()
	f.state = StatePendingVerification
	f.mu.Unlock()

	s.mu.Lock()
	delete(s.flows, email)
	s.mu.Unlock()

	s.log.Info("order submitted",
		slog.String("email", email),
		slog.String("order_id", order.ID),
		slog.Int64("total", order.Total))
	return &order, nil
}

func (s *Service) dropFlow(email string) {
	s.mu.Lock()
	delete(s.flows, email)
	s.mu.Unlock()
}

func lineNames(lines []models.CartLine) []string {
	names := make([]string, len(lines))
	for i, l := range lines {
		names[i] = l.Name
	}
	return names
}
