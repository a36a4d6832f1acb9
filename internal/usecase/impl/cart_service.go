// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	deliverycontext "krishihive/internal/delivery/context"
	"krishihive/internal/domain/entity"
	domainerrors "krishihive/internal/domain/errors"
	"krishihive/internal/domain/repository"
	"krishihive/internal/domain/service"
	"krishihive/internal/usecase"

	"github.com/pkg/errors"
)

// sessionCart is one user's in-memory cart plus the bookkeeping needed to
// order hydration against live dispatches.
type sessionCart struct {
	state entity.CartState

	// mutated is set by the first dispatch of a session. A hydrate completing
	// afterwards is discarded, so a slow load can never overwrite what the
	// user has already put in the cart.
	mutated bool

	// saving guards against duplicate concurrent writes of the same cart.
	saving bool
}

// cartService implements the CartUsecase interface.
type cartService struct {
	cartRepo  repository.CartRepository
	orderRepo repository.OrderRepository
	publisher service.EventPublisher
	logger    *slog.Logger

	mu    sync.Mutex
	carts map[string]*sessionCart
}

// NewCartService is the constructor for cartService.
func NewCartService(
	cartRepo repository.CartRepository,
	orderRepo repository.OrderRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.CartUsecase {
	return &cartService{
		cartRepo:  cartRepo,
		orderRepo: orderRepo,
		publisher: publisher,
		logger:    logger,
		carts:     make(map[string]*sessionCart),
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// session returns the cart record for a user, creating an empty one on first
// touch. Caller must hold srv.mu.
func (srv *cartService) session(uid string) *sessionCart {
	sc, ok := srv.carts[uid]
	if !ok {
		sc = &sessionCart{state: entity.EmptyCart()}
		srv.carts[uid] = sc
	}

	return sc
}

// Get returns the current in-memory cart for a user.
func (srv *cartService) Get(uid string) entity.CartState {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.session(uid).state
}

// Hydrate loads the user's saved cart into memory. Best-effort: a missing
// document or a failed fetch leaves the empty cart in place, and a load that
// completes after the user has already dispatched actions is discarded.
func (srv *cartService) Hydrate(ctx context.Context, uid string) {
	if uid == "" {
		return
	}

	items, err := srv.cartRepo.Load(ctx, uid)
	if err != nil {
		if !errors.Is(err, repository.ErrCartNotFound) {
			srv.log(ctx).Warn("cart hydrate failed, starting empty",
				slog.String("uid", uid),
				slog.Any("error", err),
			)
		}

		return
	}

	loaded, err := entity.Reduce(entity.EmptyCart(), entity.LoadCart{Items: items})
	if err != nil {
		srv.log(ctx).Warn("saved cart is invalid, starting empty",
			slog.String("uid", uid),
			slog.Any("error", err),
		)

		return
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	sc := srv.session(uid)
	if sc.mutated {
		srv.log(ctx).Debug("discarding stale cart hydrate, cart already mutated",
			slog.String("uid", uid),
		)

		return
	}
	sc.state = loaded
}

// Dispatch applies a cart action under the store lock and returns the new state.
func (srv *cartService) Dispatch(ctx context.Context, uid string, action entity.CartAction) (entity.CartState, error) {
	if uid == "" {
		return entity.EmptyCart(), domainerrors.ErrUnauthenticated
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	sc := srv.session(uid)

	next, err := entity.Reduce(sc.state, action)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidQuantity) || errors.Is(err, entity.ErrInvalidPrice) || errors.Is(err, entity.ErrPriceMismatch) {
			return sc.state, domainerrors.ErrCartInvalidItem.WithDetails(err.Error())
		}

		return sc.state, errors.Wrap(err, "failed to apply cart action")
	}

	sc.state = next
	sc.mutated = true

	return next, nil
}

// Save persists the current item list to the user's cart document. The total
// is never written; it is re-derived on every load.
func (srv *cartService) Save(ctx context.Context, uid string) error {
	if uid == "" {
		return domainerrors.ErrCartSaveUnauthenticated
	}

	snapshot, release, err := srv.beginSave(uid)
	if err != nil {
		return err
	}
	defer release()

	if err := srv.cartRepo.Save(ctx, uid, snapshot.Items); err != nil {
		srv.log(ctx).Error("cart save failed",
			slog.String("uid", uid),
			slog.Any("error", err),
		)

		return domainerrors.ErrCartSaveFailed.WithDetails(err.Error())
	}

	return nil
}

// beginSave snapshots the cart state and takes the per-user save slot.
// Items and total are captured under the same lock acquisition, so the
// snapshot is always internally consistent even while dispatches keep
// landing. The returned release func must be called once the write has
// finished.
func (srv *cartService) beginSave(uid string) (entity.CartState, func(), error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	sc := srv.session(uid)
	if sc.saving {
		return entity.CartState{}, nil, domainerrors.ErrCartSaveFailed.WithDetails("a save is already in progress")
	}
	sc.saving = true

	snapshot := entity.CartState{
		Items: make([]entity.CartItem, len(sc.state.Items)),
		Total: sc.state.Total,
	}
	copy(snapshot.Items, sc.state.Items)

	release := func() {
		srv.mu.Lock()
		sc.saving = false
		srv.mu.Unlock()
	}

	return snapshot, release, nil
}

// Checkout places an order from the current cart. Ordering is load-bearing:
// the order document and the cart document are written first, and the
// in-memory cart is cleared only after both succeed, so a transient backend
// failure never costs the user their cart.
func (srv *cartService) Checkout(ctx context.Context, uid string) (*usecase.CheckoutOutput, error) {
	if uid == "" {
		return nil, domainerrors.ErrCartSaveUnauthenticated
	}

	snapshot, release, err := srv.beginSave(uid)
	if err != nil {
		return nil, err
	}
	defer release()

	if snapshot.IsEmpty() {
		return nil, domainerrors.ErrCheckoutFailed.WithDetails("cart is empty")
	}

	order := &entity.Order{
		BuyerID:   uid,
		Items:     snapshot.Items,
		Total:     snapshot.Total,
		Status:    entity.OrderPending,
		CreatedAt: time.Now().UTC(),
	}

	orderID, err := srv.orderRepo.Create(ctx, order)
	if err != nil {
		srv.log(ctx).Error("order creation failed",
			slog.String("uid", uid),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrCheckoutFailed.WithDetails(err.Error())
	}

	if err := srv.cartRepo.Save(ctx, uid, snapshot.Items); err != nil {
		srv.log(ctx).Error("cart save during checkout failed",
			slog.String("uid", uid),
			slog.String("order_id", orderID),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrCheckoutFailed.WithDetails(err.Error())
	}

	// Durable writes done; now it is safe to drop the in-memory cart.
	srv.mu.Lock()
	sc := srv.session(uid)
	sc.state = entity.EmptyCart()
	sc.mutated = true
	srv.mu.Unlock()

	srv.publishOrderPlaced(ctx, orderID, uid, snapshot.Total, snapshot.Items)

	return &usecase.CheckoutOutput{OrderID: orderID, Total: snapshot.Total}, nil
}

// publishOrderPlaced emits the order event. Best-effort: the checkout has
// already committed, so a publish failure is only logged.
func (srv *cartService) publishOrderPlaced(ctx context.Context, orderID, uid string, total float64, items []entity.CartItem) {
	if srv.publisher == nil {
		return
	}

	event := &service.OrderPlacedEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		OrderID:   orderID,
		BuyerID:   uid,
		Total:     total,
		Items:     items,
	}

	if err := srv.publisher.PublishOrderPlaced(ctx, event); err != nil {
		srv.log(ctx).Warn("order event publish failed",
			slog.String("order_id", orderID),
			slog.Any("error", err),
		)
	}
}

// ListOrders returns the user's past orders, newest first.
func (srv *cartService) ListOrders(ctx context.Context, uid string) ([]*entity.Order, error) {
	if uid == "" {
		return nil, domainerrors.ErrUnauthenticated
	}

	orders, err := srv.orderRepo.ListByBuyer(ctx, uid)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// Reset drops the in-memory cart on sign-out. The remote cart document is
// deliberately left untouched.
func (srv *cartService) Reset(uid string) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	delete(srv.carts, uid)
}
