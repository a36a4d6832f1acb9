package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"krishihive/internal/domain/entity"
	domainerrors "krishihive/internal/domain/errors"
	"krishihive/internal/domain/repository"
	"krishihive/internal/domain/service"
	mockRepo "krishihive/internal/mocks/repository"
	mockService "krishihive/internal/mocks/service"
	"krishihive/internal/usecase"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service   usecase.CartUsecase
	cartRepo  *mockRepo.MockCartRepository
	orderRepo *mockRepo.MockOrderRepository
	publisher *mockService.MockEventPublisher
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	cartRepo := mockRepo.NewMockCartRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	publisher := mockService.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewCartService(cartRepo, orderRepo, publisher, logger)

	return cartServiceFixtures{
		service:   svc,
		cartRepo:  cartRepo,
		orderRepo: orderRepo,
		publisher: publisher,
	}
}

func paddyItem() entity.CartItem {
	return entity.CartItem{ID: "p-1", Name: "Paddy Seeds", Price: 450, Quantity: 2, Unit: "bag", Seller: "Green Valley FPO"}
}

func compostItem() entity.CartItem {
	return entity.CartItem{ID: "p-2", Name: "Vermicompost", Price: 120, Quantity: 1, Unit: "kg", Seller: "Soil Care"}
}

func TestCartService_Get_EmptyByDefault(t *testing.T) {
	fx := createTestCartService(t)

	state := fx.service.Get("uid-1")

	assert.Empty(t, state.Items)
	assert.Zero(t, state.Total)
}

func TestCartService_Dispatch_AddItem(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	state, err := fx.service.Dispatch(ctx, "uid-1", entity.AddItem{Item: paddyItem()})

	require.NoError(t, err)
	require.Len(t, state.Items, 1)
	assert.InDelta(t, 900, state.Total, 1e-9)

	// The store keeps state per user.
	other := fx.service.Get("uid-2")
	assert.Empty(t, other.Items)
}

func TestCartService_Dispatch_Unauthenticated(t *testing.T) {
	fx := createTestCartService(t)

	_, err := fx.service.Dispatch(context.Background(), "", entity.AddItem{Item: paddyItem()})

	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestCartService_Dispatch_InvalidQuantityRejected(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	_, err := fx.service.Dispatch(ctx, "uid-1", entity.AddItem{Item: paddyItem()})
	require.NoError(t, err)

	bad := paddyItem()
	bad.Quantity = 0
	state, err := fx.service.Dispatch(ctx, "uid-1", entity.AddItem{Item: bad})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrCartInvalidItem.ErrorCode(), appErr.ErrorCode())

	// The stored cart is untouched by the failed dispatch.
	assert.Len(t, state.Items, 1)
	assert.InDelta(t, 900, fx.service.Get("uid-1").Total, 1e-9)
}

func TestCartService_Hydrate_LoadsSavedCart(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	fx.cartRepo.EXPECT().
		Load(ctx, "uid-1").
		Return([]entity.CartItem{paddyItem(), compostItem()}, nil)

	fx.service.Hydrate(ctx, "uid-1")

	state := fx.service.Get("uid-1")
	require.Len(t, state.Items, 2)
	assert.InDelta(t, 1020, state.Total, 1e-9)
}

func TestCartService_Hydrate_MissingDocumentLeavesCartEmpty(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	fx.cartRepo.EXPECT().
		Load(ctx, "uid-1").
		Return(nil, repository.ErrCartNotFound)

	fx.service.Hydrate(ctx, "uid-1")

	assert.Empty(t, fx.service.Get("uid-1").Items)
}

func TestCartService_Hydrate_DiscardedAfterMutation(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	// The user adds an item while the load is still in flight.
	fx.cartRepo.EXPECT().
		Load(ctx, "uid-1").
		Run(func(ctx context.Context, uid string) {
			_, err := fx.service.Dispatch(ctx, uid, entity.AddItem{Item: compostItem()})
			require.NoError(t, err)
		}).
		Return([]entity.CartItem{paddyItem()}, nil)

	fx.service.Hydrate(ctx, "uid-1")

	// The dispatched item wins; the stale load result is dropped.
	state := fx.service.Get("uid-1")
	require.Len(t, state.Items, 1)
	assert.Equal(t, "p-2", state.Items[0].ID)
}

func TestCartService_Save_Success(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	_, err := fx.service.Dispatch(ctx, "uid-1", entity.AddItem{Item: paddyItem()})
	require.NoError(t, err)

	fx.cartRepo.EXPECT().
		Save(ctx, "uid-1", mock.AnythingOfType("[]entity.CartItem")).
		Run(func(ctx context.Context, uid string, items []entity.CartItem) {
			require.Len(t, items, 1)
			assert.Equal(t, "p-1", items[0].ID)
		}).
		Return(nil)

	require.NoError(t, fx.service.Save(ctx, "uid-1"))
}

func TestCartService_Save_Unauthenticated(t *testing.T) {
	fx := createTestCartService(t)

	err := fx.service.Save(context.Background(), "")

	assert.ErrorIs(t, err, domainerrors.ErrCartSaveUnauthenticated)
}

func TestCartService_Save_BackendFailureKeepsCart(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	_, err := fx.service.Dispatch(ctx, "uid-1", entity.AddItem{Item: paddyItem()})
	require.NoError(t, err)

	fx.cartRepo.EXPECT().
		Save(ctx, "uid-1", mock.AnythingOfType("[]entity.CartItem")).
		Return(errors.New("firestore unavailable"))

	err = fx.service.Save(ctx, "uid-1")

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrCartSaveFailed.ErrorCode(), appErr.ErrorCode())

	// A failed save never loses the in-memory cart.
	assert.Len(t, fx.service.Get("uid-1").Items, 1)
}

func TestCartService_Checkout_Success(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	_, err := fx.service.Dispatch(ctx, "uid-1", entity.AddItem{Item: paddyItem()})
	require.NoError(t, err)
	_, err = fx.service.Dispatch(ctx, "uid-1", entity.AddItem{Item: compostItem()})
	require.NoError(t, err)

	fx.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(ctx context.Context, order *entity.Order) {
			assert.Equal(t, "uid-1", order.BuyerID)
			assert.Equal(t, entity.OrderPending, order.Status)
			assert.Len(t, order.Items, 2)
			assert.InDelta(t, 1020, order.Total, 1e-9)
		}).
		Return("order-42", nil)
	fx.cartRepo.EXPECT().
		Save(ctx, "uid-1", mock.AnythingOfType("[]entity.CartItem")).
		Return(nil)
	fx.publisher.EXPECT().
		PublishOrderPlaced(ctx, mock.AnythingOfType("*service.OrderPlacedEvent")).
		Run(func(ctx context.Context, event *service.OrderPlacedEvent) {
			assert.Equal(t, "order-42", event.OrderID)
			assert.Equal(t, "uid-1", event.BuyerID)
		}).
		Return(nil)

	out, err := fx.service.Checkout(ctx, "uid-1")

	require.NoError(t, err)
	assert.Equal(t, "order-42", out.OrderID)
	assert.InDelta(t, 1020, out.Total, 1e-9)

	// Only after every durable write has succeeded is the cart emptied.
	assert.Empty(t, fx.service.Get("uid-1").Items)
}

func TestCartService_Checkout_EmptyCart(t *testing.T) {
	fx := createTestCartService(t)

	_, err := fx.service.Checkout(context.Background(), "uid-1")

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrCheckoutFailed.ErrorCode(), appErr.ErrorCode())
}

func TestCartService_Checkout_OrderWriteFailureKeepsCart(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	_, err := fx.service.Dispatch(ctx, "uid-1", entity.AddItem{Item: paddyItem()})
	require.NoError(t, err)

	fx.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Return("", errors.New("firestore unavailable"))

	_, err = fx.service.Checkout(ctx, "uid-1")

	require.Error(t, err)
	assert.Len(t, fx.service.Get("uid-1").Items, 1)
}

func TestCartService_Checkout_CartWriteFailureKeepsCart(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	_, err := fx.service.Dispatch(ctx, "uid-1", entity.AddItem{Item: paddyItem()})
	require.NoError(t, err)

	fx.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Return("order-42", nil)
	fx.cartRepo.EXPECT().
		Save(ctx, "uid-1", mock.AnythingOfType("[]entity.CartItem")).
		Return(errors.New("firestore unavailable"))

	_, err = fx.service.Checkout(ctx, "uid-1")

	require.Error(t, err)
	assert.Len(t, fx.service.Get("uid-1").Items, 1)
}

func TestCartService_Checkout_PublishFailureDoesNotRollBack(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	_, err := fx.service.Dispatch(ctx, "uid-1", entity.AddItem{Item: paddyItem()})
	require.NoError(t, err)

	fx.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Return("order-42", nil)
	fx.cartRepo.EXPECT().
		Save(ctx, "uid-1", mock.AnythingOfType("[]entity.CartItem")).
		Return(nil)
	fx.publisher.EXPECT().
		PublishOrderPlaced(ctx, mock.AnythingOfType("*service.OrderPlacedEvent")).
		Return(errors.New("broker down"))

	out, err := fx.service.Checkout(ctx, "uid-1")

	require.NoError(t, err)
	assert.Equal(t, "order-42", out.OrderID)
	assert.Empty(t, fx.service.Get("uid-1").Items)
}

func TestCartService_Reset_DropsOnlyMemory(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	_, err := fx.service.Dispatch(ctx, "uid-1", entity.AddItem{Item: paddyItem()})
	require.NoError(t, err)

	// No cartRepo.Save expectation: sign-out must not touch the document.
	fx.service.Reset("uid-1")

	assert.Empty(t, fx.service.Get("uid-1").Items)
}

func TestCartService_Checkout_OrderTotalConsistentUnderConcurrentDispatch(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	// Every written order must be internally consistent: its total equal to
	// the sum of its item subtotals, no matter how dispatches interleave.
	fx.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		RunAndReturn(func(_ context.Context, order *entity.Order) (string, error) {
			var sum float64
			for _, item := range order.Items {
				sum += item.Subtotal()
			}
			assert.InDelta(t, sum, order.Total, 1e-9)

			return "order-1", nil
		}).
		Maybe()
	fx.cartRepo.EXPECT().
		Save(ctx, "uid-1", mock.AnythingOfType("[]entity.CartItem")).
		Return(nil).
		Maybe()
	fx.publisher.EXPECT().
		PublishOrderPlaced(ctx, mock.AnythingOfType("*service.OrderPlacedEvent")).
		Return(nil).
		Maybe()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 2000; i++ {
			_, _ = fx.service.Dispatch(ctx, "uid-1", entity.AddItem{Item: paddyItem()})
		}
	}()

	for i := 0; i < 300; i++ {
		// Empty-cart checkouts are expected while the adder lags.
		_, _ = fx.service.Checkout(ctx, "uid-1")
	}
	<-done
}

func TestCartService_ListOrders_ReturnsBuyerHistory(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	fx.orderRepo.EXPECT().
		ListByBuyer(ctx, "uid-1").
		Return([]*entity.Order{
			{ID: "order-2", BuyerID: "uid-1", Total: 1020, Status: entity.OrderPending},
			{ID: "order-1", BuyerID: "uid-1", Total: 900, Status: entity.OrderDelivered},
		}, nil)

	orders, err := fx.service.ListOrders(ctx, "uid-1")

	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "order-2", orders[0].ID)
}

func TestCartService_ListOrders_Unauthenticated(t *testing.T) {
	fx := createTestCartService(t)

	_, err := fx.service.ListOrders(context.Background(), "")

	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestCartService_Dispatch_CartsAreIsolatedPerUser(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	uids := make([]string, 5)
	for i := range uids {
		uids[i] = gofakeit.UUID()
		item := entity.CartItem{
			ID:       gofakeit.UUID(),
			Name:     gofakeit.ProductName(),
			Price:    gofakeit.Price(1, 500),
			Quantity: i + 1,
			Unit:     "kg",
		}

		state, err := fx.service.Dispatch(ctx, uids[i], entity.AddItem{Item: item})
		require.NoError(t, err)
		assert.Len(t, state.Items, 1)
	}

	for i, uid := range uids {
		state := fx.service.Get(uid)
		require.Len(t, state.Items, 1)
		assert.Equal(t, i+1, state.Items[0].Quantity)
	}
}
