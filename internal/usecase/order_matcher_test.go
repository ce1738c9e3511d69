package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"checkout_webhooks/internal/domain/entities"
	mock_interfaces "checkout_webhooks/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

const testOrderID = "3f2504e0-4f89-41d3-9a0c-0305e82c3301"

func TestOrderMatcher_Cakto(t *testing.T) {
	t.Run("order id hint wins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		m := NewOrderMatcher(orders, 0, nil)

		orders.EXPECT().GetByID(gomock.Any(), testOrderID).
			Return(entities.Order{ID: testOrderID, Provider: entities.ProviderCakto}, nil)

		res, err := m.Match(context.Background(), entities.WebhookEvent{
			Provider:      entities.ProviderCakto,
			OrderIDHint:   testOrderID,
			TransactionID: "tx-1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Strategy != StrategyOrderID || res.Order.ID != testOrderID {
			t.Fatalf("unexpected match %+v", res)
		}
	})

	t.Run("non uuid hint skips to transaction id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		m := NewOrderMatcher(orders, 0, nil)

		orders.EXPECT().GetByTransactionID(gomock.Any(), entities.ProviderCakto, "tx-1").
			Return(entities.Order{ID: "o-2", CaktoTransactionID: "tx-1"}, nil)

		res, err := m.Match(context.Background(), entities.WebhookEvent{
			Provider:      entities.ProviderCakto,
			OrderIDHint:   "ord-7",
			TransactionID: "tx-1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Strategy != StrategyTransactionID || res.Order.ID != "o-2" {
			t.Fatalf("unexpected match %+v", res)
		}
	})

	t.Run("hint owned by other provider is ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		m := NewOrderMatcher(orders, 0, nil)

		orders.EXPECT().GetByID(gomock.Any(), testOrderID).
			Return(entities.Order{ID: testOrderID, Provider: entities.ProviderHotmart}, nil)
		orders.EXPECT().FindLatestPendingByEmail(gomock.Any(), entities.ProviderCakto, "a@b.com").
			Return(entities.Order{ID: "o-3"}, nil)

		res, err := m.Match(context.Background(), entities.WebhookEvent{
			Provider:      entities.ProviderCakto,
			OrderIDHint:   testOrderID,
			CustomerEmail: "a@b.com",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Strategy != StrategyEmailMostRecent || res.Order.ID != "o-3" {
			t.Fatalf("unexpected match %+v", res)
		}
	})

	t.Run("falls through to phone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		m := NewOrderMatcher(orders, 50, nil)

		now := time.Now()
		orders.EXPECT().GetByTransactionID(gomock.Any(), entities.ProviderCakto, "tx-9").Return(entities.Order{}, nil)
		orders.EXPECT().FindLatestPendingByEmail(gomock.Any(), entities.ProviderCakto, "a@b.com").Return(entities.Order{}, nil)
		orders.EXPECT().ListPendingByProvider(gomock.Any(), entities.ProviderCakto, 50).Return([]entities.Order{
			{ID: "old", Status: entities.OrderStatusPending, CustomerWhatsapp: "+55 11 99999-0000", CreatedAt: now.Add(-time.Hour)},
			{ID: "paid", Status: entities.OrderStatusPaid, CustomerWhatsapp: "11999990000", CreatedAt: now},
			{ID: "new", Status: entities.OrderStatusPending, CustomerWhatsapp: "(11) 99999-0000", CreatedAt: now.Add(-time.Minute)},
			{ID: "other", Status: entities.OrderStatusPending, CustomerWhatsapp: "11988880000", CreatedAt: now},
		}, nil)

		res, err := m.Match(context.Background(), entities.WebhookEvent{
			Provider:      entities.ProviderCakto,
			TransactionID: "tx-9",
			CustomerEmail: "a@b.com",
			CustomerPhone: "5511999990000",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Strategy != StrategyPhoneMostRecent || res.Order.ID != "new" {
			t.Fatalf("expected most recent pending phone match, got %+v", res)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		m := NewOrderMatcher(orders, 0, nil)

		orders.EXPECT().FindLatestPendingByEmail(gomock.Any(), entities.ProviderCakto, "a@b.com").Return(entities.Order{}, nil)

		_, err := m.Match(context.Background(), entities.WebhookEvent{
			Provider:      entities.ProviderCakto,
			CustomerEmail: "a@b.com",
		})
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("lookup error is persistence failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		m := NewOrderMatcher(orders, 0, nil)

		orders.EXPECT().GetByTransactionID(gomock.Any(), entities.ProviderCakto, "tx-1").Return(entities.Order{}, errors.New("db"))

		_, err := m.Match(context.Background(), entities.WebhookEvent{
			Provider:      entities.ProviderCakto,
			TransactionID: "tx-1",
			CustomerEmail: "a@b.com",
		})
		if !errors.Is(err, ErrPersistence) {
			t.Fatalf("expected ErrPersistence, got %v", err)
		}
	})
}

func TestOrderMatcher_Hotmart(t *testing.T) {
	t.Run("never uses order id hint", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		m := NewOrderMatcher(orders, 0, nil)

		orders.EXPECT().GetByTransactionID(gomock.Any(), entities.ProviderHotmart, "HP1").
			Return(entities.Order{ID: "o-1", HotmartTransactionID: "HP1"}, nil)

		res, err := m.Match(context.Background(), entities.WebhookEvent{
			Provider:      entities.ProviderHotmart,
			OrderIDHint:   testOrderID,
			TransactionID: "HP1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Strategy != StrategyTransactionID {
			t.Fatalf("expected transaction_id, got %s", res.Strategy)
		}
	})

	t.Run("stale transaction index row is a miss", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		m := NewOrderMatcher(orders, 0, nil)

		orders.EXPECT().GetByTransactionID(gomock.Any(), entities.ProviderHotmart, "HP1").
			Return(entities.Order{ID: "o-1", HotmartTransactionID: "HP2"}, nil)
		orders.EXPECT().FindLatestPendingByEmail(gomock.Any(), entities.ProviderHotmart, "a@b.com").
			Return(entities.Order{ID: "o-5"}, nil)

		res, err := m.Match(context.Background(), entities.WebhookEvent{
			Provider:      entities.ProviderHotmart,
			TransactionID: "HP1",
			CustomerEmail: "a@b.com",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Strategy != StrategyEmailMostRecent || res.Order.ID != "o-5" {
			t.Fatalf("unexpected match %+v", res)
		}
	})
}

func TestOrderMatcher_UnsupportedProvider(t *testing.T) {
	m := NewOrderMatcher(nil, 0, nil)
	_, err := m.Match(context.Background(), entities.WebhookEvent{Provider: "stripe"})
	if !errors.Is(err, ErrUnsupportedProvider) {
		t.Fatalf("expected ErrUnsupportedProvider, got %v", err)
	}
}

func TestMatchStrategy_Reliable(t *testing.T) {
	if StrategyEmailMostRecent.Reliable() {
		t.Fatalf("email strategy must require validation")
	}
	for _, s := range []MatchStrategy{StrategyOrderID, StrategyTransactionID, StrategyPhoneMostRecent} {
		if !s.Reliable() {
			t.Fatalf("%s should be reliable", s)
		}
	}
}
