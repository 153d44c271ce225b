package application

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wyfcoding/beautyassistant/internal/checkout/domain"
)

type fakeCartGateway struct {
	snapshot *domain.CartSnapshot
	cleared  []string
}

func (g *fakeCartGateway) Snapshot(context.Context, string) (*domain.CartSnapshot, error) {
	return g.snapshot, nil
}

func (g *fakeCartGateway) Clear(_ context.Context, sessionID string) error {
	g.cleared = append(g.cleared, sessionID)
	return nil
}

type fakeProvider struct {
	result domain.PaymentResult
}

func (p *fakeProvider) Authorize(context.Context, string, decimal.Decimal) (domain.PaymentResult, error) {
	return p.result, nil
}

type memOrderRepo struct {
	orders []*domain.Order
}

func (r *memOrderRepo) Save(_ context.Context, order *domain.Order) error {
	r.orders = append(r.orders, order)
	return nil
}

func (r *memOrderRepo) GetByOrderID(_ context.Context, orderID string) (*domain.Order, error) {
	for _, o := range r.orders {
		if o.OrderID == orderID {
			return o, nil
		}
	}
	return nil, domain.ErrOrderNotFound
}

func (r *memOrderRepo) ListBySessionID(_ context.Context, sessionID string) ([]*domain.Order, error) {
	out := make([]*domain.Order, 0)
	for _, o := range r.orders {
		if o.SessionID == sessionID {
			out = append(out, o)
		}
	}
	return out, nil
}

type capturingPublisher struct {
	topics []string
	events []any
}

func (p *capturingPublisher) Publish(_ context.Context, topic, _ string, event any) error {
	p.topics = append(p.topics, topic)
	p.events = append(p.events, event)
	return nil
}

type countingCollector struct {
	orders   int
	failures int
}

func (c *countingCollector) RecordSearch(float64)    {}
func (c *countingCollector) RecordCouponApplied()    {}
func (c *countingCollector) UpdateActiveCarts(int64) {}
func (c *countingCollector) RecordOrder()            { c.orders++ }
func (c *countingCollector) RecordPaymentFailed()    { c.failures++ }

func checkoutSnapshot() *domain.CartSnapshot {
	return &domain.CartSnapshot{
		Lines: []domain.CartLine{
			{ProductID: "p1", Name: "Hydrating Serum", Price: decimal.RequireFromString("48"), Qty: 2, Size: "30ml", Color: "Neutral"},
		},
		Totals: domain.CartTotals{
			Subtotal:      decimal.RequireFromString("96.00"),
			CartPromotion: decimal.RequireFromString("9.60"),
			Shipping:      decimal.RequireFromString("60"),
			Taxes:         decimal.RequireFromString("4.32"),
			Total:         decimal.RequireFromString("150.72"),
		},
	}
}

func newTestCheckoutService(outcome domain.PaymentOutcome, ref string) (*CheckoutService, *memOrderRepo, *fakeCartGateway, *capturingPublisher, *countingCollector) {
	repo := &memOrderRepo{}
	gateway := &fakeCartGateway{snapshot: checkoutSnapshot()}
	provider := &fakeProvider{result: domain.PaymentResult{Outcome: outcome, Ref: ref}}
	publisher := &capturingPublisher{}
	collector := &countingCollector{}
	svc := NewCheckoutService(repo, gateway, provider, publisher, collector)
	return svc, repo, gateway, publisher, collector
}

func TestCheckoutWalletSuccess(t *testing.T) {
	svc, repo, gateway, publisher, collector := newTestCheckoutService(domain.PaymentSuccess, "wallet-123")

	result, err := svc.Checkout(context.Background(), "s1")
	require.NoError(t, err)

	assert.Equal(t, domain.PaymentSuccess, result.Outcome)
	assert.False(t, result.MockSheetRequired)
	require.NotNil(t, result.Order)
	assert.Equal(t, domain.StatusConfirmed, result.Order.Status)
	assert.Equal(t, "wallet-123", result.Order.PaymentRef)
	assert.Regexp(t, `^\d{8}$`, result.Order.OrderID)
	assert.True(t, result.Order.Total.Equal(decimal.RequireFromString("150.72")))
	require.Len(t, result.Order.Items, 1)
	assert.Equal(t, "p1", result.Order.Items[0].ProductID)

	assert.Len(t, repo.orders, 1)
	assert.Equal(t, []string{"s1"}, gateway.cleared)
	assert.Equal(t, []string{"checkout.order.placed"}, publisher.topics)
	assert.Equal(t, 1, collector.orders)
	assert.Equal(t, 0, collector.failures)
}

func TestCheckoutWalletAbortedIsSilent(t *testing.T) {
	svc, repo, gateway, publisher, collector := newTestCheckoutService(domain.PaymentAborted, "")

	result, err := svc.Checkout(context.Background(), "s1")
	require.NoError(t, err)

	assert.Equal(t, domain.PaymentAborted, result.Outcome)
	assert.False(t, result.MockSheetRequired)
	assert.Nil(t, result.Order)
	assert.Empty(t, result.Message)

	assert.Empty(t, repo.orders)
	assert.Empty(t, gateway.cleared)
	assert.Empty(t, publisher.topics)
	assert.Equal(t, 0, collector.failures)
}

func TestCheckoutWalletUnavailableRequiresMockSheet(t *testing.T) {
	svc, repo, _, publisher, collector := newTestCheckoutService(domain.PaymentUnavailable, "")

	result, err := svc.Checkout(context.Background(), "s1")
	require.NoError(t, err)

	assert.Equal(t, domain.PaymentUnavailable, result.Outcome)
	assert.True(t, result.MockSheetRequired)
	assert.Equal(t, "Wallet payment did not complete. Continue with the payment sheet.", result.Message)
	assert.Nil(t, result.Order)

	assert.Empty(t, repo.orders)
	assert.Equal(t, []string{"checkout.payment.failed"}, publisher.topics)
	assert.Equal(t, 1, collector.failures)
}

func TestCheckoutWalletFailedRequiresMockSheet(t *testing.T) {
	svc, _, _, publisher, collector := newTestCheckoutService(domain.PaymentFailed, "")

	result, err := svc.Checkout(context.Background(), "s1")
	require.NoError(t, err)

	assert.Equal(t, domain.PaymentFailed, result.Outcome)
	assert.True(t, result.MockSheetRequired)
	assert.Equal(t, []string{"checkout.payment.failed"}, publisher.topics)
	assert.Equal(t, 1, collector.failures)
}

func TestCheckoutEmptyCart(t *testing.T) {
	svc, _, gateway, _, _ := newTestCheckoutService(domain.PaymentSuccess, "wallet-123")
	gateway.snapshot = &domain.CartSnapshot{}

	_, err := svc.Checkout(context.Background(), "s1")
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestConfirmMockPayment(t *testing.T) {
	svc, repo, gateway, publisher, collector := newTestCheckoutService(domain.PaymentFailed, "")

	result, err := svc.ConfirmMockPayment(context.Background(), "s1", "mock-ref-1")
	require.NoError(t, err)

	assert.Equal(t, domain.PaymentSuccess, result.Outcome)
	require.NotNil(t, result.Order)
	assert.Equal(t, "mock-ref-1", result.Order.PaymentRef)

	assert.Len(t, repo.orders, 1)
	assert.Equal(t, []string{"s1"}, gateway.cleared)
	assert.Equal(t, []string{"checkout.order.placed"}, publisher.topics)
	assert.Equal(t, 1, collector.orders)
}
