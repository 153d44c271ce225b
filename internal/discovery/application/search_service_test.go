package application

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wyfcoding/beautyassistant/internal/discovery/domain"
)

type memSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]*domain.Session
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{sessions: make(map[string]*domain.Session)}
}

func (r *memSessionRepo) Get(_ context.Context, id string) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *memSessionRepo) Save(_ context.Context, session *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *session
	r.sessions[session.ID] = &clone
	return nil
}

func (r *memSessionRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

type staticProductSource struct {
	products []*domain.Product
}

func (s *staticProductSource) Products(context.Context) ([]*domain.Product, error) {
	return s.products, nil
}

type capturingPublisher struct {
	mu     sync.Mutex
	topics []string
	events []any
}

func (p *capturingPublisher) Publish(_ context.Context, topic, _ string, event any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.topics = append(p.topics, topic)
	p.events = append(p.events, event)
	return nil
}

type nopCollector struct {
	mu       sync.Mutex
	searches int
}

func (c *nopCollector) RecordSearch(float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.searches++
}
func (c *nopCollector) RecordCouponApplied()    {}
func (c *nopCollector) UpdateActiveCarts(int64) {}
func (c *nopCollector) RecordOrder()            {}
func (c *nopCollector) RecordPaymentFailed()    {}

func searchFixture() []*domain.Product {
	products := make([]*domain.Product, 0, 12)
	for i := 0; i < 12; i++ {
		products = append(products, &domain.Product{
			ProductID:   fmt.Sprintf("serum-%d", i),
			Name:        fmt.Sprintf("Hydrating Serum %d", i),
			Category:    "Skincare",
			ProductType: "Serum",
		})
	}
	products = append(products, &domain.Product{
		ProductID:   "lip-1",
		Name:        "Velvet Lipstick",
		Category:    "Makeup",
		ProductType: "Lipstick",
	})
	return products
}

func newTestSearchService(repo *memSessionRepo, source domain.ProductSource, latency time.Duration) (*SearchService, *capturingPublisher, *nopCollector) {
	publisher := &capturingPublisher{}
	collector := &nopCollector{}
	return NewSearchService(repo, source, publisher, collector, latency), publisher, collector
}

func TestSearchPagesAndReply(t *testing.T) {
	repo := newMemSessionRepo()
	svc, publisher, collector := newTestSearchService(repo, &staticProductSource{products: searchFixture()}, 0)

	result, err := svc.Search(context.Background(), SearchCommand{SessionID: "s1", Query: "hydrating serum"})
	require.NoError(t, err)

	assert.Equal(t, 12, result.Total)
	assert.Len(t, result.Products, 10)
	assert.Equal(t, "Thanks for your patience. I found 12 options for “hydrating serum”.", result.Reply)

	session, err := repo.Get(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "hydrating serum", session.LastQuery)

	assert.Equal(t, []string{"discovery.search.performed"}, publisher.topics)
	assert.Equal(t, 1, collector.searches)
}

func TestSearchMergesIntentAcrossTurns(t *testing.T) {
	repo := newMemSessionRepo()
	svc, _, _ := newTestSearchService(repo, &staticProductSource{products: searchFixture()}, 0)

	_, err := svc.Search(context.Background(), SearchCommand{SessionID: "s1", Query: "serum for oily skin"})
	require.NoError(t, err)

	result, err := svc.Search(context.Background(), SearchCommand{SessionID: "s1", Query: "make it vegan"})
	require.NoError(t, err)

	// 上一轮的肤质沿用，本轮新增 vegan
	assert.Equal(t, "oily", result.Intent.SkinType)
	assert.True(t, result.Intent.Vegan)
}

func TestSearchReturnPolicyShortCircuits(t *testing.T) {
	repo := newMemSessionRepo()
	svc, publisher, _ := newTestSearchService(repo, &staticProductSource{products: searchFixture()}, 0)

	result, err := svc.Search(context.Background(), SearchCommand{SessionID: "s1", Query: "what is the return policy"})
	require.NoError(t, err)

	assert.Equal(t, domain.ReturnPolicyAnswer, result.Reply)
	assert.Empty(t, result.Products)
	assert.Equal(t, domain.ReturnPolicyFollowups, result.Followups)

	// 不触发搜索事件，也不创建会话
	assert.Empty(t, publisher.topics)
	_, err = repo.Get(context.Background(), "s1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSearchRespectsSessionFilterAndGender(t *testing.T) {
	repo := newMemSessionRepo()
	products := []*domain.Product{
		{ProductID: "w1", Name: "Rose Serum", Category: "Skincare", Gender: "Women"},
		{ProductID: "m1", Name: "Oak Serum", Category: "Skincare", Gender: "Men"},
	}
	svc, _, _ := newTestSearchService(repo, &staticProductSource{products: products}, 0)

	session := domain.NewSession("s1")
	session.ActiveGender = "Women"
	require.NoError(t, repo.Save(context.Background(), session))

	result, err := svc.Search(context.Background(), SearchCommand{SessionID: "s1", Query: "serum"})
	require.NoError(t, err)

	require.Len(t, result.Products, 1)
	assert.Equal(t, "w1", result.Products[0].ProductID)
}

func TestSearchSupersededByNewerQuery(t *testing.T) {
	repo := newMemSessionRepo()
	svc, _, _ := newTestSearchService(repo, &staticProductSource{products: searchFixture()}, 150*time.Millisecond)

	errCh := make(chan error, 1)
	go func() {
		_, err := svc.Search(context.Background(), SearchCommand{SessionID: "s1", Query: "serum"})
		errCh <- err
	}()

	// 等第一条搜索进入延迟等待后再发起第二条
	time.Sleep(40 * time.Millisecond)
	_, err := svc.Search(context.Background(), SearchCommand{SessionID: "s1", Query: "lipstick"})
	require.NoError(t, err)

	assert.ErrorIs(t, <-errCh, ErrSearchSuperseded)
}

func TestSearchCancelledByContext(t *testing.T) {
	repo := newMemSessionRepo()
	svc, _, _ := newTestSearchService(repo, &staticProductSource{products: searchFixture()}, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(30 * time.Millisecond)
		cancel()
	}()

	_, err := svc.Search(ctx, SearchCommand{SessionID: "s1", Query: "serum"})
	assert.ErrorIs(t, err, context.Canceled)
}
