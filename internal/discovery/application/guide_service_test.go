package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wyfcoding/beautyassistant/internal/discovery/domain"
)

func guideFixture() []*domain.Product {
	return []*domain.Product{
		{ProductID: "w1", Name: "Rose Serum", Category: "Skincare", Gender: "Women"},
		{ProductID: "w2", Name: "Bloom Cream", Category: "Skincare", Gender: "Women"},
		{ProductID: "m1", Name: "Oak Serum", Category: "Skincare", Gender: "Men"},
		{ProductID: "w3", Name: "Petal Toner", Category: "Skincare", Gender: "Women"},
		{ProductID: "w4", Name: "Dew Mist", Category: "Skincare", Gender: "Women"},
		{ProductID: "w5", Name: "Silk Balm", Category: "Skincare", Gender: "Women"},
		{ProductID: "w6", Name: "Glow Oil", Category: "Skincare", Gender: "Women"},
	}
}

func newTestGuideService(repo *memSessionRepo, products []*domain.Product) (*GuideService, *capturingPublisher) {
	publisher := &capturingPublisher{}
	return NewGuideService(repo, &staticProductSource{products: products}, publisher), publisher
}

func TestStartGuideResetsStateFromSession(t *testing.T) {
	repo := newMemSessionRepo()
	svc, _ := newTestGuideService(repo, guideFixture())

	session := domain.NewSession("s1")
	session.LastQuery = "skincare"
	session.LastIntent = domain.Intent{Vegan: true}
	require.NoError(t, repo.Save(context.Background(), session))

	view, err := svc.StartGuide(context.Background(), "s1")
	require.NoError(t, err)

	assert.Equal(t, domain.StageAwaitingGender, view.Stage)
	assert.Equal(t, "Happy to help! Quick question first—who are you shopping for?", view.Prompt)
	assert.Len(t, view.Options, 4)

	saved, err := repo.Get(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "skincare", saved.Guide.Query)
	assert.Equal(t, domain.Intent{Vegan: true}, saved.Guide.Intent)
}

func TestAnswerGuideCompletesWithRecommendations(t *testing.T) {
	repo := newMemSessionRepo()
	svc, publisher := newTestGuideService(repo, guideFixture())

	_, err := svc.StartGuide(context.Background(), "s1")
	require.NoError(t, err)

	_, err = svc.AnswerGuide(context.Background(), "s1", "Female")
	require.NoError(t, err)
	_, err = svc.AnswerGuide(context.Background(), "s1", "One week")
	require.NoError(t, err)
	_, err = svc.AnswerGuide(context.Background(), "s1", "Warm climate")
	require.NoError(t, err)

	view, err := svc.AnswerGuide(context.Background(), "s1", "Air pockets")
	require.NoError(t, err)

	assert.Equal(t, domain.StageComplete, view.Stage)
	assert.Contains(t, view.Prompt, "Here's what I noted")
	// 性别答案写入会话过滤，推荐只剩女性商品，页大小 5
	assert.Equal(t, 6, view.Total)
	assert.Len(t, view.Products, 5)
	for _, p := range view.Products {
		assert.Equal(t, "Women", p.Gender)
	}

	assert.Equal(t, []string{"discovery.guide.completed"}, publisher.topics)

	saved, err := repo.Get(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "Women", saved.ActiveGender)
	assert.False(t, saved.Guide.Active())
}

func TestAnswerGuideNotActive(t *testing.T) {
	repo := newMemSessionRepo()
	svc, _ := newTestGuideService(repo, guideFixture())

	_, err := svc.AnswerGuide(context.Background(), "missing", "Female")
	assert.ErrorIs(t, err, ErrGuideNotActive)

	session := domain.NewSession("s1")
	require.NoError(t, repo.Save(context.Background(), session))
	_, err = svc.AnswerGuide(context.Background(), "s1", "Female")
	assert.ErrorIs(t, err, ErrGuideNotActive)
}

func TestAnswerGuideInvalidAnswer(t *testing.T) {
	repo := newMemSessionRepo()
	svc, _ := newTestGuideService(repo, guideFixture())

	_, err := svc.StartGuide(context.Background(), "s1")
	require.NoError(t, err)

	_, err = svc.AnswerGuide(context.Background(), "s1", "Purple")
	assert.ErrorIs(t, err, domain.ErrInvalidGuideAnswer)

	// 失败的答案不推进阶段
	saved, getErr := repo.Get(context.Background(), "s1")
	require.NoError(t, getErr)
	assert.Equal(t, domain.StageAwaitingGender, saved.Guide.Stage)
}
