package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wyfcoding/beautyassistant/internal/discovery/domain"
)

func TestGetSessionMissingReturnsEmpty(t *testing.T) {
	svc := NewSessionService(newMemSessionRepo())

	session, err := svc.GetSession(context.Background(), "fresh")
	require.NoError(t, err)
	assert.Equal(t, "fresh", session.ID)
	assert.Empty(t, session.LastQuery)
}

func TestSetFilterToggle(t *testing.T) {
	repo := newMemSessionRepo()
	svc := NewSessionService(repo)

	session, err := svc.SetFilter(context.Background(), "s1", domain.FilterVegan)
	require.NoError(t, err)
	assert.Equal(t, domain.FilterVegan, session.ActiveFilter)

	// 重复设置同一筛选等价于清除
	session, err = svc.SetFilter(context.Background(), "s1", domain.FilterVegan)
	require.NoError(t, err)
	assert.Equal(t, domain.SimpleFilter(""), session.ActiveFilter)

	session, err = svc.SetFilter(context.Background(), "s1", domain.FilterUnder25)
	require.NoError(t, err)
	assert.Equal(t, domain.FilterUnder25, session.ActiveFilter)
}

func TestSetFilterUnknown(t *testing.T) {
	svc := NewSessionService(newMemSessionRepo())

	_, err := svc.SetFilter(context.Background(), "s1", "under100")
	assert.ErrorIs(t, err, ErrUnknownFilter)
}

func TestSetGender(t *testing.T) {
	repo := newMemSessionRepo()
	svc := NewSessionService(repo)

	session, err := svc.SetGender(context.Background(), "s1", "Women")
	require.NoError(t, err)
	assert.Equal(t, "Women", session.ActiveGender)

	session, err = svc.SetGender(context.Background(), "s1", "")
	require.NoError(t, err)
	assert.Empty(t, session.ActiveGender)
}

func TestEndSession(t *testing.T) {
	repo := newMemSessionRepo()
	svc := NewSessionService(repo)

	_, err := svc.SetGender(context.Background(), "s1", "Women")
	require.NoError(t, err)

	require.NoError(t, svc.EndSession(context.Background(), "s1"))

	_, err = repo.Get(context.Background(), "s1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}
