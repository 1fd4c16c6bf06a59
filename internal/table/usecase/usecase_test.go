package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fekuna/omnipos-restaurant-service/internal/model"
	"github.com/fekuna/omnipos-restaurant-service/pkg/logger"
)

type mockRepo struct {
	statusID    int64
	statusValue model.TableStatus
	calls       int
	err         error
}

func (m *mockRepo) FindAll(ctx context.Context) ([]model.Table, error) { return nil, nil }

func (m *mockRepo) SetStatus(ctx context.Context, id int64, status model.TableStatus) error {
	m.statusID = id
	m.statusValue = status
	m.calls++
	return m.err
}

func TestResetTable(t *testing.T) {
	repo := &mockRepo{}
	uc := NewTableUseCase(repo, logger.NewNop())

	require.NoError(t, uc.ResetTable(context.Background(), 5))
	assert.Equal(t, int64(5), repo.statusID)
	assert.Equal(t, model.TableAvailable, repo.statusValue)
}

func TestResetTable_Idempotent(t *testing.T) {
	repo := &mockRepo{}
	uc := NewTableUseCase(repo, logger.NewNop())

	require.NoError(t, uc.ResetTable(context.Background(), 5))
	require.NoError(t, uc.ResetTable(context.Background(), 5))
	// Both writes set Available; repeating changes nothing observable.
	assert.Equal(t, model.TableAvailable, repo.statusValue)
	assert.Equal(t, 2, repo.calls)
}

func TestResetTable_InvalidID(t *testing.T) {
	repo := &mockRepo{}
	uc := NewTableUseCase(repo, logger.NewNop())

	require.Error(t, uc.ResetTable(context.Background(), 0))
	assert.Zero(t, repo.calls)
}
