package services

import (
	"testing"
	"time"

	"contact-hub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStatsRepository struct {
	mock.Mock
}

var _ StatsRepository = (*MockStatsRepository)(nil)

func (m *MockStatsRepository) CountContacts() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func (m *MockStatsRepository) CountContactLists() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func (m *MockStatsRepository) CountPublicContactLists() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func (m *MockStatsRepository) GetLastContacts(limit int) ([]models.Contact, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Contact), args.Error(1)
}

func (m *MockStatsRepository) ListUpcomingActions(window time.Duration) ([]models.InteractionWithContact, error) {
	args := m.Called(window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.InteractionWithContact), args.Error(1)
}

func TestStatsService_Overview(t *testing.T) {
	repo := new(MockStatsRepository)
	svc := NewStatsService(repo)

	repo.On("CountContacts").Return(42, nil)
	repo.On("CountContactLists").Return(7, nil)
	repo.On("CountPublicContactLists").Return(3, nil)
	repo.On("GetLastContacts", 5).Return([]models.Contact{{ID: "c1"}, {ID: "c2"}}, nil)
	repo.On("ListUpcomingActions", 5*24*time.Hour).Return([]models.InteractionWithContact{}, nil)

	stats, err := svc.Overview()
	require.NoError(t, err)

	assert.Equal(t, 42, stats.NumberOfContacts)
	assert.Equal(t, 7, stats.NumberOfLists)
	assert.Equal(t, 3, stats.NumberOfPublicLists)
	assert.Equal(t, 4, stats.NumberOfPrivateLists)
	assert.Len(t, stats.LastContacts, 2)
	repo.AssertExpectations(t)
}
