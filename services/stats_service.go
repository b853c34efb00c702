package services

import (
	"time"

	"contact-hub/models"
)

const upcomingActionWindow = 5 * 24 * time.Hour

// StatsService aggregates dashboard counters across the other entities
type StatsService struct {
	repo StatsRepository
}

func NewStatsService(repo StatsRepository) *StatsService {
	return &StatsService{repo: repo}
}

func (s *StatsService) Overview() (*models.Stats, error) {
	contacts, err := s.repo.CountContacts()
	if err != nil {
		return nil, err
	}
	lists, err := s.repo.CountContactLists()
	if err != nil {
		return nil, err
	}
	publicLists, err := s.repo.CountPublicContactLists()
	if err != nil {
		return nil, err
	}
	lastContacts, err := s.repo.GetLastContacts(5)
	if err != nil {
		return nil, err
	}
	upcoming, err := s.repo.ListUpcomingActions(upcomingActionWindow)
	if err != nil {
		return nil, err
	}

	return &models.Stats{
		NumberOfContacts:     contacts,
		NumberOfLists:        lists,
		NumberOfPublicLists:  publicLists,
		NumberOfPrivateLists: lists - publicLists,
		LastContacts:         lastContacts,
		UpcomingInteractions: upcoming,
	}, nil
}
