package service

import (
	"github.com/samber/lo"

	"crm-backend/internal/dto"
	"crm-backend/internal/model"
	"crm-backend/internal/repository"
)

type FollowupService interface {
	AddFollowup(followup *model.Followup) error
	GetFollowupByID(id int64) (*model.Followup, error)
	DeleteFollowup(id int64) (bool, error)
	// GetFollowups 按跟进时间倒序分页查询；customerID为0表示不筛选
	GetFollowups(page, limit int, customerID int64) ([]*dto.FollowupResponse, int64, error)
	// GetFollowupMethodStatistics 跟进方式分布
	GetFollowupMethodStatistics() (map[string]int64, error)
	// GetFollowupCountStatistics 最近days个自然日（含今天）每天的跟进数量，按follow_time归档
	GetFollowupCountStatistics(days int) (map[string]int64, error)
}

type followupService struct {
	followupRepo repository.FollowupRepository
}

func NewFollowupService(followupRepo repository.FollowupRepository) FollowupService {
	return &followupService{followupRepo: followupRepo}
}

func (s *followupService) AddFollowup(followup *model.Followup) error {
	return s.followupRepo.Create(followup)
}

func (s *followupService) GetFollowupByID(id int64) (*model.Followup, error) {
	return s.followupRepo.FindByID(id)
}

func (s *followupService) DeleteFollowup(id int64) (bool, error) {
	return s.followupRepo.DeleteByID(id)
}

func (s *followupService) GetFollowups(page, limit int, customerID int64) ([]*dto.FollowupResponse, int64, error) {
	followups, total, err := s.followupRepo.Search(customerID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	resp := lo.Map(followups, func(f *model.Followup, _ int) *dto.FollowupResponse {
		return dto.NewFollowupResponse(f)
	})
	return resp, total, nil
}

func (s *followupService) GetFollowupMethodStatistics() (map[string]int64, error) {
	return s.followupRepo.CountByMethod()
}

func (s *followupService) GetFollowupCountStatistics(days int) (map[string]int64, error) {
	return countByDay(days, s.followupRepo.CountFollowedBetween)
}
