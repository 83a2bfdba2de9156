package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crm-backend/internal/model"
	"crm-backend/internal/repository"
)

func newFollowupService(t *testing.T) (FollowupService, repository.FollowupRepository) {
	t.Helper()
	repo := repository.NewFollowupRepository(newTestDB(t))
	return NewFollowupService(repo), repo
}

func TestFollowupService_GetFollowups(t *testing.T) {
	svc, repo := newFollowupService(t)

	base := time.Now().Add(-24 * time.Hour)
	for i := 1; i <= 3; i++ {
		require.NoError(t, repo.Create(&model.Followup{
			CustomerID:   int64(i % 2),
			UserID:       1,
			FollowTime:   base.Add(time.Duration(i) * time.Hour),
			FollowMethod: model.FollowMethodPhone,
			Content:      fmt.Sprintf("第%d次跟进", i),
		}))
	}

	// 不筛选客户，按跟进时间倒序
	followups, total, err := svc.GetFollowups(1, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, followups, 3)
	assert.Equal(t, "第3次跟进", followups[0].Content)

	// 按客户筛选
	_, total, err = svc.GetFollowups(1, 10, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestFollowupService_GetFollowupCountStatistics(t *testing.T) {
	svc, repo := newFollowupService(t)

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	require.NoError(t, repo.Create(&model.Followup{
		CustomerID: 1, UserID: 1,
		FollowTime:   today.Add(14 * time.Hour),
		FollowMethod: model.FollowMethodPhone,
		Content:      "今天",
	}))
	require.NoError(t, repo.Create(&model.Followup{
		CustomerID: 1, UserID: 1,
		FollowTime:   today.AddDate(0, 0, -3).Add(time.Hour),
		FollowMethod: model.FollowMethodWeChat,
		Content:      "三天前",
	}))

	stats, err := svc.GetFollowupCountStatistics(7)
	require.NoError(t, err)
	require.Len(t, stats, 7)
	assert.Equal(t, int64(1), stats[today.Format("2006-01-02")])
	assert.Equal(t, int64(1), stats[today.AddDate(0, 0, -3).Format("2006-01-02")])
	assert.Equal(t, int64(0), stats[today.AddDate(0, 0, -1).Format("2006-01-02")])
}
