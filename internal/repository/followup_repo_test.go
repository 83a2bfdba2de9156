package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crm-backend/internal/model"
	pkgErrors "crm-backend/pkg/responses"
)

func TestFollowupRepository_CRUD(t *testing.T) {
	repo := NewFollowupRepository(newTestDB(t))

	reminder := time.Now().AddDate(0, 0, 7)
	followup := &model.Followup{
		CustomerID:         1,
		UserID:             1,
		FollowTime:         time.Now(),
		FollowMethod:       model.FollowMethodPhone,
		Content:            "初次电话沟通，客户有采购意向",
		NextFollowReminder: &reminder,
	}
	require.NoError(t, repo.Create(followup))
	assert.Greater(t, followup.ID, int64(0))

	found, err := repo.FindByID(followup.ID)
	require.NoError(t, err)
	assert.Equal(t, model.FollowMethodPhone, found.FollowMethod)
	assert.NotNil(t, found.NextFollowReminder)

	deleted, err := repo.DeleteByID(followup.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.DeleteByID(followup.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = repo.FindByID(followup.ID)
	assert.ErrorIs(t, err, pkgErrors.ErrRecordNotFound)
}

func TestFollowupRepository_Search(t *testing.T) {
	repo := NewFollowupRepository(newTestDB(t))

	base := time.Now().Add(-48 * time.Hour)
	for i := 1; i <= 5; i++ {
		customerID := int64(1)
		if i > 3 {
			customerID = 2
		}
		require.NoError(t, repo.Create(&model.Followup{
			CustomerID:   customerID,
			UserID:       1,
			FollowTime:   base.Add(time.Duration(i) * time.Hour),
			FollowMethod: model.FollowMethodWeChat,
			Content:      fmt.Sprintf("第%d次跟进", i),
		}))
	}

	// customerID为0表示不筛选，按跟进时间倒序
	followups, total, err := repo.Search(0, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, followups, 5)
	assert.Equal(t, "第5次跟进", followups[0].Content)

	// 按客户筛选
	followups, total, err = repo.Search(1, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, followups, 3)

	// 分页
	followups, total, err = repo.Search(0, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, followups, 2)
	assert.Equal(t, "第3次跟进", followups[0].Content)
}

func TestFollowupRepository_CountByMethod(t *testing.T) {
	repo := NewFollowupRepository(newTestDB(t))

	methods := []string{
		model.FollowMethodPhone,
		model.FollowMethodPhone,
		model.FollowMethodMeeting,
	}
	for i, m := range methods {
		require.NoError(t, repo.Create(&model.Followup{
			CustomerID:   1,
			UserID:       1,
			FollowTime:   time.Now(),
			FollowMethod: m,
			Content:      fmt.Sprintf("记录%d", i),
		}))
	}

	stats, err := repo.CountByMethod()
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{
		model.FollowMethodPhone:   2,
		model.FollowMethodMeeting: 1,
	}, stats)
}

func TestFollowupRepository_CountFollowedBetween(t *testing.T) {
	repo := NewFollowupRepository(newTestDB(t))

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	require.NoError(t, repo.Create(&model.Followup{
		CustomerID: 1, UserID: 1,
		FollowTime:   today.Add(9 * time.Hour),
		FollowMethod: model.FollowMethodPhone,
		Content:      "今天",
	}))
	require.NoError(t, repo.Create(&model.Followup{
		CustomerID: 1, UserID: 1,
		FollowTime:   today.Add(-9 * time.Hour),
		FollowMethod: model.FollowMethodPhone,
		Content:      "昨天",
	}))

	count, err := repo.CountFollowedBetween(today, today.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
