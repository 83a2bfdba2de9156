package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crm-backend/internal/model"
	pkgErrors "crm-backend/pkg/responses"
)

func TestUserRepository_CRUD(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	user := &model.User{
		Username: "zhangsan",
		Password: "e10adc3949ba59abbe56e057f20f883e",
		Nickname: "张三",
		Role:     model.RoleUser,
	}
	require.NoError(t, repo.Create(user))
	assert.Greater(t, user.ID, int64(0))

	// 按ID查询
	found, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "zhangsan", found.Username)

	// 按用户名查询
	found, err = repo.FindByUsername("zhangsan")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	// 更新
	found.Nickname = "张三丰"
	require.NoError(t, repo.Update(found))
	updated, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "张三丰", updated.Nickname)

	// 删除
	deleted, err := repo.DeleteByID(user.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = repo.FindByID(user.ID)
	assert.ErrorIs(t, err, pkgErrors.ErrRecordNotFound)
}

func TestUserRepository_NotFound(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	// 不存在的记录返回哨兵错误
	_, err := repo.FindByUsername("nobody")
	assert.ErrorIs(t, err, pkgErrors.ErrRecordNotFound)

	// 删除不存在的记录返回false而非错误
	deleted, err := repo.DeleteByID(999)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestUserRepository_FindAllAndCount(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	require.NoError(t, repo.Create(&model.User{Username: "a", Password: "x", Nickname: "甲", Role: model.RoleAdmin}))
	require.NoError(t, repo.Create(&model.User{Username: "b", Password: "x", Nickname: "乙", Role: model.RoleUser}))

	users, err := repo.FindAll()
	require.NoError(t, err)
	assert.Len(t, users, 2)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	exists, err := repo.ExistsByID(users[0].ID)
	require.NoError(t, err)
	assert.True(t, exists)
}
