package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crm-backend/internal/model"
	"crm-backend/internal/pkg/crypto"
	"crm-backend/internal/repository"
	pkgErrors "crm-backend/pkg/responses"
)

func newUserService(t *testing.T) (UserService, repository.UserRepository) {
	t.Helper()
	repo := repository.NewUserRepository(newTestDB(t))
	return NewUserService(repo), repo
}

func TestUserService_Login(t *testing.T) {
	svc, repo := newUserService(t)

	require.NoError(t, repo.Create(&model.User{
		Username: "zhangsan",
		Password: crypto.HashPassword("secret"),
		Nickname: "张三",
		Role:     model.RoleUser,
	}))

	// 正确的用户名密码
	user, err := svc.Login("zhangsan", "secret")
	require.NoError(t, err)
	assert.Equal(t, "zhangsan", user.Username)

	// 密码错误与用户不存在返回同一个错误，不泄露账号是否存在
	_, err = svc.Login("zhangsan", "wrong")
	assert.ErrorIs(t, err, pkgErrors.ErrInvalidCredentials)

	_, err = svc.Login("nobody", "secret")
	assert.ErrorIs(t, err, pkgErrors.ErrInvalidCredentials)
}

func TestUserService_CreateDefaultAdmin(t *testing.T) {
	svc, repo := newUserService(t)

	// 首次调用创建admin账号
	require.NoError(t, svc.CreateDefaultAdmin())

	admin, err := repo.FindByUsername(DefaultAdminUsername)
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, admin.Role)
	assert.Equal(t, crypto.HashPassword(DefaultAdminPassword), admin.Password)

	// 管理员改过密码后，再次调用会重置为默认值
	admin.Password = crypto.HashPassword("changed")
	require.NoError(t, repo.Update(admin))

	require.NoError(t, svc.CreateDefaultAdmin())

	admin, err = repo.FindByUsername(DefaultAdminUsername)
	require.NoError(t, err)
	assert.Equal(t, crypto.HashPassword(DefaultAdminPassword), admin.Password)

	// 不会重复创建账号
	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestUserService_DeleteUser(t *testing.T) {
	svc, repo := newUserService(t)

	user := &model.User{Username: "a", Password: "x", Nickname: "甲", Role: model.RoleUser}
	require.NoError(t, repo.Create(user))

	deleted, err := svc.DeleteUser(user.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	// 删除不存在的用户返回false
	deleted, err = svc.DeleteUser(user.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestUserService_ChangePassword(t *testing.T) {
	svc, repo := newUserService(t)

	user := &model.User{Username: "a", Password: crypto.HashPassword("old"), Nickname: "甲", Role: model.RoleUser}
	require.NoError(t, repo.Create(user))

	ok, err := svc.ChangePassword(user.ID, "new")
	require.NoError(t, err)
	assert.True(t, ok)

	// 新密码生效，旧密码失效
	_, err = svc.Login("a", "new")
	assert.NoError(t, err)
	_, err = svc.Login("a", "old")
	assert.ErrorIs(t, err, pkgErrors.ErrInvalidCredentials)

	// 用户不存在返回false
	ok, err = svc.ChangePassword(999, "new")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUserService_GetAllUsers(t *testing.T) {
	svc, repo := newUserService(t)

	require.NoError(t, repo.Create(&model.User{Username: "a", Password: "x", Nickname: "甲", Role: model.RoleAdmin}))
	require.NoError(t, repo.Create(&model.User{Username: "b", Password: "x", Nickname: "乙", Role: model.RoleUser}))

	users, err := svc.GetAllUsers()
	require.NoError(t, err)
	require.Len(t, users, 2)
	// 响应中只有摘要字段，时间已格式化
	assert.NotEmpty(t, users[0].CreatedAt)
}
