package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	// 与既有数据库中的摘要保持兼容，已知值不可改变
	assert.Equal(t, "e10adc3949ba59abbe56e057f20f883e", HashPassword("123456"))
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", HashPassword(""))

	// 确定性：相同输入始终产生相同输出
	assert.Equal(t, HashPassword("abc123"), HashPassword("abc123"))

	// 始终是32位十六进制
	assert.Len(t, HashPassword("任意密码"), 32)
}

func TestVerifyPassword(t *testing.T) {
	digest := HashPassword("secret")

	assert.True(t, VerifyPassword("secret", digest))
	assert.False(t, VerifyPassword("Secret", digest))
	assert.False(t, VerifyPassword("", digest))
	assert.False(t, VerifyPassword("secret", ""))
}
