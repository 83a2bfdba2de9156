package crypto

import (
	"crypto/md5"
	"crypto/subtle"
	"encoding/hex"
)

// HashPassword 对密码做MD5摘要，返回32位十六进制字符串。
// 与历史数据保持一致：无盐、确定性，相同输入始终产生相同输出。
// 注意：MD5不适合生产环境的密码存储，保留该算法只是为了兼容既有数据。
func HashPassword(password string) string {
	sum := md5.Sum([]byte(password))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword 验证密码是否与存储的摘要匹配
func VerifyPassword(password, digest string) bool {
	hashed := HashPassword(password)
	return subtle.ConstantTimeCompare([]byte(hashed), []byte(digest)) == 1
}
