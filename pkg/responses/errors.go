package responses

import "fmt"

// 错误码（与HTTP状态码一致）
const (
	CodeSuccess       = 200
	CodeBadRequest    = 400
	CodeUnauthorized  = 401
	CodeForbidden     = 403
	CodeNotFound      = 404
	CodeInternalError = 500
)

// AppError 应用错误
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// New 创建新错误
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装错误
func Wrap(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// 预定义错误
var (
	ErrBadRequest    = New(CodeBadRequest, "请求参数错误")
	ErrUnauthorized  = New(CodeUnauthorized, "请先登录")
	ErrForbidden     = New(CodeForbidden, "权限不足")
	ErrNotFound      = New(CodeNotFound, "资源不存在")
	ErrInternalError = New(CodeInternalError, "服务器错误")
	ErrDatabaseError = New(CodeInternalError, "数据库错误")

	// 具体业务错误
	ErrInvalidCredentials = New(CodeUnauthorized, "用户名或密码错误")
	ErrUserNotFound       = New(CodeNotFound, "用户不存在")
	ErrUsernameExists     = New(CodeBadRequest, "用户名已存在")
	ErrCustomerNotFound   = New(CodeNotFound, "客户不存在")
	ErrFollowupNotFound   = New(CodeNotFound, "跟进记录不存在")
	ErrRecordNotFound     = New(CodeNotFound, "记录不存在")
	ErrDeleteSelf         = New(CodeBadRequest, "不能删除自己")
)
