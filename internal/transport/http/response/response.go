package response

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"contact-book-api/internal/apperr"
)

// ErrorBody 统一错误响应体
type ErrorBody struct {
	Message   string    `json:"message"`
	Code      int       `json:"code"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

func NewErrorBody(code int, msg string) ErrorBody {
	return ErrorBody{
		Message:   msg,
		Code:      code,
		Status:    http.StatusText(code),
		Timestamp: time.Now(),
	}
}

// Fail 唯一的错误出口：业务错误按自身 code 出，
// 其余一律 500 且不外泄内部细节
func Fail(c *gin.Context, err error) {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		if ae.Code == http.StatusInternalServerError && ae.Err != nil {
			_ = c.Error(ae.Err) // 进访问日志
		}
		msg := ae.Msg
		if ae.Code == http.StatusInternalServerError {
			msg = "internal error"
		}
		c.AbortWithStatusJSON(ae.Code, NewErrorBody(ae.Code, msg))
		return
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, NewErrorBody(http.StatusInternalServerError, "internal error"))
}

// FailCode 中间件等没有 apperr 的场景用
func FailCode(c *gin.Context, code int, msg string) {
	c.AbortWithStatusJSON(code, NewErrorBody(code, msg))
}
