package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeHTTPStatus(t *testing.T) {
	cases := []struct {
		code Code
		want int
	}{
		{CodeInvalidArgument, http.StatusBadRequest},
		{CodeAlreadyExists, http.StatusBadRequest},
		{CodeFailedPrecondition, http.StatusBadRequest},
		{CodeNotFound, http.StatusNotFound},
		{CodePermissionDenied, http.StatusForbidden},
		{CodeUnauthenticated, http.StatusUnauthorized},
		{CodeUnavailable, http.StatusServiceUnavailable},
		{CodeInternal, http.StatusInternalServerError},
		{CodeUnknown, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.code.HTTPStatus(), "mã %s", tc.code)
	}
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, CodeNotFound, CodeOf(NotFound("không thấy")))
	assert.Equal(t, CodeAlreadyExists, CodeOf(AlreadyExists("đã tồn tại")))
	assert.Equal(t, CodeInternal, CodeOf(stderrors.New("lỗi thường")))
	assert.Equal(t, CodeInternal, CodeOf(nil))
}

func TestCodeOfWrappedError(t *testing.T) {
	inner := Forbidden("không có quyền")
	wrapped := fmt.Errorf("gọi service thất bại: %w", inner)
	assert.Equal(t, CodePermissionDenied, CodeOf(wrapped))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("kết nối bị từ chối")
	err := Unavailable("không kết nối được cơ sở dữ liệu", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "không kết nối được cơ sở dữ liệu")
	assert.Contains(t, err.Error(), "kết nối bị từ chối")
}
