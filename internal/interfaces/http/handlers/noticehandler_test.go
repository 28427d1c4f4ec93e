package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/application/notice/usecases"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                   {}
func (noopLogger) Info(msg string, args ...any)                    {}
func (noopLogger) Warn(msg string, args ...any)                    {}
func (noopLogger) Error(msg string, args ...any)                   {}
func (noopLogger) Fatal(msg string, args ...any)                   {}
func (n noopLogger) With(args ...any) logger.Interface             { return n }
func (n noopLogger) Named(name string) logger.Interface            { return n }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Fatalw(msg string, keysAndValues ...interface{}) {}

type stubCreateNotice struct {
	got    usecases.CreateNoticeCommand
	result *usecases.CreateNoticeResult
	err    error
}

func (s *stubCreateNotice) Execute(ctx context.Context, cmd usecases.CreateNoticeCommand) (*usecases.CreateNoticeResult, error) {
	s.got = cmd
	return s.result, s.err
}

type stubGetNotice struct {
	result *usecases.NoticeDetail
	err    error
}

func (s *stubGetNotice) Execute(ctx context.Context, query usecases.GetNoticeQuery) (*usecases.NoticeDetail, error) {
	return s.result, s.err
}

func TestNoticeHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	stub := &stubCreateNotice{result: &usecases.CreateNoticeResult{NoticeID: 5, Title: "점검 안내"}}
	handler := NewNoticeHandler(stub, nil, nil, nil, nil, noopLogger{})

	router := gin.New()
	router.POST("/api/notices", func(c *gin.Context) {
		// the auth middleware stakes the author in real traffic
		c.Set(constants.ContextKeyUserID, uint(2))
		handler.Create(c)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/notices",
		strings.NewReader(`{"title":"점검 안내","content":"## 일정"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(2), stub.got.AuthorID)
	assert.Equal(t, "점검 안내", stub.got.Title)
}

func TestNoticeHandler_Create_MissingBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := NewNoticeHandler(&stubCreateNotice{}, nil, nil, nil, nil, noopLogger{})

	router := gin.New()
	router.POST("/api/notices", func(c *gin.Context) {
		c.Set(constants.ContextKeyUserID, uint(2))
		handler.Create(c)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/notices", strings.NewReader(`{"title":"only"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNoticeHandler_Get_NotFoundMapsTo404(t *testing.T) {
	gin.SetMode(gin.TestMode)

	stub := &stubGetNotice{err: errors.NewNotFoundError("notice not found")}
	handler := NewNoticeHandler(nil, nil, nil, stub, nil, noopLogger{})

	router := gin.New()
	router.GET("/api/notices/:id", handler.Get)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/notices/99", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNoticeHandler_Get_RenderedBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	stub := &stubGetNotice{result: &usecases.NoticeDetail{
		ID:          5,
		Title:       "점검 안내",
		ContentHTML: "<p><strong>중요</strong></p>",
		ContentRaw:  "**중요**",
	}}
	handler := NewNoticeHandler(nil, nil, nil, stub, nil, noopLogger{})

	router := gin.New()
	router.GET("/api/notices/:id", handler.Get)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/notices/5", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "content_html")
	assert.Contains(t, w.Body.String(), "strong")
}
