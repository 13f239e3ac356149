// Package router 提供路由注册单元测试
package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/wellmind/campus-care/internal/handler"
	"github.com/wellmind/campus-care/internal/model"
	"github.com/wellmind/campus-care/internal/repository"
	"github.com/wellmind/campus-care/internal/service"
	"github.com/wellmind/campus-care/internal/service/template"
)

// mockTemplateRepository Mock Template Repository
type mockTemplateRepository struct {
	templates []*model.ResponseTemplate
}

func (m *mockTemplateRepository) Create(t *model.ResponseTemplate) error {
	m.templates = append(m.templates, t)
	return nil
}

func (m *mockTemplateRepository) FindActiveByEmotion(emotion string, limit int) ([]*model.ResponseTemplate, error) {
	return nil, nil
}

func (m *mockTemplateRepository) List() ([]*model.ResponseTemplate, error) {
	return m.templates, nil
}

func (m *mockTemplateRepository) Count() (int64, error) {
	return int64(len(m.templates)), nil
}

var _ repository.TemplateRepository = (*mockTemplateRepository)(nil)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repos := &repository.Repositories{Template: &mockTemplateRepository{}}
	svc := &service.Services{Template: template.NewService(repos)}

	return SetupRouter(handler.NewHandlers(svc), svc)
}

func TestTemplateRouteAuth(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{
			// 列表接口无需登录
			name:       "list is public",
			method:     http.MethodGet,
			path:       "/api/v1/templates",
			wantStatus: http.StatusOK,
		},
		{
			// 种子接口幂等且无需登录
			name:       "seed is public",
			method:     http.MethodPost,
			path:       "/api/v1/templates/seed",
			wantStatus: http.StatusOK,
		},
		{
			name:       "create requires auth",
			method:     http.MethodPost,
			path:       "/api/v1/templates",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "search requires auth",
			method:     http.MethodGet,
			path:       "/api/v1/templates/search?emotion=sad",
			wantStatus: http.StatusUnauthorized,
		},
	}

	r := newTestRouter(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("%s %s status = %d, want %d", tt.method, tt.path, w.Code, tt.wantStatus)
			}
		})
	}
}

func TestHealthRoute(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("GET /health status = %d, want %d", w.Code, http.StatusOK)
	}
}
