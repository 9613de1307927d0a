package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wellforge/masterclass-backend/internal/logger"
	"github.com/wellforge/masterclass-backend/internal/requestdata"
	"github.com/wellforge/masterclass-backend/internal/services"
	"github.com/wellforge/masterclass-backend/internal/types"
)

type fakePodService struct {
	overview    *services.PodOverview
	overviewErr error
	posted      *types.PodMessage
	postErr     error

	gotContent string
	gotCursor  *uuid.UUID
	gotLimit   int
}

func (f *fakePodService) GetOrCreatePod(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.Pod, error) {
	return nil, errors.New("not used in handler tests")
}

func (f *fakePodService) Overview(ctx context.Context, userID uuid.UUID, cursor *uuid.UUID, limit int) (*services.PodOverview, error) {
	f.gotCursor = cursor
	f.gotLimit = limit
	return f.overview, f.overviewErr
}

func (f *fakePodService) PostMessage(ctx context.Context, userID uuid.UUID, content string) (*types.PodMessage, error) {
	f.gotContent = content
	return f.posted, f.postErr
}

type fakeLimiter struct {
	allowed bool
	err     error
	calls   int
}

func (f *fakeLimiter) Allow(ctx context.Context, key string) (bool, error) {
	f.calls++
	return f.allowed, f.err
}

func newPodTestHandler(t *testing.T, svc services.PodService, limiter services.RateLimiter) *PodHandler {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	return NewPodHandler(log, svc, limiter)
}

func doRequest(h gin.HandlerFunc, method, target, body string, userID *uuid.UUID) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if userID != nil {
		req = req.WithContext(requestdata.WithRequestData(req.Context(), &requestdata.RequestData{UserID: *userID}))
	}
	c.Request = req
	h(c)
	return w
}

func TestGetPodRequiresSession(t *testing.T) {
	h := newPodTestHandler(t, &fakePodService{}, nil)
	w := doRequest(h.GetPod, http.MethodGet, "/api/masterclass-pod", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d, want 401", w.Code)
	}
}

func TestGetPodRejectsBadCursor(t *testing.T) {
	userID := uuid.New()
	h := newPodTestHandler(t, &fakePodService{}, nil)
	w := doRequest(h.GetPod, http.MethodGet, "/api/masterclass-pod?cursor=not-a-uuid", "", &userID)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400", w.Code)
	}
}

func TestGetPodPassesCursorAndLimit(t *testing.T) {
	userID := uuid.New()
	cursor := uuid.New()
	svc := &fakePodService{overview: &services.PodOverview{HasPod: true, Messages: []*types.PodMessage{}}}
	h := newPodTestHandler(t, svc, nil)

	w := doRequest(h.GetPod, http.MethodGet, "/api/masterclass-pod?cursor="+cursor.String()+"&limit=10", "", &userID)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want 200", w.Code)
	}
	if svc.gotCursor == nil || *svc.gotCursor != cursor || svc.gotLimit != 10 {
		t.Fatalf("cursor/limit not passed through: cursor=%v limit=%d", svc.gotCursor, svc.gotLimit)
	}

	var payload map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if payload["hasPod"] != true {
		t.Fatalf("payload missing hasPod: %v", payload)
	}
}

func TestGetPodServiceFailure(t *testing.T) {
	userID := uuid.New()
	h := newPodTestHandler(t, &fakePodService{overviewErr: errors.New("db down")}, nil)
	w := doRequest(h.GetPod, http.MethodGet, "/api/masterclass-pod", "", &userID)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d, want 500", w.Code)
	}
	if strings.Contains(w.Body.String(), "db down") {
		t.Fatalf("internal error detail leaked to the client")
	}
}

func TestPostMessageRequiresSession(t *testing.T) {
	h := newPodTestHandler(t, &fakePodService{}, nil)
	w := doRequest(h.PostMessage, http.MethodPost, "/api/masterclass-pod", `{"content":"hi"}`, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d, want 401", w.Code)
	}
}

func TestPostMessageEmptyContent(t *testing.T) {
	userID := uuid.New()
	h := newPodTestHandler(t, &fakePodService{postErr: services.ErrEmptyContent}, nil)
	w := doRequest(h.PostMessage, http.MethodPost, "/api/masterclass-pod", `{"content":"   "}`, &userID)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400", w.Code)
	}
}

func TestPostMessageNoPod(t *testing.T) {
	userID := uuid.New()
	h := newPodTestHandler(t, &fakePodService{postErr: services.ErrPodNotFound}, nil)
	w := doRequest(h.PostMessage, http.MethodPost, "/api/masterclass-pod", `{"content":"hi"}`, &userID)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d, want 404", w.Code)
	}
}

func TestPostMessageRateLimited(t *testing.T) {
	userID := uuid.New()
	limiter := &fakeLimiter{allowed: false}
	svc := &fakePodService{}
	h := newPodTestHandler(t, svc, limiter)

	w := doRequest(h.PostMessage, http.MethodPost, "/api/masterclass-pod", `{"content":"hi"}`, &userID)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("status=%d, want 429", w.Code)
	}
	if svc.gotContent != "" {
		t.Fatalf("rate limited request must not reach the service")
	}
}

func TestPostMessageLimiterFailsOpen(t *testing.T) {
	userID := uuid.New()
	limiter := &fakeLimiter{err: errors.New("redis down")}
	svc := &fakePodService{posted: &types.PodMessage{ID: uuid.New(), Content: "hi"}}
	h := newPodTestHandler(t, svc, limiter)

	w := doRequest(h.PostMessage, http.MethodPost, "/api/masterclass-pod", `{"content":"hi"}`, &userID)
	if w.Code != http.StatusOK {
		t.Fatalf("limiter failure should fail open, status=%d", w.Code)
	}
}

func TestPostMessageSuccessShape(t *testing.T) {
	userID := uuid.New()
	posted := &types.PodMessage{ID: uuid.New(), Content: "Hi!"}
	svc := &fakePodService{posted: posted}
	h := newPodTestHandler(t, svc, &fakeLimiter{allowed: true})

	w := doRequest(h.PostMessage, http.MethodPost, "/api/masterclass-pod", `{"content":"Hi!"}`, &userID)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want 200", w.Code)
	}

	var payload struct {
		Success bool `json:"success"`
		Message struct {
			ID      string `json:"id"`
			Content string `json:"content"`
		} `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if !payload.Success || payload.Message.ID != posted.ID.String() || payload.Message.Content != "Hi!" {
		t.Fatalf("unexpected payload: %s", w.Body.String())
	}
	if svc.gotContent != "Hi!" {
		t.Fatalf("content not passed to service: %q", svc.gotContent)
	}
}
