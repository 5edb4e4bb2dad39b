package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"courselens/internal/rag"
	"courselens/internal/storage"
	storage_mocks "courselens/internal/storage/mocks"
	"courselens/internal/vectorstore"

	"go.uber.org/mock/gomock"
)

// stubIndexStats serves fixed collection info.
type stubIndexStats struct{}

func (stubIndexStats) GetCollectionInfo(ctx context.Context, collection string) (*vectorstore.CollectionInfo, error) {
	return &vectorstore.CollectionInfo{VectorSize: 384, PointsCount: 10, Status: "Green"}, nil
}

// stubEngine answers every question with a fixed string.
type stubEngine struct{}

func (stubEngine) Answer(ctx context.Context, question string, filter map[string]any) rag.Answer {
	return rag.Answer{Text: "stub answer"}
}

func (stubEngine) AnalyzeQuality(ctx context.Context) (rag.ReliabilityAssessment, error) {
	return rag.ReliabilityAssessment{Score: 100}, nil
}

func (stubEngine) TopicCounts() map[string]int { return nil }

func (stubEngine) RelevantHistory(question string) []rag.Interaction { return nil }

func TestRouterRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := storage_mocks.NewMockStudentStore(ctrl)
	mockStore.EXPECT().Count(gomock.Any()).Return(10, nil).AnyTimes()
	mockStore.EXPECT().ListAll(gomock.Any()).Return([]storage.Student{{StudentID: "S001"}}, nil).AnyTimes()
	mockStore.EXPECT().GetByID(gomock.Any(), "S001").Return(&storage.Student{StudentID: "S001"}, nil).AnyTimes()

	router := NewRouter(&Deps{
		Engine:      stubEngine{},
		StudentRepo: mockStore,
		Index:       stubIndexStats{},
		Collection:  "students",
	})

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{
			name:       "POST ask",
			method:     http.MethodPost,
			path:       "/api/ask",
			body:       `{"question":"How did students do?"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "GET quality",
			method:     http.MethodGet,
			path:       "/api/quality",
			wantStatus: http.StatusOK,
		},
		{
			name:       "GET topics",
			method:     http.MethodGet,
			path:       "/api/topics",
			wantStatus: http.StatusOK,
		},
		{
			name:       "GET dataset",
			method:     http.MethodGet,
			path:       "/api/dataset",
			wantStatus: http.StatusOK,
		},
		{
			name:       "GET students",
			method:     http.MethodGet,
			path:       "/api/students",
			wantStatus: http.StatusOK,
		},
		{
			name:       "GET student by ID",
			method:     http.MethodGet,
			path:       "/api/students/S001",
			wantStatus: http.StatusOK,
		},
		{
			name:       "GET health",
			method:     http.MethodGet,
			path:       "/api/health",
			wantStatus: http.StatusOK,
		},
		{
			name:       "GET ask not allowed",
			method:     http.MethodGet,
			path:       "/api/ask",
			wantStatus: http.StatusMethodNotAllowed,
		},
		{
			name:       "unknown route",
			method:     http.MethodGet,
			path:       "/api/unknown",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
				req.Header.Set("Content-Type", "application/json")
			} else {
				req = httptest.NewRequest(tt.method, tt.path, nil)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("%s %s: expected status %d, got %d", tt.method, tt.path, tt.wantStatus, w.Code)
			}
		})
	}
}
