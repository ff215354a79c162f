package analyses_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"jobmatch-backend/internal/analyses"
	"jobmatch-backend/internal/jobs"
	"jobmatch-backend/internal/resumes"
	"jobmatch-backend/internal/shared/server/middleware"
	"jobmatch-backend/internal/shared/storage/object/local"
)

const testResumeText = `Jane Doe
jane@example.com | (555) 123-4567

Experience
Senior Software Engineer
Acme Corp
Built Python microservices on AWS, reduced latency by 40%.

Skills
Python, Docker, Kubernetes, PostgreSQL, AWS
`

func newTestStack(t *testing.T) (*gin.Engine, *resumes.Service, *jobs.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	resumeSvc := &resumes.Service{
		Store: local.New(t.TempDir()),
		Repo:  resumes.NewMemoryRepo(),
	}
	jobSvc := &jobs.Service{Repo: jobs.NewMemoryRepo()}
	svc := analyses.NewService(analyses.NewMemoryRepo(), resumeSvc, jobSvc)

	r := gin.New()
	api := r.Group("/api/v1")
	api.Use(middleware.Auth("test"))
	analyses.NewHandler(svc).RegisterRoutes(api)
	return r, resumeSvc, jobSvc
}

func uploadResume(t *testing.T, svc *resumes.Service, userID string) resumes.Resume {
	t.Helper()
	resume, err := svc.Upload(context.Background(), userID, "resume.txt", strings.NewReader(testResumeText))
	if err != nil {
		t.Fatalf("upload resume: %v", err)
	}
	return resume
}

func postAnalysis(t *testing.T, router *gin.Engine, payload any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyses", bytes.NewBuffer(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Guest-Id", "test-guest")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestAnalysesCreateWithCurrentResume(t *testing.T) {
	router, resumeSvc, _ := newTestStack(t)
	uploadResume(t, resumeSvc, "guest:test-guest")

	resp := postAnalysis(t, router, gin.H{
		"jobDescription": "Looking for a senior python engineer with docker, kubernetes and aws experience.",
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var created analyses.AnalysisResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.AnalysisID == "" {
		t.Fatalf("expected analysisId, got empty")
	}
	if created.Status != "completed" {
		t.Errorf("status = %q, want completed", created.Status)
	}
	if created.Score <= 0 || created.Score > 100 {
		t.Errorf("score out of range: %v", created.Score)
	}
	if len(created.Result.Suggestions) == 0 {
		t.Errorf("expected suggestions in result")
	}
}

func TestAnalysesCreateWithoutResume(t *testing.T) {
	router, _, _ := newTestStack(t)

	resp := postAnalysis(t, router, gin.H{
		"jobDescription": "any job description",
	})
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 without a resume, got %d", resp.Code)
	}
}

func TestAnalysesCreateValidation(t *testing.T) {
	router, resumeSvc, _ := newTestStack(t)
	uploadResume(t, resumeSvc, "guest:test-guest")

	resp := postAnalysis(t, router, gin.H{"jobDescription": "   "})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestAnalysesCreateWithJobID(t *testing.T) {
	router, resumeSvc, jobSvc := newTestStack(t)
	uploadResume(t, resumeSvc, "guest:test-guest")

	job, err := jobSvc.Create(context.Background(), "guest:test-guest", jobs.CreateInput{
		Title:        "Platform Engineer",
		Description:  "Looking for a python engineer with docker and aws experience.",
		Requirements: "bachelor degree",
	})
	if err != nil {
		t.Fatalf("create job: %v", err)
	}

	resp := postAnalysis(t, router, gin.H{"jobId": job.ID})
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var created analyses.AnalysisResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.Score <= 0 {
		t.Errorf("score = %v, want > 0", created.Score)
	}

	respMissing := postAnalysis(t, router, gin.H{"jobId": "does-not-exist"})
	if respMissing.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for missing job, got %d", respMissing.Code)
	}
}

func TestAnalysesGetAndList(t *testing.T) {
	router, resumeSvc, _ := newTestStack(t)
	uploadResume(t, resumeSvc, "guest:test-guest")

	resp := postAnalysis(t, router, gin.H{
		"jobDescription": "python engineer with aws experience",
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("create: got %d", resp.Code)
	}
	var created analyses.AnalysisResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	reqGet := httptest.NewRequest(http.MethodGet, "/api/v1/analyses/"+created.AnalysisID, nil)
	reqGet.Header.Set("X-Guest-Id", "test-guest")
	respGet := httptest.NewRecorder()
	router.ServeHTTP(respGet, reqGet)
	if respGet.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respGet.Code)
	}

	// Guests cannot view history.
	reqList := httptest.NewRequest(http.MethodGet, "/api/v1/analyses", nil)
	reqList.Header.Set("X-Guest-Id", "test-guest")
	respList := httptest.NewRecorder()
	router.ServeHTTP(respList, reqList)
	if respList.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 for guest history, got %d", respList.Code)
	}
}
