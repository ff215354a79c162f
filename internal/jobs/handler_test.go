package jobs_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"jobmatch-backend/internal/jobs"
	"jobmatch-backend/internal/shared/server/middleware"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := &jobs.Service{Repo: jobs.NewMemoryRepo()}

	r := gin.New()
	api := r.Group("/api/v1")
	api.Use(middleware.Auth("test"))
	jobs.NewHandler(svc).RegisterRoutes(api)
	return r
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewBuffer(raw)
	} else {
		body = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Guest-Id", "test-guest")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestJobsCreateAndGet(t *testing.T) {
	router := newTestRouter()

	resp := doJSON(t, router, http.MethodPost, "/api/v1/jobs", gin.H{
		"title":           "Backend Engineer",
		"company":         "Acme Corp",
		"location":        "Remote",
		"description":     "Build Go services",
		"requirements":    "bachelor degree",
		"requiredSkills":  []string{"go", "postgres"},
		"preferredSkills": []string{"kafka"},
		"keywords":        []string{"golang"},
		"experienceLevel": "Senior",
		"salaryMin":       120000,
		"salaryMax":       160000,
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var created jobs.JobResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if created.JobID == "" {
		t.Fatalf("expected jobId, got empty")
	}
	if created.ExperienceLevel != "senior" {
		t.Errorf("experience level not normalized: %q", created.ExperienceLevel)
	}
	if !created.IsActive {
		t.Errorf("expected new job to be active by default")
	}
	if created.Company != "Acme Corp" || created.SalaryMax != 160000 {
		t.Errorf("unexpected job fields: %+v", created)
	}

	respGet := doJSON(t, router, http.MethodGet, "/api/v1/jobs/"+created.JobID, nil)
	if respGet.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respGet.Code)
	}
	var got jobs.JobResponse
	if err := json.NewDecoder(respGet.Body).Decode(&got); err != nil {
		t.Fatalf("decode get response: %v", err)
	}
	if got.Title != "Backend Engineer" || len(got.RequiredSkills) != 2 {
		t.Errorf("unexpected job: %+v", got)
	}
}

func TestJobsCreateValidation(t *testing.T) {
	router := newTestRouter()

	resp := doJSON(t, router, http.MethodPost, "/api/v1/jobs", gin.H{
		"title": "Missing description",
	})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestJobsListAndDelete(t *testing.T) {
	router := newTestRouter()

	for _, title := range []string{"Job A", "Job B"} {
		resp := doJSON(t, router, http.MethodPost, "/api/v1/jobs", gin.H{
			"title":       title,
			"description": "desc",
		})
		if resp.Code != http.StatusCreated {
			t.Fatalf("create %q: got %d", title, resp.Code)
		}
	}

	respList := doJSON(t, router, http.MethodGet, "/api/v1/jobs", nil)
	if respList.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respList.Code)
	}
	var list []jobs.JobResponse
	if err := json.NewDecoder(respList.Body).Decode(&list); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(list))
	}

	respDel := doJSON(t, router, http.MethodDelete, "/api/v1/jobs/"+list[0].JobID, nil)
	if respDel.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", respDel.Code)
	}

	respMissing := doJSON(t, router, http.MethodGet, "/api/v1/jobs/"+list[0].JobID, nil)
	if respMissing.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 after delete, got %d", respMissing.Code)
	}
}

func TestJobsGetNotFound(t *testing.T) {
	router := newTestRouter()

	resp := doJSON(t, router, http.MethodGet, "/api/v1/jobs/does-not-exist", nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}
