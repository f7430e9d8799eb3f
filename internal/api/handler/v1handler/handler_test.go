package v1handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"phishguard/internal/api/handler/v1handler"
	"phishguard/internal/api/specs/v1specs"
	"phishguard/internal/assessor"
	mockassessor "phishguard/internal/assessor/mock"
	"phishguard/pkg/controller"
	"phishguard/pkg/domain"
	"phishguard/pkg/logger"
	"phishguard/pkg/serrors"
	"strings"
	"testing"
	"time"

	"github.com/ogen-go/ogen/ogenerrors"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	_ = logger.Setup(logger.DevelopmentEnvironment, "error")
	m.Run()
}

// newHandler mounts the generated v1 server the way the api package does.
func newHandler(t *testing.T, a assessor.Assessor, sh *v1handler.SecHandler) http.Handler {
	t.Helper()

	if sh == nil {
		var err error
		sh, err = v1handler.NewSecHandler(nil)
		require.NoError(t, err)
	}

	h := v1handler.New(v1handler.Deps{Assessor: a}, v1handler.Options{RequireAuth: sh.Enabled()})
	srv, err := v1specs.NewServer(h, sh,
		v1specs.WithPathPrefix("/v1"),
		v1specs.WithErrorHandler(h.HandleError),
		v1specs.WithNotFound(v1handler.NotFound),
	)
	require.NoError(t, err)
	v1 := controller.WithBodyLimit(1024)(srv)

	mux := http.NewServeMux()
	mux.Handle("/v1/", v1)
	mux.Handle("POST /predict", v1handler.Alias("/v1/assess", v1))
	mux.Handle("GET /health", v1handler.Alias("/v1/health", v1))
	mux.HandleFunc("/", v1handler.NotFound)

	return mux
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func sampleAssessment(url string) *domain.RiskAssessment {
	return &domain.RiskAssessment{
		Result:                "High Phishing Risk",
		RiskLevel:             domain.RiskLevelHigh,
		Confidence:            99.5,
		Prediction:            1,
		ProbabilityPhishing:   99.5,
		ProbabilityLegitimate: 0.5,
		TopRiskFactors: []domain.AttributionEntry{
			{Feature: "has_ip", Label: "IP Address", Value: 1, Contribution: 3.4, Impact: domain.ImpactIncreases},
		},
		AllFeatures: []domain.Feature{{Name: "url_length", Value: 38}, {Name: "has_ip", Value: 1}},
		URL:         url,
		Reasons:     []string{"Domain age < 1 month"},
		Anatomy:     domain.Anatomy{IPInDomain: true},
		Advice:      "advice",
		ScannedAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestAssess(t *testing.T) {
	for _, path := range []string{"/v1/assess", "/predict"} {
		t.Run(path, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			a := mockassessor.NewMockAssessor(ctrl)
			a.EXPECT().Assess(gomock.Any(), "http://192.168.1.1/login").
				Return(sampleAssessment("http://192.168.1.1/login"), nil)

			rec := do(t, newHandler(t, a, nil), http.MethodPost, path,
				`{"url":"  http://192.168.1.1/login \n","real_time":true,"extra":[1,2]}`)

			require.Equal(t, http.StatusOK, rec.Code)
			require.Contains(t, rec.Header().Get("Content-Type"), "application/json")
			body := rec.Body.String()
			require.Contains(t, body, `"risk_level":"high"`)
			require.Contains(t, body, `"url_analyzed":"http://192.168.1.1/login"`)
			require.Contains(t, body, `"all_features":{"url_length":38,"has_ip":1}`)
			require.Contains(t, body, `"phishing_anatomy":{"ssl":"Missing","ip_in_domain":true,"shortened_url":false}`)
		})
	}
}

func TestAssessErrors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "no url",
			body:       `{"url":"   "}`,
			err:        serrors.With(serrors.ErrBadRequest, assessor.MsgNoURL),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"No URL provided","message":"Please provide a URL"}`,
		},
		{
			name:       "model unavailable",
			body:       `{"url":"https://example.com"}`,
			err:        serrors.With(serrors.ErrUnavailable, "model artifacts are not loaded"),
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"error":"Model not loaded properly","message":"Models not loaded"}`,
		},
		{
			name:       "prediction failed",
			body:       `{"url":"https://example.com"}`,
			err:        serrors.Wrap(serrors.ErrInternal, errors.New("boom"), assessor.MsgPredictionFailed),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Prediction failed","message":"boom"}`,
		},
		{
			name:       "plain error",
			body:       `{"url":"https://example.com"}`,
			err:        errors.New("kaput"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Prediction failed","message":"kaput"}`,
		},
		{
			name:       "deadline",
			body:       `{"url":"https://example.com"}`,
			err:        context.DeadlineExceeded,
			wantStatus: http.StatusGatewayTimeout,
			wantBody:   `{"error":"Request timed out","message":"assessment timed out"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			a := mockassessor.NewMockAssessor(ctrl)
			a.EXPECT().Assess(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			rec := do(t, newHandler(t, a, nil), http.MethodPost, "/predict", tt.body)
			require.Equal(t, tt.wantStatus, rec.Code)
			require.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestAssessRejectsMalformedBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mockassessor.NewMockAssessor(ctrl)

	for name, body := range map[string]string{
		"not json":   `{"url":`,
		"not object": `["https://example.com"]`,
		"url number": `{"url":42}`,
		"url null":   `{"url":null}`,
		"trailing":   `{"url":"https://example.com"} {}`,
		"too large":  `{"url":"` + strings.Repeat("a", 2048) + `"}`,
	} {
		t.Run(name, func(t *testing.T) {
			rec := do(t, newHandler(t, a, nil), http.MethodPost, "/v1/assess", body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Contains(t, rec.Body.String(), `"error":"Invalid request"`)
		})
	}
}

func TestAssessEmptyBodyIsMissingURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mockassessor.NewMockAssessor(ctrl)

	// rejected before the assessor runs
	rec := do(t, newHandler(t, a, nil), http.MethodPost, "/predict", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"error":"No URL provided","message":"Please provide a URL"}`, rec.Body.String())
}

func TestHealth(t *testing.T) {
	ctrl := gomock.NewController(t)

	ready := mockassessor.NewMockAssessor(ctrl)
	ready.EXPECT().Ready().Return(true)
	rec := do(t, newHandler(t, ready, nil), http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t,
		`{"status":"healthy","model_loaded":true,"message":"AI Phishing Detection System is ready"}`,
		rec.Body.String())

	notReady := mockassessor.NewMockAssessor(ctrl)
	notReady.EXPECT().Ready().Return(false)
	rec = do(t, newHandler(t, notReady, nil), http.MethodGet, "/health", "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"status":"unhealthy","model_loaded":false,"message":"Models not loaded"}`, rec.Body.String())
}

func TestNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	rec := do(t, newHandler(t, mockassessor.NewMockAssessor(ctrl), nil), http.MethodGet, "/nope", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"error":"Endpoint not found"}`, rec.Body.String())
}

func TestNotFoundUnderPrefix(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := newHandler(t, mockassessor.NewMockAssessor(ctrl), nil)

	rec := do(t, h, http.MethodGet, "/v1/nope", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"error":"Endpoint not found"}`, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/v1/assess", "")
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	require.Equal(t, "POST", rec.Header().Get("Allow"))
}

func TestNewError(t *testing.T) {
	h := v1handler.New(v1handler.Deps{}, v1handler.Options{})

	res := h.NewError(context.Background(),
		serrors.Wrap(serrors.ErrUnauthorized, errors.New("bad token"), "invalid token"))
	require.Equal(t, http.StatusUnauthorized, res.StatusCode)
	require.Equal(t, "Unauthorized", res.Response.Error)
	require.Equal(t, "invalid token", res.Response.Message.Value)

	// security failures without a kind are unauthorized
	res = h.NewError(context.Background(), &ogenerrors.SecurityError{
		Err: ogenerrors.ErrSecurityRequirementIsNotSatisfied,
	})
	require.Equal(t, http.StatusUnauthorized, res.StatusCode)
	require.Equal(t, "missing bearer token", res.Response.Message.Value)

	res = h.NewError(context.Background(), serrors.With(serrors.ErrTimeout, ""))
	require.Equal(t, http.StatusGatewayTimeout, res.StatusCode)
	require.Equal(t, "Request timed out", res.Response.Error)
}

func TestAssessURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mockassessor.NewMockAssessor(ctrl)
	in := sampleAssessment("https://a.b")
	in.Reasons = []string{"", "Domain age < 1 month"}
	in.Anatomy.SSL = true
	a.EXPECT().Assess(gomock.Any(), "https://a.b").Return(in, nil)

	h := v1handler.New(v1handler.Deps{Assessor: a}, v1handler.Options{})
	res, err := h.AssessURL(context.Background(), &v1specs.AssessRequest{
		URL:      v1specs.NewOptString(" https://a.b "),
		RealTime: v1specs.NewOptBool(true),
	})
	require.NoError(t, err)
	require.Equal(t, "https://a.b", res.URLAnalyzed)
	require.Equal(t, []string{"Domain age < 1 month"}, res.ReportReasons)
	require.Equal(t, v1specs.AnatomySslPresent, res.PhishingAnatomy.Ssl)
	require.Equal(t, "IP Address", res.TopRiskFactors[0].Feature)
	require.Equal(t, v1specs.RiskFactorImpactIncreasesRisk, res.TopRiskFactors[0].Impact)
	require.JSONEq(t, `{"url_length":38,"has_ip":1}`, string(res.AllFeatures))
}

func TestAssessURL_RequireAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mockassessor.NewMockAssessor(ctrl)

	h := v1handler.New(v1handler.Deps{Assessor: a}, v1handler.Options{RequireAuth: true})
	_, err := h.AssessURL(context.Background(), &v1specs.AssessRequest{URL: v1specs.NewOptString("https://a.b")})
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestHealthHandler(t *testing.T) {
	h := v1handler.New(v1handler.Deps{}, v1handler.Options{})

	res, err := h.Health(context.Background())
	require.NoError(t, err)
	require.IsType(t, &v1specs.HealthInternalServerError{}, res)
}
