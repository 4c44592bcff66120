package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lightweight-feedback-system/config"
	"lightweight-feedback-system/internal/entities"
	"lightweight-feedback-system/pkg/bearer"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const feedbackJSON = `{
	"id": 7,
	"employee_id": 3,
	"manager_id": 1,
	"strengths": "Clear communicator",
	"improvements": "Write more tests",
	"sentiment": "positive",
	"acknowledged": false,
	"created_at": "2024-03-05T09:15:00.123456",
	"updated_at": "2024-03-06T10:00:00Z",
	"employee": {"id": 3, "username": "alice_emp", "email": "alice@example.com", "role": "employee", "manager_id": 1, "created_at": "2024-01-01T00:00:00"},
	"manager": {"id": 1, "username": "john_manager", "email": "john@example.com", "role": "manager", "created_at": "2024-01-01T00:00:00"}
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{API: config.APIConfig{BaseURL: srv.URL + "/", Timeout: 2 * time.Second}}
	return New(context.Background(), zap.NewNop().Sugar(), cfg)
}

func TestLoginSendsUsernameAndDecodesSession(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.Empty(t, r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "john_manager", body["username"])

		_, _ = w.Write([]byte(`{"access_token":"tok","token_type":"bearer","user":{"id":1,"username":"john_manager","email":"john@example.com","role":"manager","created_at":"2024-01-01T08:00:00"}}`))
	})

	sess, err := client.Login(context.Background(), entities.LoginRequest{Username: "john_manager"})
	require.NoError(t, err)
	require.Equal(t, "tok", sess.AccessToken)
	require.Equal(t, "bearer", sess.TokenType)
	require.Equal(t, entities.RoleManager, sess.User.Role)
	require.Nil(t, sess.User.ManagerID)
	require.Equal(t, time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC), sess.User.CreatedAt)
}

func TestRegisterOmitsManagerWhenNil(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/register", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.NotContains(t, body, "manager_id")
		require.Equal(t, "manager", body["role"])
		_, _ = w.Write([]byte(`{"access_token":"tok","token_type":"bearer","user":{"id":9,"username":"new","email":"n@example.com","role":"manager","created_at":"2024-01-01T00:00:00"}}`))
	})

	sess, err := client.Register(context.Background(), entities.RegisterRequest{Username: "new", Email: "n@example.com", Role: entities.RoleManager})
	require.NoError(t, err)
	require.Equal(t, 9, sess.User.ID)
}

func TestBearerTokenIsForwarded(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		require.Equal(t, "/feedback", r.URL.Path)
		_, _ = w.Write([]byte("[" + feedbackJSON + "]"))
	})

	ctx := bearer.WithToken(context.Background(), "secret")
	list, err := client.ListFeedback(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	fb := list[0]
	require.Equal(t, 7, fb.ID)
	require.Equal(t, entities.SentimentPositive, fb.Sentiment)
	require.Equal(t, time.Date(2024, 3, 5, 9, 15, 0, 123456000, time.UTC), fb.CreatedAt)
	require.Equal(t, time.Date(2024, 3, 6, 10, 0, 0, 0, time.UTC), fb.UpdatedAt)
	require.Equal(t, "alice_emp", fb.Employee.Username)
	require.NotNil(t, fb.Employee.ManagerID)
	require.Equal(t, 1, *fb.Employee.ManagerID)
}

func TestEmployeeFeedbackPath(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/feedback/employee/3", r.URL.Path)
		_, _ = w.Write([]byte(`[]`))
	})

	list, err := client.EmployeeFeedback(context.Background(), 3)
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestUpdateFeedbackSendsOnlySetFields(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/feedback/7", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, map[string]any{"sentiment": "negative"}, body)
		_, _ = w.Write([]byte(feedbackJSON))
	})

	s := entities.SentimentNegative
	fb, err := client.UpdateFeedback(context.Background(), 7, entities.FeedbackUpdate{Sentiment: &s})
	require.NoError(t, err)
	require.Equal(t, 7, fb.ID)
}

func TestAcknowledgeFeedback(t *testing.T) {
	called := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/feedback/7/acknowledge", r.URL.Path)
		_, _ = w.Write([]byte(`{"message":"Feedback acknowledged successfully"}`))
	})

	require.NoError(t, client.AcknowledgeFeedback(context.Background(), 7))
	require.True(t, called)
}

func TestDashboardStats(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/dashboard/stats", r.URL.Path)
		_, _ = w.Write([]byte(`{"total_feedback":5,"positive_feedback":2,"neutral_feedback":2,"negative_feedback":1,"unacknowledged_feedback":3}`))
	})

	stats, err := client.DashboardStats(context.Background())
	require.NoError(t, err)
	require.Equal(t, entities.DashboardStats{
		TotalFeedback:          5,
		PositiveFeedback:       2,
		NeutralFeedback:        2,
		NegativeFeedback:       1,
		UnacknowledgedFeedback: 3,
	}, stats)
	require.Equal(t, 2, stats.Acknowledged())
}

func TestErrorResponsesMapToSentinels(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		sentinel error
		detail   string
	}{
		{
			name:     "unauthorized",
			status:   http.StatusUnauthorized,
			body:     `{"detail":"User 'ghost' not found. Please check your username."}`,
			sentinel: entities.ErrUnauthorized,
			detail:   "User 'ghost' not found. Please check your username.",
		},
		{
			name:     "forbidden",
			status:   http.StatusForbidden,
			body:     `{"detail":"Only managers can view team members"}`,
			sentinel: entities.ErrForbidden,
			detail:   "Only managers can view team members",
		},
		{
			name:     "not_found",
			status:   http.StatusNotFound,
			body:     `{"detail":"Employee not found in your team"}`,
			sentinel: entities.ErrNotFound,
			detail:   "Employee not found in your team",
		},
		{
			name:     "validation_list",
			status:   http.StatusUnprocessableEntity,
			body:     `{"detail":[{"loc":["body","username"],"msg":"field required"},{"msg":"value is not a valid email"}]}`,
			sentinel: entities.ErrInvalidArgument,
			detail:   "field required; value is not a valid email",
		},
		{
			name:     "server_error_plain_text",
			status:   http.StatusInternalServerError,
			body:     `Internal Server Error`,
			sentinel: entities.ErrUpstream,
			detail:   "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.TeamMembers(context.Background())
			require.ErrorIs(t, err, tt.sentinel)

			var apiErr *entities.APIError
			require.ErrorAs(t, err, &apiErr)
			require.Equal(t, tt.status, apiErr.Status)
			require.Equal(t, tt.detail, apiErr.Detail)
		})
	}
}

func TestTransportFailureIsUpstream(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	cfg := &config.Config{API: config.APIConfig{BaseURL: url, Timeout: time.Second}}
	client := New(context.Background(), zap.NewNop().Sugar(), cfg)

	_, err := client.Managers(context.Background())
	require.ErrorIs(t, err, entities.ErrUpstream)
}

func TestMalformedBodyIsUpstream(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"id": "not-a-number"}`))
	})

	_, err := client.CurrentUser(context.Background())
	require.ErrorIs(t, err, entities.ErrUpstream)
}

func TestOnStartToleratesUnreachableAPI(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	cfg := &config.Config{API: config.APIConfig{BaseURL: url, Timeout: time.Second}}
	client := New(context.Background(), zap.NewNop().Sugar(), cfg)

	require.NoError(t, client.OnStart(context.Background()))
	require.NoError(t, client.OnStop(context.Background()))
}

func TestAPITimeLayouts(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Time
	}{
		{raw: `"2024-03-05T09:15:00"`, want: time.Date(2024, 3, 5, 9, 15, 0, 0, time.UTC)},
		{raw: `"2024-03-05T09:15:00.5"`, want: time.Date(2024, 3, 5, 9, 15, 0, 500000000, time.UTC)},
		{raw: `"2024-03-05 09:15:00"`, want: time.Date(2024, 3, 5, 9, 15, 0, 0, time.UTC)},
		{raw: `"2024-03-05T09:15:00+00:00"`, want: time.Date(2024, 3, 5, 9, 15, 0, 0, time.UTC)},
		{raw: `"2024-03-05"`, want: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
		{raw: `null`},
	}
	for _, tt := range tests {
		var got apiTime
		require.NoError(t, json.Unmarshal([]byte(tt.raw), &got), tt.raw)
		require.True(t, tt.want.Equal(got.Time), "%s: got %s", tt.raw, got.Time)
	}

	var bad apiTime
	require.Error(t, json.Unmarshal([]byte(`"yesterday"`), &bad))
}
