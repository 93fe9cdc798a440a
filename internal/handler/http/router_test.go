package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/cardmessage"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/summary"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/pkg/i18n"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const handlerTestSecret = "test-secret-key-for-jwt"

func TestMain(m *testing.M) {
	if err := i18n.Init("en"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

type fakeAuthService struct {
	auth.AuthService
	loginResp auth.LoginResponse
	loginErr  error
}

func (f *fakeAuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	return f.loginResp, f.loginErr
}

type fakeProjectService struct {
	project.ProjectService
	created   bool
	deleteErr error
}

func (f *fakeProjectService) List(ctx context.Context) ([]project.Project, error) {
	return []project.Project{{ID: 1, Name: "Alpha", Color: "#112233"}}, nil
}

func (f *fakeProjectService) Create(ctx context.Context, req project.CreateProjectRequest) (project.Project, error) {
	f.created = true
	return project.Project{ID: 2, Name: req.Name, Color: req.Color}, nil
}

func (f *fakeProjectService) Delete(ctx context.Context, id int64) error {
	return f.deleteErr
}

type fakeAttendanceService struct {
	attendance.AttendanceService
	reportDay time.Time
	actor     user.CurrentUser
}

func (f *fakeAttendanceService) Report(ctx context.Context, day time.Time) (attendance.ReportResponse, error) {
	f.reportDay = day
	return attendance.ReportResponse{Date: day.Format("2006.01.02"), Text: "2024.05.01", Total: 0}, nil
}

func (f *fakeAttendanceService) Create(ctx context.Context, actor user.CurrentUser, req attendance.CreateAttendanceRequest) (attendance.Attendance, error) {
	f.actor = actor
	return attendance.Attendance{ID: 9, Type: attendance.Type(req.Type), ReportedBy: actor.ID, CreatedBy: actor.ID}, nil
}

type fakeSummaryService struct {
	summary.SummaryService
	err error
}

func (f *fakeSummaryService) SummarizeWeek(ctx context.Context, userID int64) (summary.Result, error) {
	if f.err != nil {
		return summary.Result{}, f.err
	}
	return summary.Result{UserID: userID, Name: "Taro"}, nil
}

type testServer struct {
	jwt        jwt.Service
	auth       *fakeAuthService
	projects   *fakeProjectService
	attendance *fakeAttendanceService
	summary    *fakeSummaryService
	handler    http.Handler
}

func newTestServer() *testServer {
	s := &testServer{
		jwt:        jwt.NewJWTService(handlerTestSecret, "1h"),
		auth:       &fakeAuthService{},
		projects:   &fakeProjectService{},
		attendance: &fakeAttendanceService{},
		summary:    &fakeSummaryService{},
	}
	s.handler = NewRouter(
		RouterConfig{AllowedOrigins: []string{"http://localhost:3000"}},
		s.jwt,
		NewAuthHandler(s.auth),
		NewUserHandler(nil),
		NewProjectHandler(s.projects),
		NewAttendanceHandler(s.attendance),
		NewReportHandler(nil, s.summary),
		NewCardMessageHandler(nil),
		NewDashboardHandler(nil),
	)
	return s
}

func (s *testServer) token(t *testing.T, role user.Role) (string, int64) {
	t.Helper()
	token, exp, err := s.jwt.GenerateAccessToken(user.CurrentUser{ID: 7, Name: "Taro", Email: "taro@example.com", Role: role})
	require.NoError(t, err)
	return token, exp
}

func (s *testServer) do(t *testing.T, method, path, token string, body interface{}, header ...string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	var env envelope
	if rec.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func TestLogin(t *testing.T) {
	s := newTestServer()
	s.auth.loginResp = auth.LoginResponse{AccessToken: "tok", ExpiresAt: 100, User: user.CurrentUser{ID: 7}}

	rec, env := s.do(t, http.MethodPost, "/api/v1/login", "", auth.LoginRequest{Email: "taro@example.com", Password: "secret"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "Login successful", env.Message)

	var data auth.LoginResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "tok", data.AccessToken)
}

func TestLoginInvalidCredentials(t *testing.T) {
	s := newTestServer()
	s.auth.loginErr = auth.ErrInvalidCredentials

	rec, env := s.do(t, http.MethodPost, "/api/v1/login", "", auth.LoginRequest{Email: "taro@example.com", Password: "wrong"})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
}

func TestLoginMalformedBody(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/login", bytes.NewBufferString("{"))
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	s := newTestServer()

	rec, env := s.do(t, http.MethodGet, "/api/v1/projects", "", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, env.Success)
}

func TestRevokedTokenRejected(t *testing.T) {
	s := newTestServer()
	token, exp := s.token(t, user.RoleLeader)

	rec, _ := s.do(t, http.MethodGet, "/api/v1/projects", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	s.jwt.RevokeToken(token, exp)

	rec, env := s.do(t, http.MethodGet, "/api/v1/projects", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, auth.ErrTokenRevoked.Error(), env.Error.Message)
}

func TestMemberCannotCreateProject(t *testing.T) {
	s := newTestServer()
	token, _ := s.token(t, user.RoleMember)

	rec, _ := s.do(t, http.MethodPost, "/api/v1/projects", token, project.CreateProjectRequest{Name: "Beta", Color: "#000000"})

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, s.projects.created)
}

func TestLeaderCreatesProject(t *testing.T) {
	s := newTestServer()
	token, _ := s.token(t, user.RoleLeader)

	rec, env := s.do(t, http.MethodPost, "/api/v1/projects", token, project.CreateProjectRequest{Name: "Beta", Color: "#000000"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Project created successfully", env.Message)
	assert.True(t, s.projects.created)
}

func TestProjectDeleteWithUsersConflicts(t *testing.T) {
	s := newTestServer()
	s.projects.deleteErr = project.ErrProjectHasUsers
	token, _ := s.token(t, user.RoleManager)

	rec, env := s.do(t, http.MethodDelete, "/api/v1/projects/3", token, nil)

	assert.Equal(t, http.StatusConflict, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "CONFLICT", env.Error.Code)
}

func TestInvalidIDParam(t *testing.T) {
	s := newTestServer()
	token, _ := s.token(t, user.RoleManager)

	rec, env := s.do(t, http.MethodDelete, "/api/v1/projects/abc", token, nil)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.NotNil(t, env.Error)
	assert.Contains(t, env.Error.Details, "id")
}

func TestAttendanceReportDate(t *testing.T) {
	s := newTestServer()
	token, _ := s.token(t, user.RoleMember)

	rec, _ := s.do(t, http.MethodGet, "/api/v1/attendances/report?date=2024-05-01", token, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.Local), s.attendance.reportDay)
}

func TestAttendanceReportBadDate(t *testing.T) {
	s := newTestServer()
	token, _ := s.token(t, user.RoleMember)

	rec, env := s.do(t, http.MethodGet, "/api/v1/attendances/report?date=2024/05/01", token, nil)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.NotNil(t, env.Error)
	assert.Contains(t, env.Error.Details, "date")
}

func TestCreateAttendanceUsesTokenActor(t *testing.T) {
	s := newTestServer()
	token, _ := s.token(t, user.RoleMember)

	rec, _ := s.do(t, http.MethodPost, "/api/v1/attendances", token, attendance.CreateAttendanceRequest{Type: "working"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, int64(7), s.attendance.actor.ID)
	assert.Equal(t, user.RoleMember, s.attendance.actor.Role)
}

func TestAttendanceReportReturnsTextWithoutServerCopy(t *testing.T) {
	s := newTestServer()
	token, _ := s.token(t, user.RoleMember)

	rec, env := s.do(t, http.MethodGet, "/api/v1/attendances/report?date=2024-05-01", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var data attendance.ReportResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "2024.05.01", data.Text)

	rec, _ = s.do(t, http.MethodPost, "/api/v1/attendances/report/copy?date=2024-05-01", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSummarizeFailureIsLocalised(t *testing.T) {
	s := newTestServer()
	s.summary.err = fmt.Errorf("%w: upstream 500", summary.ErrSummaryFailed)
	token, _ := s.token(t, user.RoleLeader)

	rec, env := s.do(t, http.MethodPost, "/api/v1/reports/summary/3", token, nil, "Accept-Language", "ja-JP,ja;q=0.9")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "ja", rec.Header().Get("Content-Language"))
	require.NotNil(t, env.Error)
	assert.Equal(t, "要約の作成に失敗しました", env.Error.Message)
}

func TestSummarizeNoReports(t *testing.T) {
	s := newTestServer()
	s.summary.err = summary.ErrNoReportsToSend
	token, _ := s.token(t, user.RoleLeader)

	rec, _ := s.do(t, http.MethodPost, "/api/v1/reports/summary/3", token, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRequestIDHeader(t *testing.T) {
	s := newTestServer()

	rec, _ := s.do(t, http.MethodPost, "/api/v1/login", "", auth.LoginRequest{}, "X-Request-Id", "abc-123")
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-Id"))

	rec, _ = s.do(t, http.MethodPost, "/api/v1/login", "", auth.LoginRequest{})
	assert.Len(t, rec.Header().Get("X-Request-Id"), 36)
}

func TestHeartbeat(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

type fakeReportService struct {
	report.ReportService
	actor report.Actor
	day   time.Time
}

func (f *fakeReportService) Update(ctx context.Context, actor report.Actor, id int64, req report.UpdateReportRequest) (report.Report, error) {
	f.actor = actor
	if actor.IsMember && id == 1 {
		return report.Report{}, report.ErrReportForbidden
	}
	return report.Report{ID: id, UserID: actor.ID}, nil
}

func (f *fakeReportService) Teams(ctx context.Context, day time.Time) ([]report.TeamDayResponse, error) {
	f.day = day
	return []report.TeamDayResponse{{Name: "Hanako's Team"}}, nil
}

type fakeCardMessageService struct {
	cardmessage.CardMessageService
	senderID int64
}

func (f *fakeCardMessageService) Ingest(ctx context.Context, senderID int64, req cardmessage.IngestRequest) (cardmessage.CardMessage, error) {
	f.senderID = senderID
	if senderID != 7 {
		return cardmessage.CardMessage{}, cardmessage.ErrSenderNotAuthorized
	}
	return cardmessage.CardMessage{ID: 1, UserID: senderID, CardMessage: string(req.CardMessage)}, nil
}

type fakeDashboardService struct {
	dashboard.DashboardService
}

func (f *fakeDashboardService) Overview(ctx context.Context, day time.Time) (*dashboard.OverviewResponse, error) {
	return &dashboard.OverviewResponse{
		Date:       day.Format("2006.01.02"),
		Attendance: dashboard.AttendanceCounts{Total: 3, Office: 1, Home: 1, Leave: 1},
	}, nil
}

func newFullRouter(jwtService jwt.Service, reports *fakeReportService, cards *fakeCardMessageService) http.Handler {
	return NewRouter(
		RouterConfig{},
		jwtService,
		NewAuthHandler(&fakeAuthService{}),
		NewUserHandler(nil),
		NewProjectHandler(&fakeProjectService{}),
		NewAttendanceHandler(&fakeAttendanceService{}),
		NewReportHandler(reports, &fakeSummaryService{}),
		NewCardMessageHandler(cards),
		NewDashboardHandler(&fakeDashboardService{}),
	)
}

func TestReportRoutes(t *testing.T) {
	s := newTestServer()
	reports := &fakeReportService{}
	cards := &fakeCardMessageService{}
	s.handler = newFullRouter(s.jwt, reports, cards)
	token, _ := s.token(t, user.RoleMember)

	t.Run("member cannot edit another user's report", func(t *testing.T) {
		rec, _ := s.do(t, http.MethodPatch, "/api/v1/reports/1", token, report.UpdateReportRequest{})
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, report.Actor{ID: 7, IsMember: true}, reports.actor)
	})

	t.Run("teams for day", func(t *testing.T) {
		rec, env := s.do(t, http.MethodGet, "/api/v1/reports/teams?date=2024-05-02", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, time.Date(2024, 5, 2, 0, 0, 0, 0, time.Local), reports.day)

		var teams []report.TeamDayResponse
		require.NoError(t, json.Unmarshal(env.Data, &teams))
		require.Len(t, teams, 1)
		assert.Equal(t, "Hanako's Team", teams[0].Name)
	})

	t.Run("card message sender is the token holder", func(t *testing.T) {
		body := map[string]any{"card_message": map[string]any{"attachments": []any{}}}
		rec, env := s.do(t, http.MethodPost, "/api/v1/cardmessages", token, body)
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, int64(7), cards.senderID)
		assert.Equal(t, "Card message stored", env.Message)
	})

	t.Run("dashboard overview", func(t *testing.T) {
		rec, env := s.do(t, http.MethodGet, "/api/v1/dashboard?date=2024-05-01", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var overview dashboard.OverviewResponse
		require.NoError(t, json.Unmarshal(env.Data, &overview))
		assert.Equal(t, "2024.05.01", overview.Date)
		assert.Equal(t, 3, overview.Attendance.Total)
	})
}
