package api

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/service"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testCookieName = "jwt"

var (
	testTrainer = &domain.User{ID: 1, Username: "coach", Role: domain.RoleTrainer}
	testTrainee = &domain.User{ID: 2, Username: "runner", Role: domain.RoleTrainee}
)

// stubAuthService resolves fixed tokens to fixed users. Register and
// Login are exercised against the real service in auth_handler_test.go.
type stubAuthService struct {
	tokens map[string]*domain.User
}

func newStubAuthService() *stubAuthService {
	return &stubAuthService{
		tokens: map[string]*domain.User{
			"trainer-token": testTrainer,
			"trainee-token": testTrainee,
		},
	}
}

func (s *stubAuthService) Register(context.Context, string, string, domain.Role) (*domain.User, error) {
	return nil, errors.New("not implemented")
}

func (s *stubAuthService) Login(context.Context, string, string) (string, *domain.User, error) {
	return "", nil, errors.New("not implemented")
}

func (s *stubAuthService) ValidateToken(_ context.Context, token string) (*domain.User, error) {
	user, ok := s.tokens[token]
	if !ok {
		return nil, service.ErrTokenInvalid
	}
	return user, nil
}

func (s *stubAuthService) TokenTTL() time.Duration {
	return time.Hour
}

// stubGroupService returns canned values or a canned error.
type stubGroupService struct {
	group   *domain.Group
	count   int64
	code    string
	members []domain.User
	err     error
}

func (s *stubGroupService) CreateGroup(context.Context, uint, string, string) (*domain.Group, int64, error) {
	return s.group, s.count, s.err
}

func (s *stubGroupService) JoinGroup(context.Context, uint, string) (*domain.Group, int64, error) {
	return s.group, s.count, s.err
}

func (s *stubGroupService) RegenerateInvite(context.Context, uint, uint) (string, error) {
	return s.code, s.err
}

func (s *stubGroupService) GetMembers(context.Context, *domain.User, uint) ([]domain.User, error) {
	return s.members, s.err
}

type stubWorkoutService struct {
	workout  *domain.Workout
	workouts []domain.Workout
	err      error
}

func (s *stubWorkoutService) CreateWorkout(context.Context, uint, string, string, int, string, string) (*domain.Workout, error) {
	return s.workout, s.err
}

func (s *stubWorkoutService) ListWorkouts(context.Context, *domain.User) ([]domain.Workout, error) {
	return s.workouts, s.err
}

func (s *stubWorkoutService) GetWorkout(context.Context, uint) (*domain.Workout, error) {
	return s.workout, s.err
}

type stubPlanService struct {
	detail  *service.PlanDetail
	details []service.PlanDetail
	err     error
}

func (s *stubPlanService) CreatePlan(context.Context, uint, string, string) (*service.PlanDetail, error) {
	return s.detail, s.err
}

func (s *stubPlanService) ListPlans(context.Context, *domain.User) ([]service.PlanDetail, error) {
	return s.details, s.err
}

func (s *stubPlanService) GetPlan(context.Context, *domain.User, uint) (*service.PlanDetail, error) {
	return s.detail, s.err
}

func (s *stubPlanService) AddWorkout(context.Context, uint, uint, uint, int) (*service.PlanDetail, error) {
	return s.detail, s.err
}

func (s *stubPlanService) AssignToGroup(context.Context, uint, uint, uint) (*service.PlanDetail, error) {
	return s.detail, s.err
}

type stubProgressService struct {
	entry   *domain.Progress
	entries []domain.Progress
	err     error

	loggedDate *time.Time
}

func (s *stubProgressService) LogProgress(_ context.Context, _, _ uint, _ float64, date *time.Time, _ string) (*domain.Progress, error) {
	s.loggedDate = date
	return s.entry, s.err
}

func (s *stubProgressService) ListProgress(context.Context, *domain.User) ([]domain.Progress, error) {
	return s.entries, s.err
}

func (s *stubProgressService) GetProgress(context.Context, *domain.User, uint) (*domain.Progress, error) {
	return s.entry, s.err
}

func (s *stubProgressService) ListOwnProgress(context.Context, uint) ([]domain.Progress, error) {
	return s.entries, s.err
}

// testRouter builds the full router over the given stubs. Nil services
// are fine on routes a test never touches.
func testRouter(deps RouterDeps) *gin.Engine {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	deps.Logger = logger
	if deps.CookieName == "" {
		deps.CookieName = testCookieName
	}
	if deps.AuthService == nil {
		deps.AuthService = newStubAuthService()
	}
	return SetupRouter(deps)
}

// doRequest performs a request against the router, optionally with a
// JSON body and a session token cookie.
func doRequest(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: token})
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

// decodeBody unmarshals the recorded JSON body into a generic map.
func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}
