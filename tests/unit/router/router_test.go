package router_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"awaaz/internal/config"
	"awaaz/internal/domain"
	"awaaz/internal/handler"
	"awaaz/internal/router"
	"awaaz/internal/service"
	"awaaz/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type routerFixture struct {
	authSvc     *mocks.MockAuthService
	categorySvc *mocks.MockCategoryService
	engine      *gin.Engine
}

func newRouterFixture() *routerFixture {
	f := &routerFixture{
		authSvc:     new(mocks.MockAuthService),
		categorySvc: new(mocks.MockCategoryService),
	}
	userSvc := new(mocks.MockUserService)
	otpSvc := new(mocks.MockOTPService)
	petitionSvc := new(mocks.MockPetitionService)
	draftSvc := new(mocks.MockDraftService)
	commentSvc := new(mocks.MockCommentService)

	f.engine = router.Setup(
		&config.Config{},
		f.authSvc,
		handler.NewAuthHandler(f.authSvc, userSvc, otpSvc),
		handler.NewCategoryHandler(f.categorySvc),
		handler.NewPetitionHandler(petitionSvc, userSvc),
		handler.NewDraftHandler(draftSvc, petitionSvc, otpSvc, userSvc),
		handler.NewCommentHandler(commentSvc),
		handler.NewUserHandler(userSvc),
		handler.NewHealthHandler(nil),
	)
	return f
}

func postJSON(t *testing.T, engine *gin.Engine, path, token string, payload gin.H) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	engine.ServeHTTP(w, req)
	return w
}

// Category creation is part of the wizard flow, so a plain member token must
// be enough.
func TestRouter_MemberCanCreateCategory(t *testing.T) {
	f := newRouterFixture()
	userID := uuid.New()

	f.authSvc.On("ValidateToken", "member-token").Return(&service.Claims{
		UserID: userID,
		Email:  "ravi@example.com",
		Phone:  "9876543210",
		Role:   domain.RoleMember,
	}, nil)
	f.categorySvc.On("Create", mock.Anything, service.CreateCategoryInput{
		CreatedBy: userID,
		Name:      "Environment",
	}).Return(&domain.Category{ID: uuid.New(), Slug: "environment", Name: "Environment"}, nil)

	w := postJSON(t, f.engine, "/api/v1/categories", "member-token", gin.H{"name": "Environment"})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	f.categorySvc.AssertExpectations(t)
}

func TestRouter_CategoryCreateRequiresAuth(t *testing.T) {
	f := newRouterFixture()

	w := postJSON(t, f.engine, "/api/v1/categories", "", gin.H{"name": "Environment"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	f.categorySvc.AssertNotCalled(t, "Create")
}
