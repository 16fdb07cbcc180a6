package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"petboard/internal/auth"
	"petboard/internal/errors"
	"petboard/internal/model"
	"petboard/internal/validation"
)

// MockPetService is a mock implementation of service.PetService.
type MockPetService struct {
	mock.Mock
}

func (m *MockPetService) ListPets(ctx context.Context, userID uuid.UUID) ([]model.Pet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Pet), args.Error(1)
}

func (m *MockPetService) GetPet(ctx context.Context, petID string, userID uuid.UUID) (*model.Pet, error) {
	args := m.Called(ctx, petID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Pet), args.Error(1)
}

func (m *MockPetService) AddPet(ctx context.Context, userID uuid.UUID, form validation.PetForm) (*model.Pet, error) {
	args := m.Called(ctx, userID, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Pet), args.Error(1)
}

func (m *MockPetService) EditPet(ctx context.Context, petID string, userID uuid.UUID, form validation.PetForm) (*model.Pet, error) {
	args := m.Called(ctx, petID, userID, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Pet), args.Error(1)
}

func (m *MockPetService) CheckoutPet(ctx context.Context, petID string, userID uuid.UUID) error {
	args := m.Called(ctx, petID, userID)
	return args.Error(0)
}

func newAuthedContext(t *testing.T, method, target, body string, userID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &auth.Claims{UserID: userID, Email: "al@example.com"})
	c.Set("user", token)
	return c, rec
}

func TestPetHandler_AddInvalidData(t *testing.T) {
	userID := uuid.New()
	mockSvc := new(MockPetService)
	mockSvc.On("AddPet", mock.Anything, userID, mock.Anything).Return(nil, errors.ErrInvalidPetData)

	h := NewPetHandler(mockSvc)
	c, rec := newAuthedContext(t, http.MethodPost, "/api/pets", `{"name":"","owner_name":"Al","age":3}`, userID)

	assert.NoError(t, h.Add(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Invalid pet data."}`, rec.Body.String())
}

func TestPetHandler_AddSuccess(t *testing.T) {
	userID := uuid.New()
	pet := &model.Pet{ID: uuid.New(), UserID: userID, Name: "Rex", ImageURL: validation.DefaultPetImage, Age: 3}

	mockSvc := new(MockPetService)
	mockSvc.On("AddPet", mock.Anything, userID, validation.PetForm{Name: "Rex", OwnerName: "Al", Age: 3}).Return(pet, nil)

	h := NewPetHandler(mockSvc)
	c, rec := newAuthedContext(t, http.MethodPost, "/api/pets", `{"name":"Rex","owner_name":"Al","age":3}`, userID)

	assert.NoError(t, h.Add(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), validation.DefaultPetImage)
	mockSvc.AssertExpectations(t)
}

func TestPetHandler_EditNotOwner(t *testing.T) {
	userID := uuid.New()
	petID := uuid.New().String()

	mockSvc := new(MockPetService)
	mockSvc.On("EditPet", mock.Anything, petID, userID, mock.Anything).Return(nil, errors.ErrNotOwner)

	h := NewPetHandler(mockSvc)
	c, rec := newAuthedContext(t, http.MethodPut, "/api/pets/"+petID, `{"name":"Rex","owner_name":"Al","age":3}`, userID)
	c.SetParamNames("id")
	c.SetParamValues(petID)

	assert.NoError(t, h.Edit(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"message":"Unauthorized."}`, rec.Body.String())
}

func TestPetHandler_CheckoutNotFound(t *testing.T) {
	userID := uuid.New()
	petID := uuid.New().String()

	mockSvc := new(MockPetService)
	mockSvc.On("CheckoutPet", mock.Anything, petID, userID).Return(errors.ErrPetNotFound)

	h := NewPetHandler(mockSvc)
	c, rec := newAuthedContext(t, http.MethodDelete, "/api/pets/"+petID, "", userID)
	c.SetParamNames("id")
	c.SetParamValues(petID)

	assert.NoError(t, h.Checkout(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Pet not found."}`, rec.Body.String())
}

func TestPetHandler_CheckoutSuccess(t *testing.T) {
	userID := uuid.New()
	petID := uuid.New().String()

	mockSvc := new(MockPetService)
	mockSvc.On("CheckoutPet", mock.Anything, petID, userID).Return(nil)

	h := NewPetHandler(mockSvc)
	c, rec := newAuthedContext(t, http.MethodDelete, "/api/pets/"+petID, "", userID)
	c.SetParamNames("id")
	c.SetParamValues(petID)

	assert.NoError(t, h.Checkout(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestPetHandler_ListIncludesTotal(t *testing.T) {
	userID := uuid.New()
	pets := []model.Pet{{ID: uuid.New(), UserID: userID, Name: "Rex"}, {ID: uuid.New(), UserID: userID, Name: "Bella"}}

	mockSvc := new(MockPetService)
	mockSvc.On("ListPets", mock.Anything, userID).Return(pets, nil)

	h := NewPetHandler(mockSvc)
	c, rec := newAuthedContext(t, http.MethodGet, "/api/pets", "", userID)

	assert.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":2`)
}

func TestPetHandler_MissingSession(t *testing.T) {
	mockSvc := new(MockPetService)
	h := NewPetHandler(mockSvc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/pets", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.List(c)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	mockSvc.AssertNotCalled(t, "ListPets", mock.Anything, mock.Anything)
}
