package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"petboard/internal/errors"
	"petboard/internal/service"
	"petboard/internal/validation"
)

// PetHandler handles pet boarding record endpoints.
type PetHandler struct {
	petService service.PetService
}

// NewPetHandler creates a new pet handler.
func NewPetHandler(petService service.PetService) *PetHandler {
	return &PetHandler{petService: petService}
}

// PetRequest represents a pet create/edit form.
type PetRequest struct {
	Name      string `json:"name" form:"name"`
	OwnerName string `json:"owner_name" form:"owner_name"`
	ImageURL  string `json:"image_url" form:"image_url"`
	Age       int    `json:"age" form:"age"`
	Notes     string `json:"notes" form:"notes"`
}

func (r PetRequest) toForm() validation.PetForm {
	return validation.PetForm{
		Name:      r.Name,
		OwnerName: r.OwnerName,
		ImageURL:  r.ImageURL,
		Age:       r.Age,
		Notes:     r.Notes,
	}
}

// PetListResponse represents the user's boarding records with a total count.
type PetListResponse struct {
	Pets  interface{} `json:"pets"`
	Total int         `json:"total"`
}

// List godoc
// @Summary List the session user's pets
// @Tags pets
// @Produce json
// @Security BearerAuth
// @Success 200 {object} PetListResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /pets [get]
func (h *PetHandler) List(c echo.Context) error {
	claims, err := sessionClaims(c)
	if err != nil {
		return err
	}

	pets, err := h.petService.ListPets(c.Request().Context(), claims.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err, "could not list pets.")
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, PetListResponse{Pets: pets, Total: len(pets)})
}

// Get godoc
// @Summary Get one of the session user's pets
// @Tags pets
// @Produce json
// @Security BearerAuth
// @Param id path string true "Pet ID"
// @Success 200 {object} model.Pet
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /pets/{id} [get]
func (h *PetHandler) Get(c echo.Context) error {
	claims, err := sessionClaims(c)
	if err != nil {
		return err
	}

	pet, err := h.petService.GetPet(c.Request().Context(), c.Param("id"), claims.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err, "could not get pet.")
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, pet)
}

// Add godoc
// @Summary Add a pet boarding record
// @Tags pets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PetRequest true "Pet data"
// @Success 201 {object} model.Pet
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /pets [post]
func (h *PetHandler) Add(c echo.Context) error {
	claims, err := sessionClaims(c)
	if err != nil {
		return err
	}

	var req PetRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Message: "Invalid pet data."})
	}

	pet, err := h.petService.AddPet(c.Request().Context(), claims.UserID, req.toForm())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err, "could not add pet.")
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, pet)
}

// Edit godoc
// @Summary Edit a pet boarding record
// @Tags pets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Pet ID"
// @Param request body PetRequest true "New pet data"
// @Success 200 {object} model.Pet
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /pets/{id} [put]
func (h *PetHandler) Edit(c echo.Context) error {
	claims, err := sessionClaims(c)
	if err != nil {
		return err
	}

	var req PetRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Message: "Invalid pet data."})
	}

	pet, err := h.petService.EditPet(c.Request().Context(), c.Param("id"), claims.UserID, req.toForm())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err, "could not edit pet.")
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, pet)
}

// Checkout godoc
// @Summary Check out a pet (remove its boarding record)
// @Tags pets
// @Produce json
// @Security BearerAuth
// @Param id path string true "Pet ID"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /pets/{id} [delete]
func (h *PetHandler) Checkout(c echo.Context) error {
	claims, err := sessionClaims(c)
	if err != nil {
		return err
	}

	if err := h.petService.CheckoutPet(c.Request().Context(), c.Param("id"), claims.UserID); err != nil {
		httpErr := errors.MapErrorToHTTP(err, "could not checkout pet.")
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.NoContent(http.StatusNoContent)
}
