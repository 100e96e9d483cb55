package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/hbnb-backend/internal/domain/entity"
	"github.com/wichananm65/hbnb-backend/internal/interface/presenter"
	"github.com/wichananm65/hbnb-backend/internal/usecase"
)

type AmenityHandler struct {
	usecase   usecase.AmenityUsecase
	presenter *presenter.Presenter
	validate  *validator.Validate
}

type createAmenityRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type updateAmenityRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

func NewAmenityHandler(uc usecase.AmenityUsecase, p *presenter.Presenter) *AmenityHandler {
	return &AmenityHandler{usecase: uc, presenter: p, validate: newRequestValidator()}
}

func (h *AmenityHandler) RegisterRoutes(r fiber.Router) {
	r.Post("/amenities", h.createAmenity)
	r.Get("/amenities", h.listAmenities)
	r.Get("/amenities/:id", h.getAmenity)
	r.Put("/amenities/:id", h.updateAmenity)
}

func (h *AmenityHandler) createAmenity(c *fiber.Ctx) error {
	payload := new(createAmenityRequest)
	if ok, err := parseBody(c, h.validate, payload); !ok {
		return err
	}

	amenity, err := h.usecase.CreateAmenity(usecase.CreateAmenityInput{
		Name:        payload.Name,
		Description: payload.Description,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(h.presenter.Amenity(amenity))
}

func (h *AmenityHandler) listAmenities(c *fiber.Ctx) error {
	return c.JSON(h.presenter.Amenities(h.usecase.ListAmenities()))
}

func (h *AmenityHandler) getAmenity(c *fiber.Ctx) error {
	amenity, ok := h.usecase.GetAmenity(c.Params("id"))
	if !ok {
		return notFound(c, "Amenity")
	}
	return c.JSON(h.presenter.Amenity(amenity))
}

func (h *AmenityHandler) updateAmenity(c *fiber.Ctx) error {
	payload := new(updateAmenityRequest)
	if ok, err := parseBody(c, h.validate, payload); !ok {
		return err
	}

	amenity, err := h.usecase.UpdateAmenity(c.Params("id"), entity.AmenityPatch{
		Name:        payload.Name,
		Description: payload.Description,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.presenter.Amenity(amenity))
}
