package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/hbnb-backend/internal/domain/entity"
	"github.com/wichananm65/hbnb-backend/internal/interface/presenter"
	"github.com/wichananm65/hbnb-backend/internal/usecase"
)

type PlaceHandler struct {
	usecase   usecase.PlaceUsecase
	reviews   usecase.ReviewUsecase
	presenter *presenter.Presenter
	validate  *validator.Validate
}

// Numeric fields are pointers so a missing value is told apart from zero.
type createPlaceRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" validate:"required"`
	Latitude    *float64 `json:"latitude" validate:"required"`
	Longitude   *float64 `json:"longitude" validate:"required"`
	OwnerID     string   `json:"owner_id" validate:"required"`
	Amenities   []string `json:"amenities" validate:"omitempty,dive,required"`
}

type updatePlaceRequest struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
}

func NewPlaceHandler(uc usecase.PlaceUsecase, reviews usecase.ReviewUsecase, p *presenter.Presenter) *PlaceHandler {
	return &PlaceHandler{usecase: uc, reviews: reviews, presenter: p, validate: newRequestValidator()}
}

func (h *PlaceHandler) RegisterRoutes(r fiber.Router) {
	r.Post("/places", h.createPlace)
	r.Get("/places", h.listPlaces)
	r.Get("/places/:id", h.getPlace)
	r.Put("/places/:id", h.updatePlace)
	r.Get("/places/:id/reviews", h.listPlaceReviews)
	r.Post("/places/:id/amenities/:amenity_id", h.addAmenity)
}

func (h *PlaceHandler) createPlace(c *fiber.Ctx) error {
	payload := new(createPlaceRequest)
	if ok, err := parseBody(c, h.validate, payload); !ok {
		return err
	}

	place, err := h.usecase.CreatePlace(usecase.CreatePlaceInput{
		Title:       payload.Title,
		Description: payload.Description,
		Price:       *payload.Price,
		Latitude:    *payload.Latitude,
		Longitude:   *payload.Longitude,
		OwnerID:     payload.OwnerID,
		Amenities:   payload.Amenities,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(h.presenter.Place(place))
}

func (h *PlaceHandler) listPlaces(c *fiber.Ctx) error {
	return c.JSON(h.presenter.PlaceDetails(h.usecase.ListPlaces()))
}

func (h *PlaceHandler) getPlace(c *fiber.Ctx) error {
	view, ok := h.usecase.GetPlace(c.Params("id"))
	if !ok {
		return notFound(c, "Place")
	}
	return c.JSON(h.presenter.PlaceDetail(view))
}

func (h *PlaceHandler) updatePlace(c *fiber.Ctx) error {
	payload := new(updatePlaceRequest)
	if ok, err := parseBody(c, h.validate, payload); !ok {
		return err
	}

	place, err := h.usecase.UpdatePlace(c.Params("id"), entity.PlacePatch{
		Title:       payload.Title,
		Description: payload.Description,
		Price:       payload.Price,
		Latitude:    payload.Latitude,
		Longitude:   payload.Longitude,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.presenter.Place(place))
}

func (h *PlaceHandler) listPlaceReviews(c *fiber.Ctx) error {
	reviews, err := h.reviews.GetReviewsForPlace(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.presenter.Reviews(reviews))
}

func (h *PlaceHandler) addAmenity(c *fiber.Ctx) error {
	view, err := h.usecase.AddPlaceAmenity(c.Params("id"), c.Params("amenity_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.presenter.PlaceDetail(view))
}
