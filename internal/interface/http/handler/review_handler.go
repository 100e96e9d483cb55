package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/hbnb-backend/internal/domain/entity"
	"github.com/wichananm65/hbnb-backend/internal/interface/presenter"
	"github.com/wichananm65/hbnb-backend/internal/usecase"
)

type ReviewHandler struct {
	usecase   usecase.ReviewUsecase
	presenter *presenter.Presenter
	validate  *validator.Validate
}

type createReviewRequest struct {
	Text    string `json:"text" validate:"required"`
	Rating  *int   `json:"rating" validate:"required"`
	PlaceID string `json:"place_id" validate:"required"`
	UserID  string `json:"user_id" validate:"required"`
}

type updateReviewRequest struct {
	Text   *string `json:"text,omitempty"`
	Rating *int    `json:"rating,omitempty"`
}

func NewReviewHandler(uc usecase.ReviewUsecase, p *presenter.Presenter) *ReviewHandler {
	return &ReviewHandler{usecase: uc, presenter: p, validate: newRequestValidator()}
}

func (h *ReviewHandler) RegisterRoutes(r fiber.Router) {
	r.Post("/reviews", h.createReview)
	r.Get("/reviews", h.listReviews)
	r.Get("/reviews/:id", h.getReview)
	r.Put("/reviews/:id", h.updateReview)
	r.Delete("/reviews/:id", h.deleteReview)
	// older clients fetch a place's reviews through the reviews namespace
	r.Get("/reviews/places/:place_id/reviews", h.listPlaceReviews)
}

func (h *ReviewHandler) createReview(c *fiber.Ctx) error {
	payload := new(createReviewRequest)
	if ok, err := parseBody(c, h.validate, payload); !ok {
		return err
	}

	review, err := h.usecase.CreateReview(usecase.CreateReviewInput{
		Text:    payload.Text,
		Rating:  *payload.Rating,
		PlaceID: payload.PlaceID,
		UserID:  payload.UserID,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(h.presenter.Review(review))
}

func (h *ReviewHandler) listReviews(c *fiber.Ctx) error {
	return c.JSON(h.presenter.Reviews(h.usecase.ListReviews()))
}

func (h *ReviewHandler) getReview(c *fiber.Ctx) error {
	review, ok := h.usecase.GetReview(c.Params("id"))
	if !ok {
		return notFound(c, "Review")
	}
	return c.JSON(h.presenter.Review(review))
}

func (h *ReviewHandler) updateReview(c *fiber.Ctx) error {
	payload := new(updateReviewRequest)
	if ok, err := parseBody(c, h.validate, payload); !ok {
		return err
	}

	review, err := h.usecase.UpdateReview(c.Params("id"), entity.ReviewPatch{
		Text:   payload.Text,
		Rating: payload.Rating,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.presenter.Review(review))
}

func (h *ReviewHandler) deleteReview(c *fiber.Ctx) error {
	if err := h.usecase.DeleteReview(c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(messageResponse{Message: "Review deleted successfully"})
}

func (h *ReviewHandler) listPlaceReviews(c *fiber.Ctx) error {
	reviews, err := h.usecase.GetReviewsForPlace(c.Params("place_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.presenter.Reviews(reviews))
}
