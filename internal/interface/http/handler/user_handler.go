package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/hbnb-backend/internal/domain/entity"
	"github.com/wichananm65/hbnb-backend/internal/interface/presenter"
	"github.com/wichananm65/hbnb-backend/internal/usecase"
)

// UserHandler adapts HTTP requests to user use case calls.
type UserHandler struct {
	usecase   usecase.UserUsecase
	presenter *presenter.Presenter
	validate  *validator.Validate
}

type createUserRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	IsAdmin   bool   `json:"is_admin"`
}

type updateUserRequest struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	Password  *string `json:"password,omitempty"`
	IsAdmin   *bool   `json:"is_admin,omitempty"`
}

func NewUserHandler(uc usecase.UserUsecase, p *presenter.Presenter) *UserHandler {
	return &UserHandler{usecase: uc, presenter: p, validate: newRequestValidator()}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router) {
	r.Post("/users", h.createUser)
	r.Get("/users", h.listUsers)
	r.Get("/users/:id", h.getUser)
	r.Put("/users/:id", h.updateUser)
}

func (h *UserHandler) createUser(c *fiber.Ctx) error {
	payload := new(createUserRequest)
	if ok, err := parseBody(c, h.validate, payload); !ok {
		return err
	}

	if _, exists := h.usecase.GetUserByEmail(payload.Email); exists {
		return writeErr(c, fiber.StatusBadRequest, ErrCodeEmailTaken, "Email already registered")
	}

	user, err := h.usecase.CreateUser(usecase.CreateUserInput{
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Email:     payload.Email,
		Password:  payload.Password,
		IsAdmin:   payload.IsAdmin,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(h.presenter.User(user))
}

func (h *UserHandler) listUsers(c *fiber.Ctx) error {
	return c.JSON(h.presenter.Users(h.usecase.ListUsers()))
}

func (h *UserHandler) getUser(c *fiber.Ctx) error {
	user, ok := h.usecase.GetUser(c.Params("id"))
	if !ok {
		return notFound(c, "User")
	}
	return c.JSON(h.presenter.User(user))
}

func (h *UserHandler) updateUser(c *fiber.Ctx) error {
	payload := new(updateUserRequest)
	if ok, err := parseBody(c, h.validate, payload); !ok {
		return err
	}

	user, ok := h.usecase.GetUser(c.Params("id"))
	if !ok {
		return notFound(c, "User")
	}

	if payload.Email != nil {
		if other, exists := h.usecase.GetUserByEmail(*payload.Email); exists && other.ID != user.ID {
			return writeErr(c, fiber.StatusBadRequest, ErrCodeEmailTaken, "Email already registered")
		}
	}

	err := user.Apply(entity.UserPatch{
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Email:     payload.Email,
		Password:  payload.Password,
		IsAdmin:   payload.IsAdmin,
	})
	if err != nil {
		return writeError(c, err)
	}

	updated, err := h.usecase.UpdateUser(user)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.presenter.User(updated))
}
