package handler

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	domerrors "github.com/wichananm65/hbnb-backend/internal/domain/errors"
)

type errorResponse struct {
	Error  string            `json:"error"`
	Code   string            `json:"code"`
	Fields map[string]string `json:"fields,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeErr(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(errorResponse{Error: message, Code: code})
}

// writeError maps domain failures onto HTTP statuses. Anything that is not
// a domain error is reported as a 500 without its message.
func writeError(c *fiber.Ctx, err error) error {
	var de *domerrors.Error
	if !errors.As(err, &de) {
		return writeErr(c, fiber.StatusInternalServerError, ErrCodeInternal, "internal server error")
	}

	resp := errorResponse{Error: de.Error(), Fields: de.Fields}
	if resp.Fields == nil && de.Field != "" {
		resp.Fields = map[string]string{de.Field: de.Error()}
	}

	status := fiber.StatusBadRequest
	switch de.Kind {
	case domerrors.KindValidation:
		resp.Code = ErrCodeValidation
	case domerrors.KindReference:
		resp.Code = ErrCodeInvalidReference
	case domerrors.KindNotFound:
		status = fiber.StatusNotFound
		resp.Code = ErrCodeNotFound
	default:
		status = fiber.StatusInternalServerError
		resp.Code = ErrCodeInternal
	}
	return c.Status(status).JSON(resp)
}

func notFound(c *fiber.Ctx, resource string) error {
	return writeErr(c, fiber.StatusNotFound, ErrCodeNotFound, resource+" not found")
}

func newRequestValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// parseBody decodes and shape-checks a request payload. It writes the 400
// response itself and reports whether the handler should continue.
func parseBody(c *fiber.Ctx, v *validator.Validate, out any) (bool, error) {
	if err := c.BodyParser(out); err != nil {
		return false, writeErr(c, fiber.StatusBadRequest, ErrCodeInvalidRequest, "invalid json body")
	}
	err := v.Struct(out)
	if err == nil {
		return true, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return false, writeErr(c, fiber.StatusBadRequest, ErrCodeInvalidRequest, err.Error())
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = "failed " + fe.Tag() + " check"
	}
	return false, c.Status(fiber.StatusBadRequest).JSON(errorResponse{
		Error:  "invalid request payload",
		Code:   ErrCodeInvalidRequest,
		Fields: fields,
	})
}
