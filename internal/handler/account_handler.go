package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "brnaccounts/internal/errors"
	"brnaccounts/internal/form"
	"brnaccounts/internal/service"
)

// AccountHandler serves the account endpoints. Every outcome is an HTTP 200
// with a discriminator in the body; clients read `status` or `error`, never
// the status code. Only opaque internal faults return 500.
type AccountHandler struct {
	svc        service.AccountService
	normalizer *form.Normalizer
}

// NewAccountHandler creates the handler layer.
func NewAccountHandler(svc service.AccountService, normalizer *form.Normalizer) *AccountHandler {
	return &AccountHandler{svc: svc, normalizer: normalizer}
}

// Signup godoc
// @Summary Register a new user profile
// @Description Accepts application/json, application/x-www-form-urlencoded or multipart/form-data (may include a profilePic file saved under the upload directory).
// @Tags accounts
// @Accept json
// @Accept mpfd
// @Accept x-www-form-urlencoded
// @Produce json
// @Param firstName formData string false "First name (2-30 chars)"
// @Param lastName formData string false "Last name (1-30 chars)"
// @Param age formData int false "Age (1-120)"
// @Param email formData string false "Email, the lookup key"
// @Param password formData string false "Password (min 6 chars)"
// @Param mobileNo formData string false "Mobile number (10-15 chars)"
// @Param profilePic formData file false "Profile picture"
// @Success 200 {object} map[string]interface{}
// @Router /signup [post]
func (h *AccountHandler) Signup(c echo.Context) error {
	fields, err := h.normalizer.Normalize(c.Request(), form.Options{})
	if err != nil {
		if errors.Is(err, apperrors.ErrUnsupportedContentType) {
			return c.JSON(http.StatusOK, echo.Map{"error": apperrors.ErrUnsupportedContentType.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}

	id, err := h.svc.Signup(c.Request().Context(), fields)
	if err != nil {
		if ve, ok := apperrors.AsValidation(err); ok {
			return c.JSON(http.StatusOK, echo.Map{
				"error":   "Validation failed",
				"details": ve.Fields,
			})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"msg":         "Signup successful",
		"inserted_id": id,
	})
}

// Login godoc
// @Summary Authenticate and issue a bearer token
// @Description Expects multipart/form-data with email and password. Returns a JWT and the user document without its password.
// @Tags accounts
// @Accept mpfd
// @Produce json
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Success 200 {object} map[string]interface{}
// @Router /login [post]
func (h *AccountHandler) Login(c echo.Context) error {
	if !requireMultipart(c) {
		return c.JSON(http.StatusOK, apperrors.Failure("invalid content-type"))
	}

	email := c.FormValue("email")
	password := c.FormValue("password")
	if email == "" || password == "" {
		return c.JSON(http.StatusOK, apperrors.Failure("No email or password provided"))
	}

	token, user, err := h.svc.Login(c.Request().Context(), email, password)
	if err != nil {
		if err == apperrors.ErrInvalidUsername || err == apperrors.ErrInvalidPassword {
			return c.JSON(http.StatusOK, apperrors.Failure(err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, apperrors.Failure("internal server error"))
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status": "success",
		"data": echo.Map{
			"token": token,
			"user":  user,
		},
	})
}

// UpdateProfile godoc
// @Summary Overwrite a stored profile
// @Description Expects multipart/form-data addressed by email. A missing profilePic keeps the stored upload; an empty password keeps the stored hash.
// @Tags accounts
// @Accept mpfd
// @Produce json
// @Param firstName formData string false "First name (2-30 chars)"
// @Param lastName formData string false "Last name (1-30 chars)"
// @Param age formData int false "Age (1-120)"
// @Param email formData string true "Email of the profile to update"
// @Param password formData string false "New password, empty to keep the current one"
// @Param mobileNo formData string false "Mobile number (10-15 chars)"
// @Param profilePic formData file false "Replacement profile picture"
// @Success 200 {object} errors.StatusResponse
// @Router /updateProfile [put]
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	if !requireMultipart(c) {
		return c.JSON(http.StatusOK, apperrors.Failure("invalid content-type"))
	}

	fields, err := h.normalizer.Normalize(c.Request(), form.Options{SkipEmptyUploads: true})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, apperrors.Failure("internal server error"))
	}

	if fields["email"] == "" {
		return c.JSON(http.StatusOK, apperrors.Failure("email is required to update profile"))
	}

	if err := h.svc.UpdateProfile(c.Request().Context(), fields); err != nil {
		if ve, ok := apperrors.AsValidation(err); ok {
			resp := apperrors.Failure("Validation failed")
			resp.Details = ve.Fields
			return c.JSON(http.StatusOK, resp)
		}
		if err == apperrors.ErrNotFound || err == apperrors.ErrUpdateConflict {
			return c.JSON(http.StatusOK, apperrors.Failure(err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, apperrors.Failure("internal server error"))
	}

	return c.JSON(http.StatusOK, apperrors.Success("Profile updated successfully"))
}

// DeleteProfile godoc
// @Summary Delete a stored profile
// @Description Hard-deletes the document addressed by the email query parameter.
// @Tags accounts
// @Produce json
// @Param email query string true "Email of the profile to delete"
// @Success 200 {object} errors.StatusResponse
// @Router /deleteProfile [delete]
func (h *AccountHandler) DeleteProfile(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return c.JSON(http.StatusOK, apperrors.Failure("email is required"))
	}

	if err := h.svc.DeleteProfile(c.Request().Context(), email); err != nil {
		if err == apperrors.ErrNotFound {
			return c.JSON(http.StatusOK, apperrors.Failure(err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, apperrors.Failure("internal server error"))
	}

	return c.JSON(http.StatusOK, apperrors.Success("Profile deleted successfully"))
}

func requireMultipart(c echo.Context) bool {
	ct := c.Request().Header.Get(echo.HeaderContentType)
	return strings.Contains(ct, "multipart/form-data")
}
