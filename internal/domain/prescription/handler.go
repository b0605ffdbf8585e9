package prescription

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clinrx/clinrx/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	writeGroup := api.Group("", auth.RequireRole("admin", "physician"))
	writeGroup.POST("/prescriptions", h.CreatePrescription)
}

func (h *Handler) CreatePrescription(c echo.Context) error {
	var req CreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	prescriptionID, patientID, err := h.svc.Create(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, ErrInvalid) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "prescription could not be saved")
	}

	location := fmt.Sprintf("/api/v1/patients/%d", patientID)
	c.Response().Header().Set("Location", location)
	return c.JSON(http.StatusCreated, CreateResponse{
		PrescriptionID: prescriptionID,
		PatientID:      patientID,
		Location:       location,
	})
}
