package timetable

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/clinicore/clinicore/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	read := api.Group("", auth.RequireRole(auth.RoleManager, auth.RoleDoctor, auth.RoleReceptionist))
	read.GET("/clinics/:id/timetables", h.ListClinicTimetables)
	read.GET("/doctors/:id/timetables", h.ListDoctorTimetables)
	read.GET("/timetables/:id", h.GetEntry)

	write := api.Group("", auth.RequireRole(auth.RoleManager))
	write.POST("/clinics/:id/timetables", h.CreateClinicEntry)
	write.POST("/doctors/:id/timetables", h.CreateDoctorEntry)
	write.POST("/doctors/:id/timetables/initialize", h.BulkInitialize)
	write.PUT("/timetables/:id", h.UpdateEntry)
	write.PATCH("/timetables/:id/active", h.SetActive)
	write.DELETE("/timetables/:id", h.DeleteEntry)
}

func httpError(err error) error {
	if IsValidationError(err) {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	if errors.Is(err, ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

func ownerFromParam(c echo.Context, t OwnerType) (Owner, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return Owner{}, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return Owner{Type: t, ID: id}, nil
}

func (h *Handler) listTimetables(c echo.Context, t OwnerType) error {
	owner, err := ownerFromParam(c, t)
	if err != nil {
		return err
	}
	items, err := h.svc.ListByOwner(c.Request().Context(), owner)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if items == nil {
		items = []*Entry{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) ListClinicTimetables(c echo.Context) error {
	return h.listTimetables(c, OwnerClinic)
}

func (h *Handler) ListDoctorTimetables(c echo.Context) error {
	return h.listTimetables(c, OwnerDoctor)
}

func (h *Handler) createEntry(c echo.Context, t OwnerType) error {
	owner, err := ownerFromParam(c, t)
	if err != nil {
		return err
	}
	var in SlotInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	entry, err := h.svc.CreateEntry(c.Request().Context(), owner, in)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, entry)
}

func (h *Handler) CreateClinicEntry(c echo.Context) error {
	return h.createEntry(c, OwnerClinic)
}

func (h *Handler) CreateDoctorEntry(c echo.Context) error {
	return h.createEntry(c, OwnerDoctor)
}

func (h *Handler) GetEntry(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	entry, err := h.svc.GetEntry(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "timetable entry not found")
	}
	return c.JSON(http.StatusOK, entry)
}

func (h *Handler) UpdateEntry(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var in SlotInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	entry, err := h.svc.UpdateEntry(c.Request().Context(), id, in)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, entry)
}

type setActiveRequest struct {
	IsActive bool `json:"is_active"`
}

func (h *Handler) SetActive(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req setActiveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	entry, err := h.svc.SetActive(c.Request().Context(), id, req.IsActive)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "timetable entry not found")
	}
	return c.JSON(http.StatusOK, entry)
}

func (h *Handler) DeleteEntry(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.DeleteEntry(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) BulkInitialize(c echo.Context) error {
	owner, err := ownerFromParam(c, OwnerDoctor)
	if err != nil {
		return err
	}
	var req BulkInitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	entries, err := h.svc.BulkInitialize(c.Request().Context(), owner, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, entries)
}
