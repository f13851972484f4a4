package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lifelink/lifelink-api/internal/api/middleware"
	"github.com/lifelink/lifelink-api/internal/core/ports"
)

// DirectoryHandler serves the catalog listings.
type DirectoryHandler struct {
	directory ports.DirectoryService
}

func NewDirectoryHandler(directory ports.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{directory: directory}
}

// Centers handles GET /directory/centers.
//
// @Summary      Search donation centres
// @Tags         directory
// @Produce      json
// @Security     BearerAuth
// @Param        q    query     string  false  "Name or address substring"
// @Success      200  {object}  listResponse[domain.Center]
// @Router       /directory/centers [get]
func (h *DirectoryHandler) Centers(c echo.Context) error {
	return c.JSON(http.StatusOK, newList(h.directory.Centers(c.QueryParam("q"))))
}

// Doctors handles GET /directory/doctors.
//
// @Summary      Search doctors
// @Tags         directory
// @Produce      json
// @Security     BearerAuth
// @Param        q          query     string  false  "Name or hospital substring"
// @Param        specialty  query     string  false  "Specialty, or All"
// @Success      200        {object}  listResponse[domain.Doctor]
// @Router       /directory/doctors [get]
func (h *DirectoryHandler) Doctors(c echo.Context) error {
	return c.JSON(http.StatusOK, newList(h.directory.Doctors(c.QueryParam("q"), c.QueryParam("specialty"))))
}

// Book handles POST /directory/doctors/:id/book.
//
// @Summary      Book an appointment with a doctor
// @Tags         directory
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Doctor ID"
// @Success      201  {object}  domain.Booking
// @Failure      404  {object}  map[string]string
// @Router       /directory/doctors/{id}/book [post]
func (h *DirectoryHandler) Book(c echo.Context) error {
	accountID, _ := c.Get(middleware.KeyAccountID).(string)
	booking, err := h.directory.BookAppointment(accountID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, booking)
}

// Specialties handles GET /directory/specialties.
//
// @Summary      List doctor specialties
// @Tags         directory
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listResponse[string]
// @Router       /directory/specialties [get]
func (h *DirectoryHandler) Specialties(c echo.Context) error {
	return c.JSON(http.StatusOK, newList(h.directory.Specialties()))
}

// Donors handles GET /directory/donors (hospital and admin only).
//
// @Summary      Search the donor registry
// @Tags         directory
// @Produce      json
// @Security     BearerAuth
// @Param        blood_type  query     string  false  "Exact blood type"
// @Param        location    query     string  false  "Location substring"
// @Success      200         {object}  listResponse[accountResponse]
// @Failure      403         {object}  map[string]string
// @Router       /directory/donors [get]
func (h *DirectoryHandler) Donors(c echo.Context) error {
	donors := h.directory.Donors(ports.DonorFilter{
		BloodType: c.QueryParam("blood_type"),
		Location:  c.QueryParam("location"),
	})
	return c.JSON(http.StatusOK, newList(toAccountResponses(donors)))
}

// Overview handles GET /admin/overview (admin only).
//
// @Summary      System-wide totals
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Overview
// @Failure      403  {object}  map[string]string
// @Router       /admin/overview [get]
func (h *DirectoryHandler) Overview(c echo.Context) error {
	return c.JSON(http.StatusOK, h.directory.Overview())
}
