package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"hospital-records-service/internal/domain/dtos"
	"hospital-records-service/internal/services"
)

type DoctorHandler struct {
	doctorService services.DoctorServiceContract
	logger        zerolog.Logger
}

func NewDoctorHandler(ds services.DoctorServiceContract, logger zerolog.Logger) *DoctorHandler {
	return &DoctorHandler{
		doctorService: ds,
		logger:        logger.With().Str("handler", "doctors").Logger(),
	}
}

func (h *DoctorHandler) AddDoctor(c *fiber.Ctx) error {
	var form dtos.DoctorForm
	if err := c.BodyParser(&form); err != nil {
		h.logger.Warn().Err(err).Msg("could not parse add-doctor form")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Could not parse form: " + err.Error()})
	}

	record, err := h.doctorService.Add(c.Context(), form)
	if err != nil {
		return renderFailure(c, err, "Doctor not found.")
	}

	return c.Status(fiber.StatusCreated).JSON(dtos.ViewResponse{Status: "OK", Data: record})
}

func (h *DoctorHandler) ListDoctors(c *fiber.Ctx) error {
	doctors, err := h.doctorService.List(c.Context())
	if err != nil {
		return renderFailure(c, err, "Doctor not found.")
	}
	return c.JSON(doctors)
}

func (h *DoctorHandler) GetDoctor(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Doctor not found."})
	}

	record, err := h.doctorService.Get(c.Context(), id)
	if err != nil {
		return renderFailure(c, err, "Doctor not found.")
	}
	return c.JSON(record)
}

func (h *DoctorHandler) EditDoctor(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Doctor not found."})
	}

	var form dtos.DoctorForm
	if err := c.BodyParser(&form); err != nil {
		h.logger.Warn().Err(err).Msg("could not parse edit-doctor form")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Could not parse form: " + err.Error()})
	}

	if _, err := h.doctorService.Edit(c.Context(), id, form); err != nil {
		return renderFailure(c, err, "Doctor not found.")
	}
	return c.Redirect("/doctors", fiber.StatusSeeOther)
}

func (h *DoctorHandler) DeleteDoctor(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Doctor not found."})
	}

	if err := h.doctorService.Delete(c.Context(), id); err != nil {
		return renderFailure(c, err, "Doctor not found.")
	}
	return c.Redirect("/doctors", fiber.StatusSeeOther)
}

func RegisterDoctorRoutes(app *fiber.App, h *DoctorHandler) {
	app.Post("/addDoctor", h.AddDoctor)
	app.Get("/doctors", h.ListDoctors)
	app.Get("/editDoctor/:id", h.GetDoctor)
	app.Post("/editDoctor/:id", h.EditDoctor)
	app.Post("/deleteDoctor/:id", h.DeleteDoctor)
}
