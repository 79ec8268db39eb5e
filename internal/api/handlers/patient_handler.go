package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"hospital-records-service/internal/domain"
	"hospital-records-service/internal/domain/dtos"
	"hospital-records-service/internal/services"
)

// searchableFields are the query parameters accepted by the patient search;
// anything else on the query string is ignored.
var searchableFields = []string{"id", "name", "age", "phone", "address"}

type PatientHandler struct {
	patientService services.PatientServiceContract
	logger         zerolog.Logger
}

func NewPatientHandler(ps services.PatientServiceContract, logger zerolog.Logger) *PatientHandler {
	return &PatientHandler{
		patientService: ps,
		logger:         logger.With().Str("handler", "patients").Logger(),
	}
}

func (h *PatientHandler) AddPatient(c *fiber.Ctx) error {
	var form dtos.PatientForm
	if err := c.BodyParser(&form); err != nil {
		h.logger.Warn().Err(err).Msg("could not parse add-patient form")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Could not parse form: " + err.Error()})
	}

	record, err := h.patientService.Add(c.Context(), form)
	if err != nil {
		return renderFailure(c, err, "Patient not found.")
	}

	return c.Status(fiber.StatusCreated).JSON(dtos.ViewResponse{Status: "OK", Data: record})
}

func (h *PatientHandler) ListPatients(c *fiber.Ctx) error {
	patients, err := h.patientService.List(c.Context())
	if err != nil {
		return renderFailure(c, err, "Patient not found.")
	}
	return c.JSON(patients)
}

func (h *PatientHandler) SearchPatients(c *fiber.Ctx) error {
	criteria := make(map[string]string)
	for _, field := range searchableFields {
		if value := c.Query(field); value != "" {
			criteria[field] = value
		}
	}

	patients, err := h.patientService.Search(c.Context(), criteria)
	if err != nil {
		return renderFailure(c, err, "Patient not found.")
	}
	return c.JSON(patients)
}

func (h *PatientHandler) GetPatient(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Patient not found."})
	}

	record, err := h.patientService.Get(c.Context(), id)
	if err != nil {
		return renderFailure(c, err, "Patient not found.")
	}
	return c.JSON(record)
}

func (h *PatientHandler) EditPatient(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Patient not found."})
	}

	var form dtos.PatientForm
	if err := c.BodyParser(&form); err != nil {
		h.logger.Warn().Err(err).Msg("could not parse edit-patient form")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Could not parse form: " + err.Error()})
	}

	if _, err := h.patientService.Edit(c.Context(), id, form); err != nil {
		return renderFailure(c, err, "Patient not found.")
	}
	return c.Redirect("/patients", fiber.StatusSeeOther)
}

func (h *PatientHandler) DeletePatient(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Patient not found."})
	}

	if err := h.patientService.Delete(c.Context(), id); err != nil {
		return renderFailure(c, err, "Patient not found.")
	}
	return c.Redirect("/patients", fiber.StatusSeeOther)
}

func RegisterPatientRoutes(app *fiber.App, h *PatientHandler) {
	app.Post("/addPatient", h.AddPatient)
	app.Get("/patients", h.ListPatients)
	app.Get("/searchPatient", h.SearchPatients)
	app.Get("/editPatient/:id", h.GetPatient)
	app.Post("/editPatient/:id", h.EditPatient)
	app.Post("/deletePatient/:id", h.DeletePatient)
}

// renderFailure maps the domain error kinds onto the response contract:
// validation and duplicate failures redisplay the attempted input, a missing
// id is a 404, and storage failures are server errors.
func renderFailure(c *fiber.Ctx, err error, notFoundMsg string) error {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return c.Status(fiber.StatusBadRequest).JSON(dtos.ViewResponse{
			Status: "ERROR",
			Errors: validationErr.Messages,
			Data:   validationErr.Attempted,
		})
	}

	var duplicateErr *domain.DuplicateError
	if errors.As(err, &duplicateErr) {
		return c.Status(fiber.StatusBadRequest).JSON(dtos.ViewResponse{
			Status: "ERROR",
			Errors: []string{duplicateErr.Message},
			Data:   duplicateErr.Attempted,
		})
	}

	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": notFoundMsg})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
}
