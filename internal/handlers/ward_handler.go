package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"wardbook/internal/apperrors"
	"wardbook/internal/models"
	"wardbook/internal/responses"
	"wardbook/internal/services"
)

type patientRequest struct {
	Patientennummer      int64  `form:"patientennummer" json:"patientennummer"`
	Alter                string `form:"alter" json:"alter"`
	Name                 string `form:"name" json:"name"`
	Krankenkasse         string `form:"krankenkasse" json:"krankenkasse"`
	Krankheiten          string `form:"krankheiten" json:"krankheiten"`
	EhemaligeAufenthalte string `form:"ehemalige_aufenthalte" json:"ehemalige_aufenthalte"`
	EhemaligeMedikamente string `form:"ehemalige_medikamente" json:"ehemalige_medikamente"`
	Bettnummer           string `form:"bettnummer" json:"bettnummer"`
}

type doctorRequest struct {
	Aerztenummer    int64  `form:"aerztenummer" json:"aerztenummer"`
	Name            string `form:"name" json:"name"`
	Spezialisierung string `form:"spezialisierung" json:"spezialisierung"`
	Anstellzeit     string `form:"anstellzeit" json:"anstellzeit"`
}

// WardHandler serves the patient, doctor, medication, stay and association
// records.
type WardHandler struct {
	wardService *services.WardService
}

func NewWardHandler(wardService *services.WardService) *WardHandler {
	return &WardHandler{wardService: wardService}
}

// ListPatients handles GET /api/v1/patients
func (h *WardHandler) ListPatients(c *gin.Context) {
	patients, err := h.wardService.ListPatients(c.Request.Context())
	if err != nil {
		responses.Error(c, err, "Failed to load patients")
		return
	}
	responses.Success(c, http.StatusOK, patients, "")
}

// CreatePatient handles POST /api/v1/patients
func (h *WardHandler) CreatePatient(c *gin.Context) {
	var req patientRequest
	if err := c.ShouldBind(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid patient")
		return
	}

	alter, err := optionalInt("alter", req.Alter)
	if err != nil {
		responses.Error(c, err, "Invalid patient")
		return
	}
	bett, err := optionalInt("bettnummer", req.Bettnummer)
	if err != nil {
		responses.Error(c, err, "Invalid patient")
		return
	}

	patient := &models.Patient{
		Nummer:               req.Patientennummer,
		Alter:                alter,
		Name:                 req.Name,
		Krankenkasse:         req.Krankenkasse,
		Krankheiten:          req.Krankheiten,
		EhemaligeAufenthalte: req.EhemaligeAufenthalte,
		EhemaligeMedikamente: req.EhemaligeMedikamente,
		Bettnummer:           bett,
	}
	if err := h.wardService.CreatePatient(c.Request.Context(), patient); err != nil {
		responses.Error(c, err, "Could not create patient")
		return
	}
	responses.Success(c, http.StatusCreated, patient, "Patient created")
}

// DeletePatient handles POST /api/v1/patients/delete
func (h *WardHandler) DeletePatient(c *gin.Context) {
	var req struct {
		Patientennummer int64 `form:"patientennummer" json:"patientennummer" binding:"required"`
	}
	if err := c.ShouldBind(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Patient number is required")
		return
	}
	if err := h.wardService.DeletePatient(c.Request.Context(), req.Patientennummer); err != nil {
		responses.Error(c, err, "Could not delete patient")
		return
	}
	responses.Success(c, http.StatusOK, nil, "Patient deleted")
}

// ListDoctors handles GET /api/v1/doctors
func (h *WardHandler) ListDoctors(c *gin.Context) {
	doctors, err := h.wardService.ListDoctors(c.Request.Context())
	if err != nil {
		responses.Error(c, err, "Failed to load doctors")
		return
	}
	responses.Success(c, http.StatusOK, doctors, "")
}

// CreateDoctor handles POST /api/v1/doctors
func (h *WardHandler) CreateDoctor(c *gin.Context) {
	var req doctorRequest
	if err := c.ShouldBind(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid doctor")
		return
	}
	anstellzeit, err := optionalInt("anstellzeit", req.Anstellzeit)
	if err != nil {
		responses.Error(c, err, "Invalid doctor")
		return
	}

	doctor := &models.Doctor{
		Nummer:          req.Aerztenummer,
		Name:            req.Name,
		Spezialisierung: req.Spezialisierung,
		Anstellzeit:     anstellzeit,
	}
	if err := h.wardService.CreateDoctor(c.Request.Context(), doctor); err != nil {
		responses.Error(c, err, "Could not create doctor")
		return
	}
	responses.Success(c, http.StatusCreated, doctor, "Doctor created")
}

// DeleteDoctor handles POST /api/v1/doctors/delete
func (h *WardHandler) DeleteDoctor(c *gin.Context) {
	var req struct {
		Aerztenummer int64 `form:"aerztenummer" json:"aerztenummer" binding:"required"`
	}
	if err := c.ShouldBind(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Doctor number is required")
		return
	}
	if err := h.wardService.DeleteDoctor(c.Request.Context(), req.Aerztenummer); err != nil {
		responses.Error(c, err, "Could not delete doctor")
		return
	}
	responses.Success(c, http.StatusOK, nil, "Doctor deleted")
}

// ListMedications handles GET /api/v1/medications
func (h *WardHandler) ListMedications(c *gin.Context) {
	meds, err := h.wardService.ListMedications(c.Request.Context())
	if err != nil {
		responses.Error(c, err, "Failed to load medications")
		return
	}
	responses.Success(c, http.StatusOK, meds, "")
}

// CreateMedication handles POST /api/v1/medications
func (h *WardHandler) CreateMedication(c *gin.Context) {
	var med models.Medication
	if err := c.ShouldBind(&med); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid medication")
		return
	}
	if err := h.wardService.CreateMedication(c.Request.Context(), &med); err != nil {
		responses.Error(c, err, "Could not create medication")
		return
	}
	responses.Success(c, http.StatusCreated, med, "Medication created")
}

// DeleteMedication handles POST /api/v1/medications/delete
func (h *WardHandler) DeleteMedication(c *gin.Context) {
	var req struct {
		Fachname string `form:"fachname" json:"fachname" binding:"required"`
	}
	if err := c.ShouldBind(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Medication name is required")
		return
	}
	if err := h.wardService.DeleteMedication(c.Request.Context(), req.Fachname); err != nil {
		responses.Error(c, err, "Could not delete medication")
		return
	}
	responses.Success(c, http.StatusOK, nil, "Medication deleted")
}

// ListStays handles GET /api/v1/stays
func (h *WardHandler) ListStays(c *gin.Context) {
	stays, err := h.wardService.ListStays(c.Request.Context())
	if err != nil {
		responses.Error(c, err, "Failed to load stays")
		return
	}
	responses.Success(c, http.StatusOK, stays, "")
}

// CreateStay handles POST /api/v1/stays
func (h *WardHandler) CreateStay(c *gin.Context) {
	var stay models.Stay
	if err := c.ShouldBind(&stay); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid stay")
		return
	}
	if err := h.wardService.CreateStay(c.Request.Context(), &stay); err != nil {
		responses.Error(c, err, "Could not create stay")
		return
	}
	responses.Success(c, http.StatusCreated, stay, "Stay created")
}

// DeleteStay handles POST /api/v1/stays/delete
func (h *WardHandler) DeleteStay(c *gin.Context) {
	var req struct {
		Bettnummer int64 `form:"bettnummer" json:"bettnummer" binding:"required"`
	}
	if err := c.ShouldBind(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Bed number is required")
		return
	}
	if err := h.wardService.DeleteStay(c.Request.Context(), req.Bettnummer); err != nil {
		responses.Error(c, err, "Could not delete stay")
		return
	}
	responses.Success(c, http.StatusOK, nil, "Stay deleted")
}

// ListTakes handles GET /api/v1/takes
func (h *WardHandler) ListTakes(c *gin.Context) {
	rows, err := h.wardService.ListTakes(c.Request.Context())
	if err != nil {
		responses.Error(c, err, "Failed to load medication assignments")
		return
	}
	responses.Success(c, http.StatusOK, rows, "")
}

// CreateTakes handles POST /api/v1/takes
func (h *WardHandler) CreateTakes(c *gin.Context) {
	var takes models.Takes
	if err := c.ShouldBind(&takes); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid medication assignment")
		return
	}
	if err := h.wardService.CreateTakes(c.Request.Context(), takes); err != nil {
		responses.Error(c, err, "Could not assign medication")
		return
	}
	responses.Success(c, http.StatusCreated, takes, "Medication assigned")
}

// DeleteTakes handles POST /api/v1/takes/delete
func (h *WardHandler) DeleteTakes(c *gin.Context) {
	var takes models.Takes
	if err := c.ShouldBind(&takes); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid medication assignment")
		return
	}
	if err := h.wardService.DeleteTakes(c.Request.Context(), takes); err != nil {
		responses.Error(c, err, "Could not remove medication assignment")
		return
	}
	responses.Success(c, http.StatusOK, nil, "Medication assignment removed")
}

// ListTreats handles GET /api/v1/treats
func (h *WardHandler) ListTreats(c *gin.Context) {
	rows, err := h.wardService.ListTreats(c.Request.Context())
	if err != nil {
		responses.Error(c, err, "Failed to load treatments")
		return
	}
	responses.Success(c, http.StatusOK, rows, "")
}

// CreateTreats handles POST /api/v1/treats
func (h *WardHandler) CreateTreats(c *gin.Context) {
	var treats models.Treats
	if err := c.ShouldBind(&treats); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid treatment")
		return
	}
	if err := h.wardService.CreateTreats(c.Request.Context(), treats); err != nil {
		responses.Error(c, err, "Could not assign doctor")
		return
	}
	responses.Success(c, http.StatusCreated, treats, "Doctor assigned")
}

// DeleteTreats handles POST /api/v1/treats/delete
func (h *WardHandler) DeleteTreats(c *gin.Context) {
	var treats models.Treats
	if err := c.ShouldBind(&treats); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid treatment")
		return
	}
	if err := h.wardService.DeleteTreats(c.Request.Context(), treats); err != nil {
		responses.Error(c, err, "Could not remove treatment")
		return
	}
	responses.Success(c, http.StatusOK, nil, "Treatment removed")
}

// FormOptions handles GET /api/v1/form-options
func (h *WardHandler) FormOptions(c *gin.Context) {
	opts, err := h.wardService.FormOptions(c.Request.Context())
	if err != nil {
		responses.Error(c, err, "Failed to load form options")
		return
	}
	responses.Success(c, http.StatusOK, opts, "")
}

// optionalInt parses an optional numeric form field; empty means NULL.
func optionalInt(field, raw string) (*int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, apperrors.InvalidInput(field + " must be a number")
	}
	return &n, nil
}
