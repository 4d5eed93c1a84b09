package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"wardbook/internal/apperrors"
	"wardbook/internal/models"
	"wardbook/internal/repositories"
)

// WardService handles the patient, doctor, medication and stay records and
// the nimmt/behandelt associations between them.
type WardService struct {
	patients    *repositories.PatientRepository
	doctors     *repositories.DoctorRepository
	medications *repositories.MedicationRepository
	stays       *repositories.StayRepository
	takes       *repositories.TakesRepository
	treats      *repositories.TreatsRepository
	logger      *slog.Logger
}

func NewWardService(
	patients *repositories.PatientRepository,
	doctors *repositories.DoctorRepository,
	medications *repositories.MedicationRepository,
	stays *repositories.StayRepository,
	takes *repositories.TakesRepository,
	treats *repositories.TreatsRepository,
	logger *slog.Logger,
) *WardService {
	return &WardService{
		patients:    patients,
		doctors:     doctors,
		medications: medications,
		stays:       stays,
		takes:       takes,
		treats:      treats,
		logger:      logger,
	}
}

func (s *WardService) ListPatients(ctx context.Context) ([]models.Patient, error) {
	return s.patients.List(ctx)
}

func (s *WardService) CreatePatient(ctx context.Context, p *models.Patient) error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Nummer <= 0 {
		return apperrors.InvalidInput("patientennummer must be a positive number")
	}
	if p.Name == "" {
		return apperrors.InvalidInput("name is required")
	}
	if err := s.patients.Create(ctx, p); err != nil {
		return fmt.Errorf("failed to create patient %d: %w", p.Nummer, err)
	}
	s.logger.Info("patient created", "patientennummer", p.Nummer)
	return nil
}

// DeletePatient removes the patient and every association row referencing it.
func (s *WardService) DeletePatient(ctx context.Context, nummer int64) error {
	found, err := s.patients.Delete(ctx, nummer)
	if err != nil {
		return fmt.Errorf("failed to delete patient %d: %w", nummer, err)
	}
	if !found {
		return apperrors.NotFound(fmt.Sprintf("patient %d not found", nummer))
	}
	s.logger.Info("patient deleted", "patientennummer", nummer)
	return nil
}

func (s *WardService) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	return s.doctors.List(ctx)
}

func (s *WardService) CreateDoctor(ctx context.Context, d *models.Doctor) error {
	d.Name = strings.TrimSpace(d.Name)
	if d.Nummer <= 0 {
		return apperrors.InvalidInput("aerztenummer must be a positive number")
	}
	if d.Name == "" {
		return apperrors.InvalidInput("name is required")
	}
	if err := s.doctors.Create(ctx, d); err != nil {
		return fmt.Errorf("failed to create doctor %d: %w", d.Nummer, err)
	}
	s.logger.Info("doctor created", "aerztenummer", d.Nummer)
	return nil
}

func (s *WardService) DeleteDoctor(ctx context.Context, nummer int64) error {
	found, err := s.doctors.Delete(ctx, nummer)
	if err != nil {
		return fmt.Errorf("failed to delete doctor %d: %w", nummer, err)
	}
	if !found {
		return apperrors.NotFound(fmt.Sprintf("doctor %d not found", nummer))
	}
	s.logger.Info("doctor deleted", "aerztenummer", nummer)
	return nil
}

func (s *WardService) ListMedications(ctx context.Context) ([]models.Medication, error) {
	return s.medications.List(ctx)
}

func (s *WardService) CreateMedication(ctx context.Context, m *models.Medication) error {
	m.Fachname = strings.TrimSpace(m.Fachname)
	m.Dosierung = strings.TrimSpace(m.Dosierung)
	if m.Fachname == "" {
		return apperrors.InvalidInput("fachname is required")
	}
	if err := s.medications.Create(ctx, m); err != nil {
		return fmt.Errorf("failed to create medication %q: %w", m.Fachname, err)
	}
	s.logger.Info("medication created", "fachname", m.Fachname)
	return nil
}

func (s *WardService) DeleteMedication(ctx context.Context, fachname string) error {
	if fachname == "" {
		return apperrors.InvalidInput("fachname is required")
	}
	found, err := s.medications.Delete(ctx, fachname)
	if err != nil {
		return fmt.Errorf("failed to delete medication %q: %w", fachname, err)
	}
	if !found {
		return apperrors.NotFound(fmt.Sprintf("medication %q not found", fachname))
	}
	s.logger.Info("medication deleted", "fachname", fachname)
	return nil
}

func (s *WardService) ListStays(ctx context.Context) ([]models.Stay, error) {
	return s.stays.List(ctx)
}

func (s *WardService) CreateStay(ctx context.Context, st *models.Stay) error {
	if st.Bettnummer <= 0 {
		return apperrors.InvalidInput("bettnummer must be a positive number")
	}
	if _, err := time.Parse(time.DateOnly, st.Anfangsdatum); err != nil {
		return apperrors.InvalidInput("anfangsdatum must be formatted as YYYY-MM-DD")
	}
	if err := s.stays.Create(ctx, st); err != nil {
		return fmt.Errorf("failed to create stay for bed %d: %w", st.Bettnummer, err)
	}
	return nil
}

func (s *WardService) DeleteStay(ctx context.Context, bettnummer int64) error {
	found, err := s.stays.Delete(ctx, bettnummer)
	if err != nil {
		return fmt.Errorf("failed to delete stay for bed %d: %w", bettnummer, err)
	}
	if !found {
		return apperrors.NotFound(fmt.Sprintf("no stay for bed %d", bettnummer))
	}
	return nil
}

func (s *WardService) ListTakes(ctx context.Context) ([]models.TakesRow, error) {
	return s.takes.List(ctx)
}

func (s *WardService) CreateTakes(ctx context.Context, t models.Takes) error {
	if err := validateTakes(t); err != nil {
		return err
	}
	if err := s.takes.Create(ctx, t); err != nil {
		return fmt.Errorf("failed to link patient %d to medication %q: %w", t.Patientennummer, t.Fachname, err)
	}
	return nil
}

func (s *WardService) DeleteTakes(ctx context.Context, t models.Takes) error {
	if err := validateTakes(t); err != nil {
		return err
	}
	found, err := s.takes.Delete(ctx, t)
	if err != nil {
		return fmt.Errorf("failed to unlink patient %d from medication %q: %w", t.Patientennummer, t.Fachname, err)
	}
	if !found {
		return apperrors.NotFound(fmt.Sprintf("patient %d does not take %q", t.Patientennummer, t.Fachname))
	}
	return nil
}

func (s *WardService) ListTreats(ctx context.Context) ([]models.TreatsRow, error) {
	return s.treats.List(ctx)
}

func (s *WardService) CreateTreats(ctx context.Context, t models.Treats) error {
	if err := validateTreats(t); err != nil {
		return err
	}
	if err := s.treats.Create(ctx, t); err != nil {
		return fmt.Errorf("failed to link patient %d to doctor %d: %w", t.Patientennummer, t.Aerztenummer, err)
	}
	return nil
}

func (s *WardService) DeleteTreats(ctx context.Context, t models.Treats) error {
	if err := validateTreats(t); err != nil {
		return err
	}
	found, err := s.treats.Delete(ctx, t)
	if err != nil {
		return fmt.Errorf("failed to unlink patient %d from doctor %d: %w", t.Patientennummer, t.Aerztenummer, err)
	}
	if !found {
		return apperrors.NotFound(fmt.Sprintf("doctor %d does not treat patient %d", t.Aerztenummer, t.Patientennummer))
	}
	return nil
}

// FormOptions loads the dropdown entries for the association forms.
func (s *WardService) FormOptions(ctx context.Context) (*models.FormOptions, error) {
	patients, err := s.patients.Options(ctx)
	if err != nil {
		return nil, err
	}
	doctors, err := s.doctors.Options(ctx)
	if err != nil {
		return nil, err
	}
	meds, err := s.medications.Options(ctx)
	if err != nil {
		return nil, err
	}
	return &models.FormOptions{Patients: patients, Doctors: doctors, Medications: meds}, nil
}

func validateTakes(t models.Takes) error {
	if t.Patientennummer <= 0 || strings.TrimSpace(t.Fachname) == "" {
		return apperrors.InvalidInput("patientennummer and fachname are required")
	}
	return nil
}

func validateTreats(t models.Treats) error {
	if t.Patientennummer <= 0 || t.Aerztenummer <= 0 {
		return apperrors.InvalidInput("patientennummer and aerztenummer are required")
	}
	return nil
}
