package models

// Patient matches the patient table.
type Patient struct {
	Nummer               int64  `json:"patientennummer"`
	Alter                *int64 `json:"alter"`
	Name                 string `json:"name"`
	Krankenkasse         string `json:"krankenkasse"`
	Krankheiten          string `json:"krankheiten"`
	EhemaligeAufenthalte string `json:"ehemalige_aufenthalte"`
	EhemaligeMedikamente string `json:"ehemalige_medikamente"`
	Bettnummer           *int64 `json:"bettnummer"`
}

// Doctor matches the arzt table.
type Doctor struct {
	Nummer          int64  `json:"aerztenummer"`
	Name            string `json:"name"`
	Spezialisierung string `json:"spezialisierung"`
	Anstellzeit     *int64 `json:"anstellzeit"`
}

type Medication struct {
	Fachname  string `form:"fachname" json:"fachname"`
	Dosierung string `form:"dosierung" json:"dosierung"`
}

// Stay is one row of aktuellerAufenthalt. Anfangsdatum is YYYY-MM-DD.
type Stay struct {
	Bettnummer   int64  `form:"bettnummer" json:"bettnummer"`
	Pflegebedarf string `form:"pflegebedarf" json:"pflegebedarf"`
	Anfangsdatum string `form:"anfangsdatum" json:"anfangsdatum"`
}

// Takes links a patient to a medication (nimmt).
type Takes struct {
	Patientennummer int64  `form:"patientennummer" json:"patientennummer"`
	Fachname        string `form:"fachname" json:"fachname"`
}

// TakesRow is a Takes joined with patient name and dosage for listing.
type TakesRow struct {
	Takes
	PatientName string `json:"patient_name"`
	Dosierung   string `json:"dosierung"`
}

// Treats links a patient to a doctor (behandelt).
type Treats struct {
	Patientennummer int64 `form:"patientennummer" json:"patientennummer"`
	Aerztenummer    int64 `form:"aerztenummer" json:"aerztenummer"`
}

type TreatsRow struct {
	Treats
	PatientName string `json:"patient_name"`
	DoctorName  string `json:"doctor_name"`
}

// Option is one dropdown entry.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type FormOptions struct {
	Patients    []Option `json:"patients"`
	Doctors     []Option `json:"doctors"`
	Medications []Option `json:"medications"`
}
