package models

import "time"

type PatientProfile struct {
	ID                  int    `json:"id"`
	Name                string `json:"name"`
	DateOfBirth         string `json:"date_of_birth,omitempty"`
	Age                 int    `json:"age,omitempty"`
	Gender              string `json:"gender,omitempty"`
	Phone               string `json:"phone,omitempty"`
	Email               string `json:"email,omitempty"`
	Address             string `json:"address,omitempty"`
	City                string `json:"city,omitempty"`
	State               string `json:"state,omitempty"`
	ZipCode             string `json:"zip_code,omitempty"`
	MedicalRecordNumber string `json:"medical_record_number,omitempty"`

	EmergencyContactName         string `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone        string `json:"emergency_contact_phone,omitempty"`
	EmergencyContactRelationship string `json:"emergency_contact_relationship,omitempty"`

	BloodType          string `json:"blood_type,omitempty"`
	Allergies          string `json:"allergies,omitempty"`
	ChronicConditions  string `json:"chronic_conditions,omitempty"`
	CurrentMedications string `json:"current_medications,omitempty"`
	Condition          string `json:"condition,omitempty"`

	InsuranceProvider     string `json:"insurance_provider,omitempty"`
	InsurancePolicyNumber string `json:"insurance_policy_number,omitempty"`
	InsuranceGroupNumber  string `json:"insurance_group_number,omitempty"`

	AdmissionDate string `json:"admission_date,omitempty"`
	DischargeDate string `json:"discharge_date,omitempty"`
}

type MedicalRecord struct {
	ID             int    `json:"id"`
	PatientID      int    `json:"patient_id"`
	VisitDate      string `json:"visit_date"`
	DoctorID       *int   `json:"doctor_id,omitempty"`
	DepartmentID   int    `json:"department_id"`
	VisitType      string `json:"visit_type"`
	ChiefComplaint string `json:"chief_complaint"`
	Diagnosis      string `json:"diagnosis,omitempty"`
	Treatment      string `json:"treatment,omitempty"`

	BloodPressureSystolic  *int     `json:"blood_pressure_systolic,omitempty"`
	BloodPressureDiastolic *int     `json:"blood_pressure_diastolic,omitempty"`
	HeartRate              *int     `json:"heart_rate,omitempty"`
	Temperature            *float64 `json:"temperature,omitempty"`
	Weight                 *float64 `json:"weight,omitempty"`
	Height                 *float64 `json:"height,omitempty"`
	BMI                    *float64 `json:"bmi,omitempty"`

	LabResults            string    `json:"lab_results,omitempty"`
	Prescriptions         string    `json:"prescriptions,omitempty"`
	Notes                 string    `json:"notes,omitempty"`
	FollowUpInstructions  string    `json:"follow_up_instructions,omitempty"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}
