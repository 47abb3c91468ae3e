package models

import "time"

type AppointmentStatus string

const (
	AppointmentScheduled  AppointmentStatus = "scheduled"
	AppointmentConfirmed  AppointmentStatus = "confirmed"
	AppointmentInProgress AppointmentStatus = "in_progress"
	AppointmentCompleted  AppointmentStatus = "completed"
	AppointmentCancelled  AppointmentStatus = "cancelled"
	AppointmentNoShow     AppointmentStatus = "no_show"
)

type Appointment struct {
	ID              int               `json:"id"`
	PatientID       int               `json:"patient_id"`
	DepartmentID    int               `json:"department_id"`
	DoctorID        *int              `json:"doctor_id,omitempty"`
	AppointmentDate string            `json:"appointment_date"`
	AppointmentTime string            `json:"appointment_time"`
	DurationMinutes int               `json:"duration_minutes"`
	AppointmentType string            `json:"appointment_type"`
	Priority        string            `json:"priority"`
	Status          AppointmentStatus `json:"status"`
	Reason          string            `json:"reason"`
	Notes           string            `json:"notes,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// AvailabilitySlot is one bookable slot returned by the availability endpoint.
type AvailabilitySlot struct {
	Date      string `json:"date"`
	Time      string `json:"time"`
	DoctorID  *int   `json:"doctor_id,omitempty"`
	Available bool   `json:"available"`
}
