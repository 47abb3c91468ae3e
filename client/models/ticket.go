package models

import "time"

type TicketStatus string

const (
	TicketOpen       TicketStatus = "open"
	TicketInProgress TicketStatus = "in_progress"
	TicketClosed     TicketStatus = "closed"
)

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// PatientImpact grades how strongly an issue affects patient care.
type PatientImpact string

const (
	ImpactNone     PatientImpact = "none"
	ImpactMinor    PatientImpact = "minor"
	ImpactModerate PatientImpact = "moderate"
	ImpactSevere   PatientImpact = "severe"
	ImpactCritical PatientImpact = "critical"
)

type Ticket struct {
	ID               int           `json:"id"`
	Title            string        `json:"title"`
	Description      string        `json:"description"`
	Status           TicketStatus  `json:"status"`
	Priority         Priority      `json:"priority"`
	Category         string        `json:"category"`
	Department       string        `json:"department,omitempty"`
	Patient          string        `json:"patient,omitempty"`
	AssignedTo       *string       `json:"assigned_to,omitempty"`
	LocationDetails  string        `json:"location_details,omitempty"`
	EquipmentID      string        `json:"equipment_id,omitempty"`
	PatientImpact    PatientImpact `json:"patient_impact,omitempty"`
	PatientsAffected int           `json:"patients_affected,omitempty"`
	TimeSensitivity  string        `json:"time_sensitivity,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
	ResolvedAt       *time.Time    `json:"resolved_at,omitempty"`
	Comments         []Comment     `json:"comments,omitempty"`
	Attachments      []Attachment  `json:"attachments,omitempty"`
}

type Comment struct {
	ID        int       `json:"id"`
	User      string    `json:"user"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type Attachment struct {
	ID         int       `json:"id"`
	Filename   string    `json:"filename"`
	FileSize   int64     `json:"file_size"`
	FileType   string    `json:"file_type"`
	UploadedBy string    `json:"uploaded_by"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// TicketTemplate is a department-defined preset for recurring issues.
type TicketTemplate struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category"`
	Priority    Priority `json:"priority"`
	IsActive    bool     `json:"is_active"`
}
