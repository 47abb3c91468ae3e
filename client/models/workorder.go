package models

import "time"

type WorkOrderStatus string

const (
	WorkOrderOpen       WorkOrderStatus = "open"
	WorkOrderAssigned   WorkOrderStatus = "assigned"
	WorkOrderInProgress WorkOrderStatus = "in_progress"
	WorkOrderCompleted  WorkOrderStatus = "completed"
	WorkOrderClosed     WorkOrderStatus = "closed"
)

type WorkOrder struct {
	ID             int             `json:"id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Status         WorkOrderStatus `json:"status"`
	Priority       Priority        `json:"priority"`
	Category       string          `json:"category"`
	Location       string          `json:"location"`
	EquipmentID    *int            `json:"equipment_id,omitempty"`
	Requester      string          `json:"requester"`
	AssignedTo     *string         `json:"assigned_to,omitempty"`
	EstimatedHours *float64        `json:"estimated_hours,omitempty"`
	ActualHours    *float64        `json:"actual_hours,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	CompletedAt    *time.Time      `json:"completed_at,omitempty"`
	Comments       []Comment       `json:"comments,omitempty"`
	Attachments    []Attachment    `json:"attachments,omitempty"`
}

// Equipment tracked for preventive maintenance.
type Equipment struct {
	ID                  int        `json:"id"`
	Name                string     `json:"name"`
	Location            string     `json:"location"`
	Category            string     `json:"category"`
	MaintenanceSchedule string     `json:"maintenance_schedule,omitempty"`
	LastMaintenance     *time.Time `json:"last_maintenance,omitempty"`
	NextMaintenance     *time.Time `json:"next_maintenance,omitempty"`
}
