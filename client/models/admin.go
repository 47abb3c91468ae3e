package models

import (
	"errors"
	"time"
)

type CasualWorker struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Department string    `json:"department"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (w *CasualWorker) Validate() error {
	if w.Name == "" || w.Email == "" || w.Phone == "" || w.Department == "" {
		return errors.New("missing required casual worker fields")
	}
	return nil
}

type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// WorkingHours brackets the window inside which work orders get scheduled.
type WorkingHours struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// AdminSettings is the system-wide configuration page payload, fetched and
// written back whole.
type AdminSettings struct {
	SystemName         string       `json:"systemName"`
	EmailNotifications bool         `json:"emailNotifications"`
	AutoAssignment     bool         `json:"autoAssignment"`
	MaintenanceMode    bool         `json:"maintenanceMode"`
	MaxTicketsPerDay   int          `json:"maxTicketsPerDay"`
	WorkingHours       WorkingHours `json:"workingHours"`
}

// DepartmentStat is one department's row in the reports view.
type DepartmentStat struct {
	Department string `json:"department"`
	Tickets    int    `json:"tickets"`
	Resolved   int    `json:"resolved"`
}

// ActivityEntry is one line of the recent-activity feed.
type ActivityEntry struct {
	Timestamp   time.Time `json:"timestamp"`
	Description string    `json:"description"`
}

// AdminReport is the /admin/reports payload for a date range.
type AdminReport struct {
	TotalTickets      int              `json:"totalTickets"`
	ResolvedTickets   int              `json:"resolvedTickets"`
	PendingTickets    int              `json:"pendingTickets"`
	AvgResolutionTime string           `json:"avgResolutionTime"`
	DepartmentStats   []DepartmentStat `json:"departmentStats"`
	RecentActivity    []ActivityEntry  `json:"recentActivity"`
}

// AdminStats mirrors the /admin/stats payload.
type AdminStats struct {
	Patients      int `json:"patients"`
	Departments   int `json:"departments"`
	Tickets       int `json:"tickets"`
	CasualWorkers int `json:"casual_workers"`
	Pending       int `json:"pending"`
	Assigned      int `json:"assigned"`
	Resolved      int `json:"resolved"`
}
