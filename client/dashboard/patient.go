package dashboard

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"hospital-ops/client/api"
	"hospital-ops/client/form"
	"hospital-ops/client/listview"
	"hospital-ops/client/models"
	"hospital-ops/client/workflow"
)

// AppointmentCreate is the scheduling form payload. The chosen slot is sent
// as-is; the backend is the one that knows whether it is still free.
type AppointmentCreate struct {
	PatientID       int    `json:"patient_id,omitempty"`
	DepartmentID    int    `json:"department_id" validate:"required"`
	AppointmentDate string `json:"appointment_date" validate:"required"`
	AppointmentTime string `json:"appointment_time" validate:"required"`
	DurationMinutes int    `json:"duration_minutes,omitempty"`
	AppointmentType string `json:"appointment_type" validate:"required"`
	Priority        string `json:"priority,omitempty"`
	Reason          string `json:"reason" validate:"required"`
	Notes           string `json:"notes,omitempty"`
}

// PatientTicketCreate is the patient-raised issue payload.
type PatientTicketCreate struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category,omitempty"`
	Priority    string `json:"priority,omitempty"`
}

// Patient is the patient portal view: own profile, own tickets, appointments
// and medical records.
type Patient struct {
	client *api.Client

	Tickets         *listview.View[models.Ticket]
	Appointments    *listview.View[models.Appointment]
	Workflow        *workflow.Engine
	TicketForm      *form.Flow[PatientTicketCreate]
	AppointmentForm *form.Flow[AppointmentCreate]

	profile models.PatientProfile
}

func NewPatient(client *api.Client) *Patient {
	p := &Patient{
		client:   client,
		Workflow: workflow.NewAppointmentEngine(workflow.PolicyStrict),
	}
	p.Tickets = listview.New(func(ctx context.Context) ([]models.Ticket, error) {
		var tickets []models.Ticket
		err := client.Get(ctx, "/patient/tickets", &tickets)
		return tickets, err
	})
	p.Appointments = listview.New(func(ctx context.Context) ([]models.Appointment, error) {
		var appts []models.Appointment
		err := client.Get(ctx, "/appointment/appointments", &appts)
		return appts, err
	})
	p.TicketForm = form.NewFlow(client, "/patient/ticket", PatientTicketCreate{}, "Failed to create ticket").
		OnSuccess(p.Tickets.Load)
	p.AppointmentForm = form.NewFlow(client, "/appointment/appointments", AppointmentCreate{}, "Failed to schedule appointment").
		OnSuccess(p.Appointments.Load).
		MergeIDs(func(draft *AppointmentCreate) {
			if draft.PatientID == 0 {
				draft.PatientID = p.profile.ID
			}
		})
	return p
}

// Load fetches the profile and then the ticket list, one after the other,
// the same order the source dashboard used.
func (p *Patient) Load(ctx context.Context) error {
	if err := p.LoadProfile(ctx); err != nil {
		return err
	}
	return p.Tickets.Load(ctx)
}

func (p *Patient) LoadProfile(ctx context.Context) error {
	if err := p.client.Get(ctx, "/patient/profile", &p.profile); err != nil {
		return fmt.Errorf("load profile: %w", err)
	}
	return nil
}

func (p *Patient) Profile() models.PatientProfile { return p.profile }

func (p *Patient) UpdateProfile(ctx context.Context, profile models.PatientProfile) error {
	if err := p.client.Put(ctx, "/patient/profile", profile, nil); err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return p.LoadProfile(ctx)
}

// Availability lists bookable slots for a department on a date.
func (p *Patient) Availability(ctx context.Context, departmentID int, date string) ([]models.AvailabilitySlot, error) {
	q := url.Values{}
	q.Set("department_id", strconv.Itoa(departmentID))
	q.Set("date", date)

	var slots []models.AvailabilitySlot
	err := p.client.Get(ctx, "/appointment/appointments/availability?"+q.Encode(), &slots)
	return slots, err
}

func (p *Patient) MedicalRecords(ctx context.Context) ([]models.MedicalRecord, error) {
	var records []models.MedicalRecord
	path := fmt.Sprintf("/medical-records/patient/%d/records", p.profile.ID)
	err := p.client.Get(ctx, path, &records)
	return records, err
}

// CancelAppointment is the one patient-side appointment transition.
func (p *Patient) CancelAppointment(ctx context.Context, appt models.Appointment) error {
	path := fmt.Sprintf("/appointment/appointments/%d/status", appt.ID)
	return p.Workflow.Transition(ctx, p.client, path, string(appt.Status), string(models.AppointmentCancelled), nil, p.Appointments.Load)
}
