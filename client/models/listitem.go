package models

// Accessors used by the generic list view to search and count entities.

func (t Ticket) ItemID() int             { return t.ID }
func (t Ticket) ItemTitle() string       { return t.Title }
func (t Ticket) ItemDescription() string { return t.Description }
func (t Ticket) ItemStatus() string      { return string(t.Status) }

func (w WorkOrder) ItemID() int             { return w.ID }
func (w WorkOrder) ItemTitle() string       { return w.Title }
func (w WorkOrder) ItemDescription() string { return w.Description }
func (w WorkOrder) ItemStatus() string      { return string(w.Status) }

func (a Appointment) ItemID() int             { return a.ID }
func (a Appointment) ItemTitle() string       { return a.AppointmentType }
func (a Appointment) ItemDescription() string { return a.Reason }
func (a Appointment) ItemStatus() string      { return string(a.Status) }

// Casual workers carry no status lattice; the status accessor is blank so
// only the "all" filter applies to them.
func (w CasualWorker) ItemID() int             { return w.ID }
func (w CasualWorker) ItemTitle() string       { return w.Name }
func (w CasualWorker) ItemDescription() string { return w.Department }
func (w CasualWorker) ItemStatus() string      { return "" }
