package dashboard

import (
	"context"
	"fmt"
	"net/url"

	"hospital-ops/client/api"
	"hospital-ops/client/listview"
	"hospital-ops/client/models"
	"hospital-ops/client/thread"
	"hospital-ops/client/workflow"
)

// Technician categories match the backend's work-order taxonomy.
const (
	CategoryElectrical = "electrical"
	CategoryMachinery  = "machinery"
	CategoryPlumbing   = "plumbing"
	CategoryHVAC       = "hvac"
	CategoryFacilities = "facilities"
)

// Technician is the electrician/mechanical view: one instance per trade,
// scoped by work-order category. Status advances monotonically through the
// work-order lattice, with actual hours logged on completion.
type Technician struct {
	client   *api.Client
	category string

	WorkOrders *listview.View[models.WorkOrder]
	Workflow   *workflow.Engine
}

func NewTechnician(client *api.Client, category string) *Technician {
	t := &Technician{
		client:   client,
		category: category,
		Workflow: workflow.NewWorkOrderEngine(workflow.PolicyStrict),
	}
	t.WorkOrders = listview.New(func(ctx context.Context) ([]models.WorkOrder, error) {
		var orders []models.WorkOrder
		path := "/work-order/list"
		if t.category != "" {
			path += "?category=" + url.QueryEscape(t.category)
		}
		err := client.Get(ctx, path, &orders)
		return orders, err
	})
	return t
}

func NewElectrician(client *api.Client) *Technician {
	return NewTechnician(client, CategoryElectrical)
}

func NewMechanical(client *api.Client) *Technician {
	return NewTechnician(client, CategoryMachinery)
}

// Equipment lists the tracked equipment for this trade's category.
func (t *Technician) Equipment(ctx context.Context) ([]models.Equipment, error) {
	path := "/equipment"
	if t.category != "" {
		path += "?category=" + url.QueryEscape(t.category)
	}

	var equipment []models.Equipment
	err := t.client.Get(ctx, path, &equipment)
	return equipment, err
}

// EquipmentDue lists the equipment whose preventive maintenance window has
// arrived.
func (t *Technician) EquipmentDue(ctx context.Context) ([]models.Equipment, error) {
	var equipment []models.Equipment
	err := t.client.Get(ctx, "/equipment/due-for-maintenance", &equipment)
	return equipment, err
}

// RecordMaintenance logs a completed maintenance visit on one unit.
func (t *Technician) RecordMaintenance(ctx context.Context, equipmentID int, notes string) error {
	body := map[string]string{"notes": notes}
	path := fmt.Sprintf("/equipment/%d/maintenance", equipmentID)
	if err := t.client.Post(ctx, path, body, nil); err != nil {
		return fmt.Errorf("record maintenance: %w", err)
	}
	return nil
}

func (t *Technician) WorkOrder(ctx context.Context, id int) (models.WorkOrder, error) {
	var order models.WorkOrder
	err := t.client.Get(ctx, fmt.Sprintf("/work-order/%d", id), &order)
	return order, err
}

// SetStatus advances one work order. actualHours is only sent on the
// completed and closed transitions; elsewhere it is dropped.
func (t *Technician) SetStatus(ctx context.Context, order models.WorkOrder, next models.WorkOrderStatus, actualHours *float64) error {
	path := fmt.Sprintf("/work-order/%d/status", order.ID)
	return t.Workflow.Transition(ctx, t.client, path, string(order.Status), string(next), actualHours, t.WorkOrders.Load)
}

func (t *Technician) Assign(ctx context.Context, orderID int, assignee string) error {
	body := map[string]string{"assigned_to": assignee}
	if err := t.client.Put(ctx, fmt.Sprintf("/work-order/%d/assign", orderID), body, nil); err != nil {
		return fmt.Errorf("assign work order: %w", err)
	}
	return t.WorkOrders.Load(ctx)
}

func (t *Technician) SetPriority(ctx context.Context, orderID int, priority models.Priority) error {
	body := map[string]string{"priority": string(priority)}
	if err := t.client.Put(ctx, fmt.Sprintf("/work-order/%d/priority", orderID), body, nil); err != nil {
		return fmt.Errorf("set work order priority: %w", err)
	}
	return t.WorkOrders.Load(ctx)
}

// Thread opens the comment/attachment sub-thread for one work order.
// Comments come back embedded in the detail record.
func (t *Technician) Thread(orderID int) *thread.Thread {
	detail := fmt.Sprintf("/work-order/%d", orderID)
	return thread.New(t.client,
		fmt.Sprintf("/work-order/%d/comment", orderID),
		"",
		fmt.Sprintf("/work-order/%d/attachment", orderID),
		detail,
	)
}
