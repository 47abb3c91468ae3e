package dashboard

import (
	"context"
	"fmt"
	"net/url"

	"hospital-ops/client/api"
	"hospital-ops/client/listview"
	"hospital-ops/client/models"
	"hospital-ops/client/workflow"
)

// Casual is the casual-worker view: only the work orders assigned to this
// worker, with the strict status flow and no create or assign controls.
type Casual struct {
	client   *api.Client
	workerID string

	WorkOrders *listview.View[models.WorkOrder]
	Workflow   *workflow.Engine
}

func NewCasual(client *api.Client, workerID string) *Casual {
	c := &Casual{
		client:   client,
		workerID: workerID,
		Workflow: workflow.NewWorkOrderEngine(workflow.PolicyStrict),
	}
	c.WorkOrders = listview.New(func(ctx context.Context) ([]models.WorkOrder, error) {
		var orders []models.WorkOrder
		path := "/work-order/list?assigned_to=" + url.QueryEscape(c.workerID)
		err := client.Get(ctx, path, &orders)
		return orders, err
	})
	return c
}

func (c *Casual) SetStatus(ctx context.Context, order models.WorkOrder, next models.WorkOrderStatus, actualHours *float64) error {
	path := fmt.Sprintf("/work-order/%d/status", order.ID)
	return c.Workflow.Transition(ctx, c.client, path, string(order.Status), string(next), actualHours, c.WorkOrders.Load)
}
