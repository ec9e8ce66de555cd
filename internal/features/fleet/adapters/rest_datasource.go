package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"courier-backoffice/internal/core/config"
	"courier-backoffice/internal/core/httpclient"
	"courier-backoffice/internal/features/fleet/domain"
)

// RESTDataSource implements ports.DataSource against a PostgREST-style fleet
// backend: row filters via query parameters (status=eq.X), PATCH row updates
// and Prefer: return=representation on inserts.
type RESTDataSource struct {
	// client is the HTTP client used for API requests.
	client *http.Client
	// config holds the backend connection details.
	config config.BackendConfig
}

// NewRESTDataSource creates a new instance of RESTDataSource.
func NewRESTDataSource(cfg config.BackendConfig) *RESTDataSource {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &RESTDataSource{
		client: httpclient.NewClient(timeout),
		config: cfg,
	}
}

// FetchConsignments retrieves consignment rows, optionally filtered by status.
func (a *RESTDataSource) FetchConsignments(ctx context.Context, status string) ([]domain.Consignment, error) {
	query := url.Values{"select": {"*"}}
	if status != "" {
		query.Set("status", "eq."+status)
	}

	var rows []restConsignment
	if err := a.doJSON(ctx, http.MethodGet, "consignments", query, nil, &rows); err != nil {
		return nil, fmt.Errorf("failed to fetch consignments: %w", err)
	}

	consignments := make([]domain.Consignment, len(rows))
	for i, row := range rows {
		consignments[i] = row.toDomain()
	}
	return consignments, nil
}

// FetchTrucks retrieves truck rows, optionally filtered by status.
func (a *RESTDataSource) FetchTrucks(ctx context.Context, status string) ([]domain.Truck, error) {
	query := url.Values{"select": {"*"}}
	if status != "" {
		query.Set("status", "eq."+status)
	}

	var rows []restTruck
	if err := a.doJSON(ctx, http.MethodGet, "trucks", query, nil, &rows); err != nil {
		return nil, fmt.Errorf("failed to fetch trucks: %w", err)
	}

	trucks := make([]domain.Truck, len(rows))
	for i, row := range rows {
		trucks[i] = row.toDomain()
	}
	return trucks, nil
}

// CreateConsignment inserts a pending consignment row and returns it.
func (a *RESTDataSource) CreateConsignment(ctx context.Context, draft domain.ConsignmentDraft) (*domain.Consignment, error) {
	body := map[string]interface{}{
		"customer":    draft.Customer,
		"type":        draft.Type,
		"weight":      draft.Weight,
		"destination": draft.Destination,
		"status":      string(domain.ConsignmentStatusPending),
		"date":        time.Now().Format(displayDateLayout),
	}
	if draft.Contact != "" {
		body["contact"] = draft.Contact
	}
	if draft.Email != "" {
		body["email"] = draft.Email
	}

	var rows []restConsignment
	if err := a.doJSON(ctx, http.MethodPost, "consignments", nil, body, &rows); err != nil {
		return nil, fmt.Errorf("failed to create consignment: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("backend returned no row for created consignment")
	}

	consignment := rows[0].toDomain()
	return &consignment, nil
}

// CreateTruck inserts an available truck row and returns it.
func (a *RESTDataSource) CreateTruck(ctx context.Context, draft domain.TruckDraft) (*domain.Truck, error) {
	body := map[string]interface{}{
		"driver":           draft.Driver,
		"type":             draft.Type,
		"capacity":         draft.Capacity,
		"location":         draft.Location,
		"status":           string(domain.TruckStatusAvailable),
		"last_maintenance": time.Now().Format(displayDateLayout),
	}

	var rows []restTruck
	if err := a.doJSON(ctx, http.MethodPost, "trucks", nil, body, &rows); err != nil {
		return nil, fmt.Errorf("failed to create truck: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("backend returned no row for created truck")
	}

	truck := rows[0].toDomain()
	return &truck, nil
}

// Allocate updates both rows to their in-transit state.
func (a *RESTDataSource) Allocate(ctx context.Context, consignmentID, truckID string) error {
	if err := a.patchRow(ctx, "consignments", consignmentID, map[string]interface{}{
		"status":   string(domain.ConsignmentStatusInTransit),
		"truck_id": truckID,
	}); err != nil {
		return fmt.Errorf("failed to update consignment %s: %w", consignmentID, err)
	}

	if err := a.patchRow(ctx, "trucks", truckID, map[string]interface{}{
		"status":                  string(domain.TruckStatusInTransit),
		"assigned_consignment_id": consignmentID,
	}); err != nil {
		return fmt.Errorf("failed to update truck %s: %w", truckID, err)
	}
	return nil
}

// MarkDelivered completes the consignment row and frees the linked truck row.
func (a *RESTDataSource) MarkDelivered(ctx context.Context, consignmentID string) error {
	query := url.Values{"select": {"*"}, "id": {"eq." + consignmentID}}
	var rows []restConsignment
	if err := a.doJSON(ctx, http.MethodGet, "consignments", query, nil, &rows); err != nil {
		return fmt.Errorf("failed to fetch consignment %s: %w", consignmentID, err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("consignment %s not found in backend", consignmentID)
	}

	if err := a.patchRow(ctx, "consignments", consignmentID, map[string]interface{}{
		"status":   string(domain.ConsignmentStatusDelivered),
		"truck_id": nil,
	}); err != nil {
		return fmt.Errorf("failed to update consignment %s: %w", consignmentID, err)
	}

	if rows[0].TruckID != nil {
		if err := a.patchRow(ctx, "trucks", *rows[0].TruckID, map[string]interface{}{
			"status":                  string(domain.TruckStatusAvailable),
			"assigned_consignment_id": nil,
		}); err != nil {
			return fmt.Errorf("failed to update truck %s: %w", *rows[0].TruckID, err)
		}
	}
	return nil
}

// MarkTruckAvailable frees the truck row and re-queues the linked consignment row.
func (a *RESTDataSource) MarkTruckAvailable(ctx context.Context, truckID string) error {
	query := url.Values{"select": {"*"}, "id": {"eq." + truckID}}
	var rows []restTruck
	if err := a.doJSON(ctx, http.MethodGet, "trucks", query, nil, &rows); err != nil {
		return fmt.Errorf("failed to fetch truck %s: %w", truckID, err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("truck %s not found in backend", truckID)
	}

	if err := a.patchRow(ctx, "trucks", truckID, map[string]interface{}{
		"status":                  string(domain.TruckStatusAvailable),
		"assigned_consignment_id": nil,
	}); err != nil {
		return fmt.Errorf("failed to update truck %s: %w", truckID, err)
	}

	if rows[0].AssignedConsignmentID != nil {
		if err := a.patchRow(ctx, "consignments", *rows[0].AssignedConsignmentID, map[string]interface{}{
			"status":   string(domain.ConsignmentStatusPending),
			"truck_id": nil,
		}); err != nil {
			return fmt.Errorf("failed to update consignment %s: %w", *rows[0].AssignedConsignmentID, err)
		}
	}
	return nil
}

// patchRow updates a single row identified by id.
func (a *RESTDataSource) patchRow(ctx context.Context, table, id string, fields map[string]interface{}) error {
	query := url.Values{"id": {"eq." + id}}
	return a.doJSON(ctx, http.MethodPatch, table, query, fields, nil)
}

// doJSON executes one backend request and decodes the response into out when
// out is non-nil.
func (a *RESTDataSource) doJSON(ctx context.Context, method, table string, query url.Values, body interface{}, out interface{}) error {
	endpoint := fmt.Sprintf("%s/rest/v1/%s", a.config.URL, table)
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("apikey", a.config.APIKey)
	req.Header.Set("Authorization", "Bearer "+a.config.APIKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method == http.MethodPost {
		req.Header.Set("Prefer", "return=representation")
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("backend returned status: %d", resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// internal structs for mapping

// restConsignment represents a consignment row from the fleet backend.
type restConsignment struct {
	ID          string  `json:"id"`
	Customer    string  `json:"customer"`
	Type        string  `json:"type"`
	Weight      string  `json:"weight"`
	Destination string  `json:"destination"`
	Status      string  `json:"status"`
	Date        string  `json:"date"`
	TruckID     *string `json:"truck_id"`
	Contact     string  `json:"contact"`
	Email       string  `json:"email"`
}

func (r restConsignment) toDomain() domain.Consignment {
	return domain.Consignment{
		ID:          r.ID,
		Customer:    r.Customer,
		Type:        r.Type,
		Weight:      r.Weight,
		Destination: r.Destination,
		Status:      domain.ConsignmentStatus(r.Status),
		Date:        r.Date,
		TruckID:     r.TruckID,
		Contact:     r.Contact,
		Email:       r.Email,
	}
}

// restTruck represents a truck row from the fleet backend.
type restTruck struct {
	ID                    string  `json:"id"`
	Driver                string  `json:"driver"`
	Type                  string  `json:"type"`
	Capacity              string  `json:"capacity"`
	Location              string  `json:"location"`
	Status                string  `json:"status"`
	LastMaintenance       string  `json:"last_maintenance"`
	AssignedConsignmentID *string `json:"assigned_consignment_id"`
}

func (r restTruck) toDomain() domain.Truck {
	return domain.Truck{
		ID:                    r.ID,
		Driver:                r.Driver,
		Type:                  r.Type,
		Capacity:              r.Capacity,
		Location:              r.Location,
		Status:                domain.TruckStatus(r.Status),
		LastMaintenance:       r.LastMaintenance,
		AssignedConsignmentID: r.AssignedConsignmentID,
	}
}
