package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tavolo/backoffice/internal/client"
	"github.com/tavolo/backoffice/internal/model"
	"github.com/tavolo/backoffice/internal/schedule"
)

// fakeBackend serves canned responses for the routes a test exercises.
func fakeBackend(t *testing.T, routes map[string]string) *client.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path
		body, ok := routes[key]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"not found"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return client.New(srv.URL, "", time.Second)
}

func newContext(t *testing.T, method, target string, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

const reservationsJSON = `{"reservations":[
	{"id":"early","name":"Mr Smith","phone":"0111","numberOfGuests":2,"tableId":"T1","date":"2024-03-15T09:30:00Z","status":"confirmed"},
	{"id":"noon","name":"Mrs Doe","phone":"0222","numberOfGuests":4,"tableId":"T2","date":"2024-03-15T12:00:00Z","status":"pending"},
	{"id":"dinner","name":"Dr Lee","phone":"0333","numberOfGuests":3,"tableId":"T1","date":"2024-03-15T18:00:00Z","status":"confirmed"},
	{"id":"other-day","name":"Ms Ruiz","phone":"0444","numberOfGuests":2,"tableId":"T3","date":"2024-03-16T10:00:00Z","status":"confirmed"},
	{"id":"broken","name":"Mx Vo","phone":"0555","numberOfGuests":1,"tableId":"T4","date":"not-a-date","status":"pending"}
]}`

func TestReservationList(t *testing.T) {
	h := NewReservationHandler(fakeBackend(t, map[string]string{
		"GET /reservations": reservationsJSON,
	}), "")
	c, rec := newContext(t, http.MethodGet, "/v1/reservations?date=2024-03-15", "")

	if err := h.List(c); err != nil {
		t.Fatalf("List: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	var out struct {
		Date      string                       `json:"date"`
		Morning   []model.FormattedReservation `json:"morning"`
		Afternoon []model.FormattedReservation `json:"afternoon"`
		Evening   []model.FormattedReservation `json:"evening"`
	}
	decodeBody(t, rec, &out)
	if out.Date != "2024-03-15" {
		t.Errorf("date = %q", out.Date)
	}
	if len(out.Morning) != 1 || out.Morning[0].ID != "early" || out.Morning[0].Time != "9:30am" {
		t.Errorf("morning = %+v", out.Morning)
	}
	if len(out.Afternoon) != 1 || out.Afternoon[0].ID != "noon" {
		t.Errorf("afternoon = %+v", out.Afternoon)
	}
	if len(out.Evening) != 1 || out.Evening[0].ID != "dinner" || out.Evening[0].Time != "6:00pm" {
		t.Errorf("evening = %+v", out.Evening)
	}
}

func TestReservationListBadDate(t *testing.T) {
	h := NewReservationHandler(fakeBackend(t, nil), "")
	c, rec := newContext(t, http.MethodGet, "/v1/reservations?date=15-03-2024", "")
	if err := h.List(c); err != nil {
		t.Fatalf("List: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestReservationCreateValidation(t *testing.T) {
	h := NewReservationHandler(fakeBackend(t, nil), "")
	cases := []struct {
		name string
		body string
	}{
		{"missing name", `{"phone":"0123","persons":2}`},
		{"missing phone", `{"title":"Mr","name":"Smith","persons":2}`},
		{"zero persons", `{"title":"Mr","name":"Smith","phone":"0123"}`},
		{"negative persons", `{"title":"Mr","name":"Smith","phone":"0123","persons":-1}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newContext(t, http.MethodPost, "/v1/reservations", tc.body)
			if err := h.Create(c); err != nil {
				t.Fatalf("Create: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestReservationCreatePassesThrough(t *testing.T) {
	h := NewReservationHandler(fakeBackend(t, map[string]string{
		"POST /reservation": `{"id":"r9","name":"Mr Smith","phone":"0123","numberOfGuests":2,"tableId":"T1","date":"2024-03-15T19:00:00Z","status":"pending"}`,
	}), "")
	c, rec := newContext(t, http.MethodPost, "/v1/reservations",
		`{"title":"Mr","name":"Smith","phone":"0123","persons":2,"tableId":"T1","date":"2024-03-15","time":"19:00"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	var created model.Reservation
	decodeBody(t, rec, &created)
	if created.ID != "r9" || created.Status != model.StatusPending {
		t.Errorf("created = %+v", created)
	}
}

func TestReservationUpdateValidation(t *testing.T) {
	// an update that binds to zero values would blank the stored name,
	// phone and guest count at the backend, so it must be rejected before
	// the call is made
	h := NewReservationHandler(fakeBackend(t, nil), "")
	cases := []struct {
		name string
		body string
	}{
		{"empty body", `{}`},
		{"missing name", `{"phone":"0123","persons":2}`},
		{"missing phone", `{"title":"Mr","name":"Smith","persons":2}`},
		{"zero persons", `{"title":"Mr","name":"Smith","phone":"0123"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newContext(t, http.MethodPut, "/v1/reservations/r1", tc.body)
			c.SetParamNames("id")
			c.SetParamValues("r1")
			if err := h.Update(c); err != nil {
				t.Fatalf("Update: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestReservationUpdatePassesThrough(t *testing.T) {
	h := NewReservationHandler(fakeBackend(t, map[string]string{
		"PUT /reservation/r1": `{"id":"r1","name":"Mr Smith","phone":"0999","numberOfGuests":5,"tableId":"T1","date":"2024-03-15T19:00:00Z","status":"confirmed"}`,
	}), "")
	c, rec := newContext(t, http.MethodPut, "/v1/reservations/r1",
		`{"title":"Mr","name":"Smith","phone":"0999","persons":5}`)
	c.SetParamNames("id")
	c.SetParamValues("r1")
	if err := h.Update(c); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	var updated model.Reservation
	decodeBody(t, rec, &updated)
	if updated.ID != "r1" || updated.Phone != "0999" || updated.NumberOfGuests != 5 {
		t.Errorf("updated = %+v", updated)
	}
}

func TestBackendErrorMirrored(t *testing.T) {
	// the fake backend 404s unknown routes with an error envelope; the
	// handler must mirror status and message instead of wrapping them
	h := NewReservationHandler(fakeBackend(t, nil), "")
	c, rec := newContext(t, http.MethodGet, "/v1/reservations", "")
	if err := h.List(c); err != nil {
		t.Fatalf("List: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want mirrored 404", rec.Code)
	}
	var out map[string]string
	decodeBody(t, rec, &out)
	if out["error"] != "not found" {
		t.Errorf("error = %q", out["error"])
	}
}

const tablesJSON = `{"tables":[
	{"id":"T1","number":1,"capacity":4,"reservations":[{"id":"old","name":"Mr Past","numberOfGuests":2,"tableId":"T1","date":"2019-01-01T19:00:00Z","status":"completed"}]},
	{"id":"T2","number":2,"capacity":2},
	{"id":"T3","number":3,"capacity":6}
]}`

func TestTableDashboard(t *testing.T) {
	h := NewTableHandler(fakeBackend(t, map[string]string{
		"GET /tables": tablesJSON,
	}))
	c, rec := newContext(t, http.MethodGet, "/v1/tables", "")
	if err := h.Dashboard(c); err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	var out struct {
		Tables []DashboardTable `json:"tables"`
	}
	decodeBody(t, rec, &out)
	if len(out.Tables) != 3 {
		t.Fatalf("tables = %+v", out.Tables)
	}
	// T1 has an embedded (long past) reservation: dashboard flag is
	// date-insensitive so it still reads reserved
	if !out.Tables[0].Reserved {
		t.Error("T1 must be flagged reserved")
	}
	if out.Tables[1].Reserved || out.Tables[2].Reserved {
		t.Error("T2/T3 must not be flagged")
	}
	if out.Tables[2].Layout != (schedule.SeatLayout{Top: 2, Bottom: 2, Left: 1, Right: 1}) {
		t.Errorf("T3 layout = %+v", out.Tables[2].Layout)
	}
}

func TestFloorPlan(t *testing.T) {
	h := NewTableHandler(fakeBackend(t, map[string]string{
		"GET /tables":       tablesJSON,
		"GET /reservations": reservationsJSON,
	}))
	c, rec := newContext(t, http.MethodGet, "/v1/floor-plan?date=2024-03-15", "")
	if err := h.FloorPlan(c); err != nil {
		t.Fatalf("FloorPlan: %v", err)
	}
	var out struct {
		Tables []FloorPlanTable `json:"tables"`
	}
	decodeBody(t, rec, &out)
	byID := map[string]FloorPlanTable{}
	for _, tb := range out.Tables {
		byID[tb.ID] = tb
	}
	// T1 carries two bookings that date (9:30am and 6:00pm): reserved all
	// day, and the lookup returns the first in backend order
	if !byID["T1"].Reserved || byID["T1"].Reservation == nil || byID["T1"].Reservation.ID != "early" {
		t.Errorf("T1 = %+v", byID["T1"])
	}
	if !byID["T2"].Reserved {
		t.Error("T2 booked at noon must be reserved")
	}
	// T3's only booking is on the 16th
	if byID["T3"].Reserved || byID["T3"].Reservation != nil {
		t.Errorf("T3 = %+v", byID["T3"])
	}
}

func TestPublicMenuFiltersUnavailable(t *testing.T) {
	h := NewPublicHandler(fakeBackend(t, map[string]string{
		"GET /menu": `{"categories":[
			{"name":"Mains","items":[
				{"id":"m1","name":"Pasta","category":"Mains","price":12.5,"available":true},
				{"id":"m2","name":"Risotto","category":"Mains","price":14,"available":false}
			]},
			{"name":"Empty","items":[{"id":"m3","name":"Gone","category":"Empty","price":5,"available":false}]}
		]}`,
	}))
	c, rec := newContext(t, http.MethodGet, "/public/menu", "")
	if err := h.Menu(c); err != nil {
		t.Fatalf("Menu: %v", err)
	}
	var out struct {
		Categories []model.MenuCategory `json:"categories"`
	}
	decodeBody(t, rec, &out)
	if len(out.Categories) != 1 {
		t.Fatalf("categories = %+v", out.Categories)
	}
	if len(out.Categories[0].Items) != 1 || out.Categories[0].Items[0].ID != "m1" {
		t.Errorf("items = %+v", out.Categories[0].Items)
	}
}

func TestPublicCreateOrderValidation(t *testing.T) {
	h := NewPublicHandler(fakeBackend(t, nil))
	cases := []struct {
		name string
		body string
	}{
		{"no items", `{"customerName":"Ana","items":[]}`},
		{"zero quantity", `{"items":[{"menuItemId":"m1","quantity":0}]}`},
		{"missing menu item", `{"items":[{"quantity":1}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newContext(t, http.MethodPost, "/public/orders", tc.body)
			if err := h.CreateOrder(c); err != nil {
				t.Fatalf("CreateOrder: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestOrderUpdateStatusRejectsUnknown(t *testing.T) {
	h := NewOrderHandler(fakeBackend(t, nil))
	c, rec := newContext(t, http.MethodPatch, "/v1/orders/o1/status", `{"status":"vaporized"}`)
	c.SetParamNames("id")
	c.SetParamValues("o1")
	if err := h.UpdateStatus(c); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestReportSummary(t *testing.T) {
	h := NewReportHandler(fakeBackend(t, map[string]string{
		"GET /reservations": reservationsJSON,
		"GET /orders": `{"orders":[
			{"id":"o1","status":"served","total":40,"createdAt":"2024-03-15T13:00:00Z","items":[]},
			{"id":"o2","status":"cancelled","total":99,"createdAt":"2024-03-15T14:00:00Z","items":[]},
			{"id":"o3","status":"pending","total":15.5,"createdAt":"2024-03-16T10:00:00Z","items":[]}
		]}`,
	}))
	c, rec := newContext(t, http.MethodGet, "/v1/reports/summary?date=2024-03-15", "")
	if err := h.Summary(c); err != nil {
		t.Fatalf("Summary: %v", err)
	}
	var out struct {
		ReservationsByStatus  map[string]int `json:"reservationsByStatus"`
		Covers                SlotCovers     `json:"covers"`
		Orders                int            `json:"orders"`
		Revenue               float64        `json:"revenue"`
		ReservationsScheduled int            `json:"reservationsScheduled"`
	}
	decodeBody(t, rec, &out)
	if out.ReservationsScheduled != 3 {
		t.Errorf("scheduled = %d, want 3", out.ReservationsScheduled)
	}
	if out.ReservationsByStatus["confirmed"] != 2 || out.ReservationsByStatus["pending"] != 1 {
		t.Errorf("byStatus = %+v", out.ReservationsByStatus)
	}
	if out.Covers != (SlotCovers{Morning: 2, Afternoon: 4, Evening: 3}) {
		t.Errorf("covers = %+v", out.Covers)
	}
	// cancelled and other-day orders stay out of the totals
	if out.Orders != 1 || out.Revenue != 40 {
		t.Errorf("orders = %d revenue = %v", out.Orders, out.Revenue)
	}
}

func TestNewFormValuesStub(t *testing.T) {
	h := NewReservationHandler(fakeBackend(t, nil), "")
	c, rec := newContext(t, http.MethodGet, "/v1/tables/T7/reservation-form", "")
	c.SetParamNames("id")
	c.SetParamValues("T7")
	if err := h.NewFormValues(c); err != nil {
		t.Fatalf("NewFormValues: %v", err)
	}
	var f schedule.FormFields
	decodeBody(t, rec, &f)
	if f.TableID != "T7" || f.Name != "" {
		t.Errorf("stub = %+v", f)
	}
}

func TestFormValuesForReservation(t *testing.T) {
	h := NewReservationHandler(fakeBackend(t, map[string]string{
		"GET /reservation/r1": `{"id":"r1","name":"Mrs Jane Doe","phone":"0123","numberOfGuests":3,"tableId":"T2","date":"2024-03-15T14:30:00Z","status":"confirmed"}`,
	}), "")
	c, rec := newContext(t, http.MethodGet, "/v1/reservations/r1/form", "")
	c.SetParamNames("id")
	c.SetParamValues("r1")
	if err := h.FormValues(c); err != nil {
		t.Fatalf("FormValues: %v", err)
	}
	var f schedule.FormFields
	decodeBody(t, rec, &f)
	if f.Title != "Mrs" || f.Name != "Jane Doe" || f.Time != "14:30" || f.Date != "2024-03-15" {
		t.Errorf("form = %+v", f)
	}
}
