package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"

	"roadfreight/internal/migrations"
	"roadfreight/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "test.db") + "?_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, migrations.AutoMigrate(db))
	return SetupRouter(db)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func message(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	decodeBody(t, w, &body)
	return body.Message
}

func TestRootBanner(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Road Freight Transportation company - Working", w.Body.String())
}

func TestCompanyLifecycle(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/companies", gin.H{
		"company_name": "Acme",
		"brand":        "Ford",
		"trucks": []gin.H{
			{"brand": "Ford", "truck_capacity": 1000.00, "year": 2020},
			{"brand": "Ford", "truck_capacity": 2000.00, "year": 2021},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Company
	decodeBody(t, w, &created)
	require.NotZero(t, created.CompanyID)
	idPath := "/companies/" + itoa(created.CompanyID)

	w = doJSON(t, r, http.MethodGet, idPath, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var fetched models.Company
	decodeBody(t, w, &fetched)
	assert.Equal(t, "Acme", fetched.CompanyName)
	assert.Len(t, fetched.Trucks, 2)

	w = doJSON(t, r, http.MethodPut, idPath, gin.H{"brand": "Volvo"})
	require.Equal(t, http.StatusOK, w.Code)
	var updated models.Company
	decodeBody(t, w, &updated)
	assert.Equal(t, "Volvo", updated.Brand)
	assert.Equal(t, "Acme", updated.CompanyName)

	w = doJSON(t, r, http.MethodDelete, idPath, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, idPath, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Company not found", message(t, w))
}

func TestCompanyUpdateAppendsNestedTrucks(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/companies", gin.H{"company_name": "Acme", "brand": "Ford"})
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.Company
	decodeBody(t, w, &created)

	w = doJSON(t, r, http.MethodPut, "/companies/"+itoa(created.CompanyID), gin.H{
		"trucks": []gin.H{{"brand": "Ford", "truck_capacity": 500.00, "year": 2019}},
	})
	require.Equal(t, http.StatusOK, w.Code)
	var updated models.Company
	decodeBody(t, w, &updated)
	assert.Len(t, updated.Trucks, 1)
}

func TestInvalidIDRejected(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{"/customers/abc", "/customers/0", "/customers/-1"} {
		w := doJSON(t, r, http.MethodPut, path, gin.H{})
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
		assert.Equal(t, "Invalid ID", message(t, w), path)
	}
}

func TestDeleteMissingCompany(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodDelete, "/companies/999999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Company not found", message(t, w))
}

func TestCompanyBulkDeleteByName(t *testing.T) {
	r := newTestRouter(t)

	for _, brand := range []string{"Ford", "Volvo"} {
		w := doJSON(t, r, http.MethodPost, "/companies", gin.H{"company_name": "Acme", "brand": brand})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, r, http.MethodDelete, "/companies/name/Acme", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Companies deleted", message(t, w))

	w = doJSON(t, r, http.MethodDelete, "/companies/name/Acme", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "No companies found with this name", message(t, w))
}

// A truck trip referencing a truck or driver that doesn't exist is
// still created; the dangling reference is just left out.
func TestTruckTripSkipsUnknownRefs(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/truck-trips", gin.H{
		"truck_id":   999,
		"driver1_id": 999,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var trip models.TruckTrip
	decodeBody(t, w, &trip)
	assert.Nil(t, trip.TruckID)
	assert.Nil(t, trip.Driver1ID)
	assert.Equal(t, "Unknown Route", trip.Route)
}

func TestDriverRequiresExistingEmployee(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/drivers", gin.H{
		"employee_id":     42,
		"driver_category": "Regular",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Employee not found", message(t, w))
}

func TestDeleteDriverLeavesTripWithoutDriver(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/employees", gin.H{
		"first_name": "John", "last_name": "Doe", "years_of_service": 3,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var employee models.Employee
	decodeBody(t, w, &employee)

	w = doJSON(t, r, http.MethodPost, "/drivers", gin.H{
		"employee_id": employee.EmployeeID, "driver_category": "Regular",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var driver models.Driver
	decodeBody(t, w, &driver)

	w = doJSON(t, r, http.MethodPost, "/truck-trips", gin.H{
		"route": "Toronto-Kitchener", "driver1_id": driver.DriverID,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var trip models.TruckTrip
	decodeBody(t, w, &trip)
	require.NotNil(t, trip.Driver1ID)

	w = doJSON(t, r, http.MethodDelete, "/drivers/"+itoa(driver.DriverID), nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, "/truck-trips/"+itoa(trip.TruckTripID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var survivor models.TruckTrip
	decodeBody(t, w, &survivor)
	assert.Nil(t, survivor.Driver1ID)
	assert.Nil(t, survivor.Driver1)
}

func TestEmployeeYearsLookupValidation(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/employees/years_of_service/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid years of service", message(t, w))

	w = doJSON(t, r, http.MethodGet, "/employees/years_of_service/7", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "No employees found with the given years of service", message(t, w))
}

// A shipment with zero weight and value is legitimate cargo, not a
// missing field.
func TestShipmentZeroWeight(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/shipments", gin.H{
		"weight": 0, "value": 0, "origin": "Toronto", "destination": "Kitchener",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.Shipment
	decodeBody(t, w, &created)

	w = doJSON(t, r, http.MethodGet, "/shipments/"+itoa(created.ShipmentID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var fetched models.Shipment
	decodeBody(t, w, &fetched)
	assert.Zero(t, fetched.Weight)
	assert.Zero(t, fetched.Value)
}

func TestCustomerFieldLookups(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/customers", gin.H{
		"customer_name":    "John Doe",
		"customer_address": "123 Elm Street",
		"customer_phone1":  "555-123-3456",
		"customer_phone2":  "555-567-9876",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/customers/name/John%20Doe", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var matches []models.Customer
	decodeBody(t, w, &matches)
	assert.Len(t, matches, 1)

	w = doJSON(t, r, http.MethodGet, "/customers/name/Nobody", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "No customers found with this name", message(t, w))
}
