package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/balu-16/smartHome-backend/models"

	"github.com/gin-gonic/gin"
)

func TestGetSwitchByID(t *testing.T) {
	c, db := newTestContainer(t)

	seeded := models.Switch{
		DeviceID:              1,
		DeviceCode:            "DEV-1001",
		DeviceName:            "Living Room Light",
		RoomID:                3,
		HouseID:               1,
		AllocatedToCustomerID: 7,
	}
	if err := db.Create(&seeded).Error; err != nil {
		t.Fatalf("seed switch: %v", err)
	}

	r := gin.New()
	r.GET("/switches/:id", HandleSwitchFunc(c, "getSwitch"))

	req := httptest.NewRequest(http.MethodGet, "/switches/1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	sw, ok := body["switch"].(map[string]interface{})
	if !ok {
		t.Fatalf("no switch object in %v", body)
	}
	if sw["device_code"] != "DEV-1001" {
		t.Errorf("device_code = %v, want DEV-1001", sw["device_code"])
	}

	req = httptest.NewRequest(http.MethodGet, "/switches/42", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown id: status = %d, want 404", w.Code)
	}
}

func TestCreateSwitch(t *testing.T) {
	c, db := newTestContainer(t)
	handler := HandleSwitchFunc(c, "createSwitch")

	w := postJSON(t, handler, "/switches", gin.H{
		"device_id":                1,
		"device_code":              "DEV-1001",
		"device_name":              "Living Room Light",
		"room_id":                  3,
		"house_id":                 1,
		"allocated_to_customer_id": 7,
		"electronic_object":        "light",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var count int64
	db.Model(&models.Switch{}).Where("device_code = ?", "DEV-1001").Count(&count)
	if count != 1 {
		t.Errorf("switch rows = %d, want 1", count)
	}

	// required fields missing
	w = postJSON(t, handler, "/switches", gin.H{"device_code": "DEV-1001"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("incomplete body: status = %d, want 400", w.Code)
	}
}
