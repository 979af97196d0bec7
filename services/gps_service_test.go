package services

import (
	"errors"
	"testing"
	"time"

	"github.com/balu-16/smartHome-backend/models"
	"github.com/balu-16/smartHome-backend/utils"
)

func TestFindDeviceByCodeAndM2MBothMustMatch(t *testing.T) {
	db := newTestDB(t)
	svc := NewGpsService(db, testConfig(), nil, nil)

	device := models.Device{DeviceCode: "DEV-1001", DeviceM2MNumber: "8991000012345", IsActive: true}
	if err := db.Create(&device).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	if _, err := svc.FindDeviceByCodeAndM2M("DEV-1001", "8991000012345"); err != nil {
		t.Fatalf("matching pair rejected: %v", err)
	}

	// right code, wrong m2m
	if _, err := svc.FindDeviceByCodeAndM2M("DEV-1001", "8991000099999"); !errors.Is(err, ErrDeviceIdentityMismatch) {
		t.Errorf("wrong m2m: got %v, want ErrDeviceIdentityMismatch", err)
	}
	// right m2m, wrong code
	if _, err := svc.FindDeviceByCodeAndM2M("DEV-9999", "8991000012345"); !errors.Is(err, ErrDeviceIdentityMismatch) {
		t.Errorf("wrong code: got %v, want ErrDeviceIdentityMismatch", err)
	}
}

func TestGpsHistoryAscendingRegardlessOfInsertionOrder(t *testing.T) {
	db := newTestDB(t)
	svc := NewGpsService(db, testConfig(), nil, nil)

	base := utils.NowIST().Truncate(time.Second)
	offsets := []time.Duration{5 * time.Minute, time.Minute, 3 * time.Minute}
	for i, off := range offsets {
		row := models.GpsData{
			DeviceCode: "DEV-1001",
			Latitude:   12.9 + float64(i),
			Longitude:  77.5,
			Timestamp:  base.Add(off),
		}
		if err := svc.InsertGpsData(&row); err != nil {
			t.Fatalf("InsertGpsData: %v", err)
		}
	}

	history, err := svc.GetGpsHistory("DEV-1001")
	if err != nil {
		t.Fatalf("GetGpsHistory: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("len = %d, want 3", len(history))
	}
	for i := 1; i < len(history); i++ {
		if history[i].Timestamp.Before(history[i-1].Timestamp) {
			t.Errorf("history out of order at %d: %v before %v", i, history[i].Timestamp, history[i-1].Timestamp)
		}
	}
}

func TestGetLatestFix(t *testing.T) {
	db := newTestDB(t)
	svc := NewGpsService(db, testConfig(), nil, nil)

	if _, err := svc.GetLatestFix("DEV-1001"); !errors.Is(err, ErrNoGpsFix) {
		t.Errorf("no data: got %v, want ErrNoGpsFix", err)
	}

	base := utils.NowIST().Truncate(time.Second)
	for i, off := range []time.Duration{time.Minute, 4 * time.Minute, 2 * time.Minute} {
		row := models.GpsData{
			DeviceCode: "DEV-1001",
			Latitude:   10.0 + float64(i),
			Longitude:  70.0,
			Timestamp:  base.Add(off),
		}
		if err := svc.InsertGpsData(&row); err != nil {
			t.Fatalf("InsertGpsData: %v", err)
		}
	}

	fix, err := svc.GetLatestFix("DEV-1001")
	if err != nil {
		t.Fatalf("GetLatestFix: %v", err)
	}
	// the 4-minute offset row was inserted second but is the newest
	if fix.Latitude != 11.0 {
		t.Errorf("latest latitude = %v, want 11.0", fix.Latitude)
	}
}

func TestInsertGpsDataDefaultsTimestamp(t *testing.T) {
	db := newTestDB(t)
	svc := NewGpsService(db, testConfig(), nil, nil)

	row := models.GpsData{DeviceCode: "DEV-1001", Latitude: 1, Longitude: 2}
	before := utils.NowIST()
	if err := svc.InsertGpsData(&row); err != nil {
		t.Fatalf("InsertGpsData: %v", err)
	}
	if row.Timestamp.Before(before.Add(-time.Second)) || row.Timestamp.After(utils.NowIST().Add(time.Second)) {
		t.Errorf("timestamp %v not close to now", row.Timestamp)
	}
}

func TestClearGpsData(t *testing.T) {
	db := newTestDB(t)
	svc := NewGpsService(db, testConfig(), nil, nil)

	for i := 0; i < 3; i++ {
		row := models.GpsData{DeviceCode: "DEV-1001", Latitude: float64(i), Longitude: 0}
		if err := svc.InsertGpsData(&row); err != nil {
			t.Fatalf("InsertGpsData: %v", err)
		}
	}
	other := models.GpsData{DeviceCode: "DEV-2002", Latitude: 9, Longitude: 9}
	if err := svc.InsertGpsData(&other); err != nil {
		t.Fatalf("InsertGpsData: %v", err)
	}

	deleted, err := svc.ClearGpsData("DEV-1001")
	if err != nil {
		t.Fatalf("ClearGpsData: %v", err)
	}
	if deleted != 3 {
		t.Errorf("deleted = %d, want 3", deleted)
	}

	remaining, err := svc.GetGpsDataForDevice("DEV-2002")
	if err != nil || len(remaining) != 1 {
		t.Errorf("other device data touched: %v, %d rows", err, len(remaining))
	}
}

func TestSetDeviceActive(t *testing.T) {
	db := newTestDB(t)
	svc := NewGpsService(db, testConfig(), nil, nil)

	device := models.Device{DeviceCode: "DEV-1001", DeviceM2MNumber: "8991000012345", IsActive: true}
	if err := db.Create(&device).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	updated, err := svc.SetDeviceActive("DEV-1001", false)
	if err != nil {
		t.Fatalf("SetDeviceActive: %v", err)
	}
	if updated.IsActive {
		t.Error("device still active after disable")
	}

	if _, err := svc.SetDeviceActive("DEV-9999", true); !errors.Is(err, ErrDeviceNotFound) {
		t.Errorf("unknown device: got %v, want ErrDeviceNotFound", err)
	}
}
