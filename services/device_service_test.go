package services

import (
	"errors"
	"testing"

	"github.com/balu-16/smartHome-backend/models"
)

func seedDevice(t *testing.T, svc InterfaceDeviceService, code string) *models.Device {
	t.Helper()
	device := &models.Device{
		DeviceCode:      code,
		DeviceM2MNumber: "8991000012345",
		DeviceName:      "Test Device",
		IsActive:        true,
	}
	if err := svc.CreateDevice(device); err != nil {
		t.Fatalf("CreateDevice: %v", err)
	}
	return device
}

func TestAllocateDeviceCreatesSwitch(t *testing.T) {
	db := newTestDB(t)
	svc := NewDeviceService(db, testConfig())
	seedDevice(t, svc, "DEV-1001")

	device, sw, err := svc.AllocateDevice(AllocateDeviceInput{
		DeviceCode:       "DEV-1001",
		UserID:           7,
		UserName:         "Ravi Kumar",
		DeviceName:       "Living Room Light",
		RoomID:           3,
		HouseID:          1,
		ElectronicObject: "light",
		DeviceIcon:       "bulb",
	})
	if err != nil {
		t.Fatalf("AllocateDevice: %v", err)
	}

	if device.AllocatedToCustomerID == nil || *device.AllocatedToCustomerID != 7 {
		t.Errorf("AllocatedToCustomerID = %v, want 7", device.AllocatedToCustomerID)
	}
	if device.AllocatedAt == nil {
		t.Error("AllocatedAt not set")
	}
	if sw == nil {
		t.Fatal("no switch row created")
	}
	if sw.DeviceID != device.ID || sw.RoomID != 3 || sw.HouseID != 1 {
		t.Errorf("switch = %+v, want device %d room 3 house 1", sw, device.ID)
	}
	if sw.SwitchIsActive {
		t.Error("new switch should start off")
	}
}

func TestAllocateDeviceConflictLeavesSwitchUntouched(t *testing.T) {
	db := newTestDB(t)
	svc := NewDeviceService(db, testConfig())
	seedDevice(t, svc, "DEV-1001")

	_, sw, err := svc.AllocateDevice(AllocateDeviceInput{
		DeviceCode: "DEV-1001", UserID: 7, UserName: "Ravi", RoomID: 3, HouseID: 1,
	})
	if err != nil {
		t.Fatalf("first AllocateDevice: %v", err)
	}

	_, _, err = svc.AllocateDevice(AllocateDeviceInput{
		DeviceCode: "DEV-1001", UserID: 8, UserName: "Meena", RoomID: 9, HouseID: 2,
	})
	if !errors.Is(err, ErrDeviceAllocated) {
		t.Fatalf("second AllocateDevice: got %v, want ErrDeviceAllocated", err)
	}

	var after models.Switch
	if err := db.First(&after, sw.ID).Error; err != nil {
		t.Fatalf("switch lookup: %v", err)
	}
	if after.RoomID != 3 || after.HouseID != 1 {
		t.Errorf("switch mutated by rejected allocation: %+v", after)
	}
	if after.AllocatedToCustomerID != 7 {
		t.Errorf("switch owner changed: %v", after.AllocatedToCustomerID)
	}
}

func TestUnassignDeviceKeepsRow(t *testing.T) {
	db := newTestDB(t)
	svc := NewDeviceService(db, testConfig())
	seeded := seedDevice(t, svc, "DEV-1001")

	_, _, err := svc.AllocateDevice(AllocateDeviceInput{
		DeviceCode: "DEV-1001", UserID: 7, UserName: "Ravi", RoomID: 3, HouseID: 1,
		ElectronicObject: "light", DeviceIcon: "bulb",
	})
	if err != nil {
		t.Fatalf("AllocateDevice: %v", err)
	}
	if _, err := svc.ShareDevice(seeded.ID, 9); err != nil {
		t.Fatalf("ShareDevice: %v", err)
	}
	if err := db.Model(&models.Device{}).Where("id = ?", seeded.ID).
		Update("switch_is_active", true).Error; err != nil {
		t.Fatalf("seed switch state: %v", err)
	}

	device, err := svc.UnassignDevice(seeded.ID)
	if err != nil {
		t.Fatalf("UnassignDevice: %v", err)
	}
	if device.AllocatedToCustomerID != nil || device.AllocatedAt != nil {
		t.Errorf("allocation fields not cleared: %+v", device)
	}
	if device.DeviceIcon != "" || device.SwitchIsActive {
		t.Errorf("icon/switch state not cleared: icon=%q active=%v", device.DeviceIcon, device.SwitchIsActive)
	}

	var switchCount, shareCount int64
	db.Model(&models.Switch{}).Where("device_id = ?", seeded.ID).Count(&switchCount)
	db.Model(&models.DeviceShared{}).Where("device_id = ?", seeded.ID).Count(&shareCount)
	if switchCount != 0 || shareCount != 0 {
		t.Errorf("switch rows = %d, share rows = %d, want 0 and 0", switchCount, shareCount)
	}

	// the device itself survives
	if _, err := svc.GetDeviceByID(seeded.ID); err != nil {
		t.Errorf("device row deleted by unassign: %v", err)
	}
}

func TestDeleteDeviceRemovesEverything(t *testing.T) {
	db := newTestDB(t)
	svc := NewDeviceService(db, testConfig())
	seeded := seedDevice(t, svc, "DEV-1001")

	_, _, err := svc.AllocateDevice(AllocateDeviceInput{
		DeviceCode: "DEV-1001", UserID: 7, UserName: "Ravi", RoomID: 3, HouseID: 1,
	})
	if err != nil {
		t.Fatalf("AllocateDevice: %v", err)
	}
	if _, err := svc.ShareDevice(seeded.ID, 9); err != nil {
		t.Fatalf("ShareDevice: %v", err)
	}

	if err := svc.DeleteDevice(seeded.ID); err != nil {
		t.Fatalf("DeleteDevice: %v", err)
	}

	if _, err := svc.GetDeviceByID(seeded.ID); !errors.Is(err, ErrDeviceNotFound) {
		t.Errorf("GetDeviceByID after delete: got %v, want ErrDeviceNotFound", err)
	}
	var switchCount, shareCount int64
	db.Model(&models.Switch{}).Where("device_id = ?", seeded.ID).Count(&switchCount)
	db.Model(&models.DeviceShared{}).Where("device_id = ?", seeded.ID).Count(&shareCount)
	if switchCount != 0 || shareCount != 0 {
		t.Errorf("orphaned rows after delete: switches %d, shares %d", switchCount, shareCount)
	}
}

func TestShareDeviceRejectsDuplicates(t *testing.T) {
	db := newTestDB(t)
	svc := NewDeviceService(db, testConfig())
	seeded := seedDevice(t, svc, "DEV-1001")

	if _, err := svc.ShareDevice(seeded.ID, 9); err != nil {
		t.Fatalf("ShareDevice: %v", err)
	}
	if _, err := svc.ShareDevice(seeded.ID, 9); !errors.Is(err, ErrAlreadyShared) {
		t.Errorf("duplicate ShareDevice: got %v, want ErrAlreadyShared", err)
	}

	// a different user is fine
	if _, err := svc.ShareDevice(seeded.ID, 10); err != nil {
		t.Errorf("ShareDevice with second user: %v", err)
	}

	shared, err := svc.GetDevicesSharedWith(9)
	if err != nil {
		t.Fatalf("GetDevicesSharedWith: %v", err)
	}
	if len(shared) != 1 || shared[0].ID != seeded.ID {
		t.Errorf("shared devices = %+v, want the one seeded device", shared)
	}
}

func TestUnshareDevice(t *testing.T) {
	db := newTestDB(t)
	svc := NewDeviceService(db, testConfig())
	seeded := seedDevice(t, svc, "DEV-1001")

	if _, err := svc.ShareDevice(seeded.ID, 9); err != nil {
		t.Fatalf("ShareDevice: %v", err)
	}
	if err := svc.UnshareDevice(seeded.ID, 9); err != nil {
		t.Fatalf("UnshareDevice: %v", err)
	}
	if err := svc.UnshareDevice(seeded.ID, 9); !errors.Is(err, ErrShareNotFound) {
		t.Errorf("second UnshareDevice: got %v, want ErrShareNotFound", err)
	}
}
