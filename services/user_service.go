package services

import (
	"errors"

	"github.com/balu-16/smartHome-backend/config"
	"github.com/balu-16/smartHome-backend/models"

	"gorm.io/gorm"
)

// Identity is a role-tagged view over the four identity tables
type Identity struct {
	ID          uint            `json:"id"`
	PhoneNumber string          `json:"phone_number"`
	FullName    string          `json:"full_name"`
	Email       string          `json:"email,omitempty"`
	UserType    models.UserType `json:"user_type"`
	CreatedAt   string          `json:"created_at"`
}

// InterfaceUserService resolves identities across the four role tables
type InterfaceUserService interface {
	FindByPhone(phoneNumber string) (*Identity, error)
	FindByID(id uint, userType models.UserType) (*Identity, error)
	ResolveByID(id uint) (*Identity, error)
	CreateCustomer(phoneNumber, fullName, email string) (*Identity, error)
	UpdateProfile(id uint, fullName string, userType models.UserType) (*Identity, error)
	ListSuperAdmins() ([]models.SuperAdmin, error)
	ListAdmins() ([]models.Admin, error)
	ListCustomers() ([]models.Customer, error)
	ListTechnicians() ([]models.Technician, error)
	LogLogin(identity *Identity, meta models.LoginMetadata) error
}

// UserService provides identity lookups with the fixed precedence
// superadmin > admin > technician > customer
type UserService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewUserService creates a new user service
func NewUserService(db *gorm.DB, cfg *config.Config) InterfaceUserService {
	return &UserService{DB: db, Config: cfg}
}

// FindByPhone checks the four identity tables in precedence order and
// returns the first hit, or nil when the number is unknown
func (s *UserService) FindByPhone(phoneNumber string) (*Identity, error) {
	var superAdmin models.SuperAdmin
	err := s.DB.Where("phone_number = ?", phoneNumber).First(&superAdmin).Error
	if err == nil {
		return superAdminIdentity(&superAdmin), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var admin models.Admin
	err = s.DB.Where("phone_number = ?", phoneNumber).First(&admin).Error
	if err == nil {
		return adminIdentity(&admin), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var technician models.Technician
	err = s.DB.Where("phone_number = ?", phoneNumber).First(&technician).Error
	if err == nil {
		return technicianIdentity(&technician), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var customer models.Customer
	err = s.DB.Where("phone_number = ?", phoneNumber).First(&customer).Error
	if err == nil {
		return customerIdentity(&customer), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return nil, nil
}

// FindByID looks up an identity by primary key within a known role table.
// Absence is (nil, nil); errors are storage failures only.
func (s *UserService) FindByID(id uint, userType models.UserType) (*Identity, error) {
	switch userType {
	case models.UserTypeSuperAdmin:
		var u models.SuperAdmin
		found, err := first(s.DB, &u, id)
		if err != nil || !found {
			return nil, err
		}
		return superAdminIdentity(&u), nil
	case models.UserTypeAdmin:
		var u models.Admin
		found, err := first(s.DB, &u, id)
		if err != nil || !found {
			return nil, err
		}
		return adminIdentity(&u), nil
	case models.UserTypeTechnician:
		var u models.Technician
		found, err := first(s.DB, &u, id)
		if err != nil || !found {
			return nil, err
		}
		return technicianIdentity(&u), nil
	case models.UserTypeCustomer:
		var u models.Customer
		found, err := first(s.DB, &u, id)
		if err != nil || !found {
			return nil, err
		}
		return customerIdentity(&u), nil
	}
	return nil, nil
}

// ResolveByID searches the four tables in precedence order by primary key.
// IDs are only unique per table, so precedence decides ties the same way
// phone lookup does.
func (s *UserService) ResolveByID(id uint) (*Identity, error) {
	for _, userType := range []models.UserType{
		models.UserTypeSuperAdmin,
		models.UserTypeAdmin,
		models.UserTypeTechnician,
		models.UserTypeCustomer,
	} {
		identity, err := s.FindByID(id, userType)
		if err != nil {
			return nil, err
		}
		if identity != nil {
			return identity, nil
		}
	}
	return nil, nil
}

// CreateCustomer is the registration fallback: verify-otp on an unknown
// number always lands here
func (s *UserService) CreateCustomer(phoneNumber, fullName, email string) (*Identity, error) {
	customer := &models.Customer{
		PhoneNumber: phoneNumber,
		FullName:    fullName,
		Email:       email,
	}
	if err := s.DB.Create(customer).Error; err != nil {
		return nil, err
	}

	config.Info("New customer created: %s", customer.FullName)
	return customerIdentity(customer), nil
}

// UpdateProfile dispatches a name update to the table matching userType
func (s *UserService) UpdateProfile(id uint, fullName string, userType models.UserType) (*Identity, error) {
	var model interface{}
	switch userType {
	case models.UserTypeSuperAdmin:
		model = &models.SuperAdmin{}
	case models.UserTypeAdmin:
		model = &models.Admin{}
	case models.UserTypeTechnician:
		model = &models.Technician{}
	case models.UserTypeCustomer:
		model = &models.Customer{}
	default:
		return nil, nil
	}

	result := s.DB.Model(model).Where("id = ?", id).Update("full_name", fullName)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	return s.FindByID(id, userType)
}

// ListSuperAdmins returns all super admins
func (s *UserService) ListSuperAdmins() ([]models.SuperAdmin, error) {
	var users []models.SuperAdmin
	return users, s.DB.Find(&users).Error
}

// ListAdmins returns all admins
func (s *UserService) ListAdmins() ([]models.Admin, error) {
	var users []models.Admin
	return users, s.DB.Find(&users).Error
}

// ListCustomers returns all customers
func (s *UserService) ListCustomers() ([]models.Customer, error) {
	var users []models.Customer
	return users, s.DB.Find(&users).Error
}

// ListTechnicians returns all technicians
func (s *UserService) ListTechnicians() ([]models.Technician, error) {
	var users []models.Technician
	return users, s.DB.Find(&users).Error
}

// LogLogin appends an audit entry to the login-log table of the identity's
// role. Failures are reported but must not block the login itself.
func (s *UserService) LogLogin(identity *Identity, meta models.LoginMetadata) error {
	var entry interface{}
	switch identity.UserType {
	case models.UserTypeSuperAdmin:
		entry = &models.SuperAdminLoginLog{SuperAdminID: identity.ID, PhoneNumber: identity.PhoneNumber, LoginMetadata: meta}
	case models.UserTypeAdmin:
		entry = &models.AdminLoginLog{AdminID: identity.ID, PhoneNumber: identity.PhoneNumber, LoginMetadata: meta}
	case models.UserTypeTechnician:
		entry = &models.TechnicianLoginLog{TechnicianID: identity.ID, PhoneNumber: identity.PhoneNumber, LoginMetadata: meta}
	case models.UserTypeCustomer:
		entry = &models.UserLoginLog{UserID: identity.ID, PhoneNumber: identity.PhoneNumber, LoginMetadata: meta}
	default:
		return nil
	}

	if err := s.DB.Create(entry).Error; err != nil {
		config.Error("Failed to log %s login for %s: %v", identity.UserType, identity.PhoneNumber, err)
		return err
	}
	return nil
}

func first(db *gorm.DB, dest interface{}, id uint) (bool, error) {
	err := db.First(dest, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func superAdminIdentity(u *models.SuperAdmin) *Identity {
	return &Identity{
		ID:          u.ID,
		PhoneNumber: u.PhoneNumber,
		FullName:    u.FullName,
		UserType:    models.UserTypeSuperAdmin,
		CreatedAt:   u.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func adminIdentity(u *models.Admin) *Identity {
	return &Identity{
		ID:          u.ID,
		PhoneNumber: u.PhoneNumber,
		FullName:    u.FullName,
		Email:       u.Email,
		UserType:    models.UserTypeAdmin,
		CreatedAt:   u.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func technicianIdentity(u *models.Technician) *Identity {
	return &Identity{
		ID:          u.ID,
		PhoneNumber: u.PhoneNumber,
		FullName:    u.FullName,
		Email:       u.Email,
		UserType:    models.UserTypeTechnician,
		CreatedAt:   u.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func customerIdentity(u *models.Customer) *Identity {
	return &Identity{
		ID:          u.ID,
		PhoneNumber: u.PhoneNumber,
		FullName:    u.FullName,
		Email:       u.Email,
		UserType:    models.UserTypeCustomer,
		CreatedAt:   u.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
