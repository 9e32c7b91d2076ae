package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Role is the closed set of user roles. It is assigned at provisioning time
// and resolved exactly once at sign-in; nothing looks it up per request.
type Role string

const (
	RoleAdministrator Role = "administrator"
	RoleStaff         Role = "staff"
	RolePatient       Role = "patient"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdministrator, RoleStaff, RolePatient:
		return true
	}
	return false
}

// User represents an identity record. Users are seeded or provisioned by an
// administrator; the auth core never creates them.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:255" json:"name"`
	Email        string    `gorm:"uniqueIndex;size:255" json:"email"`
	PasswordHash string    `gorm:"column:password" json:"-"`
	Role         Role      `gorm:"index;size:64" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Session records one authenticated connection window. Rows are never
// deleted; sign-out stamps SignoutAt.
type Session struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	SessionNo string     `gorm:"index;size:32" json:"session_no"`
	UserID    uint       `gorm:"index" json:"user_id"`
	IPAddress string     `gorm:"size:64" json:"ip_address"`
	Device    string     `gorm:"size:512" json:"device"`
	SigninAt  time.Time  `json:"signin_at"`
	SignoutAt *time.Time `json:"signout_at"`
}

func (Session) TableName() string { return "user_sessions" }

// OTPPurpose tags what flow a one-time passcode belongs to.
type OTPPurpose string

const (
	OTPPurposeSignup        OTPPurpose = "signup"
	OTPPurposeResetPassword OTPPurpose = "reset_password"
)

// Valid reports whether p is a known purpose.
func (p OTPPurpose) Valid() bool {
	return p == OTPPurposeSignup || p == OTPPurposeResetPassword
}

// UserOTP is a one-time passcode row. A code is valid only while
// IsUsed == false and ExpiresAt is in the future.
type UserOTP struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"index" json:"user_id"`
	Email     string     `gorm:"index;size:255" json:"email"`
	Code      string     `gorm:"column:otp;size:6" json:"otp"`
	Purpose   OTPPurpose `gorm:"column:type;size:32" json:"type"`
	IsUsed    bool       `gorm:"default:false" json:"is_used"`
	ExpiresAt time.Time  `json:"expires_at"`
	CreatedAt time.Time  `json:"created_at"`
}

func (UserOTP) TableName() string { return "user_otps" }

// ClientContext carries the transport-level facts recorded on a session.
type ClientContext struct {
	IP     string
	Device string
}

// AuthContext identifies the caller of an authenticated request. It is
// resolved once at the transport boundary from the bearer token and passed
// explicitly into services.
type AuthContext struct {
	UserID  uint
	Role    Role
	TokenID string
}

// UserSummary is the minimal user projection returned on sign-in.
type UserSummary struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}

// AuthResult is the outcome of a successful sign-in. AccessToken holds the
// raw bearer token; it is returned exactly once and not retrievable again.
type AuthResult struct {
	User        UserSummary `json:"user"`
	Session     *Session    `json:"session"`
	AccessToken string      `json:"token"`
}

// AccessClaims is what the token issuer resolves a raw bearer token into.
type AccessClaims struct {
	TokenID string `json:"token_id"`
	UserID  uint   `json:"user_id"`
	Role    Role   `json:"role"`
	Name    string `json:"name"`
}

// Appointment is a clinic appointment booking.
type Appointment struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	PatientName    string    `gorm:"size:255" json:"patient_name"`
	PatientEmail   string    `gorm:"size:255" json:"patient_email"`
	PatientContact string    `gorm:"size:255" json:"patient_contact"`
	Purpose        string    `gorm:"size:1000" json:"purpose"`
	Remarks        string    `gorm:"size:1000" json:"remarks"`
	ScheduleDate   string    `gorm:"size:10" json:"schedule_date"`
	ScheduleTime   string    `gorm:"size:5" json:"schedule_time"`
	Status         string    `gorm:"size:32" json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Patient is a clinic patient record.
type Patient struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255" json:"name"`
	Email       string    `gorm:"uniqueIndex;size:255" json:"email"`
	Contact     string    `gorm:"size:255" json:"contact"`
	Address     string    `json:"address"`
	Gender      string    `gorm:"size:16" json:"gender"`
	Birthdate   string    `gorm:"size:10" json:"birthdate"`
	Citizenship string    `gorm:"size:255" json:"citizenship"`
	Status      string    `gorm:"size:32;default:active" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ClinicService is an entry in the dental service catalogue.
type ClinicService struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Category  string    `gorm:"size:255" json:"category"`
	Name      string    `gorm:"size:255" json:"name"`
	Price     float64   `json:"price"`
	Status    string    `gorm:"size:32" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ClinicService) TableName() string { return "services" }

// ContactMessage is a contact-us inquiry.
type ContactMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255" json:"name"`
	Email     string    `gorm:"size:255" json:"email"`
	Phone     string    `gorm:"size:255" json:"phone"`
	Subject   string    `gorm:"size:255" json:"subject"`
	Message   string    `gorm:"size:1000" json:"message"`
	Status    string    `gorm:"size:32;default:pending" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ContactMessage) TableName() string { return "contact_us" }

// Content categories. Every category except clinic announcements allows at
// most one content row.
const (
	ContentClinicInformation   = "clinic_information"
	ContentClinicAnnouncements = "clinic_announcements"
	ContentLatestDevelopments  = "latest_developments"
	ContentOwnerInformation    = "owner_information"
	ContentOurTeam             = "our_team"
)

// ContentCategories lists the valid content categories.
var ContentCategories = []string{
	ContentClinicInformation,
	ContentClinicAnnouncements,
	ContentLatestDevelopments,
	ContentOwnerInformation,
	ContentOurTeam,
}

// ValidContentCategory reports whether category is one of the known ones.
func ValidContentCategory(category string) bool {
	for _, c := range ContentCategories {
		if c == category {
			return true
		}
	}
	return false
}

// ContentBlock is a CMS-style content row rendered by the clinic site.
type ContentBlock struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Category  string         `gorm:"index;size:64" json:"category"`
	Title     string         `gorm:"size:255" json:"title"`
	Content   string         `json:"content"`
	Metadata  datatypes.JSON `json:"metadata"`
	IsActive  bool           `json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (ContentBlock) TableName() string { return "content_data" }
