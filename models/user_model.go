package models

import (
	"time"

	"gorm.io/gorm"
)

// UserType is the closed set of console roles.
type UserType string

const (
	UserTypeAdmin      UserType = "ADMIN"
	UserTypeSupervisor UserType = "SUPERVISOR"
	UserTypeUser       UserType = "USER"
)

func (t UserType) Valid() bool {
	return t == UserTypeAdmin || t == UserTypeSupervisor || t == UserTypeUser
}

func (t UserType) IsAdmin() bool {
	return t == UserTypeAdmin
}

// CanAccessWarehouse reports whether the role may reach the warehouse screens
// (halls, management, search, inventory). Every authenticated non-admin role
// passes, admins are routed to the user administration screens instead.
func (t UserType) CanAccessWarehouse() bool {
	return t.Valid() && t != UserTypeAdmin
}

func (t UserType) CanSupervise() bool {
	return t == UserTypeSupervisor
}

// LandingRoute is where the console drops a session of this role after login.
func (t UserType) LandingRoute() string {
	if t == UserTypeAdmin {
		return "/app/users"
	}
	return "/app/halls"
}

type User struct {
	gorm.Model
	UUID     string   `json:"uuid" gorm:"uniqueIndex;size:36"`
	Username string   `json:"username" gorm:"uniqueIndex;size:100"`
	Name     string   `json:"name"`
	Surname  string   `json:"surname"`
	Email    string   `json:"email"`
	Password string   `json:"-"`
	UserType UserType `json:"userType" gorm:"size:20;default:USER"`
	Enabled  bool     `json:"enabled" gorm:"default:true"`
	Lock     bool     `json:"lock" gorm:"default:false"`

	CreatedBy int `json:"-"`
	UpdatedBy int `json:"-"`
}

type LoginLog struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	UserID        *uint64    `json:"user_id"`
	Username      string     `json:"username"`
	SessionID     string     `json:"session_id"`
	LoginAt       *time.Time `json:"login_at"`
	LogoutAt      *time.Time `json:"logout_at"`
	IPAddress     string     `json:"ip_address"`
	UserAgent     string     `json:"user_agent"`
	LoginStatus   string     `json:"login_status"`
	FailureReason *string    `json:"failure_reason"`
	CreatedAt     time.Time  `json:"created_at"`
}
