package ports

import "github.com/Ajayhariharan/activax/internal/core/domain"

// DateCount is an activity count for one logical date.
type DateCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// UserCount is an activity count attributed to one user.
type UserCount struct {
	UserID   int64  `json:"userId"`
	FullName string `json:"fullName"`
	Count    int    `json:"count"`
}

// ManagerCount is an activity count rolled up to one manager's team.
type ManagerCount struct {
	ManagerID int64  `json:"managerId"`
	FullName  string `json:"fullName"`
	Count     int    `json:"count"`
}

// DashboardTotals are the admin-level headline numbers.
type DashboardTotals struct {
	Admins     int `json:"admins"`
	Managers   int `json:"managers"`
	Users      int `json:"users"`
	Activities int `json:"activities"`
}

// Dashboard is the role-shaped aggregate view. Only the fields relevant to
// the actor's role are populated.
type Dashboard struct {
	Role string `json:"role"`

	// Admin
	Totals               *DashboardTotals `json:"totals,omitempty"`
	ActivitiesPerManager []ManagerCount   `json:"activitiesPerManager,omitempty"`

	// Admin and Manager
	ActivitiesPerUser []UserCount `json:"activitiesPerUser,omitempty"`

	// Manager
	Team []domain.User `json:"team,omitempty"`

	// User
	ActivityByDate []DateCount   `json:"activityByDate,omitempty"`
	Teammates      []domain.User `json:"teammates,omitempty"`
}

// DashboardService computes the per-role dashboard aggregates.
type DashboardService interface {
	Build(actor domain.User) *Dashboard
}
