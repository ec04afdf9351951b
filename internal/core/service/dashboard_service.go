package service

import (
	"sort"

	"github.com/Ajayhariharan/activax/internal/core/domain"
	"github.com/Ajayhariharan/activax/internal/core/ports"
	"github.com/Ajayhariharan/activax/internal/core/store"
)

// DashboardService computes the role-shaped aggregates behind the dashboard:
// headline totals and per-manager rollups for Admins, team counts for
// Managers, and the own-activity timeline for Users.
type DashboardService struct {
	store *store.Store
}

func NewDashboardService(st *store.Store) *DashboardService {
	return &DashboardService{store: st}
}

func (s *DashboardService) Build(actor domain.User) *ports.Dashboard {
	users := s.store.Users()
	activities := s.store.Activities()

	byID := make(map[int64]domain.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	d := &ports.Dashboard{Role: actor.Role}

	switch actor.Role {
	case domain.RoleAdmin:
		totals := ports.DashboardTotals{Activities: len(activities)}
		for _, u := range users {
			switch u.Role {
			case domain.RoleAdmin:
				totals.Admins++
			case domain.RoleManager:
				totals.Managers++
			case domain.RoleUser:
				totals.Users++
			}
		}
		d.Totals = &totals
		d.ActivitiesPerManager = activitiesPerManager(users, activities, byID)
		d.ActivitiesPerUser = activitiesPerUser(users, activities, nil)

	case domain.RoleManager:
		d.Team = VisibleUsers(&actor, users)
		team := make(map[int64]bool, len(d.Team))
		for _, u := range d.Team {
			team[u.ID] = true
		}
		d.ActivitiesPerUser = activitiesPerUser(users, activities, team)

	case domain.RoleUser:
		counts := map[string]int{}
		for _, a := range activities {
			if a.UserID == actor.ID {
				counts[a.Date]++
			}
		}
		dates := make([]string, 0, len(counts))
		for date := range counts {
			dates = append(dates, date)
		}
		sort.Strings(dates)
		for _, date := range dates {
			d.ActivityByDate = append(d.ActivityByDate, ports.DateCount{Date: date, Count: counts[date]})
		}
		for _, u := range VisibleUsers(&actor, users) {
			if u.ID != actor.ID {
				d.Teammates = append(d.Teammates, u)
			}
		}
	}

	return d
}

// activitiesPerUser counts activities per User-role owner. When team is
// non-nil only those owners are counted.
func activitiesPerUser(users []domain.User, activities []domain.Activity, team map[int64]bool) []ports.UserCount {
	counts := map[int64]int{}
	for _, a := range activities {
		counts[a.UserID]++
	}

	var out []ports.UserCount
	for _, u := range users {
		if u.Role != domain.RoleUser {
			continue
		}
		if team != nil && !team[u.ID] {
			continue
		}
		out = append(out, ports.UserCount{UserID: u.ID, FullName: u.FullName, Count: counts[u.ID]})
	}
	return out
}

// activitiesPerManager rolls activity counts up to the owning user's
// manager. Activities whose owner was deleted or has no manager are skipped.
func activitiesPerManager(users []domain.User, activities []domain.Activity, byID map[int64]domain.User) []ports.ManagerCount {
	counts := map[int64]int{}
	for _, a := range activities {
		owner, ok := byID[a.UserID]
		if !ok || owner.ManagerID == nil {
			continue
		}
		counts[*owner.ManagerID]++
	}

	var out []ports.ManagerCount
	for _, u := range users {
		if u.Role == domain.RoleManager {
			out = append(out, ports.ManagerCount{ManagerID: u.ID, FullName: u.FullName, Count: counts[u.ID]})
		}
	}
	return out
}
