package handler

import (
	"github.com/Ajayhariharan/activax/internal/core/domain"
	"github.com/Ajayhariharan/activax/internal/core/ports"
)

// userRequest is the create/update payload. The rules mirror the original
// registration form: name length, email shape, password confirmation, ten
// digit phone, adult date of birth and a known role.
type userRequest struct {
	FullName        string `json:"fullName" validate:"required,min=3"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	Phone           string `json:"phone" validate:"required,len=10,numeric"`
	Gender          string `json:"gender" validate:"required"`
	DOB             string `json:"dob" validate:"required,dob"`
	Country         string `json:"country" validate:"required"`
	Role            string `json:"role" validate:"required,oneof=Admin Manager User"`
	ManagerID       *int64 `json:"managerId,omitempty"`
}

func (r userRequest) toInput() ports.UserInput {
	return ports.UserInput{
		FullName:  r.FullName,
		Email:     r.Email,
		Password:  r.Password,
		Phone:     r.Phone,
		Gender:    r.Gender,
		DOB:       r.DOB,
		Country:   r.Country,
		Role:      r.Role,
		ManagerID: r.ManagerID,
	}
}

// userView is the outbound user shape. The plaintext password never leaves
// the process; the permission matrix is always rendered in its effective
// form.
type userView struct {
	ID                  int64              `json:"id"`
	FullName            string             `json:"fullName"`
	Email               string             `json:"email"`
	Phone               string             `json:"phone"`
	Gender              string             `json:"gender"`
	DOB                 string             `json:"dob"`
	Country             string             `json:"country"`
	Role                string             `json:"role"`
	ManagerID           *int64             `json:"managerId,omitempty"`
	ActivityPermissions domain.Permissions `json:"activityPermissions"`
	ProfileImage        string             `json:"profileImage,omitempty"`

	// TeamSize is set on Managers tab rows, ManagerName on Users tab rows.
	TeamSize    *int   `json:"teamSize,omitempty"`
	ManagerName string `json:"managerName,omitempty"`
}

func newUserView(u domain.User) userView {
	return userView{
		ID:                  u.ID,
		FullName:            u.FullName,
		Email:               u.Email,
		Phone:               u.Phone,
		Gender:              u.Gender,
		DOB:                 u.DOB,
		Country:             u.Country,
		Role:                u.Role,
		ManagerID:           u.ManagerID,
		ActivityPermissions: u.EffectivePermissions(),
		ProfileImage:        u.ProfileImage,
	}
}

func newUserViews(users []domain.User) []userView {
	out := make([]userView, 0, len(users))
	for _, u := range users {
		out = append(out, newUserView(u))
	}
	return out
}
