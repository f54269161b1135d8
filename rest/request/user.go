package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/aston-csic/csic-go/domain"
)

type CreateUserRequest struct {
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	Email     string      `json:"email"`
	Password  string      `json:"password"`
	Role      domain.Role `json:"role"`
}

func (req *CreateUserRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.FirstName, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.LastName, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required),
		validation.Field(&req.Role, validation.Required, validation.In(
			domain.RoleStudent, domain.RoleStaff, domain.RoleProfessional, domain.RoleAdmin,
		)),
	)
	if err != nil {
		return err
	}

	return validatePassword(req.Password)
}

type UpdateUserRoleRequest struct {
	UserID string      `json:"userId"`
	Role   domain.Role `json:"role"`
}

func (req *UpdateUserRoleRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.UserID, validation.Required),
		validation.Field(&req.Role, validation.Required, validation.In(
			domain.RoleStudent, domain.RoleStaff, domain.RoleProfessional, domain.RoleAdmin,
		)),
	)
}
