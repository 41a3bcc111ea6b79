package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateStaffRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

func (req *CreateStaffRequest) Normalize() {
	trim(&req.Username)
	trim(&req.Name)
	trim(&req.Role)
}

func (req *CreateStaffRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Username, validation.Required, validation.Length(1, 64), validation.By(matchRegexp2(usernameRegex, errInvalidUsername))),
		validation.Field(&req.Name, validation.Required, validation.Length(1, 128)),
		validation.Field(&req.Role, validation.Length(0, 32)),
	)
}
