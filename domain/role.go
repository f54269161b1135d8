package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Role is the canonical role representation at the API boundary. Servers have
// been observed sending both numeric ordinals and differently-cased labels;
// everything maps onto these four values once, here.
type Role string

const (
	RoleStudent      Role = "Student"
	RoleStaff        Role = "Staff"
	RoleProfessional Role = "Professional"
	RoleAdmin        Role = "Admin"
)

// DefaultRole is the lowest-privilege role, assigned when a credential
// carries no usable role claim.
const DefaultRole = RoleStudent

var roleOrdinals = map[int64]Role{
	0: RoleStudent,
	1: RoleStaff,
	2: RoleProfessional,
	3: RoleAdmin,
}

func ParseRole(raw string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "student":
		return RoleStudent, nil
	case "staff":
		return RoleStaff, nil
	case "professional":
		return RoleProfessional, nil
	case "admin":
		return RoleAdmin, nil
	}

	return "", fmt.Errorf("unknown role: %q", raw)
}

func (r *Role) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var label string
		if err := json.Unmarshal(data, &label); err != nil {
			return err
		}

		parsed, err := ParseRole(label)
		if err != nil {
			return err
		}

		*r = parsed
		return nil
	}

	ordinal, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("unknown role: %q", string(data))
	}

	mapped, ok := roleOrdinals[ordinal]
	if !ok {
		return fmt.Errorf("unknown role: %q", string(data))
	}

	*r = mapped
	return nil
}
