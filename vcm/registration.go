package vcm

import (
	"context"
	"fmt"

	errs "github.com/pallium-care/console/errors"
	"github.com/pallium-care/console/validation"
)

// Registration is the public sign up form shared by all three registries.
type Registration struct {
	Role           string `form:"role"`
	Name           string `form:"name"`
	PhoneNumber    string `form:"phone_number"`
	Email          string `form:"email"`
	Address        string `form:"address"`
	Availability   string `form:"availability"`
	Skills         string `form:"skills"`
	Notes          string `form:"notes"`
	Experience     string `form:"experience"`
	Certifications string `form:"certifications"`
	LicenseNumber  string `form:"license_number"`
	Specialization string `form:"specialization"`
}

func (r Registration) Volunteer() Volunteer {
	return Volunteer{
		Name:         r.Name,
		PhoneNumber:  r.PhoneNumber,
		Email:        r.Email,
		Address:      r.Address,
		Availability: r.Availability,
		Skills:       r.Skills,
		Notes:        r.Notes,
	}
}

func (r Registration) Caregiver() Caregiver {
	return Caregiver{
		Name:           r.Name,
		PhoneNumber:    r.PhoneNumber,
		Email:          r.Email,
		Address:        r.Address,
		Availability:   r.Availability,
		Experience:     r.Experience,
		Certifications: r.Certifications,
	}
}

func (r Registration) MedicalProfessional() MedicalProfessional {
	return MedicalProfessional{
		Name:           r.Name,
		PhoneNumber:    r.PhoneNumber,
		Email:          r.Email,
		LicenseNumber:  r.LicenseNumber,
		Specialization: r.Specialization,
		Availability:   r.Availability,
	}
}

// Validate checks the fields required by the chosen role.
func (r Registration) Validate() validation.Errors {
	switch Role(r.Role) {
	case RoleVolunteer:
		return ValidateVolunteer(normalizeVolunteer(r.Volunteer()))
	case RoleCaregiver:
		return ValidateCaregiver(normalizeCaregiver(r.Caregiver()))
	case RoleMedical:
		return ValidateMedicalProfessional(normalizeMedicalProfessional(r.MedicalProfessional()))
	default:
		errs := validation.Errors{}
		errs.Add("role", "Please choose whether you are registering as a volunteer, caregiver or medical professional")
		return errs
	}
}

func (s *service) Register(ctx context.Context, r Registration) (Member, error) {
	s.logger.Infow("registering team member", "role", r.Role)
	switch Role(r.Role) {
	case RoleVolunteer:
		v, err := s.volunteers.Create(ctx, r.Volunteer())
		if err != nil {
			return Member{}, err
		}
		return v.Member(), nil
	case RoleCaregiver:
		c, err := s.caregivers.Create(ctx, r.Caregiver())
		if err != nil {
			return Member{}, err
		}
		return c.Member(), nil
	case RoleMedical:
		m, err := s.medicalProfessionals.Create(ctx, r.MedicalProfessional())
		if err != nil {
			return Member{}, err
		}
		return m.Member(), nil
	default:
		return Member{}, fmt.Errorf("%w: unknown role %q", errs.BadRequest, r.Role)
	}
}
