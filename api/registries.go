package api

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/pallium-care/console/auth"
	"github.com/pallium-care/console/patients"
	"github.com/pallium-care/console/vcm"
)

func (h *Handler) patientResource() resource[patients.Patient] {
	return resource[patients.Patient]{
		h:        h,
		path:     "/patients",
		template: "patients",
		title:    "Patients",
		records:  h.patients,
		validate: patients.Validate,
		prepare: func(_ echo.Context, p patients.Patient) patients.Patient {
			return patients.Normalize(p)
		},
		label: patients.Patient.FullName,
		list: func(c echo.Context) ([]patients.Patient, error) {
			return h.patients.Search(c.Request().Context(), c.QueryParam("q"))
		},
		extra: func(echo.Context, []patients.Patient) (map[string]any, error) {
			return map[string]any{"SupportTypes": patients.SupportTypes}, nil
		},
	}
}

func (h *Handler) inNeedResource() resource[patients.InNeed] {
	return resource[patients.InNeed]{
		h:        h,
		path:     "/patients-in-need",
		template: "patients_in_need",
		title:    "Patients in need",
		records:  h.inNeed,
		validate: patients.ValidateInNeed,
		label: func(p patients.InNeed) string {
			return p.PatientName
		},
	}
}

func (h *Handler) volunteerResource() resource[vcm.Volunteer] {
	return resource[vcm.Volunteer]{
		h:        h,
		path:     "/volunteers",
		template: "volunteers",
		title:    "Volunteers",
		records:  h.vcm.Volunteers(),
		validate: vcm.ValidateVolunteer,
		label: func(v vcm.Volunteer) string {
			return v.Name
		},
	}
}

func (h *Handler) caregiverResource() resource[vcm.Caregiver] {
	return resource[vcm.Caregiver]{
		h:        h,
		path:     "/caregivers",
		template: "caregivers",
		title:    "Caregivers",
		records:  h.vcm.Caregivers(),
		validate: vcm.ValidateCaregiver,
		label: func(v vcm.Caregiver) string {
			return v.Name
		},
	}
}

func (h *Handler) medicalProfessionalResource() resource[vcm.MedicalProfessional] {
	return resource[vcm.MedicalProfessional]{
		h:        h,
		path:     "/medical-professionals",
		template: "medical_professionals",
		title:    "Medical professionals",
		records:  h.vcm.MedicalProfessionals(),
		validate: vcm.ValidateMedicalProfessional,
		label: func(v vcm.MedicalProfessional) string {
			return v.Name
		},
	}
}

// addPickers adds the patients and team members offered in select boxes.
// Only admins edit records that need them.
func (h *Handler) addPickers(c echo.Context, extra map[string]any) error {
	if !auth.GetSession(c.Request().Context()).IsAdmin() {
		return nil
	}

	ctx := c.Request().Context()
	list, err := h.patients.List(ctx)
	if err != nil {
		return err
	}
	members, err := h.vcm.Members(ctx)
	if err != nil {
		return err
	}
	extra["Patients"] = list
	extra["Members"] = members
	return nil
}

func (h *Handler) patientName(ctx context.Context, id string) string {
	if id == "" {
		return ""
	}
	p, err := h.patients.Get(ctx, id)
	if err != nil {
		h.logger.Debugw("unable to resolve patient name", "id", id, "error", err)
		return ""
	}
	return p.FullName()
}

// membersById resolves the picked member ids, skipping unknown ones.
func (h *Handler) membersById(ctx context.Context, ids ...string) ([]vcm.Member, error) {
	members, err := h.vcm.Members(ctx)
	if err != nil {
		return nil, err
	}
	index := make(map[string]vcm.Member, len(members))
	for _, m := range members {
		index[m.Id] = m
	}
	result := make([]vcm.Member, 0, len(ids))
	for _, id := range ids {
		if m, ok := index[id]; ok {
			result = append(result, m)
		}
	}
	return result, nil
}
