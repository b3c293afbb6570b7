package converter

import (
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	qualifications := make([]string, len(doctor.Qualifications))
	for i, q := range doctor.Qualifications {
		qualifications[i] = q.Name
	}

	return &dto.DoctorResponse{
		ID:                doctor.ID,
		UserID:            doctor.UserID,
		Name:              doctor.Name,
		Email:             doctor.Email,
		OfficeNumber:      doctor.OfficeNumber,
		Specialization:    doctor.Specialization.Name,
		Qualifications:    qualifications,
		YearsOfExperience: doctor.YearsOfExperience,
		ImagePath:         doctor.ImagePath,
		CreatedAt:         doctor.CreatedAt,
		UpdatedAt:         doctor.UpdatedAt,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i, doctor := range doctors {
		responses[i] = *DoctorToResponse(&doctor)
	}
	return responses
}
