package dtos

// DoctorForm defines the payload of a submitted doctor form. Values are kept
// as submitted strings; the validation package decides whether they are
// acceptable.
type DoctorForm struct {
	Name            string `json:"name" form:"name"`
	Specialization  string `json:"specialization" form:"specialization"`
	AvailableDays   string `json:"availableDays" form:"availableDays"`
	AvailableTime   string `json:"availableTime" form:"availableTime"`
	ConsultationFee string `json:"consultationFee" form:"consultationFee"`
}
