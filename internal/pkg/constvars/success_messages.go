package constvars

const (
	SuccessLogin              = "Login successful!"
	SuccessLogout             = "You have been logged out"
	SuccessRegisterPatient    = "Patient registered successfully!"
	SuccessScheduleAppointment = "Appointment scheduled successfully!"
	SuccessAppointmentStatus  = "Appointment marked as %s"
	SuccessSaveConsultation   = "Consultation notes saved successfully!"
	SuccessCreatePrescription = "Prescription created successfully!"
	SuccessCreateInvoice      = "Invoice created successfully!"
	SuccessCreateUser         = "User created successfully!"
	SuccessUserActivated      = "User activated successfully!"
	SuccessUserDeactivated    = "User deactivated successfully!"
)
