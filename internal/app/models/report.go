package models

type Report struct {
	ID          string `json:"id"`
	ReportID    string `json:"report_id"`
	PatientID   string `json:"patient_id"`
	PatientName string `json:"patient_name"`
	OrderID     string `json:"order_id,omitempty"`
	ReportType  string `json:"report_type"`
	TestName    string `json:"test_name"`
	FileName    string `json:"file_name,omitempty"`
	Findings    string `json:"findings,omitempty"`
	ImagingLink string `json:"imaging_link,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
	UploadedBy  string `json:"uploaded_by,omitempty"`
}
