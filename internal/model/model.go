package model

type SendRequest struct {
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Message     string `json:"message" validate:"required"`
}

// BulkSendRequest carries one message text for many recipients.
type BulkSendRequest struct {
	PhoneNumbers []string `json:"phoneNumbers" validate:"required,min=1"`
	Message      string   `json:"message" validate:"required"`
}

// SendResult is the normalized outcome of one provider dispatch.
// Data holds the provider body on success, Details the provider error body.
type SendResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Data    any    `json:"data,omitempty"`
	Details any    `json:"details,omitempty"`
}

type BulkItemResult struct {
	PhoneNumber string `json:"phoneNumber"`
	Success     bool   `json:"success"`
	Error       string `json:"error,omitempty"`
}

type BulkSendResult struct {
	Success    bool             `json:"success"`
	Total      int              `json:"total"`
	Successful int              `json:"successful"`
	Failed     int              `json:"failed"`
	Results    []BulkItemResult `json:"results"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type HealthStatus struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
