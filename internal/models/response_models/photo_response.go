package response_models

type Photo struct {
	ID          string `json:"id,omitempty"`
	Filename    string `json:"filename"`
	Path        string `json:"path"`
	URL         string `json:"url"`
	ContentType string `json:"content_type,omitempty"`
	SizeBytes   int64  `json:"size_bytes,omitempty"`
	UploadedAt  string `json:"uploaded_at,omitempty"`
	Placeholder bool   `json:"placeholder,omitempty"`
}
