package dto

// OptionsResponse is the label catalog offered to clients.
type OptionsResponse struct {
	Personas       []string `json:"personas"`
	Agents         []string `json:"agents"`
	DefaultPersona string   `json:"defaultPersona"`
	DefaultAgent   string   `json:"defaultAgent"`
	MaxUploadBytes int64    `json:"maxUploadBytes"`
}
