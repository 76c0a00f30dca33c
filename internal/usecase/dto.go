package usecase

type CaptureLeadInput struct {
	Name             string `json:"name,omitempty"`
	Email            string `json:"email"`
	Phone            string `json:"phone,omitempty"`
	Company          string `json:"company,omitempty"`
	Industry         string `json:"industry,omitempty"`
	Source           string `json:"source,omitempty"`
	MarketingConsent bool   `json:"marketing_consent,omitempty"`
}

type CaptureLeadOutput struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	LeadID    string `json:"leadId"`
	IsNewLead bool   `json:"isNewLead"`
}

type SlideDeckInput struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type SlideDeckOutput struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SignupInput é repassado como está para a API de produção.
type SignupInput struct {
	BusinessName string `json:"business_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
}

type SendMessageInput struct {
	To      string `json:"to"`
	Message string `json:"message"`
}

type CreateLinkInput struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
	Email   string `json:"email,omitempty"`
}

type CreateLinkOutput struct {
	ShortLink   string `json:"shortLink"`
	OriginalURL string `json:"originalUrl"`
	TrackingID  string `json:"trackingId"`
}
