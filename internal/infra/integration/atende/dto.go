package atende

type SignupInput struct {
	BusinessName string `json:"business_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
}

type SendMessageInput struct {
	To      string `json:"to"`
	Message string `json:"message"`
}

// ProxyResponse carrega status e corpo crus do upstream para o handler
// espelhar na resposta (os endpoints /onboarding/signup e /send são proxies).
type ProxyResponse struct {
	StatusCode int
	Body       []byte
}
