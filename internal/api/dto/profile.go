package dto

// UserInfo representa os dados estáticos do usuário no perfil.
type UserInfo struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Stack string `json:"stack"`
}

// ProfileResponse representa a resposta do endpoint /me.
type ProfileResponse struct {
	Status    string   `json:"status"`
	User      UserInfo `json:"user"`
	Timestamp string   `json:"timestamp"`
	Fact      string   `json:"fact"`
}

// HealthResponse representa a resposta do endpoint /health.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// RootResponse representa a resposta informativa do endpoint raiz.
type RootResponse struct {
	Message   string            `json:"message"`
	Endpoints map[string]string `json:"endpoints"`
}
