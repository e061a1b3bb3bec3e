package response

type HealthResponse struct {
	Status string `json:"status"`
	DB     string `json:"db"`
	Env    string `json:"env"`
}
