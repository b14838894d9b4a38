package dto

type LoginRequest struct {
	Passphrase string `json:"passphrase"`
}

type LoginResponse struct {
	AccessToken string `json:"accessToken"`
}
