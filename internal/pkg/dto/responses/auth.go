package responses

import "gangosri-portal/internal/app/models"

type Token struct {
	AccessToken string             `json:"access_token"`
	TokenType   string             `json:"token_type"`
	User        models.UserProfile `json:"user"`
}
