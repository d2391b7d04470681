package token

import (
	"time"

	"github.com/swamyrayudu/localhunt-backend/internal/config"
)

func jwtTestConfig() config.JWT {
	return config.JWT{
		Secret:          "test-secret",
		SessionTokenTTL: time.Hour,
	}
}
