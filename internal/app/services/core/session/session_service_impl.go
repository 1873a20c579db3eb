package session

import (
	"arogya-service/internal/app/config"
	"arogya-service/internal/app/contracts"
	"arogya-service/internal/app/models"
	"arogya-service/internal/pkg/constvars"
	"arogya-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"
)

var (
	sessionServiceInstance contracts.SessionService
	onceSessionService     sync.Once
)

type sessionService struct {
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
}

func NewSessionService(redisRepository contracts.RedisRepository, internalConfig *config.InternalConfig) contracts.SessionService {
	onceSessionService.Do(func() {
		sessionServiceInstance = &sessionService{
			RedisRepository: redisRepository,
			InternalConfig:  internalConfig,
		}
	})
	return sessionServiceInstance
}

func (s *sessionService) CreateSession(ctx context.Context, session *models.Session) error {
	expiry := time.Duration(s.InternalConfig.App.SessionExpiredTimeInHours) * time.Hour
	session.ExpiresAt = time.Now().Add(expiry)
	key := constvars.RedisSessionKeyPrefix + session.SessionID
	return s.RedisRepository.Set(ctx, key, session, expiry)
}

func (s *sessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	if sessionData == "" {
		return nil, exceptions.ErrSessionInvalid(fmt.Errorf("empty session data"))
	}
	session := new(models.Session)
	if err := json.Unmarshal([]byte(sessionData), session); err != nil {
		return nil, exceptions.ErrSessionInvalid(err)
	}
	if time.Now().After(session.ExpiresAt) {
		return nil, exceptions.ErrSessionInvalid(fmt.Errorf("session expired"))
	}
	return session, nil
}

func (s *sessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return s.RedisRepository.Delete(ctx, constvars.RedisSessionKeyPrefix+sessionID)
}
