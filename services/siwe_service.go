package services

import (
	"fmt"
	"sync"
	"time"

	siwe "github.com/spruceid/siwe-go"

	"github.com/wanjikuh/shop_admin/apperrors"
	"github.com/wanjikuh/shop_admin/logger"
)

const nonceTTL = 5 * time.Minute

// SiweService handles Sign-In-With-Ethereum: it issues short-lived nonces
// and verifies signed messages against them. Nonces are single-use and
// kept in process; expired ones are purged by a scheduled job.
type SiweService interface {
	GenerateNonce() string
	Verify(message, signature string) (string, error)
	PurgeExpiredNonces() int
}

type siweService struct {
	domain string
	log    *logger.Logger

	mu     sync.Mutex
	nonces map[string]time.Time
}

func NewSiweService(domain string, baseLog *logger.Logger) SiweService {
	return &siweService{
		domain: domain,
		log:    baseLog.With("service", "SiweService"),
		nonces: make(map[string]time.Time),
	}
}

func (s *siweService) GenerateNonce() string {
	nonce := siwe.GenerateNonce()
	s.mu.Lock()
	s.nonces[nonce] = time.Now().Add(nonceTTL)
	s.mu.Unlock()
	return nonce
}

// Verify parses the SIWE message, consumes its nonce and checks the
// signature. On success it returns the checksummed wallet address.
func (s *siweService) Verify(message, signature string) (string, error) {
	msg, err := siwe.ParseMessage(message)
	if err != nil {
		return "", fmt.Errorf("%w: malformed SIWE message", apperrors.ErrInvalidInput)
	}

	if !s.consumeNonce(msg.GetNonce()) {
		return "", fmt.Errorf("%w: unknown or expired nonce", apperrors.ErrUnauthorized)
	}

	now := time.Now().UTC()
	if _, err := msg.Verify(signature, &s.domain, nil, &now); err != nil {
		s.log.Warn("siwe verification failed", "error", err)
		return "", apperrors.ErrUnauthorized
	}

	return msg.GetAddress().Hex(), nil
}

func (s *siweService) consumeNonce(nonce string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	expiry, ok := s.nonces[nonce]
	if !ok {
		return false
	}
	delete(s.nonces, nonce)
	return time.Now().Before(expiry)
}

func (s *siweService) PurgeExpiredNonces() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	purged := 0
	for nonce, expiry := range s.nonces {
		if now.After(expiry) {
			delete(s.nonces, nonce)
			purged++
		}
	}
	return purged
}
