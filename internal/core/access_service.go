package core

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"topup-backend-go/internal/models"
)

// TokenRevoker invalidates an identity's refresh tokens, forcing a new
// sign-in everywhere. *auth.Client from the Firebase Admin SDK satisfies it.
type TokenRevoker interface {
	RevokeRefreshTokens(ctx context.Context, uid string) error
}

// accessService implements AccessService with a single hardcoded admin
// address.
type accessService struct {
	adminEmail string
	revoker    TokenRevoker
	logger     *zap.Logger
}

// NewAccessService creates an AccessService. adminEmail is the one address
// allowed to hold an admin session.
func NewAccessService(adminEmail string, revoker TokenRevoker, logger *zap.Logger) AccessService {
	return &accessService{
		adminEmail: adminEmail,
		revoker:    revoker,
		logger:     logger,
	}
}

// ResolveSession admits only the admin address. Any other authenticated
// identity is signed out immediately: its refresh tokens are revoked
// (best-effort, errors swallowed) and ErrNotAdmin is returned so no
// non-admin session survives.
func (s *accessService) ResolveSession(ctx context.Context, userID, email string) (models.Session, error) {
	isAdmin := email != "" && strings.EqualFold(email, s.adminEmail)
	if !isAdmin {
		if s.revoker != nil {
			if err := s.revoker.RevokeRefreshTokens(ctx, userID); err != nil {
				// Sign-out is best effort; the rejection below stands either way.
				s.logger.Warn("failed to revoke non-admin session", zap.String("user_id", userID), zap.Error(err))
			}
		}
		s.logger.Info("non-admin sign-in rejected", zap.String("user_id", userID))
		return models.Session{}, fmt.Errorf("%w: %s", ErrNotAdmin, email)
	}
	return models.Session{UserID: userID, Email: email, IsAdmin: true}, nil
}
