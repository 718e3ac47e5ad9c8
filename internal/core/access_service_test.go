package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRevoker struct {
	revoked []string
	err     error
}

func (f *fakeRevoker) RevokeRefreshTokens(ctx context.Context, uid string) error {
	f.revoked = append(f.revoked, uid)
	return f.err
}

func TestResolveSessionAdmin(t *testing.T) {
	rev := &fakeRevoker{}
	svc := NewAccessService("dini@example.com", rev, zap.NewNop())

	sess, err := svc.ResolveSession(context.Background(), "uid-1", "dini@example.com")
	require.NoError(t, err)
	assert.True(t, sess.IsAdmin)
	assert.Equal(t, "uid-1", sess.UserID)
	assert.Empty(t, rev.revoked)
}

func TestResolveSessionAdminCaseInsensitive(t *testing.T) {
	svc := NewAccessService("Dini@Example.com", &fakeRevoker{}, zap.NewNop())

	sess, err := svc.ResolveSession(context.Background(), "uid-1", "DINI@example.COM")
	require.NoError(t, err)
	assert.True(t, sess.IsAdmin)
}

func TestResolveSessionNonAdminIsRevokedAndRejected(t *testing.T) {
	rev := &fakeRevoker{}
	svc := NewAccessService("dini@example.com", rev, zap.NewNop())

	_, err := svc.ResolveSession(context.Background(), "uid-2", "someone@else.com")
	assert.ErrorIs(t, err, ErrNotAdmin)
	assert.Equal(t, []string{"uid-2"}, rev.revoked)
}

func TestResolveSessionRevokeFailureStillRejects(t *testing.T) {
	rev := &fakeRevoker{err: assert.AnError}
	svc := NewAccessService("dini@example.com", rev, zap.NewNop())

	// Sign-out errors are swallowed; the rejection must stand regardless.
	_, err := svc.ResolveSession(context.Background(), "uid-2", "someone@else.com")
	assert.ErrorIs(t, err, ErrNotAdmin)
}

func TestResolveSessionEmptyEmailRejected(t *testing.T) {
	svc := NewAccessService("", &fakeRevoker{}, zap.NewNop())

	// An empty configured admin never matches an empty token email.
	_, err := svc.ResolveSession(context.Background(), "uid-3", "")
	assert.ErrorIs(t, err, ErrNotAdmin)
}
