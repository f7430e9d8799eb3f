package v1handler

import (
	"context"
	"crypto/rsa"
	"phishguard/internal/api/specs/v1specs"
	"phishguard/internal/config"
	"phishguard/pkg/serrors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/ogen-go/ogen/ogenerrors"
)

type ctxKey string

// SubjectKey holds the uuid.UUID subject of an authenticated request.
const SubjectKey ctxKey = "subject"

type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA key verifying bearer tokens.
	PublicKey string
}

// NewSecHandlerOptions reads the verification key from cfg.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{PublicKey: cfg.HTTP.JWTPublicKey}
}

// SecHandler verifies RS256 bearer tokens whose subject is a UUID. Without a
// key it skips every token.
type SecHandler struct {
	key    *rsa.PublicKey
	parser *jwt.Parser
}

// Ensure SecHandler implements v1specs.SecurityHandler.
var _ v1specs.SecurityHandler = (*SecHandler)(nil)

func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	if opts == nil || strings.TrimSpace(opts.PublicKey) == "" {
		return &SecHandler{}, nil
	}

	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, err
	}

	return &SecHandler{
		key:    key,
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}), jwt.WithExpirationRequired()),
	}, nil
}

// Enabled reports whether a verification key is configured.
func (s *SecHandler) Enabled() bool {
	return s != nil && s.key != nil
}

// Subject returns the authenticated subject stored by HandleBearerAuth.
func Subject(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(SubjectKey).(uuid.UUID)

	return id, ok
}

// HandleBearerAuth validates the token and stores its subject in ctx.
func (s *SecHandler) HandleBearerAuth(
	ctx context.Context,
	_ v1specs.OperationName,
	t v1specs.BearerAuth) (context.Context, error) {
	if !s.Enabled() || isPublic(ctx) {
		return ctx, ogenerrors.ErrSkipServerSecurity
	}

	var claims jwt.RegisteredClaims
	if _, err := s.parser.ParseWithClaims(strings.TrimSpace(t.Token), &claims, func(*jwt.Token) (any, error) {
		return s.key, nil
	}); err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}

	return context.WithValue(ctx, SubjectKey, id), nil
}
