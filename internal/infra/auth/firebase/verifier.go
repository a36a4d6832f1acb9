// Package firebase verifies Firebase ID tokens for the delivery layer.
package firebase

import (
	"context"
	"log/slog"

	"krishihive/config"
	"krishihive/internal/domain/service"
	"krishihive/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// tokenVerifier implements service.TokenVerifier with the Firebase Admin SDK.
type tokenVerifier struct {
	client *auth.Client
}

// Params defines the required parameters
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewTokenVerifier creates a Firebase-backed token verifier.
func NewTokenVerifier(params Params) (service.TokenVerifier, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.ProjectID == "" {
		return nil, errors.New("firebase.projectId is required")
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(params.Ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Auth(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	params.Logger.Info("Firebase token verifier initialized",
		slog.String("project_id", cfg.ProjectID),
	)

	return &tokenVerifier{client: client}, nil
}

// VerifyIDToken checks the token's signature and expiry and returns the
// identity claims it carries.
func (v *tokenVerifier) VerifyIDToken(ctx context.Context, idToken string) (*service.AuthClaims, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify ID token")
	}

	claims := &service.AuthClaims{UID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		claims.Email = email
	}
	if name, ok := token.Claims["name"].(string); ok {
		claims.DisplayName = name
	}
	if picture, ok := token.Claims["picture"].(string); ok {
		claims.PhotoURL = picture
	}

	return claims, nil
}
