package storage

import (
	"context"
	"fmt"

	"canteen/canteen-svc/internal/domain"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// FirebaseIdentity delegates account creation and sign-in to Firebase Authentication.
// Clients sign in with the Firebase SDK and present the resulting ID token.
type FirebaseIdentity struct {
	Client *auth.Client
}

func NewFirebaseIdentity(ctx context.Context, projectID, credentialsPath string) (*FirebaseIdentity, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Firebase Auth client: %w", err)
	}
	return &FirebaseIdentity{Client: client}, nil
}

func (f *FirebaseIdentity) CreateIdentity(ctx context.Context, email, password, displayName string) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password)
	if displayName != "" {
		params = params.DisplayName(displayName)
	}

	record, err := f.Client.CreateUser(ctx, params)
	if err != nil {
		if auth.IsEmailAlreadyExists(err) {
			return "", domain.ErrDuplicate
		}
		return "", err
	}
	return record.UID, nil
}

func (f *FirebaseIdentity) VerifyCredentials(ctx context.Context, creds domain.Credentials) (string, error) {
	if creds.IDToken == "" {
		return "", domain.ErrInvalidPassword
	}
	token, err := f.Client.VerifyIDToken(ctx, creds.IDToken)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidPassword, err)
	}
	return token.UID, nil
}

func (f *FirebaseIdentity) DeleteIdentity(ctx context.Context, uid string) error {
	err := f.Client.DeleteUser(ctx, uid)
	if auth.IsUserNotFound(err) {
		return nil
	}
	return err
}
