// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package auth owns the OTP login flow and session-token storage. The
// token is an opaque string issued by the API; it lives in a plain-text
// file inside a credentials directory and is handed to the rest of the
// client as an explicit parameter on each call, never through globals.
package auth

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/LokendraNath/Dodoment-Managment-System/pkg/types"
)

// ErrNoToken reports that no session token is stored.
var ErrNoToken = errors.New("not logged in (run: docman login)")

// tokenFile is the filename the session token is stored under.
const tokenFile = "session-token"

// DefaultCredentialsDir is used when no credentials directory is configured.
const DefaultCredentialsDir = ".docman"

// Store reads and writes the session token file.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at the configured credentials
// directory, falling back to DefaultCredentialsDir when unset.
func NewStore(cfg types.AuthConfig) *Store {
	dir := cfg.CredentialsDir
	if dir == "" {
		dir = DefaultCredentialsDir
	}
	return &Store{dir: dir}
}

// Token returns the stored session token, or ErrNoToken when absent.
func (s *Store) Token() (string, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, tokenFile))
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoToken
		}
		return "", fmt.Errorf("reading token: %w", err)
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

// Save persists the token, creating the credentials directory if needed.
// The file is user-readable only.
func (s *Store) Save(token string) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("creating credentials directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, tokenFile), []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("writing token: %w", err)
	}
	return nil
}

// Clear removes the stored token. A missing file is not an error.
func (s *Store) Clear() error {
	err := os.Remove(filepath.Join(s.dir, tokenFile))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing token: %w", err)
	}
	return nil
}

// OTPClient is the slice of the API client the login flow needs.
type OTPClient interface {
	GenerateOTP(ctx context.Context, mobileNumber string) error
	ValidateOTP(ctx context.Context, mobileNumber, otp string) (string, error)
}

// Flow runs the two-step OTP login against the API and persists the
// resulting token.
type Flow struct {
	api   OTPClient
	store *Store
}

// NewFlow creates a login flow.
func NewFlow(api OTPClient, store *Store) *Flow {
	return &Flow{api: api, store: store}
}

// Begin requests an OTP for the mobile number.
func (f *Flow) Begin(ctx context.Context, mobileNumber string) error {
	if strings.TrimSpace(mobileNumber) == "" {
		return fmt.Errorf("mobile number required")
	}
	return f.api.GenerateOTP(ctx, mobileNumber)
}

// Complete validates the OTP, stores the issued token, and returns it.
func (f *Flow) Complete(ctx context.Context, mobileNumber, otp string) (string, error) {
	token, err := f.api.ValidateOTP(ctx, mobileNumber, otp)
	if err != nil {
		return "", err
	}
	if err := f.store.Save(token); err != nil {
		return "", err
	}
	return token, nil
}

// Logout clears the stored token.
func (f *Flow) Logout() error {
	return f.store.Clear()
}
