package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sitetrack/site-server/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Login authenticates a worker by phone and password and issues a JWT.
// A worker with no stored password uses their phone number as a first-time
// default and is flagged to reset it.
func (s *DefaultService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	worker, err := s.repo.GetWorkerByPhone(ctx, req.Phone)
	if err != nil {
		return nil, fmt.Errorf("error getting worker: %w", err)
	}
	if worker == nil {
		return nil, ErrInvalidCredentials
	}

	mustReset := worker.MustResetPassword
	if worker.Password == "" {
		if req.Password != worker.Phone {
			return nil, ErrInvalidCredentials
		}
		mustReset = true
	} else if err := bcrypt.CompareHashAndPassword([]byte(worker.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.generateJWT(worker)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	return &models.LoginResponse{
		Status:            "success",
		Token:             token,
		ExpiresIn:         int(s.tokenDuration.Seconds()),
		MustResetPassword: mustReset,
		Worker:            worker,
	}, nil
}

// ChangePassword stores a new bcrypt hash and clears the reset flag
func (s *DefaultService) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error {
	worker, err := s.repo.GetWorker(ctx, req.WorkerID)
	if err != nil {
		return fmt.Errorf("error getting worker: %w", err)
	}
	if worker == nil {
		return notFound("worker", req.WorkerID)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	return s.repo.UpdateWorkerPassword(ctx, worker.ID, string(hashed), false)
}

// ResetPassword sets a worker's password back to their phone number and
// forces a reset on next login
func (s *DefaultService) ResetPassword(ctx context.Context, workerID string) error {
	worker, err := s.repo.GetWorker(ctx, workerID)
	if err != nil {
		return fmt.Errorf("error getting worker: %w", err)
	}
	if worker == nil {
		return notFound("worker", workerID)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(worker.Phone), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	return s.repo.UpdateWorkerPassword(ctx, worker.ID, string(hashed), true)
}

// Helper methods
func (s *DefaultService) generateJWT(worker *models.Worker) (string, error) {
	expirationTime := time.Now().Add(s.tokenDuration)

	claims := jwt.MapClaims{
		"sub": worker.ID, // subject
		"exp": expirationTime.Unix(),
		"iat": time.Now().Unix(), // issued at
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}
