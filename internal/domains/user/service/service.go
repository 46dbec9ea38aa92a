package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"hoteloncall/config"
	"hoteloncall/infras/jwt"
	"hoteloncall/infras/otel"
	"hoteloncall/infras/postgres"
	stayRepo "hoteloncall/internal/domains/stay/repository"
	"hoteloncall/internal/domains/user/model"
	"hoteloncall/internal/domains/user/model/dto"
	"hoteloncall/internal/domains/user/repository"
	"hoteloncall/internal/events"
	"hoteloncall/shared"
	"hoteloncall/shared/constant"
	gDto "hoteloncall/shared/dto"
	"hoteloncall/shared/failure"
	gModel "hoteloncall/shared/model"
	"hoteloncall/shared/password"
	"hoteloncall/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const verificationCodeDigits = 1000000

var roleRedirects = map[string]string{
	constant.UserTypeManager:     constant.RedirectManagerDashboard,
	constant.UserTypeCook:        constant.RedirectCookDashboard,
	constant.UserTypeCleaner:     constant.RedirectCleanerDashboard,
	constant.UserTypeMaintenance: constant.RedirectMaintenanceDashboard,
}

type User interface {
	Register(ctx context.Context, req dto.RegisterRequest) (dto.AuthResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.AuthResponse, error)
	SendVerificationCode(ctx context.Context, req dto.SendVerificationCodeRequest) (dto.MessageResponse, error)
	ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) (dto.MessageResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, userID string) error
}

type serviceImpl struct {
	repo          repository.User
	staffRoleRepo repository.StaffRole
	codeRepo      repository.VerificationCode
	checkInRepo   stayRepo.CheckIn
	txRunner      postgres.TxRunner
	publisher     events.Publisher
	jwtService    jwt.JWT
	cfg           *config.Config
	otel          otel.Otel
}

func New(
	repo repository.User,
	staffRoleRepo repository.StaffRole,
	codeRepo repository.VerificationCode,
	checkInRepo stayRepo.CheckIn,
	txRunner postgres.TxRunner,
	publisher events.Publisher,
	jwtService jwt.JWT,
	cfg *config.Config,
	otel otel.Otel,
) User {
	return &serviceImpl{
		repo:          repo,
		staffRoleRepo: staffRoleRepo,
		codeRepo:      codeRepo,
		checkInRepo:   checkInRepo,
		txRunner:      txRunner,
		publisher:     publisher,
		jwtService:    jwtService,
		cfg:           cfg,
		otel:          otel,
	}
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (res dto.AuthResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	exists, err := s.repo.Exist(ctx, shared.FilterByField(req.Email, model.FieldEmail, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return res, fmt.Errorf("failed to check if user exists: %w", err)
	}

	if exists {
		return dto.AuthResponse{Success: false, Message: "User already exists!"}, nil
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	if err = s.repo.Insert(ctx, req.ToModel(req.Email, hashedPassword)); err != nil {
		log.Error().Err(err).Msg("failed to create user")

		return res, fmt.Errorf("failed to create user: %w", err)
	}

	return dto.AuthResponse{
		Success:    true,
		Message:    "User registered successfully!",
		RedirectTo: constant.RedirectLogin,
	}, nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.AuthResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByField(req.Email, model.FieldEmail, model.TableName)
	if req.UserType != "" {
		filter.Operator = gDto.FilterGroupOperatorAnd
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldUserType,
			Operator: gDto.FilterOperatorEq,
			Value:    req.UserType,
			Table:    model.TableName,
		})
	}

	user, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == "" {
		log.Warn().Str("email", req.Email).Msg("login attempt for unknown user")

		return dto.AuthResponse{Success: false, Message: "User not found!"}, nil
	}

	if err := password.Verify(req.Password, user.Password); err != nil {
		log.Warn().Str("email", req.Email).Msg("login attempt with wrong password")

		return dto.AuthResponse{Success: false, Message: "Invalid credentials!"}, nil
	}

	redirectTo, err := s.resolveRedirect(ctx, user)
	if err != nil {
		return res, err
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(user.ID, user.Email, user.UserType)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return dto.AuthResponse{
		Success:    true,
		Message:    "Login successful!",
		RedirectTo: redirectTo,
		Email:      user.Email,
		Tokens:     tokenPair,
	}, nil
}

// resolveRedirect picks the landing page. Guests land on their services page
// only when a stay is active; staff land on the dashboard their assigned
// role maps to.
func (s *serviceImpl) resolveRedirect(ctx context.Context, user model.User) (string, error) {
	if user.UserType == constant.UserTypeGuest {
		checkIn, err := s.checkInRepo.GetActiveByGuestEmail(ctx, user.Email)
		if err != nil {
			log.Error().Err(err).Msg("failed to get active check-in")

			return "", fmt.Errorf("failed to get active check-in: %w", err)
		}

		if checkIn.ID != "" {
			return constant.RedirectGuestServices, nil
		}

		return constant.RedirectCheckin, nil
	}

	staffRole, err := s.staffRoleRepo.Get(ctx, shared.FilterByField(user.Email, model.StaffRoleFieldStaffEmail, model.StaffRoleTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get staff role")

		return "", fmt.Errorf("failed to get staff role: %w", err)
	}

	if redirect, ok := roleRedirects[staffRole.Role]; ok {
		return redirect, nil
	}

	log.Warn().Str("email", user.Email).Str("role", staffRole.Role).Msg("staff user without an assigned role")

	return "", failure.Forbidden("No role assigned for staff account.")
}

func (s *serviceImpl) SendVerificationCode(ctx context.Context, req dto.SendVerificationCodeRequest) (res dto.MessageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SendVerificationCode")
	defer scope.End()
	defer scope.TraceIfError(err)

	exists, err := s.repo.Exist(ctx, shared.FilterByField(req.Email, model.FieldEmail, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return res, fmt.Errorf("failed to check if user exists: %w", err)
	}

	if !exists {
		return res, failure.NotFound("User not found.")
	}

	code, err := generateCode()
	if err != nil {
		log.Error().Err(err).Msg("failed to generate verification code")

		return res, fmt.Errorf("failed to generate verification code: %w", err)
	}

	// One pending code per email.
	if err = s.codeRepo.Delete(ctx, shared.FilterByField(req.Email, model.VerificationCodeFieldEmail, model.VerificationCodeTableName)); err != nil {
		log.Error().Err(err).Msg("failed to clear previous verification codes")

		return res, fmt.Errorf("failed to clear previous verification codes: %w", err)
	}

	ttl := s.cfg.Hotel.VerificationTTLMin

	if err = s.codeRepo.Insert(ctx, model.VerificationCode{
		ID:        uuid.NewString(),
		Email:     req.Email,
		Code:      code,
		ExpiresAt: timezone.Now().Add(time.Duration(ttl) * time.Minute),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  constant.ContextSystem,
			ModifiedBy: constant.ContextSystem,
		},
	}); err != nil {
		log.Error().Err(err).Msg("failed to store verification code")

		return res, fmt.Errorf("failed to store verification code: %w", err)
	}

	s.publisher.Publish(ctx, events.Event{
		Kind:       events.KindVerificationCode,
		GuestEmail: req.Email,
		Payload: map[string]string{
			"code":       code,
			"ttlMinutes": strconv.Itoa(ttl),
		},
	})

	return dto.MessageResponse{Message: "Verification code sent to your email."}, nil
}

func (s *serviceImpl) ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) (res dto.MessageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ResetPassword")
	defer scope.End()
	defer scope.TraceIfError(err)

	codeFilter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.VerificationCodeFieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    req.Email,
				Table:    model.VerificationCodeTableName,
			},
			gDto.Filter{
				Field:    model.VerificationCodeFieldCode,
				Operator: gDto.FilterOperatorEq,
				Value:    req.Code,
				Table:    model.VerificationCodeTableName,
			},
		},
	}

	code, err := s.codeRepo.Get(ctx, codeFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get verification code")

		return res, fmt.Errorf("failed to get verification code: %w", err)
	}

	if code.ID == "" || timezone.Now().After(code.ExpiresAt) {
		return res, failure.BadRequestFromString("Invalid or expired verification code.")
	}

	hashedPassword, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	updatePassword := dto.UpdatePasswordRequest{Password: hashedPassword}
	updatedFields := shared.TransformFields(updatePassword, req.Email)

	// Consume the code and change the password together.
	err = s.txRunner.WithTx(ctx, func(sqltx *sqlx.Tx) error {
		if err := s.codeRepo.DeleteTx(ctx, sqltx, shared.FilterByID(code.ID, model.VerificationCodeFieldID, model.VerificationCodeTableName)); err != nil {
			return fmt.Errorf("failed to consume verification code: %w", err)
		}

		if err := s.repo.UpdateTx(ctx, sqltx, updatedFields, shared.FilterByField(req.Email, model.FieldEmail, model.TableName)); err != nil {
			return fmt.Errorf("failed to update password: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to reset password")

		return res, err
	}

	return dto.MessageResponse{
		Message:    "Password reset successfully!",
		RedirectTo: constant.RedirectLogin,
	}, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	tokenPair, err := s.jwtService.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token")
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangePassword")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.repo.Get(ctx, shared.FilterByID(userID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == "" {
		return failure.NotFound("user not found")
	}

	if err := password.Verify(req.CurrentPassword, user.Password); err != nil {
		return failure.BadRequestFromString("current password is incorrect")
	}

	hashedPassword, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash new password")

		return fmt.Errorf("failed to hash new password: %w", err)
	}

	updatePassword := dto.UpdatePasswordRequest{Password: hashedPassword}
	updatedFields := shared.TransformFields(updatePassword, user.Email)

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(userID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(verificationCodeDigits))
	if err != nil {
		return "", fmt.Errorf("failed to read random source: %w", err)
	}

	return fmt.Sprintf("%06d", n.Int64()), nil
}
