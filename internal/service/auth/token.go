package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/Temutjin2k/ubar/internal/domain/models"
	"github.com/Temutjin2k/ubar/internal/domain/types"
	"github.com/Temutjin2k/ubar/pkg/logger"
	wrap "github.com/Temutjin2k/ubar/pkg/logger/wrapper"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService issues and validates the driver access tokens.
// A token is bound to the device whose session logged in.
type TokenService struct {
	AccessTTL time.Duration
	secret    string
	now       func() time.Time
	log       logger.Logger
}

func NewTokenService(secret string, accessTTL time.Duration, log logger.Logger) *TokenService {
	return &TokenService{
		AccessTTL: accessTTL,
		secret:    secret,
		now:       func() time.Time { return time.Now().UTC() },
		log:       log,
	}
}

func (s *TokenService) getSecret() string {
	return s.secret
}

// IssueDriverToken signs an access token for driverID on deviceID.
func (s *TokenService) IssueDriverToken(ctx context.Context, driverID, deviceID string) (models.IssuedToken, error) {
	ctx = wrap.WithAction(ctx, "issue_driver_token")
	if driverID == "" || deviceID == "" {
		return models.IssuedToken{}, wrap.Error(ctx, fmt.Errorf("driver and device are required"))
	}

	issuedAt := s.now()
	exp := issuedAt.Add(s.AccessTTL)

	token, err := s.signClaims(NewDriverClaim(driverID, deviceID, issuedAt, s.AccessTTL, uuid.New()))
	if err != nil {
		return models.IssuedToken{}, wrap.Error(ctx, err)
	}

	return models.IssuedToken{Token: token, ExpiresAt: exp}, nil
}

// Validate validates the given JWT token string, returning the driver claims if valid.
func (s *TokenService) Validate(ctx context.Context, token string) (*models.DriverClaims, error) {
	ctx = wrap.WithAction(ctx, "validate_token")

	parsedToken, err := jwt.ParseWithClaims(token, jwt.MapClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, types.ErrInvalidToken
		}
		return []byte(s.getSecret()), nil
	}, jwt.WithoutClaimsValidation())
	if err != nil || !parsedToken.Valid {
		return nil, wrap.Error(ctx, types.ErrInvalidToken)
	}

	mc, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok {
		return nil, wrap.Error(ctx, types.ErrInvalidToken)
	}

	typ, _ := mc["typ"].(string)
	if typ != models.AccessToken {
		return nil, wrap.Error(ctx, types.ErrInvalidToken)
	}

	driverID, _ := mc["driver_id"].(string)
	deviceID, _ := mc["device_id"].(string)
	if driverID == "" || deviceID == "" {
		return nil, wrap.Error(ctx, fmt.Errorf("%w: missing driver or device", types.ErrInvalidToken))
	}

	tokenIDStr, _ := mc["jti"].(string)
	tokenID, err := uuid.Parse(tokenIDStr)
	if err != nil {
		return nil, wrap.Error(ctx, fmt.Errorf("%w: invalid 'jti'", types.ErrInvalidToken))
	}

	role, _ := mc["role"].(string)

	expFloat, ok := mc["exp"].(float64)
	if !ok {
		return nil, wrap.Error(ctx, fmt.Errorf("%w: missing 'exp'", types.ErrInvalidToken))
	}

	expTime := time.Unix(int64(expFloat), 0)
	if s.now().After(expTime) {
		return nil, wrap.Error(ctx, types.ErrExpToken)
	}

	return &models.DriverClaims{
		TokenID:   tokenID,
		TokenType: typ,
		DriverID:  driverID,
		DeviceID:  deviceID,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expTime),
		},
	}, nil
}

func (s *TokenService) signClaims(claims jwt.Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.getSecret()))
}

func NewDriverClaim(driverID, deviceID string, issuedAt time.Time, ttl time.Duration, tokenID uuid.UUID) jwt.Claims {
	return jwt.MapClaims{
		"typ":       models.AccessToken,
		"jti":       tokenID.String(),
		"driver_id": driverID,
		"device_id": deviceID,
		"role":      types.DriverRole.String(),
		"iat":       issuedAt.Unix(),
		"exp":       issuedAt.Add(ttl).Unix(),
	}
}
