package predefine

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/bsthun/gut"
	"github.com/golang-jwt/jwt/v5"
)

type LoginClaims struct {
	UserId    *uint64    `json:"userId"`
	ExpiredAt *time.Time `json:"exp"`
}

func (r *LoginClaims) GetExpirationTime() (*jwt.NumericDate, error) {
	if r.ExpiredAt == nil {
		return nil, nil
	}
	return &jwt.NumericDate{
		Time: *r.ExpiredAt,
	}, nil
}

func (r *LoginClaims) GetIssuedAt() (*jwt.NumericDate, error) {
	return nil, nil
}

func (r *LoginClaims) GetNotBefore() (*jwt.NumericDate, error) {
	return nil, nil
}

func (r *LoginClaims) GetIssuer() (string, error) {
	return "", nil
}

func (r *LoginClaims) GetSubject() (string, error) {
	return gut.IdEncode(*r.UserId), nil
}

func (r *LoginClaims) GetAudience() (jwt.ClaimStrings, error) {
	return nil, nil
}

func (r *LoginClaims) MarshalJSON() ([]byte, error) {
	payload := map[string]any{
		"userId": gut.IdEncode(*r.UserId),
	}
	if r.ExpiredAt != nil {
		payload["exp"] = r.ExpiredAt.Unix()
	}
	return json.Marshal(payload)
}

func (r *LoginClaims) UnmarshalJSON(data []byte) error {
	var raw struct {
		UserId *string  `json:"userId"`
		Exp    *float64 `json:"exp"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.UserId == nil {
		return errors.New("claims missing userId")
	}

	userId, err := gut.IdDecode(*raw.UserId)
	if err != nil {
		return err
	}
	r.UserId = &userId
	if raw.Exp != nil {
		expiredAt := time.Unix(int64(*raw.Exp), 0)
		r.ExpiredAt = &expiredAt
	}
	return nil
}
