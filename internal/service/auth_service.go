package service

import (
	"errors"
	"strings"

	"bitcast/internal/model"
	"bitcast/internal/pkg"

	"gorm.io/gorm"
)

type UserStore interface {
	Create(user *model.User) error
	FindByAddress(address string) (*model.User, error)
	FindByID(id uint64) (*model.User, error)
}

type AuthService struct {
	users UserStore
}

func NewAuthService(users UserStore) *AuthService {
	return &AuthService{users: users}
}

// SignIn 验签通过即登录，首次见到的地址自动注册
func (s *AuthService) SignIn(message, signature, signerAddress string) (string, string, error) {
	recovered, err := pkg.RecoverAddress(message, signature)
	if err != nil {
		return "", "", pkg.Unauthorized("Signature is invalid")
	}
	if !strings.EqualFold(recovered, signerAddress) {
		return "", "", pkg.Unauthorized("Signature is invalid")
	}

	user, err := s.users.FindByAddress(strings.ToLower(recovered))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = &model.User{Address: strings.ToLower(recovered)}
		if err := s.users.Create(user); err != nil {
			return "", "", err
		}
	} else if err != nil {
		return "", "", err
	}

	token, err := pkg.GenerateToken(user.ID, user.Address)
	if err != nil {
		return "", "", err
	}
	return recovered, token, nil
}
