package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/socialboost/vision/models"
	"github.com/socialboost/vision/store"
	"github.com/socialboost/vision/utils"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("Credenciais inválidas")
	ErrMissingFields      = errors.New("Preencha todos os campos")
	ErrPasswordMismatch   = errors.New("As senhas não coincidem!")
)

// ForgotPasswordMessage is returned whether or not the e-mail belongs to a user
const ForgotPasswordMessage = "Se o email estiver cadastrado, você receberá as instruções de recuperação."

// RegisterRequest carries the sign-up form
type RegisterRequest struct {
	Name            string `json:"name"`
	Login           string `json:"login"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Session is a logged-in user and its bearer token
type Session struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

type AuthService struct {
	users  store.UserStore
	mailer Mailer
}

func NewAuthService(users store.UserStore, mailer Mailer) *AuthService {
	return &AuthService{users: users, mailer: mailer}
}

// Login accepts either the login or the e-mail as identifier
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*Session, error) {
	u, err := s.users.FindUser(ctx, strings.TrimSpace(identifier))
	if errors.Is(err, store.ErrUserNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.session(u)
}

// Register creates the user and logs them in
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*Session, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Login = strings.TrimSpace(req.Login)
	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" || req.Login == "" || req.Email == "" || req.Password == "" {
		return nil, ErrMissingFields
	}
	if req.Password != req.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		ID:        uuid.NewString(),
		Login:     req.Login,
		Name:      req.Name,
		Email:     req.Email,
		Password:  string(hashedPassword),
		CreatedAt: time.Now(),
	}
	session, err := s.session(u)
	if err != nil {
		return nil, err
	}
	if err := s.users.CreateUser(ctx, u); err != nil {
		return nil, err
	}
	return session, nil
}

// ForgotPassword sends the reset e-mail when the address is known
func (s *AuthService) ForgotPassword(ctx context.Context, email string) (string, error) {
	u, err := s.users.FindUserByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, store.ErrUserNotFound) {
		return ForgotPasswordMessage, nil
	}
	if err != nil {
		return "", err
	}

	if s.mailer != nil {
		err := s.mailer.SendEmail(u.Name, u.Email, "Recuperação de senha - SocialBoost Vision",
			"Recebemos uma solicitação de redefinição de senha para sua conta.",
			"<p>Recebemos uma solicitação de <strong>redefinição de senha</strong> para sua conta.</p>")
		if err != nil && !errors.Is(err, utils.ErrEmailDisabled) {
			log.Printf("[Auth] Failed to send reset e-mail to %s: %v", u.Email, err)
		}
	}
	return ForgotPasswordMessage, nil
}

func (s *AuthService) session(u *models.User) (*Session, error) {
	token, err := utils.GenerateToken(u.ID)
	if err != nil {
		return nil, err
	}
	return &Session{User: u, Token: token}, nil
}
