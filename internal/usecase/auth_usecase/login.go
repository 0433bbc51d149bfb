package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"producttrial/internal/repository"
	"producttrial/internal/usecase"
)

// handlerからusecaseに渡す入力
type LoginInput struct {
	Email    string
	Password string
}

// handlerがJSONにして返す
type LoginOutput struct {
	Token string `json:"token"`
}

// メールまたはパスワードが違う
var ErrInvalidCredentials = usecase.AuthenticationFailure("Invalid email or password")

// JWTを発行する約束
type AccessTokenIssuer interface {
	Issue(email string, now time.Time) (token string, expiresAt time.Time, err error)
}

type LoginUsecase struct {
	userRepo repository.UserRepository
	verifier PasswordVerifier
	issuer   AccessTokenIssuer
	clock    usecase.Clock
}

func NewLoginUsecase(
	userRepo repository.UserRepository,
	verifier PasswordVerifier,
	issuer AccessTokenIssuer,
	clock usecase.Clock,
) *LoginUsecase {
	return &LoginUsecase{
		userRepo: userRepo,
		verifier: verifier,
		issuer:   issuer,
		clock:    clock,
	}
}

// ログイン処理を実行する
func (u *LoginUsecase) Execute(ctx context.Context, in LoginInput) (LoginOutput, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return LoginOutput{}, ErrInvalidCredentials
	}

	//emailでユーザー取得
	user, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return LoginOutput{}, ErrInvalidCredentials
		}
		return LoginOutput{}, usecase.Unexpected(err)
	}

	//パスワード照合
	if ok := u.verifier.Verify(in.Password, user.PasswordHash); !ok {
		return LoginOutput{}, ErrInvalidCredentials
	}

	//AccessToken発行
	token, _, err := u.issuer.Issue(user.Email, u.clock.Now())
	if err != nil {
		return LoginOutput{}, usecase.Unexpected(err)
	}

	return LoginOutput{Token: token}, nil
}
