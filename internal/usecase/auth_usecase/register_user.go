package auth

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"producttrial/internal/domain/model"
	"producttrial/internal/repository"
	"producttrial/internal/usecase"

	"github.com/labstack/gommon/log"
)

const minPasswordLength = 6

// 会員登録の入力
type RegisterUserInput struct {
	Username  string
	Firstname string
	Email     string
	Password  string
}

// 会員登録の出力（passwordは含めない）
type RegisterUserOutput struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Firstname string `json:"firstname,omitempty"`
	Email     string `json:"email"`
}

// RegisterUserUsecaseは会員登録の処理。
type RegisterUserUsecase struct {
	txm    repository.TransactionManager
	hasher PasswordHasher
	logger *log.Logger
}

// DI
func NewRegisterUserUsecase(
	txm repository.TransactionManager,
	hasher PasswordHasher,
	logger *log.Logger,
) *RegisterUserUsecase {
	return &RegisterUserUsecase{
		txm:    txm,
		hasher: hasher,
		logger: logger,
	}
}

func (in RegisterUserInput) validate() error {
	fields := map[string]string{}

	if strings.TrimSpace(in.Username) == "" {
		fields["username"] = "username is required"
	}
	if !isValidEmailFormat(in.Email) {
		fields["email"] = "email should be valid"
	}
	if len(in.Password) < minPasswordLength {
		fields["password"] = "password must be at least 6 characters"
	}

	if len(fields) > 0 {
		return usecase.Validation(fields)
	}
	return nil
}

// 会員登録実行（email -> username の順に重複チェック）
func (u *RegisterUserUsecase) Execute(ctx context.Context, in RegisterUserInput) (RegisterUserOutput, error) {
	if err := in.validate(); err != nil {
		return RegisterUserOutput{}, err
	}

	email := strings.TrimSpace(in.Email)
	username := strings.TrimSpace(in.Username)
	u.logger.Infof("register attempt email=%s", email)

	var user model.User
	err := u.txm.WithinTx(ctx, func(r repository.TxRepos) error {
		// email重複チェック
		exists, err := r.Users().ExistsByEmail(ctx, email)
		if err != nil {
			return usecase.Unexpected(err)
		}
		if exists {
			return usecase.Duplicate("User", "email", email)
		}

		exists, err = r.Users().ExistsByUsername(ctx, username)
		if err != nil {
			return usecase.Unexpected(err)
		}
		if exists {
			return usecase.Duplicate("User", "username", username)
		}

		// パスワードをハッシュ化
		hashed, err := u.hasher.Hash(in.Password)
		if err != nil {
			return usecase.Unexpected(err)
		}

		user = model.User{
			Username:     username,
			Firstname:    strings.TrimSpace(in.Firstname),
			Email:        email,
			PasswordHash: hashed, // ハッシュを保存（平文は保存しない）
		}
		if err := r.Users().Create(ctx, &user); err != nil {
			// 同時登録で一意制約に当たった場合
			if errors.Is(err, repository.ErrDuplicate) {
				return usecase.Duplicate("User", "email", email)
			}
			return usecase.Unexpected(err)
		}
		return nil
	})
	if err != nil {
		if usecase.KindOf(err) == usecase.KindDuplicateResource {
			u.logger.Warnf("register rejected: %v", err)
		}
		return RegisterUserOutput{}, usecase.Unexpected(err)
	}

	u.logger.Infof("user created id=%d email=%s", user.ID, user.Email)
	return RegisterUserOutput{
		ID:        user.ID,
		Username:  user.Username,
		Firstname: user.Firstname,
		Email:     user.Email,
	}, nil
}

// メールチェック
func isValidEmailFormat(email string) bool {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return false
	}
	addr, err := mail.ParseAddress(trimmed)
	return err == nil && addr.Address == trimmed
}
