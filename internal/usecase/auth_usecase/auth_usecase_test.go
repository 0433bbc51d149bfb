package auth_test

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"producttrial/internal/domain/model"
	"producttrial/internal/repository"
	"producttrial/internal/repository/mocks"
	"producttrial/internal/usecase"
	auth "producttrial/internal/usecase/auth_usecase"

	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// =====================
// Mocks
// =====================

type HasherMock struct{ mock.Mock }

func (m *HasherMock) Hash(plain string) (string, error) {
	args := m.Called(plain)
	return args.String(0), args.Error(1)
}

type IssuerMock struct{ mock.Mock }

func (m *IssuerMock) Issue(email string, now time.Time) (string, time.Time, error) {
	args := m.Called(email, now)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func quietLogger() *log.Logger {
	l := log.New("test")
	l.SetOutput(io.Discard)
	return l
}

func kind(err error) usecase.ErrorKind { return usecase.KindOf(err) }

// =====================
// Register
// =====================

func TestRegister_Success(t *testing.T) {
	txm := mocks.NewTxManager()
	r := txm.Repos
	hasher := new(HasherMock)
	uc := auth.NewRegisterUserUsecase(txm, hasher, quietLogger())

	r.UserRepo.On("ExistsByEmail", mock.Anything, "a@x.com").Return(false, nil)
	r.UserRepo.On("ExistsByUsername", mock.Anything, "a").Return(false, nil)
	hasher.On("Hash", "secret1").Return("HASHED", nil)
	r.UserRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.Email == "a@x.com" && u.Username == "a" && u.PasswordHash == "HASHED"
	})).Run(func(args mock.Arguments) { args.Get(1).(*model.User).ID = 1 }).Return(nil)

	out, err := uc.Execute(context.Background(), auth.RegisterUserInput{
		Username: "a", Firstname: "Ann", Email: "a@x.com", Password: "secret1",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), out.ID)
	assert.Equal(t, "Ann", out.Firstname)
	r.AssertExpectations(t)
	hasher.AssertExpectations(t)
}

func TestRegister_DuplicateEmailCheckedFirst(t *testing.T) {
	txm := mocks.NewTxManager()
	r := txm.Repos
	uc := auth.NewRegisterUserUsecase(txm, new(HasherMock), quietLogger())

	r.UserRepo.On("ExistsByEmail", mock.Anything, "a@x.com").Return(true, nil)

	_, err := uc.Execute(context.Background(), auth.RegisterUserInput{Username: "a", Email: "a@x.com", Password: "secret1"})
	assert.Equal(t, usecase.KindDuplicateResource, kind(err))
	assert.Contains(t, err.Error(), "email")
	r.UserRepo.AssertNotCalled(t, "ExistsByUsername", mock.Anything, mock.Anything)
	r.UserRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	txm := mocks.NewTxManager()
	r := txm.Repos
	uc := auth.NewRegisterUserUsecase(txm, new(HasherMock), quietLogger())

	r.UserRepo.On("ExistsByEmail", mock.Anything, "c@x.com").Return(false, nil)
	r.UserRepo.On("ExistsByUsername", mock.Anything, "a").Return(true, nil)

	_, err := uc.Execute(context.Background(), auth.RegisterUserInput{Username: "a", Email: "c@x.com", Password: "secret1"})
	assert.Equal(t, usecase.KindDuplicateResource, kind(err))
	assert.Contains(t, err.Error(), "username")
}

func TestRegister_UniqueViolationRace(t *testing.T) {
	txm := mocks.NewTxManager()
	r := txm.Repos
	hasher := new(HasherMock)
	uc := auth.NewRegisterUserUsecase(txm, hasher, quietLogger())

	r.UserRepo.On("ExistsByEmail", mock.Anything, "a@x.com").Return(false, nil)
	r.UserRepo.On("ExistsByUsername", mock.Anything, "a").Return(false, nil)
	hasher.On("Hash", "secret1").Return("HASHED", nil)
	r.UserRepo.On("Create", mock.Anything, mock.Anything).Return(repository.ErrDuplicate)

	_, err := uc.Execute(context.Background(), auth.RegisterUserInput{Username: "a", Email: "a@x.com", Password: "secret1"})
	assert.Equal(t, usecase.KindDuplicateResource, kind(err))
}

func TestRegister_Validation(t *testing.T) {
	txm := mocks.NewTxManager()
	uc := auth.NewRegisterUserUsecase(txm, new(HasherMock), quietLogger())

	_, err := uc.Execute(context.Background(), auth.RegisterUserInput{Email: "Ann <a@x.com>", Password: "123"})
	assert.Equal(t, usecase.KindValidationFailure, kind(err))

	e, _ := usecase.AsError(err)
	assert.Contains(t, e.Fields, "username")
	assert.Contains(t, e.Fields, "email")
	assert.Contains(t, e.Fields, "password")
	assert.Zero(t, txm.Calls)
}

// =====================
// Login
// =====================

func TestLogin_Success(t *testing.T) {
	users := new(mocks.UserRepository)
	issuer := new(IssuerMock)
	now := time.Unix(1_700_000_000, 0)

	hashed, err := auth.NewBcryptPasswordHasher(4).Hash("secret1")
	require.NoError(t, err)

	users.On("FindByEmail", mock.Anything, "a@x.com").Return(&model.User{ID: 1, Email: "a@x.com", PasswordHash: hashed}, nil)
	issuer.On("Issue", "a@x.com", now).Return("h.p.s", now.Add(time.Hour), nil)

	uc := auth.NewLoginUsecase(users, auth.NewBcryptPasswordVerifier(), issuer, fixedClock{now})
	out, err := uc.Execute(context.Background(), auth.LoginInput{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "h.p.s", out.Token)
}

func TestLogin_WrongPassword(t *testing.T) {
	users := new(mocks.UserRepository)
	issuer := new(IssuerMock)

	hashed, err := auth.NewBcryptPasswordHasher(4).Hash("secret1")
	require.NoError(t, err)
	users.On("FindByEmail", mock.Anything, "a@x.com").Return(&model.User{ID: 1, Email: "a@x.com", PasswordHash: hashed}, nil)

	uc := auth.NewLoginUsecase(users, auth.NewBcryptPasswordVerifier(), issuer, fixedClock{time.Now()})
	_, err = uc.Execute(context.Background(), auth.LoginInput{Email: "a@x.com", Password: "wrong"})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	assert.Equal(t, usecase.KindAuthenticationFailure, kind(err))
	issuer.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
}

func TestLogin_UnknownEmail(t *testing.T) {
	users := new(mocks.UserRepository)
	users.On("FindByEmail", mock.Anything, "ghost@x.com").Return(nil, repository.ErrNotFound)

	uc := auth.NewLoginUsecase(users, auth.NewBcryptPasswordVerifier(), new(IssuerMock), fixedClock{time.Now()})
	_, err := uc.Execute(context.Background(), auth.LoginInput{Email: "ghost@x.com", Password: "x"})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_StoreFailure(t *testing.T) {
	users := new(mocks.UserRepository)
	users.On("FindByEmail", mock.Anything, "a@x.com").Return(nil, errors.New("timeout"))

	uc := auth.NewLoginUsecase(users, auth.NewBcryptPasswordVerifier(), new(IssuerMock), fixedClock{time.Now()})
	_, err := uc.Execute(context.Background(), auth.LoginInput{Email: "a@x.com", Password: "x"})

	assert.Equal(t, usecase.KindUnexpected, kind(err))
}

// =====================
// DeleteAccount
// =====================

func TestDeleteAccount_CascadesItems(t *testing.T) {
	txm := mocks.NewTxManager()
	r := txm.Repos

	r.UserRepo.On("FindByEmail", mock.Anything, "a@x.com").Return(&model.User{ID: 1, Email: "a@x.com"}, nil)
	r.CartItemRepo.On("DeleteByUserID", mock.Anything, int64(1)).Return(nil)
	r.WishlistItemRepo.On("DeleteByUserID", mock.Anything, int64(1)).Return(nil)
	r.UserRepo.On("Delete", mock.Anything, int64(1)).Return(nil)

	uc := auth.NewDeleteAccountUsecase(txm, quietLogger())
	require.NoError(t, uc.Execute(context.Background(), "a@x.com"))
	r.AssertExpectations(t)
}

func TestDeleteAccount_UserNotFound(t *testing.T) {
	txm := mocks.NewTxManager()
	txm.Repos.UserRepo.On("FindByEmail", mock.Anything, "ghost@x.com").Return(nil, repository.ErrNotFound)

	uc := auth.NewDeleteAccountUsecase(txm, quietLogger())
	err := uc.Execute(context.Background(), "ghost@x.com")
	assert.Equal(t, usecase.KindNotFound, kind(err))
}

// =====================
// bcrypt
// =====================

func TestBcrypt_HashAndVerify(t *testing.T) {
	hashed, err := auth.NewBcryptPasswordHasher(4).Hash("secret1")
	require.NoError(t, err)

	v := auth.NewBcryptPasswordVerifier()
	assert.NotEqual(t, "secret1", hashed)
	assert.True(t, v.Verify("secret1", hashed))
	assert.False(t, v.Verify("secret2", hashed))
}
