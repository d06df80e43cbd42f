package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jcastillo-pa/salon-api/internal/application/auth"
	"github.com/jcastillo-pa/salon-api/internal/application/dto"
	"github.com/jcastillo-pa/salon-api/internal/domain"
	"github.com/jcastillo-pa/salon-api/internal/domain/entity"
	"github.com/jcastillo-pa/salon-api/pkg/jwt"
)

type fakeUserRepo struct {
	byID    map[string]entity.User
	byEmail map[string]string // email → id
	err     error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[string]entity.User{}, byEmail: map[string]string{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.byEmail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	f.byID[u.ID] = *u
	f.byEmail[u.Email] = u.ID
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	out := u
	return &out, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	id, ok := f.byEmail[email]
	if !ok {
		return nil, nil
	}
	out := f.byID[id]
	return &out, nil
}

var testJWT = auth.JWTConfig{Secret: "secret-de-prueba", ExpMinutes: 60, Issuer: "salon-api"}

func TestRegister_CreaUsuarioConHashBcrypt(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:    "  Ana@Salon.com ",
		Password: "superclave",
		Name:     "Ana",
	})
	require.NoError(t, err)
	assert.Equal(t, "ana@salon.com", out.Email, "email normalizado a minúsculas")
	assert.Equal(t, "Ana", out.Name)

	stored := repo.byID[out.ID]
	assert.NotEqual(t, "superclave", stored.PasswordHash, "el password nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("superclave")))
}

func TestRegister_NombreVacio_UsaEmail(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWT)

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:    "ana@salon.com",
		Password: "superclave",
	})
	require.NoError(t, err)
	assert.Equal(t, "ana@salon.com", out.Name)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWT)
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{Email: "ana@salon.com", Password: "superclave"})
	require.NoError(t, err)

	_, err = uc.Register(ctx, dto.RegisterRequest{Email: "ANA@salon.com", Password: "otraclave"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_EntradaVacia_Rechazada(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWT)
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{Email: "", Password: "superclave"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Register(ctx, dto.RegisterRequest{Email: "ana@salon.com", Password: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_DevuelveTokenValido(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)
	ctx := context.Background()

	registered, err := uc.Register(ctx, dto.RegisterRequest{Email: "ana@salon.com", Password: "superclave", Name: "Ana"})
	require.NoError(t, err)

	out, err := uc.Login(ctx, dto.LoginRequest{Email: "ana@salon.com", Password: "superclave"})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, out.User.ID)

	userID, err := jwt.Parse(testJWT.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, userID, "el token acredita al usuario autenticado")
}

func TestLogin_PasswordIncorrecto_Unauthorized(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWT)
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{Email: "ana@salon.com", Password: "superclave"})
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "ana@salon.com", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Usuario inexistente y password incorrecto responden igual: sin pistas de
// cuáles emails están registrados.
func TestLogin_UsuarioInexistente_Unauthorized(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWT)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@salon.com", Password: "loquesea"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
