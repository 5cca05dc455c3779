package services_test

import (
	"context"
	"testing"

	"github.com/mizanapp/mizan_backend/internal/apperrors"
	"github.com/mizanapp/mizan_backend/internal/dto"
	"github.com/stretchr/testify/suite"
)

type AuthServiceTestSuite struct {
	suite.Suite
	fixture *testFixture
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.fixture = newTestFixture(s.T())
}

func (s *AuthServiceTestSuite) TestLogin_TokenRoundTrip() {
	ctx := context.Background()

	resp, err := s.fixture.container.AuthSvc.Login(ctx, dto.LoginRequest{
		Username: "owner",
		Password: "correct-horse-battery",
	})
	s.Require().NoError(err)
	s.NotEmpty(resp.Token)
	s.Equal(s.fixture.ownerID, resp.User.UserID)

	userID, err := s.fixture.container.AuthSvc.ValidateToken(ctx, resp.Token)
	s.Require().NoError(err)
	s.Equal(s.fixture.ownerID, userID)
}

func (s *AuthServiceTestSuite) TestLogin_WrongPassword() {
	_, err := s.fixture.container.AuthSvc.Login(context.Background(), dto.LoginRequest{
		Username: "owner",
		Password: "wrong-password",
	})
	s.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (s *AuthServiceTestSuite) TestLogin_UnknownUser() {
	_, err := s.fixture.container.AuthSvc.Login(context.Background(), dto.LoginRequest{
		Username: "nobody",
		Password: "correct-horse-battery",
	})
	s.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (s *AuthServiceTestSuite) TestValidateToken_Garbage() {
	_, err := s.fixture.container.AuthSvc.ValidateToken(context.Background(), "not.a.token")
	s.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (s *AuthServiceTestSuite) TestRegister_DuplicateUsername() {
	_, err := s.fixture.container.UserSvc.Register(context.Background(), dto.RegisterUserRequest{
		Username: "owner",
		Password: "another-password",
		Email:    "owner2@example.com",
	})
	s.ErrorIs(err, apperrors.ErrDuplicate)
}

func (s *AuthServiceTestSuite) TestRegister_DuplicateEmail() {
	_, err := s.fixture.container.UserSvc.Register(context.Background(), dto.RegisterUserRequest{
		Username: "owner2",
		Password: "another-password",
		Email:    "owner@example.com",
	})
	s.ErrorIs(err, apperrors.ErrDuplicate)
}

func (s *AuthServiceTestSuite) TestLinkTelegram_Lookup() {
	ctx := context.Background()

	err := s.fixture.container.UserSvc.LinkTelegram(ctx, s.fixture.ownerID, "123456789")
	s.Require().NoError(err)

	user, err := s.fixture.container.UserSvc.GetUserByTelegramID(ctx, "123456789")
	s.Require().NoError(err)
	s.Equal(s.fixture.ownerID, user.UserID)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
