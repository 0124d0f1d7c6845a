package core_test

import (
	"context"
	"errors"
	"time"

	"taskboard/internal/core"
	"taskboard/internal/core/fake"
	"taskboard/internal/repository"
	tokenIssuer "taskboard/pkg/jwt"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var _ = Describe("Board auth", func() {
	var (
		fakeRepo   *fake.Repository
		fakeJWT    *fake.JWTIssuer
		fakeLogger *zap.SugaredLogger
		ctx        context.Context

		board *core.Board

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeJWT = new(fake.JWTIssuer)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		board = core.NewBoard(fakeLogger, fakeRepo, fakeJWT, 0)

		fakeErr = errors.New("fake error")
	})

	Describe("Register", func() {
		var (
			creds core.Credentials
			err   error
		)

		BeforeEach(func() {
			creds = core.Credentials{Username: "testuser", Password: "testpass"}
			fakeRepo.GetUserByUsernameReturns(repository.User{}, repository.ErrUserNotFound)
		})

		JustBeforeEach(func() {
			err = board.Register(ctx, creds)
		})

		When("the username is free", func() {
			It("should store a bcrypt hash, never the password", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeRepo.CreateUserCallCount()).To(Equal(1))

				_, user := fakeRepo.CreateUserArgsForCall(0)
				Expect(user.Username).To(Equal("testuser"))
				Expect(user.PasswordHash).NotTo(Equal("testpass"))
				Expect(uuid.Validate(user.ID)).To(Succeed())

				cost, costErr := bcrypt.Cost([]byte(user.PasswordHash))
				Expect(costErr).NotTo(HaveOccurred())
				Expect(cost).To(Equal(10))
				Expect(bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("testpass"))).To(Succeed())
			})
		})

		When("the username already exists", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{Username: "testuser"}, nil)
			})

			It("should return ErrUsernameTaken without writing", func() {
				Expect(err).To(MatchError(core.ErrUsernameTaken))
				Expect(fakeRepo.CreateUserCallCount()).To(Equal(0))
			})
		})

		When("a concurrent registration wins the unique index", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(repository.ErrUserExists)
			})

			It("should return ErrUsernameTaken", func() {
				Expect(err).To(MatchError(core.ErrUsernameTaken))
			})
		})

		When("the lookup fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(err).NotTo(MatchError(core.ErrUsernameTaken))
			})
		})
	})

	Describe("Login", func() {
		var (
			creds          core.Credentials
			session        core.Session
			err            error
			userId         string
			hashedPassword string
			genToken       *jwt.Token
		)

		BeforeEach(func() {
			userId = uuid.New().String()
			hash, hashErr := bcrypt.GenerateFromPassword([]byte("testpass"), bcrypt.MinCost)
			Expect(hashErr).NotTo(HaveOccurred())
			hashedPassword = string(hash)
			genToken = jwt.New(jwt.SigningMethodHS512)

			creds = core.Credentials{
				Username: "testuser",
				Password: "testpass",
			}
		})

		JustBeforeEach(func() {
			session, err = board.Login(ctx, creds)
		})

		When("user exists and password matches", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{
					Username:     creds.Username,
					PasswordHash: hashedPassword,
					ID:           userId,
				}, nil)

				fakeJWT.GenerateReturns(genToken)
				fakeJWT.SignReturns("signed.token", nil)
			})

			It("should return a signed token and the user summary", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(session.Token).To(Equal("signed.token"))
				Expect(session.User).To(Equal(core.UserSummary{ID: userId, Username: "testuser"}))

				_, username := fakeRepo.GetUserByUsernameArgsForCall(0)
				Expect(username).To(Equal(creds.Username))

				Expect(fakeJWT.GenerateCallCount()).To(Equal(1))
				Expect(fakeJWT.GenerateArgsForCall(0)).To(Equal(tokenIssuer.TokenInfo{
					UserName:   "testuser",
					Subject:    userId,
					Expiration: 7 * 24 * time.Hour,
				}))

				Expect(fakeJWT.SignCallCount()).To(Equal(1))
				Expect(fakeJWT.SignArgsForCall(0)).To(Equal(genToken))
			})
		})

		When("user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
			})
		})

		When("password does not match", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{
					Username:     creds.Username,
					PasswordHash: hashedPassword,
				}, nil)
				creds.Password = "wrongpass"
			})

			It("should return incorrect password error", func() {
				Expect(err).To(MatchError(core.ErrIncorrectPassword))
				Expect(fakeJWT.SignCallCount()).To(Equal(0))
			})
		})

		When("token signing fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{
					Username:     creds.Username,
					PasswordHash: hashedPassword,
					ID:           userId,
				}, nil)
				fakeJWT.SignReturns("", fakeErr)
			})

			It("should return signing error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Authorize", func() {
		var (
			header   string
			identity core.Identity
			err      error
		)

		BeforeEach(func() {
			header = "Bearer some.jwt.token"
			fakeJWT.ValidateReturns(jwt.MapClaims{"sub": "user-1", "username": "alice"}, nil)
		})

		JustBeforeEach(func() {
			identity, err = board.Authorize(header)
		})

		When("the token is valid", func() {
			It("should return the identity", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(identity).To(Equal(core.Identity{UserID: "user-1", Username: "alice"}))
				Expect(fakeJWT.ValidateArgsForCall(0)).To(Equal("some.jwt.token"))
			})
		})

		When("the scheme word is not Bearer", func() {
			BeforeEach(func() {
				header = "Token some.jwt.token"
			})

			It("should still accept it", func() {
				Expect(err).NotTo(HaveOccurred())
			})
		})

		When("the header is missing", func() {
			BeforeEach(func() {
				header = ""
			})

			It("should return ErrMissingToken", func() {
				Expect(err).To(MatchError(core.ErrMissingToken))
				Expect(fakeJWT.ValidateCallCount()).To(Equal(0))
			})
		})

		DescribeTable("malformed headers",
			func(h string) {
				_, err := board.Authorize(h)
				Expect(err).To(MatchError(core.ErrMalformedHeader))
			},
			Entry("single part", "some.jwt.token"),
			Entry("three parts", "Bearer some.jwt.token extra"),
			Entry("double space", "Bearer  some.jwt.token"),
		)

		When("the token does not validate", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(nil, tokenIssuer.ErrTokenNotValid)
			})

			It("should return ErrInvalidToken", func() {
				Expect(err).To(MatchError(core.ErrInvalidToken))
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
			})
		})

		When("the token has no subject", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{"username": "alice"}, nil)
			})

			It("should return ErrInvalidToken", func() {
				Expect(err).To(MatchError(core.ErrInvalidToken))
			})
		})
	})
})

var _ = Describe("Board auth with a real token service", func() {
	var (
		fakeRepo *fake.Repository
		users    map[string]repository.User
		board    *core.Board
		ctx      context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		users = map[string]repository.User{}
		fakeRepo = new(fake.Repository)
		fakeRepo.GetUserByUsernameStub = func(_ context.Context, username string) (repository.User, error) {
			user, ok := users[username]
			if !ok {
				return repository.User{}, repository.ErrUserNotFound
			}
			return user, nil
		}
		fakeRepo.CreateUserStub = func(_ context.Context, user repository.User) error {
			users[user.Username] = user
			return nil
		}

		board = core.NewBoard(zap.NewNop().Sugar(), fakeRepo, tokenIssuer.NewJWTService([]byte("secret-a")), core.DefaultTokenTTL)
	})

	AfterEach(func() {
		tokenIssuer.TimeNow = time.Now
	})

	It("should reject a second registration of the same username", func() {
		Expect(board.Register(ctx, core.Credentials{Username: "alice", Password: "pw"})).To(Succeed())
		Expect(board.Register(ctx, core.Credentials{Username: "alice", Password: "other"})).To(MatchError(core.ErrUsernameTaken))
	})

	It("should treat usernames as case sensitive", func() {
		Expect(board.Register(ctx, core.Credentials{Username: "alice", Password: "pw"})).To(Succeed())
		Expect(board.Register(ctx, core.Credentials{Username: "Alice", Password: "pw"})).To(Succeed())
	})

	It("should issue a token that Authorize accepts", func() {
		Expect(board.Register(ctx, core.Credentials{Username: "alice", Password: "pw"})).To(Succeed())

		session, err := board.Login(ctx, core.Credentials{Username: "alice", Password: "pw"})
		Expect(err).NotTo(HaveOccurred())

		identity, err := board.Authorize("Bearer " + session.Token)
		Expect(err).NotTo(HaveOccurred())
		Expect(identity.UserID).To(Equal(session.User.ID))
		Expect(identity.Username).To(Equal("alice"))
	})

	It("should reject a wrong password", func() {
		Expect(board.Register(ctx, core.Credentials{Username: "alice", Password: "pw"})).To(Succeed())

		_, err := board.Login(ctx, core.Credentials{Username: "alice", Password: "nope"})
		Expect(err).To(MatchError(core.ErrIncorrectPassword))
	})

	It("should reject a token signed with a different secret", func() {
		Expect(board.Register(ctx, core.Credentials{Username: "alice", Password: "pw"})).To(Succeed())
		other := core.NewBoard(zap.NewNop().Sugar(), fakeRepo, tokenIssuer.NewJWTService([]byte("secret-b")), core.DefaultTokenTTL)

		session, err := other.Login(ctx, core.Credentials{Username: "alice", Password: "pw"})
		Expect(err).NotTo(HaveOccurred())

		_, err = board.Authorize("Bearer " + session.Token)
		Expect(err).To(MatchError(core.ErrInvalidToken))
	})

	It("should reject an expired token", func() {
		Expect(board.Register(ctx, core.Credentials{Username: "alice", Password: "pw"})).To(Succeed())

		tokenIssuer.TimeNow = func() time.Time { return time.Now().Add(-8 * 24 * time.Hour) }
		session, err := board.Login(ctx, core.Credentials{Username: "alice", Password: "pw"})
		Expect(err).NotTo(HaveOccurred())
		tokenIssuer.TimeNow = time.Now

		_, err = board.Authorize("Bearer " + session.Token)
		Expect(err).To(MatchError(core.ErrInvalidToken))
	})
})
