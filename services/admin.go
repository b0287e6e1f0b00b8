package services

import (
	"context"
	"crypto/subtle"
	"log"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"wholesale-delivery/errs"
	"wholesale-delivery/models"
	"wholesale-delivery/utils"
)

// VerificationTTL is how long an emailed verification link stays valid.
const VerificationTTL = 48 * time.Hour

const mailTimeout = 30 * time.Second

type AdminStore interface {
	Create(ctx context.Context, admin *models.Admin) error
	FindByEmail(ctx context.Context, email string) (*models.Admin, error)
	MarkVerified(ctx context.Context, id primitive.ObjectID, token string) (*models.Admin, error)
}

// VerificationMailer delivers the account verification link.
type VerificationMailer interface {
	SendVerificationEmail(ctx context.Context, toEmail, token string) error
}

// AdminService registers, verifies and logs in administrators
type AdminService struct {
	admins AdminStore
	mailer VerificationMailer
	tokens TokenIssuer
	now    func() time.Time
}

func NewAdminService(admins AdminStore, mailer VerificationMailer, tokens TokenIssuer) *AdminService {
	return &AdminService{admins: admins, mailer: mailer, tokens: tokens, now: time.Now}
}

// Register stores an unverified admin and mails the verification link in
// the background. Mail failures are logged, never returned.
func (s *AdminService) Register(ctx context.Context, in models.AdminRegistration) (*models.Admin, error) {
	existing, err := s.admins.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, internal("find admin", err)
	}
	if existing != nil {
		return nil, errs.New(errs.Conflict, "Email already exists")
	}

	hashed, err := utils.HashPassword(in.Password, utils.AdminPasswordCost)
	if err != nil {
		return nil, internal("hash password", err)
	}

	expiry := s.now().Add(VerificationTTL)
	admin := &models.Admin{
		Name:              in.Name,
		Email:             in.Email,
		Phone:             in.Phone,
		Password:          hashed,
		IsVerified:        false,
		VerifyToken:       uuid.NewString(),
		VerifyTokenExpiry: &expiry,
	}
	if err := s.admins.Create(ctx, admin); err != nil {
		return nil, storeErr("create admin", err)
	}

	go s.sendVerification(admin.Email, admin.VerifyToken)

	return sanitizeAdmin(admin), nil
}

func (s *AdminService) sendVerification(email, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), mailTimeout)
	defer cancel()
	if err := s.mailer.SendVerificationEmail(ctx, email, token); err != nil {
		log.Printf("ERROR: send verification email to %s: %v", email, err)
	}
}

// VerifyEmail consumes a pending verification token.
func (s *AdminService) VerifyEmail(ctx context.Context, token, email string) (*models.Admin, error) {
	admin, err := s.admins.FindByEmail(ctx, email)
	if err != nil {
		return nil, internal("find admin", err)
	}
	if admin == nil {
		return nil, errs.New(errs.NotFound, "Admin not found")
	}
	if admin.VerifyToken == "" || admin.VerifyTokenExpiry == nil {
		return nil, errs.New(errs.InvalidToken, "No pending verification for this account")
	}
	if s.now().After(*admin.VerifyTokenExpiry) {
		return nil, errs.New(errs.Expired, "Token expired")
	}
	if subtle.ConstantTimeCompare([]byte(admin.VerifyToken), []byte(token)) != 1 {
		return nil, errs.New(errs.InvalidToken, "Invalid verification token")
	}

	verified, err := s.admins.MarkVerified(ctx, admin.ID, token)
	if err != nil {
		return nil, internal("mark admin verified", err)
	}
	if verified == nil {
		return nil, errs.New(errs.InvalidToken, "Invalid verification token")
	}
	return sanitizeAdmin(verified), nil
}

// Login checks the password and issues an admin token. Unverified admins
// may log in.
func (s *AdminService) Login(ctx context.Context, email, password string) (*models.AdminSession, error) {
	admin, err := s.admins.FindByEmail(ctx, email)
	if err != nil {
		return nil, internal("find admin", err)
	}
	if admin == nil || !utils.CheckPassword(admin.Password, password) {
		return nil, errs.New(errs.Unauthorized, "Invalid email or password")
	}

	token, err := s.tokens.Issue(admin.ID.Hex(), utils.RoleAdmin)
	if err != nil {
		return nil, internal("issue token", err)
	}
	return &models.AdminSession{Admin: sanitizeAdmin(admin), Token: token}, nil
}

func sanitizeAdmin(a *models.Admin) *models.Admin {
	out := *a
	out.Password = ""
	out.VerifyToken = ""
	out.VerifyTokenExpiry = nil
	return &out
}
