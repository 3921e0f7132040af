package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-social-content/internal/logger"
	"github.com/sbilibin2017/gw-social-content/internal/models"
)

//go:generate mockgen -source=users.go -destination=mock_users.go -package=services

// Transactor runs fn inside one storage transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// UserRepository defines storage operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	ExistsByUsername(ctx context.Context, username string, excludeID *uuid.UUID) (bool, error)
	ExistsByEmail(ctx context.Context, email string, excludeID *uuid.UUID) (bool, error)
	Insert(ctx context.Context, user *models.UserDB) (*models.UserDB, error)
	Update(ctx context.Context, user *models.UserDB, expectedVersion int64) (*models.UserDB, error)
	SoftDelete(ctx context.Context, userID uuid.UUID) error
	HardDelete(ctx context.Context, userID uuid.UUID) error
}

// UserService is the user directory.
type UserService struct {
	tx    Transactor
	users UserRepository
	audit *Auditor
}

func NewUserService(tx Transactor, users UserRepository, audit *Auditor) *UserService {
	return &UserService{tx: tx, users: users, audit: audit}
}

// Register creates a user whose username and email are not held by any live user.
func (s *UserService) Register(ctx context.Context, reg models.Registration) (*models.UserDB, error) {
	user, err := newUserFromRegistration(reg)
	if err != nil {
		return nil, err
	}

	var saved *models.UserDB
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.checkUnique(ctx, user.Username, user.Email, nil); err != nil {
			return err
		}
		inserted, err := s.users.Insert(ctx, user)
		if err != nil {
			return fromStorage("insert user", err, nil, ErrUserAlreadyExists)
		}
		saved = inserted
		return nil
	})
	if err != nil {
		logger.Log.Errorw("failed to register user", "username", user.Username, "error", err)
		return nil, fromStorage("register user", err, nil, nil)
	}

	logger.Log.Infow("user registered", "user_id", saved.UserID, "username", saved.Username)
	s.audit.Publish(ctx, saved.UserID, models.EntityUser, saved.UserID, models.ActionCreate)
	return saved, nil
}

func newUserFromRegistration(reg models.Registration) (*models.UserDB, error) {
	username, err := requireText("username", reg.Username, maxUsernameLength)
	if err != nil {
		return nil, err
	}
	email, err := validateEmail(reg.Email)
	if err != nil {
		return nil, err
	}
	firstName, err := requireText("first_name", reg.FirstName, maxNameLength)
	if err != nil {
		return nil, err
	}
	lastName, err := requireText("last_name", reg.LastName, maxNameLength)
	if err != nil {
		return nil, err
	}
	middleName, err := optionalBoundedText("middle_name", reg.MiddleName, maxNameLength)
	if err != nil {
		return nil, err
	}
	if reg.PasswordHash == "" {
		return nil, &ValidationError{Field: "password", Message: "must not be blank"}
	}

	return &models.UserDB{
		Username:     username,
		Email:        email,
		PasswordHash: reg.PasswordHash,
		FirstName:    firstName,
		MiddleName:   middleName,
		LastName:     lastName,
	}, nil
}

// checkUnique rejects a username or email held by a live user other than excludeID.
// Empty values are skipped.
func (s *UserService) checkUnique(ctx context.Context, username, email string, excludeID *uuid.UUID) error {
	if username != "" {
		taken, err := s.users.ExistsByUsername(ctx, username, excludeID)
		if err != nil {
			return fromStorage("check username", err, nil, nil)
		}
		if taken {
			return ErrUserAlreadyExists
		}
	}
	if email != "" {
		taken, err := s.users.ExistsByEmail(ctx, email, excludeID)
		if err != nil {
			return fromStorage("check email", err, nil, nil)
		}
		if taken {
			return ErrUserAlreadyExists
		}
	}
	return nil
}

func (s *UserService) FindByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fromStorage("get user", err, ErrUserNotFound, nil)
	}
	return user, nil
}

func (s *UserService) FindByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, fromStorage("get user by username", err, ErrUserNotFound, nil)
	}
	return user, nil
}

// UpdateProfile applies the supplied fields of upd. Absent fields are left as
// they are. A blank middle name or profile picture clears it.
func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, upd models.UserUpdate) (*models.UserDB, error) {
	upd, err := normalizeUserUpdate(upd)
	if err != nil {
		return nil, err
	}

	var saved *models.UserDB
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		user, err := s.users.GetByID(ctx, userID)
		if err != nil {
			return fromStorage("get user", err, ErrUserNotFound, nil)
		}
		expectedVersion := user.Version

		var newUsername, newEmail string
		if upd.Username != nil && *upd.Username != user.Username {
			newUsername = *upd.Username
		}
		if upd.Email != nil && *upd.Email != user.Email {
			newEmail = *upd.Email
		}
		if err := s.checkUnique(ctx, newUsername, newEmail, &user.UserID); err != nil {
			return err
		}

		if newUsername != "" {
			user.Username = newUsername
		}
		if newEmail != "" {
			user.Email = newEmail
		}
		if upd.FirstName != nil {
			user.FirstName = *upd.FirstName
		}
		if upd.LastName != nil {
			user.LastName = *upd.LastName
		}
		if upd.MiddleName != nil {
			user.MiddleName = optionalText(upd.MiddleName)
		}
		if upd.ProfilePicture != nil {
			user.ProfilePicture = optionalText(upd.ProfilePicture)
		}

		saved, err = s.users.Update(ctx, user, expectedVersion)
		return fromStorage("update user", err, ErrUserNotFound, ErrUserAlreadyExists)
	})
	if err != nil {
		logger.Log.Errorw("failed to update profile", "user_id", userID, "error", err)
		return nil, fromStorage("update profile", err, nil, nil)
	}

	s.audit.Publish(ctx, userID, models.EntityUser, userID, models.ActionUpdate)
	return saved, nil
}

func normalizeUserUpdate(upd models.UserUpdate) (models.UserUpdate, error) {
	var out models.UserUpdate
	if upd.Username != nil {
		v, err := requireText("username", *upd.Username, maxUsernameLength)
		if err != nil {
			return out, err
		}
		out.Username = &v
	}
	if upd.Email != nil {
		v, err := validateEmail(*upd.Email)
		if err != nil {
			return out, err
		}
		out.Email = &v
	}
	if upd.FirstName != nil {
		v, err := requireText("first_name", *upd.FirstName, maxNameLength)
		if err != nil {
			return out, err
		}
		out.FirstName = &v
	}
	if upd.LastName != nil {
		v, err := requireText("last_name", *upd.LastName, maxNameLength)
		if err != nil {
			return out, err
		}
		out.LastName = &v
	}
	if upd.MiddleName != nil {
		if _, err := optionalBoundedText("middle_name", upd.MiddleName, maxNameLength); err != nil {
			return out, err
		}
		out.MiddleName = upd.MiddleName
	}
	if upd.ProfilePicture != nil {
		v := *upd.ProfilePicture
		if optionalText(&v) != nil {
			var err error
			if v, err = validateURL("profile_picture", v, 2048); err != nil {
				return out, err
			}
		}
		out.ProfilePicture = &v
	}
	return out, nil
}

// SoftDelete deactivates the user. Posts, comments and likes are kept.
func (s *UserService) SoftDelete(ctx context.Context, userID uuid.UUID) error {
	if err := s.users.SoftDelete(ctx, userID); err != nil {
		logger.Log.Errorw("failed to delete user", "user_id", userID, "error", err)
		return fromStorage("delete user", err, ErrUserNotFound, nil)
	}
	s.audit.Publish(ctx, userID, models.EntityUser, userID, models.ActionDelete)
	return nil
}

// Purge removes the user row, live or deactivated, together with everything
// the user created.
func (s *UserService) Purge(ctx context.Context, userID uuid.UUID) error {
	if err := s.users.HardDelete(ctx, userID); err != nil {
		logger.Log.Errorw("failed to purge user", "user_id", userID, "error", err)
		return fromStorage("purge user", err, ErrUserNotFound, nil)
	}
	logger.Log.Infow("user purged", "user_id", userID)
	s.audit.Publish(ctx, userID, models.EntityUser, userID, models.ActionPurge)
	return nil
}
