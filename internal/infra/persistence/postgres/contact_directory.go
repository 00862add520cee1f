package postgres

import (
	"context"

	domainerrors "estatex/internal/domain/errors"
	"estatex/internal/domain/service"
	"estatex/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// contactDirectory implements the service.ContactDirectory interface on top
// of the shared users table.
type contactDirectory struct {
	db *gorm.DB
}

// NewContactDirectory is the constructor for contactDirectory.
func NewContactDirectory(db *gorm.DB) service.ContactDirectory {
	return &contactDirectory{
		db: db,
	}
}

// LookupContact reads the delivery addresses for one user.
func (repo *contactDirectory) LookupContact(ctx context.Context, userID uuid.UUID) (*service.Contact, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Select("email", "phone").
		Where("id = ?", userID).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Errorf("no contact record for user %s", userID)
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to look up contact")
	}

	return &service.Contact{
		Email: userM.Email,
		Phone: userM.Phone,
	}, nil
}
