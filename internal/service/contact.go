package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Payphone-Digital/landing-cms/internal/dto"
	apperrors "github.com/Payphone-Digital/landing-cms/internal/errors"
	"github.com/Payphone-Digital/landing-cms/internal/model"
	ctxutil "github.com/Payphone-Digital/landing-cms/pkg/context"
	"github.com/Payphone-Digital/landing-cms/pkg/logger"
	"gorm.io/gorm"
)

const msgContactNotFound = "Contact not found"

type ContactStore interface {
	CrudStore[model.Contact]
	FindByKey(ctx context.Context, key string) (*model.Contact, error)
	FindByKeys(ctx context.Context, keys []string) ([]model.Contact, error)
}

type ContactService struct {
	resource[model.Contact]
	repo ContactStore
	tx   Transactor
}

func NewContactService(repo ContactStore, tx Transactor) *ContactService {
	return &ContactService{
		resource: newResource[model.Contact](repo, "contact", msgContactNotFound),
		repo:     repo,
		tx:       tx,
	}
}

func contactConflict(key string) error {
	return apperrors.NewConflict(fmt.Sprintf("Contact with key %s already exists", key))
}

func (s *ContactService) ensureKeyFree(ctx context.Context, key string, excludeID uint) error {
	existing, err := s.repo.FindByKey(ctx, key)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return s.mapError(ctx, err)
	}
	if existing.ID != excludeID {
		return contactConflict(key)
	}
	return nil
}

func (s *ContactService) Create(ctx context.Context, actorID uint, req *dto.ContactRequest) (*model.Contact, error) {
	ctx = ctxutil.WithOperation(ctx, "service", "CreateContact")

	key := strings.TrimSpace(req.Key)
	if err := s.ensureKeyFree(ctx, key, 0); err != nil {
		return nil, err
	}

	contact := &model.Contact{
		Key:         key,
		Value:       req.Value,
		CreatedByID: &actorID,
		UpdatedByID: &actorID,
	}
	if err := s.repo.Create(ctx, contact); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, contactConflict(key)
		}
		return nil, s.mapError(ctx, err)
	}
	return contact, nil
}

func (s *ContactService) Update(ctx context.Context, id, actorID uint, req *dto.UpdateContactRequest) (*model.Contact, error) {
	ctx = ctxutil.WithOperation(ctx, "service", "UpdateContact")

	contact, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Key != nil {
		key := strings.TrimSpace(*req.Key)
		if key != contact.Key {
			if err := s.ensureKeyFree(ctx, key, id); err != nil {
				return nil, err
			}
			contact.Key = key
		}
	}
	setIf(&contact.Value, req.Value)
	contact.UpdatedByID = &actorID

	if err := s.repo.Update(ctx, contact); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, contactConflict(contact.Key)
		}
		return nil, s.mapError(ctx, err)
	}
	return contact, nil
}

func (s *ContactService) GetByKey(ctx context.Context, key string) (*model.Contact, error) {
	contact, err := s.repo.FindByKey(ctx, key)
	if err != nil {
		return nil, s.mapError(ctx, err)
	}
	return contact, nil
}

// UpdateByKeys memperbarui map_url, address dan contact sekaligus. Semua key
// yang dikirim harus sudah ada; bila satu hilang tidak ada yang diubah.
func (s *ContactService) UpdateByKeys(ctx context.Context, actorID uint, req *dto.UpdateContactsByKeyRequest) ([]model.Contact, error) {
	ctx = ctxutil.WithOperation(ctx, "service", "UpdateContactsByKey")

	values := make(map[string]string, 3)
	var keys []string
	for _, kv := range []struct {
		key   string
		value *string
	}{
		{model.ContactKeyMapURL, req.MapURL},
		{model.ContactKeyAddress, req.Address},
		{model.ContactKeyContact, req.Contact},
	} {
		if kv.value != nil {
			values[kv.key] = *kv.value
			keys = append(keys, kv.key)
		}
	}
	if len(keys) == 0 {
		return nil, apperrors.NewBadRequest("No contact keys provided to update")
	}

	var updated []model.Contact
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		contacts, err := s.repo.FindByKeys(ctx, keys)
		if err != nil {
			return err
		}

		found := make(map[string]bool, len(contacts))
		for _, c := range contacts {
			found[c.Key] = true
		}
		var missing []string
		for _, k := range keys {
			if !found[k] {
				missing = append(missing, k)
			}
		}
		if len(missing) > 0 {
			return apperrors.NewNotFound("Contact not found for keys: " + strings.Join(missing, ", "))
		}

		for i := range contacts {
			contacts[i].Value = values[contacts[i].Key]
			contacts[i].UpdatedByID = &actorID
			if err := s.repo.Update(ctx, &contacts[i]); err != nil {
				return err
			}
		}
		updated = contacts
		return nil
	})
	if err != nil {
		return nil, s.mapError(ctx, err)
	}

	logger.InfoWithContext(ctx, "Contacts updated by key").
		String("keys", strings.Join(keys, ",")).
		Log()
	return updated, nil
}
