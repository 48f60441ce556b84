package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/synckeeper/internal/client/models"
	"github.com/dmitrijs2005/synckeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/synckeeper/internal/common"
	"github.com/dmitrijs2005/synckeeper/internal/dbx"
)

// MetadataRepository keeps the session in the local metadata table under
// the common.SessionTokenKey and common.SessionUserKey keys.
type MetadataRepository struct {
	db   *sql.DB
	meta metadata.Repository
}

func NewMetadataRepository(db *sql.DB) *MetadataRepository {
	return &MetadataRepository{db: db, meta: metadata.NewSQLiteRepository(db)}
}

func (r *MetadataRepository) Load(ctx context.Context) (models.Session, bool, error) {
	token, err := r.meta.Get(ctx, common.SessionTokenKey)
	if err != nil {
		return models.Session{}, false, err
	}
	rawUser, err := r.meta.Get(ctx, common.SessionUserKey)
	if err != nil {
		return models.Session{}, false, err
	}
	if len(token) == 0 || len(rawUser) == 0 {
		return models.Session{}, false, nil
	}

	var user models.SessionUser
	if err := json.Unmarshal(rawUser, &user); err != nil {
		return models.Session{}, false, fmt.Errorf("decode stored user: %w", err)
	}

	s := models.Session{User: &user, Token: string(token)}
	return s, s.Valid(), nil
}

func (r *MetadataRepository) Save(ctx context.Context, s models.Session) error {
	if !s.Valid() {
		return fmt.Errorf("save session: %w", common.ErrValidation)
	}
	rawUser, err := json.Marshal(s.User)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		meta := r.meta.WithTx(tx)
		if err := meta.Set(ctx, common.SessionTokenKey, []byte(s.Token)); err != nil {
			return err
		}
		return meta.Set(ctx, common.SessionUserKey, rawUser)
	})
}

func (r *MetadataRepository) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		meta := r.meta.WithTx(tx)
		if err := meta.Delete(ctx, common.SessionTokenKey); err != nil {
			return err
		}
		return meta.Delete(ctx, common.SessionUserKey)
	})
}
