package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/maheshrc27/linkedin-studio/internal/models"
	"go.uber.org/zap"
)

var ErrTokenConflict = errors.New("access token changed concurrently")

type SocialAccountRepository interface {
	Upsert(ctx context.Context, tx *sql.Tx, sa *models.SocialAccount) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.SocialAccount, error)
	GetFirstByUserID(ctx context.Context, userID int64, platform string) (*models.SocialAccount, error)
	ListByUserID(ctx context.Context, userID int64) ([]*models.SocialAccount, error)
	ListByTimeInterval(ctx context.Context, initialTime, finalTime time.Time) ([]*models.SocialAccount, error)
	CheckByUserID(ctx context.Context, accountID, userID int64) (bool, error)
	SetToken(ctx context.Context, id int64, oldAccessToken string, sa *models.SocialAccount) error
	UpdateStatus(ctx context.Context, id int64, status string) error
	Remove(ctx context.Context, id int64) error
}

type socialAccountRepository struct {
	db *sql.DB
}

func NewSocialAccountRepository(db *sql.DB) SocialAccountRepository {
	return &socialAccountRepository{db: db}
}

const socialAccountColumns = `id, user_id, platform, account_id, account_name, account_email, profile_picture_url,
	access_token, refresh_token, token_expires_at, account_status, created_at, updated_at`

func scanSocialAccount(row scanner) (*models.SocialAccount, error) {
	var sa models.SocialAccount
	err := row.Scan(&sa.ID, &sa.UserID, &sa.Platform, &sa.AccountID, &sa.AccountName, &sa.AccountEmail,
		&sa.ProfilePicture, &sa.AccessToken, &sa.RefreshToken, &sa.TokenExpiresAt, &sa.AccountStatus,
		&sa.CreatedAt, &sa.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &sa, nil
}

// Upsert stores a connected account. Reconnecting the same LinkedIn member
// refreshes its tokens and profile instead of creating a duplicate row.
func (r *socialAccountRepository) Upsert(ctx context.Context, tx *sql.Tx, sa *models.SocialAccount) (int64, error) {
	query := `
		INSERT INTO social_accounts (
			user_id,
			platform,
			account_id,
			account_name,
			account_email,
			profile_picture_url,
			access_token,
			refresh_token,
			token_expires_at,
			account_status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (user_id, platform, account_id) DO UPDATE
		SET account_name = EXCLUDED.account_name,
			account_email = EXCLUDED.account_email,
			profile_picture_url = EXCLUDED.profile_picture_url,
			access_token = EXCLUDED.access_token,
			refresh_token = COALESCE(NULLIF(EXCLUDED.refresh_token, ''), social_accounts.refresh_token),
			token_expires_at = EXCLUDED.token_expires_at,
			account_status = EXCLUDED.account_status,
			updated_at = NOW()
		RETURNING id
	`

	var id int64
	err := conn(r.db, tx).QueryRowContext(ctx, query,
		sa.UserID,
		sa.Platform,
		sa.AccountID,
		sa.AccountName,
		sa.AccountEmail,
		sa.ProfilePicture,
		sa.AccessToken,
		sa.RefreshToken,
		sa.TokenExpiresAt,
		models.AccountStatusActive,
	).Scan(&id)
	if err != nil {
		zap.L().Info(err.Error())
		return 0, err
	}

	return id, nil
}

func (r *socialAccountRepository) GetByID(ctx context.Context, id int64) (*models.SocialAccount, error) {
	query := `SELECT ` + socialAccountColumns + ` FROM social_accounts WHERE id = $1`

	sa, err := scanSocialAccount(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		zap.L().Info(err.Error())
		return nil, err
	}
	return sa, nil
}

func (r *socialAccountRepository) GetFirstByUserID(ctx context.Context, userID int64, platform string) (*models.SocialAccount, error) {
	query := `SELECT ` + socialAccountColumns + ` FROM social_accounts
		WHERE user_id = $1 AND platform = $2
		ORDER BY (account_status = 'active') DESC, created_at
		LIMIT 1`

	sa, err := scanSocialAccount(r.db.QueryRowContext(ctx, query, userID, platform))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		zap.L().Info(err.Error())
		return nil, err
	}
	return sa, nil
}

func (r *socialAccountRepository) ListByUserID(ctx context.Context, userID int64) ([]*models.SocialAccount, error) {
	query := `SELECT ` + socialAccountColumns + ` FROM social_accounts WHERE user_id = $1 ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		zap.L().Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	accounts := []*models.SocialAccount{}
	for rows.Next() {
		sa, err := scanSocialAccount(rows)
		if err != nil {
			zap.L().Info(err.Error())
			return nil, err
		}
		accounts = append(accounts, sa)
	}
	return accounts, rows.Err()
}

// ListByTimeInterval returns accounts whose token expires inside the window
// or has already expired.
func (r *socialAccountRepository) ListByTimeInterval(ctx context.Context, initialTime, finalTime time.Time) ([]*models.SocialAccount, error) {
	query := `SELECT ` + socialAccountColumns + ` FROM social_accounts
		WHERE (token_expires_at BETWEEN $1 AND $2)
		OR (token_expires_at < $1)`

	rows, err := r.db.QueryContext(ctx, query, initialTime, finalTime)
	if err != nil {
		zap.L().Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	accounts := []*models.SocialAccount{}
	for rows.Next() {
		sa, err := scanSocialAccount(rows)
		if err != nil {
			zap.L().Info(err.Error())
			return nil, err
		}
		accounts = append(accounts, sa)
	}

	if err := rows.Err(); err != nil {
		zap.L().Info(err.Error())
		return nil, err
	}

	return accounts, nil
}

func (r *socialAccountRepository) CheckByUserID(ctx context.Context, accountID, userID int64) (bool, error) {
	query := "SELECT 1 FROM social_accounts WHERE id = $1 AND user_id = $2"

	var result int
	err := r.db.QueryRowContext(ctx, query, accountID, userID).Scan(&result)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		zap.L().Info(err.Error())
		return false, err
	}

	return result == 1, nil
}

// SetToken swaps in refreshed tokens only if the stored access token is still
// oldAccessToken, so two refreshers cannot clobber each other.
func (r *socialAccountRepository) SetToken(ctx context.Context, id int64, oldAccessToken string, sa *models.SocialAccount) error {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		zap.L().Info(err.Error())
		return err
	}
	defer tx.Rollback()

	updateTokenQuery := `
		UPDATE social_accounts
		SET
			access_token = COALESCE(NULLIF($3, ''), access_token),
			refresh_token = COALESCE(NULLIF($4, ''), refresh_token),
			token_expires_at = $5,
			account_status = 'active',
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND access_token = $2
	`
	result, err := tx.ExecContext(ctx, updateTokenQuery, id, oldAccessToken, sa.AccessToken, sa.RefreshToken, sa.TokenExpiresAt)
	if err != nil {
		zap.L().Info(err.Error())
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		zap.L().Info(err.Error())
		return err
	}
	if affected != 1 {
		zap.L().Info("token not updated", zap.Int64("account_id", id))
		return ErrTokenConflict
	}

	if err = tx.Commit(); err != nil {
		zap.L().Info(err.Error())
		return err
	}
	return nil
}

func (r *socialAccountRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE social_accounts SET account_status = $1, updated_at = $2 WHERE id = $3`
	_, err := r.db.ExecContext(ctx, query, status, time.Now(), id)
	if err != nil {
		zap.L().Info(err.Error())
		return err
	}
	return nil
}

func (r *socialAccountRepository) Remove(ctx context.Context, id int64) error {
	query := `DELETE FROM social_accounts WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		zap.L().Info(err.Error())
		return err
	}
	return nil
}
