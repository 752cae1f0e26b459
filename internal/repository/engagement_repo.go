package repository

import (
	"context"
	"fmt"

	"github.com/cityherald/content-api/internal/database"
	"github.com/cityherald/content-api/internal/models"
)

// engagementRepo is the concrete implementation of EngagementRepository
type engagementRepo struct {
	db *database.DB
}

// NewEngagementRepo creates a new engagement repository
func NewEngagementRepo(db *database.DB) EngagementRepository {
	return &engagementRepo{db: db}
}

// membershipTables maps a membership kind onto its table. Kinds outside this
// map never reach SQL.
var membershipTables = map[string]string{
	models.MembershipInterests:     "user_interests",
	models.MembershipDislikes:      "user_dislikes",
	models.MembershipSubscriptions: "user_subscriptions",
}

func membershipTable(kind string) (string, error) {
	table, ok := membershipTables[kind]
	if !ok {
		return "", fmt.Errorf("unknown membership kind %q", kind)
	}
	return table, nil
}

// AddMembership inserts a (user, topic) membership. Duplicate inserts are a
// no-op, not an error.
func (r *engagementRepo) AddMembership(ctx context.Context, kind, userID, topic string) error {
	table, err := membershipTable(kind)
	if err != nil {
		return err
	}
	query := fmt.Sprintf(
		"INSERT INTO %s (user_id, topic) VALUES ($1, $2) ON CONFLICT (user_id, topic) DO NOTHING", table)
	_, err = r.db.ExecContext(ctx, query, userID, topic)
	return err
}

// RemoveMembership deletes a (user, topic) membership. Removing an absent
// membership is a no-op.
func (r *engagementRepo) RemoveMembership(ctx context.Context, kind, userID, topic string) error {
	table, err := membershipTable(kind)
	if err != nil {
		return err
	}
	query := fmt.Sprintf("DELETE FROM %s WHERE user_id = $1 AND topic = $2", table)
	_, err = r.db.ExecContext(ctx, query, userID, topic)
	return err
}

// ListMembership returns a user's topics for one membership kind
func (r *engagementRepo) ListMembership(ctx context.Context, kind, userID string) ([]string, error) {
	table, err := membershipTable(kind)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf("SELECT topic FROM %s WHERE user_id = $1 ORDER BY topic", table)

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var topics []string
	for rows.Next() {
		var topic string
		if err := rows.Scan(&topic); err != nil {
			return nil, err
		}
		topics = append(topics, topic)
	}
	return topics, rows.Err()
}

// IncrementKeywordRead bumps the (user, keyword) read counter by one and
// returns the new count. The upsert and the read happen in one statement, so
// concurrent increments each observe a distinct count value and the threshold
// crossing is seen by exactly one of them.
func (r *engagementRepo) IncrementKeywordRead(ctx context.Context, userID, keyword string) (int, error) {
	query := `
		INSERT INTO user_keyword_reads (user_id, keyword, count)
		VALUES ($1, $2, 1)
		ON CONFLICT (user_id, keyword) DO UPDATE SET count = user_keyword_reads.count + 1
		RETURNING count
	`
	var count int
	err := r.db.QueryRowContext(ctx, query, userID, keyword).Scan(&count)
	return count, err
}
