package repository

import (
	"context"
	"errors"

	"studio-booking/internal/domain/member"
	"studio-booking/internal/infra"
	"studio-booking/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// MembershipRepository reads the memberships table maintained by the billing
// collaborator. A member without a row is simply not eligible.
type MembershipRepository struct {
	db db.DBTX
}

func NewMembershipRepository(pool db.DBTX) *MembershipRepository {
	return &MembershipRepository{db: pool}
}

func (r *MembershipRepository) IsEligible(ctx context.Context, memberID uuid.UUID) (bool, error) {
	var status string
	err := r.db.QueryRow(ctx,
		`SELECT status FROM memberships WHERE member_id = $1`,
		memberID,
	).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to read membership", err)
	}

	return member.MembershipStatus(status).IsEligible(), nil
}
