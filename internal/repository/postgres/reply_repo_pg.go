package postgres

import (
	"context"

	"github.com/emo-circle/backend/internal/domain"
	"github.com/emo-circle/backend/internal/repository/queries"
)

type ReplyRepo struct {
	q querier
}

func NewReplyRepo(q querier) *ReplyRepo {
	return &ReplyRepo{q: q}
}

func (r *ReplyRepo) Create(ctx context.Context, rep *domain.Reply) (domain.ReplyID, error) {
	var id int64
	err := r.q.QueryRow(
		ctx,
		queries.QueryCreateReply,
		int64(rep.MessageID),
		rep.Content,
		toNullStringPtr(rep.Sender),
		rep.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, mapPgError(err)
	}

	return domain.ReplyID(id), nil
}

func (r *ReplyRepo) ListByMessage(ctx context.Context, messageID domain.MessageID) ([]domain.Reply, error) {
	rows, err := r.q.Query(ctx, queries.QueryListRepliesByMessage, int64(messageID))
	if err != nil {
		return nil, mapPgError(err)
	}
	defer rows.Close()

	var out []domain.Reply
	for rows.Next() {
		var (
			rep domain.Reply
			id  int64
			mid int64
		)
		if err := rows.Scan(&id, &mid, &rep.Content, &rep.Sender, &rep.CreatedAt); err != nil {
			return nil, err
		}
		rep.ID = domain.ReplyID(id)
		rep.MessageID = domain.MessageID(mid)
		out = append(out, rep)
	}

	return out, rows.Err()
}
