package notice

import "context"

type Repository interface {
	Create(ctx context.Context, n *Notice) error
	GetByNoticeID(ctx context.Context, noticeID string) (*Notice, error)
	Save(ctx context.Context, n *Notice) error

	// Target set reconciliation. AddTargets and RemoveTargets take the diff
	// computed by the caller so the association set is never torn down whole.
	ListTargetUnitIDs(ctx context.Context, noticeID uint64) ([]uint64, error)
	AddTargets(ctx context.Context, noticeID uint64, orgUnitIDs []uint64) error
	RemoveTargets(ctx context.Context, noticeID uint64, orgUnitIDs []uint64) error

	// ListTargetedAtUnits returns unhidden notices targeted at any of the
	// given units.
	ListTargetedAtUnits(ctx context.Context, orgUnitIDs []uint64) ([]Notice, error)

	CreateForward(ctx context.Context, f *Forward) error
	ForwardExists(ctx context.Context, noticeID, orgUnitID uint64, userID string) (bool, error)
	ListForwards(ctx context.Context, noticeID uint64) ([]Forward, error)
	// ListForwardedNoticeIDs returns ids of notices forwarded by the given
	// role into any of the units, or forwarded directly to the user.
	ListForwardedNoticeIDs(ctx context.Context, forwarderRole string, orgUnitIDs []uint64, userID string) ([]uint64, error)
	GetByIDs(ctx context.Context, ids []uint64) ([]Notice, error)
}
