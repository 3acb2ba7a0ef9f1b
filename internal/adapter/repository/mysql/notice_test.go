package mysql

import (
	"context"
	"testing"
	"time"

	noticeDomain "grantflow-backend/internal/domain/notice"
	"grantflow-backend/pkg/id"
)

func makeNotice(title string) *noticeDomain.Notice {
	return &noticeDomain.Notice{
		NoticeID:  id.NewID32(),
		Title:     title,
		Type:      noticeDomain.TypeProposal,
		ExpiresAt: time.Now().Add(30 * 24 * time.Hour).UTC(),
		Active:    true,
		CreatedBy: id.NewID32(),
	}
}

func TestNoticeRepository_TargetReconciliation(t *testing.T) {
	db := openTestDB(t)
	repo := NewNoticeRepository(db)
	ctx := context.Background()

	n := makeNotice("Call for proposals")
	if err := repo.Create(ctx, n); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.AddTargets(ctx, n.ID, []uint64{10, 11, 12}); err != nil {
		t.Fatalf("AddTargets: %v", err)
	}
	if err := repo.RemoveTargets(ctx, n.ID, []uint64{11}); err != nil {
		t.Fatalf("RemoveTargets: %v", err)
	}

	got, err := repo.ListTargetUnitIDs(ctx, n.ID)
	if err != nil {
		t.Fatalf("ListTargetUnitIDs: %v", err)
	}
	want := map[uint64]bool{10: true, 12: true}
	if len(got) != 2 || !want[got[0]] || !want[got[1]] {
		t.Fatalf("targets = %v, want {10, 12}", got)
	}

	// The pair index rejects a duplicate target.
	if err := repo.AddTargets(ctx, n.ID, []uint64{10}); err == nil {
		t.Fatal("duplicate target insert succeeded")
	}
}

func TestNoticeRepository_ListTargetedAtUnits_SkipsHidden(t *testing.T) {
	db := openTestDB(t)
	repo := NewNoticeRepository(db)
	ctx := context.Background()

	visible := makeNotice("visible")
	hidden := makeNotice("hidden")
	hidden.Hidden = true
	for _, n := range []*noticeDomain.Notice{visible, hidden} {
		if err := repo.Create(ctx, n); err != nil {
			t.Fatalf("Create: %v", err)
		}
		if err := repo.AddTargets(ctx, n.ID, []uint64{10}); err != nil {
			t.Fatalf("AddTargets: %v", err)
		}
	}

	got, err := repo.ListTargetedAtUnits(ctx, []uint64{10, 11})
	if err != nil {
		t.Fatalf("ListTargetedAtUnits: %v", err)
	}
	if len(got) != 1 || got[0].NoticeID != visible.NoticeID {
		t.Fatalf("notices = %+v, want only the visible one", got)
	}

	if got, err := repo.ListTargetedAtUnits(ctx, nil); err != nil || got != nil {
		t.Fatalf("empty unit list: got %v, %v", got, err)
	}
}

func TestNoticeRepository_ForwardDedup(t *testing.T) {
	db := openTestDB(t)
	repo := NewNoticeRepository(db)
	ctx := context.Background()

	n := makeNotice("Call for proposals")
	if err := repo.Create(ctx, n); err != nil {
		t.Fatalf("Create: %v", err)
	}

	head := id.NewID32()
	f := &noticeDomain.Forward{NoticeID: n.ID, OrgUnitID: 10, UserID: head, ForwardedBy: id.NewID32(), ForwarderRole: "coordinator"}
	if err := repo.CreateForward(ctx, f); err != nil {
		t.Fatalf("CreateForward: %v", err)
	}

	exists, err := repo.ForwardExists(ctx, n.ID, 10, head)
	if err != nil {
		t.Fatalf("ForwardExists: %v", err)
	}
	if !exists {
		t.Fatal("forward not found")
	}
	exists, err = repo.ForwardExists(ctx, n.ID, 11, head)
	if err != nil {
		t.Fatalf("ForwardExists: %v", err)
	}
	if exists {
		t.Fatal("forward reported for wrong unit")
	}

	// Under a race the unique key, not the exists check, settles it.
	dup := &noticeDomain.Forward{NoticeID: n.ID, OrgUnitID: 10, UserID: head, ForwardedBy: id.NewID32(), ForwarderRole: "coordinator"}
	if err := repo.CreateForward(ctx, dup); err == nil {
		t.Fatal("duplicate forward insert succeeded")
	}
}

func TestNoticeRepository_ListForwardedNoticeIDs(t *testing.T) {
	db := openTestDB(t)
	repo := NewNoticeRepository(db)
	ctx := context.Background()

	first := makeNotice("first")
	second := makeNotice("second")
	for _, n := range []*noticeDomain.Notice{first, second} {
		if err := repo.Create(ctx, n); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	head := id.NewID32()
	forwards := []noticeDomain.Forward{
		// dean tagged unit 10 with the first notice
		{NoticeID: first.ID, OrgUnitID: 10, UserID: id.NewID32(), ForwardedBy: id.NewID32(), ForwarderRole: "dean"},
		// coordinator forwarded the second notice to a head directly
		{NoticeID: second.ID, OrgUnitID: 99, UserID: head, ForwardedBy: id.NewID32(), ForwarderRole: "coordinator"},
	}
	for i := range forwards {
		if err := repo.CreateForward(ctx, &forwards[i]); err != nil {
			t.Fatalf("CreateForward: %v", err)
		}
	}

	// A coordinator in unit 10 sees what the dean tagged there.
	ids, err := repo.ListForwardedNoticeIDs(ctx, "dean", []uint64{10}, id.NewID32())
	if err != nil {
		t.Fatalf("ListForwardedNoticeIDs: %v", err)
	}
	if len(ids) != 1 || ids[0] != first.ID {
		t.Fatalf("ids = %v, want [%d]", ids, first.ID)
	}

	// The head sees the coordinator forward addressed to them even without a
	// matching unit.
	ids, err = repo.ListForwardedNoticeIDs(ctx, "coordinator", nil, head)
	if err != nil {
		t.Fatalf("ListForwardedNoticeIDs: %v", err)
	}
	if len(ids) != 1 || ids[0] != second.ID {
		t.Fatalf("ids = %v, want [%d]", ids, second.ID)
	}

	// Wrong predecessor role sees nothing.
	ids, err = repo.ListForwardedNoticeIDs(ctx, "head", []uint64{10}, head)
	if err != nil {
		t.Fatalf("ListForwardedNoticeIDs: %v", err)
	}
	if len(ids) != 0 {
		t.Fatalf("ids = %v, want none", ids)
	}
}

func TestNoticeRepository_GetByIDs_SkipsHidden(t *testing.T) {
	db := openTestDB(t)
	repo := NewNoticeRepository(db)
	ctx := context.Background()

	visible := makeNotice("visible")
	hidden := makeNotice("hidden")
	hidden.Hidden = true
	for _, n := range []*noticeDomain.Notice{visible, hidden} {
		if err := repo.Create(ctx, n); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	got, err := repo.GetByIDs(ctx, []uint64{visible.ID, hidden.ID})
	if err != nil {
		t.Fatalf("GetByIDs: %v", err)
	}
	if len(got) != 1 || got[0].NoticeID != visible.NoticeID {
		t.Fatalf("notices = %+v", got)
	}
}
