package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ettorepuccetti/terrarossa/internal/domain"
	"github.com/ettorepuccetti/terrarossa/internal/events"
)

var now = time.Date(2024, 5, 10, 10, 0, 0, 0, time.UTC)

func at(hour, min int) time.Time {
	return time.Date(2024, 5, 11, hour, min, 0, 0, time.UTC)
}

var (
	member = domain.Identity{UserID: "u1", Name: "Mario", Role: domain.RoleUser}
	other  = domain.Identity{UserID: "u2", Name: "Luigi", Role: domain.RoleUser}
	admin  = domain.Identity{UserID: "a1", Name: "Anna", Role: domain.RoleAdmin, ClubID: "club-1"}
)

func newTestSvc(t *testing.T) (*ReservationSvc, *fakeStore, *fakePublisher) {
	t.Helper()
	f := newFakeStore()
	f.clubs["club-1"] = domain.Club{ID: "club-1", Name: "Foro Italico"}
	f.settings["club-1"] = domain.ClubSettings{
		ClubID:              "club-1",
		FirstBookableHour:   8,
		LastBookableHour:    20,
		LastBookableMinute:  30,
		HoursBeforeCancel:   4,
		DaysInFutureVisible: 7,
	}
	f.courts["court-1"] = domain.Court{ID: "court-1", Name: "Pietrangeli", ClubID: "club-1"}
	f.courts["court-2"] = domain.Court{ID: "court-2", Name: "Centrale", ClubID: "club-1"}

	pub := &fakePublisher{}
	svc := NewReservationSvc(f, courtStoreAdapter{f}, clubStoreAdapter{f}, pub, fixedClock{t: now})
	return svc, f, pub
}

func TestCreateReservation(t *testing.T) {
	svc, f, pub := newTestSvc(t)
	ctx := context.Background()

	res, err := svc.Create(ctx, member, "court-1", at(13, 0), at(14, 0))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if res.ID == "" || res.UserID != "u1" || res.CourtID != "court-1" {
		t.Fatalf("created %+v", res)
	}
	if len(f.reservations) != 1 {
		t.Fatalf("store has %d reservations, want 1", len(f.reservations))
	}
	if len(pub.keys) != 1 || pub.keys[0] != events.RKReservationCreated {
		t.Fatalf("published %v, want [reservation.created]", pub.keys)
	}
}

func TestCreateReservationRejectsInvalidSlot(t *testing.T) {
	svc, f, pub := newTestSvc(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		wantErr error
	}{
		{"over two hours", at(13, 0), at(15, 30), domain.ErrDurationExceeded},
		{"off grid", at(13, 0), at(14, 15), domain.ErrBadGranularity},
		{"after closing", at(20, 30), at(22, 0), domain.ErrAfterClosing},
		{"in the past", now.Add(-2 * time.Hour), now.Add(-time.Hour), domain.ErrPastTime},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Create(ctx, member, "court-1", tt.start, tt.end); !errors.Is(err, tt.wantErr) {
				t.Fatalf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
	if len(f.reservations) != 0 || len(pub.keys) != 0 {
		t.Fatalf("rejected creates must not persist or publish (%d rows, %v)", len(f.reservations), pub.keys)
	}
}

func TestCreateReservationAdminOverrides(t *testing.T) {
	svc, _, _ := newTestSvc(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, admin, "court-1", at(13, 0), at(18, 0)); err != nil {
		t.Fatalf("admin long booking: %v", err)
	}
	// admin of club-1 has no privileges elsewhere
	foreign := domain.Identity{UserID: "a2", Role: domain.RoleAdmin, ClubID: "club-9"}
	if _, err := svc.Create(ctx, foreign, "court-1", at(13, 0), at(18, 0)); !errors.Is(err, domain.ErrDurationExceeded) {
		t.Fatalf("foreign admin: got %v, want ErrDurationExceeded", err)
	}
}

func TestCreateReservationConflict(t *testing.T) {
	svc, _, pub := newTestSvc(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, member, "court-1", at(12, 0), at(13, 0)); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := svc.Create(ctx, other, "court-1", at(11, 0), at(12, 30)); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("clash: got %v, want ErrConflict", err)
	}
	// the same slot on another court is free
	if _, err := svc.Create(ctx, other, "court-2", at(12, 0), at(13, 0)); err != nil {
		t.Fatalf("other court: %v", err)
	}
	// back to back on the same court is free
	if _, err := svc.Create(ctx, other, "court-1", at(13, 0), at(14, 0)); err != nil {
		t.Fatalf("touching intervals: %v", err)
	}
	if len(pub.keys) != 3 {
		t.Fatalf("published %d events, want 3", len(pub.keys))
	}
}

func TestCreateUnknownCourt(t *testing.T) {
	svc, _, _ := newTestSvc(t)
	if _, err := svc.Create(context.Background(), member, "nope", at(13, 0), at(14, 0)); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestDeleteReservation(t *testing.T) {
	svc, f, pub := newTestSvc(t)
	ctx := context.Background()

	res, err := svc.Create(ctx, member, "court-1", at(13, 0), at(14, 0))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	t.Run("non owner non admin is forbidden", func(t *testing.T) {
		if err := svc.Delete(ctx, other, res.ID); !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("got %v, want ErrForbidden", err)
		}
	})

	t.Run("owner cancels outside the lockout window", func(t *testing.T) {
		// start is tomorrow 13:00, now is 10:00 the day before: > 4h away
		if err := svc.Delete(ctx, member, res.ID); err != nil {
			t.Fatalf("owner delete: %v", err)
		}
		if len(f.reservations) != 0 {
			t.Fatalf("reservation not removed")
		}
		if pub.keys[len(pub.keys)-1] != events.RKReservationCancelled {
			t.Fatalf("last event %v, want reservation.cancelled", pub.keys)
		}
	})

	t.Run("missing reservation", func(t *testing.T) {
		if err := svc.Delete(ctx, member, res.ID); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("got %v, want ErrNotFound", err)
		}
	})
}

func TestDeleteReservationLockoutWindow(t *testing.T) {
	svc, _, _ := newTestSvc(t)
	ctx := context.Background()

	// starts today at 13:00; with hoursBeforeCancel=4 the lockout opened
	// at 9:00 and now is 10:00.
	start := time.Date(2024, 5, 10, 13, 0, 0, 0, time.UTC)
	res, err := svc.Create(ctx, member, "court-1", start, start.Add(time.Hour))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(ctx, member, res.ID); !errors.Is(err, domain.ErrTooLateToCancel) {
		t.Fatalf("owner inside lockout: got %v, want ErrTooLateToCancel", err)
	}
	// the club admin can still cancel
	if err := svc.Delete(ctx, admin, res.ID); err != nil {
		t.Fatalf("admin delete inside lockout: %v", err)
	}
}

// now exactly equal to start minus hoursBeforeCancel still cancels: the
// lockout opens strictly after the boundary instant.
func TestDeleteReservationAtLockoutBoundary(t *testing.T) {
	svc, f, _ := newTestSvc(t)
	ctx := context.Background()

	// starts today at 14:00; hoursBeforeCancel=4 puts the boundary at
	// 10:00, which is exactly now.
	start := time.Date(2024, 5, 10, 14, 0, 0, 0, time.UTC)
	res, err := svc.Create(ctx, member, "court-1", start, start.Add(time.Hour))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(ctx, member, res.ID); err != nil {
		t.Fatalf("cancel at the boundary: %v", err)
	}
	if len(f.reservations) != 0 {
		t.Fatalf("reservation not removed")
	}
}

func TestCreateRecurrent(t *testing.T) {
	svc, f, pub := newTestSvc(t)
	ctx := context.Background()

	endDate := at(13, 0).AddDate(0, 0, 21) // four weekly occurrences

	t.Run("plain user is forbidden", func(t *testing.T) {
		if _, _, err := svc.CreateRecurrent(ctx, member, "court-1", at(13, 0), at(14, 0), endDate); !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("got %v, want ErrForbidden", err)
		}
	})

	group, members, err := svc.CreateRecurrent(ctx, admin, "court-1", at(13, 0), at(14, 0), endDate)
	if err != nil {
		t.Fatalf("create recurrent: %v", err)
	}
	if len(members) != 4 {
		t.Fatalf("expanded %d members, want 4", len(members))
	}
	for i := range members {
		if members[i].RecurrentID == nil || *members[i].RecurrentID != group.ID {
			t.Fatalf("member %d not linked to group", i)
		}
		want := at(13, 0).AddDate(0, 0, 7*i)
		if !members[i].StartTime.Equal(want) {
			t.Fatalf("member %d starts at %v, want %v", i, members[i].StartTime, want)
		}
	}
	if len(f.reservations) != 4 || len(pub.keys) != 4 {
		t.Fatalf("store %d rows, %d events", len(f.reservations), len(pub.keys))
	}
}

func TestCreateRecurrentClashAbortsGroup(t *testing.T) {
	svc, f, _ := newTestSvc(t)
	ctx := context.Background()

	// occupy the slot two weeks in
	blocker := at(13, 0).AddDate(0, 0, 14)
	if _, err := svc.Create(ctx, member, "court-1", blocker, blocker.Add(time.Hour)); err != nil {
		t.Fatalf("blocker: %v", err)
	}

	_, _, err := svc.CreateRecurrent(ctx, admin, "court-1", at(13, 0), at(14, 0), at(13, 0).AddDate(0, 0, 21))
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("got %v, want ErrConflict", err)
	}
	if len(f.reservations) != 1 {
		t.Fatalf("partial group persisted: %d rows, want only the blocker", len(f.reservations))
	}
}

func TestDeleteRecurrentGroup(t *testing.T) {
	svc, f, pub := newTestSvc(t)
	ctx := context.Background()

	group, _, err := svc.CreateRecurrent(ctx, admin, "court-1", at(13, 0), at(14, 0), at(13, 0).AddDate(0, 0, 14))
	if err != nil {
		t.Fatalf("create recurrent: %v", err)
	}

	if _, err := svc.DeleteRecurrentGroup(ctx, member, group.ID, "club-1"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("plain user: got %v, want ErrForbidden", err)
	}

	removed, err := svc.DeleteRecurrentGroup(ctx, admin, group.ID, "club-1")
	if err != nil {
		t.Fatalf("delete group: %v", err)
	}
	if removed != 3 || len(f.reservations) != 0 {
		t.Fatalf("removed %d, store %d rows", removed, len(f.reservations))
	}
	if pub.keys[len(pub.keys)-1] != events.RKRecurrentReservationCancelled {
		t.Fatalf("last event %v", pub.keys[len(pub.keys)-1])
	}
}

func TestValidateEndpointLogic(t *testing.T) {
	svc, _, _ := newTestSvc(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, member, "court-1", at(12, 0), at(13, 0)); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := svc.Validate(ctx, other, "court-1", at(14, 0), at(15, 0)); err != nil {
		t.Fatalf("free slot: %v", err)
	}
	if err := svc.Validate(ctx, other, "court-1", at(11, 0), at(12, 30)); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("occupied slot: got %v, want ErrConflict", err)
	}
	if err := svc.Validate(ctx, other, "court-1", at(13, 12), at(14, 12)); !errors.Is(err, domain.ErrBadGranularity) {
		t.Fatalf("off grid: got %v, want ErrBadGranularity", err)
	}
}

func TestListByClubWindow(t *testing.T) {
	svc, _, _ := newTestSvc(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, member, "court-1", at(13, 0), at(14, 0)); err != nil {
		t.Fatalf("seed: %v", err)
	}
	dayAfter := at(13, 0).AddDate(0, 0, 1)
	if _, err := svc.Create(ctx, member, "court-1", dayAfter, dayAfter.Add(time.Hour)); err != nil {
		t.Fatalf("seed: %v", err)
	}

	day := time.Date(2024, 5, 11, 0, 0, 0, 0, time.UTC)
	got, err := svc.ListByClub(ctx, "club-1", day, day.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("window returned %d rows, want 1", len(got))
	}

	mine, err := svc.ListMine(ctx, member)
	if err != nil {
		t.Fatalf("list mine: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("mine returned %d rows, want 2", len(mine))
	}
}
