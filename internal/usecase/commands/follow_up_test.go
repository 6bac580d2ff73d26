//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"order-followup/internal/domain/cadence"
	"order-followup/internal/domain/workitem"
	"order-followup/internal/infra"
	"order-followup/internal/pkg/clock"
	"order-followup/internal/pkg/config"
	"order-followup/internal/pkg/errs"
	"order-followup/internal/usecase/commands"
	"order-followup/internal/usecase/shared"
	sharedmock "order-followup/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// 2025-03-07 is a Friday.
var friday = time.Date(2025, 3, 7, 15, 0, 0, 0, time.UTC)

type FollowUpCommandsTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	items    *sharedmock.MockWorkItemRepository
	reads    *sharedmock.MockCommandReads
	clock    *clock.MockClock
	commands commands.FollowUpCommands
}

func (s *FollowUpCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.items = sharedmock.NewMockWorkItemRepository(s.ctrl)
	s.reads = sharedmock.NewMockCommandReads(s.ctrl)
	s.clock = clock.NewMockClock(friday)

	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).AnyTimes()
	s.tx.EXPECT().WorkItems().Return(s.items).AnyTimes()
	s.tx.EXPECT().Reads().Return(s.reads).AnyTimes()
	s.tx.EXPECT().DB().Return(nil).AnyTimes()

	s.commands = commands.NewFollowUpCommands(s.uow, s.clock, config.NewTestConfig())
}

func (s *FollowUpCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestFollowUpCommandsSuite(t *testing.T) {
	suite.Run(t, new(FollowUpCommandsTestSuite))
}

func businessRule() cadence.Rule {
	return cadence.Rule{
		CadenceKey:       "po_in_production",
		WorkItemType:     "production_order",
		Status:           "in_production",
		FollowUpDays:     5,
		BusinessDaysOnly: true,
		Priority:         10,
	}
}

func (s *FollowUpCommandsTestSuite) newItem() *workitem.WorkItem {
	old := friday.AddDate(0, 0, -14)
	return workitem.Reconstruct(uuid.New(), workitem.TypeProductionOrder, "in_production", nil, &old, &old)
}

func (s *FollowUpCommandsTestSuite) TestMarkFollowedUp() {
	s.Run("records the contact and schedules five business days out", func() {
		item := s.newItem()
		s.items.EXPECT().GetForUpdate(gomock.Any(), gomock.Any(), item.ID()).Return(item, nil)
		s.reads.EXPECT().CadenceRules(gomock.Any()).Return([]cadence.Rule{businessRule()}, nil)
		s.items.EXPECT().UpdateFollowUp(gomock.Any(), gomock.Any(), item).Return(nil)

		got, err := s.commands.MarkFollowedUp(context.Background(), item.ID())

		s.Require().NoError(err)
		s.Require().NotNil(got.LastContactAt)
		s.Require().NotNil(got.NextFollowUpAt)
		s.True(friday.Equal(*got.LastContactAt))
		s.True(friday.AddDate(0, 0, 7).Equal(*got.NextFollowUpAt))
		s.Equal("po_in_production", got.RuleKey)
	})

	s.Run("no matching rule clears the follow-up date", func() {
		item := s.newItem()
		s.items.EXPECT().GetForUpdate(gomock.Any(), gomock.Any(), item.ID()).Return(item, nil)
		s.reads.EXPECT().CadenceRules(gomock.Any()).Return(nil, nil)
		s.items.EXPECT().UpdateFollowUp(gomock.Any(), gomock.Any(), item).Return(nil)

		got, err := s.commands.MarkFollowedUp(context.Background(), item.ID())

		s.Require().NoError(err)
		s.Nil(got.NextFollowUpAt)
		s.NotNil(got.LastContactAt)
	})

	s.Run("unknown work item is not found", func() {
		id := uuid.New()
		s.items.EXPECT().GetForUpdate(gomock.Any(), gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("work item not found", nil, infra.KindNotFound))

		_, err := s.commands.MarkFollowedUp(context.Background(), id)

		s.True(errs.Is(err, errs.ErrNotFound))
	})

	s.Run("ambiguous rules are reported and nothing is written", func() {
		item := s.newItem()
		s.items.EXPECT().GetForUpdate(gomock.Any(), gomock.Any(), item.ID()).Return(item, nil)
		s.reads.EXPECT().CadenceRules(gomock.Any()).Return([]cadence.Rule{businessRule(), businessRule()}, nil)

		_, err := s.commands.MarkFollowedUp(context.Background(), item.ID())

		s.True(errs.Is(err, errs.ErrAmbiguousPriority))
	})

	s.Run("store failure is transient", func() {
		item := s.newItem()
		s.items.EXPECT().GetForUpdate(gomock.Any(), gomock.Any(), item.ID()).Return(item, nil)
		s.reads.EXPECT().CadenceRules(gomock.Any()).Return([]cadence.Rule{businessRule()}, nil)
		s.items.EXPECT().UpdateFollowUp(gomock.Any(), gomock.Any(), item).
			Return(infra.WrapRepoErr("failed to update work item", errs.New("connection reset")))

		_, err := s.commands.MarkFollowedUp(context.Background(), item.ID())

		s.True(errs.Is(err, errs.ErrTransient))
	})
}

func (s *FollowUpCommandsTestSuite) TestRecompute() {
	item := s.newItem()
	before := *item.LastContactAt()
	s.items.EXPECT().GetForUpdate(gomock.Any(), gomock.Any(), item.ID()).Return(item, nil)
	s.reads.EXPECT().CadenceRules(gomock.Any()).Return([]cadence.Rule{businessRule()}, nil)
	s.items.EXPECT().UpdateFollowUp(gomock.Any(), gomock.Any(), item).Return(nil)

	got, err := s.commands.Recompute(context.Background(), item.ID())

	s.Require().NoError(err)
	s.True(before.Equal(*got.LastContactAt))
	s.True(cadence.AddBusinessDays(before, 5).Equal(*got.NextFollowUpAt))
}

func (s *FollowUpCommandsTestSuite) TestSnooze() {
	s.Run("three calendar days from now", func() {
		item := s.newItem()
		s.items.EXPECT().GetForUpdate(gomock.Any(), gomock.Any(), item.ID()).Return(item, nil)
		s.items.EXPECT().UpdateFollowUp(gomock.Any(), gomock.Any(), item).Return(nil)

		got, err := s.commands.Snooze(context.Background(), item.ID(), 3)

		s.Require().NoError(err)
		s.Equal(3, got.Days)
		s.True(friday.AddDate(0, 0, 3).Equal(got.SnoozedUntil))
	})

	s.Run("non-positive days is a validation error", func() {
		_, err := s.commands.Snooze(context.Background(), uuid.New(), 0)

		s.True(errs.Is(err, errs.ErrValidation))
	})
}
