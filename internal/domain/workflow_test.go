package domain_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	adaptermocks "github.com/beyond-event-horizon/HAI3-sub001/internal/adapter/mocks"
	controllermocks "github.com/beyond-event-horizon/HAI3-sub001/internal/controller/mocks"
	"github.com/beyond-event-horizon/HAI3-sub001/internal/domain"
	domainmocks "github.com/beyond-event-horizon/HAI3-sub001/internal/domain/mocks"
	m "github.com/beyond-event-horizon/HAI3-sub001/internal/model"
)

type workflowMocks struct {
	store  *adaptermocks.MockReportStore
	ui     *controllermocks.MockUI
	copier *domainmocks.MockCopier
}

func newTestWorkflow(t *testing.T) (domain.Workflow, workflowMocks) {
	t.Helper()

	mocks := workflowMocks{
		store:  adaptermocks.NewMockReportStore(t),
		ui:     controllermocks.NewMockUI(t),
		copier: domainmocks.NewMockCopier(t),
	}

	return domain.NewWorkflow(mocks.store, mocks.ui, mocks.copier), mocks
}

func copyArgs(dryRun, noReport bool) domain.CopyArgs {
	return domain.CopyArgs{
		CopyOptions: domain.CopyOptions{
			Source:        "chat",
			Target:        "chatCopy",
			ScreensetsDir: "src/screensets",
			DryRun:        dryRun,
		},
		Reports:  ".hai3-reports",
		NoReport: noReport,
	}
}

func TestWorkflow_Copy(t *testing.T) {
	ctx := context.Background()
	result := m.CopyResult{Source: "chat", Target: "chatCopy", TargetDir: "src/screensets/chatCopy"}

	t.Run("saves report and displays result", func(t *testing.T) {
		wf, mocks := newTestWorkflow(t)
		args := copyArgs(false, false)

		mocks.ui.EXPECT().Start(ctx, mock.Anything).Return(nil)
		mocks.copier.EXPECT().Copy(ctx, args.CopyOptions).Return(result, nil)
		mocks.store.EXPECT().
			SaveReport(ctx, m.Path(".hai3-reports"), mock.MatchedBy(func(r m.CopyReport) bool {
				return r.ID != "" && !r.CreatedAt.IsZero() && r.Result.Target == "chatCopy"
			})).
			Return(m.Path(".hai3-reports/copy-1.yaml"), nil)
		mocks.ui.EXPECT().DisplayCopyResult(ctx, result).Return(nil)
		mocks.ui.EXPECT().Wait(ctx).Return()
		mocks.ui.EXPECT().Close(ctx).Return()

		require.NoError(t, wf.Copy(ctx, args))
	})

	t.Run("dry run skips report", func(t *testing.T) {
		wf, mocks := newTestWorkflow(t)
		args := copyArgs(true, false)
		dryResult := result
		dryResult.DryRun = true

		mocks.ui.EXPECT().Start(ctx, mock.Anything).Return(nil)
		mocks.copier.EXPECT().Copy(ctx, args.CopyOptions).Return(dryResult, nil)
		mocks.ui.EXPECT().DisplayCopyResult(ctx, dryResult).Return(nil)
		mocks.ui.EXPECT().Wait(ctx).Return()
		mocks.ui.EXPECT().Close(ctx).Return()

		require.NoError(t, wf.Copy(ctx, args))
		mocks.store.AssertNotCalled(t, "SaveReport", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("no report flag skips report", func(t *testing.T) {
		wf, mocks := newTestWorkflow(t)
		args := copyArgs(false, true)

		mocks.ui.EXPECT().Start(ctx, mock.Anything).Return(nil)
		mocks.copier.EXPECT().Copy(ctx, args.CopyOptions).Return(result, nil)
		mocks.ui.EXPECT().DisplayCopyResult(ctx, result).Return(nil)
		mocks.ui.EXPECT().Wait(ctx).Return()
		mocks.ui.EXPECT().Close(ctx).Return()

		require.NoError(t, wf.Copy(ctx, args))
	})

	t.Run("copy error is wrapped", func(t *testing.T) {
		wf, mocks := newTestWorkflow(t)
		args := copyArgs(false, false)

		mocks.ui.EXPECT().Start(ctx, mock.Anything).Return(nil)
		mocks.copier.EXPECT().Copy(ctx, args.CopyOptions).Return(m.CopyResult{}, domain.ErrTargetExists)
		mocks.ui.EXPECT().Close(ctx).Return()

		err := wf.Copy(ctx, args)
		require.ErrorIs(t, err, domain.ErrTargetExists)
		assert.Contains(t, err.Error(), "copy screenset")
	})

	t.Run("report error", func(t *testing.T) {
		wf, mocks := newTestWorkflow(t)
		args := copyArgs(false, false)
		saveErr := errors.New("read-only file system")

		mocks.ui.EXPECT().Start(ctx, mock.Anything).Return(nil)
		mocks.copier.EXPECT().Copy(ctx, args.CopyOptions).Return(result, nil)
		mocks.store.EXPECT().SaveReport(ctx, mock.Anything, mock.Anything).Return(m.Path(""), saveErr)
		mocks.ui.EXPECT().Close(ctx).Return()

		require.ErrorIs(t, wf.Copy(ctx, args), saveErr)
	})

	t.Run("ui start error", func(t *testing.T) {
		wf, mocks := newTestWorkflow(t)
		startErr := errors.New("no terminal")

		mocks.ui.EXPECT().Start(ctx, mock.Anything).Return(startErr)

		require.ErrorIs(t, wf.Copy(ctx, copyArgs(false, false)), startErr)
	})
}

func TestWorkflow_Inspect(t *testing.T) {
	ctx := context.Background()
	ids := []m.IDConstant{
		{Name: "CHAT_SCREENSET_ID", Value: "chat"},
		{Name: "HOME_SCREEN_ID", Value: "helloworld"},
	}

	t.Run("ids only", func(t *testing.T) {
		wf, mocks := newTestWorkflow(t)

		mocks.ui.EXPECT().Start(ctx, mock.Anything).Return(nil)
		mocks.copier.EXPECT().LoadIDs(ctx, m.Path("src/screensets"), "ids.ts", m.ScreensetID("chat")).Return(ids, nil)
		mocks.ui.EXPECT().DisplayIDs(ctx, m.ScreensetID("chat"), ids).Return(nil)
		mocks.ui.EXPECT().Wait(ctx).Return()
		mocks.ui.EXPECT().Close(ctx).Return()

		require.NoError(t, wf.Inspect(ctx, domain.InspectArgs{
			Source:        "chat",
			ScreensetsDir: "src/screensets",
			IDsFile:       "ids.ts",
		}))
	})

	t.Run("with target shows transformations", func(t *testing.T) {
		wf, mocks := newTestWorkflow(t)

		want := []m.IDTransformation{
			{OriginalConstName: "CHAT_SCREENSET_ID", NewConstName: "CHAT_COPY_SCREENSET_ID", OriginalValue: "chat", NewValue: "chatCopy"},
			{OriginalConstName: "HOME_SCREEN_ID", NewConstName: "HOME_SCREEN_ID", OriginalValue: "helloworld", NewValue: "helloworldCopy"},
		}

		mocks.ui.EXPECT().Start(ctx, mock.Anything).Return(nil)
		mocks.copier.EXPECT().LoadIDs(ctx, mock.Anything, mock.Anything, m.ScreensetID("chat")).Return(ids, nil)
		mocks.ui.EXPECT().DisplayIDs(ctx, m.ScreensetID("chat"), ids).Return(nil)
		mocks.ui.EXPECT().DisplayTransformations(ctx, m.ScreensetID("chat"), m.ScreensetID("chatCopy"), want).Return(nil)
		mocks.ui.EXPECT().Wait(ctx).Return()
		mocks.ui.EXPECT().Close(ctx).Return()

		require.NoError(t, wf.Inspect(ctx, domain.InspectArgs{Source: "chat", Target: "chatCopy"}))
	})

	t.Run("invalid target", func(t *testing.T) {
		wf, _ := newTestWorkflow(t)

		err := wf.Inspect(ctx, domain.InspectArgs{Source: "chat", Target: "Chat Copy"})
		require.ErrorIs(t, err, domain.ErrInvalidScreensetID)
	})

	t.Run("missing screenset", func(t *testing.T) {
		wf, mocks := newTestWorkflow(t)

		mocks.ui.EXPECT().Start(ctx, mock.Anything).Return(nil)
		mocks.copier.EXPECT().LoadIDs(ctx, mock.Anything, mock.Anything, m.ScreensetID("billing")).Return(nil, domain.ErrScreensetNotFound)
		mocks.ui.EXPECT().Close(ctx).Return()

		require.ErrorIs(t, wf.Inspect(ctx, domain.InspectArgs{Source: "billing"}), domain.ErrScreensetNotFound)
	})
}

func TestWorkflow_View(t *testing.T) {
	ctx := context.Background()

	t.Run("displays reports", func(t *testing.T) {
		wf, mocks := newTestWorkflow(t)
		reports := []m.CopyReport{{ID: "a"}, {ID: "b"}}

		mocks.ui.EXPECT().Start(ctx, mock.Anything).Return(nil)
		mocks.store.EXPECT().LoadReports(ctx, m.Path(".hai3-reports")).Return(reports, nil)
		mocks.ui.EXPECT().DisplayReports(ctx, reports).Return(nil)
		mocks.ui.EXPECT().Wait(ctx).Return()
		mocks.ui.EXPECT().Close(ctx).Return()

		require.NoError(t, wf.View(ctx, domain.ViewArgs{Reports: ".hai3-reports"}))
	})

	t.Run("load error", func(t *testing.T) {
		wf, mocks := newTestWorkflow(t)
		loadErr := errors.New("bad yaml")

		mocks.ui.EXPECT().Start(ctx, mock.Anything).Return(nil)
		mocks.store.EXPECT().LoadReports(ctx, mock.Anything).Return(nil, loadErr)
		mocks.ui.EXPECT().Close(ctx).Return()

		require.ErrorIs(t, wf.View(ctx, domain.ViewArgs{}), loadErr)
	})
}
